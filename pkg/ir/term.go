// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package ir

import (
	"fmt"
	"strings"

	"github.com/consensys/go-plonkish/pkg/field"
)

// Module provides read access to tabular data during evaluation.  Columns are
// identified by their (global) index, and rows by absolute index.  Reading a
// cell which is out-of-bounds, or which was never assigned, yields an error
// (as distinct from a constraint violation).
type Module[F any] interface {
	// Cell returns the value held at the given column and row.
	Cell(column uint, row int) (F, error)
	// Height returns the number of rows in this module.
	Height() uint
}

// Term represents a component of a gate expression.  Terms are pure data:
// they are constructed once (at configuration time) and thereafter only
// evaluated.  Evaluation is side-effect free, hence terms may be shared
// freely across concurrent evaluation workers.
type Term[F field.Element[F]] interface {
	fmt.Stringer
	// EvalAt evaluates this term at a given row of a given module.  Relative
	// offsets embedded in the term are resolved against the supplied row.
	EvalAt(row int, mod Module[F]) (F, error)
	// ShiftRange returns the minimum and maximum relative offset used
	// anywhere within this term.
	ShiftRange() (int, int)
}

// ============================================================================
// Helpers
// ============================================================================

func shiftRangeOfTerms[F field.Element[F]](terms []Term[F]) (int, int) {
	var minShift, maxShift int
	//
	for i, term := range terms {
		tMin, tMax := term.ShiftRange()
		if i == 0 {
			minShift, maxShift = tMin, tMax
		} else {
			minShift = min(minShift, tMin)
			maxShift = max(maxShift, tMax)
		}
	}
	//
	return minShift, maxShift
}

func stringOfTerms[F field.Element[F]](op string, terms []Term[F]) string {
	var builder strings.Builder
	//
	builder.WriteString("(")
	builder.WriteString(op)
	//
	for _, term := range terms {
		builder.WriteString(" ")
		builder.WriteString(term.String())
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}
