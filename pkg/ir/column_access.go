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

	"github.com/consensys/go-plonkish/pkg/field"
)

// ColumnAccess represents reading the value held at a given column in the
// tabular context.  Furthermore, the current row may be shifted up (or down)
// by a given amount.  Suppose we are evaluating a constraint on row k=5 which
// contains the accesses "X(0)" and "Y(-1)".  Then, X(0) accesses column X at
// row 5, whilst Y(-1) accesses column Y at row 4.
type ColumnAccess[F field.Element[F]] struct {
	Column uint
	Shift  int
}

// NewColumnAccess constructs an expression representing the value of a given
// column at the current row, shifted by a given amount.
func NewColumnAccess[F field.Element[F]](column uint, shift int) Term[F] {
	return &ColumnAccess[F]{Column: column, Shift: shift}
}

// EvalAt implementation for the Term interface.
func (p *ColumnAccess[F]) EvalAt(row int, mod Module[F]) (F, error) {
	return mod.Cell(p.Column, row+p.Shift)
}

// ShiftRange implementation for the Term interface.
func (p *ColumnAccess[F]) ShiftRange() (int, int) {
	return p.Shift, p.Shift
}

func (p *ColumnAccess[F]) String() string {
	if p.Shift == 0 {
		return fmt.Sprintf("#%d", p.Column)
	}
	//
	return fmt.Sprintf("(shift #%d %d)", p.Column, p.Shift)
}
