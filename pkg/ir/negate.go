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

// Neg represents the additive inverse of an expression.
type Neg[F field.Element[F]] struct{ Arg Term[F] }

// Negation constructs an expression representing the additive inverse of a
// given expression.
func Negation[F field.Element[F]](term Term[F]) Term[F] {
	return &Neg[F]{Arg: term}
}

// EvalAt implementation for the Term interface.
func (p *Neg[F]) EvalAt(row int, mod Module[F]) (F, error) {
	val, err := p.Arg.EvalAt(row, mod)
	//
	if err != nil {
		return val, err
	}
	//
	return val.Neg(), nil
}

// ShiftRange implementation for the Term interface.
func (p *Neg[F]) ShiftRange() (int, int) {
	return p.Arg.ShiftRange()
}

func (p *Neg[F]) String() string {
	return fmt.Sprintf("(neg %s)", p.Arg.String())
}
