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
	"github.com/consensys/go-plonkish/pkg/field"
)

// Constant represents a constant value within an expression.
type Constant[F field.Element[F]] struct{ Value F }

// Const constructs an expression representing a given constant.
func Const[F field.Element[F]](val F) Term[F] {
	return &Constant[F]{Value: val}
}

// Const64 constructs an expression representing a given constant from a
// uint64.
func Const64[F field.Element[F]](val uint64) Term[F] {
	return &Constant[F]{Value: field.Uint64[F](val)}
}

// EvalAt implementation for the Term interface.
func (p *Constant[F]) EvalAt(int, Module[F]) (F, error) {
	return p.Value, nil
}

// ShiftRange implementation for the Term interface.
func (p *Constant[F]) ShiftRange() (int, int) {
	return 0, 0
}

func (p *Constant[F]) String() string {
	return p.Value.String()
}
