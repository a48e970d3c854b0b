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
package schema

import (
	"fmt"

	"github.com/consensys/go-plonkish/pkg/field"
	"github.com/consensys/go-plonkish/pkg/ir"
)

// Schema describes the static shape of a circuit: its columns, selectors and
// gates.  A schema is populated during a one-time configuration phase and is
// read-only thereafter; witness values live elsewhere (in a trace), meaning a
// single schema may be checked against any number of traces.
//
// Malformed declarations (e.g. a gate over an unknown selector) are
// programmer errors, not witness errors, and hence panic immediately rather
// than being reported as constraint failures.
type Schema[F field.Element[F]] struct {
	columns   []Column
	selectors []Selector
	gates     []Gate[F]
}

// New constructs an empty schema.
func New[F field.Element[F]]() *Schema[F] {
	return &Schema[F]{}
}

// NewAdviceColumn declares a new advice (witness) column with a given name.
func (p *Schema[F]) NewAdviceColumn(name string) Column {
	return p.newColumn(Advice, name)
}

// NewFixedColumn declares a new fixed (constant) column with a given name.
func (p *Schema[F]) NewFixedColumn(name string) Column {
	return p.newColumn(Fixed, name)
}

// NewInstanceColumn declares a new instance (public input) column with a
// given name.
func (p *Schema[F]) NewInstanceColumn(name string) Column {
	return p.newColumn(Instance, name)
}

// NewSelector declares a new selector with a given name.
func (p *Schema[F]) NewSelector(name string) Selector {
	selector := Selector{Index: uint(len(p.selectors)), Name: name}
	p.selectors = append(p.selectors, selector)
	//
	return selector
}

// CreateGate declares a new gate conditioned on a given selector.  Each
// constraint expression must vanish at every row where the selector is
// enabled.
func (p *Schema[F]) CreateGate(name string, selector Selector, constraints ...ir.Term[F]) {
	if len(constraints) == 0 {
		panic(fmt.Sprintf("gate %q declared without any constraints", name))
	} else if selector.Index >= uint(len(p.selectors)) {
		panic(fmt.Sprintf("gate %q declared over unknown selector", name))
	}
	//
	p.gates = append(p.gates, Gate[F]{Name: name, Selector: selector, Constraints: constraints})
}

// Query constructs an expression referencing a given column at a given
// relative offset.
func (p *Schema[F]) Query(column Column, shift int) ir.Term[F] {
	if column.Index >= uint(len(p.columns)) {
		panic(fmt.Sprintf("query of unknown column %q", column.Name))
	}
	//
	return ir.NewColumnAccess[F](column.Index, shift)
}

// Columns returns all columns declared in this schema, in declaration order.
func (p *Schema[F]) Columns() []Column {
	return p.columns
}

// Column returns the column with a given global index.
func (p *Schema[F]) Column(index uint) Column {
	return p.columns[index]
}

// Selectors returns all selectors declared in this schema, in declaration
// order.
func (p *Schema[F]) Selectors() []Selector {
	return p.selectors
}

// Gates returns all gates declared in this schema, in declaration order.
func (p *Schema[F]) Gates() []Gate[F] {
	return p.gates
}

func (p *Schema[F]) newColumn(kind ColumnKind, name string) Column {
	column := Column{Index: uint(len(p.columns)), Kind: kind, Name: name}
	p.columns = append(p.columns, column)
	//
	return column
}
