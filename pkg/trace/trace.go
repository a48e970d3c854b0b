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
package trace

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/go-plonkish/pkg/field"
	"github.com/consensys/go-plonkish/pkg/schema"
)

// Trace is the immutable snapshot of a fully assigned circuit instance, as
// produced by sealing a builder.  It is the sole input (alongside the
// schema) consumed by the checker, and is safe for concurrent reads.
//
// The trace height covers every row touched by an assignment or a selector
// activation; cell reads are bounds-checked against it.
type Trace[F field.Element[F]] struct {
	table     *Table[F]
	selectors []*bitset.BitSet
	copies    [][2]schema.Cell
	regions   []RegionInfo
	height    uint
}

// Height returns the number of rows in this trace.
func (p *Trace[F]) Height() uint {
	return p.height
}

// Cell returns the value held at the given column and row.  Out-of-bounds or
// unassigned reads yield a structural error.  This implements the evaluation
// contract consumed by gate expressions.
func (p *Trace[F]) Cell(column uint, row int) (F, error) {
	var empty F
	//
	if column >= uint(len(p.table.columns)) {
		return empty, fmt.Errorf("%w (#%d)", ErrUnknownColumn, column)
	}
	//
	if row < 0 || uint(row) >= p.height {
		return empty, fmt.Errorf("%w (%s[%d], height %d)",
			ErrRowOutOfBounds, p.table.Column(column).Name, row, p.height)
	}
	//
	value, ok := p.table.Get(p.table.Column(column), uint(row))
	if !ok {
		return empty, fmt.Errorf("%w (%s[%d])", ErrUnassignedCell, p.table.Column(column).Name, row)
	}
	//
	return value, nil
}

// Get returns the value held at a given cell, along with a flag indicating
// whether that cell was ever assigned.
func (p *Trace[F]) Get(column schema.Column, row uint) (F, bool) {
	return p.table.Get(column, row)
}

// SelectorEnabled determines whether a given selector is enabled on a given
// row.
func (p *Trace[F]) SelectorEnabled(selector schema.Selector, row uint) bool {
	if selector.Index >= uint(len(p.selectors)) {
		return false
	}
	//
	return p.selectors[selector.Index].Test(uint(row))
}

// Copies returns all declared copy constraints, in declaration order.
func (p *Trace[F]) Copies() [][2]schema.Cell {
	return p.copies
}

// RegionAt returns the name of the region enclosing a given row, or the
// empty string if the row falls outside every region.
func (p *Trace[F]) RegionAt(row uint) string {
	for _, region := range p.regions {
		if row >= region.Start && row < region.End {
			return region.Name
		}
	}
	//
	return ""
}
