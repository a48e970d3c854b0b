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
	"errors"
	"fmt"

	"github.com/consensys/go-plonkish/pkg/field"
	"github.com/consensys/go-plonkish/pkg/schema"
)

// Structural errors, indicating a malformed circuit or buggy assignment code
// (as opposed to a witness which simply fails its constraints).
var (
	// ErrAlreadyAssigned indicates an attempt to assign a cell which already
	// holds a different value.
	ErrAlreadyAssigned = errors.New("cell already assigned a different value")
	// ErrUnassignedCell indicates a read of a cell which was never assigned.
	ErrUnassignedCell = errors.New("read of unassigned cell")
	// ErrRowOutOfBounds indicates a reference to a row outside the table.
	ErrRowOutOfBounds = errors.New("row out of bounds")
	// ErrUnknownColumn indicates a reference to an undeclared column.
	ErrUnknownColumn = errors.New("unknown column")
	// ErrColumnKind indicates an assignment through an operation which does
	// not match the column's kind (e.g. AssignAdvice on a fixed column).
	ErrColumnKind = errors.New("column kind mismatch")
	// ErrSealed indicates an attempted mutation after sealing.
	ErrSealed = errors.New("trace already sealed")
)

// Table owns all column storage for a single circuit instance.  Columns grow
// rows on demand as cells are assigned, and the table tracks the maximum row
// used.  A cell may be assigned at most once; re-assignment to the same value
// is permitted (and occurs in practice via shared helper cells), whilst
// re-assignment to a different value is a structural error.
type Table[F field.Element[F]] struct {
	columns []columnData[F]
	height  uint
}

type columnData[F field.Element[F]] struct {
	column schema.Column
	cells  []tableCell[F]
}

type tableCell[F field.Element[F]] struct {
	value F
	set   bool
}

// NewTable constructs an empty table with storage for the given columns.
func NewTable[F field.Element[F]](columns []schema.Column) *Table[F] {
	data := make([]columnData[F], len(columns))
	//
	for i, column := range columns {
		data[i] = columnData[F]{column: column}
	}
	//
	return &Table[F]{columns: data}
}

// Assign writes a value into a given cell, growing the column as needed.  If
// the cell already holds a different value this fails with (an error
// wrapping) ErrAlreadyAssigned; re-assignment to the same value is a no-op.
// On success, the assigned cell is returned for use in copy constraints.
func (p *Table[F]) Assign(column schema.Column, row uint, value F) (schema.Cell, error) {
	var cell = schema.Cell{Column: column, Row: row}
	//
	if column.Index >= uint(len(p.columns)) {
		return cell, fmt.Errorf("%w (%s)", ErrUnknownColumn, column.Name)
	}
	//
	data := &p.columns[column.Index]
	// Grow column on demand
	for uint(len(data.cells)) <= row {
		data.cells = append(data.cells, tableCell[F]{})
	}
	//
	if data.cells[row].set {
		if data.cells[row].value.Cmp(value) != 0 {
			return cell, fmt.Errorf("%w (%s holds %s, got %s)",
				ErrAlreadyAssigned, cell, data.cells[row].value, value)
		}
		// Same value, nothing to do.
		return cell, nil
	}
	//
	data.cells[row] = tableCell[F]{value: value, set: true}
	p.height = max(p.height, row+1)
	//
	return cell, nil
}

// Get returns the value held at a given cell, along with a flag indicating
// whether that cell was ever assigned.
func (p *Table[F]) Get(column schema.Column, row uint) (F, bool) {
	var empty F
	//
	if column.Index >= uint(len(p.columns)) {
		return empty, false
	}
	//
	data := &p.columns[column.Index]
	//
	if row >= uint(len(data.cells)) || !data.cells[row].set {
		return empty, false
	}
	//
	return data.cells[row].value, true
}

// Height returns the number of rows in this table, that is one more than the
// maximum row assigned so far.
func (p *Table[F]) Height() uint {
	return p.height
}

// Column returns the declaration of the column with a given global index.
func (p *Table[F]) Column(index uint) schema.Column {
	return p.columns[index].column
}
