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

	"github.com/consensys/go-plonkish/pkg/field"
	"github.com/consensys/go-plonkish/pkg/schema"
)

// RegionInfo records the name and row span of an assigned region, for use in
// failure reporting.
type RegionInfo struct {
	// Name of the region.
	Name string
	// First row of the region.
	Start uint
	// One past the last row of the region.
	End uint
}

// Region is a named, bounded span of rows into which a chip assigns values
// and enables selectors.  All offsets are region-relative: they are
// translated into absolute rows by adding the region's start row, which was
// recorded once when the region was opened.
type Region[F field.Element[F]] struct {
	builder *Builder[F]
	name    string
	start   uint
	// Number of rows used so far.
	rows uint
}

// Name returns the name of this region.
func (p *Region[F]) Name() string {
	return p.name
}

// Start returns the absolute row on which this region starts.
func (p *Region[F]) Start() uint {
	return p.start
}

// EnableSelector enables a given selector on a given row of this region.
// Enabling a selector twice on the same row is a no-op.
func (p *Region[F]) EnableSelector(selector schema.Selector, offset uint) error {
	if p.builder.sealed {
		return ErrSealed
	}
	//
	if selector.Index >= uint(len(p.builder.selectors)) {
		return fmt.Errorf("unknown selector %q", selector.Name)
	}
	//
	row := p.start + offset
	p.builder.selectors[selector.Index].Set(uint(row))
	p.builder.selectorRows = max(p.builder.selectorRows, row+1)
	p.extend(offset)
	//
	return nil
}

// AssignAdvice writes a witness value into a given advice column at a given
// row of this region.
func (p *Region[F]) AssignAdvice(column schema.Column, offset uint, value F) (schema.Cell, error) {
	if column.Kind != schema.Advice {
		return schema.Cell{}, fmt.Errorf("%w (%s is %s, expected advice)", ErrColumnKind, column.Name, column.Kind)
	}
	//
	return p.assign(column, offset, value)
}

// AssignFixed writes a constant value into a given fixed column at a given
// row of this region.
func (p *Region[F]) AssignFixed(column schema.Column, offset uint, value F) (schema.Cell, error) {
	if column.Kind != schema.Fixed {
		return schema.Cell{}, fmt.Errorf("%w (%s is %s, expected fixed)", ErrColumnKind, column.Name, column.Kind)
	}
	//
	return p.assign(column, offset, value)
}

// AssignAdviceFromInstance copies a public input (held in a given row of a
// given instance column) into an advice cell, and binds the two cells with a
// copy constraint.  This is how a circuit imports public inputs as
// witnesses.  The advice cell is returned for further use.
func (p *Region[F]) AssignAdviceFromInstance(instance schema.Column, instanceRow uint,
	advice schema.Column, offset uint) (schema.Cell, error) {
	//
	if instance.Kind != schema.Instance {
		return schema.Cell{}, fmt.Errorf("%w (%s is %s, expected instance)", ErrColumnKind, instance.Name, instance.Kind)
	}
	//
	value, ok := p.builder.table.Get(instance, instanceRow)
	if !ok {
		return schema.Cell{}, fmt.Errorf("%w (no public input at %s[%d])", ErrUnassignedCell, instance.Name, instanceRow)
	}
	//
	cell, err := p.AssignAdvice(advice, offset, value)
	if err != nil {
		return schema.Cell{}, err
	}
	// Bind advice cell to its instance cell.
	p.builder.copies = append(p.builder.copies,
		[2]schema.Cell{cell, {Column: instance, Row: instanceRow}})
	//
	return cell, nil
}

// Value returns the value previously assigned to a given cell.  Reading a
// cell which was never assigned is a structural error.
func (p *Region[F]) Value(cell schema.Cell) (F, error) {
	value, ok := p.builder.table.Get(cell.Column, cell.Row)
	//
	if !ok {
		return value, fmt.Errorf("%w (%s)", ErrUnassignedCell, cell)
	}
	//
	return value, nil
}

func (p *Region[F]) assign(column schema.Column, offset uint, value F) (schema.Cell, error) {
	if p.builder.sealed {
		return schema.Cell{}, ErrSealed
	}
	//
	cell, err := p.builder.table.Assign(column, p.start+offset, value)
	if err != nil {
		return cell, err
	}
	//
	p.extend(offset)
	//
	return cell, nil
}

func (p *Region[F]) extend(offset uint) {
	p.rows = max(p.rows, offset+1)
}
