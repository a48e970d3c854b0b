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

// Builder accumulates the per-instance state of a circuit: witness and fixed
// assignments, selector activations, copy constraints and public inputs.  It
// is populated during the synthesis phase (via one or more region
// assignments) and then sealed, producing an immutable Trace for checking.
// Regions are laid out sequentially: each region starts on the row after the
// previous region's last row.
type Builder[F field.Element[F]] struct {
	schema    *schema.Schema[F]
	table     *Table[F]
	selectors []*bitset.BitSet
	copies    [][2]schema.Cell
	regions   []RegionInfo
	// Next free row for a region to start on.
	nextRow uint
	// Highest row on which any selector was enabled, plus one.
	selectorRows uint
	sealed       bool
}

// NewBuilder constructs a fresh builder for a given schema.
func NewBuilder[F field.Element[F]](sch *schema.Schema[F]) *Builder[F] {
	selectors := make([]*bitset.BitSet, len(sch.Selectors()))
	//
	for i := range selectors {
		selectors[i] = bitset.New(0)
	}
	//
	return &Builder[F]{
		schema:    sch,
		table:     NewTable[F](sch.Columns()),
		selectors: selectors,
	}
}

// Schema returns the schema this builder is assigning against.
func (p *Builder[F]) Schema() *schema.Schema[F] {
	return p.schema
}

// SetInstance supplies the public input vector for a given instance column.
// The ith value is written into row i of the column.  This is the sole
// channel through which externally supplied values enter the table.
func (p *Builder[F]) SetInstance(column schema.Column, values []F) error {
	if p.sealed {
		return ErrSealed
	} else if column.Kind != schema.Instance {
		return fmt.Errorf("%w (%s is %s, expected instance)", ErrColumnKind, column.Name, column.Kind)
	}
	//
	for i, value := range values {
		if _, err := p.table.Assign(column, uint(i), value); err != nil {
			return err
		}
	}
	//
	return nil
}

// AssignRegion opens a named region and invokes the given assignment
// function against it.  The region's start row is fixed when it is opened
// (to the row after the last row used by any previous region); all
// region-relative offsets are translated by that start row.  Regions exist
// for failure reporting and offset translation only, and have no effect on
// evaluation semantics.
func (p *Builder[F]) AssignRegion(name string, fn func(*Region[F]) error) error {
	if p.sealed {
		return ErrSealed
	}
	//
	region := &Region[F]{builder: p, name: name, start: p.nextRow}
	//
	if err := fn(region); err != nil {
		return fmt.Errorf("region %q: %w", region.Name(), err)
	}
	//
	p.regions = append(p.regions, RegionInfo{Name: name, Start: region.start, End: region.start + region.rows})
	p.nextRow = region.start + region.rows
	//
	return nil
}

// ConstrainEqual declares that two cells must hold equal values.  Equality
// is transitive: constraining (A,B) and (B,C) places A, B and C in a single
// equivalence class.
func (p *Builder[F]) ConstrainEqual(first schema.Cell, second schema.Cell) error {
	if p.sealed {
		return ErrSealed
	}
	//
	p.copies = append(p.copies, [2]schema.Cell{first, second})
	//
	return nil
}

// Seal this builder, producing an immutable trace suitable for checking.
// After sealing, all mutating operations fail with ErrSealed; the returned
// trace may therefore be shared freely across concurrent readers.
func (p *Builder[F]) Seal() *Trace[F] {
	p.sealed = true
	//
	return &Trace[F]{
		table:     p.table,
		selectors: p.selectors,
		copies:    p.copies,
		regions:   p.regions,
		height:    max(p.table.Height(), p.selectorRows),
	}
}
