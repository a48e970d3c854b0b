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

import "fmt"

// ColumnKind distinguishes the three kinds of column found in a circuit.
type ColumnKind uint8

const (
	// Advice columns hold witness values, filled afresh per circuit instance.
	Advice ColumnKind = iota
	// Fixed columns hold constants, filled at configuration time and reused
	// across instances.
	Fixed
	// Instance columns are the channel through which public inputs enter the
	// table, and through which computed outputs are asserted.
	Instance
)

func (p ColumnKind) String() string {
	switch p {
	case Advice:
		return "advice"
	case Fixed:
		return "fixed"
	case Instance:
		return "instance"
	}
	//
	return "unknown"
}

// Column identifies a single column of the witness table.  The index is
// global across all kinds, hence uniquely identifies the column within its
// schema.  Columns are declared by a schema and referenced by gates via
// (column, relative offset) pairs.
type Column struct {
	// Global index of this column within its schema.
	Index uint
	// Kind of this column (advice, fixed or instance).
	Kind ColumnKind
	// Human-readable name, used for reporting.
	Name string
}

func (p Column) String() string {
	return p.Name
}

// Cell identifies a single (column, row) pair: the addressable unit of
// assignment and of copy constraints.
type Cell struct {
	Column Column
	Row    uint
}

// Cmp provides a total ordering over cells, by column index and then row.
func (p Cell) Cmp(other Cell) int {
	if p.Column.Index != other.Column.Index {
		if p.Column.Index < other.Column.Index {
			return -1
		}
		//
		return 1
	}
	//
	if p.Row != other.Row {
		if p.Row < other.Row {
			return -1
		}
		//
		return 1
	}
	//
	return 0
}

func (p Cell) String() string {
	return fmt.Sprintf("%s[%d]", p.Column.Name, p.Row)
}
