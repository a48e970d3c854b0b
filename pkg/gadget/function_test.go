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
package gadget

import (
	"testing"

	"github.com/consensys/go-plonkish/pkg/checker"
	"github.com/consensys/go-plonkish/pkg/field/bls12_377"
	"github.com/consensys/go-plonkish/pkg/schema"
	"github.com/consensys/go-plonkish/pkg/trace"
	"github.com/stretchr/testify/require"
)

func assignFunction(t *testing.T, a, b, c uint64) (*schema.Schema[F], *trace.Builder[F], schema.Cell) {
	sch := schema.New[F]()
	chip := NewFunctionChip(ConfigureFunction(sch))
	builder := trace.NewBuilder(sch)
	//
	var out schema.Cell
	//
	err := builder.AssignRegion("conditional", func(region *trace.Region[F]) error {
		var err error
		//
		out, err = chip.Assign(region, 0, bls12_377.New(a), bls12_377.New(b), bls12_377.New(c))
		//
		return err
	})
	require.NoError(t, err)
	//
	return sch, builder, out
}

func TestFunctionUnequalBranch(t *testing.T) {
	// a != b, so out = a - b.
	sch, builder, out := assignFunction(t, 20, 10, 15)
	tr := builder.Seal()
	//
	value, err := tr.Cell(out.Column.Index, int(out.Row))
	require.NoError(t, err)
	require.Equal(t, 0, value.Cmp(bls12_377.New(10)))
	//
	failures, err := checker.Check(sch, tr)
	require.NoError(t, err)
	require.Empty(t, failures)
}

func TestFunctionEqualBranch(t *testing.T) {
	// a == b, so out = c.
	sch, builder, out := assignFunction(t, 10, 10, 15)
	tr := builder.Seal()
	//
	value, err := tr.Cell(out.Column.Index, int(out.Row))
	require.NoError(t, err)
	require.Equal(t, 0, value.Cmp(bls12_377.New(15)))
	//
	failures, err := checker.Check(sch, tr)
	require.NoError(t, err)
	require.Empty(t, failures)
}

func TestFunctionNegativeDifference(t *testing.T) {
	// a - b wraps around the field; the circuit must still be satisfied.
	sch, builder, out := assignFunction(t, 10, 20, 15)
	tr := builder.Seal()
	//
	value, err := tr.Cell(out.Column.Index, int(out.Row))
	require.NoError(t, err)
	require.Equal(t, 0, value.Cmp(bls12_377.New(10).Sub(bls12_377.New(20))))
	//
	failures, err := checker.Check(sch, tr)
	require.NoError(t, err)
	require.Empty(t, failures)
}

// Writing the wrong branch into the output must violate exactly one of the
// two conditional constraints.
func TestFunctionTamperedOutput(t *testing.T) {
	sch := schema.New[F]()
	config := ConfigureFunction(sch)
	builder := trace.NewBuilder(sch)
	//
	err := builder.AssignRegion("conditional", func(region *trace.Region[F]) error {
		if err := region.EnableSelector(config.Selector, 0); err != nil {
			return err
		}
		// a == b, but output claims the a - b branch.
		for _, assign := range []struct {
			column schema.Column
			value  uint64
		}{
			{config.A, 10}, {config.B, 10}, {config.C, 15}, {config.Output, 0},
		} {
			if _, err := region.AssignAdvice(assign.column, 0, bls12_377.New(assign.value)); err != nil {
				return err
			}
		}
		// Honest is-zero witnesses for a - b = 0.
		return NewIsZeroChip(config.AEqualsB).Assign(region, 0, bls12_377.New(0))
	})
	require.NoError(t, err)
	//
	failures, err := checker.Check(sch, builder.Seal())
	require.NoError(t, err)
	require.Len(t, failures, 1)
	//
	failure, ok := failures[0].(*schema.ConstraintFailure)
	require.True(t, ok)
	require.Equal(t, "conditional", failure.Gate)
	require.Equal(t, uint(0), failure.Constraint)
}
