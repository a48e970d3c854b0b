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

// assignPoly synthesises u² + 3uv + v + 5, one operation per row, chaining
// intermediate results through copy constraints, and binds the final output
// to public input 0.
func assignPoly(t *testing.T, u, v uint64, public uint64) (*schema.Schema[F], *trace.Builder[F]) {
	sch := schema.New[F]()
	instance := sch.NewInstanceColumn("out")
	config := ConfigureArith(sch)
	chip := NewArithChip(config)
	//
	builder := trace.NewBuilder(sch)
	require.NoError(t, builder.SetInstance(instance, []F{bls12_377.New(public)}))
	//
	var out schema.Cell
	//
	err := builder.AssignRegion("poly", func(region *trace.Region[F]) error {
		var (
			x = bls12_377.New(u)
			y = bls12_377.New(v)
		)
		// u * u
		r0, err := chip.MulRow(region, 0, x, x)
		if err != nil {
			return err
		}
		// u * v
		r1, err := chip.MulRow(region, 1, x, y)
		if err != nil {
			return err
		}
		// 3 * (u * v)
		uv := x.Mul(y)
		//
		r2, err := chip.MulConstRow(region, 2, uv, bls12_377.New(3))
		if err != nil {
			return err
		}
		// u² + 3uv
		r3, err := chip.AddRow(region, 3, x.Mul(x), uv.Mul(bls12_377.New(3)))
		if err != nil {
			return err
		}
		// + v
		sum, err := region.Value(r3.Out)
		if err != nil {
			return err
		}
		//
		r4, err := chip.AddRow(region, 4, sum, y)
		if err != nil {
			return err
		}
		// + 5
		sum, err = region.Value(r4.Out)
		if err != nil {
			return err
		}
		//
		r5, err := chip.AddConstRow(region, 5, sum, bls12_377.New(5))
		if err != nil {
			return err
		}
		// Chain intermediates into their consumers.
		for _, pair := range [][2]schema.Cell{
			{r0.Out, r3.Lhs},
			{r1.Out, r2.Lhs},
			{r2.Out, r3.Rhs},
			{r3.Out, r4.Lhs},
			{r4.Out, r5.Lhs},
		} {
			if err := builder.ConstrainEqual(pair[0], pair[1]); err != nil {
				return err
			}
		}
		//
		out = r5.Out
		//
		return nil
	})
	require.NoError(t, err)
	// Bind the result to the public input.
	require.NoError(t, builder.ConstrainEqual(out, schema.Cell{Column: instance, Row: 0}))
	//
	return sch, builder
}

func TestArithPolySatisfied(t *testing.T) {
	// 2² + 3·2·3 + 3 + 5 = 30
	sch, builder := assignPoly(t, 2, 3, 30)
	//
	failures, err := checker.Check(sch, builder.Seal())
	require.NoError(t, err)
	require.Empty(t, failures)
}

func TestArithPolyWrongPublic(t *testing.T) {
	sch, builder := assignPoly(t, 2, 3, 31)
	//
	failures, err := checker.Check(sch, builder.Seal())
	require.NoError(t, err)
	// Every gate holds; only the public binding disagrees.
	require.Len(t, failures, 1)
	//
	_, ok := failures[0].(*schema.CopyFailure)
	require.True(t, ok)
}

func TestArithRows(t *testing.T) {
	sch := schema.New[F]()
	config := ConfigureArith(sch)
	chip := NewArithChip(config)
	builder := trace.NewBuilder(sch)
	//
	err := builder.AssignRegion("ops", func(region *trace.Region[F]) error {
		if _, err := chip.AddRow(region, 0, bls12_377.New(2), bls12_377.New(3)); err != nil {
			return err
		}
		//
		if _, err := chip.MulRow(region, 1, bls12_377.New(4), bls12_377.New(5)); err != nil {
			return err
		}
		//
		if _, err := chip.AddConstRow(region, 2, bls12_377.New(10), bls12_377.New(7)); err != nil {
			return err
		}
		//
		_, err := chip.MulConstRow(region, 3, bls12_377.New(6), bls12_377.New(7))
		//
		return err
	})
	require.NoError(t, err)
	//
	failures, err := checker.Check(sch, builder.Seal())
	require.NoError(t, err)
	require.Empty(t, failures)
}

func TestArithTamperedOutput(t *testing.T) {
	sch := schema.New[F]()
	config := ConfigureArith(sch)
	chip := NewArithChip(config)
	builder := trace.NewBuilder(sch)
	//
	err := builder.AssignRegion("ops", func(region *trace.Region[F]) error {
		if _, err := chip.AddRow(region, 0, bls12_377.New(2), bls12_377.New(3)); err != nil {
			return err
		}
		// Overwrite the (correct) output with a wrong value.
		_, err := region.AssignAdvice(config.C, 0, bls12_377.New(6))
		//
		return err
	})
	// Re-assignment with a different value is rejected at assignment time.
	require.ErrorIs(t, err, trace.ErrAlreadyAssigned)
}
