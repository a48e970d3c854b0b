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

type F = bls12_377.Element

func isZeroCircuit() (*schema.Schema[F], schema.Column, schema.Selector, IsZeroConfig[F]) {
	sch := schema.New[F]()
	x := sch.NewAdviceColumn("x")
	sel := sch.NewSelector("q")
	config := ConfigureIsZero(sch, sel, sch.Query(x, 0))
	//
	return sch, x, sel, config
}

func TestIsZeroOfZero(t *testing.T) {
	sch, x, sel, config := isZeroCircuit()
	chip := NewIsZeroChip(config)
	builder := trace.NewBuilder(sch)
	//
	err := builder.AssignRegion("is_zero", func(region *trace.Region[F]) error {
		if err := region.EnableSelector(sel, 0); err != nil {
			return err
		}
		//
		if _, err := region.AssignAdvice(x, 0, bls12_377.New(0)); err != nil {
			return err
		}
		//
		return chip.Assign(region, 0, bls12_377.New(0))
	})
	require.NoError(t, err)
	//
	failures, err := checker.Check(sch, builder.Seal())
	require.NoError(t, err)
	require.Empty(t, failures)
}

func TestIsZeroOfNonZero(t *testing.T) {
	sch, x, sel, config := isZeroCircuit()
	chip := NewIsZeroChip(config)
	builder := trace.NewBuilder(sch)
	//
	err := builder.AssignRegion("is_zero", func(region *trace.Region[F]) error {
		if err := region.EnableSelector(sel, 0); err != nil {
			return err
		}
		//
		if _, err := region.AssignAdvice(x, 0, bls12_377.New(5)); err != nil {
			return err
		}
		//
		return chip.Assign(region, 0, bls12_377.New(5))
	})
	require.NoError(t, err)
	//
	failures, err := checker.Check(sch, builder.Seal())
	require.NoError(t, err)
	require.Empty(t, failures)
}

// A lying indicator (claiming a non-zero value is zero) must be caught by at
// least one of the gadget's constraints.
func TestIsZeroTamperedIndicator(t *testing.T) {
	sch, x, sel, config := isZeroCircuit()
	builder := trace.NewBuilder(sch)
	//
	err := builder.AssignRegion("is_zero", func(region *trace.Region[F]) error {
		if err := region.EnableSelector(sel, 0); err != nil {
			return err
		}
		//
		if _, err := region.AssignAdvice(x, 0, bls12_377.New(5)); err != nil {
			return err
		}
		// Indicator claims x = 0.
		if _, err := region.AssignAdvice(config.Indicator, 0, bls12_377.New(1)); err != nil {
			return err
		}
		//
		_, err := region.AssignAdvice(config.Inverse, 0, bls12_377.New(0))
		//
		return err
	})
	require.NoError(t, err)
	//
	failures, err := checker.Check(sch, builder.Seal())
	require.NoError(t, err)
	require.NotEmpty(t, failures)
	//
	for _, failure := range failures {
		constraint, ok := failure.(*schema.ConstraintFailure)
		require.True(t, ok)
		require.Equal(t, "is_zero", constraint.Gate)
	}
}

// Claiming a zero value is non-zero is equally inconsistent: no inverse
// witness exists for zero, so the first constraint cannot be met.
func TestIsZeroTamperedInverse(t *testing.T) {
	sch, x, sel, config := isZeroCircuit()
	builder := trace.NewBuilder(sch)
	//
	err := builder.AssignRegion("is_zero", func(region *trace.Region[F]) error {
		if err := region.EnableSelector(sel, 0); err != nil {
			return err
		}
		//
		if _, err := region.AssignAdvice(x, 0, bls12_377.New(0)); err != nil {
			return err
		}
		// Indicator claims x != 0.
		if _, err := region.AssignAdvice(config.Indicator, 0, bls12_377.New(0)); err != nil {
			return err
		}
		//
		_, err := region.AssignAdvice(config.Inverse, 0, bls12_377.New(123))
		//
		return err
	})
	require.NoError(t, err)
	//
	failures, err := checker.Check(sch, builder.Seal())
	require.NoError(t, err)
	require.Len(t, failures, 1)
	//
	constraint, ok := failures[0].(*schema.ConstraintFailure)
	require.True(t, ok)
	require.Equal(t, "is_zero", constraint.Gate)
	require.Equal(t, uint(0), constraint.Constraint)
}
