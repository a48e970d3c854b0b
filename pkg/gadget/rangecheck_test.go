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

func checkRange(t *testing.T, bound uint64, value uint64) []schema.Failure {
	sch := schema.New[F]()
	col := sch.NewAdviceColumn("v")
	chip := NewRangeCheckChip(ConfigureRangeCheck(sch, col, bound))
	builder := trace.NewBuilder(sch)
	//
	require.NoError(t, chip.Assign(builder, bls12_377.New(value)))
	//
	failures, err := checker.Check(sch, builder.Seal())
	require.NoError(t, err)
	//
	return failures
}

func TestRangeCheckInRange(t *testing.T) {
	for value := uint64(0); value < 8; value++ {
		require.Empty(t, checkRange(t, 8, value))
	}
}

func TestRangeCheckOutOfRange(t *testing.T) {
	failures := checkRange(t, 8, 8)
	require.Len(t, failures, 1)
	//
	failure, ok := failures[0].(*schema.ConstraintFailure)
	require.True(t, ok)
	require.Equal(t, "range_check", failure.Gate)
	require.Equal(t, uint(0), failure.Constraint)
	require.Equal(t, uint(0), failure.Row)
}

func TestRangeCheckBoundOne(t *testing.T) {
	// Bound 1 admits zero only.
	require.Empty(t, checkRange(t, 1, 0))
	require.Len(t, checkRange(t, 1, 1), 1)
}

func TestRangeCheckEmptyRangePanics(t *testing.T) {
	sch := schema.New[F]()
	col := sch.NewAdviceColumn("v")
	//
	require.Panics(t, func() {
		ConfigureRangeCheck(sch, col, 0)
	})
}

func TestRangeCheckManyValues(t *testing.T) {
	sch := schema.New[F]()
	col := sch.NewAdviceColumn("v")
	chip := NewRangeCheckChip(ConfigureRangeCheck(sch, col, 4))
	builder := trace.NewBuilder(sch)
	// One region per value; exactly the out-of-range rows fail.
	for _, value := range []uint64{0, 3, 4, 2, 9} {
		require.NoError(t, chip.Assign(builder, bls12_377.New(value)))
	}
	//
	failures, err := checker.Check(sch, builder.Seal())
	require.NoError(t, err)
	require.Len(t, failures, 2)
	//
	rows := []uint{
		failures[0].(*schema.ConstraintFailure).Row,
		failures[1].(*schema.ConstraintFailure).Row,
	}
	require.Equal(t, []uint{2, 4}, rows)
}
