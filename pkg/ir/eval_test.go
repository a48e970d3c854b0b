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
package ir

import (
	"fmt"
	"testing"

	"github.com/consensys/go-plonkish/pkg/field/bls12_377"
)

func TestEvalConst_1(t *testing.T) {
	e := Const64[bls12_377.Element](1)
	checkEval(t, e, 0, 1)
}

func TestEvalAdd_1(t *testing.T) {
	e := Sum(Const64[bls12_377.Element](1), Const64[bls12_377.Element](2))
	checkEval(t, e, 0, 3)
}

func TestEvalSub_1(t *testing.T) {
	e := Subtract(Const64[bls12_377.Element](5), Const64[bls12_377.Element](2), Const64[bls12_377.Element](1))
	checkEval(t, e, 0, 2)
}

func TestEvalMul_1(t *testing.T) {
	e := Product(Const64[bls12_377.Element](6), Const64[bls12_377.Element](7))
	checkEval(t, e, 0, 42)
}

func TestEvalNeg_1(t *testing.T) {
	e := Sum(Negation(Const64[bls12_377.Element](2)), Const64[bls12_377.Element](5))
	checkEval(t, e, 0, 3)
}

func TestEvalColumn_1(t *testing.T) {
	e := NewColumnAccess[bls12_377.Element](0, 0)
	checkEval(t, e, 1, 20)
}

func TestEvalColumn_2(t *testing.T) {
	// Shifted access reads the following row.
	e := NewColumnAccess[bls12_377.Element](0, 1)
	checkEval(t, e, 1, 30)
}

func TestEvalColumn_3(t *testing.T) {
	e := NewColumnAccess[bls12_377.Element](1, -1)
	checkEval(t, e, 1, 100)
}

func TestEvalColumnOutOfBounds(t *testing.T) {
	e := NewColumnAccess[bls12_377.Element](0, 1)
	//
	if _, err := e.EvalAt(2, newFakeModule()); err == nil {
		t.Errorf("expected out-of-bounds error")
	}
}

func TestShiftRange_1(t *testing.T) {
	e := Subtract(
		Sum(NewColumnAccess[bls12_377.Element](0, -1), NewColumnAccess[bls12_377.Element](0, 0)),
		NewColumnAccess[bls12_377.Element](0, 2))
	//
	checkShiftRange(t, e, -1, 2)
}

func TestShiftRange_2(t *testing.T) {
	e := Product(Const64[bls12_377.Element](2), NewColumnAccess[bls12_377.Element](1, 0))
	checkShiftRange(t, e, 0, 0)
}

// ===================================================================

// fakeModule provides a fixed two column, three row table for testing
// evaluation.
type fakeModule struct {
	data [][]uint64
}

func newFakeModule() *fakeModule {
	return &fakeModule{data: [][]uint64{{10, 20, 30}, {100, 200, 300}}}
}

func (p *fakeModule) Cell(column uint, row int) (bls12_377.Element, error) {
	if column >= uint(len(p.data)) {
		return bls12_377.Element{}, fmt.Errorf("unknown column %d", column)
	} else if row < 0 || row >= len(p.data[column]) {
		return bls12_377.Element{}, fmt.Errorf("row %d out of bounds", row)
	}
	//
	return bls12_377.New(p.data[column][row]), nil
}

func (p *fakeModule) Height() uint {
	return 3
}

func checkEval(t *testing.T, e Term[bls12_377.Element], row int, expected uint64) {
	actual, err := e.EvalAt(row, newFakeModule())
	//
	if err != nil {
		t.Errorf("evaluation failed: %s", err)
	} else if actual.Cmp(bls12_377.New(expected)) != 0 {
		t.Errorf("expected %d, got %s", expected, actual)
	}
}

func checkShiftRange(t *testing.T, e Term[bls12_377.Element], expMin int, expMax int) {
	actualMin, actualMax := e.ShiftRange()
	//
	if actualMin != expMin || actualMax != expMax {
		t.Errorf("expected range %d..%d, got %d..%d", expMin, expMax, actualMin, actualMax)
	}
}
