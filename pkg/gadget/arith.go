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
	"github.com/consensys/go-plonkish/pkg/field"
	"github.com/consensys/go-plonkish/pkg/ir"
	"github.com/consensys/go-plonkish/pkg/schema"
	"github.com/consensys/go-plonkish/pkg/trace"
)

// ArithConfig holds the shape of a simple arithmetic chip: three advice
// columns (two operands and an output), one fixed column for constants, and
// one gate per operation, each toggled by its own selector:
//
//	add:  a + b − c = 0
//	mul:  a · b − c = 0
//	addc: a + k − c = 0
//	mulc: a · k − c = 0
//
// where k is read from the fixed column.  Each operation occupies one row.
type ArithConfig[F field.Element[F]] struct {
	// Operand and output advice columns.
	A, B, C schema.Column
	// Fixed column holding per-row constants.
	Constant schema.Column
	// One selector per operation.
	Add, Mul, AddConst, MulConst schema.Selector
}

// ArithRow identifies the cells assigned for one arithmetic operation, for
// use in copy constraints (e.g. feeding one operation's output into
// another's operand).
type ArithRow struct {
	// Operand cells.  Rhs is the zero cell for constant operations.
	Lhs, Rhs schema.Cell
	// Output cell.
	Out schema.Cell
}

// ConfigureArith declares the columns, selectors and gates of the arithmetic
// chip.
func ConfigureArith[F field.Element[F]](sch *schema.Schema[F]) ArithConfig[F] {
	config := ArithConfig[F]{
		A:        sch.NewAdviceColumn("a"),
		B:        sch.NewAdviceColumn("b"),
		C:        sch.NewAdviceColumn("c"),
		Constant: sch.NewFixedColumn("constant"),
		Add:      sch.NewSelector("s_add"),
		Mul:      sch.NewSelector("s_mul"),
		AddConst: sch.NewSelector("s_add_const"),
		MulConst: sch.NewSelector("s_mul_const"),
	}
	//
	var (
		lhs = sch.Query(config.A, 0)
		rhs = sch.Query(config.B, 0)
		out = sch.Query(config.C, 0)
		k   = sch.Query(config.Constant, 0)
	)
	//
	sch.CreateGate("add", config.Add, ir.Subtract(ir.Sum(lhs, rhs), out))
	sch.CreateGate("mul", config.Mul, ir.Subtract(ir.Product(lhs, rhs), out))
	sch.CreateGate("add_constant", config.AddConst, ir.Subtract(ir.Sum(lhs, k), out))
	sch.CreateGate("mul_constant", config.MulConst, ir.Subtract(ir.Product(lhs, k), out))
	//
	return config
}

// ArithChip pairs an arithmetic configuration with its assignment
// behaviour.
type ArithChip[F field.Element[F]] struct {
	config ArithConfig[F]
}

// NewArithChip constructs a chip from a given configuration.
func NewArithChip[F field.Element[F]](config ArithConfig[F]) *ArithChip[F] {
	return &ArithChip[F]{config: config}
}

// AddRow assigns one addition row (a, b, a+b) at a given offset.
func (p *ArithChip[F]) AddRow(region *trace.Region[F], offset uint, a F, b F) (ArithRow, error) {
	return p.binary(region, offset, p.config.Add, a, b, a.Add(b))
}

// MulRow assigns one multiplication row (a, b, a·b) at a given offset.
func (p *ArithChip[F]) MulRow(region *trace.Region[F], offset uint, a F, b F) (ArithRow, error) {
	return p.binary(region, offset, p.config.Mul, a, b, a.Mul(b))
}

// AddConstRow assigns one constant-addition row (a, k, a+k) at a given
// offset, with k written into the fixed column.
func (p *ArithChip[F]) AddConstRow(region *trace.Region[F], offset uint, a F, k F) (ArithRow, error) {
	return p.constant(region, offset, p.config.AddConst, a, k, a.Add(k))
}

// MulConstRow assigns one constant-multiplication row (a, k, a·k) at a given
// offset, with k written into the fixed column.
func (p *ArithChip[F]) MulConstRow(region *trace.Region[F], offset uint, a F, k F) (ArithRow, error) {
	return p.constant(region, offset, p.config.MulConst, a, k, a.Mul(k))
}

func (p *ArithChip[F]) binary(region *trace.Region[F], offset uint, selector schema.Selector,
	a F, b F, out F) (ArithRow, error) {
	//
	var (
		row ArithRow
		err error
	)
	//
	if err = region.EnableSelector(selector, offset); err != nil {
		return row, err
	}
	//
	if row.Lhs, err = region.AssignAdvice(p.config.A, offset, a); err != nil {
		return row, err
	}
	//
	if row.Rhs, err = region.AssignAdvice(p.config.B, offset, b); err != nil {
		return row, err
	}
	//
	row.Out, err = region.AssignAdvice(p.config.C, offset, out)
	//
	return row, err
}

func (p *ArithChip[F]) constant(region *trace.Region[F], offset uint, selector schema.Selector,
	a F, k F, out F) (ArithRow, error) {
	//
	var (
		row ArithRow
		err error
	)
	//
	if err = region.EnableSelector(selector, offset); err != nil {
		return row, err
	}
	//
	if row.Lhs, err = region.AssignAdvice(p.config.A, offset, a); err != nil {
		return row, err
	}
	//
	if _, err = region.AssignFixed(p.config.Constant, offset, k); err != nil {
		return row, err
	}
	//
	row.Out, err = region.AssignAdvice(p.config.C, offset, out)
	//
	return row, err
}
