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
	"fmt"

	"github.com/consensys/go-plonkish/pkg/field"
	"github.com/consensys/go-plonkish/pkg/ir"
	"github.com/consensys/go-plonkish/pkg/schema"
	"github.com/consensys/go-plonkish/pkg/trace"
)

// LinCombWidth is the number of terms combined by the linear-combination
// chip.
const LinCombWidth = 3

// LinCombConfig holds the shape of the linear-combination chip, which
// enforces on a single row that
//
//	k₀·x₀ + k₁·x₁ + k₂·x₂ − out = 0
//
// where the coefficients k are held in fixed columns and the inputs x and
// output in advice columns.
type LinCombConfig[F field.Element[F]] struct {
	// Input advice columns.
	Inputs [LinCombWidth]schema.Column
	// Coefficient fixed columns.
	Coeffs [LinCombWidth]schema.Column
	// Output advice column.
	Output schema.Column
	// Selector toggling the combination.
	Selector schema.Selector
}

// ConfigureLinComb declares the columns, selector and gate of the
// linear-combination chip.
func ConfigureLinComb[F field.Element[F]](sch *schema.Schema[F]) LinCombConfig[F] {
	var (
		config = LinCombConfig[F]{
			Output:   sch.NewAdviceColumn("lc_out"),
			Selector: sch.NewSelector("s_lincomb"),
		}
		terms []ir.Term[F]
	)
	//
	for i := 0; i < LinCombWidth; i++ {
		config.Inputs[i] = sch.NewAdviceColumn(fmt.Sprintf("lc_x%d", i))
		config.Coeffs[i] = sch.NewFixedColumn(fmt.Sprintf("lc_k%d", i))
		terms = append(terms, ir.Product(sch.Query(config.Coeffs[i], 0), sch.Query(config.Inputs[i], 0)))
	}
	//
	sch.CreateGate("linear_combination", config.Selector,
		ir.Subtract(ir.Sum(terms...), sch.Query(config.Output, 0)))
	//
	return config
}

// LinCombChip pairs a linear-combination configuration with its assignment
// behaviour.
type LinCombChip[F field.Element[F]] struct {
	config LinCombConfig[F]
}

// NewLinCombChip constructs a chip from a given configuration.
func NewLinCombChip[F field.Element[F]](config LinCombConfig[F]) *LinCombChip[F] {
	return &LinCombChip[F]{config: config}
}

// Assign writes coefficients and inputs at a given offset, along with their
// combination, returning the output cell.
func (p *LinCombChip[F]) Assign(region *trace.Region[F], offset uint,
	coeffs [LinCombWidth]F, inputs [LinCombWidth]F) (schema.Cell, error) {
	//
	var out F
	//
	if err := region.EnableSelector(p.config.Selector, offset); err != nil {
		return schema.Cell{}, err
	}
	//
	for i := 0; i < LinCombWidth; i++ {
		if _, err := region.AssignFixed(p.config.Coeffs[i], offset, coeffs[i]); err != nil {
			return schema.Cell{}, err
		}
		//
		if _, err := region.AssignAdvice(p.config.Inputs[i], offset, inputs[i]); err != nil {
			return schema.Cell{}, err
		}
		//
		out = out.Add(coeffs[i].Mul(inputs[i]))
	}
	//
	return region.AssignAdvice(p.config.Output, offset, out)
}
