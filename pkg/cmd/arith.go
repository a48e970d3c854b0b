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
package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/go-plonkish/pkg/field/bls12_377"
	"github.com/consensys/go-plonkish/pkg/gadget"
	"github.com/consensys/go-plonkish/pkg/schema"
	"github.com/consensys/go-plonkish/pkg/trace"
	"github.com/spf13/cobra"
)

// arithCmd checks an arithmetic circuit computing u² + 3uv + v + 5 against a
// supplied public result.
var arithCmd = &cobra.Command{
	Use:   "arith [flags] u v result",
	Short: "Check an arithmetic circuit computing u² + 3uv + v + 5.",
	Long: `Check an arithmetic circuit computing u² + 3uv + v + 5 from private
	inputs u and v, asserting the result against a public input.  Intermediate
	values flow between rows via copy constraints.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 3 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		var (
			u = parseElement(args[0])
			v = parseElement(args[1])
			//
			sch      = schema.New[bls12_377.Element]()
			config   = gadget.ConfigureArith(sch)
			instance = sch.NewInstanceColumn("out")
			chip     = gadget.NewArithChip(config)
			builder  = trace.NewBuilder(sch)
			//
			three = bls12_377.New(3)
			five  = bls12_377.New(5)
			//
			t1 = u.Mul(u)
			t2 = u.Mul(v)
			t3 = t2.Mul(three)
			t4 = t1.Add(t3)
			t5 = t4.Add(v)
		)
		//
		if err := builder.SetInstance(instance, []bls12_377.Element{parseElement(args[2])}); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		err := builder.AssignRegion("u² + 3uv + v + 5", func(region *trace.Region[bls12_377.Element]) error {
			row1, err := chip.MulRow(region, 0, u, u)
			if err != nil {
				return err
			}
			//
			row2, err := chip.MulRow(region, 1, u, v)
			if err != nil {
				return err
			}
			//
			row3, err := chip.MulConstRow(region, 2, t2, three)
			if err != nil {
				return err
			}
			//
			row4, err := chip.AddRow(region, 3, t1, t3)
			if err != nil {
				return err
			}
			//
			row5, err := chip.AddRow(region, 4, t4, v)
			if err != nil {
				return err
			}
			//
			row6, err := chip.AddConstRow(region, 5, t5, five)
			if err != nil {
				return err
			}
			// Chain intermediate values between rows.
			for _, pair := range [][2]schema.Cell{
				{row1.Lhs, row1.Rhs},
				{row1.Lhs, row2.Lhs},
				{row2.Rhs, row5.Rhs},
				{row3.Lhs, row2.Out},
				{row4.Lhs, row1.Out},
				{row4.Rhs, row3.Out},
				{row5.Lhs, row4.Out},
				{row6.Lhs, row5.Out},
			} {
				if err := builder.ConstrainEqual(pair[0], pair[1]); err != nil {
					return err
				}
			}
			// Expose the result as a public output.
			return builder.ConstrainEqual(row6.Out, schema.Cell{Column: instance, Row: 0})
		})
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		runCheck(sch, builder.Seal())
	},
}

func init() {
	rootCmd.AddCommand(arithCmd)
}
