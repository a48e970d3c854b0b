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

// isZeroCmd checks an is-zero circuit over a supplied value, optionally with
// a deliberately lying indicator witness.
var isZeroCmd = &cobra.Command{
	Use:   "iszero [flags] value",
	Short: "Check an is-zero circuit over a given value.",
	Long: `Check an is-zero circuit over a given value.  The witnessed
	indicator is constrained to equal 1 exactly when the value is zero.
	With --lie, the indicator witness is inverted, which the gates must
	catch.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		var (
			value = parseElement(args[0])
			lie   = getFlag(cmd, "lie")
			//
			sch      = schema.New[bls12_377.Element]()
			column   = sch.NewAdviceColumn("x")
			selector = sch.NewSelector("q")
			config   = gadget.ConfigureIsZero(sch, selector, sch.Query(column, 0))
			chip     = gadget.NewIsZeroChip(config)
			builder  = trace.NewBuilder(sch)
		)
		//
		err := builder.AssignRegion("is_zero", func(region *trace.Region[bls12_377.Element]) error {
			if err := region.EnableSelector(selector, 0); err != nil {
				return err
			}
			//
			if _, err := region.AssignAdvice(column, 0, value); err != nil {
				return err
			}
			//
			if !lie {
				return chip.Assign(region, 0, value)
			}
			// Witness the opposite of the truth.
			var indicator, inverse bls12_377.Element
			//
			if !value.IsZero() {
				indicator = bls12_377.New(1)
				inverse = value.Inverse()
			}
			//
			if _, err := region.AssignAdvice(config.Indicator, 0, indicator); err != nil {
				return err
			}
			//
			_, err := region.AssignAdvice(config.Inverse, 0, inverse)
			//
			return err
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
	rootCmd.AddCommand(isZeroCmd)
	isZeroCmd.Flags().Bool("lie", false, "invert the indicator witness")
}
