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
	"strconv"

	"github.com/consensys/go-plonkish/pkg/field/bls12_377"
	"github.com/consensys/go-plonkish/pkg/gadget"
	"github.com/consensys/go-plonkish/pkg/schema"
	"github.com/consensys/go-plonkish/pkg/trace"
	"github.com/spf13/cobra"
)

// rangeCheckCmd checks a single value against a range-check circuit.
var rangeCheckCmd = &cobra.Command{
	Use:   "rangecheck [flags] value bound",
	Short: "Check that a value lies in [0, bound).",
	Long: `Check that a value lies in [0, bound), using a vanishing-polynomial
	range check of degree bound.  Only viable for small bounds.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		bound, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			fmt.Println(err)
			os.Exit(3)
		}
		//
		var (
			sch     = schema.New[bls12_377.Element]()
			value   = sch.NewAdviceColumn("value")
			config  = gadget.ConfigureRangeCheck(sch, value, bound)
			chip    = gadget.NewRangeCheckChip(config)
			builder = trace.NewBuilder(sch)
		)
		//
		if err := chip.Assign(builder, parseElement(args[0])); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		runCheck(sch, builder.Seal())
	},
}

func init() {
	rootCmd.AddCommand(rangeCheckCmd)
}
