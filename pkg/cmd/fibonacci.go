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

// fibonacciCmd checks a fibonacci circuit against supplied public inputs.
var fibonacciCmd = &cobra.Command{
	Use:   "fibonacci [flags] seed1 seed2 result",
	Short: "Check a fibonacci circuit against given public inputs.",
	Long: `Check a fibonacci circuit against given public inputs.
	The circuit computes the sequence from the two seeds, and asserts
	the final element against the expected result.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 3 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		var (
			nrows    = getUint(cmd, "rows")
			sch      = schema.New[bls12_377.Element]()
			advice   = sch.NewAdviceColumn("fib")
			instance = sch.NewInstanceColumn("in")
			config   = gadget.ConfigureFibonacci(sch, advice, instance)
			chip     = gadget.NewFibonacciChip(config)
			builder  = trace.NewBuilder(sch)
		)
		//
		inputs := []bls12_377.Element{
			parseElement(args[0]), parseElement(args[1]), parseElement(args[2]),
		}
		//
		if err := builder.SetInstance(instance, inputs); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		out, err := chip.Assign(builder, nrows)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		if err := chip.ExposePublic(builder, out, 2); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		runCheck(sch, builder.Seal())
	},
}

func init() {
	rootCmd.AddCommand(fibonacciCmd)
	fibonacciCmd.Flags().Uint("rows", 10, "number of sequence elements to synthesise")
}
