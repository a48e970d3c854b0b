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

	"github.com/consensys/go-plonkish/pkg/checker"
	"github.com/consensys/go-plonkish/pkg/field/bls12_377"
	"github.com/consensys/go-plonkish/pkg/schema"
	"github.com/consensys/go-plonkish/pkg/trace"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Get an expected flag, or panic if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(3)
	}
	//
	return r
}

// Get an expected uint flag, or panic if an error arises.
func getUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(3)
	}
	//
	return r
}

// Parse a command-line argument as a field element.
func parseElement(arg string) bls12_377.Element {
	val, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		fmt.Println(err)
		os.Exit(3)
	}
	//
	return bls12_377.New(val)
}

// runCheck checks a sealed trace against its schema, printing a report and
// exiting non-zero when the circuit is not satisfied.
func runCheck(sch *schema.Schema[bls12_377.Element], tr *trace.Trace[bls12_377.Element]) {
	failures, err := checker.Check(sch, tr)
	// Structural errors indicate a malformed circuit, not a bad witness.
	if err != nil {
		fmt.Printf("malformed circuit: %s\n", err)
		os.Exit(2)
	}
	//
	if len(failures) == 0 {
		fmt.Println("circuit satisfied")
		return
	}
	//
	printReport(failures)
	os.Exit(1)
}

// printReport prints one line per failure, truncated against the terminal
// width (when stdout is a terminal).
func printReport(failures []schema.Failure) {
	width := 80
	//
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 3 {
			width = w
		}
	}
	//
	for _, failure := range failures {
		msg := failure.Message()
		if len(msg) > width {
			msg = msg[:width-3] + "..."
		}
		//
		fmt.Println(msg)
	}
}
