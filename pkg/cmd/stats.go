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

	"github.com/consensys/go-revc/pkg/ancilla"
	"github.com/consensys/go-revc/pkg/bits"
	"github.com/consensys/go-revc/pkg/ir/bexp"
	"github.com/consensys/go-revc/pkg/synth"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var statsCmd = &cobra.Command{
	Use:   "stats [flags] expression_file",
	Short: "report circuit statistics per strategy.",
	Long: `Compile the expression(s) in the given file under all three strategies and
	 tabulate gate counts, qubit counts and live ancilla counts for each.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		exprs := ReadExpressionFile(args[0])
		printStats(exprs)
	},
}

// printStats tabulates per-strategy circuit shape, truncating each
// expression's text to the available terminal width.
func printStats(exprs []bexp.Expr) {
	width := 80
	// Use real terminal width when attached to one.
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 40 {
		width = w
	}
	//
	for _, e := range exprs {
		text := e.String()
		//
		if len(text) > width-2 {
			text = text[:width-5] + "..."
		}
		//
		fmt.Println(text)
		fmt.Printf("  %-10s %8s %8s %8s\n", "strategy", "gates", "qubits", "live")
		//
		for _, strategy := range []synth.Strategy{synth.Pebbled, synth.Boundaries, synth.Bennett} {
			simped := bexp.Simps(e)
			heap := ancilla.Above(e.MaxVar() + 1)
			result := synth.CompileOopWith(strategy, heap, simped)
			qubits := result.Circuit.Uses()
			qubits.UnionWith(bits.NewSet(result.Output))
			//
			fmt.Printf("  %-10s %8d %8d %8d\n", strategy,
				len(result.Circuit), qubits.Len(), len(result.Ancillas))
		}
	}
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
