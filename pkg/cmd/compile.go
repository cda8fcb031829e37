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
	"strings"

	"github.com/consensys/go-revc/pkg/ancilla"
	"github.com/consensys/go-revc/pkg/bits"
	"github.com/consensys/go-revc/pkg/ir/bexp"
	"github.com/consensys/go-revc/pkg/synth"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var compileCmd = &cobra.Command{
	Use:   "compile [flags] expression_file",
	Short: "compile boolean expressions into a reversible circuit.",
	Long: `Compile the expression(s) in the given file into a single reversible
	 circuit, printed one gate per line.  A file holding several expressions is
	 compiled through one shared ancilla pool, with one output bit each.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		strategy, err := synth.ParseStrategy(GetString(cmd, "strategy"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		exprs := ReadExpressionFile(args[0])
		// Optionally collapse each expression through its cube-list form,
		// cancelling duplicate products before compilation.
		if GetFlag(cmd, "esop") {
			for i, e := range exprs {
				exprs[i] = bexp.FromEsop(bexp.ToEsop(e))
			}
		}
		//
		result := compileExprs(strategy, exprs, !GetFlag(cmd, "raw"))
		// Write circuit
		output := GetString(cmd, "output")
		writeCircuit(result, output)
	},
}

// compileExprs lowers a batch of expressions through one shared ancilla
// pool, optionally normalising and simplifying each beforehand.
func compileExprs(strategy synth.Strategy, exprs []bexp.Expr, simps bool) synth.ArrayResult {
	if simps {
		for i, e := range exprs {
			exprs[i] = bexp.Simps(e)
		}
	}
	// Fresh bits start above every variable in use.
	heap := ancilla.Above(bits.Id(maxVar(exprs)) + 1)
	//
	result := synth.FoldStrategy(strategy, heap, exprs)
	//
	log.Debugf("compiled %d expression(s) to %d gates using %d ancilla(s)",
		len(exprs), len(result.Circuit), len(result.Ancillas))
	//
	return result
}

// writeCircuit prints a compiled circuit in the canonical line-per-gate
// format, followed by the output bits, either to stdout or to a given file.
func writeCircuit(result synth.ArrayResult, filename string) {
	var builder strings.Builder
	//
	if err := result.Circuit.Print(&builder); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	//
	builder.WriteString("OUT")
	//
	for _, out := range result.Outputs {
		builder.WriteString(fmt.Sprintf(" %d", out))
	}
	//
	builder.WriteString("\n")
	//
	if filename == "" {
		fmt.Print(builder.String())
	} else if err := os.WriteFile(filename, []byte(builder.String()), 0644); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().StringP("strategy", "s", "boundaries",
		"select ancilla management (pebbled | boundaries | bennett)")
	compileCmd.Flags().StringP("output", "o", "", "write circuit to a file instead of stdout")
	compileCmd.Flags().Bool("raw", false, "skip normalisation and simplification")
	compileCmd.Flags().Bool("esop", false, "collapse expressions through cube-list form first")
}
