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
	"math/rand"
	"os"

	"github.com/consensys/go-revc/pkg/ancilla"
	"github.com/consensys/go-revc/pkg/bits"
	"github.com/consensys/go-revc/pkg/ir/bexp"
	"github.com/consensys/go-revc/pkg/synth"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Beyond this many variables, assignments are sampled rather than
// enumerated.
const exhaustiveLimit = 10

var checkCmd = &cobra.Command{
	Use:   "check [flags] expression_file",
	Short: "check compiled circuits against their source expressions.",
	Long: `Compile the expression(s) in the given file under all three strategies and
	 evaluate each resulting circuit against the expression on every assignment
	 (or a random sample for expressions over many variables), confirming that
	 outputs agree and that scratch bits are returned to zero.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		exprs := ReadExpressionFile(args[0])
		failed := false
		//
		for _, strategy := range []synth.Strategy{synth.Pebbled, synth.Boundaries, synth.Bennett} {
			if ok := checkStrategy(strategy, exprs, GetUint(cmd, "samples")); ok {
				fmt.Printf("%-10s: PASS\n", strategy)
			} else {
				fmt.Printf("%-10s: FAIL\n", strategy)
				failed = true
			}
		}
		//
		if failed {
			os.Exit(1)
		}
	},
}

// checkStrategy confirms, for every expression and every (enumerated or
// sampled) assignment, that the compiled circuit writes the expression's
// value to its output bit, leaves the residual heap reading zero, and leaves
// every live scratch bit other than the outputs reading zero.
func checkStrategy(strategy synth.Strategy, exprs []bexp.Expr, samples uint) bool {
	simped := make([]bexp.Expr, len(exprs))
	//
	for i, e := range exprs {
		simped[i] = bexp.Simps(e)
	}
	//
	heap := ancilla.Above(bits.Id(maxVar(exprs)) + 1)
	result := synth.FoldStrategy(strategy, heap, simped)
	outputs := bits.NewSet(result.Outputs...)
	//
	for i, e := range exprs {
		vars := e.Vars()
		//
		for _, st := range assignments(vars, samples) {
			in := e.Eval(st)
			out := result.Circuit.Eval(st)
			//
			if out.Get(result.Outputs[i]) != in {
				log.Debugf("%s: output %d disagrees on %s", strategy, result.Outputs[i], st.Support())
				return false
			} else if !result.Heap.ZeroIn(out) {
				log.Debugf("%s: residual heap dirtied on %s", strategy, st.Support())
				return false
			}
			//
			for _, a := range result.Ancillas {
				if !outputs.Contains(a) && out.Get(a) {
					log.Debugf("%s: live scratch %d dirtied on %s", strategy, a, st.Support())
					return false
				}
			}
		}
	}
	//
	return true
}

// assignments enumerates every boolean assignment of a given variable set,
// or samples uniformly when the set is too large to enumerate.
func assignments(vars bits.Set, samples uint) []bits.State {
	var result []bits.State
	//
	if vars.Len() <= exhaustiveLimit {
		for mask := 0; mask < (1 << vars.Len()); mask++ {
			st := bits.NewState()
			//
			for i, v := range vars {
				st = st.Put(v, mask&(1<<i) != 0)
			}
			//
			result = append(result, st)
		}
	} else {
		// Fixed seed keeps checking deterministic.
		rnd := rand.New(rand.NewSource(0))
		//
		for n := uint(0); n < samples; n++ {
			st := bits.NewState()
			//
			for _, v := range vars {
				st = st.Put(v, rnd.Intn(2) == 1)
			}
			//
			result = append(result, st)
		}
	}
	//
	return result
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Uint("samples", 1000, "assignments sampled for wide expressions")
}
