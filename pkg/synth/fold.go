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
package synth

import (
	"sort"

	"github.com/consensys/go-revc/pkg/ancilla"
	"github.com/consensys/go-revc/pkg/bits"
	"github.com/consensys/go-revc/pkg/ir/bexp"
	"github.com/consensys/go-revc/pkg/ir/gate"
)

// ArrayResult is the outcome of compiling a fixed-length array of
// expressions through a single heap: one output bit per input expression (in
// the caller's order), the combined circuit, and every scratch bit still
// borrowed.
type ArrayResult struct {
	// Heap remaining after all allocations and releases.
	Heap ancilla.Heap
	// Outputs holds the bit computed for each input expression, indexed as
	// the inputs were.
	Outputs []bits.Id
	// Ancillas lists the bits borrowed from the initial heap and still in
	// use on return.
	Ancillas []bits.Id
	// Circuit is the combined gate sequence.
	Circuit gate.Circuit
}

// FoldClean compiles an array of expressions under the Boundaries
// discipline, threading one heap through the whole array.  Expressions are
// compiled in order of ascending conjunction depth, which improves scratch
// reuse; outputs are nevertheless reported in the caller's order.
func FoldClean(h ancilla.Heap, exprs []bexp.Expr) ArrayResult {
	return foldWith(h, exprs, true, CompileCleanOop)
}

// FoldPebbled compiles an array of expressions under the Pebbled
// discipline, threading one heap through the whole array and compiling in
// order of ascending conjunction depth.
func FoldPebbled(h ancilla.Heap, exprs []bexp.Expr) ArrayResult {
	return foldWith(h, exprs, true, CompilePebbledOop)
}

// FoldBennett compiles an array of expressions under the Bennett discipline,
// threading one heap through the whole array in the caller's order.
func FoldBennett(h ancilla.Heap, exprs []bexp.Expr) ArrayResult {
	return foldWith(h, exprs, false, CompileBennettOop)
}

// FoldStrategy compiles an array of expressions under a given strategy.
func FoldStrategy(s Strategy, h ancilla.Heap, exprs []bexp.Expr) ArrayResult {
	switch s {
	case Pebbled:
		return FoldPebbled(h, exprs)
	case Boundaries:
		return FoldClean(h, exprs)
	case Bennett:
		return FoldBennett(h, exprs)
	default:
		panic("unreachable")
	}
}

// foldWith threads one heap through an array of out-of-place compilations,
// optionally visiting expressions in order of ascending conjunction depth.
func foldWith(h ancilla.Heap, exprs []bexp.Expr, byDepth bool,
	compile func(ancilla.Heap, bexp.Expr) Result) ArrayResult {
	order := make([]int, len(exprs))
	//
	for i := range order {
		order[i] = i
	}
	//
	if byDepth {
		sort.SliceStable(order, func(i, j int) bool {
			return exprs[order[i]].AndDepth() < exprs[order[j]].AndDepth()
		})
	}
	//
	var (
		outputs = make([]bits.Id, len(exprs))
		anc     []bits.Id
		circuit gate.Circuit
	)
	//
	for _, i := range order {
		r := compile(h, exprs[i])
		h = r.Heap
		outputs[i] = r.Output
		anc = append(anc, r.Ancillas...)
		circuit = circuit.Append(r.Circuit)
	}
	//
	return ArrayResult{h, outputs, anc, circuit}
}
