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
	"github.com/consensys/go-revc/pkg/ancilla"
	"github.com/consensys/go-revc/pkg/bits"
	"github.com/consensys/go-revc/pkg/ir/bexp"
	"github.com/consensys/go-revc/pkg/ir/gate"
)

// CompileClean xors the value of a given expression into a caller-supplied
// target and then restores every borrowed scratch bit to zero with a single
// trailing uncompute pass.  All scratch bits return to the heap; the
// returned live list is empty.
func CompileClean(h ancilla.Heap, target bits.Id, e bexp.Expr) Result {
	checkCompile(h, target, e)
	//
	h1, anc, c := compileClean(h, target, e)
	//
	return Result{h1, target, anc, c}
}

// CompileCleanOop computes the value of a given expression into a bit of the
// synthesizer's choosing, restoring all other scratch bits to zero.  Only
// the output bit remains borrowed.
func CompileCleanOop(h ancilla.Heap, e bexp.Expr) Result {
	checkCompileOop(h, e)
	//
	if v, ok := e.(bexp.Var); ok {
		return Result{h, v.Index, nil, nil}
	}
	//
	h1, target := h.PopMin()
	h2, _, c := compileClean(h1, target, e)
	//
	return Result{h2, target, []bits.Id{target}, c}
}

// compileClean computes in place and appends the reversal of the circuit's
// uncomputation, folding every scratch bit back into the heap.  Since the
// target is never a control in the computed circuit, the cleanup suffix
// returns every other written bit to its prior value without perturbing the
// target.
func compileClean(h ancilla.Heap, target bits.Id, e bexp.Expr) (ancilla.Heap, []bits.Id, gate.Circuit) {
	h1, anc, c := compileInPlace(h, target, e)
	cleanup := c.Uncompute(target).Reverse()
	//
	return h1.InsertAll(anc), nil, c.Append(cleanup)
}
