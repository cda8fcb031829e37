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

// CompileBennett xors the value of a given expression into a caller-supplied
// target under the compute-copy-uncompute schema: every term of the
// expression's exclusive-or spine is computed out of place and copied into
// the target, and all term circuits are undone afterwards in mirrored
// order, leaving only the target non-zero.  Scratch bits end up zero again
// but stay borrowed; none return to the heap.
func CompileBennett(h ancilla.Heap, target bits.Id, e bexp.Expr) Result {
	checkCompile(h, target, e)
	//
	h1, anc, c := compileBennett(h, target, e)
	//
	return Result{h1, target, anc, c}
}

// CompileBennettOop computes the value of a given expression into a bit of
// the synthesizer's choosing under the compute-copy-uncompute schema.
func CompileBennettOop(h ancilla.Heap, e bexp.Expr) Result {
	checkCompileOop(h, e)
	//
	if v, ok := e.(bexp.Var); ok {
		return Result{h, v.Index, nil, nil}
	}
	//
	h1, target := h.PopMin()
	h2, anc, c := compileBennett(h1, target, e)
	//
	return Result{h2, target, append([]bits.Id{target}, anc...), c}
}

// compileBennett accumulates a forward circuit computing and copying each
// exclusive-or term, and its mirror undoing every term circuit in reverse
// order.
func compileBennett(h ancilla.Heap, target bits.Id, e bexp.Expr) (ancilla.Heap, []bits.Id, gate.Circuit) {
	var (
		forward gate.Circuit
		mirror  gate.Circuit
		anc     []bits.Id
	)
	//
	for _, term := range bexp.XorTerms(e) {
		switch term := term.(type) {
		case bexp.False:
			// Contributes nothing.
		case bexp.Var:
			forward = forward.Append(gate.Circuit{gate.CNot{C: term.Index, A: target}})
		default:
			var (
				r bits.Id
				a []bits.Id
				c gate.Circuit
			)
			//
			h, r, a, c = compileOutOfPlace(h, term)
			forward = forward.Append(c, gate.Circuit{gate.CNot{C: r, A: target}})
			mirror = c.Uncompute(target).Reverse().Append(mirror)
			anc = append(anc, a...)
		}
	}
	//
	return h, anc, forward.Append(mirror)
}
