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

// CompilePebbled xors the value of a given expression into a caller-supplied
// target, uncomputing inline at every conjunction: each conjunction borrows
// scratch bits for its operands and hands them back immediately after its
// Toffoli fires.  This trades a larger gate count for the lowest peak number
// of simultaneously live scratch bits.
func CompilePebbled(h ancilla.Heap, target bits.Id, e bexp.Expr) Result {
	checkCompile(h, target, e)
	//
	h1, anc, c := pebbleInPlace(h, target, e)
	//
	return Result{h1, target, anc, c}
}

// CompilePebbledOop computes the value of a given expression into a bit of
// the synthesizer's choosing, uncomputing inline at every conjunction.  Only
// the output bit remains borrowed.
func CompilePebbledOop(h ancilla.Heap, e bexp.Expr) Result {
	checkCompileOop(h, e)
	//
	h1, r, anc, c := pebbleOutOfPlace(h, e)
	//
	return Result{h1, r, anc, c}
}

// pebbleInPlace mirrors compileInPlace except at conjunctions, where the
// operand circuits are immediately undone once the Toffoli has fired and
// their scratch bits fold back into the heap.
func pebbleInPlace(h ancilla.Heap, target bits.Id, e bexp.Expr) (ancilla.Heap, []bits.Id, gate.Circuit) {
	switch e := e.(type) {
	case bexp.False:
		return h, nil, nil
	case bexp.Var:
		return h, nil, gate.Circuit{gate.CNot{C: e.Index, A: target}}
	case bexp.Not:
		h1, anc, c := pebbleInPlace(h, target, e.Arg)
		//
		return h1, anc, c.Append(gate.Circuit{gate.Not{A: target}})
	case bexp.Xor:
		h1, anc1, c1 := pebbleInPlace(h, target, e.Left)
		h2, anc2, c2 := pebbleInPlace(h1, target, e.Right)
		//
		return h2, append(anc1, anc2...), c1.Append(c2)
	case bexp.And:
		h1, rx, anc1, c1 := pebbleOutOfPlace(h, e.Left)
		h2, ry, anc2, c2 := pebbleOutOfPlace(h1, e.Right)
		// Undo both operand circuits once the conjunction has fired.
		body := c1.Append(c2)
		cleanup := body.Uncompute(target).Reverse()
		h3 := h2.InsertAll(anc1).InsertAll(anc2)
		//
		return h3, nil, body.Append(gate.Circuit{joinInto(rx, ry, target)}, cleanup)
	default:
		panic("unreachable")
	}
}

// pebbleOutOfPlace computes an expression's value into a bit of its own
// under the pebbling discipline.
func pebbleOutOfPlace(h ancilla.Heap, e bexp.Expr) (ancilla.Heap, bits.Id, []bits.Id, gate.Circuit) {
	if v, ok := e.(bexp.Var); ok {
		return h, v.Index, nil, nil
	}
	//
	h1, target := h.PopMin()
	h2, anc, c := pebbleInPlace(h1, target, e)
	//
	return h2, target, append([]bits.Id{target}, anc...), c
}
