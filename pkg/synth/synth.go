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

// Package synth lowers boolean expressions into reversible circuits.  Each
// compilation borrows scratch bits from an ancilla heap and produces a gate
// sequence which xors the expression's value into a target bit.  Three
// cleanup disciplines are provided: none beyond a single trailing uncompute
// pass (Boundaries), an inline uncompute at every conjunction (Pebbled), and
// a deferred compute-then-mirror schema (Bennett).
package synth

import (
	"fmt"

	"github.com/consensys/go-revc/pkg/ancilla"
	"github.com/consensys/go-revc/pkg/bits"
	"github.com/consensys/go-revc/pkg/ir/bexp"
	"github.com/consensys/go-revc/pkg/ir/gate"
)

// Result is the outcome of one compilation: the residual heap, the bit
// holding the result, the scratch bits still borrowed from the heap, and the
// synthesized circuit.  Every borrowed bit is either back in the residual
// heap or listed as live, never both.
type Result struct {
	// Heap remaining after all allocations and releases.
	Heap ancilla.Heap
	// Output is the bit into which the expression's value was computed.
	Output bits.Id
	// Ancillas lists the bits borrowed from the initial heap and still in
	// use on return.
	Ancillas []bits.Id
	// Circuit is the synthesized gate sequence.
	Circuit gate.Circuit
}

// Compile xors the value of a given expression into a caller-supplied
// target, with no cleanup: scratch bits borrowed for conjunctions are left
// holding intermediate values and reported live.
//
// The caller must supply a heap disjoint from the expression's variables and
// a target which is neither free in the heap nor read by the expression.
func Compile(h ancilla.Heap, target bits.Id, e bexp.Expr) Result {
	checkCompile(h, target, e)
	//
	h1, anc, c := compileInPlace(h, target, e)
	//
	return Result{h1, target, anc, c}
}

// CompileOop computes the value of a given expression into a bit of the
// synthesizer's choosing: the variable itself for a bare variable, otherwise
// a freshly allocated scratch bit.
func CompileOop(h ancilla.Heap, e bexp.Expr) Result {
	checkCompileOop(h, e)
	//
	h1, r, anc, c := compileOutOfPlace(h, e)
	//
	return Result{h1, r, anc, c}
}

// compileInPlace recurses over an expression, xoring its value into the
// given target.  The target is written and never read: it appears only as
// the target of emitted gates, never as a control.
func compileInPlace(h ancilla.Heap, target bits.Id, e bexp.Expr) (ancilla.Heap, []bits.Id, gate.Circuit) {
	switch e := e.(type) {
	case bexp.False:
		return h, nil, nil
	case bexp.Var:
		return h, nil, gate.Circuit{gate.CNot{C: e.Index, A: target}}
	case bexp.Not:
		h1, anc, c := compileInPlace(h, target, e.Arg)
		//
		return h1, anc, c.Append(gate.Circuit{gate.Not{A: target}})
	case bexp.Xor:
		h1, anc1, c1 := compileInPlace(h, target, e.Left)
		h2, anc2, c2 := compileInPlace(h1, target, e.Right)
		//
		return h2, append(anc1, anc2...), c1.Append(c2)
	case bexp.And:
		h1, rx, anc1, c1 := compileOutOfPlace(h, e.Left)
		h2, ry, anc2, c2 := compileOutOfPlace(h1, e.Right)
		//
		return h2, append(anc1, anc2...), c1.Append(c2, gate.Circuit{joinInto(rx, ry, target)})
	default:
		panic("unreachable")
	}
}

// compileOutOfPlace computes an expression's value into a bit of its own: a
// bare variable is its own result, and anything else borrows the smallest
// free bit and computes in place into it.
func compileOutOfPlace(h ancilla.Heap, e bexp.Expr) (ancilla.Heap, bits.Id, []bits.Id, gate.Circuit) {
	if v, ok := e.(bexp.Var); ok {
		return h, v.Index, nil, nil
	}
	//
	h1, target := h.PopMin()
	h2, anc, c := compileInPlace(h1, target, e)
	//
	return h2, target, append([]bits.Id{target}, anc...), c
}

// joinInto emits the conjunction of two computed bits into a target.  The
// operand bits coincide only when both operands were the same bare variable,
// in which case the conjunction degenerates to the variable itself and a
// controlled-not keeps the output well formed.
func joinInto(rx bits.Id, ry bits.Id, target bits.Id) gate.Gate {
	if rx == ry {
		return gate.CNot{C: rx, A: target}
	}
	//
	return gate.Toff{C1: rx, C2: ry, A: target}
}

// checkCompile panics unless the in-place precondition holds: heap, target
// and variables pairwise disjoint.
func checkCompile(h ancilla.Heap, target bits.Id, e bexp.Expr) {
	vars := e.Vars()
	//
	if !h.Disjoint(vars) {
		panic(fmt.Sprintf("heap %s overlaps variables %s", h, vars))
	} else if h.Contains(target) {
		panic(fmt.Sprintf("target %d free in heap %s", target, h))
	} else if vars.Contains(target) {
		panic(fmt.Sprintf("target %d read by expression %s", target, e))
	}
}

// checkCompileOop panics unless the out-of-place precondition holds: heap
// and variables disjoint.
func checkCompileOop(h ancilla.Heap, e bexp.Expr) {
	vars := e.Vars()
	//
	if !h.Disjoint(vars) {
		panic(fmt.Sprintf("heap %s overlaps variables %s", h, vars))
	}
}
