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
package bexp

import (
	"github.com/consensys/go-revc/pkg/bits"
)

// Esop is an exclusive-or of cubes, where each cube is the conjunction of a
// set of variables.  The empty list denotes false and the list holding one
// empty cube denotes truth.  Esops are kept canonical: cubes are sorted and
// no cube appears twice, so equal functions built by the operations below
// compare structurally equal.
type Esop []bits.Set

// EsopFalse is the empty exclusive-or.
func EsopFalse() Esop { return nil }

// EsopTrue is the exclusive-or holding just the empty cube.
func EsopTrue() Esop { return Esop{nil} }

// EsopVar is the exclusive-or holding the one-variable cube.
func EsopVar(id bits.Id) Esop { return Esop{bits.NewSet(id)} }

// ToEsop converts an expression into its cube-list form.  The conversion
// distributes conjunction over exclusive-or and cancels cubes occurring an
// even number of times, hence the result can be exponentially larger or
// substantially smaller than the input.
func ToEsop(e Expr) Esop {
	switch e := e.(type) {
	case False:
		return EsopFalse()
	case Var:
		return EsopVar(e.Index)
	case Not:
		return XorEsop(EsopTrue(), ToEsop(e.Arg))
	case And:
		return AndEsop(ToEsop(e.Left), ToEsop(e.Right))
	case Xor:
		return XorEsop(ToEsop(e.Left), ToEsop(e.Right))
	default:
		panic("unreachable")
	}
}

// FromEsop converts a cube list back into an expression tree: an
// exclusive-or chain of conjunction chains.
func FromEsop(s Esop) Expr {
	if len(s) == 0 {
		return False{}
	}
	//
	result := fromCube(s[0])
	//
	for _, cube := range s[1:] {
		result = Xor{result, fromCube(cube)}
	}
	//
	return result
}

// XorEsop forms the exclusive-or of two cube lists, i.e. their symmetric
// difference: cubes present in both cancel.
func XorEsop(l Esop, r Esop) Esop {
	var result Esop
	//
	i := 0
	j := 0
	// Merge sorted cube lists, dropping pairs.
	for i < len(l) && j < len(r) {
		switch {
		case cubeCmp(l[i], r[j]) < 0:
			result = append(result, l[i])
			i++
		case cubeCmp(l[i], r[j]) > 0:
			result = append(result, r[j])
			j++
		default:
			// Equal cubes cancel.
			i++
			j++
		}
	}
	//
	result = append(result, l[i:]...)
	result = append(result, r[j:]...)
	//
	return result
}

// AndEsop forms the conjunction of two cube lists by distributing every cube
// of one across every cube of the other.  Duplicate variables within a
// product collapse and products arising an even number of times cancel.
func AndEsop(l Esop, r Esop) Esop {
	var result Esop
	//
	for _, lc := range l {
		var row Esop
		//
		for _, rc := range r {
			row = XorEsop(row, Esop{bits.Union(lc, rc)})
		}
		//
		result = XorEsop(result, row)
	}
	//
	return result
}

// Eval returns the value of this cube list under a given assignment.
func (p Esop) Eval(st bits.State) bool {
	result := false
	//
	for _, cube := range p {
		value := true
		//
		for _, id := range cube {
			value = value && st.Get(id)
		}
		//
		result = result != value
	}
	//
	return result
}

// fromCube converts one cube into a conjunction chain, with the empty cube
// denoting truth.
func fromCube(cube bits.Set) Expr {
	if len(cube) == 0 {
		return True()
	}
	//
	var result Expr = Var{cube[0]}
	//
	for _, id := range cube[1:] {
		result = And{result, Var{id}}
	}
	//
	return result
}

// cubeCmp orders cubes first by length, then lexicographically by variable
// index.  Any total order works; this one keeps small cubes first.
func cubeCmp(l bits.Set, r bits.Set) int {
	if len(l) != len(r) {
		return len(l) - len(r)
	}
	//
	for i := range l {
		if l[i] != r[i] {
			return int(l[i] - r[i])
		}
	}
	//
	return 0
}
