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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Distrib_00(t *testing.T) {
	// (x0 ⊕ x1) ∧ x2 distributes across the exclusive-or.
	e := Distrib(Xor{Var{0}, Var{1}}, Var{2})
	//
	assert.True(t, Equal(e, Xor{And{Var{0}, Var{2}}, And{Var{1}, Var{2}}}))
}

func Test_Distrib_01(t *testing.T) {
	// Neither argument an exclusive-or: plain conjunction.
	e := Distrib(Var{0}, Not{Var{1}})
	//
	assert.True(t, Equal(e, And{Var{0}, Not{Var{1}}}))
}

func Test_ToXDNF_00(t *testing.T) {
	// Negation becomes exclusive-or with truth.
	e := ToXDNF(Not{Var{0}})
	//
	assert.True(t, Equal(e, Xor{True(), Var{0}}))
}

func Test_ToXDNF_01(t *testing.T) {
	rnd := rand.New(rand.NewSource(29))
	//
	for i := 0; i < 500; i++ {
		e := randomExpr(rnd, 4, 4)
		x := ToXDNF(e)
		// Meaning preserved, and shape is exclusive-or of products.
		checkEquivalent(t, e, x, 4)
		//
		if !isXdnf(x) {
			t.Fatalf("not in normal form: %s", x)
		}
	}
}

func Test_UnXDNF_00(t *testing.T) {
	a := Var{0}
	b := Var{1}
	d := Var{2}
	// Shared conjunct refactors out of the exclusive-or, in every position.
	assert.True(t, Equal(UnXDNF(Xor{And{a, b}, And{a, d}}), And{a, Xor{b, d}}))
	assert.True(t, Equal(UnXDNF(Xor{And{a, b}, And{d, a}}), And{a, Xor{b, d}}))
	assert.True(t, Equal(UnXDNF(Xor{And{b, a}, And{a, d}}), And{a, Xor{b, d}}))
	assert.True(t, Equal(UnXDNF(Xor{And{b, a}, And{d, a}}), And{a, Xor{b, d}}))
}

func Test_UnXDNF_01(t *testing.T) {
	rnd := rand.New(rand.NewSource(31))
	//
	for i := 0; i < 500; i++ {
		e := randomExpr(rnd, 4, 4)
		// Refactoring preserves meaning, before and after normalisation.
		checkEquivalent(t, e, UnXDNF(e), 4)
		checkEquivalent(t, e, UnXDNF(ToXDNF(e)), 4)
	}
}

func Test_Simps_00(t *testing.T) {
	rnd := rand.New(rand.NewSource(37))
	//
	for i := 0; i < 500; i++ {
		e := randomExpr(rnd, 4, 4)
		checkEquivalent(t, e, Simps(e), 4)
	}
}

// ===================================================================

// isXdnf recognises an exclusive-or of conjunctions of literals, where a
// literal is a variable, false, or negated false.
func isXdnf(e Expr) bool {
	if x, ok := e.(Xor); ok {
		return isXdnf(x.Left) && isXdnf(x.Right)
	}
	//
	return isProduct(e)
}

func isProduct(e Expr) bool {
	if a, ok := e.(And); ok {
		return isProduct(a.Left) && isProduct(a.Right)
	}
	//
	return isLiteral(e)
}

func isLiteral(e Expr) bool {
	switch e := e.(type) {
	case False, Var:
		return true
	case Not:
		_, ok := e.Arg.(False)
		return ok
	default:
		return false
	}
}
