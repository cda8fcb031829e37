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

	"github.com/consensys/go-revc/pkg/bits"
	"github.com/stretchr/testify/assert"
)

func Test_Esop_00(t *testing.T) {
	assert.Equal(t, 0, len(ToEsop(False{})))
	assert.Equal(t, Esop{bits.NewSet(3)}, ToEsop(Var{3}))
	// Truth is the empty cube.
	tt := ToEsop(Not{False{}})
	assert.Equal(t, 1, len(tt))
	assert.Equal(t, 0, tt[0].Len())
}

func Test_Esop_01(t *testing.T) {
	// x0 ⊕ x0 cancels outright.
	assert.Equal(t, 0, len(ToEsop(Xor{Var{0}, Var{0}})))
	// x0 ∧ x0 collapses to x0.
	assert.Equal(t, Esop{bits.NewSet(0)}, ToEsop(And{Var{0}, Var{0}}))
}

func Test_Esop_02(t *testing.T) {
	// (x0 ⊕ x1) ∧ x2 multiplies out to two cubes.
	e := And{Xor{Var{0}, Var{1}}, Var{2}}
	s := ToEsop(e)
	//
	assert.Equal(t, 2, len(s))
	assert.True(t, s[0].Equals(bits.NewSet(0, 2)))
	assert.True(t, s[1].Equals(bits.NewSet(1, 2)))
}

func Test_Esop_Algebra_00(t *testing.T) {
	rnd := rand.New(rand.NewSource(41))
	//
	for i := 0; i < 200; i++ {
		l := ToEsop(randomExpr(rnd, 3, 4))
		// Symmetric difference with oneself always cancels.
		assert.Equal(t, 0, len(XorEsop(l, l)))
		// False annihilates conjunction and is the unit of exclusive-or.
		assert.Equal(t, 0, len(AndEsop(l, EsopFalse())))
		assert.Equal(t, l, XorEsop(l, EsopFalse()))
	}
}

func Test_Esop_Eval_00(t *testing.T) {
	rnd := rand.New(rand.NewSource(43))
	//
	for i := 0; i < 500; i++ {
		e := randomExpr(rnd, 4, 4)
		s := ToEsop(e)
		back := FromEsop(s)
		//
		for _, st := range allStates(4) {
			if e.Eval(st) != s.Eval(st) {
				t.Fatalf("%s and its cube list disagree on %s", e, st.Support())
			} else if e.Eval(st) != back.Eval(st) {
				t.Fatalf("%s and %s disagree on %s", e, back, st.Support())
			}
		}
	}
}

func Test_Esop_Canonical_00(t *testing.T) {
	rnd := rand.New(rand.NewSource(47))
	// Equal functions built along different routes compare equal.
	for i := 0; i < 200; i++ {
		e1 := randomExpr(rnd, 3, 3)
		e2 := randomExpr(rnd, 3, 3)
		l := ToEsop(Xor{e1, e2})
		r := XorEsop(ToEsop(e1), ToEsop(e2))
		//
		assert.Equal(t, l, r)
	}
}
