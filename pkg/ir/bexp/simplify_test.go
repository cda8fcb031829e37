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

func Test_Simplify_00(t *testing.T) {
	// Conjunction with false collapses either way round.
	assert.True(t, Equal(Simplify(And{False{}, Var{3}}), False{}))
	assert.True(t, Equal(Simplify(And{Var{3}, False{}}), False{}))
}

func Test_Simplify_01(t *testing.T) {
	// Exclusive-or with false is dropped either way round.
	assert.True(t, Equal(Simplify(Xor{False{}, Var{2}}), Var{2}))
	assert.True(t, Equal(Simplify(Xor{Var{2}, False{}}), Var{2}))
}

func Test_Simplify_02(t *testing.T) {
	// Double negation cancels.
	assert.True(t, Equal(Simplify(Not{Not{Var{7}}}), Var{7}))
	assert.True(t, Equal(Simplify(Not{Not{Not{Var{7}}}}), Not{Var{7}}))
}

func Test_Simplify_03(t *testing.T) {
	// Self-cancellation, all four rotations.
	z := And{Var{1}, Var{2}}
	//
	assert.True(t, Equal(Simplify(Xor{Var{0}, Xor{Var{0}, Var{1}}}), Var{1}))
	assert.True(t, Equal(Simplify(Xor{Var{0}, Xor{z, Var{0}}}), z))
	assert.True(t, Equal(Simplify(Xor{Xor{Var{0}, z}, Var{0}}), z))
	assert.True(t, Equal(Simplify(Xor{Xor{z, Var{0}}, Var{0}}), z))
}

func Test_Simplify_04(t *testing.T) {
	// Idempotence, all four rotations.
	z := Xor{Var{1}, Var{2}}
	//
	assert.True(t, Equal(Simplify(And{Var{0}, And{Var{0}, z}}), And{Var{0}, z}))
	assert.True(t, Equal(Simplify(And{Var{0}, And{z, Var{0}}}), And{Var{0}, z}))
	assert.True(t, Equal(Simplify(And{And{Var{0}, z}, Var{0}}), And{Var{0}, z}))
	assert.True(t, Equal(Simplify(And{And{z, Var{0}}, Var{0}}), And{Var{0}, z}))
}

func Test_Simplify_05(t *testing.T) {
	// Matching is one level deep: deeper duplicates survive.
	e := And{Var{0}, And{Var{1}, And{Var{0}, Var{2}}}}
	//
	assert.True(t, Equal(Simplify(e), e))
}

func Test_Simplify_06(t *testing.T) {
	// Children simplify before parents, enabling parent rewrites.
	e := Xor{Var{0}, Xor{Var{0}, Xor{Var{1}, False{}}}}
	//
	assert.True(t, Equal(Simplify(e), Var{1}))
}

func Test_Simplify_Random(t *testing.T) {
	rnd := rand.New(rand.NewSource(23))
	//
	for i := 0; i < 500; i++ {
		e := randomExpr(rnd, 4, 4)
		// Rewrites never change meaning.
		checkEquivalent(t, e, Simplify(e), 4)
	}
}
