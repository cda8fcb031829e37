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
	"github.com/stretchr/testify/require"
)

func Test_Parse_00(t *testing.T) {
	e, err := Parse("(and (xor x0 x1) (not x2))")
	//
	require.NoError(t, err)
	assert.True(t, Equal(e, And{Xor{Var{0}, Var{1}}, Not{Var{2}}}))
}

func Test_Parse_01(t *testing.T) {
	e, err := Parse("false")
	require.NoError(t, err)
	assert.True(t, Equal(e, False{}))
	// Truth is shorthand for negated false.
	e, err = Parse("true")
	require.NoError(t, err)
	assert.True(t, Equal(e, Not{False{}}))
}

func Test_Parse_02(t *testing.T) {
	// N-ary connectives associate to the left.
	e, err := Parse("(xor x0 x1 x2)")
	//
	require.NoError(t, err)
	assert.True(t, Equal(e, Xor{Xor{Var{0}, Var{1}}, Var{2}}))
}

func Test_Parse_03(t *testing.T) {
	for _, malformed := range []string{"", "(", ")", "(and x0)", "(or x0 x1)", "x", "y0", "(not)", "((and x0 x1))"} {
		if _, err := Parse(malformed); err == nil {
			t.Errorf("accepted malformed input \"%s\"", malformed)
		}
	}
}

func Test_Parse_04(t *testing.T) {
	// Comments and whitespace are ignored.
	exprs, err := ParseAll("; two expressions\n(and x0 x1)\n\t(not x2)\n")
	//
	require.NoError(t, err)
	require.Equal(t, 2, len(exprs))
	assert.True(t, Equal(exprs[0], And{Var{0}, Var{1}}))
	assert.True(t, Equal(exprs[1], Not{Var{2}}))
}

func Test_Parse_Roundtrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(53))
	//
	for i := 0; i < 500; i++ {
		e := randomExpr(rnd, 4, 4)
		back, err := Parse(e.String())
		//
		require.NoError(t, err)
		//
		if !Equal(e, back) {
			t.Fatalf("round trip changed %s into %s", e, back)
		}
	}
}
