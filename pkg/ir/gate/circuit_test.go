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
package gate

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/consensys/go-revc/pkg/bits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Circuit_Eval_00(t *testing.T) {
	// Compute (x0 xor x1) into bit 2.
	c := Circuit{CNot{C: 0, A: 2}, CNot{C: 1, A: 2}}
	//
	assert.False(t, c.Eval(bits.StateOf(0, 1)).Get(2))
	assert.True(t, c.Eval(bits.StateOf(0)).Get(2))
	assert.True(t, c.Eval(bits.StateOf(1)).Get(2))
	assert.False(t, c.Eval(bits.NewState()).Get(2))
}

func Test_Circuit_Sets_00(t *testing.T) {
	c := Circuit{CNot{C: 0, A: 3}, Toff{C1: 3, C2: 1, A: 2}, Not{A: 3}}
	//
	assert.True(t, c.Uses().Equals(bits.NewSet(0, 1, 2, 3)))
	assert.True(t, c.Controls().Equals(bits.NewSet(0, 1, 3)))
	assert.True(t, c.Mods().Equals(bits.NewSet(2, 3)))
	assert.True(t, c.WellFormed())
}

func Test_Circuit_Reverse_00(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	//
	for i := 0; i < 200; i++ {
		c := randomCircuit(rnd, 6, 10)
		st := randomState(rnd, 6)
		// Reversal is exact inversion.
		if !c.Reverse().Eval(c.Eval(st)).Equals(st) {
			t.Fatalf("reverse failed to invert %s", c)
		}
	}
}

func Test_Circuit_Uncompute_00(t *testing.T) {
	c := Circuit{CNot{C: 1, A: 0}, CNot{C: 2, A: 3}, Not{A: 0}, Toff{C1: 1, C2: 2, A: 4}}
	u := c.Uncompute(0)
	//
	require.Equal(t, Circuit{CNot{C: 2, A: 3}, Toff{C1: 1, C2: 2, A: 4}}, u)
	// Dropped gates only ever target the removed bit.
	assert.True(t, u.Uses().SubsetOf(c.Uses()))
	assert.False(t, u.Mods().Contains(0))
}

// Cleanup never perturbs the bit it is excused from, provided that bit is
// never a control.
func Test_Circuit_Uncompute_01(t *testing.T) {
	rnd := rand.New(rand.NewSource(13))
	//
	for i := 0; i < 500; i++ {
		r := bits.Id(0)
		c := randomPureCircuit(rnd, r, 6, 10)
		st := randomState(rnd, 6)
		//
		mid := c.Eval(st)
		out := c.Uncompute(r).Reverse().Eval(mid)
		//
		if out.Get(r) != mid.Get(r) {
			t.Fatalf("cleanup perturbed %d: %s", r, c)
		}
	}
}

// Computing then cleaning up restores every bit other than the excused one.
func Test_Circuit_Uncompute_02(t *testing.T) {
	rnd := rand.New(rand.NewSource(17))
	//
	for i := 0; i < 500; i++ {
		r := bits.Id(0)
		c := randomPureCircuit(rnd, r, 6, 10)
		st := randomState(rnd, 6)
		//
		out := c.Append(c.Uncompute(r).Reverse()).Eval(st)
		//
		for b := bits.Id(1); b < 6; b++ {
			if out.Get(b) != st.Get(b) {
				t.Fatalf("cleanup failed to restore %d: %s", b, c)
			}
		}
	}
}

func Test_Circuit_Uncompute_03(t *testing.T) {
	rnd := rand.New(rand.NewSource(19))
	//
	for i := 0; i < 200; i++ {
		c := randomCircuit(rnd, 6, 10)
		u := c.Uncompute(2)
		//
		assert.True(t, u.Uses().SubsetOf(c.Uses()))
		assert.True(t, u.Mods().SubsetOf(c.Mods()))
		assert.False(t, u.Mods().Contains(2))
	}
}

func Test_Circuit_Print_00(t *testing.T) {
	c := Circuit{Not{A: 0}, CNot{C: 0, A: 1}, Toff{C1: 0, C2: 1, A: 2}}
	//
	var builder strings.Builder
	//
	require.NoError(t, c.Print(&builder))
	assert.Equal(t, "NOT 0\nCNOT 0 1\nTOFF 0 1 2\n", builder.String())
}

// ===================================================================

func randomCircuit(rnd *rand.Rand, width int, length int) Circuit {
	c := make(Circuit, length)
	//
	for i := range c {
		c[i] = randomGate(rnd, width)
	}
	//
	return c
}

// randomPureCircuit generates a circuit in which a given bit may be written
// but never read as a control.
func randomPureCircuit(rnd *rand.Rand, r bits.Id, width int, length int) Circuit {
	var c Circuit
	//
	for len(c) < length {
		g := randomGate(rnd, width)
		//
		if !g.Controls().Contains(r) {
			c = append(c, g)
		}
	}
	//
	return c
}
