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
	"testing"

	"github.com/consensys/go-revc/pkg/bits"
	"github.com/stretchr/testify/assert"
)

func Test_Not_00(t *testing.T) {
	g := Not{A: 1}
	st := g.Apply(bits.NewState())
	//
	assert.True(t, st.Get(1))
	assert.False(t, st.Get(0))
	assert.Equal(t, "NOT 1", g.String())
}

func Test_CNot_00(t *testing.T) {
	g := CNot{C: 0, A: 1}
	// Control clear: target untouched.
	assert.False(t, g.Apply(bits.NewState()).Get(1))
	// Control set: target flipped.
	assert.True(t, g.Apply(bits.StateOf(0)).Get(1))
	assert.Equal(t, "CNOT 0 1", g.String())
}

func Test_Toff_00(t *testing.T) {
	g := Toff{C1: 0, C2: 1, A: 2}
	//
	assert.False(t, g.Apply(bits.StateOf(0)).Get(2))
	assert.False(t, g.Apply(bits.StateOf(1)).Get(2))
	assert.True(t, g.Apply(bits.StateOf(0, 1)).Get(2))
	assert.Equal(t, "TOFF 0 1 2", g.String())
}

func Test_WellFormed_00(t *testing.T) {
	assert.True(t, Not{A: 0}.WellFormed())
	assert.True(t, CNot{C: 0, A: 1}.WellFormed())
	assert.False(t, CNot{C: 1, A: 1}.WellFormed())
	assert.True(t, Toff{C1: 0, C2: 1, A: 2}.WellFormed())
	assert.False(t, Toff{C1: 0, C2: 0, A: 2}.WellFormed())
	assert.False(t, Toff{C1: 0, C2: 2, A: 2}.WellFormed())
}

func Test_Gate_SelfInverse(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	//
	for i := 0; i < 200; i++ {
		g := randomGate(rnd, 6)
		st := randomState(rnd, 6)
		// Applying any gate twice is the identity.
		if !g.Apply(g.Apply(st)).Equals(st) {
			t.Fatalf("%s is not self inverse", g)
		}
	}
}

func Test_Gate_Sets(t *testing.T) {
	g := Toff{C1: 3, C2: 1, A: 2}
	//
	assert.True(t, g.Uses().Equals(bits.NewSet(1, 2, 3)))
	assert.True(t, g.Controls().Equals(bits.NewSet(1, 3)))
	assert.Equal(t, bits.Id(2), g.Target())
}

// ===================================================================

func randomGate(rnd *rand.Rand, width int) Gate {
	a := bits.Id(rnd.Intn(width))
	//
	switch rnd.Intn(3) {
	case 0:
		return Not{A: a}
	case 1:
		c := bits.Id((int(a) + 1 + rnd.Intn(width-1)) % width)
		return CNot{C: c, A: a}
	default:
		c1 := bits.Id((int(a) + 1 + rnd.Intn(width-1)) % width)
		c2 := bits.Id((int(a) + 1 + rnd.Intn(width-1)) % width)
		//
		for c2 == c1 {
			c2 = bits.Id((int(a) + 1 + rnd.Intn(width-1)) % width)
		}
		//
		return Toff{C1: c1, C2: c2, A: a}
	}
}

func randomState(rnd *rand.Rand, width int) bits.State {
	st := bits.NewState()
	//
	for i := 0; i < width; i++ {
		st = st.Put(bits.Id(i), rnd.Intn(2) == 1)
	}
	//
	return st
}
