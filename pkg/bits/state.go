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
package bits

// State is a total assignment of boolean values to bits.  Bits never
// explicitly assigned read as false.  States are values: Put and Flip return
// updated copies, leaving the receiver untouched.
type State struct {
	inner Map[bool]
}

// NewState constructs the all-zero state.
func NewState() State {
	return State{NewMap(false)}
}

// StateOf constructs a state in which exactly the given bits are set.
func StateOf(ids ...Id) State {
	st := NewState()
	//
	for _, id := range ids {
		st = st.Put(id, true)
	}
	//
	return st
}

// Get returns the value of a given bit.
func (p State) Get(id Id) bool {
	return p.inner.Get(id)
}

// Put returns a copy of this state with a given bit set to a given value.
func (p State) Put(id Id, value bool) State {
	return State{p.inner.Put(id, value)}
}

// Flip returns a copy of this state with a given bit toggled.
func (p State) Flip(id Id) State {
	return p.Put(id, !p.Get(id))
}

// Support returns the set of bits explicitly assigned in this state.  Every
// bit outside the support reads as false.
func (p State) Support() Set {
	return p.inner.Keys()
}

// Equals determines whether two states assign the same value to every bit.
func (p State) Equals(other State) bool {
	keys := p.Support()
	keys.UnionWith(other.Support())
	//
	for _, id := range keys {
		if p.Get(id) != other.Get(id) {
			return false
		}
	}
	//
	return true
}
