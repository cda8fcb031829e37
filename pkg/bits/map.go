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

// Map is a total mapping from bit identifiers to values of type V.  Every
// lookup succeeds: identifiers never explicitly assigned map to a default
// value fixed at construction time.  Maps are values; Put returns an updated
// copy and never mutates the receiver.
type Map[V any] struct {
	def     V
	entries map[Id]V
}

// NewMap constructs an empty total map with a given default value.
func NewMap[V any](def V) Map[V] {
	return Map[V]{def, nil}
}

// Get returns the value a given identifier maps to, falling back on the
// default for identifiers never assigned.
func (p Map[V]) Get(id Id) V {
	if v, ok := p.entries[id]; ok {
		return v
	}
	//
	return p.def
}

// Put returns a copy of this map in which the given identifier maps to the
// given value.
func (p Map[V]) Put(id Id, value V) Map[V] {
	nentries := make(map[Id]V, len(p.entries)+1)
	//
	for k, v := range p.entries {
		nentries[k] = v
	}
	//
	nentries[id] = value
	//
	return Map[V]{p.def, nentries}
}

// Keys returns the set of identifiers explicitly assigned in this map.
// Identifiers outside this set map to the default.
func (p Map[V]) Keys() Set {
	var keys Set
	//
	for k := range p.entries {
		keys.Insert(k)
	}
	//
	return keys
}
