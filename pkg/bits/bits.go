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

import (
	"fmt"
	"sort"
	"strings"
)

// Id identifies a single bit within a circuit or an expression.  Identifiers
// are plain signed integers; ensuring uniqueness across concurrent
// compilations is the caller's responsibility.
type Id int

// Set is an array of unique, sorted bit identifiers.  Mutating operations
// always allocate a fresh backing array, hence copying the header suffices to
// snapshot a set.
type Set []Id

// NewSet constructs a set from zero or more identifiers.
func NewSet(ids ...Id) Set {
	var set Set
	//
	set.InsertAll(ids...)
	//
	return set
}

// Contains returns true if a given identifier is in the set.
//
//nolint:revive
func (p Set) Contains(id Id) bool {
	// Find index where element either does occur, or should occur.
	i := sort.Search(len(p), func(i int) bool {
		return id <= p[i]
	})
	// Check whether item existed or not.
	return i < len(p) && p[i] == id
}

// Insert an identifier into this set.
//
//nolint:revive
func (p *Set) Insert(id Id) {
	data := *p
	// Find index where element either does occur, or should occur.
	i := sort.Search(len(data), func(i int) bool {
		return id <= data[i]
	})
	// Check whether item existed or not.
	if i >= len(data) || data[i] != id {
		// No, item was not found
		ndata := make(Set, len(data)+1)
		copy(ndata, data[0:i])
		ndata[i] = id
		copy(ndata[i+1:], data[i:])
		*p = ndata
	}
}

// InsertAll inserts zero or more identifiers into this set.
func (p *Set) InsertAll(ids ...Id) {
	for _, id := range ids {
		p.Insert(id)
	}
}

// Remove an identifier from this set (no-op if absent).
//
//nolint:revive
func (p *Set) Remove(id Id) {
	data := *p
	//
	i := sort.Search(len(data), func(i int) bool {
		return id <= data[i]
	})
	//
	if i < len(data) && data[i] == id {
		ndata := make(Set, len(data)-1)
		copy(ndata, data[0:i])
		copy(ndata[i:], data[i+1:])
		*p = ndata
	}
}

// UnionWith inserts every element of another set into this set.
func (p *Set) UnionWith(other Set) {
	p.InsertAll(other...)
}

// Min returns the numerically smallest element of this set, which must be
// non-empty.
func (p Set) Min() Id {
	if len(p) == 0 {
		panic("Min of empty set")
	}
	// Sorted, so first is least.
	return p[0]
}

// Len returns the cardinality of this set.
func (p Set) Len() int { return len(p) }

// IsEmpty determines whether this set has any elements at all.
func (p Set) IsEmpty() bool { return len(p) == 0 }

// Equals determines whether two sets have exactly the same elements.
func (p Set) Equals(other Set) bool {
	if len(p) != len(other) {
		return false
	}
	//
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	//
	return true
}

// SubsetOf determines whether every element of this set is in the other.
func (p Set) SubsetOf(other Set) bool {
	for _, id := range p {
		if !other.Contains(id) {
			return false
		}
	}
	//
	return true
}

// Disjoint determines whether this set and the other share no elements.
func (p Set) Disjoint(other Set) bool {
	// Walk the smaller set.
	if len(other) < len(p) {
		p, other = other, p
	}
	//
	for _, id := range p {
		if other.Contains(id) {
			return false
		}
	}
	//
	return true
}

// Union constructs the union of zero or more sets, leaving the arguments
// untouched.
func Union(sets ...Set) Set {
	var result Set
	//
	for _, s := range sets {
		result.UnionWith(s)
	}
	//
	return result
}

func (p Set) String() string {
	var builder strings.Builder
	//
	builder.WriteString("{")
	//
	for i, id := range p {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(fmt.Sprintf("%d", id))
	}
	//
	builder.WriteString("}")
	//
	return builder.String()
}
