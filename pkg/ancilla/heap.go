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

// Package ancilla provides the pool of scratch bits threaded through circuit
// synthesis.  A heap holds the (conceptually infinite) set of currently free
// bit identifiers; synthesis borrows bits with PopMin and hands them back
// with Insert.
package ancilla

import (
	"fmt"

	"github.com/consensys/go-revc/pkg/bits"
)

// Heap is an infinite pool of free bit identifiers, represented as a
// threshold (above which every identifier is free) together with a finite
// set of holes below it.
// The element set is holes ∪ {threshold, threshold+1, ...}, with the
// invariant that every hole lies strictly below the threshold.  Heaps are
// values; PopMin and Insert return fresh heaps and never mutate the
// receiver.
type Heap struct {
	threshold bits.Id
	holes     bits.Set
}

// Above constructs the heap holding every identifier greater than or equal
// to k.
func Above(k bits.Id) Heap {
	return Heap{k, nil}
}

// PopMin removes and returns the numerically smallest free identifier,
// together with the shrunken heap.
func (p Heap) PopMin() (Heap, bits.Id) {
	// Any hole precedes the threshold.
	if !p.holes.IsEmpty() {
		min := p.holes.Min()
		holes := p.holes
		holes.Remove(min)
		//
		return Heap{p.threshold, holes}, min
	}
	//
	return Heap{p.threshold + 1, p.holes}, p.threshold
}

// Insert returns a heap additionally holding the given identifier.
// Inserting an identifier already present is a no-op.  The result is kept in
// normal form (no hole directly below the threshold), so that heaps with the
// same elements are structurally equal.
func (p Heap) Insert(id bits.Id) Heap {
	if p.Contains(id) {
		return p
	}
	// Here id < threshold, so it becomes a hole.
	threshold := p.threshold
	holes := p.holes
	holes.Insert(id)
	// Normalise by collapsing holes adjacent to the threshold.
	for holes.Contains(threshold - 1) {
		holes.Remove(threshold - 1)
		threshold--
	}
	//
	return Heap{threshold, holes}
}

// InsertAll returns a heap additionally holding all the given identifiers.
func (p Heap) InsertAll(ids []bits.Id) Heap {
	heap := p
	//
	for _, id := range ids {
		heap = heap.Insert(id)
	}
	//
	return heap
}

// Contains determines whether a given identifier is currently free.
func (p Heap) Contains(id bits.Id) bool {
	return id >= p.threshold || p.holes.Contains(id)
}

// ContainsAll determines whether every identifier in a given set is
// currently free.
func (p Heap) ContainsAll(ids bits.Set) bool {
	for _, id := range ids {
		if !p.Contains(id) {
			return false
		}
	}
	//
	return true
}

// Disjoint determines whether no identifier of a given set is in this heap.
func (p Heap) Disjoint(ids bits.Set) bool {
	for _, id := range ids {
		if p.Contains(id) {
			return false
		}
	}
	//
	return true
}

// Threshold returns the identifier above which every identifier is free.
func (p Heap) Threshold() bits.Id { return p.threshold }

// Holes returns the free identifiers lying below the threshold.
func (p Heap) Holes() bits.Set { return p.holes }

// Equals determines whether two heaps hold exactly the same identifiers.
// Since heaps are kept in normal form this coincides with structural
// equality.
func (p Heap) Equals(other Heap) bool {
	return p.threshold == other.threshold && p.holes.Equals(other.holes)
}

// SubsetOf determines whether every identifier of this heap is free in the
// other heap.
func (p Heap) SubsetOf(other Heap) bool {
	// Everything at or above the threshold must be covered by the other
	// threshold.
	if p.threshold < other.threshold {
		return false
	}
	// Every hole must be free in the other heap.
	for _, id := range p.holes {
		if !other.Contains(id) {
			return false
		}
	}
	//
	return true
}

// ZeroIn determines whether every free identifier of this heap reads false
// in a given state.  Since bits outside a state's support read false, only
// the support needs inspecting.
func (p Heap) ZeroIn(st bits.State) bool {
	for _, id := range st.Support() {
		if p.Contains(id) && st.Get(id) {
			return false
		}
	}
	//
	return true
}

func (p Heap) String() string {
	return fmt.Sprintf("%v ∪ {%d...}", p.holes, p.threshold)
}
