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

// Package gate provides the reversible gate intermediate representation:
// NOT, controlled-NOT and Toffoli gates over bit identifiers, together with
// circuits (gate sequences), their evaluation semantics and the uncompute
// transformation used to return scratch bits to zero.
package gate

import (
	"fmt"

	"github.com/consensys/go-revc/pkg/bits"
)

// Gate represents a single self-inverse reversible gate.  A gate toggles its
// target bit whenever all of its control bits (possibly none) are set.
type Gate interface {
	// Apply this gate to a given state, yielding the successor state.
	Apply(st bits.State) bits.State
	// Target returns the single bit this gate writes.
	Target() bits.Id
	// Controls returns the bits this gate reads but never writes.
	Controls() bits.Set
	// Uses returns every bit mentioned by this gate.
	Uses() bits.Set
	// WellFormed checks that the controls and target are pairwise distinct.
	WellFormed() bool
	// String returns this gate in the canonical textual format.
	String() string
}

// Not toggles a single bit unconditionally.
type Not struct {
	A bits.Id
}

// CNot toggles bit A whenever bit C is set.  Requires C != A.
type CNot struct {
	C bits.Id
	A bits.Id
}

// Toff toggles bit A whenever bits C1 and C2 are both set.  Requires C1, C2
// and A pairwise distinct.
type Toff struct {
	C1 bits.Id
	C2 bits.Id
	A  bits.Id
}

// NOTE: compile time checks that all gate kinds satisfy the interface.
var _ Gate = Not{}
var _ Gate = CNot{}
var _ Gate = Toff{}

// Apply implementation for Gate interface.
func (p Not) Apply(st bits.State) bits.State {
	return st.Flip(p.A)
}

// Target implementation for Gate interface.
func (p Not) Target() bits.Id { return p.A }

// Controls implementation for Gate interface.
func (p Not) Controls() bits.Set { return nil }

// Uses implementation for Gate interface.
func (p Not) Uses() bits.Set { return bits.NewSet(p.A) }

// WellFormed implementation for Gate interface.
func (p Not) WellFormed() bool { return true }

func (p Not) String() string {
	return fmt.Sprintf("NOT %d", p.A)
}

// Apply implementation for Gate interface.
func (p CNot) Apply(st bits.State) bits.State {
	if st.Get(p.C) {
		return st.Flip(p.A)
	}
	//
	return st
}

// Target implementation for Gate interface.
func (p CNot) Target() bits.Id { return p.A }

// Controls implementation for Gate interface.
func (p CNot) Controls() bits.Set { return bits.NewSet(p.C) }

// Uses implementation for Gate interface.
func (p CNot) Uses() bits.Set { return bits.NewSet(p.C, p.A) }

// WellFormed implementation for Gate interface.
func (p CNot) WellFormed() bool { return p.C != p.A }

func (p CNot) String() string {
	return fmt.Sprintf("CNOT %d %d", p.C, p.A)
}

// Apply implementation for Gate interface.
func (p Toff) Apply(st bits.State) bits.State {
	if st.Get(p.C1) && st.Get(p.C2) {
		return st.Flip(p.A)
	}
	//
	return st
}

// Target implementation for Gate interface.
func (p Toff) Target() bits.Id { return p.A }

// Controls implementation for Gate interface.
func (p Toff) Controls() bits.Set { return bits.NewSet(p.C1, p.C2) }

// Uses implementation for Gate interface.
func (p Toff) Uses() bits.Set { return bits.NewSet(p.C1, p.C2, p.A) }

// WellFormed implementation for Gate interface.
func (p Toff) WellFormed() bool {
	return p.C1 != p.C2 && p.C1 != p.A && p.C2 != p.A
}

func (p Toff) String() string {
	return fmt.Sprintf("TOFF %d %d %d", p.C1, p.C2, p.A)
}
