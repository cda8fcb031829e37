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
	"io"
	"strings"

	"github.com/consensys/go-revc/pkg/bits"
)

// Circuit is an ordered sequence of gates, applied left to right.
type Circuit []Gate

// Eval applies every gate of this circuit, in order, to a given state.
func (p Circuit) Eval(st bits.State) bits.State {
	for _, g := range p {
		st = g.Apply(st)
	}
	//
	return st
}

// Uses returns every bit mentioned anywhere in this circuit.
func (p Circuit) Uses() bits.Set {
	var set bits.Set
	//
	for _, g := range p {
		set.UnionWith(g.Uses())
	}
	//
	return set
}

// Controls returns every bit used as a control somewhere in this circuit.
func (p Circuit) Controls() bits.Set {
	var set bits.Set
	//
	for _, g := range p {
		set.UnionWith(g.Controls())
	}
	//
	return set
}

// Mods returns every bit written somewhere in this circuit.
func (p Circuit) Mods() bits.Set {
	var set bits.Set
	//
	for _, g := range p {
		set.Insert(g.Target())
	}
	//
	return set
}

// WellFormed checks that every gate of this circuit is well formed.
func (p Circuit) WellFormed() bool {
	for _, g := range p {
		if !g.WellFormed() {
			return false
		}
	}
	//
	return true
}

// Reverse returns this circuit in reverse order.  Since every gate is its
// own inverse, the reversal undoes the circuit exactly.
func (p Circuit) Reverse() Circuit {
	n := len(p)
	rev := make(Circuit, n)
	//
	for i, g := range p {
		rev[n-1-i] = g
	}
	//
	return rev
}

// Uncompute returns the subsequence of this circuit omitting every gate
// whose target is r.  Provided r is never used as a control, reversing the
// result yields a cleanup circuit which restores every bit other than r to
// its value before this circuit ran, without perturbing r.
func (p Circuit) Uncompute(r bits.Id) Circuit {
	var rest Circuit
	//
	for _, g := range p {
		if g.Target() != r {
			rest = append(rest, g)
		}
	}
	//
	return rest
}

// Append concatenates zero or more circuits after this one into a fresh
// circuit, leaving all arguments untouched.
func (p Circuit) Append(rest ...Circuit) Circuit {
	n := len(p)
	//
	for _, c := range rest {
		n += len(c)
	}
	//
	result := make(Circuit, 0, n)
	result = append(result, p...)
	//
	for _, c := range rest {
		result = append(result, c...)
	}
	//
	return result
}

// Print this circuit in the canonical line-per-gate format.
func (p Circuit) Print(w io.Writer) error {
	for _, g := range p {
		if _, err := io.WriteString(w, g.String()); err != nil {
			return err
		} else if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	//
	return nil
}

func (p Circuit) String() string {
	var builder strings.Builder
	//
	for i, g := range p {
		if i != 0 {
			builder.WriteString("; ")
		}
		//
		builder.WriteString(g.String())
	}
	//
	return builder.String()
}
