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
package synth

import (
	"fmt"

	"github.com/consensys/go-revc/pkg/ancilla"
	"github.com/consensys/go-revc/pkg/bits"
	"github.com/consensys/go-revc/pkg/ir/bexp"
)

// Strategy selects one of the three ancilla management disciplines.  The
// caller always chooses; the synthesizer never infers one.
type Strategy uint8

const (
	// Pebbled uncomputes inline at every conjunction, minimising
	// simultaneously live scratch bits.
	Pebbled Strategy = iota
	// Boundaries computes freely and uncomputes once at the end.
	Boundaries
	// Bennett computes every exclusive-or term out of place, copies it out
	// and undoes all term circuits in mirrored order.
	Bennett
)

// ParseStrategy reads a strategy from its lower-case name.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "pebbled":
		return Pebbled, nil
	case "boundaries":
		return Boundaries, nil
	case "bennett":
		return Bennett, nil
	default:
		return 0, fmt.Errorf("unknown strategy \"%s\"", name)
	}
}

func (p Strategy) String() string {
	switch p {
	case Pebbled:
		return "pebbled"
	case Boundaries:
		return "boundaries"
	case Bennett:
		return "bennett"
	default:
		panic("unreachable")
	}
}

// CompileWith xors the value of a given expression into a caller-supplied
// target under a given strategy.
func CompileWith(s Strategy, h ancilla.Heap, target bits.Id, e bexp.Expr) Result {
	switch s {
	case Pebbled:
		return CompilePebbled(h, target, e)
	case Boundaries:
		return CompileClean(h, target, e)
	case Bennett:
		return CompileBennett(h, target, e)
	default:
		panic("unreachable")
	}
}

// CompileOopWith computes the value of a given expression into a bit of the
// synthesizer's choosing under a given strategy.
func CompileOopWith(s Strategy, h ancilla.Heap, e bexp.Expr) Result {
	switch s {
	case Pebbled:
		return CompilePebbledOop(h, e)
	case Boundaries:
		return CompileCleanOop(h, e)
	case Bennett:
		return CompileBennettOop(h, e)
	default:
		panic("unreachable")
	}
}
