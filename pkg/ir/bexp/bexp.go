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

// Package bexp provides the boolean expression intermediate representation
// over the connectives false, negation, conjunction and exclusive-or,
// together with a semantics-preserving simplifier and conversion into
// exclusive-or sum-of-products (ESOP) form.
package bexp

import (
	"fmt"

	"github.com/consensys/go-revc/pkg/bits"
)

// Expr represents a boolean expression tree.
type Expr interface {
	// Eval returns the value of this expression under a given assignment of
	// bits.
	Eval(st bits.State) bool
	// Vars returns the set of variables occurring in this expression.
	Vars() bits.Set
	// MaxVar returns the largest variable index occurring in this
	// expression, or zero for an expression with no variables.
	MaxVar() bits.Id
	// AndDepth returns the largest number of conjunctions along any
	// root-to-leaf path of this expression.
	AndDepth() uint
	// Size returns the number of nodes in this expression.
	Size() uint
	// String returns this expression in its textual (s-expression) form.
	String() string
}

// False is the constant false expression.
type False struct{}

// Var reads a single bit.
type Var struct {
	Index bits.Id
}

// Not negates its argument.
type Not struct {
	Arg Expr
}

// And is the conjunction of two expressions.
type And struct {
	Left  Expr
	Right Expr
}

// Xor is the exclusive-or of two expressions.
type Xor struct {
	Left  Expr
	Right Expr
}

// NOTE: compile time checks that all expression kinds satisfy the interface.
var _ Expr = False{}
var _ Expr = Var{}
var _ Expr = Not{}
var _ Expr = And{}
var _ Expr = Xor{}

// True is the canonical spelling of truth in this algebra.
func True() Expr { return Not{False{}} }

func (p False) String() string { return "false" }

func (p Var) String() string { return fmt.Sprintf("x%d", p.Index) }

func (p Not) String() string { return fmt.Sprintf("(not %s)", p.Arg) }

func (p And) String() string { return fmt.Sprintf("(and %s %s)", p.Left, p.Right) }

func (p Xor) String() string { return fmt.Sprintf("(xor %s %s)", p.Left, p.Right) }

// Size implementation for Expr interface.
func (p False) Size() uint { return 1 }

// Size implementation for Expr interface.
func (p Var) Size() uint { return 1 }

// Size implementation for Expr interface.
func (p Not) Size() uint { return 1 + p.Arg.Size() }

// Size implementation for Expr interface.
func (p And) Size() uint { return 1 + p.Left.Size() + p.Right.Size() }

// Size implementation for Expr interface.
func (p Xor) Size() uint { return 1 + p.Left.Size() + p.Right.Size() }

// Equal determines whether two expressions are structurally identical.
func Equal(e1 Expr, e2 Expr) bool {
	switch e1 := e1.(type) {
	case False:
		_, ok := e2.(False)
		return ok
	case Var:
		v2, ok := e2.(Var)
		return ok && e1.Index == v2.Index
	case Not:
		n2, ok := e2.(Not)
		return ok && Equal(e1.Arg, n2.Arg)
	case And:
		a2, ok := e2.(And)
		return ok && Equal(e1.Left, a2.Left) && Equal(e1.Right, a2.Right)
	case Xor:
		x2, ok := e2.(Xor)
		return ok && Equal(e1.Left, x2.Left) && Equal(e1.Right, x2.Right)
	default:
		panic("unreachable")
	}
}

// Occurs determines whether a given variable occurs in a given expression.
func Occurs(id bits.Id, e Expr) bool {
	switch e := e.(type) {
	case False:
		return false
	case Var:
		return e.Index == id
	case Not:
		return Occurs(id, e.Arg)
	case And:
		return Occurs(id, e.Left) || Occurs(id, e.Right)
	case Xor:
		return Occurs(id, e.Left) || Occurs(id, e.Right)
	default:
		panic("unreachable")
	}
}

// XorTerms flattens nested exclusive-ors into the list of their leaves, in
// left-to-right order.  An expression with no top-level exclusive-or is its
// own singleton term list.
func XorTerms(e Expr) []Expr {
	if x, ok := e.(Xor); ok {
		return append(XorTerms(x.Left), XorTerms(x.Right)...)
	}
	//
	return []Expr{e}
}
