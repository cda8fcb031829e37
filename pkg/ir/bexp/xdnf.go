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
package bexp

// Distrib distributes a conjunction over exclusive-or on either side,
// recursively; where neither argument is an exclusive-or it simply rebuilds
// the conjunction.
func Distrib(x Expr, y Expr) Expr {
	if a, ok := x.(Xor); ok {
		return Xor{Distrib(a.Left, y), Distrib(a.Right, y)}
	} else if b, ok := y.(Xor); ok {
		return Xor{Distrib(x, b.Left), Distrib(x, b.Right)}
	}
	//
	return And{x, y}
}

// ToXDNF rewrites an expression into exclusive-or sum-of-products form: an
// exclusive-or of conjunctions of variables, with negation eliminated in
// favour of exclusive-or with truth.  The result is semantically equal to
// the input.
func ToXDNF(e Expr) Expr {
	switch e := e.(type) {
	case False, Var:
		return e
	case Not:
		return Xor{True(), ToXDNF(e.Arg)}
	case And:
		return Distrib(ToXDNF(e.Left), ToXDNF(e.Right))
	case Xor:
		return Xor{ToXDNF(e.Left), ToXDNF(e.Right)}
	default:
		panic("unreachable")
	}
}

// UnXDNF refactors shared conjuncts back out of an exclusive-or of
// conjunctions, e.g. (a ∧ b) ⊕ (a ∧ d) becomes a ∧ (b ⊕ d).  This partially
// inverts ToXDNF and preserves semantics.
func UnXDNF(e Expr) Expr {
	switch e := e.(type) {
	case False, Var:
		return e
	case Not:
		return Not{UnXDNF(e.Arg)}
	case And:
		return And{UnXDNF(e.Left), UnXDNF(e.Right)}
	case Xor:
		return unXDNFXor(UnXDNF(e.Left), UnXDNF(e.Right))
	default:
		panic("unreachable")
	}
}

// unXDNFXor refactors one exclusive-or node whose children are already
// processed, matching a shared conjunct in any of the four positions.
func unXDNFXor(x Expr, y Expr) Expr {
	l, lok := x.(And)
	r, rok := y.(And)
	//
	if lok && rok {
		switch {
		case Equal(l.Left, r.Left):
			return And{l.Left, Xor{l.Right, r.Right}}
		case Equal(l.Left, r.Right):
			return And{l.Left, Xor{l.Right, r.Left}}
		case Equal(l.Right, r.Left):
			return And{l.Right, Xor{l.Left, r.Right}}
		case Equal(l.Right, r.Right):
			return And{l.Right, Xor{l.Left, r.Left}}
		}
	}
	//
	return Xor{x, y}
}

// Simps is the canonical pre-compilation pass: normalise into exclusive-or
// sum-of-products form, then simplify.
func Simps(e Expr) Expr {
	return Simplify(ToXDNF(e))
}
