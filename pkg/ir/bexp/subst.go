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

import (
	"github.com/consensys/go-revc/pkg/bits"
)

// Substitute replaces every variable of a given expression by the expression
// a given substitution maps it to.  Variables outside the substitution are
// left in place.
func Substitute(e Expr, sigma map[bits.Id]Expr) Expr {
	switch e := e.(type) {
	case False:
		return e
	case Var:
		if r, ok := sigma[e.Index]; ok {
			return r
		}
		//
		return e
	case Not:
		return Not{Substitute(e.Arg, sigma)}
	case And:
		return And{Substitute(e.Left, sigma), Substitute(e.Right, sigma)}
	case Xor:
		return Xor{Substitute(e.Left, sigma), Substitute(e.Right, sigma)}
	default:
		panic("unreachable")
	}
}

// Rename replaces every variable of a given expression by the variable a
// given renaming maps it to.  Variables outside the renaming are left in
// place.
func Rename(e Expr, sigma map[bits.Id]bits.Id) Expr {
	switch e := e.(type) {
	case False:
		return e
	case Var:
		if r, ok := sigma[e.Index]; ok {
			return Var{r}
		}
		//
		return e
	case Not:
		return Not{Rename(e.Arg, sigma)}
	case And:
		return And{Rename(e.Left, sigma), Rename(e.Right, sigma)}
	case Xor:
		return Xor{Rename(e.Left, sigma), Rename(e.Right, sigma)}
	default:
		panic("unreachable")
	}
}
