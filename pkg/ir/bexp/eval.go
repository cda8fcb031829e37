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

// Eval implementation for Expr interface.
func (p False) Eval(st bits.State) bool { return false }

// Eval implementation for Expr interface.
func (p Var) Eval(st bits.State) bool { return st.Get(p.Index) }

// Eval implementation for Expr interface.
func (p Not) Eval(st bits.State) bool { return !p.Arg.Eval(st) }

// Eval implementation for Expr interface.
func (p And) Eval(st bits.State) bool { return p.Left.Eval(st) && p.Right.Eval(st) }

// Eval implementation for Expr interface.
func (p Xor) Eval(st bits.State) bool { return p.Left.Eval(st) != p.Right.Eval(st) }

// Vars implementation for Expr interface.
func (p False) Vars() bits.Set { return nil }

// Vars implementation for Expr interface.
func (p Var) Vars() bits.Set { return bits.NewSet(p.Index) }

// Vars implementation for Expr interface.
func (p Not) Vars() bits.Set { return p.Arg.Vars() }

// Vars implementation for Expr interface.
func (p And) Vars() bits.Set { return bits.Union(p.Left.Vars(), p.Right.Vars()) }

// Vars implementation for Expr interface.
func (p Xor) Vars() bits.Set { return bits.Union(p.Left.Vars(), p.Right.Vars()) }

// MaxVar implementation for Expr interface.
func (p False) MaxVar() bits.Id { return 0 }

// MaxVar implementation for Expr interface.
func (p Var) MaxVar() bits.Id { return p.Index }

// MaxVar implementation for Expr interface.
func (p Not) MaxVar() bits.Id { return p.Arg.MaxVar() }

// MaxVar implementation for Expr interface.
func (p And) MaxVar() bits.Id { return maxId(p.Left.MaxVar(), p.Right.MaxVar()) }

// MaxVar implementation for Expr interface.
func (p Xor) MaxVar() bits.Id { return maxId(p.Left.MaxVar(), p.Right.MaxVar()) }

// AndDepth implementation for Expr interface.
func (p False) AndDepth() uint { return 0 }

// AndDepth implementation for Expr interface.
func (p Var) AndDepth() uint { return 0 }

// AndDepth implementation for Expr interface.
func (p Not) AndDepth() uint { return p.Arg.AndDepth() }

// AndDepth implementation for Expr interface.
func (p And) AndDepth() uint { return 1 + maxUint(p.Left.AndDepth(), p.Right.AndDepth()) }

// AndDepth implementation for Expr interface.
func (p Xor) AndDepth() uint { return maxUint(p.Left.AndDepth(), p.Right.AndDepth()) }

func maxId(l bits.Id, r bits.Id) bits.Id {
	if l >= r {
		return l
	}
	//
	return r
}

func maxUint(l uint, r uint) uint {
	if l >= r {
		return l
	}
	//
	return r
}
