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
	"fmt"
	"strconv"

	"github.com/consensys/go-revc/pkg/bits"
	"github.com/consensys/go-revc/pkg/sexp"
)

// Parse reads one expression from its textual form, e.g.
// "(and x0 (xor x1 (not x2)))".  Variables are written xN; "true" is
// accepted as shorthand for negated false.  Conjunction and exclusive-or
// accept two or more arguments, associating to the left.
func Parse(input string) (Expr, error) {
	s, err := sexp.Parse(input)
	if err != nil {
		return nil, err
	}
	//
	return FromSExp(s)
}

// ParseAll reads zero or more expressions from a single string.
func ParseAll(input string) ([]Expr, error) {
	ss, err := sexp.ParseAll(input)
	if err != nil {
		return nil, err
	}
	//
	exprs := make([]Expr, len(ss))
	//
	for i, s := range ss {
		if exprs[i], err = FromSExp(s); err != nil {
			return nil, err
		}
	}
	//
	return exprs, nil
}

// FromSExp translates an S-expression into an expression tree.
func FromSExp(s sexp.SExp) (Expr, error) {
	switch s := s.(type) {
	case *sexp.Symbol:
		return symbolToExpr(s.Value)
	case *sexp.List:
		return listToExpr(s)
	default:
		return nil, fmt.Errorf("unknown S-expression %s", s)
	}
}

func symbolToExpr(value string) (Expr, error) {
	switch {
	case value == "false":
		return False{}, nil
	case value == "true":
		return True(), nil
	case len(value) > 1 && value[0] == 'x':
		index, err := strconv.Atoi(value[1:])
		if err != nil {
			return nil, fmt.Errorf("malformed variable \"%s\"", value)
		}
		//
		return Var{bits.Id(index)}, nil
	default:
		return nil, fmt.Errorf("unknown symbol \"%s\"", value)
	}
}

func listToExpr(l *sexp.List) (Expr, error) {
	if l.Len() == 2 && l.MatchSymbols(2, "not") {
		arg, err := FromSExp(l.Get(1))
		if err != nil {
			return nil, err
		}
		//
		return Not{arg}, nil
	} else if l.Len() >= 3 && l.MatchSymbols(l.Len(), "and") {
		return nestToExpr(l, func(x, y Expr) Expr { return And{x, y} })
	} else if l.Len() >= 3 && l.MatchSymbols(l.Len(), "xor") {
		return nestToExpr(l, func(x, y Expr) Expr { return Xor{x, y} })
	}
	//
	return nil, fmt.Errorf("malformed expression %s", l)
}

// nestToExpr folds the arguments of an n-ary connective into a left-nested
// chain of binary nodes.
func nestToExpr(l *sexp.List, join func(Expr, Expr) Expr) (Expr, error) {
	result, err := FromSExp(l.Get(1))
	if err != nil {
		return nil, err
	}
	//
	for i := 2; i < l.Len(); i++ {
		arg, err := FromSExp(l.Get(i))
		if err != nil {
			return nil, err
		}
		//
		result = join(result, arg)
	}
	//
	return result, nil
}
