// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package ast

// IsConstPath reports whether e syntactically spells the constant path names,
// with or without a leading root scope (T::Struct or ::T::Struct).
func IsConstPath(e Expr, names ...string) bool {
	for i := len(names) - 1; i >= 0; i-- {
		c, ok := e.(*ConstLit)
		if !ok || c.Name != names[i] {
			return false
		}

		e = c.Scope
	}

	switch e.(type) {
	case nil, *Cbase:
		return true

	default:
		return false
	}
}

// IsImplicitSelf reports whether recv is an implicit or explicit self receiver.
func IsImplicitSelf(recv Expr) bool {
	switch recv.(type) {
	case nil, *Self:
		return true

	default:
		return false
	}
}

// SymbolName returns the name of a symbol literal.
func SymbolName(e Expr) (string, bool) {
	if l, ok := e.(*Literal); ok && l.Kind == LitSymbol {
		return l.Value, true
	}

	return "", false
}

// LiteralName returns the contents of a symbol or string literal.
func LiteralName(e Expr) (string, bool) {
	if l, ok := e.(*Literal); ok && (l.Kind == LitSymbol || l.Kind == LitString) {
		return l.Value, true
	}

	return "", false
}

// IsTrue reports whether e is the true literal.
func IsTrue(e Expr) bool {
	l, ok := e.(*Literal)

	return ok && l.Kind == LitTrue
}

// IsBoolean reports whether e is a true or false literal.
func IsBoolean(e Expr) bool {
	l, ok := e.(*Literal)

	return ok && (l.Kind == LitTrue || l.Kind == LitFalse)
}

// TrailingHash returns the trailing hash argument of a call, if any.
func TrailingHash(args []Expr) (*Hash, bool) {
	if len(args) == 0 {
		return nil, false
	}

	h, ok := args[len(args)-1].(*Hash)

	return h, ok
}

// HashEntries returns the symbol keys and values of h in source order.
// It fails when any key is not a symbol literal.
func HashEntries(h *Hash) (keys []string, values []Expr, ok bool) {
	keys = make([]string, 0, len(h.Keys))

	for _, k := range h.Keys {
		name, ok := SymbolName(k)
		if !ok {
			return nil, nil, false
		}

		keys = append(keys, name)
	}

	return keys, h.Values, true
}

// IsSig reports whether e is a sig {...} declaration.
func IsSig(e Expr) (*Send, bool) {
	s, ok := e.(*Send)
	if !ok || s.Fun != "sig" || !IsImplicitSelf(s.Recv) || s.Block == nil || len(s.Args) != 0 {
		return nil, false
	}

	return s, true
}

// SigReturns returns the argument of the returns(...) call of a sig, if any.
func SigReturns(sig *Send) (Expr, bool) {
	for e := sig.Block.Body; e != nil; {
		s, ok := e.(*Send)
		if !ok {
			return nil, false
		}

		if s.Fun == "returns" && len(s.Args) == 1 {
			return s.Args[0], true
		}

		e = s.Recv
	}

	return nil, false
}
