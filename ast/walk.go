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

import "slices"

// Inspect traverses the tree rooted at e in depth-first pre-order. When f returns false,
// the children of the current node are skipped. Nil children are not visited.
func Inspect(e Expr, f func(Expr) bool) {
	if e == nil || !f(e) {
		return
	}

	for _, c := range children(e) {
		Inspect(c, f)
	}
}

func children(e Expr) []Expr {
	switch n := e.(type) {
	case *ConstLit:
		return nonNil(n.Scope)

	case *Assign:
		return nonNil(n.Lhs, n.Rhs)

	case *Send:
		cs := nonNil(n.Recv)
		cs = append(cs, n.Args...)

		if n.Block != nil {
			cs = append(cs, n.Block)
		}

		return cs

	case *Block:
		return append(slices.Clip(n.Params), nonNil(n.Body)...)

	case *Hash:
		cs := make([]Expr, 0, len(n.Keys)+len(n.Values))
		for i := range n.Keys {
			cs = append(cs, n.Keys[i])
			if i < len(n.Values) {
				cs = append(cs, n.Values[i])
			}
		}

		return cs

	case *Array:
		return n.Elems

	case *ClassDef:
		cs := nonNil(n.Name)
		cs = append(cs, n.Ancestors...)

		return append(cs, n.Body...)

	case *MethodDef:
		return append(slices.Clip(n.Args), nonNil(n.Body)...)

	case *OptionalArg:
		return nonNil(n.Arg, n.Default)

	case *Seq:
		return n.Stats

	default:
		return nil
	}
}

func nonNil(es ...Expr) []Expr {
	out := es[:0]
	for _, e := range es {
		if e != nil {
			out = append(out, e)
		}
	}

	return out
}

// Apply rewrites the tree rooted at e in depth-first post-order: the children of a node
// are replaced in place by the results of applying post to them before post is called
// on the node itself. Apply returns the result of post on e.
func Apply(e Expr, post func(Expr) Expr) Expr {
	if e == nil {
		return nil
	}

	switch n := e.(type) {
	case *ConstLit:
		n.Scope = Apply(n.Scope, post)

	case *Assign:
		n.Lhs = Apply(n.Lhs, post)
		n.Rhs = Apply(n.Rhs, post)

	case *Send:
		n.Recv = Apply(n.Recv, post)
		applyAll(n.Args, post)

		if n.Block != nil {
			applyBlock(n.Block, post)
		}

	case *Block:
		applyBlock(n, post)

	case *Hash:
		applyAll(n.Keys, post)
		applyAll(n.Values, post)

	case *Array:
		applyAll(n.Elems, post)

	case *ClassDef:
		n.Name = Apply(n.Name, post)
		applyAll(n.Ancestors, post)
		applyAll(n.Body, post)

	case *MethodDef:
		applyAll(n.Args, post)
		n.Body = Apply(n.Body, post)

	case *OptionalArg:
		n.Arg = Apply(n.Arg, post)
		n.Default = Apply(n.Default, post)

	case *Seq:
		applyAll(n.Stats, post)
	}

	return post(e)
}

func applyAll(es []Expr, post func(Expr) Expr) {
	for i, e := range es {
		es[i] = Apply(e, post)
	}
}

// applyBlock keeps the block in place; a [Send] refers to its block by pointer.
func applyBlock(b *Block, post func(Expr) Expr) {
	applyAll(b.Params, post)
	b.Body = Apply(b.Body, post)
}

// Copy returns a deep copy of the tree rooted at e.
func Copy(e Expr) Expr {
	switch n := e.(type) {
	case nil:
		return nil

	case *EmptyTree:
		c := *n
		return &c

	case *Unknown:
		c := *n
		return &c

	case *Literal:
		c := *n
		return &c

	case *ConstLit:
		return &ConstLit{Loc: n.Loc, Scope: Copy(n.Scope), Name: n.Name}

	case *Cbase:
		c := *n
		return &c

	case *Local:
		c := *n
		return &c

	case *Ident:
		c := *n
		return &c

	case *Self:
		c := *n
		return &c

	case *Assign:
		return &Assign{Loc: n.Loc, Lhs: Copy(n.Lhs), Rhs: Copy(n.Rhs)}

	case *Send:
		return &Send{Loc: n.Loc, Recv: Copy(n.Recv), Fun: n.Fun, Args: CopyAll(n.Args), Block: copyBlock(n.Block)}

	case *Block:
		return copyBlock(n)

	case *Hash:
		return &Hash{Loc: n.Loc, Keys: CopyAll(n.Keys), Values: CopyAll(n.Values)}

	case *Array:
		return &Array{Loc: n.Loc, Elems: CopyAll(n.Elems)}

	case *ClassDef:
		return &ClassDef{
			Loc:       n.Loc,
			Kind:      n.Kind,
			Name:      Copy(n.Name),
			Ancestors: CopyAll(n.Ancestors),
			Body:      CopyAll(n.Body),
		}

	case *MethodDef:
		return &MethodDef{
			Loc:        n.Loc,
			Name:       n.Name,
			Args:       CopyAll(n.Args),
			Body:       Copy(n.Body),
			Flags:      n.Flags,
			Visibility: n.Visibility,
		}

	case *KeywordArg:
		c := *n
		return &c

	case *OptionalArg:
		return &OptionalArg{Loc: n.Loc, Arg: Copy(n.Arg), Default: Copy(n.Default)}

	case *RestArg:
		c := *n
		return &c

	case *BlockArg:
		c := *n
		return &c

	case *Seq:
		return &Seq{Loc: n.Loc, Stats: CopyAll(n.Stats)}

	default:
		panic("ast.Copy: unexpected node type")
	}
}

// CopyAll deep copies a list of expressions.
func CopyAll(es []Expr) []Expr {
	if es == nil {
		return nil
	}

	out := make([]Expr, len(es))
	for i, e := range es {
		out[i] = Copy(e)
	}

	return out
}

func copyBlock(b *Block) *Block {
	if b == nil {
		return nil
	}

	return &Block{Loc: b.Loc, Params: CopyAll(b.Params), Body: Copy(b.Body)}
}
