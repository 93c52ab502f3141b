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

package ruby

import (
	"slices"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/rbdesugar/ast"
)

type converter struct {
	src []byte
}

func (c *converter) loc(n *sitter.Node) ast.Loc {
	return ast.Loc{Begin: n.StartByte(), End: n.EndByte()}
}

func (c *converter) text(n *sitter.Node) string {
	return n.Content(c.src)
}

func (c *converter) unknown(n *sitter.Node) *ast.Unknown {
	return &ast.Unknown{Loc: c.loc(n), Kind: n.Type(), Text: c.text(n)}
}

// stmts converts the named children of n, skipping comments.
func (c *converter) stmts(n *sitter.Node) []ast.Expr {
	var out []ast.Expr

	for i := range int(n.NamedChildCount()) {
		ch := n.NamedChild(i)
		if ch.Type() == "comment" {
			continue
		}

		out = append(out, c.expr(ch))
	}

	return out
}

// body returns the statements of a class, method or block. Grammar versions differ in
// whether the statements are wrapped in a body node; children in the skip fields are
// not part of the body.
func (c *converter) body(n *sitter.Node, skip ...string) []ast.Expr {
	if b := n.ChildByFieldName("body"); b != nil {
		return c.bodyNode(b)
	}

	var out []ast.Expr

	for i := range int(n.ChildCount()) {
		ch := n.Child(i)
		if !ch.IsNamed() || ch.Type() == "comment" || slices.Contains(skip, n.FieldNameForChild(i)) {
			continue
		}

		switch ch.Type() {
		case "body_statement", "block_body":
			out = append(out, c.stmts(ch)...)

		case "superclass", "method_parameters", "block_parameters", "parameters", "lambda_parameters":

		default:
			out = append(out, c.expr(ch))
		}
	}

	return out
}

func (c *converter) bodyNode(b *sitter.Node) []ast.Expr {
	switch b.Type() {
	case "body_statement", "block_body":
		return c.stmts(b)

	default:
		return []ast.Expr{c.expr(b)}
	}
}

// seq folds statements into a single expression.
func seq(loc ast.Loc, stats []ast.Expr) ast.Expr {
	switch len(stats) {
	case 0:
		return ast.Empty(loc)

	case 1:
		return stats[0]

	default:
		return &ast.Seq{Loc: loc, Stats: stats}
	}
}

func (c *converter) expr(n *sitter.Node) ast.Expr {
	loc := c.loc(n)

	switch n.Type() {
	case "nil":
		return ast.Nil(loc)

	case "true":
		return ast.True(loc)

	case "false":
		return &ast.Literal{Loc: loc, Kind: ast.LitFalse}

	case "integer":
		return &ast.Literal{Loc: loc, Kind: ast.LitInteger, Value: c.text(n)}

	case "float":
		return &ast.Literal{Loc: loc, Kind: ast.LitFloat, Value: c.text(n)}

	case "simple_symbol":
		return ast.Symbol(loc, strings.TrimPrefix(c.text(n), ":"))

	case "hash_key_symbol":
		return ast.Symbol(loc, c.text(n))

	case "string":
		if s, ok := c.stringContent(n); ok {
			return ast.String(loc, s)
		}

		return c.unknown(n)

	case "delimited_symbol":
		if s, ok := c.stringContent(n); ok {
			return ast.Symbol(loc, s)
		}

		return c.unknown(n)

	case "self":
		return &ast.Self{Loc: loc}

	case "identifier":
		return ast.NewLocal(loc, c.text(n))

	case "instance_variable":
		return ast.Ivar(loc, strings.TrimPrefix(c.text(n), "@"))

	case "class_variable":
		return &ast.Ident{Loc: loc, Kind: ast.ClassVar, Name: strings.TrimPrefix(c.text(n), "@@")}

	case "global_variable":
		return &ast.Ident{Loc: loc, Kind: ast.GlobalVar, Name: strings.TrimPrefix(c.text(n), "$")}

	case "constant":
		return ast.Const(loc, nil, c.text(n))

	case "scope_resolution":
		return c.scopeResolution(n)

	case "assignment":
		left, right := n.ChildByFieldName("left"), n.ChildByFieldName("right")
		if left == nil || right == nil {
			return c.unknown(n)
		}

		return &ast.Assign{Loc: loc, Lhs: c.expr(left), Rhs: c.expr(right)}

	case "call":
		return c.call(n)

	case "method_call":
		return c.methodCall(n)

	case "element_reference":
		return c.elementReference(n)

	case "hash":
		return c.hash(n)

	case "array":
		return &ast.Array{Loc: loc, Elems: c.stmts(n)}

	case "class":
		return c.classDef(n, ast.Class)

	case "module":
		return c.classDef(n, ast.Module)

	case "method":
		return c.methodDef(n, 0)

	case "singleton_method":
		if obj := n.ChildByFieldName("object"); obj == nil || obj.Type() != "self" {
			return c.unknown(n)
		}

		return c.methodDef(n, ast.MethodSelf)

	case "parenthesized_statements":
		return seq(loc, c.stmts(n))

	default:
		return c.unknown(n)
	}
}

// stringContent returns the contents of a string without interpolation.
func (c *converter) stringContent(n *sitter.Node) (string, bool) {
	var b strings.Builder

	for i := range int(n.NamedChildCount()) {
		ch := n.NamedChild(i)

		switch ch.Type() {
		case "string_content":
			b.WriteString(c.text(ch))

		default:
			return "", false
		}
	}

	return b.String(), true
}

func (c *converter) scopeResolution(n *sitter.Node) ast.Expr {
	loc := c.loc(n)

	name := n.ChildByFieldName("name")
	if name == nil || name.Type() != "constant" {
		return c.unknown(n)
	}

	var scope ast.Expr
	if s := n.ChildByFieldName("scope"); s != nil {
		scope = c.expr(s)
	} else {
		scope = &ast.Cbase{Loc: ast.Loc{Begin: loc.Begin, End: name.StartByte()}}
	}

	return ast.Const(loc, scope, c.text(name))
}

func (c *converter) call(n *sitter.Node) ast.Expr {
	method := n.ChildByFieldName("method")
	if method == nil {
		return c.unknown(n)
	}

	s := &ast.Send{Loc: c.loc(n), Fun: c.text(method)}

	if recv := n.ChildByFieldName("receiver"); recv != nil {
		s.Recv = c.expr(recv)
	}

	if args := n.ChildByFieldName("arguments"); args != nil {
		s.Args = c.arguments(args)
	}

	if block := n.ChildByFieldName("block"); block != nil {
		s.Block = c.block(block)
	}

	return s
}

// methodCall handles grammar versions that wrap calls with arguments in a method_call node.
func (c *converter) methodCall(n *sitter.Node) ast.Expr {
	var s *ast.Send

	for i := range int(n.NamedChildCount()) {
		ch := n.NamedChild(i)

		switch ch.Type() {
		case "argument_list":
			if s != nil {
				s.Args = c.arguments(ch)
			}

		case "block", "do_block":
			if s != nil {
				s.Block = c.block(ch)
			}

		case "identifier", "constant":
			if s == nil {
				s = &ast.Send{Fun: c.text(ch)}
			}

		case "call":
			if s == nil {
				if cs, ok := c.call(ch).(*ast.Send); ok {
					s = cs
				}
			}
		}
	}

	if s == nil {
		return c.unknown(n)
	}

	s.Loc = c.loc(n)

	return s
}

func (c *converter) elementReference(n *sitter.Node) ast.Expr {
	obj := n.ChildByFieldName("object")
	if obj == nil {
		return c.unknown(n)
	}

	s := &ast.Send{Loc: c.loc(n), Recv: c.expr(obj), Fun: "[]"}

	for i := range int(n.ChildCount()) {
		ch := n.Child(i)
		if !ch.IsNamed() || n.FieldNameForChild(i) == "object" || ch.Type() == "comment" {
			continue
		}

		s.Args = append(s.Args, c.expr(ch))
	}

	return s
}

// arguments converts an argument list. Trailing key-value pairs become a single hash argument.
func (c *converter) arguments(n *sitter.Node) []ast.Expr {
	var (
		args  []ast.Expr
		pairs *ast.Hash
	)

	for i := range int(n.NamedChildCount()) {
		ch := n.NamedChild(i)

		switch ch.Type() {
		case "comment":

		case "pair":
			if pairs == nil {
				pairs = ast.NewHash(c.loc(ch), nil, nil)
				args = append(args, pairs)
			}

			c.pair(pairs, ch)

		default:
			args = append(args, c.expr(ch))
		}
	}

	return args
}

func (c *converter) hash(n *sitter.Node) ast.Expr {
	h := ast.NewHash(c.loc(n), nil, nil)

	for i := range int(n.NamedChildCount()) {
		ch := n.NamedChild(i)

		switch ch.Type() {
		case "comment":

		case "pair":
			c.pair(h, ch)

		default:
			return c.unknown(n)
		}
	}

	return h
}

func (c *converter) pair(h *ast.Hash, n *sitter.Node) {
	key, value := n.ChildByFieldName("key"), n.ChildByFieldName("value")

	var k, v ast.Expr
	if key != nil {
		k = c.expr(key)
	} else {
		k = c.unknown(n)
	}

	if value != nil {
		v = c.expr(value)
	} else {
		v = c.unknown(n)
	}

	h.Keys = append(h.Keys, k)
	h.Values = append(h.Values, v)
	h.Loc = h.Loc.Join(c.loc(n))
}

func (c *converter) block(n *sitter.Node) *ast.Block {
	loc := c.loc(n)

	var params []ast.Expr
	if p := n.ChildByFieldName("parameters"); p != nil {
		params = c.params(p)
	}

	return &ast.Block{Loc: loc, Params: params, Body: seq(loc, c.body(n, "parameters"))}
}

func (c *converter) classDef(n *sitter.Node, kind ast.ClassKind) ast.Expr {
	name := n.ChildByFieldName("name")
	if name == nil {
		return c.unknown(n)
	}

	cd := &ast.ClassDef{Loc: c.loc(n), Kind: kind, Name: c.expr(name)}

	if sup := n.ChildByFieldName("superclass"); sup != nil {
		for i := range int(sup.NamedChildCount()) {
			if ch := sup.NamedChild(i); ch.Type() != "comment" {
				cd.Ancestors = append(cd.Ancestors, c.expr(ch))
			}
		}
	}

	cd.Body = c.body(n, "name", "superclass")

	return cd
}

func (c *converter) methodDef(n *sitter.Node, flags ast.MethodFlags) ast.Expr {
	name := n.ChildByFieldName("name")
	if name == nil {
		return c.unknown(n)
	}

	loc := c.loc(n)

	var args []ast.Expr
	if p := n.ChildByFieldName("parameters"); p != nil {
		args = c.params(p)
	}

	body := c.body(n, "name", "parameters", "object")

	return ast.Method(loc, c.text(name), args, seq(loc, body), flags)
}

// params converts method and block parameter lists.
func (c *converter) params(n *sitter.Node) []ast.Expr {
	var out []ast.Expr

	for i := range int(n.NamedChildCount()) {
		ch := n.NamedChild(i)
		loc := c.loc(ch)

		name := ""
		if nm := ch.ChildByFieldName("name"); nm != nil {
			name = c.text(nm)
		}

		switch ch.Type() {
		case "comment":

		case "identifier":
			out = append(out, ast.NewLocal(loc, c.text(ch)))

		case "optional_parameter":
			value := ch.ChildByFieldName("value")
			if value == nil {
				out = append(out, c.unknown(ch))

				continue
			}

			out = append(out, ast.Optional(loc, ast.NewLocal(loc, name), c.expr(value)))

		case "keyword_parameter":
			var arg ast.Expr = ast.Keyword(loc, name)
			if value := ch.ChildByFieldName("value"); value != nil {
				arg = ast.Optional(loc, arg, c.expr(value))
			}

			out = append(out, arg)

		case "splat_parameter":
			out = append(out, &ast.RestArg{Loc: loc, Name: name})

		case "block_parameter":
			if name == "" {
				out = append(out, c.unknown(ch)) // anonymous block forwarding

				continue
			}

			out = append(out, &ast.BlockArg{Loc: loc, Name: name})

		default:
			out = append(out, c.unknown(ch))
		}
	}

	return out
}
