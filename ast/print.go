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

import (
	"strconv"
	"strings"
)

const indentUnit = "  "

// Print renders e as Ruby-like source text. Statements of a [Seq] are rendered on separate lines.
func Print(e Expr) string {
	var p printer

	if s, ok := e.(*Seq); ok {
		p.stmts(s.Stats)
	} else {
		p.expr(e)
	}

	return p.String()
}

// PrintFile renders the top-level statements of f, one per line.
func PrintFile(f *File) string {
	var p printer
	if f.Root != nil {
		p.stmts(f.Root.Stats)
	}

	return p.String()
}

type printer struct {
	strings.Builder
	depth int
}

func (p *printer) newline() {
	p.WriteByte('\n')

	for range p.depth {
		p.WriteString(indentUnit)
	}
}

// stmts writes each non-empty statement on its own line, starting on the current line.
func (p *printer) stmts(es []Expr) {
	first := true

	for _, e := range es {
		if _, ok := e.(*EmptyTree); ok {
			continue
		}

		if !first {
			p.newline()
		}

		first = false

		p.expr(e)
	}
}

// body writes an indented statement list followed by "end".
func (p *printer) body(es []Expr) {
	p.depth++
	p.newline()
	p.stmts(es)
	p.depth--
	p.newline()
	p.WriteString("end")
}

func bodyStats(e Expr) []Expr {
	switch n := e.(type) {
	case nil, *EmptyTree:
		return nil

	case *Seq:
		return n.Stats

	default:
		return []Expr{e}
	}
}

func (p *printer) expr(e Expr) {
	switch n := e.(type) {
	case nil, *EmptyTree:

	case *Unknown:
		p.WriteString(n.Text)

	case *Literal:
		p.literal(n)

	case *ConstLit:
		switch n.Scope.(type) {
		case nil:

		case *Cbase:
			p.WriteString("::")

		default:
			p.expr(n.Scope)
			p.WriteString("::")
		}

		p.WriteString(n.Name)

	case *Cbase:
		p.WriteString("::")

	case *Local:
		p.WriteString(n.Name)

	case *Ident:
		switch n.Kind {
		case InstanceVar:
			p.WriteByte('@')
		case ClassVar:
			p.WriteString("@@")
		case GlobalVar:
			p.WriteByte('$')
		}

		p.WriteString(n.Name)

	case *Self:
		p.WriteString("self")

	case *Assign:
		p.expr(n.Lhs)
		p.WriteString(" = ")
		p.expr(n.Rhs)

	case *Send:
		p.send(n)

	case *Block:
		p.block(n)

	case *Hash:
		if len(n.Keys) == 0 {
			p.WriteString("{}")
			break
		}

		p.WriteByte('{')
		p.hashEntries(n)
		p.WriteByte('}')

	case *Array:
		p.WriteByte('[')
		p.list(n.Elems)
		p.WriteByte(']')

	case *ClassDef:
		p.classDef(n)

	case *MethodDef:
		p.methodDef(n)

	case *KeywordArg:
		p.WriteString(n.Name)
		p.WriteByte(':')

	case *OptionalArg:
		if k, ok := n.Arg.(*KeywordArg); ok {
			p.WriteString(k.Name)
			p.WriteString(": ")
		} else {
			p.expr(n.Arg)
			p.WriteString(" = ")
		}

		p.expr(n.Default)

	case *RestArg:
		p.WriteByte('*')
		p.WriteString(n.Name)

	case *BlockArg:
		p.WriteByte('&')
		p.WriteString(n.Name)

	case *Seq:
		switch len(n.Stats) {
		case 0:
		case 1:
			p.expr(n.Stats[0])
		default:
			p.WriteByte('(')
			for i, s := range n.Stats {
				if i > 0 {
					p.WriteString("; ")
				}
				p.expr(s)
			}
			p.WriteByte(')')
		}
	}
}

func (p *printer) literal(n *Literal) {
	switch n.Kind {
	case LitNil:
		p.WriteString("nil")

	case LitTrue:
		p.WriteString("true")

	case LitFalse:
		p.WriteString("false")

	case LitSymbol:
		p.WriteByte(':')

		if isSymbolName(n.Value) {
			p.WriteString(n.Value)
		} else {
			p.WriteString(strconv.Quote(n.Value))
		}

	case LitString:
		p.WriteString(strconv.Quote(n.Value))

	default:
		p.WriteString(n.Value)
	}
}

func isSymbolName(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		switch {
		case r == '_', 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z':
		case '0' <= r && r <= '9' && i > 0:
		case (r == '?' || r == '!' || r == '=') && i == len(s)-1:
		default:
			return false
		}
	}

	return true
}

func (p *printer) list(es []Expr) {
	for i, e := range es {
		if i > 0 {
			p.WriteString(", ")
		}

		p.expr(e)
	}
}

func (p *printer) hashEntries(h *Hash) {
	for i, k := range h.Keys {
		if i > 0 {
			p.WriteString(", ")
		}

		if name, ok := SymbolName(k); ok && isSymbolName(name) {
			p.WriteString(name)
			p.WriteString(": ")
		} else {
			p.expr(k)
			p.WriteString(" => ")
		}

		if i < len(h.Values) {
			p.expr(h.Values[i])
		}
	}
}

func (p *printer) send(n *Send) {
	if n.Recv != nil {
		p.expr(n.Recv)
	}

	if n.Fun == "[]" && n.Recv != nil {
		p.WriteByte('[')
		p.list(n.Args)
		p.WriteByte(']')
	} else {
		if n.Recv != nil {
			p.WriteByte('.')
		}

		p.WriteString(n.Fun)
		p.args(n.Args)
	}

	if n.Block != nil {
		p.WriteByte(' ')
		p.block(n.Block)
	}
}

func (p *printer) args(args []Expr) {
	if len(args) == 0 {
		return
	}

	p.WriteByte('(')

	for i, a := range args {
		if i > 0 {
			p.WriteString(", ")
		}

		if h, ok := a.(*Hash); ok && i == len(args)-1 && len(h.Keys) > 0 {
			p.hashEntries(h)
		} else {
			p.expr(a)
		}
	}

	p.WriteByte(')')
}

func (p *printer) blockParams(params []Expr) {
	if len(params) == 0 {
		return
	}

	p.WriteByte('|')
	p.list(params)
	p.WriteString("| ")
}

// block uses braces for single-line bodies and do ... end otherwise.
func (p *printer) block(b *Block) {
	stats := bodyStats(b.Body)

	if len(stats) == 0 {
		p.WriteByte('{')
		if len(b.Params) > 0 {
			p.WriteByte(' ')
			p.blockParams(b.Params)
		}
		p.WriteByte('}')

		return
	}

	if len(stats) == 1 {
		var inline printer

		inline.expr(stats[0])
		if text := inline.String(); !strings.Contains(text, "\n") {
			p.WriteString("{ ")
			p.blockParams(b.Params)
			p.WriteString(text)
			p.WriteString(" }")

			return
		}
	}

	p.WriteString("do")

	if len(b.Params) > 0 {
		p.WriteString(" |")
		p.list(b.Params)
		p.WriteByte('|')
	}

	p.body(stats)
}

func (p *printer) classDef(n *ClassDef) {
	if n.Kind == Module {
		p.WriteString("module ")
	} else {
		p.WriteString("class ")
	}

	p.expr(n.Name)

	if len(n.Ancestors) > 0 {
		p.WriteString(" < ")
		p.list(n.Ancestors)
	}

	if len(n.Body) == 0 {
		p.WriteString("; end")
		return
	}

	p.body(n.Body)
}

func (p *printer) methodDef(n *MethodDef) {
	switch n.Visibility {
	case Private:
		p.WriteString("private ")
	case Protected:
		p.WriteString("protected ")
	}

	p.WriteString("def ")

	if n.IsSelf() {
		p.WriteString("self.")
	}

	p.WriteString(n.Name)
	p.args(n.Args)

	stats := bodyStats(n.Body)
	if len(stats) == 0 {
		p.WriteString("; end")
		return
	}

	p.body(stats)
}
