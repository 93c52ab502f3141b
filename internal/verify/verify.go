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

// Package verify checks the structural well-formedness of rewritten trees.
package verify

import (
	"errors"
	"fmt"

	"fillmore-labs.com/rbdesugar/ast"
	"fillmore-labs.com/rbdesugar/internal/astutil"
)

// ErrMalformed is wrapped by every [Error].
var ErrMalformed = errors.New("malformed tree")

// Error describes the first malformed node found in a file.
type Error struct {
	Path         string
	Line, Column int
	Node         string // node type
	Msg          string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s", e.Path, e.Line, e.Column, e.Node, e.Msg)
}

func (e *Error) Unwrap() error { return ErrMalformed }

// File walks all nodes of f and returns an [*Error] for the first structural defect.
func File(f *ast.File) error {
	if f.Root == nil {
		return nil
	}

	v := verifier{file: astutil.NewCurrentFile(f)}
	v.expr(f.Root)

	if v.err != nil {
		return v.err
	}

	return nil
}

type verifier struct {
	file astutil.CurrentFile
	err  *Error
}

func (v *verifier) fail(e ast.Expr, format string, args ...any) {
	if v.err != nil {
		return
	}

	line, col := v.file.Position(e.Location().Begin)
	v.err = &Error{
		Path:   v.file.Path(),
		Line:   line,
		Column: col,
		Node:   fmt.Sprintf("%T", e),
		Msg:    fmt.Sprintf(format, args...),
	}
}

// required checks that child is present and descends into it.
func (v *verifier) required(parent, child ast.Expr, what string) {
	if child == nil {
		v.fail(parent, "missing %s", what)

		return
	}

	v.expr(child)
}

func (v *verifier) all(parent ast.Expr, es []ast.Expr, what string) {
	for i, e := range es {
		if e == nil {
			v.fail(parent, "missing %s %d", what, i)

			return
		}

		v.expr(e)
	}
}

func (v *verifier) expr(e ast.Expr) {
	if v.err != nil {
		return
	}

	switch n := e.(type) {
	case *ast.EmptyTree, *ast.Unknown, *ast.Cbase, *ast.Self:

	case *ast.Literal:
		if n.Kind > ast.LitFloat {
			v.fail(n, "invalid literal kind %d", n.Kind)
		}

	case *ast.ConstLit:
		if n.Name == "" {
			v.fail(n, "unnamed constant")
		}

		if n.Scope != nil {
			v.expr(n.Scope)
		}

	case *ast.Local:
		if n.Name == "" {
			v.fail(n, "unnamed local")
		}

	case *ast.Ident:
		if n.Name == "" {
			v.fail(n, "unnamed variable")
		}

	case *ast.Assign:
		v.required(n, n.Lhs, "assignment target")
		v.required(n, n.Rhs, "assigned value")

	case *ast.Send:
		if n.Fun == "" {
			v.fail(n, "call without method name")
		}

		if n.Recv != nil {
			v.expr(n.Recv)
		}

		v.all(n, n.Args, "argument")

		if n.Block != nil {
			v.expr(n.Block)
		}

	case *ast.Block:
		v.params(n, n.Params)
		v.required(n, n.Body, "block body")

	case *ast.Hash:
		if len(n.Keys) != len(n.Values) {
			v.fail(n, "%d keys for %d values", len(n.Keys), len(n.Values))

			return
		}

		v.all(n, n.Keys, "key")
		v.all(n, n.Values, "value")

	case *ast.Array:
		v.all(n, n.Elems, "element")

	case *ast.ClassDef:
		if n.Kind == ast.Module && len(n.Ancestors) > 0 {
			v.fail(n, "module with superclass")
		}

		v.required(n, n.Name, "class name")
		v.all(n, n.Ancestors, "ancestor")
		v.all(n, n.Body, "statement")

	case *ast.MethodDef:
		if n.Name == "" {
			v.fail(n, "unnamed method")
		}

		v.params(n, n.Args)
		v.required(n, n.Body, "method body")

	case *ast.Seq:
		v.all(n, n.Stats, "statement")

	case *ast.KeywordArg, *ast.OptionalArg, *ast.RestArg, *ast.BlockArg:
		v.fail(n, "parameter outside of parameter list")

	default:
		v.fail(n, "unexpected node")
	}
}

// params checks a method or block parameter list.
func (v *verifier) params(parent ast.Expr, params []ast.Expr) {
	for i, p := range params {
		switch n := p.(type) {
		case nil:
			v.fail(parent, "missing parameter %d", i)

		case *ast.Local:
			v.expr(n)

		case *ast.KeywordArg:
			if n.Name == "" {
				v.fail(n, "unnamed keyword parameter")
			}

		case *ast.OptionalArg:
			switch a := n.Arg.(type) {
			case *ast.Local:
				v.expr(a)

			case *ast.KeywordArg:
				if a.Name == "" {
					v.fail(a, "unnamed keyword parameter")
				}

			default:
				v.fail(n, "optional parameter without name")
			}

			v.required(n, n.Default, "default value")

		case *ast.RestArg:

		case *ast.BlockArg:
			if n.Name == "" {
				v.fail(n, "unnamed block parameter")
			}

		case *ast.Unknown:

		default:
			v.fail(n, "unexpected parameter")
		}
	}
}
