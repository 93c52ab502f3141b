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

package rewrite

import (
	"fillmore-labs.com/rbdesugar/ast"
	"fillmore-labs.com/rbdesugar/internal/astutil"
	"fillmore-labs.com/rbdesugar/internal/dsl"
)

// synthesizeInitializer builds
//
//	sig {params(a: A, b: B).void}
//	def initialize(a:, b: T.unsafe(nil)); end
//
// with one keyword parameter per property, in order. Optional properties are defaulted.
func synthesizeInitializer(loc ast.Loc, props []dsl.Property) []ast.Expr {
	params := ast.NewHash(loc, make([]ast.Expr, 0, len(props)), make([]ast.Expr, 0, len(props)))
	args := make([]ast.Expr, 0, len(props))

	for _, p := range props {
		params.Keys = append(params.Keys, ast.Symbol(loc, p.Name))
		params.Values = append(params.Values, ast.Copy(p.Type))

		var arg ast.Expr = ast.Keyword(loc, p.Name)
		if p.Optional {
			arg = ast.Optional(loc, arg, ast.Unsafe(loc, ast.Nil(loc)))
		}

		args = append(args, arg)
	}

	init := ast.Method(loc, "initialize", args, nil, ast.MethodSynthesized)

	checkParameterOrder(props, params, init)

	return []ast.Expr{ast.SigVoid(loc, params), init}
}

// checkParameterOrder asserts that signature and method list the properties in accumulation order.
func checkParameterOrder(props []dsl.Property, params *ast.Hash, init *ast.MethodDef) {
	astutil.Enforce(len(params.Keys) == len(props) && len(init.Args) == len(props),
		"Initializer for %d properties has %d signature and %d method parameters",
		len(props), len(params.Keys), len(init.Args))

	for i, p := range props {
		name, _ := ast.SymbolName(params.Keys[i])
		astutil.Enforce(name == p.Name, "Signature parameter %d is %q, expected %q", i, name, p.Name)

		arg := keywordName(init.Args[i])
		astutil.Enforce(arg == p.Name, "Initializer parameter %d is %q, expected %q", i, arg, p.Name)
	}
}

func keywordName(e ast.Expr) string {
	if o, ok := e.(*ast.OptionalArg); ok {
		e = o.Arg
	}

	if k, ok := e.(*ast.KeywordArg); ok {
		return k.Name
	}

	return ""
}
