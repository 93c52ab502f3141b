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

package dsl

import "fillmore-labs.com/rbdesugar/ast"

// EncryptedProp desugars
//
//	encrypted_prop :foo
//
// into getters and setters for foo and encrypted_foo, both typed T.nilable(String).
// The options `migrating:` and `immutable:` are recognized; `immutable: true` omits the setters.
func EncryptedProp(_ Context, send *ast.Send, _ ast.Expr) (Result, bool) {
	if !isPlainCall(send, "encrypted_prop") || len(send.Args) < 1 || len(send.Args) > 2 {
		return noMatch()
	}

	name, ok := ast.LiteralName(send.Args[0])
	if !ok || name == "" {
		return noMatch()
	}

	var immutable bool

	if len(send.Args) == 2 {
		h, ok := send.Args[1].(*ast.Hash)
		if !ok {
			return noMatch()
		}

		keys, values, ok := ast.HashEntries(h)
		if !ok {
			return noMatch()
		}

		for i, key := range keys {
			switch key {
			case "migrating":

			case "immutable":
				immutable = ast.IsTrue(values[i])

			default:
				return noMatch()
			}
		}
	}

	loc := send.Loc
	typ := ast.Nilable(loc, ast.Const(loc, nil, "String"))
	body := ast.Unsafe(loc, ast.Nil(loc))

	var nodes []ast.Expr
	for _, n := range [...]string{name, "encrypted_" + name} {
		nodes = append(nodes, accessors(loc, &Property{Name: n, Type: typ, Immutable: immutable}, body)...)
	}

	return match(nodes...)
}
