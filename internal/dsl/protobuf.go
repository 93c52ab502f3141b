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

// ProtobufDescriptorPool desugars generated protobuf lookups
//
//	A = Google::Protobuf::DescriptorPool.generated_pool.lookup("a").msgclass
//
// into `class A < ::Google::Protobuf::AbstractMessage; end`, and `.enummodule` lookups into `module A; end`.
func ProtobufDescriptorPool(_ Context, asgn *ast.Assign, _ ast.Expr) (Result, bool) {
	name, ok := asgn.Lhs.(*ast.ConstLit)
	if !ok {
		return noMatch()
	}

	send, ok := asgn.Rhs.(*ast.Send)
	if !ok || len(send.Args) != 0 || send.Block != nil {
		return noMatch()
	}

	if send.Fun != "msgclass" && send.Fun != "enummodule" {
		return noMatch()
	}

	lookup, ok := send.Recv.(*ast.Send)
	if !ok || lookup.Fun != "lookup" || len(lookup.Args) != 1 || lookup.Block != nil {
		return noMatch()
	}

	if l, ok := lookup.Args[0].(*ast.Literal); !ok || l.Kind != ast.LitString {
		return noMatch()
	}

	pool, ok := lookup.Recv.(*ast.Send)
	if !ok || pool.Fun != "generated_pool" || len(pool.Args) != 0 || pool.Block != nil ||
		!ast.IsConstPath(pool.Recv, "Google", "Protobuf", "DescriptorPool") {
		return noMatch()
	}

	loc := asgn.Loc

	if send.Fun == "enummodule" {
		return match(ast.NewModule(loc, name, nil))
	}

	return match(ast.NewClass(loc, name, []ast.Expr{ast.ConstPath(loc, true, "Google", "Protobuf", "AbstractMessage")}, nil))
}
