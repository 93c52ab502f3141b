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

// WrapInstance rewrites
//
//	Foo.wrap_instance(x)
//
// into `T.let(x, Foo)`, asserting that the wrapped value implements the interface.
// Other calls are returned unchanged.
func WrapInstance(_ Context, s *ast.Send) ast.Expr {
	if s.Fun != "wrap_instance" || len(s.Args) != 1 || s.Block != nil {
		return s
	}

	iface, ok := s.Recv.(*ast.ConstLit)
	if !ok {
		return s
	}

	return ast.Let(s.Loc, s.Args[0], iface)
}
