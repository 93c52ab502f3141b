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

// PatchCommand adds a class-level `call` next to the instance `call` of Opus::Command subclasses:
//
//	class Foo < Opus::Command
//	  sig {params(x: Integer).returns(String)}
//	  def call(x); end
//	end
//
// gains
//
//	sig {params(x: Integer).returns(String)}
//	def self.call(x); end
//
// right after the instance method. Classes that define `self.call` are left alone.
func PatchCommand(_ Context, cd *ast.ClassDef) {
	if cd.Kind != ast.Class || !hasAncestor(cd, "Opus", "Command") {
		return
	}

	call := -1

	for i, stat := range cd.Body {
		m, ok := stat.(*ast.MethodDef)
		if !ok || m.Name != "call" {
			continue
		}

		if m.IsSelf() {
			return
		}

		if call < 0 {
			call = i
		}
	}

	if call < 0 {
		return
	}

	m := cd.Body[call].(*ast.MethodDef)
	loc := m.Loc

	var added []ast.Expr

	if call > 0 {
		if sig, ok := ast.IsSig(cd.Body[call-1]); ok {
			added = append(added, ast.Copy(sig))
		}
	}

	added = append(added, ast.Method(loc, "call", ast.CopyAll(m.Args), nil, ast.MethodSelf|ast.MethodSynthesized))

	body := make([]ast.Expr, 0, len(cd.Body)+len(added))
	body = append(body, cd.Body[:call+1]...)
	body = append(body, added...)
	body = append(body, cd.Body[call+1:]...)
	cd.Body = body
}
