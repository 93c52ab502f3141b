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

import (
	"strings"

	"fillmore-labs.com/rbdesugar/ast"
)

// PatchRails replaces versioned migration ancestors
//
//	class Foo < ActiveRecord::Migration[5.1]
//
// with the compatibility constant they evaluate to
//
//	class Foo < ActiveRecord::Migration::Compatibility::V5_1
func PatchRails(_ Context, cd *ast.ClassDef) {
	if cd.Kind != ast.Class {
		return
	}

	for i, a := range cd.Ancestors {
		s, ok := a.(*ast.Send)
		if !ok || s.Fun != "[]" || len(s.Args) != 1 || s.Block != nil || !ast.IsConstPath(s.Recv, "ActiveRecord", "Migration") {
			continue
		}

		v, ok := s.Args[0].(*ast.Literal)
		if !ok || v.Kind != ast.LitFloat {
			continue
		}

		version := "V" + strings.ReplaceAll(v.Value, ".", "_")
		migration := s.Recv.(*ast.ConstLit)
		cd.Ancestors[i] = ast.Const(s.Loc,
			ast.Const(s.Loc, ast.Copy(migration), "Compatibility"),
			version)
	}
}
