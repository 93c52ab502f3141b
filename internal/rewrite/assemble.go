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
)

// assemble returns a copy of cd whose body is prefix followed by the original statements,
// each replaced by its replacement sequence where one was recorded.
// Statements without a replacement are moved over unchanged.
func assemble(cd *ast.ClassDef, prefix []ast.Expr, replaced replacements) *ast.ClassDef {
	size := len(prefix) + len(cd.Body)
	for _, nodes := range replaced {
		size += len(nodes) - 1
	}

	body := make([]ast.Expr, 0, size)
	body = append(body, prefix...)

	for i, stmt := range astutil.AllStatements(cd.Body) {
		nodes, ok := replaced[i]
		if !ok {
			body = append(body, stmt)

			continue
		}

		for _, n := range nodes {
			astutil.Enforce(n != nil, "Nil node in replacement of statement %d", i)
		}

		body = append(body, nodes...)
	}

	out := *cd
	out.Body = body

	return &out
}
