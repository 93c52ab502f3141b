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
	"context"
	"runtime/trace"

	"fillmore-labs.com/rbdesugar/ast"
	"fillmore-labs.com/rbdesugar/internal/astutil"
	"fillmore-labs.com/rbdesugar/internal/dsl"
)

// Stats summarizes the rewrite of a file.
type Stats struct {
	Classes   int // class and module definitions visited
	Rewritten int // class and module definitions replaced
}

// Run rewrites every class definition of f, inner definitions first, and applies the
// whole-tree rewrites. Class definitions without matching statements keep their identity.
func (s Stage) Run(ctx context.Context, f *ast.File) Stats {
	defer trace.StartRegion(ctx, "Rewrite").End()

	var st Stats

	if f.Root == nil {
		return st
	}

	dc := dsl.Context{File: astutil.NewCurrentFile(f)}

	ast.Apply(f.Root, func(e ast.Expr) ast.Expr {
		switch n := e.(type) {
		case *ast.ClassDef:
			st.Classes++

			cd := s.ClassDef(ctx, dc, n)
			if cd != n {
				st.Rewritten++
			}

			return cd

		case *ast.Send:
			if s.WrapInstance {
				return dsl.WrapInstance(dc, n)
			}
		}

		return e
	})

	return st
}
