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
	"fillmore-labs.com/rbdesugar/internal/config"
	"fillmore-labs.com/rbdesugar/internal/dsl"
)

// Stage configures the class definition rewrite.
type Stage struct {
	Assign  []dsl.Recognizer[*ast.Assign]
	Send    []dsl.Recognizer[*ast.Send]
	Patches []dsl.Patch

	// WrapInstance enables the whole-tree wrap_instance rewrite.
	WrapInstance bool

	Behavior config.Behavior
}

// New returns a [Stage] running the enabled recognizers.
func New(enabled config.Recognizers, behavior config.Behavior) Stage {
	return Stage{
		Assign:       dsl.AssignRecognizers(enabled),
		Send:         dsl.SendRecognizers(enabled),
		Patches:      dsl.Patches(enabled),
		WrapInstance: enabled.Enabled(config.InterfaceWrapper),
		Behavior:     behavior,
	}
}

// replacements maps statements of the original body to their replacement sequences.
type replacements map[astutil.StmtIndex][]ast.Expr

// ClassDef rewrites the body of a single class definition.
//
// Whole-body patches are applied to cd first. Then every statement is offered to the
// recognizers for its shape, in priority order. When no statement matches, cd itself is
// returned. Otherwise a new class definition is assembled from the original statements
// and their replacements, preceded by a synthesized initializer for T::Struct classes.
func (s Stage) ClassDef(ctx context.Context, dc dsl.Context, cd *ast.ClassDef) *ast.ClassDef {
	defer trace.StartRegion(ctx, "ClassDef").End()

	for _, p := range s.Patches {
		p.Apply(dc, cd)
	}

	var (
		replaced = make(replacements)
		props    accumulator
		prev     ast.Expr
	)

	for i, stmt := range astutil.AllStatements(cd.Body) {
		res, ok := s.recognize(dc, stmt, prev)
		prev = stmt

		if !ok {
			continue
		}

		astutil.Enforce(len(res.Nodes) > 0, "Empty replacement for %s at %s", ast.ShapeOf(stmt), dc.File.Where(stmt))

		replaced[i] = res.Nodes

		if res.Prop != nil {
			props.add(*res.Prop)
		}
	}

	if len(replaced) == 0 {
		return cd
	}

	var prefix []ast.Expr
	if s.Behavior.Enabled(config.SynthesizeInitializer) && props.len() > 0 && hasTStructAncestor(cd) {
		prefix = synthesizeInitializer(cd.Loc, props.properties())
	}

	return assemble(cd, prefix, replaced)
}

// recognize offers stmt to the recognizers registered for its shape; the first match wins.
func (s Stage) recognize(dc dsl.Context, stmt, prev ast.Expr) (dsl.Result, bool) {
	switch ast.ShapeOf(stmt) {
	case ast.ShapeAssign:
		return firstMatch(s.Assign, dc, stmt.(*ast.Assign), prev)

	case ast.ShapeSend:
		return firstMatch(s.Send, dc, stmt.(*ast.Send), prev)

	default:
		return dsl.Result{}, false
	}
}

func firstMatch[S ast.Expr](recognizers []dsl.Recognizer[S], dc dsl.Context, stmt S, prev ast.Expr) (dsl.Result, bool) {
	for _, r := range recognizers {
		if res, ok := r.Match(dc, stmt, prev); ok {
			return res, true
		}
	}

	return dsl.Result{}, false
}

// hasTStructAncestor reports whether any ancestor of cd syntactically spells T::Struct.
func hasTStructAncestor(cd *ast.ClassDef) bool {
	for _, a := range cd.Ancestors {
		if dsl.IsTStruct(a) {
			return true
		}
	}

	return false
}
