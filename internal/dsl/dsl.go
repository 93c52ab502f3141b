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
	"fillmore-labs.com/rbdesugar/ast"
	"fillmore-labs.com/rbdesugar/internal/astutil"
	"fillmore-labs.com/rbdesugar/internal/config"
)

// Context is the read-only context of a class visit.
type Context struct {
	File astutil.CurrentFile
}

// Property is the metadata extracted from a property declaration.
type Property struct {
	Name      string
	Type      ast.Expr
	Optional  bool // the property has a default or is nilable
	Immutable bool // no setter is generated
}

// Result is the replacement computed by a matching recognizer.
type Result struct {
	// Nodes replace the matched statement, in order. Never empty for a match.
	Nodes []ast.Expr

	// Prop is set by recognizers that declare a property.
	Prop *Property
}

// Recognizer is a stateless rule for statements of shape S.
//
// Match either declines (false) or returns the replacement for stmt. prev is the
// statement preceding stmt in the original class body, nil for the first one.
// Recognizers must not modify stmt or prev.
type Recognizer[S ast.Expr] struct {
	Family config.Family
	Match  func(ctx Context, stmt S, prev ast.Expr) (Result, bool)
}

// Patch is a whole-body rewrite applied to a class definition before its statements are scanned.
type Patch struct {
	Family config.Family
	Apply  func(ctx Context, cd *ast.ClassDef)
}

// assignRecognizers are tried in order on assignment-shaped statements.
var assignRecognizers = [...]Recognizer[*ast.Assign]{
	{config.Struct, StructNew},
	{config.ClassNew, ClassNew},
	{config.Protobuf, ProtobufDescriptorPool},
}

// sendRecognizers are tried in order on call-shaped statements.
var sendRecognizers = [...]Recognizer[*ast.Send]{
	{config.Prop, Prop},
	{config.EncryptedProp, EncryptedProp},
	{config.Minitest, Minitest},
	{config.DSLBuilder, DSLBuilder},
	{config.Private, Private},
	{config.Delegate, Delegate},
	{config.AttrReader, AttrReader},
}

// patches run in order before any statement is scanned.
var patches = [...]Patch{
	{config.Command, PatchCommand},
	{config.Rails, PatchRails},
	{config.Enum, PatchEnum},
}

// AssignRecognizers returns the enabled assignment recognizers in priority order.
func AssignRecognizers(enabled config.Recognizers) []Recognizer[*ast.Assign] {
	return filter(assignRecognizers[:], enabled, func(r Recognizer[*ast.Assign]) config.Family { return r.Family })
}

// SendRecognizers returns the enabled call recognizers in priority order.
func SendRecognizers(enabled config.Recognizers) []Recognizer[*ast.Send] {
	return filter(sendRecognizers[:], enabled, func(r Recognizer[*ast.Send]) config.Family { return r.Family })
}

// Patches returns the enabled whole-body patches in application order.
func Patches(enabled config.Recognizers) []Patch {
	return filter(patches[:], enabled, func(p Patch) config.Family { return p.Family })
}

func filter[E any](all []E, enabled config.Recognizers, family func(E) config.Family) []E {
	out := make([]E, 0, len(all))

	for _, e := range all {
		if enabled.Enabled(family(e)) {
			out = append(out, e)
		}
	}

	return out
}

// match wraps a non-empty replacement.
func match(nodes ...ast.Expr) (Result, bool) {
	return Result{Nodes: nodes}, true
}

// noMatch declines.
func noMatch() (Result, bool) {
	return Result{}, false
}
