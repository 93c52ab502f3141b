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

// Package ruby converts Ruby source code into [ast] trees using the tree-sitter Ruby grammar.
package ruby

import (
	"context"
	"errors"
	"fmt"
	"runtime/trace"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/ruby"

	"fillmore-labs.com/rbdesugar/ast"
	"fillmore-labs.com/rbdesugar/internal/astutil"
)

// ErrSyntax is returned for source code that does not parse.
var ErrSyntax = errors.New("syntax error")

// Parse parses the Ruby source code src of the file at path.
func Parse(ctx context.Context, path string, src []byte) (*ast.File, error) {
	defer trace.StartRegion(ctx, "Parse").End()

	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(ruby.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		row, col := firstError(root)

		return nil, fmt.Errorf("%s:%d:%d: %w", path, row+1, col+1, ErrSyntax)
	}

	c := converter{src: src}

	return &ast.File{
		Path:      path,
		Source:    src,
		Root:      &ast.Seq{Loc: c.loc(root), Stats: c.stmts(root)},
		Generated: astutil.HasGeneratedMarker(src),
	}, nil
}

// firstError returns the start of the first erroneous or missing node.
func firstError(n *sitter.Node) (row, column uint32) {
	if n.Type() == "ERROR" || n.IsMissing() {
		p := n.StartPoint()

		return p.Row, p.Column
	}

	for i := range int(n.ChildCount()) {
		if c := n.Child(i); c.HasError() {
			return firstError(c)
		}
	}

	p := n.StartPoint()

	return p.Row, p.Column
}
