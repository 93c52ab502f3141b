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

package astutil

import (
	"bytes"
	"fmt"
	"regexp"
	"slices"

	"fillmore-labs.com/rbdesugar/ast"
)

// CurrentFile holds file information for the rewriter.
type CurrentFile struct {
	file  *ast.File
	lines []uint32 // offsets of line starts
}

// NewCurrentFile creates a new [CurrentFile] from an *[ast.File].
func NewCurrentFile(file *ast.File) CurrentFile {
	if file == nil || file.Root == nil {
		return CurrentFile{}
	}

	lines := []uint32{0}

	for i, c := range file.Source {
		if c == '\n' {
			lines = append(lines, uint32(i+1))
		}
	}

	return CurrentFile{file: file, lines: lines}
}

// Path returns the file path.
func (c CurrentFile) Path() string {
	if c.file == nil {
		return ""
	}

	return c.file.Path
}

// Position returns the 1-based line and column of a byte offset.
func (c CurrentFile) Position(offset uint32) (line, column int) {
	if len(c.lines) == 0 {
		return 0, 0
	}

	i, found := slices.BinarySearch(c.lines, offset)
	if !found {
		i--
	}

	return i + 1, int(offset-c.lines[i]) + 1
}

// Where formats the start of e as path:line:column.
func (c CurrentFile) Where(e ast.Expr) string {
	line, column := c.Position(e.Location().Begin)

	return fmt.Sprintf("%s:%d:%d", c.Path(), line, column)
}

const headerLines = 5

var generatedPattern = regexp.MustCompile(`^#.*(@generated|[Tt]his file is (auto-?)?generated|DO NOT EDIT)`)

// HasGeneratedMarker checks whether one of the first comment lines of src marks the file as generated.
func HasGeneratedMarker(src []byte) bool {
	for i, line := range bytes.SplitN(src, []byte{'\n'}, headerLines+1) {
		if i == headerLines {
			break
		}

		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		if line[0] != '#' {
			return false // code starts here
		}

		if generatedPattern.Match(line) {
			return true
		}
	}

	return false
}
