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

import "fillmore-labs.com/rbdesugar/internal/dsl"

// accumulator collects the properties declared in a class body in order of first occurrence.
// A redeclared property replaces the earlier metadata but keeps its position, so the
// synthesized initializer takes each name once. Keeping every declaration instead would
// repeat a parameter, which Ruby rejects.
type accumulator struct {
	props []dsl.Property
	index map[string]int
}

func (a *accumulator) add(p dsl.Property) {
	if i, ok := a.index[p.Name]; ok {
		a.props[i] = p

		return
	}

	if a.index == nil {
		a.index = make(map[string]int)
	}

	a.index[p.Name] = len(a.props)
	a.props = append(a.props, p)
}

func (a *accumulator) len() int { return len(a.props) }

func (a *accumulator) properties() []dsl.Property { return a.props }
