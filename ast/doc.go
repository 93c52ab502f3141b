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

// Package ast defines the class-body tree rewritten by rbdesugar.
//
// # Overview
//
// The tree models the subset of Ruby that class-level metaprogramming idioms are
// written in: constants, literals, calls with blocks, hashes, assignments, class and
// method definitions. Everything else is carried verbatim as [Unknown].
//
// The set of node types is closed. Class-body statements are classified by [ShapeOf]
// into assignment-shaped, call-shaped and other statements.
//
// Builders such as [Sig], [Method0] and [Unsafe] construct the nodes emitted by the
// rewriter, and [Print] renders a tree back to source text.
package ast
