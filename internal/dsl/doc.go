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

// Package dsl holds the recognizers that desugar class-body metaprogramming idioms
// into explicit, typed method and signature definitions.
//
// Recognizers are registered per statement shape in a fixed priority order; the
// first one that matches a statement provides its replacement. Whole-body patches
// run before any statement is scanned.
package dsl
