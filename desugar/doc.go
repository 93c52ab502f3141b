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

// Package desugar rewrites Ruby class bodies written with metaprogramming idioms
// into explicit, typed method and signature definitions.
//
// # Overview
//
// Class bodies frequently declare methods indirectly, through property macros,
// attribute shorthands or builder helpers. Later analysis phases only understand
// explicit definitions, so every recognized idiom is expanded in place.
//
// # Example
//
// Before:
//
//	class Config < T::Struct
//	  prop :name, String
//	  prop :port, Integer, default: 80
//	end
//
// After:
//
//	class Config < T::Struct
//	  sig { params(name: String, port: Integer).void }
//	  def initialize(name:, port: T.unsafe(nil)); end
//	  sig { returns(String) }
//	  def name
//	    T.unsafe(nil)
//	  end
//	  ...
//	end
//
// # Recognizers
//
// Recognizer families can be enabled and disabled individually; see [Families]
// for their names and [WithRecognizer]:
//
//   - prop, encrypted-prop: typed property declarations
//   - struct, class-new, protobuf: constant assignments that define classes
//   - minitest, dsl-builder, private, delegate, attr: call-shaped idioms
//   - command, rails, enum: patches of whole class bodies
//   - wrap-instance: interface assertions anywhere in a file
package desugar
