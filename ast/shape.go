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

package ast

// Shape is the structural kind of a class-body statement.
type Shape uint8

//go:generate go tool stringer -type Shape -linecomment
const (
	// ShapeOther marks statements no recognizer inspects.
	ShapeOther Shape = iota // other

	// ShapeAssign marks assignment-shaped statements.
	ShapeAssign // assign

	// ShapeSend marks call-shaped statements.
	ShapeSend // send
)

// ShapeOf classifies a statement.
func ShapeOf(e Expr) Shape {
	switch e.(type) {
	case *Assign:
		return ShapeAssign

	case *Send:
		return ShapeSend

	default:
		return ShapeOther
	}
}
