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

import "fmt"

// InternalError is the panic value of a violated rewriter invariant.
// These errors indicate bugs in the rewriter logic rather than issues in the user's code.
type InternalError struct {
	msg string
}

func (e *InternalError) Error() string {
	return "Internal Error: " + e.msg
}

// Enforce panics with an [*InternalError] when cond does not hold.
func Enforce(cond bool, format string, args ...any) {
	if cond {
		return
	}

	panic(&InternalError{msg: fmt.Sprintf(format, args...)})
}
