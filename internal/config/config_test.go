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

package config_test

import (
	"slices"
	"testing"

	. "fillmore-labs.com/rbdesugar/internal/config"
)

func TestBitMask(t *testing.T) {
	t.Parallel()

	r := NewBitMask(Prop, Struct)
	r.Set(Delegate, true)
	r.Set(Struct, false)

	if !r.Enabled(Prop) || !r.Enabled(Delegate) {
		t.Errorf("Expected prop and delegate to be enabled")
	}

	if r.Enabled(Struct) {
		t.Errorf("Expected struct to be disabled")
	}

	got := slices.Collect(r.Select(AllFamilies[:]))
	if want := []Family{Prop, Delegate}; !slices.Equal(got, want) {
		t.Errorf("Select() = %v, want %v", got, want)
	}
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	r := DefaultRecognizers()
	for _, f := range AllFamilies {
		if !r.Enabled(f) {
			t.Errorf("Family %s disabled by default", f)
		}
	}

	b := DefaultBehavior()
	if b.Enabled(IncludeGenerated) {
		t.Error("Generated files included by default")
	}

	if !b.Enabled(SynthesizeInitializer) || !b.Enabled(Verify) {
		t.Error("Expected initializer synthesis and verification by default")
	}
}

func TestFamilyString(t *testing.T) {
	t.Parallel()

	if got, want := DSLBuilder.String(), "dsl-builder"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if got, want := Family(3).String(), "Family(3)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParseFamily(t *testing.T) {
	t.Parallel()

	for _, f := range AllFamilies {
		if got, ok := ParseFamily(f.String()); !ok || got != f {
			t.Errorf("ParseFamily(%q) = %v, %t", f.String(), got, ok)
		}
	}

	if _, ok := ParseFamily("unknown"); ok {
		t.Error("ParseFamily accepted an unknown name")
	}
}
