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

package config

// Family identifies a recognizer family that can be enabled or disabled as a unit.
type Family uint16

//go:generate go tool stringer -type Family -linecomment
const (
	// Prop enables property declarations (prop, const).
	Prop Family = 1 << iota // prop

	// EncryptedProp enables encrypted property declarations.
	EncryptedProp // encrypted-prop

	// Struct enables Struct.new assignments.
	Struct // struct

	// ClassNew enables Class.new assignments.
	ClassNew // class-new

	// Protobuf enables generated protobuf descriptor lookups.
	Protobuf // protobuf

	// Minitest enables describe/it blocks.
	Minitest // minitest

	// DSLBuilder enables dsl_optional and dsl_required.
	DSLBuilder // dsl-builder

	// Private enables visibility modifiers applied to method definitions.
	Private // private

	// Delegate enables delegate helpers.
	Delegate // delegate

	// AttrReader enables attr_reader, attr_writer and attr_accessor.
	AttrReader // attr

	// Command enables the command class patch.
	Command // command

	// Rails enables the migration ancestor patch.
	Rails // rails

	// Enum enables the enum class patch.
	Enum // enum

	// InterfaceWrapper enables wrap_instance rewriting.
	InterfaceWrapper // wrap-instance
)

// AllFamilies lists every [Family] in registration order.
var AllFamilies = [...]Family{
	Prop, EncryptedProp, Struct, ClassNew, Protobuf, Minitest, DSLBuilder,
	Private, Delegate, AttrReader, Command, Rails, Enum, InterfaceWrapper,
}

// Recognizers is the set of enabled recognizer families.
type Recognizers = BitMask[Family]

// DefaultRecognizers enables every family.
func DefaultRecognizers() Recognizers {
	return NewBitMask(AllFamilies[:]...)
}

// Config represents behavioral options of the rewriter.
type Config uint8

const (
	// IncludeGenerated specifies whether generated files are rewritten.
	IncludeGenerated Config = 1 << iota

	// SynthesizeInitializer enables initializer synthesis for struct-like classes.
	SynthesizeInitializer

	// Verify enables the structural verification of rewritten files.
	Verify
)

// Behavior holds the enabled behavioral options.
type Behavior = BitMask[Config]

// DefaultBehavior returns the default behavioral options.
func DefaultBehavior() Behavior {
	return NewBitMask(SynthesizeInitializer, Verify)
}

// ParseFamily returns the [Family] with the given name, as printed by [Family.String].
func ParseFamily(name string) (Family, bool) {
	for _, f := range AllFamilies {
		if f.String() == name {
			return f, true
		}
	}

	return 0, false
}
