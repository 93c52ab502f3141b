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

package desugar

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"fillmore-labs.com/rbdesugar/internal/config"
)

// NewRecognizerValue returns a boolean [flag.Value] toggling a recognizer family in flags.
func NewRecognizerValue(flags *config.Recognizers, value config.Family) flag.Getter {
	return bitValue[config.Family, *config.Recognizers]{mask: flags, bit: value}
}

func newBehaviorValue(flags *config.Behavior, value config.Config) flag.Getter {
	return bitValue[config.Config, *config.Behavior]{mask: flags, bit: value}
}

// bitValue exposes a single bit of a mask as a boolean flag.
type bitValue[F any, M bitMask[F]] struct {
	mask M
	bit  F
}

type bitMask[F any] interface {
	comparable
	Set(flag F, value bool)
	Enabled(flag F) bool
}

func (v bitValue[_, _]) Set(s string) error {
	on, err := parseSwitch(s)
	if err != nil {
		return err
	}

	v.mask.Set(v.bit, on)

	return nil
}

func (v bitValue[_, M]) String() string { return strconv.FormatBool(v.enabled()) }

func (v bitValue[_, _]) Get() any { return v.enabled() }

// IsBoolFlag allows the flag to be given without a value.
func (bitValue[_, _]) IsBoolFlag() bool { return true }

// enabled is false for the zero value, which the flag package creates for help output.
func (v bitValue[_, M]) enabled() bool {
	var zero M

	return v.mask != zero && v.mask.Enabled(v.bit)
}

// parseSwitch accepts everything [strconv.ParseBool] does, plus on and off.
func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on":
		return true, nil

	case "off":
		return false, nil
	}

	on, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid switch %q, want true/false or on/off", s)
	}

	return on, nil
}
