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

	"fillmore-labs.com/rbdesugar/internal/config"
)

// RegisterFlags binds the options of d to command line flag values.
// A nil flag set value defaults to the program's command line.
func (d *Desugarer) RegisterFlags(flags *flag.FlagSet) {
	registerFlags(d.r, flags)
}

func registerFlags(r *runOptions, flags *flag.FlagSet) {
	if flags == nil {
		flags = flag.CommandLine
	}

	for _, f := range config.AllFamilies {
		flags.Var(NewRecognizerValue(&r.recognizers, f), f.String(), "enable the "+f.String()+" recognizer")
	}

	flags.Var(newBehaviorValue(&r.behavior, config.IncludeGenerated), "generated", "rewrite generated files")
	flags.Var(newBehaviorValue(&r.behavior, config.SynthesizeInitializer), "initializer", "synthesize initializers for T::Struct classes")
	flags.Var(newBehaviorValue(&r.behavior, config.Verify), "verify", "verify the structure of rewritten files")
	flags.IntVar(&r.parallelism, "parallelism", r.parallelism, "maximum number of files rewritten concurrently")
}
