// Copyright 2010-2024 Google LLC
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

// The formula_sample command builds a few formulas and reports how they
// evaluate and render.
package main

import (
	"flag"

	log "github.com/golang/glog"
	"github.com/google/boolformula/formula"
)

var negations = flag.Int("negations", 2, "number of negations wrapped around the last literal")

func formulaSample(n int) error {
	notTrue, err := formula.NewNot(formula.True)
	if err != nil {
		return err
	}

	var nested formula.Formula = formula.False
	for i := 0; i < n; i++ {
		if nested, err = formula.NewNot(nested); err != nil {
			return err
		}
	}

	for _, f := range []formula.Formula{formula.True, formula.False, notTrue, nested} {
		b, err := formula.Marshal(f)
		if err != nil {
			return err
		}
		log.Infof("%v evaluates to %v (depth %d, %d encoded bytes)", f, f.Evaluate(), formula.Depth(f), len(b))
	}
	return nil
}

func main() {
	flag.Parse()
	defer log.Flush()
	if *negations < 0 {
		log.Exitf("-negations must be non-negative, got %d", *negations)
	}
	if err := formulaSample(*negations); err != nil {
		log.Exitf("formulaSample returned with error: %v", err)
	}
}
