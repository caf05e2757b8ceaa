// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package restore

import (
	"errors"
	"fmt"

	"github.com/consensys/go-intcode/pkg/vm/machine"
	"github.com/consensys/go-intcode/pkg/vm/memory"
	log "github.com/sirupsen/logrus"
)

// ErrNotFound is reported when no noun / verb pair produces the target value.
var ErrNotFound = errors.New("no matching noun and verb")

const (
	// NOUN_ADDRESS is the address patched with the noun.
	NOUN_ADDRESS = 1
	// VERB_ADDRESS is the address patched with the verb.
	VERB_ADDRESS = 2
	// RESULT_ADDRESS is the address holding the result after the program halts.
	RESULT_ADDRESS = 0
)

// Run patches a copy of the given program with a noun and verb, executes it to
// completion and returns the value left at address 0.  The program runs with
// no input, and any output it produces is discarded.
func Run(program memory.Memory, noun int64, verb int64) (int64, error) {
	mem := program.Clone()
	//
	if err := mem.Store(NOUN_ADDRESS, noun); err != nil {
		return 0, fmt.Errorf("noun: %w", err)
	} else if err := mem.Store(VERB_ADDRESS, verb); err != nil {
		return 0, fmt.Errorf("verb: %w", err)
	} else if err := machine.Execute(mem, nil, nil); err != nil {
		return 0, err
	}
	//
	return mem.Load(RESULT_ADDRESS)
}

// Search looks for the noun / verb pair (each drawn from 1..limit-1) for
// which the program leaves target at address 0.  Pairs whose execution fails
// are skipped.
func Search(program memory.Memory, target int64, limit int64) (int64, int64, error) {
	for noun := int64(1); noun < limit; noun++ {
		for verb := int64(1); verb < limit; verb++ {
			result, err := Run(program, noun, verb)
			//
			if err != nil {
				log.Debugf("noun %d, verb %d: %s", noun, verb, err)
			} else if result == target {
				log.Debugf("noun %d, verb %d: found %d", noun, verb, target)
				return noun, verb, nil
			}
		}
	}
	//
	return 0, 0, fmt.Errorf("%w (target %d)", ErrNotFound, target)
}

// Answer combines a noun and verb into a single value.
func Answer(noun int64, verb int64) int64 {
	return 100*noun + verb
}
