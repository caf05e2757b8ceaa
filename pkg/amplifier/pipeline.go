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
package amplifier

import (
	"errors"
	"fmt"

	"github.com/consensys/go-intcode/pkg/util"
	"github.com/consensys/go-intcode/pkg/vm/channel"
	"github.com/consensys/go-intcode/pkg/vm/machine"
	"github.com/consensys/go-intcode/pkg/vm/memory"
	log "github.com/sirupsen/logrus"
)

// ErrNoOutput is reported when a stage of a pipeline halts without producing
// any output, meaning there is no signal to pass onto the next stage.
var ErrNoOutput = errors.New("stage produced no output")

// Pipeline is a linear chain of amplifiers, all running the same program.
// Each stage is seeded with its phase setting followed by the signal emitted
// from the previous stage (or 0 for the first stage).
type Pipeline struct {
	// Program executed by every stage.  This is never modified, since each
	// stage runs on its own copy.
	Program memory.Memory
}

// Result identifies the best phase ordering found by a search, along with the
// signal it produced.
type Result struct {
	Phases []int64
	Score  int64
}

// Phases constructs the set of phase settings {offset, ..., offset+stages-1}.
func Phases(stages uint, offset int64) []int64 {
	phases := make([]int64, stages)
	//
	for i := range stages {
		phases[i] = offset + int64(i)
	}
	//
	return phases
}

// Run executes the pipeline for a given ordering of phase settings, one stage
// after another, returning the signal emitted by the final stage.
func (p *Pipeline) Run(phases []int64) (int64, error) {
	var signal int64
	//
	for i, phase := range phases {
		var (
			mem = p.Program.Clone()
			in  = channel.NewScript(phase, signal)
			out = channel.NewCollector()
		)
		//
		if err := machine.Execute(mem, in, out); err != nil {
			return 0, fmt.Errorf("stage %d: %w", i, err)
		}
		//
		last, ok := out.Last()
		if !ok {
			return 0, fmt.Errorf("stage %d: %w", i, ErrNoOutput)
		}
		//
		signal = last
	}
	//
	return signal, nil
}

// Search runs the pipeline for every ordering of the given phase settings,
// returning the ordering which produces the highest signal.  Orderings which
// fail are skipped.  If every ordering fails, the first failure is returned.
func (p *Pipeline) Search(phases []int64) (Result, error) {
	var (
		best     Result
		found    bool
		firstErr error
	)
	//
	for _, ordering := range util.Permutations(phases) {
		score, err := p.Run(ordering)
		//
		if err != nil {
			log.Debugf("phases %v: %s", ordering, err)
			//
			if firstErr == nil {
				firstErr = err
			}
			//
			continue
		}
		//
		log.Debugf("phases %v: %d", ordering, score)
		//
		if !found || score > best.Score {
			best = Result{ordering, score}
			found = true
		}
	}
	//
	if !found {
		return Result{}, firstErr
	}
	//
	return best, nil
}
