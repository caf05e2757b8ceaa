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
	"fmt"
	"path"
	"slices"
	"testing"

	"github.com/consensys/go-intcode/pkg/util/source"
	"github.com/consensys/go-intcode/pkg/vm/memory"
	"github.com/consensys/go-intcode/pkg/vm/program"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TESTDATA_DIR identifies the directory holding sample programs.
const TESTDATA_DIR = "../../testdata/intcode"

// ==================================================================
// Phases
// ==================================================================

func Test_Phases_01(t *testing.T) {
	assert.Equal(t, []int64{0, 1, 2, 3, 4}, Phases(5, 0))
	assert.Equal(t, []int64{5, 6, 7, 8, 9}, Phases(5, 5))
	assert.Empty(t, Phases(0, 3))
}

// ==================================================================
// Run
// ==================================================================

func Test_Pipeline_Run_01(t *testing.T) {
	checkRun(t, "amplifier_1", []int64{4, 3, 2, 1, 0}, 43210)
}

func Test_Pipeline_Run_02(t *testing.T) {
	checkRun(t, "amplifier_2", []int64{0, 1, 2, 3, 4}, 54321)
}

func Test_Pipeline_Run_03(t *testing.T) {
	checkRun(t, "amplifier_3", []int64{1, 0, 4, 3, 2}, 65210)
}

func Test_Pipeline_Run_04(t *testing.T) {
	// Echoes the phase, ignoring the signal.
	p := Pipeline{memory.NewArray(3, 9, 3, 10, 4, 9, 99, 0, 0, 0, 0)}
	score, err := p.Run([]int64{7, 8, 3})
	//
	require.NoError(t, err)
	assert.Equal(t, int64(3), score)
}

func Test_Pipeline_Run_05(t *testing.T) {
	// Consumes both inputs, but never outputs.
	p := Pipeline{memory.NewArray(3, 5, 3, 5, 99, 0)}
	_, err := p.Run([]int64{0, 1})
	//
	assert.ErrorIs(t, err, ErrNoOutput)
}

func Test_Pipeline_Run_06(t *testing.T) {
	// Program is never modified.
	var (
		mem      = readProgram(t, "amplifier_1")
		original = slices.Clone(mem.Contents())
		p        = Pipeline{mem}
	)
	//
	_, err := p.Run([]int64{4, 3, 2, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, original, mem.Contents())
}

func Test_Pipeline_Run_07(t *testing.T) {
	// No stages, no signal.
	p := Pipeline{memory.NewArray(99)}
	score, err := p.Run(nil)
	//
	require.NoError(t, err)
	assert.Equal(t, int64(0), score)
}

// ==================================================================
// Search
// ==================================================================

func Test_Pipeline_Search_01(t *testing.T) {
	checkSearch(t, "amplifier_1", []int64{4, 3, 2, 1, 0}, 43210)
}

func Test_Pipeline_Search_02(t *testing.T) {
	checkSearch(t, "amplifier_2", []int64{0, 1, 2, 3, 4}, 54321)
}

func Test_Pipeline_Search_03(t *testing.T) {
	checkSearch(t, "amplifier_3", []int64{1, 0, 4, 3, 2}, 65210)
}

func Test_Pipeline_Search_04(t *testing.T) {
	// Every ordering fails with an invalid opcode.
	p := Pipeline{memory.NewArray(42)}
	_, err := p.Search(Phases(3, 0))
	//
	assert.Error(t, err)
}

func Test_Pipeline_Search_05(t *testing.T) {
	// Outputs the phase, but faults when the phase is below the incoming
	// signal.  Hence, only the ascending ordering succeeds.
	p := Pipeline{memory.NewArray(3, 15, 3, 16, 7, 15, 16, 17, 1005, 17, 14, 4, 15, 99, 0, 0, 0, 0)}
	//
	res, err := p.Search(Phases(3, 0))
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 2}, res.Phases)
	assert.Equal(t, int64(2), res.Score)
}

// ==================================================================
// Framework
// ==================================================================

func checkRun(t *testing.T, name string, phases []int64, expected int64) {
	p := Pipeline{readProgram(t, name)}
	score, err := p.Run(phases)
	//
	require.NoError(t, err)
	assert.Equal(t, expected, score)
}

func checkSearch(t *testing.T, name string, phases []int64, expected int64) {
	p := Pipeline{readProgram(t, name)}
	res, err := p.Search(Phases(5, 0))
	//
	require.NoError(t, err)
	assert.Equal(t, expected, res.Score)
	assert.Equal(t, phases, res.Phases)
}

func readProgram(t *testing.T, name string) memory.Memory {
	filename := path.Join(TESTDATA_DIR, fmt.Sprintf("%s.txt", name))
	srcfile, err := source.ReadFile(filename)
	require.NoError(t, err)
	//
	mem, _, err := program.Parse(srcfile)
	require.NoError(t, err)
	//
	return mem
}
