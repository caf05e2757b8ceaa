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
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Config_01(t *testing.T) {
	c := Default()
	//
	assert.NoError(t, c.Validate())
	assert.Equal(t, int64(12), c.Restore.Noun)
	assert.Equal(t, int64(2), c.Restore.Verb)
	assert.Equal(t, int64(19690720), c.Restore.Target)
	assert.Equal(t, uint(5), c.Amplify.Stages)
	assert.Empty(t, c.Path)
}

func Test_Config_02(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[restore]
noun = 9
verb = 10

[amplify]
phase-offset = 5
`)
	c, err := Load(path)
	//
	require.NoError(t, err)
	assert.Equal(t, int64(9), c.Restore.Noun)
	assert.Equal(t, int64(10), c.Restore.Verb)
	assert.Equal(t, int64(5), c.Amplify.PhaseOffset)
	// Defaults retained
	assert.Equal(t, int64(100), c.Restore.Limit)
	assert.Equal(t, uint(5), c.Amplify.Stages)
	assert.Equal(t, path, c.Path)
}

func Test_Config_03(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[run]\nmax-step = 10\n")
	_, err := Load(path)
	//
	assert.ErrorIs(t, err, ErrUnknownKey)
	assert.Contains(t, err.Error(), "run.max-step")
}

func Test_Config_04(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[run\n")
	_, err := Load(path)
	//
	assert.Error(t, err)
}

func Test_Config_05(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[amplify]\nstages = 0\n")
	_, err := Load(path)
	//
	assert.Error(t, err)
}

func Test_Config_06(t *testing.T) {
	var (
		root = t.TempDir()
		sub  = filepath.Join(root, "a", "b")
	)
	//
	require.NoError(t, os.MkdirAll(sub, 0755))
	writeConfig(t, root, "[run]\nmax-steps = 42\n")
	//
	c, err := FindAndLoad(sub)
	require.NoError(t, err)
	assert.Equal(t, uint(42), c.Run.MaxSteps)
	assert.Equal(t, filepath.Join(root, FILENAME), c.Path)
}

func Test_Config_07(t *testing.T) {
	assert.NoError(t, Amplify{Stages: 1}.Validate())
	assert.NoError(t, Amplify{Stages: MAX_STAGES, PhaseOffset: -3}.Validate())
	assert.Error(t, Amplify{Stages: 0}.Validate())
	assert.Error(t, Amplify{Stages: MAX_STAGES + 1}.Validate())
	//
	path := writeConfig(t, t.TempDir(), "[amplify]\nstages = 13\n")
	_, err := Load(path)
	assert.Error(t, err)
}

// ==================================================================
// Framework
// ==================================================================

func writeConfig(t *testing.T, dir string, contents string) string {
	path := filepath.Join(dir, FILENAME)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	//
	return path
}
