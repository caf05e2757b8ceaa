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
package channel

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Script_01(t *testing.T) {
	script := NewScript(4, -1)
	//
	v, err := script.Take()
	require.NoError(t, err)
	assert.Equal(t, int64(4), v)
	assert.Equal(t, uint(1), script.Remaining())
	assert.Equal(t, "-1\n", script.String())
	//
	v, err = script.Take()
	require.NoError(t, err)
	assert.Equal(t, int64(-1), v)
	// Exhausted, and stays that way
	for range 2 {
		_, err = script.Take()
		assert.ErrorIs(t, err, ErrInputExhausted)
	}
}

func Test_Script_02(t *testing.T) {
	_, err := NewScript().Take()
	assert.ErrorIs(t, err, ErrInputExhausted)
}

func Test_Collector_01(t *testing.T) {
	out := NewCollector()
	_, ok := out.Last()
	assert.False(t, ok)
	//
	require.NoError(t, out.Put(3))
	require.NoError(t, out.Put(-7))
	//
	last, ok := out.Last()
	assert.True(t, ok)
	assert.Equal(t, int64(-7), last)
	assert.Equal(t, []int64{3, -7}, out.Values())
}

func Test_Console_01(t *testing.T) {
	var out bytes.Buffer
	//
	console := NewConsole(strings.NewReader("5\n  -12 \r\n"), &out, "> ")
	//
	v, err := console.Take()
	require.NoError(t, err)
	assert.Equal(t, int64(5), v)
	v, err = console.Take()
	require.NoError(t, err)
	assert.Equal(t, int64(-12), v)
	_, err = console.Take()
	assert.ErrorIs(t, err, ErrInputExhausted)
	assert.Equal(t, "> > > ", out.String())
}

func Test_Console_02(t *testing.T) {
	// Final line need not be terminated
	console := NewConsole(strings.NewReader("7"), &bytes.Buffer{}, "")
	//
	v, err := console.Take()
	require.NoError(t, err)
	assert.Equal(t, int64(7), v)
}

func Test_Console_03(t *testing.T) {
	console := NewConsole(strings.NewReader("seven\n"), &bytes.Buffer{}, "")
	//
	_, err := console.Take()
	assert.ErrorIs(t, err, ErrIO)
	assert.False(t, errors.Is(err, ErrInputExhausted))
}

func Test_Console_04(t *testing.T) {
	var out bytes.Buffer
	//
	console := NewConsole(strings.NewReader(""), &out, "")
	require.NoError(t, console.Put(1))
	require.NoError(t, console.Put(-9223372036854775808))
	assert.Equal(t, "1\n-9223372036854775808\n", out.String())
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func Test_Console_05(t *testing.T) {
	console := NewConsole(strings.NewReader("1\n"), brokenWriter{}, "")
	//
	assert.ErrorIs(t, console.Put(1), ErrIO)
	// No prompt, so reading still works
	v, err := console.Take()
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)
}
