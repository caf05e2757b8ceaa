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
package memory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Array_01(t *testing.T) {
	mem := NewArray(1, 2, 3)
	//
	for i := range int64(3) {
		v, err := mem.Load(i)
		require.NoError(t, err)
		assert.Equal(t, i+1, v)
	}
}

func Test_Array_02(t *testing.T) {
	mem := NewArray(1, 2, 3)
	// Boundary on both sides
	for _, addr := range []int64{-1, 3, 100} {
		_, err := mem.Load(addr)
		assert.True(t, errors.Is(err, ErrOutOfBounds), "load %d", addr)
		assert.ErrorIs(t, mem.Store(addr, 0), ErrOutOfBounds)
	}
}

func Test_Array_03(t *testing.T) {
	mem := NewArray(1, 2, 3)
	clone := mem.Clone()
	//
	require.NoError(t, clone.Store(0, 99))
	assert.Equal(t, []int64{1, 2, 3}, mem.Contents())
	assert.Equal(t, []int64{99, 2, 3}, clone.Contents())
}

func Test_Array_04(t *testing.T) {
	mem := NewArray(1, 2, 3)
	//
	assert.Equal(t, []int64{2, 3}, mem.Window(1))
	assert.Empty(t, mem.Window(3))
	assert.Empty(t, mem.Window(7))
}

func Test_Array_05(t *testing.T) {
	var wide int64 = 1 << 40
	//
	mem := NewArray(0)
	require.NoError(t, mem.Store(0, wide))
	// Words are not truncated to 32bits
	v, _ := mem.Load(0)
	assert.Equal(t, wide, v)
}
