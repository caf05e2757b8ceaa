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
package instruction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Decode_01(t *testing.T) {
	insn, err := Decode([]int64{1, 9, 10, 3})
	require.NoError(t, err)
	assert.Equal(t, &Add{Position(9), Position(10), Position(3)}, insn)
	assert.Equal(t, uint(4), insn.Length())
}

func Test_Decode_02(t *testing.T) {
	insn, err := Decode([]int64{1002, 4, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, &Multiply{Position(4), Immediate(3), Position(4)}, insn)
}

func Test_Decode_03(t *testing.T) {
	insn, err := Decode([]int64{1105, 1, 9})
	require.NoError(t, err)
	assert.Equal(t, &JumpIfTrue{Immediate(1), Immediate(9)}, insn)
	assert.Equal(t, uint(3), insn.Length())
}

func Test_Decode_04(t *testing.T) {
	insn, err := Decode([]int64{99})
	require.NoError(t, err)
	assert.Equal(t, &Halt{}, insn)
	assert.Equal(t, uint(1), insn.Length())
}

func Test_Decode_05(t *testing.T) {
	// Trailing mode digits beyond the arity are not inspected.
	insn, err := Decode([]int64{90004, 7})
	require.NoError(t, err)
	assert.Equal(t, &Output{Position(7)}, insn)
}

func Test_Decode_06(t *testing.T) {
	var arities = map[int64]uint{1: 3, 2: 3, 3: 1, 4: 1, 5: 2, 6: 2, 7: 3, 8: 3, 99: 0}
	//
	for opcode, arity := range arities {
		words := make([]int64, arity+1)
		words[0] = opcode
		//
		insn, err := Decode(words)
		require.NoError(t, err)
		assert.Equal(t, opcode, insn.Opcode())
		assert.Len(t, insn.Parameters(), int(arity))
		assert.Equal(t, arity+1, insn.Length())
	}
}

func Test_Decode_Invalid_01(t *testing.T) {
	for _, word := range []int64{0, 9, 10, 98, 100, -1, -99} {
		_, err := Decode([]int64{word, 0, 0, 0})
		assert.ErrorIs(t, err, ErrInvalidOpcode, "word %d", word)
	}
}

func Test_Decode_Invalid_02(t *testing.T) {
	for _, word := range []int64{201, 10201, 2001, 901} {
		_, err := Decode([]int64{word, 0, 0, 0})
		assert.ErrorIs(t, err, ErrInvalidAddressingMode, "word %d", word)
	}
}

func Test_Decode_Invalid_03(t *testing.T) {
	_, err := Decode([]int64{3})
	assert.ErrorIs(t, err, ErrUnexpectedEnd)
	//
	_, err = Decode([]int64{1, 0, 0})
	assert.ErrorIs(t, err, ErrUnexpectedEnd)
	//
	_, err = Decode(nil)
	assert.ErrorIs(t, err, ErrUnexpectedEnd)
}

func Test_Decode_Pure(t *testing.T) {
	var words = []int64{1101, 2, 3, 0}
	//
	_, err := Decode(words)
	require.NoError(t, err)
	assert.Equal(t, []int64{1101, 2, 3, 0}, words)
}

func Test_Disassemble_01(t *testing.T) {
	entries := Disassemble([]int64{1002, 4, 3, 4, 33})
	//
	require.Len(t, entries, 2)
	assert.Equal(t, "mul [4], 3 -> [4]", entries[0].String())
	assert.Equal(t, uint(4), entries[1].Offset)
	assert.ErrorIs(t, entries[1].Err, ErrInvalidOpcode)
	assert.Equal(t, "data 33", entries[1].String())
}

func Test_Disassemble_02(t *testing.T) {
	entries := Disassemble([]int64{3, 0, 4, 0, 99})
	//
	require.Len(t, entries, 3)
	assert.Equal(t, "in -> [0]", entries[0].String())
	assert.Equal(t, "out [0]", entries[1].String())
	assert.Equal(t, "halt", entries[2].String())
}
