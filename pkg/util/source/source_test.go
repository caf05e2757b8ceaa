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
package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Line_01(t *testing.T) {
	file := NewSourceFile("test", []byte("1,2,3"))
	line := file.FindFirstEnclosingLine(NewSpan(2, 3))
	//
	assert.Equal(t, 1, line.Number())
	assert.Equal(t, 0, line.Start())
	assert.Equal(t, "1,2,3", line.String())
}

func Test_Line_02(t *testing.T) {
	file := NewSourceFile("test", []byte("1\n-2\n3\n"))
	line := file.FindFirstEnclosingLine(NewSpan(2, 4))
	//
	assert.Equal(t, 2, line.Number())
	assert.Equal(t, 2, line.Start())
	assert.Equal(t, "-2", line.String())
}

func Test_Line_03(t *testing.T) {
	file := NewSourceFile("test", []byte("1\n2"))
	// Beyond the end gives the last line
	line := file.FindFirstEnclosingLine(NewSpan(10, 10))
	//
	assert.Equal(t, 2, line.Number())
	assert.Equal(t, "2", line.String())
}

func Test_SyntaxError_01(t *testing.T) {
	file := NewSourceFile("prog.txt", []byte("1,2\n3,x,4"))
	err := file.SyntaxError(NewSpan(6, 7), "expected integer")
	//
	assert.Equal(t, "prog.txt:2:3: expected integer", err.Error())
	span := err.Span()
	assert.Equal(t, 1, span.Length())
}

func Test_Map_01(t *testing.T) {
	file := NewSourceFile("prog.txt", []byte("1,22,3"))
	srcmap := NewSourceMap[uint](file)
	srcmap.Put(1, NewSpan(2, 4))
	//
	assert.True(t, srcmap.Has(1))
	assert.False(t, srcmap.Has(0))
	assert.Equal(t, "prog.txt:1:3: boom", srcmap.SyntaxError(1, "boom").Error())
	assert.Panics(t, func() { srcmap.Get(5) })
}

func Test_Span_01(t *testing.T) {
	assert.Panics(t, func() { NewSpan(3, 2) })
}
