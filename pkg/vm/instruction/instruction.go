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

import "fmt"

// Recognised opcodes.  An opcode is determined by the two least significant
// decimal digits of the first word of an encoded instruction.
const (
	ADD           int64 = 1
	MULTIPLY      int64 = 2
	INPUT         int64 = 3
	OUTPUT        int64 = 4
	JUMP_IF_TRUE  int64 = 5
	JUMP_IF_FALSE int64 = 6
	LESS_THAN     int64 = 7
	EQUALS        int64 = 8
	HALT          int64 = 99
)

// State provides the view of an executing machine which instructions operate
// over.  That is, the memory of the machine together with its input and
// output channels.
type State interface {
	// Load the word at a given address in memory.
	Load(address int64) (int64, error)
	// Store a word at a given address in memory.
	Store(address int64, value int64) error
	// Take the next word from the input channel.
	Take() (int64, error)
	// Put a word onto the output channel.
	Put(value int64) error
}

// Instruction provides an abstract notion of a "machine instruction".  That
// is, a single atomic unit which can be executed against the state of a
// machine.  The set of instructions is closed: exactly nine kinds exist, one
// for each recognised opcode.
type Instruction interface {
	// Opcode returns the opcode identifying the kind of this instruction.
	Opcode() int64
	// Parameters returns the (decoded) parameters of this instruction.
	Parameters() []Parameter
	// Length returns the number of words occupied by the encoded form of this
	// instruction (i.e. the opcode word plus its parameters).
	Length() uint
	// Execute this instruction at the given program counter position,
	// returning the position of the next instruction to be executed.
	Execute(pc uint, state State) (uint, error)
	// Provide human readable form of instruction
	String() string
	// restrict implementations to this package
	sealed()
}

// Arity returns the number of parameters for a given opcode, or false if the
// opcode is not recognised.
func Arity(opcode int64) (uint, bool) {
	switch opcode {
	case ADD, MULTIPLY, LESS_THAN, EQUALS:
		return 3, true
	case JUMP_IF_TRUE, JUMP_IF_FALSE:
		return 2, true
	case INPUT, OUTPUT:
		return 1, true
	case HALT:
		return 0, true
	default:
		return 0, false
	}
}

// Mnemonic returns the short human readable name of a given opcode.
func Mnemonic(opcode int64) string {
	switch opcode {
	case ADD:
		return "add"
	case MULTIPLY:
		return "mul"
	case INPUT:
		return "in"
	case OUTPUT:
		return "out"
	case JUMP_IF_TRUE:
		return "jnz"
	case JUMP_IF_FALSE:
		return "jz"
	case LESS_THAN:
		return "lt"
	case EQUALS:
		return "eq"
	case HALT:
		return "halt"
	default:
		return fmt.Sprintf("?%d", opcode)
	}
}

// next returns the position immediately following an instruction.
func next(pc uint, insn Instruction) uint {
	return pc + insn.Length()
}
