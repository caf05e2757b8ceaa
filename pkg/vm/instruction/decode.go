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
	"errors"
	"fmt"
)

var (
	// ErrInvalidOpcode is reported when the two least significant digits of an
	// instruction word do not identify a recognised opcode.
	ErrInvalidOpcode = errors.New("invalid opcode")
	// ErrInvalidAddressingMode is reported when a mode digit is neither 0 nor 1.
	ErrInvalidAddressingMode = errors.New("invalid addressing mode")
	// ErrUnexpectedEnd is reported when fewer words remain than the decoded
	// opcode requires parameters.
	ErrUnexpectedEnd = errors.New("unexpected end of program")
)

// Decode the instruction whose encoded form begins at the first of the given
// words, which should run through to the end of memory.  Decoding neither
// modifies the words nor performs any I/O.
func Decode(words []int64) (Instruction, error) {
	if len(words) == 0 {
		return nil, ErrUnexpectedEnd
	}
	//
	var (
		word      = words[0]
		opcode    = word % 100
		modes     = word / 100
		arity, ok = Arity(opcode)
		params    []Parameter
	)
	// Sanity check opcode
	if !ok {
		return nil, fmt.Errorf("%w %d (word %d)", ErrInvalidOpcode, opcode, word)
	}
	// Decode parameters, taking modes least significant digit first.
	for i := range arity {
		var mode = Mode(modes % 10)
		//
		if mode != POSITION && mode != IMMEDIATE {
			return nil, fmt.Errorf("%w %d for parameter %d (word %d)", ErrInvalidAddressingMode, modes%10, i+1, word)
		} else if int(i)+1 >= len(words) {
			return nil, fmt.Errorf("%w: %s expects %d parameters, %d available", ErrUnexpectedEnd,
				Mnemonic(opcode), arity, len(words)-1)
		}
		//
		params = append(params, Parameter{words[i+1], mode})
		modes /= 10
	}
	// Construct instruction
	switch opcode {
	case ADD:
		return &Add{params[0], params[1], params[2]}, nil
	case MULTIPLY:
		return &Multiply{params[0], params[1], params[2]}, nil
	case INPUT:
		return &Input{params[0]}, nil
	case OUTPUT:
		return &Output{params[0]}, nil
	case JUMP_IF_TRUE:
		return &JumpIfTrue{params[0], params[1]}, nil
	case JUMP_IF_FALSE:
		return &JumpIfFalse{params[0], params[1]}, nil
	case LESS_THAN:
		return &LessThan{params[0], params[1], params[2]}, nil
	case EQUALS:
		return &Equals{params[0], params[1], params[2]}, nil
	default:
		return &Halt{}, nil
	}
}

// Entry is a single line in a disassembly listing.  Every entry either holds
// a decoded instruction, or a single word of data which could not be decoded
// (along with the reason why).
type Entry struct {
	// Offset of the first word of this entry.
	Offset uint
	// Decoded instruction, or nil for a data word.
	Instruction Instruction
	// Raw word (for data entries).
	Word int64
	// Reason why the word could not be decoded.
	Err error
}

func (e Entry) String() string {
	if e.Instruction != nil {
		return e.Instruction.String()
	}
	//
	return fmt.Sprintf("data %d", e.Word)
}

// Disassemble a program into a listing of instructions.  Since code and data
// are freely mixed, the listing is necessarily a best effort: words which fail
// to decode are reported as data, and decoding continues from the next word.
func Disassemble(words []int64) []Entry {
	var entries []Entry
	//
	for pc := uint(0); pc < uint(len(words)); {
		insn, err := Decode(words[pc:])
		//
		if err != nil {
			entries = append(entries, Entry{pc, nil, words[pc], err})
			pc++
		} else {
			entries = append(entries, Entry{pc, insn, words[pc], nil})
			pc += insn.Length()
		}
	}
	//
	return entries
}
