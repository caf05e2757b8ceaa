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
	"fmt"
	"math"
)

// JumpIfTrue performs a conditional branch when its condition is non-zero.
// Observe that the target is resolved by value, just like the condition.
// Thus, an immediate target is the branch address itself, whilst a position
// target holds the branch address.
type JumpIfTrue struct {
	Condition, Target Parameter
}

// JumpIfFalse performs a conditional branch when its condition is zero.
type JumpIfFalse struct {
	Condition, Target Parameter
}

// Opcode implementation for Instruction interface.
func (p *JumpIfTrue) Opcode() int64 { return JUMP_IF_TRUE }

// Opcode implementation for Instruction interface.
func (p *JumpIfFalse) Opcode() int64 { return JUMP_IF_FALSE }

// Parameters implementation for Instruction interface.
func (p *JumpIfTrue) Parameters() []Parameter { return []Parameter{p.Condition, p.Target} }

// Parameters implementation for Instruction interface.
func (p *JumpIfFalse) Parameters() []Parameter { return []Parameter{p.Condition, p.Target} }

// Length implementation for Instruction interface.
func (p *JumpIfTrue) Length() uint { return 3 }

// Length implementation for Instruction interface.
func (p *JumpIfFalse) Length() uint { return 3 }

// Execute implementation for Instruction interface.
func (p *JumpIfTrue) Execute(pc uint, state State) (uint, error) {
	return branch(pc, p, state, func(c int64) bool { return c != 0 })
}

// Execute implementation for Instruction interface.
func (p *JumpIfFalse) Execute(pc uint, state State) (uint, error) {
	return branch(pc, p, state, func(c int64) bool { return c == 0 })
}

func (p *JumpIfTrue) String() string {
	return fmt.Sprintf("jnz %s, %s", p.Condition, p.Target)
}

func (p *JumpIfFalse) String() string {
	return fmt.Sprintf("jz %s, %s", p.Condition, p.Target)
}

func (p *JumpIfTrue) sealed()  {}
func (p *JumpIfFalse) sealed() {}

func branch(pc uint, insn Instruction, state State, taken func(int64) bool) (uint, error) {
	var params = insn.Parameters()
	//
	cond, err := params[0].Read(state)
	if err != nil {
		return pc, err
	} else if !taken(cond) {
		return next(pc, insn), nil
	}
	//
	dest, err := params[1].Read(state)
	if err != nil {
		return pc, err
	} else if dest < 0 {
		// Nothing lies before the start, so this is beyond the end as far as
		// the machine is concerned (i.e. an implicit halt).
		return math.MaxUint, nil
	}
	//
	return uint(dest), nil
}
