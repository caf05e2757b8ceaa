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

// Add represents an instruction of the following form:
//
// [t] := l + r
//
// Here, t is the *target address* whilst l and r are the source parameters,
// each of which is resolved by value.  The sum wraps around on overflow.
type Add struct {
	Left, Right, Target Parameter
}

// Multiply represents an instruction of the form [t] := l * r.  The product
// wraps around on overflow.
type Multiply struct {
	Left, Right, Target Parameter
}

// LessThan represents an instruction of the form [t] := l < r, where true is
// written as 1 and false as 0.
type LessThan struct {
	Left, Right, Target Parameter
}

// Equals represents an instruction of the form [t] := l == r, where true is
// written as 1 and false as 0.
type Equals struct {
	Left, Right, Target Parameter
}

// Opcode implementation for Instruction interface.
func (p *Add) Opcode() int64 { return ADD }

// Opcode implementation for Instruction interface.
func (p *Multiply) Opcode() int64 { return MULTIPLY }

// Opcode implementation for Instruction interface.
func (p *LessThan) Opcode() int64 { return LESS_THAN }

// Opcode implementation for Instruction interface.
func (p *Equals) Opcode() int64 { return EQUALS }

// Parameters implementation for Instruction interface.
func (p *Add) Parameters() []Parameter { return []Parameter{p.Left, p.Right, p.Target} }

// Parameters implementation for Instruction interface.
func (p *Multiply) Parameters() []Parameter { return []Parameter{p.Left, p.Right, p.Target} }

// Parameters implementation for Instruction interface.
func (p *LessThan) Parameters() []Parameter { return []Parameter{p.Left, p.Right, p.Target} }

// Parameters implementation for Instruction interface.
func (p *Equals) Parameters() []Parameter { return []Parameter{p.Left, p.Right, p.Target} }

// Length implementation for Instruction interface.
func (p *Add) Length() uint { return 4 }

// Length implementation for Instruction interface.
func (p *Multiply) Length() uint { return 4 }

// Length implementation for Instruction interface.
func (p *LessThan) Length() uint { return 4 }

// Length implementation for Instruction interface.
func (p *Equals) Length() uint { return 4 }

// Execute implementation for Instruction interface.
func (p *Add) Execute(pc uint, state State) (uint, error) {
	return binary(pc, p, state, func(l, r int64) int64 { return l + r })
}

// Execute implementation for Instruction interface.
func (p *Multiply) Execute(pc uint, state State) (uint, error) {
	return binary(pc, p, state, func(l, r int64) int64 { return l * r })
}

// Execute implementation for Instruction interface.
func (p *LessThan) Execute(pc uint, state State) (uint, error) {
	return binary(pc, p, state, func(l, r int64) int64 { return truth(l < r) })
}

// Execute implementation for Instruction interface.
func (p *Equals) Execute(pc uint, state State) (uint, error) {
	return binary(pc, p, state, func(l, r int64) int64 { return truth(l == r) })
}

func (p *Add) String() string      { return binaryString(p) }
func (p *Multiply) String() string { return binaryString(p) }
func (p *LessThan) String() string { return binaryString(p) }
func (p *Equals) String() string   { return binaryString(p) }

func (p *Add) sealed()      {}
func (p *Multiply) sealed() {}
func (p *LessThan) sealed() {}
func (p *Equals) sealed()   {}

// Execute a binary instruction by resolving both sources, combining them and
// writing the result through the raw target address.
func binary(pc uint, insn Instruction, state State, op func(int64, int64) int64) (uint, error) {
	var (
		params = insn.Parameters()
		lhs    int64
		rhs    int64
		err    error
	)
	//
	if lhs, err = params[0].Read(state); err != nil {
		return pc, err
	} else if rhs, err = params[1].Read(state); err != nil {
		return pc, err
	} else if err = state.Store(params[2].Address(), op(lhs, rhs)); err != nil {
		return pc, err
	}
	//
	return next(pc, insn), nil
}

func binaryString(insn Instruction) string {
	var params = insn.Parameters()
	//
	return fmt.Sprintf("%s %s, %s -> %s", Mnemonic(insn.Opcode()), params[0], params[1], target(params[2]))
}

func truth(b bool) int64 {
	if b {
		return 1
	}
	//
	return 0
}
