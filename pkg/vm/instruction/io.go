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

// Input takes the next word from the input channel of the machine and writes
// it to the target address.  This is the only instruction which may block
// (e.g. when waiting on a human at a console).
type Input struct {
	Target Parameter
}

// Opcode implementation for Instruction interface.
func (p *Input) Opcode() int64 {
	return INPUT
}

// Parameters implementation for Instruction interface.
func (p *Input) Parameters() []Parameter {
	return []Parameter{p.Target}
}

// Length implementation for Instruction interface.
func (p *Input) Length() uint {
	return 2
}

// Execute implementation for Instruction interface.
func (p *Input) Execute(pc uint, state State) (uint, error) {
	value, err := state.Take()
	//
	if err != nil {
		return pc, err
	} else if err = state.Store(p.Target.Address(), value); err != nil {
		return pc, err
	}
	//
	return next(pc, p), nil
}

func (p *Input) String() string {
	return fmt.Sprintf("in -> %s", target(p.Target))
}

func (p *Input) sealed() {}

// Output resolves its source by value and puts it onto the output channel of
// the machine.
type Output struct {
	Source Parameter
}

// Opcode implementation for Instruction interface.
func (p *Output) Opcode() int64 {
	return OUTPUT
}

// Parameters implementation for Instruction interface.
func (p *Output) Parameters() []Parameter {
	return []Parameter{p.Source}
}

// Length implementation for Instruction interface.
func (p *Output) Length() uint {
	return 2
}

// Execute implementation for Instruction interface.
func (p *Output) Execute(pc uint, state State) (uint, error) {
	value, err := p.Source.Read(state)
	//
	if err != nil {
		return pc, err
	} else if err = state.Put(value); err != nil {
		return pc, err
	}
	//
	return next(pc, p), nil
}

func (p *Output) String() string {
	return fmt.Sprintf("out %s", p.Source)
}

func (p *Output) sealed() {}
