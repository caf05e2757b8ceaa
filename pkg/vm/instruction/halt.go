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

// Halt terminates execution of the machine.
type Halt struct{}

// Opcode implementation for Instruction interface.
func (p *Halt) Opcode() int64 {
	return HALT
}

// Parameters implementation for Instruction interface.
func (p *Halt) Parameters() []Parameter {
	return nil
}

// Length implementation for Instruction interface.
func (p *Halt) Length() uint {
	return 1
}

// Execute implementation for Instruction interface.  Halting is the
// responsibility of the machine, hence this simply leaves the program counter
// where it is.
func (p *Halt) Execute(pc uint, _ State) (uint, error) {
	return pc, nil
}

func (p *Halt) String() string {
	return "halt"
}

func (p *Halt) sealed() {}
