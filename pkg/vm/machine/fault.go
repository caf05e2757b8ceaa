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
package machine

import (
	"errors"
	"fmt"

	"github.com/consensys/go-intcode/pkg/vm/instruction"
)

// ErrInvalidProgram is reported when the word at the program counter cannot
// be decoded into an instruction.  The underlying decoding error (e.g.
// instruction.ErrInvalidOpcode) is always wrapped alongside.
var ErrInvalidProgram = errors.New("invalid program")

// Fault describes the failure of an executing machine, identifying where it
// arose.  A fault is fatal: once faulted, a machine cannot make further
// progress.
type Fault struct {
	// Program counter at the point of failure.
	PC uint
	// Instruction which failed, or nil if decoding failed.
	Instruction instruction.Instruction
	// Underlying error
	Err error
}

func (p *Fault) Error() string {
	if p.Instruction == nil {
		return fmt.Sprintf("pc %d: %s", p.PC, p.Err)
	}
	//
	return fmt.Sprintf("pc %d (%s): %s", p.PC, p.Instruction, p.Err)
}

// Unwrap returns the underlying error.
func (p *Fault) Unwrap() error {
	return p.Err
}
