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

	"github.com/consensys/go-intcode/pkg/vm/channel"
	"github.com/consensys/go-intcode/pkg/vm/instruction"
	"github.com/consensys/go-intcode/pkg/vm/memory"
)

// DEFAULT_CHUNK is the number of steps executed at a time by Execute.
const DEFAULT_CHUNK uint = 1024

// Core represents an executing machine which can be driven forwards a given
// number of steps at a time.
type Core interface {
	// Execute the machine for the given number of steps, returning the actual
	// number of steps executed and an error (if execution failed).
	Execute(steps uint) (uint, error)
	// Halted indicates whether or not this machine has terminated normally.
	Halted() bool
}

// ExecuteAll executes a given machine to completion in chunks of n steps,
// returning the number of steps executed and/or any error arising.
func ExecuteAll[M Core](machine M, n uint) (uint, error) {
	var nsteps uint
	//
	for {
		// Execute upto n steps
		m, err := machine.Execute(n)
		// update the tally
		nsteps += m
		// check for termination
		if err != nil || m < n || machine.Halted() {
			return nsteps, err
		}
	}
}

// Execute runs a program held in a given memory to completion, reading from
// and writing to the given channels.  The memory is modified in place, and is
// left in whatever state it reached should execution fail.
func Execute(mem memory.Memory, in channel.Input, out channel.Output) error {
	_, err := ExecuteAll(New(mem, in, out), DEFAULT_CHUNK)
	//
	return err
}

// Machine is a single Intcode virtual machine, comprising a memory, a program
// counter and a pair of input / output channels.  A machine owns its memory
// exclusively whilst it executes.
type Machine struct {
	memory memory.Memory
	input  channel.Input
	output channel.Output
	// Program Counter
	pc uint
	// Number of instructions executed
	steps uint64
	// Set on normal termination
	halted bool
	// Set on abnormal termination
	fault error
}

// New constructs a machine ready to execute from the start of a given memory.
// A nil input behaves as an empty script, whilst a nil output is a fresh
// collector (which nothing else can read back).
func New(mem memory.Memory, in channel.Input, out channel.Output) *Machine {
	return Resume(mem, 0, 0, in, out)
}

// Resume constructs a machine which continues execution from a given position
// in a given memory, having already executed a given number of steps.
func Resume(mem memory.Memory, pc uint, steps uint64, in channel.Input, out channel.Output) *Machine {
	if in == nil {
		in = channel.NewScript()
	}
	//
	if out == nil {
		out = channel.NewCollector()
	}
	//
	return &Machine{mem, in, out, pc, steps, false, nil}
}

// Memory returns the memory of this machine.
func (p *Machine) Memory() memory.Memory {
	return p.memory
}

// PC returns the current Program Counter position.
func (p *Machine) PC() uint {
	return p.pc
}

// Steps returns the number of instructions executed so far.
func (p *Machine) Steps() uint64 {
	return p.steps
}

// Halted implementation for Core interface.
func (p *Machine) Halted() bool {
	return p.halted
}

// Execute implementation for Core interface.  Execution stops early on a halt
// instruction, when the program counter runs off the end of memory (an
// implicit halt), or on failure.
func (p *Machine) Execute(steps uint) (uint, error) {
	var nsteps uint
	//
	for ; nsteps < steps && !p.halted; nsteps++ {
		if p.fault != nil {
			return nsteps, p.fault
		} else if p.pc >= p.memory.Len() {
			p.halted = true
			break
		}
		//
		if err := p.step(); err != nil {
			p.fault = err
			return nsteps, err
		}
	}
	//
	return nsteps, p.fault
}

// Fetch, decode and execute the instruction at the program counter.
func (p *Machine) step() error {
	insn, err := instruction.Decode(p.memory.Window(p.pc))
	//
	if err != nil {
		return &Fault{p.pc, nil, fmt.Errorf("%w: %w", ErrInvalidProgram, err)}
	} else if _, ok := insn.(*instruction.Halt); ok {
		p.halted = true
	} else if p.pc, err = insn.Execute(p.pc, state{p}); err != nil {
		return &Fault{p.pc, insn, err}
	}
	//
	p.steps++
	//
	return nil
}

// Provides the view of this machine used by instructions.
type state struct {
	machine *Machine
}

func (s state) Load(address int64) (int64, error) {
	return s.machine.memory.Load(address)
}

func (s state) Store(address int64, value int64) error {
	return s.machine.memory.Store(address, value)
}

func (s state) Take() (int64, error) {
	value, err := s.machine.input.Take()
	//
	return value, channelError(err)
}

func (s state) Put(value int64) error {
	return channelError(s.machine.output.Put(value))
}

// Any channel failure not already classified is considered an I/O error.
func channelError(err error) error {
	if err == nil || errors.Is(err, channel.ErrInputExhausted) || errors.Is(err, channel.ErrIO) {
		return err
	}
	//
	return fmt.Errorf("%w: %w", channel.ErrIO, err)
}
