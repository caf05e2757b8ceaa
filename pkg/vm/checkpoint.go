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
package vm

import (
	"encoding"
	"fmt"
	"math"
	"slices"

	"github.com/consensys/go-intcode/pkg/vm/channel"
	"github.com/consensys/go-intcode/pkg/vm/machine"
	"github.com/consensys/go-intcode/pkg/vm/memory"
	"github.com/fxamacker/cbor/v2"
)

// CheckPoint represents a captured state of an executing machine, such that
// execution can be continued later from this position (sometimes also known as
// a "continuation").  As such, the checkpoint must include all information
// necessary to allow execution to continue, except for the input and output
// channels which belong to whoever resumes execution.
//
// Checkpoints have a notion of their "validity window".  A checkpoint which
// retains only part of memory, for example, may only be valid for a certain
// number of steps before execution would touch something it does not hold.
type CheckPoint interface {
	// Checkpoints must be convertable into bytes
	encoding.BinaryMarshaler
	// Checkpoints must be constructable from bytes
	encoding.BinaryUnmarshaler
	// Restore an executing machine from this checkpoint, connected to the given
	// channels.
	Restore(in channel.Input, out channel.Output) *machine.Machine
	// ValidFor returns the number of execution steps for which this checkpoint
	// is valid, or math.MaxUint64 if it is valid for all remaining steps.
	ValidFor() uint64
}

// Snapshot is a checkpoint which captures the entire memory of a machine.
// Hence, it is valid for all remaining steps.
type Snapshot struct {
	PC     uint64  `cbor:"1,keyasint"`
	Steps  uint64  `cbor:"2,keyasint"`
	Memory []int64 `cbor:"3,keyasint"`
}

// Same layout as Snapshot, but without the marshalling methods.
type snapshot Snapshot

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoding mode: %v", err))
	}
	//
	cborEncMode = em
}

// Capture a snapshot of a given machine.  The snapshot shares no state with
// the machine, which can continue executing.  A program counter beyond the end
// of memory (i.e. a pending implicit halt) is recorded as the end of memory.
func Capture(m *machine.Machine) *Snapshot {
	return &Snapshot{
		PC:     uint64(min(m.PC(), m.Memory().Len())),
		Steps:  m.Steps(),
		Memory: slices.Clone(m.Memory().Contents()),
	}
}

// MarshalBinary implementation for CheckPoint interface.
func (p *Snapshot) MarshalBinary() ([]byte, error) {
	return cborEncMode.Marshal((*snapshot)(p))
}

// UnmarshalBinary implementation for CheckPoint interface.
func (p *Snapshot) UnmarshalBinary(data []byte) error {
	if err := cbor.Unmarshal(data, (*snapshot)(p)); err != nil {
		return fmt.Errorf("invalid checkpoint: %w", err)
	} else if p.PC > uint64(len(p.Memory)) {
		return fmt.Errorf("invalid checkpoint: pc %d beyond memory (length %d)", p.PC, len(p.Memory))
	}
	//
	return nil
}

// Restore implementation for CheckPoint interface.
func (p *Snapshot) Restore(in channel.Input, out channel.Output) *machine.Machine {
	mem := memory.NewArray(slices.Clone(p.Memory)...)
	//
	return machine.Resume(mem, uint(p.PC), p.Steps, in, out)
}

// ValidFor implementation for CheckPoint interface.
func (p *Snapshot) ValidFor() uint64 {
	return math.MaxUint64
}
