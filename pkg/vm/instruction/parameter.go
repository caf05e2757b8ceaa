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
	"strconv"
)

// Mode determines how the raw value of a parameter is interpreted.
type Mode uint8

const (
	// POSITION mode means the raw value is an address to be dereferenced.
	POSITION Mode = 0
	// IMMEDIATE mode means the raw value is used literally.
	IMMEDIATE Mode = 1
)

func (m Mode) String() string {
	switch m {
	case POSITION:
		return "position"
	case IMMEDIATE:
		return "immediate"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// Parameter is a raw word from an encoded instruction paired with the mode in
// which it was encoded.
type Parameter struct {
	Value int64
	Mode  Mode
}

// Position constructs a position-mode parameter.
func Position(address int64) Parameter {
	return Parameter{address, POSITION}
}

// Immediate constructs an immediate-mode parameter.
func Immediate(value int64) Parameter {
	return Parameter{value, IMMEDIATE}
}

// Read resolves this parameter by value.  A position-mode parameter is loaded
// from memory, whilst an immediate-mode parameter is returned as is.
func (p Parameter) Read(state State) (int64, error) {
	if p.Mode == IMMEDIATE {
		return p.Value, nil
	}
	//
	return state.Load(p.Value)
}

// Address returns the raw value of this parameter as a write address.
// Observe that the mode is ignored here: destinations are always written
// through their raw value, even when encoded with an immediate mode digit.
func (p Parameter) Address() int64 {
	return p.Value
}

func (p Parameter) String() string {
	if p.Mode == IMMEDIATE {
		return strconv.FormatInt(p.Value, 10)
	}
	//
	return fmt.Sprintf("[%d]", p.Value)
}

func target(p Parameter) string {
	return fmt.Sprintf("[%d]", p.Value)
}
