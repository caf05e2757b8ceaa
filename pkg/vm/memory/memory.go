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
package memory

import "errors"

// ErrOutOfBounds is reported when an address lies outside the current extent
// of a memory.
var ErrOutOfBounds = errors.New("address out of bounds")

// Memory represents the (flat) random-access store against which a program
// executes.  Every location holds a signed 64bit word, and locations are
// addressed from zero.  Unlike a conventional RAM, a memory does not grow on
// demand: reading or writing a location at or beyond its length is an error.
type Memory interface {
	// Len returns the number of words held in this memory.
	Len() uint
	// Load the word at a given address, or fail with ErrOutOfBounds.
	Load(address int64) (int64, error)
	// Store a given word at a given address, overwriting the previous value
	// stored at that address.  This fails with ErrOutOfBounds if the address
	// does not exist.
	Store(address int64, value int64) error
	// Window returns the words starting from a given address through to the
	// end of this memory.  This is used by the decoder, and should not be
	// modified.
	Window(address uint) []int64
	// Contents returns the contents of this memory as a sequence of words.
	Contents() []int64
	// Clone this memory, producing a copy which shares no state with the
	// original.
	Clone() Memory
}
