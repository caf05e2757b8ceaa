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
package channel

import "errors"

var (
	// ErrInputExhausted is reported when an input channel has no further
	// values to provide.
	ErrInputExhausted = errors.New("input exhausted")
	// ErrIO is reported when a channel fails to communicate with whatever is
	// backing it (e.g. a console), or fails a textual round-trip.
	ErrIO = errors.New("i/o error")
)

// Input represents a source of words consumed by a machine.  Input channels
// are owned by whoever constructs them, and may outlive any machine reading
// from them.
type Input interface {
	// Take the next word from this channel, or fail with ErrInputExhausted if
	// no further value is available.
	Take() (int64, error)
}

// Output represents a sink of words produced by a machine.
type Output interface {
	// Put a word onto this channel.
	Put(value int64) error
}
