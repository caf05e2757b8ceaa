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

import (
	"fmt"
	"slices"
)

// Array is a flat-slice implementation of Memory backed by a []int64.
type Array struct {
	data []int64
}

// NewArray constructs an Array whose initial contents are the given words.
// The array takes ownership of the given slice.
func NewArray(init ...int64) *Array {
	return &Array{init}
}

// Len implementation for Memory interface.
func (p *Array) Len() uint {
	return uint(len(p.data))
}

// Load implementation for Memory interface.
func (p *Array) Load(address int64) (int64, error) {
	if err := p.check(address); err != nil {
		return 0, err
	}
	//
	return p.data[address], nil
}

// Store implementation for Memory interface.
func (p *Array) Store(address int64, value int64) error {
	if err := p.check(address); err != nil {
		return err
	}
	//
	p.data[address] = value
	//
	return nil
}

// Window implementation for Memory interface.
func (p *Array) Window(address uint) []int64 {
	if address >= uint(len(p.data)) {
		return nil
	}
	//
	return p.data[address:]
}

// Contents implementation for Memory interface.
func (p *Array) Contents() []int64 {
	return p.data
}

// Clone implementation for Memory interface.
func (p *Array) Clone() Memory {
	return &Array{slices.Clone(p.data)}
}

func (p *Array) check(address int64) error {
	if address < 0 || address >= int64(len(p.data)) {
		return fmt.Errorf("%w: %d (length %d)", ErrOutOfBounds, address, len(p.data))
	}
	//
	return nil
}
