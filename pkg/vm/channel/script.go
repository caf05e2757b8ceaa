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

import (
	"strconv"
	"strings"
)

// Script is an input channel backed by a finite sequence of pre-supplied
// words, which are consumed strictly in order.  A script never blocks: it
// either returns a value immediately, or fails immediately.
type Script struct {
	values []int64
	index  uint
}

// NewScript constructs a script which will supply the given values in order.
func NewScript(values ...int64) *Script {
	return &Script{values, 0}
}

// Take implementation for Input interface.
func (p *Script) Take() (int64, error) {
	if p.index >= uint(len(p.values)) {
		return 0, ErrInputExhausted
	}
	//
	value := p.values[p.index]
	p.index++
	//
	return value, nil
}

// Remaining returns the number of values not yet taken.
func (p *Script) Remaining() uint {
	return uint(len(p.values)) - p.index
}

// String renders the remaining values in the scripted text format, that is
// one integer per line with each line terminated by a newline.
func (p *Script) String() string {
	var builder strings.Builder
	//
	for _, v := range p.values[p.index:] {
		builder.WriteString(strconv.FormatInt(v, 10))
		builder.WriteString("\n")
	}
	//
	return builder.String()
}
