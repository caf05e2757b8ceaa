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

// Collector is an output channel which simply records every value put onto
// it, such that they can be inspected once execution has completed.
type Collector struct {
	values []int64
}

// NewCollector constructs an initially empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Put implementation for Output interface.  This never fails.
func (p *Collector) Put(value int64) error {
	p.values = append(p.values, value)
	return nil
}

// Values returns all values collected so far, in the order they were put.
func (p *Collector) Values() []int64 {
	return p.values
}

// Last returns the most recently collected value (if any).  For programs known
// to produce exactly one meaningful output, this is the "result".
func (p *Collector) Last() (int64, bool) {
	if len(p.values) == 0 {
		return 0, false
	}
	//
	return p.values[len(p.values)-1], true
}
