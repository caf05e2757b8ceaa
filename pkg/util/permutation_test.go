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
package util

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Permutations_01(t *testing.T) {
	for n := range uint(5) {
		checkPermutations(t, n+1)
	}
}

func Test_Permutations_02(t *testing.T) {
	checkPermutations(t, 6)
}

func Test_Permutations_03(t *testing.T) {
	items := []int64{5, 6, 7}
	perms := Permutations(items)
	// Input untouched
	assert.Equal(t, []int64{5, 6, 7}, items)
	assert.Equal(t, []int64{5, 6, 7}, perms[0])
	assert.Len(t, perms, 6)
}

func Test_Permutations_04(t *testing.T) {
	perms := Permutations([]string{})
	//
	assert.Len(t, perms, 1)
	assert.Empty(t, perms[0])
}

func Test_Factorial_01(t *testing.T) {
	assert.Equal(t, uint(1), Factorial(0))
	assert.Equal(t, uint(1), Factorial(1))
	assert.Equal(t, uint(120), Factorial(5))
	assert.Equal(t, uint(3628800), Factorial(10))
}

func checkPermutations(t *testing.T, n uint) {
	var (
		items = make([]uint, n)
		seen  = make(map[string]bool)
	)
	//
	for i := range n {
		items[i] = i
	}
	//
	perms := Permutations(items)
	assert.Len(t, perms, int(Factorial(n)))
	// Check distinct, and each is a permutation
	for _, p := range perms {
		assert.ElementsMatch(t, items, p)
		//
		key := fmt.Sprint(p)
		assert.False(t, seen[key], "duplicate ordering %v", p)
		seen[key] = true
	}
}
