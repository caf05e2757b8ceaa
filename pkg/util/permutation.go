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

import "slices"

// Permutations returns every ordering of the given items.  For n items, this
// produces exactly n! orderings (which are distinct provided the items are).
// The items themselves are left unchanged.
//
// This uses Heap's algorithm, which generates each ordering from the previous
// one by a single swap.  All orderings are materialised up front, since this
// is only intended for small n.
func Permutations[T any](items []T) [][]T {
	var (
		seed = slices.Clone(items)
		out  [][]T
	)
	//
	if len(seed) == 0 {
		return [][]T{seed}
	}
	//
	heapPermute(len(seed), seed, &out)
	//
	return out
}

func heapPermute[T any](k int, items []T, out *[][]T) {
	if k == 1 {
		*out = append(*out, slices.Clone(items))
		return
	}
	//
	heapPermute(k-1, items, out)
	//
	for i := range k - 1 {
		if k%2 == 0 {
			items[i], items[k-1] = items[k-1], items[i]
		} else {
			items[0], items[k-1] = items[k-1], items[0]
		}
		//
		heapPermute(k-1, items, out)
	}
}

// Factorial computes n!, which is the number of orderings of n distinct items.
func Factorial(n uint) uint {
	var r uint = 1
	//
	for i := uint(2); i <= n; i++ {
		r *= i
	}
	//
	return r
}
