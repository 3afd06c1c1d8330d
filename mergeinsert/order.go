// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mergeinsert

// InsertionOrder returns the order in which the n smalls of one recursion level
// are inserted into the sorted chain. The result is a permutation of 0..n-1.
//
// The first two indices are 0 and 1. After that, indices are emitted in
// descending chunks (prev, next], where next is capped at n-1, and the chunk
// boundaries advance as prev = next, next = next + 2*prev.
//
// For example, InsertionOrder(5) is [0 1 3 2 4].
func InsertionOrder(n int) []int {
	if n <= 0 {
		return []int{}
	}
	if n < 2 {
		return []int{0}
	}

	order := make([]int, 0, n)
	order = append(order, 0, 1)

	prev, next := 1, 3
	for len(order) < n {
		for i := min(next, n-1); i > prev; i-- {
			order = append(order, i)
			if len(order) == n {
				break
			}
		}
		prev = next
		next = next + 2*prev
	}
	return order
}
