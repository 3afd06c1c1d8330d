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

import "cmp"

// Sort sorts data in-place in ascending order using merge-insertion.
// Elements are expected to be distinct; with duplicates the result is still
// ascending but the comparison bound no longer applies.
func Sort[T cmp.Ordered](data []T) {
	SortFuncMode(data, cmp.Less[T], CurrentSearchMode())
}

// Sorted returns a sorted copy of data. data is left untouched.
func Sorted[T cmp.Ordered](data []T) []T {
	out := make([]T, len(data))
	copy(out, data)
	Sort(out)
	return out
}

// SortCounted sorts data in-place and returns the number of comparisons made.
func SortCounted[T cmp.Ordered](data []T) int {
	var c Counter
	SortFuncMode(data, CountLess(&c, cmp.Less[T]), CurrentSearchMode())
	return c.Count()
}

// SortFunc sorts data in-place in ascending order as determined by less.
// less must describe a strict weak ordering.
func SortFunc[T any](data []T, less func(a, b T) bool) {
	SortFuncMode(data, less, CurrentSearchMode())
}

// SortFuncMode is SortFunc with an explicit search mode.
func SortFuncMode[T any](data []T, less func(a, b T) bool, mode SearchMode) {
	n := len(data)
	if n <= 1 {
		return
	}

	s := &sorter[T]{data: data, less: less, mode: mode}
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}
	chain := s.sort(ids)

	out := make([]T, n)
	for i, id := range chain {
		out[i] = data[id]
	}
	copy(data, out)
}

// sorter works on element ids (indices into data) so that the partner of a
// big can still be found after the bigs have been sorted.
type sorter[T any] struct {
	data []T
	less func(a, b T) bool
	mode SearchMode
}

// sort is the recursive merge-insertion step. It returns ids reordered so that
// the referenced elements are ascending.
func (s *sorter[T]) sort(ids []int) []int {
	n := len(ids)
	if n <= 1 {
		return ids
	}

	// Pair (i, i+1); the greater becomes a big, the lesser its small.
	bigs := make([]int, 0, n/2)
	smalls := make([]int, 0, n/2)
	for i := 0; i+1 < n; i += 2 {
		a, b := ids[i], ids[i+1]
		if s.less(s.data[b], s.data[a]) {
			bigs = append(bigs, a)
			smalls = append(smalls, b)
		} else {
			bigs = append(bigs, b)
			smalls = append(smalls, a)
		}
	}

	leftover, hasLeftover := 0, n%2 != 0
	if hasLeftover {
		leftover = ids[n-1]
	}

	if s.mode == SearchPaired {
		partner := make(map[int]int, len(bigs))
		for k, big := range bigs {
			partner[big] = smalls[k]
		}
		bigs = s.sort(bigs)
		// smalls[k] belongs to bigs[k] again.
		for k, big := range bigs {
			smalls[k] = partner[big]
		}
	} else {
		// SearchFull keeps the smalls in pairing order.
		bigs = s.sort(bigs)
	}

	chain := make([]int, len(bigs), n)
	copy(chain, bigs)

	for _, k := range InsertionOrder(len(smalls)) {
		hi := len(chain)
		if s.mode == SearchPaired {
			hi = position(chain, bigs[k])
		}
		chain = s.insert(chain, hi, smalls[k])
	}

	if hasLeftover {
		chain = s.insert(chain, len(chain), leftover)
	}
	return chain
}
