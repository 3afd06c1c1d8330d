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

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInsertionOrderKnown(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{0, []int{}},
		{1, []int{0}},
		{2, []int{0, 1}},
		{3, []int{0, 1, 2}},
		{4, []int{0, 1, 3, 2}},
		{5, []int{0, 1, 3, 2, 4}},
		{6, []int{0, 1, 3, 2, 5, 4}},
		{10, []int{0, 1, 3, 2, 9, 8, 7, 6, 5, 4}},
		{12, []int{0, 1, 3, 2, 9, 8, 7, 6, 5, 4, 11, 10}},
	}
	for _, tt := range tests {
		got := InsertionOrder(tt.n)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("InsertionOrder(%d) mismatch (-want +got):\n%s", tt.n, diff)
		}
	}
}

func TestInsertionOrderNegative(t *testing.T) {
	if got := InsertionOrder(-3); len(got) != 0 {
		t.Errorf("InsertionOrder(-3) = %v, want empty", got)
	}
}

// TestInsertionOrderIsPermutation checks every n up to a few chunk boundaries.
func TestInsertionOrderIsPermutation(t *testing.T) {
	for n := 0; n <= 300; n++ {
		order := InsertionOrder(n)
		if len(order) != n {
			t.Fatalf("InsertionOrder(%d) has length %d", n, len(order))
		}
		sorted := slices.Clone(order)
		slices.Sort(sorted)
		for i, v := range sorted {
			if v != i {
				t.Fatalf("InsertionOrder(%d) is not a permutation of 0..%d: %v", n, n-1, order)
			}
		}
	}
}

// TestInsertionOrderChunksDescend checks that after the seed every chunk is a
// run of consecutive descending indices.
func TestInsertionOrderChunksDescend(t *testing.T) {
	order := InsertionOrder(100)
	// Chunk tops are 3, 9, 27, 81 and the cap 99.
	starts := map[int]bool{2: true, 4: true, 10: true, 28: true, 82: true}
	for i := 3; i < len(order); i++ {
		if starts[i] {
			continue
		}
		if order[i] != order[i-1]-1 {
			t.Errorf("order[%d]=%d does not follow order[%d]=%d", i, order[i], i-1, order[i-1])
		}
	}
	for i := range starts {
		if i > 2 && order[i] <= order[i-1] {
			t.Errorf("chunk starting at %d does not jump up: %d after %d", i, order[i], order[i-1])
		}
	}
}
