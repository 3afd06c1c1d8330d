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
	"cmp"
	"math/rand/v2"
	"slices"
	"testing"
)

// generateInts returns n distinct ints in random order.
func generateInts(n int) []int {
	return distinctInts(rand.New(rand.NewPCG(uint64(n), 1)), n)
}

func BenchmarkSort_100(b *testing.B) {
	benchmarkSort(b, 100)
}

func BenchmarkSort_1000(b *testing.B) {
	benchmarkSort(b, 1000)
}

func BenchmarkSort_10000(b *testing.B) {
	benchmarkSort(b, 10000)
}

func benchmarkSort(b *testing.B, n int) {
	ref := generateInts(n)
	data := make([]int, n)
	b.ResetTimer()
	for b.Loop() {
		copy(data, ref)
		Sort(data)
	}
}

func BenchmarkStdlib_1000(b *testing.B) {
	ref := generateInts(1000)
	data := make([]int, 1000)
	b.ResetTimer()
	for b.Loop() {
		copy(data, ref)
		slices.Sort(data)
	}
}

// BenchmarkComparisons reports comparisons per element rather than time.
func BenchmarkComparisons_1000(b *testing.B) {
	ref := generateInts(1000)
	data := make([]int, 1000)
	var c Counter
	less := CountLess(&c, cmp.Less[int])
	for b.Loop() {
		copy(data, ref)
		SortFunc(data, less)
	}
	b.ReportMetric(float64(c.Count())/float64(b.N)/1000, "cmp/elem")
}

func BenchmarkInsertionOrder_1000(b *testing.B) {
	for b.Loop() {
		_ = InsertionOrder(1000)
	}
}
