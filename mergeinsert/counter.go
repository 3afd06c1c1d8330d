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
	"math/big"
	"math/bits"
)

// Counter counts comparisons. The zero value is ready to use.
// A Counter is not safe for concurrent use; give each sort its own.
type Counter struct {
	n int
}

// Count returns the number of comparisons recorded so far.
func (c *Counter) Count() int {
	return c.n
}

// Reset sets the count back to zero.
func (c *Counter) Reset() {
	c.n = 0
}

// CountLess wraps less so that every call is recorded in c.
func CountLess[T any](c *Counter, less func(a, b T) bool) func(a, b T) bool {
	return func(a, b T) bool {
		c.n++
		return less(a, b)
	}
}

// InfoBound returns ceil(log2(n!)), the minimum number of comparisons any
// comparison sort needs in the worst case for n elements.
func InfoBound(n int) int {
	if n <= 1 {
		return 0
	}
	f := new(big.Int).MulRange(1, int64(n))
	// ceil(log2(x)) == bitlen(x-1) for x >= 1.
	return f.Sub(f, big.NewInt(1)).BitLen()
}

// FordJohnsonBound returns the classical worst-case comparison count of
// Ford-Johnson merge-insertion: sum over k=1..n of ceil(log2(3k/4)).
func FordJohnsonBound(n int) int {
	total := 0
	for k := 1; k <= n; k++ {
		// ceil(log2(3k/4)) == ceil(log2(3k)) - 2
		total += bits.Len(uint(3*k-1)) - 2
	}
	return total
}
