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

// lowerBound returns the first position in chain[:hi] whose element is not
// less than data[id], or hi if there is none.
// Every comparison of the merge phase goes through here.
func (s *sorter[T]) lowerBound(chain []int, hi int, id int) int {
	v := s.data[id]
	lo := 0
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if s.less(s.data[chain[mid]], v) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// insert binary-searches id into chain[:hi] and inserts it there, shifting
// the tail of chain by one.
func (s *sorter[T]) insert(chain []int, hi int, id int) []int {
	pos := s.lowerBound(chain, hi, id)
	chain = append(chain, 0)
	copy(chain[pos+1:], chain[pos:])
	chain[pos] = id
	return chain
}

// position returns the index of id in chain. This is an identity lookup and
// performs no element comparisons.
func position(chain []int, id int) int {
	for i, c := range chain {
		if c == id {
			return i
		}
	}
	return len(chain)
}
