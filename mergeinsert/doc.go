// Package mergeinsert provides a Ford-Johnson merge-insertion sort.
//
// Merge-insertion trades element moves for comparisons: it pairs adjacent
// elements, recursively sorts the larger element of every pair, then binary
// inserts the smaller ones in an order derived from Jacobsthal-like chunk
// boundaries. The number of comparisons stays close to the information
// theoretic lower bound ceil(log2(n!)), which makes it a good fit when a
// single comparison is expensive and the input is small or moderate.
//
// # Algorithm
//
// Each recursion level:
//   - Pairs elements (i, i+1) into a "big" and a "small"
//   - Sorts the bigs recursively, keeping every small attached to its big
//   - Inserts the smalls into the sorted bigs in InsertionOrder order
//   - Inserts the unpaired leftover, if any, last
//
// # Example Usage
//
//	import "github.com/ajroetker/go-mergeinsertion/mergeinsert"
//
//	func Process(data []int) {
//	    mergeinsert.Sort(data) // In-place ascending sort
//	}
//
//	func Compare(data []int) int {
//	    return mergeinsert.SortCounted(data) // Number of comparisons used
//	}
//
// # Search Modes
//
// By default a small is only searched against the part of the sorted chain that
// precedes its partner big (SearchPaired). SearchFull searches the whole chain
// for every small and takes the smalls in pairing order. Both produce the same output; only the comparison count
// differs. Set MERGEINSERT_SEARCH=full to change the process-wide default.
//
// # Concurrency
//
// Sorting is sequential. The insertion of a small depends on every element
// inserted before it, so a single sort is never split across goroutines.
// Independent sorts may run concurrently; the package holds no mutable state
// besides the default search mode.
package mergeinsert
