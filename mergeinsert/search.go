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
	"fmt"
	"os"
	"strings"
	"sync/atomic"
)

// SearchMode selects the range a small is binary-searched in.
type SearchMode int

const (
	// SearchPaired searches only the part of the chain before the small's
	// partner big. This is the classical Ford-Johnson range.
	SearchPaired SearchMode = iota

	// SearchFull searches the whole chain for every small and inserts the
	// smalls in pairing order, without following their bigs through the
	// recursive sort.
	SearchFull
)

// String returns a human-readable name for the search mode.
func (m SearchMode) String() string {
	switch m {
	case SearchPaired:
		return "paired"
	case SearchFull:
		return "full"
	default:
		return "unknown"
	}
}

// ParseSearchMode parses the names returned by SearchMode.String.
// The empty string selects SearchPaired.
func ParseSearchMode(s string) (SearchMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "paired":
		return SearchPaired, nil
	case "full":
		return SearchFull, nil
	default:
		return SearchPaired, fmt.Errorf("mergeinsert: unknown search mode %q", s)
	}
}

// currentMode is the process-wide default used by Sort, Sorted and SortFunc.
// Set by init() from MERGEINSERT_SEARCH.
var currentMode atomic.Int32

func init() {
	mode, err := ParseSearchMode(os.Getenv("MERGEINSERT_SEARCH"))
	if err != nil {
		// Unknown values fall back to the default.
		mode = SearchPaired
	}
	currentMode.Store(int32(mode))
}

// CurrentSearchMode returns the default search mode.
func CurrentSearchMode() SearchMode {
	return SearchMode(currentMode.Load())
}

// SetSearchMode changes the default search mode and returns the previous one.
func SetSearchMode(m SearchMode) SearchMode {
	return SearchMode(currentMode.Swap(int32(m)))
}
