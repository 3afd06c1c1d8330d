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

// Package input turns command-line tokens into a sequence the sorter accepts:
// decimal, non-negative, within range and free of duplicates.
package input

import (
	"bufio"
	"io"
	"math"
	"strconv"

	"github.com/RoaringBitmap/roaring"
	"github.com/cockroachdb/errors"
)

// DefaultMaxValue is the largest accepted value unless configured otherwise.
const DefaultMaxValue = math.MaxInt32

var (
	// ErrInvalidInput marks tokens that are not integers in the accepted range.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateInput marks a value that appeared earlier in the input.
	ErrDuplicateInput = errors.New("duplicate input")
)

// Parser validates tokens against an upper bound.
type Parser struct {
	// MaxValue is the largest accepted value. Must not exceed math.MaxUint32.
	MaxValue uint32
}

// NewParser returns a Parser that accepts 0..maxValue.
func NewParser(maxValue uint32) *Parser {
	return &Parser{MaxValue: maxValue}
}

// Parse converts tokens to ints, rejecting the first malformed, out of range,
// or repeated token. Errors are marked with ErrInvalidInput or
// ErrDuplicateInput.
func (p *Parser) Parse(tokens []string) ([]int, error) {
	seen := roaring.New()
	out := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.ParseUint(tok, 10, 32)
		if err != nil || v > uint64(p.MaxValue) {
			return nil, errors.Mark(errors.Newf("invalid input -> %s", tok), ErrInvalidInput)
		}
		if !seen.CheckedAdd(uint32(v)) {
			return nil, errors.Mark(errors.Newf("duplicate number found: %s", tok), ErrDuplicateInput)
		}
		out = append(out, int(v))
	}
	return out, nil
}

// Read parses whitespace-separated tokens from r.
func (p *Parser) Read(r io.Reader) ([]int, error) {
	var tokens []string
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		tokens = append(tokens, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read input")
	}
	return p.Parse(tokens)
}
