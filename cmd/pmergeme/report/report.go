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

// Package report formats sort results for the terminal.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
)

// Printer writes the before/after lines, the timing line and the optional
// comparison summary.
type Printer struct {
	w io.Writer

	// MaxElements truncates long sequences; 0 prints everything.
	MaxElements int
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer, maxElements int) *Printer {
	return &Printer{w: w, MaxElements: maxElements}
}

// Sequence prints "label: v0 v1 ...". Sequences longer than MaxElements are
// cut and end in "[...]".
func (p *Printer) Sequence(label string, data []int) error {
	shown := data
	if p.MaxElements > 0 && len(data) > p.MaxElements {
		shown = data[:p.MaxElements]
	}
	parts := lo.Map(shown, func(v int, _ int) string { return strconv.Itoa(v) })
	if len(shown) < len(data) {
		parts = append(parts, "[...]")
	}
	_, err := fmt.Fprintf(p.w, "%s: %s\n", label, strings.Join(parts, " "))
	return err
}

// Timing prints the elapsed time in microseconds with five decimals.
func (p *Printer) Timing(n int, container string, elapsed time.Duration) error {
	us := float64(elapsed) / float64(time.Microsecond)
	_, err := fmt.Fprintf(p.w, "Time to process a range of %d elements with %s : %.5f us\n", n, container, us)
	return err
}

// Comparisons prints the measured comparison count next to the bounds.
func (p *Printer) Comparisons(n, got, infoBound, fordJohnson int) error {
	_, err := fmt.Fprintf(p.w, "Comparisons for %d elements: %d (ceil(log2(n!)) = %d, Ford-Johnson worst case = %d)\n",
		n, got, infoBound, fordJohnson)
	return err
}

// Order prints an insertion order.
func (p *Printer) Order(n int, order []int) error {
	return p.Sequence(fmt.Sprintf("Insertion order (%d)", n), order)
}
