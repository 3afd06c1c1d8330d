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

// Command pmergeme sorts distinct non-negative integers with Ford-Johnson
// merge-insertion and reports how long it took.
//
// Usage:
//
//	pmergeme 3 0 2 5 4 1                   # Before / After / Time
//	pmergeme --count 9 1 8 2 7             # also print comparison counts
//	pmergeme -f numbers.txt                # read whitespace-separated numbers
//	pmergeme order 12                      # print the insertion order for 12 smalls
//	pmergeme bound --from 1 --to 64        # survey comparison counts per size
//
// Settings come from --config (TOML), then PMERGEME_* environment variables,
// then flags.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
