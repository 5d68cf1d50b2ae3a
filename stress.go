// Copyright 2025 Naren Yellavula
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

package main

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/orderly/avl"
)

// StressReport summarises a stress run
type StressReport struct {
	Rounds     int
	Inserts    int
	Removes    int
	MaxHeight  int
	FinalSizes []int
}

// runStress inserts cfg.Keys distinct random keys from [0, cfg.Range) and
// then removes cfg.Deletes of them, validating the tree after every
// operation. It repeats for cfg.Rounds rounds on a fresh tree.
func runStress(cfg StressConfig, seed int64, progress io.Writer) (*StressReport, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Keys > cfg.Range {
		return nil, fmt.Errorf("cannot draw %d distinct keys from a range of %d", cfg.Keys, cfg.Range)
	}
	deletes := min(cfg.Deletes, cfg.Keys)

	var bar *progressbar.ProgressBar
	if progress != nil {
		bar = progressbar.NewOptions(cfg.Rounds*(cfg.Keys+deletes),
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetDescription("Stressing tree..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(0),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		)
	}
	step := func() {
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	r := rand.New(rand.NewSource(seed))
	report := &StressReport{Rounds: cfg.Rounds}

	for round := 1; round <= cfg.Rounds; round++ {
		tree := avl.New[int, int]()
		keys := r.Perm(cfg.Range)[:cfg.Keys]

		for i, k := range keys {
			tree.Insert(k, i)
			if err := tree.Validate(); err != nil {
				return report, fmt.Errorf("round %d: after inserting %d: %w", round, k, err)
			}
			report.Inserts++
			report.MaxHeight = max(report.MaxHeight, tree.Height())
			step()
		}

		r.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
		for _, k := range keys[:deletes] {
			if _, err := tree.Remove(k); err != nil {
				return report, fmt.Errorf("round %d: %w", round, err)
			}
			if err := tree.Validate(); err != nil {
				return report, fmt.Errorf("round %d: after removing %d: %w", round, k, err)
			}
			report.Removes++
			step()
		}

		if tree.Len() != cfg.Keys-deletes {
			return report, fmt.Errorf("round %d: %d keys left, want %d", round, tree.Len(), cfg.Keys-deletes)
		}
		report.FinalSizes = append(report.FinalSizes, tree.Len())
	}

	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(progress)
	}
	return report, nil
}
