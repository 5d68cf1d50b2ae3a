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
	"slices"
	"strings"
	"time"

	"github.com/cybrota/orderly/avl"
)

// CommandMetadata is what the history tree stores per distinct command
type CommandMetadata struct {
	Command   string
	Timestamp *time.Time // most recent run, nil when the shell did not record one
	Frequency int
}

type RankedCommand struct {
	Command  string
	Score    float64
	Metadata CommandMetadata
}

// buildHistoryTree folds history into one entry per command, counting runs
// and keeping the most recent timestamp.
func buildHistoryTree(history []HistoryEntry) *avl.Tree[string, CommandMetadata] {
	tree := avl.New[string, CommandMetadata]()

	for _, entry := range history {
		if strings.TrimSpace(entry.Command) == "" {
			continue
		}
		meta, _ := tree.Find(entry.Command)
		meta.Command = entry.Command
		meta.Frequency++
		if entry.Timestamp != nil && (meta.Timestamp == nil || entry.Timestamp.After(*meta.Timestamp)) {
			meta.Timestamp = entry.Timestamp
		}
		tree.Insert(entry.Command, meta)
	}
	return tree
}

// calculateScore weighs how often a command ran against how recently.
// Commands without a timestamp get no recency credit.
func calculateScore(metadata CommandMetadata, now time.Time) float64 {
	frequencyScore := float64(metadata.Frequency)

	recencyScore := 0.0
	if metadata.Timestamp != nil {
		hours := max(now.Sub(*metadata.Timestamp).Hours(), 0)
		recencyScore = 1 / (hours + 1)
	}

	return (0.6 * frequencyScore) + (0.4 * recencyScore)
}

// SearchWithRanking returns the commands matching query, best score first.
// Prefix matches form one contiguous run of the in-order walk, so the walk
// stops at the first key past that run. Fuzzy matching checks every command
// for the query as a substring.
func SearchWithRanking(tree *avl.Tree[string, CommandMetadata], query string, fuzzy bool, now time.Time) []RankedCommand {
	var rankedCommands []RankedCommand
	add := func(meta CommandMetadata) {
		rankedCommands = append(rankedCommands, RankedCommand{
			Command:  meta.Command,
			Score:    calculateScore(meta, now),
			Metadata: meta,
		})
	}

	for cmd, meta := range tree.All() {
		if fuzzy {
			if strings.Contains(cmd, query) {
				add(meta)
			}
			continue
		}
		if strings.HasPrefix(cmd, query) {
			add(meta)
		} else if cmd > query {
			break
		}
	}

	// ties keep ascending command order
	slices.SortStableFunc(rankedCommands, func(a, b RankedCommand) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return 0
	})
	return rankedCommands
}
