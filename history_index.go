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
	"time"

	"github.com/willf/bloom"

	"github.com/cybrota/orderly/avl"
)

// bloomFalsePositiveRate bounds how often Has descends the tree for a
// command that was never run.
const bloomFalsePositiveRate = 0.01

// HistoryIndex pairs the history tree with a bloom filter that answers
// most membership misses without touching the tree.
type HistoryIndex struct {
	tree   *avl.Tree[string, CommandMetadata]
	filter *bloom.BloomFilter
}

func NewHistoryIndex(history []HistoryEntry) *HistoryIndex {
	tree := buildHistoryTree(history)

	filter := bloom.NewWithEstimates(uint(max(tree.Len(), 1)), bloomFalsePositiveRate)
	for cmd := range tree.Keys() {
		filter.AddString(cmd)
	}

	return &HistoryIndex{tree: tree, filter: filter}
}

func (hi *HistoryIndex) Len() int {
	return hi.tree.Len()
}

// Has reports whether cmd appears in the history.
func (hi *HistoryIndex) Has(cmd string) bool {
	if !hi.filter.TestString(cmd) {
		return false
	}
	return hi.tree.Contains(cmd)
}

// Lookup returns the metadata recorded for cmd.
func (hi *HistoryIndex) Lookup(cmd string) (CommandMetadata, bool) {
	if !hi.filter.TestString(cmd) {
		return CommandMetadata{}, false
	}
	return hi.tree.Find(cmd)
}

// Suggest ranks matching commands and keeps at most limit of them. A
// limit of zero or less keeps all.
func (hi *HistoryIndex) Suggest(query string, fuzzy bool, limit int) []RankedCommand {
	ranked := SearchWithRanking(hi.tree, query, fuzzy, time.Now())
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
