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

// Package bsearch finds keys in sorted slices.
package bsearch

import (
	"cmp"
	"slices"
)

// NotFound is returned when the key is absent.
const NotFound = -1

// Index returns the position of key in sorted, or NotFound. With repeated
// keys the first occurrence is reported.
func Index[K cmp.Ordered](key K, sorted []K) int {
	i, ok := slices.BinarySearch(sorted, key)
	if !ok {
		return NotFound
	}
	return i
}

// IndexFunc searches items ordered by the key selector extracts from each
// element, using compare to order keys.
func IndexFunc[E, K any](key K, items []E, selector func(E) K, compare func(a, b K) int) int {
	i, ok := slices.BinarySearchFunc(items, key, func(e E, k K) int {
		return compare(selector(e), k)
	})
	if !ok {
		return NotFound
	}
	return i
}
