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

// Package pqueue provides a min-priority queue backed by a binary heap
// stored in a dense, 0-indexed slice.
package pqueue

import (
	"cmp"
	"errors"
	"iter"
)

var ErrEmpty = errors.New("pqueue: queue is empty")

type entry[K, V any] struct {
	key   K
	value V
}

// PriorityQueue keeps the entry with the smallest key at index 0.
type PriorityQueue[K, V any] struct {
	nodes []entry[K, V]
	cmp   func(K, K) int
}

func New[K cmp.Ordered, V any]() *PriorityQueue[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc returns an empty queue ordered by compare.
func NewFunc[K, V any](compare func(a, b K) int) *PriorityQueue[K, V] {
	return &PriorityQueue[K, V]{cmp: compare}
}

func parent(i int) int          { return (i - 1) / 2 }
func children(i int) (int, int) { return 2*i + 1, 2*i + 2 }

func (pq *PriorityQueue[K, V]) Len() int {
	return len(pq.nodes)
}

// Insert adds key with its value and sifts it up to its place.
func (pq *PriorityQueue[K, V]) Insert(key K, value V) {
	pq.nodes = append(pq.nodes, entry[K, V]{key: key, value: value})

	i := len(pq.nodes) - 1
	for i > 0 {
		p := parent(i)
		if pq.cmp(pq.nodes[i].key, pq.nodes[p].key) >= 0 {
			return
		}
		pq.nodes[i], pq.nodes[p] = pq.nodes[p], pq.nodes[i]
		i = p
	}
}

// Min returns the smallest entry without removing it.
func (pq *PriorityQueue[K, V]) Min() (K, V, error) {
	if len(pq.nodes) == 0 {
		var k K
		var v V
		return k, v, ErrEmpty
	}
	return pq.nodes[0].key, pq.nodes[0].value, nil
}

// DeleteMin removes and returns the smallest entry. The last element
// takes the root's place and is sifted down.
func (pq *PriorityQueue[K, V]) DeleteMin() (K, V, error) {
	if len(pq.nodes) == 0 {
		var k K
		var v V
		return k, v, ErrEmpty
	}

	root := pq.nodes[0]
	last := len(pq.nodes) - 1
	pq.nodes[0] = pq.nodes[last]
	pq.nodes[last] = entry[K, V]{}
	pq.nodes = pq.nodes[:last]

	pq.siftDown(0)
	return root.key, root.value, nil
}

func (pq *PriorityQueue[K, V]) siftDown(i int) {
	n := len(pq.nodes)
	for {
		l, r := children(i)
		if l >= n {
			return
		}
		smallest := l
		if r < n && pq.cmp(pq.nodes[r].key, pq.nodes[l].key) < 0 {
			smallest = r
		}
		if pq.cmp(pq.nodes[i].key, pq.nodes[smallest].key) <= 0 {
			return
		}
		pq.nodes[i], pq.nodes[smallest] = pq.nodes[smallest], pq.nodes[i]
		i = smallest
	}
}

// All yields entries in level order, which is the backing array order.
func (pq *PriorityQueue[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range pq.nodes {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}
