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

package avl

import (
	"cmp"
	"iter"
)

// Tree is an ordered map from K to V kept height-balanced.
// Use New or NewFunc to create one; the zero value has no ordering.
type Tree[K, V any] struct {
	root  *Node[K, V]
	count int
	cmp   func(K, K) int
}

// New returns an empty tree ordered by K's natural ordering.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc returns an empty tree ordered by compare, which must define a
// total order: negative when a < b, zero when equal, positive when a > b.
func NewFunc[K, V any](compare func(a, b K) int) *Tree[K, V] {
	if compare == nil {
		panic("avl: nil compare function")
	}
	return &Tree[K, V]{cmp: compare}
}

// FromItems builds a tree from key/value pairs. Later duplicates
// overwrite earlier ones.
func FromItems[K cmp.Ordered, V any](items iter.Seq2[K, V]) *Tree[K, V] {
	t := New[K, V]()
	t.Load(items)
	return t
}

// FromKeys builds a tree holding every key in keys, each mapped to value.
func FromKeys[K cmp.Ordered, V any](keys []K, value V) *Tree[K, V] {
	t := New[K, V]()
	for _, k := range keys {
		t.Insert(k, value)
	}
	return t
}

// Load inserts every pair produced by items.
func (t *Tree[K, V]) Load(items iter.Seq2[K, V]) {
	for k, v := range items {
		t.Insert(k, v)
	}
}

// Len returns the number of keys in the tree.
func (t *Tree[K, V]) Len() int {
	return t.count
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree[K, V]) Root() *Node[K, V] {
	return t.root
}

// Height returns the height of the tree; 0 when empty.
func (t *Tree[K, V]) Height() int {
	return height(t.root)
}

func (t *Tree[K, V]) Clear() {
	t.root = nil
	t.count = 0
}

// Copy returns an independent tree holding the same keys and values.
func (t *Tree[K, V]) Copy() *Tree[K, V] {
	return &Tree[K, V]{
		root:  clone(t.root),
		count: t.count,
		cmp:   t.cmp,
	}
}

// recursion depth is bounded by the tree height
func clone[K, V any](n *Node[K, V]) *Node[K, V] {
	if n == nil {
		return nil
	}
	return &Node[K, V]{
		key:    n.key,
		value:  n.value,
		height: n.height,
		left:   clone(n.left),
		right:  clone(n.right),
	}
}

// relink makes replacement take old's place under parent, or at the root
// when parent is nil.
func (t *Tree[K, V]) relink(parent, old, replacement *Node[K, V]) {
	switch {
	case parent == nil:
		t.root = replacement
	case parent.left == old:
		parent.left = replacement
	default:
		parent.right = replacement
	}
}
