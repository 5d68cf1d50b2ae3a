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

import "iter"

// InOrder yields nodes in ascending key order (left, self, right).
func (t *Tree[K, V]) InOrder() iter.Seq[*Node[K, V]] {
	return func(yield func(*Node[K, V]) bool) {
		stack := make([]*Node[K, V], 0, height(t.root))
		n := t.root
		for n != nil || len(stack) > 0 {
			for n != nil {
				stack = append(stack, n)
				n = n.left
			}
			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n) {
				return
			}
			n = n.right
		}
	}
}

// PreOrder yields each node before its subtrees (self, left, right).
func (t *Tree[K, V]) PreOrder() iter.Seq[*Node[K, V]] {
	return func(yield func(*Node[K, V]) bool) {
		if t.root == nil {
			return
		}
		stack := []*Node[K, V]{t.root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n) {
				return
			}
			if n.right != nil {
				stack = append(stack, n.right)
			}
			if n.left != nil {
				stack = append(stack, n.left)
			}
		}
	}
}

// PostOrder yields each node after its subtrees (left, right, self).
func (t *Tree[K, V]) PostOrder() iter.Seq[*Node[K, V]] {
	return func(yield func(*Node[K, V]) bool) {
		stack := make([]*Node[K, V], 0, height(t.root))
		var last *Node[K, V]
		n := t.root
		for n != nil || len(stack) > 0 {
			if n != nil {
				stack = append(stack, n)
				n = n.left
				continue
			}
			top := stack[len(stack)-1]
			if top.right != nil && top.right != last {
				n = top.right
				continue
			}
			if !yield(top) {
				return
			}
			last = top
			stack = stack[:len(stack)-1]
		}
	}
}

// Keys yields the keys in ascending order.
func (t *Tree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for n := range t.InOrder() {
			if !yield(n.key) {
				return
			}
		}
	}
}

// Values yields the values in ascending key order.
func (t *Tree[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for n := range t.InOrder() {
			if !yield(n.value) {
				return
			}
		}
	}
}

// All yields key/value pairs in ascending key order.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := range t.InOrder() {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}
