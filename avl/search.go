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

// Find returns the value stored under key and whether it was present.
func (t *Tree[K, V]) Find(key K) (V, bool) {
	if n := t.find(key); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

// Get is like Find but reports a missing key as a *NotFoundError.
func (t *Tree[K, V]) Get(key K) (V, error) {
	n := t.find(key)
	if n == nil {
		var zero V
		return zero, &NotFoundError{Key: key}
	}
	return n.value, nil
}

func (t *Tree[K, V]) Contains(key K) bool {
	return t.find(key) != nil
}

// Predecessor returns the nearest key <= key met while descending
// towards key. A stored key equal to key is its own predecessor.
func (t *Tree[K, V]) Predecessor(key K) (K, bool) {
	if n := t.predecessorNode(key); n != nil {
		return n.key, true
	}
	var zero K
	return zero, false
}

// Successor returns the nearest key >= key met while descending towards
// key. A stored key equal to key is its own successor.
func (t *Tree[K, V]) Successor(key K) (K, bool) {
	if n := t.successorNode(key); n != nil {
		return n.key, true
	}
	var zero K
	return zero, false
}

func (t *Tree[K, V]) find(key K) *Node[K, V] {
	n := t.root
	for n != nil {
		c := t.cmp(key, n.key)
		switch {
		case c == 0:
			return n
		case c < 0:
			n = n.left
		default:
			n = n.right
		}
	}
	return nil
}

func (t *Tree[K, V]) predecessorNode(key K) *Node[K, V] {
	var pre *Node[K, V]
	n := t.root
	for n != nil {
		c := t.cmp(key, n.key)
		switch {
		case c == 0:
			return n
		case c < 0:
			n = n.left
		default:
			pre = n
			n = n.right
		}
	}
	return pre
}

func (t *Tree[K, V]) successorNode(key K) *Node[K, V] {
	var suc *Node[K, V]
	n := t.root
	for n != nil {
		c := t.cmp(key, n.key)
		switch {
		case c == 0:
			return n
		case c > 0:
			n = n.right
		default:
			suc = n
			n = n.left
		}
	}
	return suc
}
