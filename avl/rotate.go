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

// Each rotation returns the new local root. Heights are refreshed
// bottom-up as soon as the links are in place.
//
// a is the unbalanced node, b its heavy child and c the inner child of b.

func rotateRight[K, V any](a *Node[K, V]) *Node[K, V] {
	b := a.left

	a.left = b.right
	a.updateHeight()
	b.right = a
	b.updateHeight()

	return b
}

func rotateLeft[K, V any](a *Node[K, V]) *Node[K, V] {
	b := a.right

	a.right = b.left
	a.updateHeight()
	b.left = a
	b.updateHeight()

	return b
}

// doubleRotateRight fixes a left-right imbalance.
func doubleRotateRight[K, V any](a *Node[K, V]) *Node[K, V] {
	b := a.left
	c := b.right

	a.left = c.right
	a.updateHeight()
	b.right = c.left
	b.updateHeight()
	c.left = b
	c.right = a
	c.updateHeight()

	return c
}

// doubleRotateLeft fixes a right-left imbalance.
func doubleRotateLeft[K, V any](a *Node[K, V]) *Node[K, V] {
	b := a.right
	c := b.left

	a.right = c.left
	a.updateHeight()
	b.left = c.right
	b.updateHeight()
	c.right = b
	c.left = a
	c.updateHeight()

	return c
}
