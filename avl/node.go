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

// Node is a single entry in the tree.
type Node[K, V any] struct {
	key    K
	value  V
	height int // leaf = 1
	left   *Node[K, V]
	right  *Node[K, V]
}

func newNode[K, V any](key K, value V) *Node[K, V] {
	return &Node[K, V]{key: key, value: value, height: 1}
}

func (n *Node[K, V]) Key() K             { return n.key }
func (n *Node[K, V]) Value() V           { return n.value }
func (n *Node[K, V]) Height() int        { return height(n) }
func (n *Node[K, V]) Left() *Node[K, V]  { return n.left }
func (n *Node[K, V]) Right() *Node[K, V] { return n.right }
func (n *Node[K, V]) isLeaf() bool       { return n.left == nil && n.right == nil }
func (n *Node[K, V]) updateHeight()      { n.height = max(height(n.left), height(n.right)) + 1 }
func (n *Node[K, V]) balanceFactor() int { return height(n.left) - height(n.right) }

// height of an absent subtree is 0
func height[K, V any](n *Node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.height
}
