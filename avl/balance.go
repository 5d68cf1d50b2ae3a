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

// rebalance walks path from its last (deepest) entry up to the root,
// refreshing heights and rotating wherever the balance factor leaves
// [-1, 1]. path[0] must be the root and each entry the child of the one
// before it.
func (t *Tree[K, V]) rebalance(path []*Node[K, V]) {
	for i := len(path) - 1; i >= 0; i -= 1 {
		node := path[i]
		node.updateHeight()

		bf := node.balanceFactor()
		if bf >= -1 && bf <= 1 {
			// heights above may still change
			continue
		}

		var sub *Node[K, V]
		if bf > 1 {
			if node.left.balanceFactor() >= 0 {
				sub = rotateRight(node)
			} else {
				sub = doubleRotateRight(node)
			}
		} else {
			if node.right.balanceFactor() <= 0 {
				sub = rotateLeft(node)
			} else {
				sub = doubleRotateLeft(node)
			}
		}

		var parent *Node[K, V]
		if i > 0 {
			parent = path[i-1]
		}
		t.relink(parent, node, sub)
		sub.updateHeight()
	}
}
