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

import "fmt"

// Validate checks ordering, cached heights, balance and the element
// count, and describes the first violation found.
func (t *Tree[K, V]) Validate() error {
	nodes := 0
	var prev *Node[K, V]
	for n := range t.InOrder() {
		if prev != nil && t.cmp(prev.key, n.key) >= 0 {
			return fmt.Errorf("avl: order violated: %v before %v", prev.key, n.key)
		}
		prev = n
		nodes += 1
	}
	if nodes != t.count {
		return fmt.Errorf("avl: count %d but %d nodes reachable", t.count, nodes)
	}

	for n := range t.PostOrder() {
		want := max(height(n.left), height(n.right)) + 1
		if n.height != want {
			return fmt.Errorf("avl: node %v: cached height %d, actual %d", n.key, n.height, want)
		}
		if bf := n.balanceFactor(); bf < -1 || bf > 1 {
			return fmt.Errorf("avl: node %v: balance factor %d", n.key, bf)
		}
	}
	return nil
}
