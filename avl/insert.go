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

// Insert stores value under key. An existing key has its value replaced
// in place and the shape of the tree is left untouched.
func (t *Tree[K, V]) Insert(key K, value V) {
	if t.root == nil {
		t.root = newNode(key, value)
		t.count = 1
		return
	}

	path := make([]*Node[K, V], 0, t.root.height+1)
	u := t.root

descend:
	for {
		path = append(path, u)

		c := t.cmp(key, u.key)
		switch {
		case c == 0:
			u.value = value
			return
		case c < 0:
			if u.left == nil {
				u.left = newNode(key, value)
				break descend
			}
			u = u.left
		default:
			if u.right == nil {
				u.right = newNode(key, value)
				break descend
			}
			u = u.right
		}
	}

	t.count += 1
	t.rebalance(path)
}
