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

// Remove deletes key and returns the value it held. A missing key is
// reported as a *NotFoundError and leaves the tree unchanged.
func (t *Tree[K, V]) Remove(key K) (V, error) {
	var path []*Node[K, V]
	if t.root != nil {
		path = make([]*Node[K, V], 0, t.root.height+1)
	}

	u := t.root
	for u != nil {
		path = append(path, u)
		c := t.cmp(key, u.key)
		if c == 0 {
			break
		}
		if c < 0 {
			u = u.left
		} else {
			u = u.right
		}
	}
	if u == nil {
		var zero V
		return zero, &NotFoundError{Key: key}
	}

	value := u.value

	// path ends at u; parent is the entry before it, if any
	parent := func() *Node[K, V] {
		if len(path) < 2 {
			return nil
		}
		return path[len(path)-2]
	}

	switch {
	case u.isLeaf():
		t.relink(parent(), u, nil)
		path = path[:len(path)-1]

	case u.right != nil:
		// v is the in-order successor: leftmost node of the right subtree
		v := u.right
		path = append(path, v)
		for v.left != nil {
			v = v.left
			path = append(path, v)
		}
		u.key, u.value = v.key, v.value

		path = path[:len(path)-1]
		t.relink(path[len(path)-1], v, v.right)

	default:
		t.relink(parent(), u, u.left)
		path = path[:len(path)-1]
	}

	t.count -= 1
	t.rebalance(path)
	return value, nil
}
