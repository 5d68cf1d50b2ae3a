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
	"fmt"
	"strings"
)

// String draws the tree on its side: the right subtree first, one tab per
// level, each line as "key (h=height)". The root sits in the left column.
func (t *Tree[K, V]) String() string {
	if t.root == nil {
		return "<empty>"
	}
	var lines []string
	flatten(t.root, 0, &lines)
	return strings.Join(lines, "\n")
}

func flatten[K, V any](n *Node[K, V], level int, lines *[]string) {
	if n.right != nil {
		flatten(n.right, level+1, lines)
	}
	*lines = append(*lines, fmt.Sprintf("%s%v (h=%d)", strings.Repeat("\t", level), n.key, n.height))
	if n.left != nil {
		flatten(n.left, level+1, lines)
	}
}
