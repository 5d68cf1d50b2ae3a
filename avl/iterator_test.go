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

package avl_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/cybrota/orderly/avl"
)

func nodeKeys(seq iter.Seq[*avl.Node[int, string]]) []int {
	var keys []int
	for n := range seq {
		keys = append(keys, n.Key())
	}
	return keys
}

func TestTraversalOrders(t *testing.T) {
	// 4 is the root; 2 and 6 its children; 1, 3, 5, 7 leaves
	tree := buildTree([]int{4, 2, 6, 1, 3, 5, 7})

	tests := []struct {
		Name     string
		Seq      iter.Seq[*avl.Node[int, string]]
		Expected []int
	}{
		{Name: "in-order", Seq: tree.InOrder(), Expected: []int{1, 2, 3, 4, 5, 6, 7}},
		{Name: "pre-order", Seq: tree.PreOrder(), Expected: []int{4, 2, 1, 3, 6, 5, 7}},
		{Name: "post-order", Seq: tree.PostOrder(), Expected: []int{1, 3, 2, 5, 7, 6, 4}},
	}

	for _, tc := range tests {
		t.Run(tc.Name, func(t *testing.T) {
			if got := nodeKeys(tc.Seq); !slices.Equal(got, tc.Expected) {
				t.Errorf("got %v, want %v", got, tc.Expected)
			}
			// sequences are restartable
			if got := nodeKeys(tc.Seq); !slices.Equal(got, tc.Expected) {
				t.Errorf("second pass: got %v, want %v", got, tc.Expected)
			}
		})
	}
}

func TestTraversalUnbalancedShapes(t *testing.T) {
	// after rotation 2 is root with a single right-leaning chain below 3
	tree := buildTree([]int{1, 2, 3, 4})

	if got := nodeKeys(tree.PreOrder()); !slices.Equal(got, []int{2, 1, 3, 4}) {
		t.Errorf("pre-order: %v", got)
	}
	if got := nodeKeys(tree.PostOrder()); !slices.Equal(got, []int{1, 4, 3, 2}) {
		t.Errorf("post-order: %v", got)
	}
	if got := nodeKeys(tree.InOrder()); !slices.Equal(got, []int{1, 2, 3, 4}) {
		t.Errorf("in-order: %v", got)
	}
}

func TestTraversalEarlyStop(t *testing.T) {
	tree := buildTree(scenarioKeys)

	seqs := map[string]iter.Seq[*avl.Node[int, string]]{
		"in-order":   tree.InOrder(),
		"pre-order":  tree.PreOrder(),
		"post-order": tree.PostOrder(),
	}
	for name, seq := range seqs {
		t.Run(name, func(t *testing.T) {
			visited := 0
			for range seq {
				visited += 1
				if visited == 3 {
					break
				}
			}
			if visited != 3 {
				t.Errorf("visited %d nodes, want 3", visited)
			}
		})
	}

	var first []int
	for k := range tree.Keys() {
		if k > 12 {
			break
		}
		first = append(first, k)
	}
	if !slices.Equal(first, []int{3, 5, 10, 12}) {
		t.Errorf("keys before break: %v", first)
	}

	n := 0
	for range tree.All() {
		n += 1
		if n == 5 {
			break
		}
	}
	for range tree.Values() {
		break
	}
}

func TestTraversalEmptyTree(t *testing.T) {
	tree := avl.New[int, string]()
	for range tree.InOrder() {
		t.Fatal("in-order yielded from empty tree")
	}
	for range tree.PreOrder() {
		t.Fatal("pre-order yielded from empty tree")
	}
	for range tree.PostOrder() {
		t.Fatal("post-order yielded from empty tree")
	}
	for range tree.All() {
		t.Fatal("All yielded from empty tree")
	}
}

func TestValuesFollowKeyOrder(t *testing.T) {
	tree := buildTree([]int{3, 1, 2})
	got := slices.Collect(tree.Values())
	want := []string{valueFor(1), valueFor(2), valueFor(3)}
	if !slices.Equal(got, want) {
		t.Errorf("values: got %v, want %v", got, want)
	}
}

func TestNodeAccessors(t *testing.T) {
	tree := buildTree([]int{2, 1, 3})
	root := tree.Root()
	if root.Height() != 2 || root.Left().Key() != 1 || root.Right().Key() != 3 {
		t.Fatalf("unexpected root shape:\n%s", tree)
	}
	if root.Left().Left() != nil || root.Left().Height() != 1 {
		t.Error("leaf has children")
	}
	if root.Value() != valueFor(2) {
		t.Errorf("root value %q", root.Value())
	}
}
