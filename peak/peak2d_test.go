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

package peak

import (
	"errors"
	"math/rand"
	"slices"
	"testing"
)

type cell struct{ row, col int }

var finders2D = map[string]func([][]int) (int, int, error){
	"greedy":  Greedy[int],
	"row-max": RowMax[int],
}

// corner returns a 4x4 matrix whose single peak sits in the top-left,
// then mirrors it as requested.
func corner(flipRows, flipCols bool) [][]int {
	m := [][]int{
		{7, 6, 5, 4},
		{6, 5, 4, 3},
		{5, 4, 3, 2},
		{4, 3, 2, 1},
	}
	if flipCols {
		for _, row := range m {
			slices.Reverse(row)
		}
	}
	if flipRows {
		slices.Reverse(m)
	}
	return m
}

func TestFind2D(t *testing.T) {
	multiple := [][]int{
		{1, 2, 5, 3, 4},
		{2, 7, 3, 2, 2},
		{9, 6, 8, 3, 2},
	}

	tests := []struct {
		Name     string
		Matrix   [][]int
		Expected []cell
	}{
		{Name: "singleton", Matrix: [][]int{{1}}, Expected: []cell{{0, 0}}},
		{Name: "top left", Matrix: corner(false, false), Expected: []cell{{0, 0}}},
		{Name: "bottom left", Matrix: corner(true, false), Expected: []cell{{3, 0}}},
		{Name: "top right", Matrix: corner(false, true), Expected: []cell{{0, 3}}},
		{Name: "bottom right", Matrix: corner(true, true), Expected: []cell{{3, 3}}},
		{Name: "multiple", Matrix: multiple, Expected: []cell{{1, 1}, {0, 2}, {0, 4}, {2, 0}, {2, 2}}},
	}

	for name, find := range finders2D {
		for _, tc := range tests {
			t.Run(name+"/"+tc.Name, func(t *testing.T) {
				i, j, err := find(tc.Matrix)
				if err != nil {
					t.Fatal(err)
				}
				if !slices.Contains(tc.Expected, cell{i, j}) {
					t.Errorf("got (%d, %d), want one of %v", i, j, tc.Expected)
				}
			})
		}
	}
}

func TestFind2DInvalid(t *testing.T) {
	for name, find := range finders2D {
		if _, _, err := find(nil); !errors.Is(err, ErrEmpty) {
			t.Errorf("%s: nil matrix: %v", name, err)
		}
		if _, _, err := find([][]int{{}}); !errors.Is(err, ErrEmpty) {
			t.Errorf("%s: zero columns: %v", name, err)
		}
		if _, _, err := find([][]int{{1, 2}, {3}}); !errors.Is(err, ErrRagged) {
			t.Errorf("%s: ragged matrix: %v", name, err)
		}
	}
}

func TestFind2DRandom(t *testing.T) {
	r := rand.New(rand.NewSource(6006))
	for round := 0; round < 300; round += 1 {
		rows, cols := 1+r.Intn(12), 1+r.Intn(12)
		m := make([][]int, rows)
		for i := range m {
			m[i] = make([]int, cols)
			for j := range m[i] {
				m[i][j] = r.Intn(20)
			}
		}
		for name, find := range finders2D {
			i, j, err := find(m)
			if err != nil || !Is2D(m, i, j) {
				t.Fatalf("%s: (%d, %d), %v is not a peak of %v", name, i, j, err, m)
			}
		}
	}
}
