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
	"cmp"
	"fmt"
)

// neighbour offsets in visiting order: east, south, west, north
var deltas = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

func dimensions[T any](m [][]T) (int, int, error) {
	if len(m) == 0 || len(m[0]) == 0 {
		return 0, 0, ErrEmpty
	}
	cols := len(m[0])
	for i, row := range m {
		if len(row) != cols {
			return 0, 0, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRagged, i, len(row), cols)
		}
	}
	return len(m), cols, nil
}

// Greedy starts at the centre and keeps stepping to the first strictly
// greater neighbour until none is left.
func Greedy[T cmp.Ordered](m [][]T) (row, col int, err error) {
	rows, cols, err := dimensions(m)
	if err != nil {
		return 0, 0, err
	}

	i, j := rows/2, cols/2
	for {
		moved := false
		for _, d := range deltas {
			ai, aj := i+d[0], j+d[1]
			if ai < 0 || ai >= rows || aj < 0 || aj >= cols {
				continue
			}
			if m[ai][aj] > m[i][j] {
				i, j = ai, aj
				moved = true
				break
			}
		}
		if !moved {
			return i, j, nil
		}
	}
}

// RowMax takes the maximum of each row in turn and returns the first one
// that is also a peak within its column.
func RowMax[T cmp.Ordered](m [][]T) (row, col int, err error) {
	rows, _, err := dimensions(m)
	if err != nil {
		return 0, 0, err
	}

	for i, r := range m {
		j := 0
		for k := 1; k < len(r); k += 1 {
			if r[k] > r[j] {
				j = k
			}
		}
		if (i == 0 || m[i-1][j] <= r[j]) && (i == rows-1 || m[i+1][j] <= r[j]) {
			return i, j, nil
		}
	}
	// unreachable: the row holding the global maximum always qualifies
	return 0, 0, fmt.Errorf("peak: no row maximum is a column peak")
}

// Is2D reports whether m[i][j] is a peak.
func Is2D[T cmp.Ordered](m [][]T, i, j int) bool {
	if i < 0 || i >= len(m) || j < 0 || j >= len(m[i]) {
		return false
	}
	for _, d := range deltas {
		ai, aj := i+d[0], j+d[1]
		if ai < 0 || ai >= len(m) || aj < 0 || aj >= len(m[ai]) {
			continue
		}
		if m[ai][aj] > m[i][j] {
			return false
		}
	}
	return true
}
