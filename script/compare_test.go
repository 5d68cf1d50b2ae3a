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

package script

import (
	"slices"
	"testing"
)

func TestCompareNatural(t *testing.T) {
	tests := []struct {
		A, B     string
		Expected int
	}{
		{A: "2", B: "10", Expected: -1},
		{A: "10", B: "2", Expected: 1},
		{A: "-3", B: "2", Expected: -1},
		{A: "99", B: "a", Expected: -1},
		{A: "a", B: "99", Expected: 1},
		{A: "apple", B: "banana", Expected: -1},
		{A: "7", B: "07", Expected: 1},
		{A: "x", B: "x", Expected: 0},
		{A: "42", B: "42", Expected: 0},
	}

	for _, tc := range tests {
		if got := CompareNatural(tc.A, tc.B); got != tc.Expected {
			t.Errorf("CompareNatural(%q, %q) = %d, want %d", tc.A, tc.B, got, tc.Expected)
		}
	}
}

func TestCompareNaturalSorts(t *testing.T) {
	keys := []string{"b", "10", "a", "2", "-1", "10a"}
	slices.SortFunc(keys, CompareNatural)
	want := []string{"-1", "2", "10", "10a", "a", "b"}
	if !slices.Equal(keys, want) {
		t.Errorf("got %v, want %v", keys, want)
	}
}
