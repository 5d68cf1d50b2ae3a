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

var finders1D = map[string]func([]int) (int, error){
	"linear": Linear[int],
	"binary": Binary[int],
}

func TestFind1D(t *testing.T) {
	tests := []struct {
		Name     string
		Nums     []int
		Expected []int
	}{
		{Name: "singleton", Nums: []int{1}, Expected: []int{0}},
		{Name: "ascending", Nums: []int{1, 2, 3, 4, 5, 6}, Expected: []int{5}},
		{Name: "descending", Nums: []int{6, 5, 4, 3, 2, 1}, Expected: []int{0}},
		{Name: "second last", Nums: []int{1, 2, 3, 4, 6, 5}, Expected: []int{4}},
		{Name: "second", Nums: []int{5, 6, 4, 3, 2, 1}, Expected: []int{1}},
		{Name: "single mixed", Nums: []int{1, 2, 3, 4, 5, 6, 5, 4, 3, 2, 1}, Expected: []int{5}},
		{Name: "multi mixed", Nums: []int{20, 1, 5, 2, 6, 9, 1, 10}, Expected: []int{0, 2, 5, 7}},
		{Name: "plateau", Nums: []int{3, 3, 3}, Expected: []int{0, 1, 2}},
	}

	for name, find := range finders1D {
		for _, tc := range tests {
			t.Run(name+"/"+tc.Name, func(t *testing.T) {
				got, err := find(tc.Nums)
				if err != nil {
					t.Fatal(err)
				}
				if !slices.Contains(tc.Expected, got) {
					t.Errorf("got %d, want one of %v", got, tc.Expected)
				}
			})
		}
	}
}

func TestFind1DEmpty(t *testing.T) {
	for name, find := range finders1D {
		if _, err := find(nil); !errors.Is(err, ErrEmpty) {
			t.Errorf("%s: expected ErrEmpty, got %v", name, err)
		}
	}
}

func TestFind1DRandom(t *testing.T) {
	r := rand.New(rand.NewSource(6006))
	for round := 0; round < 500; round += 1 {
		nums := make([]int, 1+r.Intn(40))
		for i := range nums {
			nums[i] = r.Intn(10)
		}
		for name, find := range finders1D {
			i, err := find(nums)
			if err != nil || !Is1D(nums, i) {
				t.Fatalf("%s(%v) = %d, %v: not a peak", name, nums, i, err)
			}
		}
	}
}

func TestIs1D(t *testing.T) {
	nums := []int{1, 3, 2, 2}
	want := []bool{false, true, false, true}
	for i, w := range want {
		if got := Is1D(nums, i); got != w {
			t.Errorf("Is1D(%d) = %v, want %v", i, got, w)
		}
	}
	if Is1D(nums, -1) || Is1D(nums, 4) {
		t.Error("out of range index reported as peak")
	}
}
