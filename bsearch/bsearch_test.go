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

package bsearch

import (
	"cmp"
	"strings"
	"testing"
)

func TestIndex(t *testing.T) {
	sorted := []int{-4, 0, 3, 3, 8, 15, 42}

	tests := []struct {
		Name     string
		Key      int
		Expected int
	}{
		{Name: "first", Key: -4, Expected: 0},
		{Name: "last", Key: 42, Expected: 6},
		{Name: "middle", Key: 8, Expected: 4},
		{Name: "duplicate reports first", Key: 3, Expected: 2},
		{Name: "below range", Key: -10, Expected: NotFound},
		{Name: "above range", Key: 100, Expected: NotFound},
		{Name: "gap", Key: 5, Expected: NotFound},
	}

	for _, tc := range tests {
		t.Run(tc.Name, func(t *testing.T) {
			if got := Index(tc.Key, sorted); got != tc.Expected {
				t.Errorf("Index(%d) = %d, want %d", tc.Key, got, tc.Expected)
			}
		})
	}
}

func TestIndexEmpty(t *testing.T) {
	if got := Index("a", nil); got != NotFound {
		t.Errorf("Index on nil slice = %d", got)
	}
}

func TestIndexEveryElement(t *testing.T) {
	var sorted []int
	for i := 0; i < 257; i += 1 {
		sorted = append(sorted, i*3)
	}
	for i, k := range sorted {
		if got := Index(k, sorted); got != i {
			t.Fatalf("Index(%d) = %d, want %d", k, got, i)
		}
		if got := Index(k+1, sorted); got != NotFound {
			t.Fatalf("Index(%d) = %d, want NotFound", k+1, got)
		}
	}
}

type user struct {
	name string
	age  int
}

func TestIndexFunc(t *testing.T) {
	users := []user{{"ada", 36}, {"bob", 41}, {"cy", 52}}
	age := func(u user) int { return u.age }

	if got := IndexFunc(41, users, age, cmp.Compare[int]); got != 1 {
		t.Errorf("IndexFunc(41) = %d, want 1", got)
	}
	if got := IndexFunc(40, users, age, cmp.Compare[int]); got != NotFound {
		t.Errorf("IndexFunc(40) = %d, want NotFound", got)
	}

	name := func(u user) string { return u.name }
	if got := IndexFunc("CY", users, name, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	}); got != 2 {
		t.Errorf("case-insensitive IndexFunc = %d, want 2", got)
	}
}
