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

package main

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cybrota/orderly/bsearch"
	"github.com/cybrota/orderly/peak"
	"github.com/cybrota/orderly/pqueue"
)

// parseNumbers accepts integers as separate arguments or comma separated.
func parseNumbers(args []string) ([]int, error) {
	var nums []int
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%q is not an integer", field)
			}
			nums = append(nums, n)
		}
	}
	return nums, nil
}

func findPeak1D(nums []int) (string, error) {
	linear, err := peak.Linear(nums)
	if err != nil {
		return "", err
	}
	binary, err := peak.Binary(nums)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "linear: index %d (value %d)\n", linear, nums[linear])
	fmt.Fprintf(&b, "binary: index %d (value %d)", binary, nums[binary])
	return b.String(), nil
}

// matrixFile is the YAML layout read by peak2d:
//
//	matrix:
//	  - [1, 2, 3]
//	  - [4, 5, 6]
type matrixFile struct {
	Matrix [][]int `yaml:"matrix"`
}

func loadMatrix(path string) ([][]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var mf matrixFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if mf.Matrix == nil {
		return nil, fmt.Errorf("%s has no matrix key", path)
	}
	return mf.Matrix, nil
}

func findPeak2D(m [][]int) (string, error) {
	gi, gj, err := peak.Greedy(m)
	if err != nil {
		return "", err
	}
	ri, rj, err := peak.RowMax(m)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "greedy:  (%d, %d) value %d\n", gi, gj, m[gi][gj])
	fmt.Fprintf(&b, "row-max: (%d, %d) value %d", ri, rj, m[ri][rj])
	return b.String(), nil
}

// heapSort drains a priority queue filled with nums.
func heapSort(nums []int) ([]int, error) {
	pq := pqueue.New[int, struct{}]()
	for _, n := range nums {
		pq.Insert(n, struct{}{})
	}

	sorted := make([]int, 0, len(nums))
	for {
		n, _, err := pq.DeleteMin()
		if errors.Is(err, pqueue.ErrEmpty) {
			return sorted, nil
		}
		if err != nil {
			return nil, err
		}
		sorted = append(sorted, n)
	}
}

// searchNumbers sorts nums and reports where key lands.
func searchNumbers(key int, nums []int) string {
	sorted := slices.Clone(nums)
	slices.Sort(sorted)

	i := bsearch.Index(key, sorted)
	if i == bsearch.NotFound {
		return fmt.Sprintf("%d not found in %v", key, sorted)
	}
	return fmt.Sprintf("%d found at index %d of %v", key, i, sorted)
}
