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

// Package peak locates peaks in sequences and matrices. An element is a
// peak when it is not smaller than any of its in-range neighbours, so
// every non-empty input has at least one.
package peak

import (
	"cmp"
	"errors"
)

var (
	ErrEmpty  = errors.New("peak: empty input")
	ErrRagged = errors.New("peak: rows differ in length")
)

// Linear scans left to right and returns the first peak.
func Linear[T cmp.Ordered](nums []T) (int, error) {
	n := len(nums)
	if n == 0 {
		return 0, ErrEmpty
	}
	if n == 1 || nums[0] >= nums[1] {
		return 0, nil
	}
	for i := 1; i < n-1; i += 1 {
		if nums[i-1] <= nums[i] && nums[i] >= nums[i+1] {
			return i, nil
		}
	}
	// every step so far climbed, so the last element is a peak
	return n - 1, nil
}

// Binary bisects towards the larger side of mid, which always holds a peak.
func Binary[T cmp.Ordered](nums []T) (int, error) {
	if len(nums) == 0 {
		return 0, ErrEmpty
	}
	lo, hi := 0, len(nums)-1
	for lo < hi {
		mid := lo + (hi-lo)/2
		if nums[mid] < nums[mid+1] {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo, nil
}

// Is1D reports whether nums[i] is a peak.
func Is1D[T cmp.Ordered](nums []T, i int) bool {
	if i < 0 || i >= len(nums) {
		return false
	}
	if i > 0 && nums[i-1] > nums[i] {
		return false
	}
	if i < len(nums)-1 && nums[i+1] > nums[i] {
		return false
	}
	return true
}
