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
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/cybrota/orderly/avl"
)

var ErrUnknownSnapshot = errors.New("unknown snapshot")

// Session is the state a script works on: the live tree and any named
// snapshots taken of it.
type Session struct {
	Tree      *avl.Tree[string, string]
	snapshots map[string]*avl.Tree[string, string]
}

// NewSession creates an empty session with naturally ordered keys
func NewSession() *Session {
	return &Session{
		Tree:      avl.NewFunc[string, string](CompareNatural),
		snapshots: make(map[string]*avl.Tree[string, string]),
	}
}

// Snapshot stores a copy of the current tree under name, replacing an
// earlier snapshot with the same name.
func (s *Session) Snapshot(name string) {
	s.snapshots[name] = s.Tree.Copy()
}

// Restore replaces the live tree with a copy of the named snapshot. The
// snapshot itself stays untouched and can be restored again.
func (s *Session) Restore(name string) error {
	snap, ok := s.snapshots[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSnapshot, name)
	}
	s.Tree = snap.Copy()
	return nil
}

// Snapshots returns the snapshot names in sorted order
func (s *Session) Snapshots() []string {
	return slices.Sorted(maps.Keys(s.snapshots))
}
