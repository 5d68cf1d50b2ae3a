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
	"fmt"
	"iter"
	"strings"

	"github.com/cybrota/orderly/avl"
)

// TraverseHandler lists the tree's contents in one of its orders
type TraverseHandler struct{}

func (h *TraverseHandler) SupportsVerb(verb string) bool {
	switch verb {
	case "keys", "values", "items", "inorder", "preorder", "postorder":
		return true
	}
	return false
}

func (h *TraverseHandler) Priority() int {
	return 3
}

func (h *TraverseHandler) Run(s *Session, cmd *Command) (string, error) {
	if len(cmd.Args) != 0 {
		return "", cmd.usage()
	}

	switch cmd.Verb {
	case "keys", "inorder":
		return joinKeys(s.Tree.InOrder()), nil
	case "preorder":
		return joinKeys(s.Tree.PreOrder()), nil
	case "postorder":
		return joinKeys(s.Tree.PostOrder()), nil
	case "values":
		var values []string
		for v := range s.Tree.Values() {
			values = append(values, v)
		}
		return strings.Join(values, " "), nil
	case "items":
		var lines []string
		for k, v := range s.Tree.All() {
			lines = append(lines, k+"="+v)
		}
		return strings.Join(lines, "\n"), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVerb, cmd.Verb)
}

func joinKeys(seq iter.Seq[*avl.Node[string, string]]) string {
	var keys []string
	for n := range seq {
		keys = append(keys, n.Key())
	}
	return strings.Join(keys, " ")
}

// InspectHandler draws and checks the tree and manages snapshots
type InspectHandler struct{}

func (h *InspectHandler) SupportsVerb(verb string) bool {
	switch verb {
	case "print", "check", "snapshot", "restore", "snapshots":
		return true
	}
	return false
}

func (h *InspectHandler) Priority() int {
	return 4
}

func (h *InspectHandler) Run(s *Session, cmd *Command) (string, error) {
	switch cmd.Verb {
	case "print":
		return s.Tree.String(), nil
	case "check":
		if err := s.Tree.Validate(); err != nil {
			return "", err
		}
		return "ok", nil
	case "snapshots":
		if len(cmd.Args) != 0 {
			return "", cmd.usage()
		}
		return strings.Join(s.Snapshots(), " "), nil
	}

	if len(cmd.Args) != 1 {
		return "", cmd.usage()
	}
	switch cmd.Verb {
	case "snapshot":
		s.Snapshot(cmd.Arg(0))
		return "", nil
	case "restore":
		return "", s.Restore(cmd.Arg(0))
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVerb, cmd.Verb)
}
