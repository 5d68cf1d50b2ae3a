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
	"strconv"
)

const none = "<none>"

// MutateHandler handles verbs that change the tree
type MutateHandler struct{}

func (h *MutateHandler) SupportsVerb(verb string) bool {
	switch Canonical(verb) {
	case "insert", "remove", "clear":
		return true
	}
	return false
}

func (h *MutateHandler) Priority() int {
	return 1
}

func (h *MutateHandler) Run(s *Session, cmd *Command) (string, error) {
	switch Canonical(cmd.Verb) {
	case "insert":
		if !cmd.HasArgs(1) || cmd.HasArgs(3) {
			return "", cmd.usage()
		}
		value := cmd.Arg(0)
		if cmd.HasArgs(2) {
			value = cmd.Arg(1)
		}
		s.Tree.Insert(cmd.Arg(0), value)
		return "", nil

	case "remove":
		if len(cmd.Args) != 1 {
			return "", cmd.usage()
		}
		return s.Tree.Remove(cmd.Arg(0))

	case "clear":
		s.Tree.Clear()
		return "", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVerb, cmd.Verb)
}

// QueryHandler handles point lookups and size queries
type QueryHandler struct{}

func (h *QueryHandler) SupportsVerb(verb string) bool {
	switch Canonical(verb) {
	case "find", "contains", "pred", "succ", "len", "height":
		return true
	}
	return false
}

func (h *QueryHandler) Priority() int {
	return 2
}

func (h *QueryHandler) Run(s *Session, cmd *Command) (string, error) {
	verb := Canonical(cmd.Verb)

	switch verb {
	case "len":
		return strconv.Itoa(s.Tree.Len()), nil
	case "height":
		return strconv.Itoa(s.Tree.Height()), nil
	}

	if len(cmd.Args) != 1 {
		return "", cmd.usage()
	}
	key := cmd.Arg(0)

	switch verb {
	case "find":
		return s.Tree.Get(key)
	case "contains":
		return strconv.FormatBool(s.Tree.Contains(key)), nil
	case "pred":
		return orNone(s.Tree.Predecessor(key)), nil
	case "succ":
		return orNone(s.Tree.Successor(key)), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVerb, cmd.Verb)
}

func orNone(key string, ok bool) string {
	if !ok {
		return none
	}
	return key
}
