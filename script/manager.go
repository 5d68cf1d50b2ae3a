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
	"bufio"
	"context"
	"fmt"
	"io"
	"slices"
)

// Manager dispatches script lines to the registered handlers
type Manager struct {
	handlers []Handler
}

// NewManager creates a manager with every built-in handler registered
func NewManager() *Manager {
	manager := &Manager{}

	manager.RegisterHandler(&MutateHandler{})
	manager.RegisterHandler(&QueryHandler{})
	manager.RegisterHandler(&TraverseHandler{})
	manager.RegisterHandler(&InspectHandler{})

	return manager
}

// RegisterHandler adds a handler, keeping the list in priority order
func (m *Manager) RegisterHandler(h Handler) {
	m.handlers = append(m.handlers, h)
	slices.SortStableFunc(m.handlers, func(a, b Handler) int {
		return a.Priority() - b.Priority()
	})
}

// Exec runs a single line against the session and returns its output.
// Blank and comment lines produce no output.
func (m *Manager) Exec(s *Session, line string) (string, error) {
	cmd, err := ParseLine(line)
	if err != nil || cmd == nil {
		return "", err
	}

	for _, h := range m.handlers {
		if h.SupportsVerb(cmd.Verb) {
			return h.Run(s, cmd)
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVerb, cmd.Verb)
}

// Run executes every line read from r, writing non-empty output to w. It
// stops at the first failing line and reports its 1-based number.
func (m *Manager) Run(ctx context.Context, s *Session, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo += 1
		if err := ctx.Err(); err != nil {
			return err
		}

		out, err := m.Exec(s, scanner.Text())
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if out != "" {
			if _, err := fmt.Fprintln(w, out); err != nil {
				return err
			}
		}
	}
	return scanner.Err()
}
