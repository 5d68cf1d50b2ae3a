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

// Package script interprets line-oriented commands against an ordered map
// session. Each line is a verb followed by its arguments; handlers are
// tried in priority order and the first that supports the verb runs it.
package script

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-shellwords"
)

var (
	ErrUnknownVerb = errors.New("unknown verb")
	ErrUsage       = errors.New("usage")
)

// Handler runs one family of verbs against a session
type Handler interface {
	Run(s *Session, cmd *Command) (string, error)
	SupportsVerb(verb string) bool
	Priority() int // Lower number = higher priority
}

// Command represents a parsed script line
type Command struct {
	Parts    []string
	Verb     string
	Args     []string
	FullName string
}

// NewCommand creates a new Command from its parts. The verb is lower-cased.
func NewCommand(parts []string) *Command {
	if len(parts) == 0 {
		return &Command{Parts: parts}
	}

	return &Command{
		Parts:    parts,
		Verb:     strings.ToLower(parts[0]),
		Args:     parts[1:],
		FullName: strings.Join(parts, " "),
	}
}

// HasArgs checks if command has at least n arguments
func (c *Command) HasArgs(n int) bool {
	return len(c.Args) >= n
}

// Arg returns the nth argument (0-indexed)
func (c *Command) Arg(n int) string {
	if n >= len(c.Args) {
		return ""
	}
	return c.Args[n]
}

// usage builds an ErrUsage error carrying the verb's synopsis.
func (c *Command) usage() error {
	if synopsis, ok := Synopsis[c.Verb]; ok {
		return fmt.Errorf("%w: %s", ErrUsage, synopsis)
	}
	return fmt.Errorf("%w: %s", ErrUsage, c.Verb)
}

// ParseLine splits a script line into a Command. Blank lines and lines
// starting with '#' yield nil.
func ParseLine(line string) (*Command, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, nil
	}

	parts, err := shellwords.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("failed to parse line %q: %w", trimmed, err)
	}
	if len(parts) == 0 {
		return nil, nil
	}
	return NewCommand(parts), nil
}
