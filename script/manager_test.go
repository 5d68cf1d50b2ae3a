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
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cybrota/orderly/avl"
)

func TestCommand(t *testing.T) {
	cmd, err := ParseLine(`  SET "two words" 'a value'  `)
	if err != nil {
		t.Fatal(err)
	}

	if cmd.Verb != "set" {
		t.Errorf("Expected Verb to be 'set', got '%s'", cmd.Verb)
	}
	if !cmd.HasArgs(2) || cmd.HasArgs(3) {
		t.Errorf("Expected exactly 2 arguments, got %v", cmd.Args)
	}
	if cmd.Arg(0) != "two words" || cmd.Arg(1) != "a value" {
		t.Errorf("Unexpected arguments %q", cmd.Args)
	}
	if cmd.Arg(5) != "" {
		t.Errorf("Expected empty string for missing argument")
	}
}

func TestParseLineSkipsBlankAndComments(t *testing.T) {
	for _, line := range []string{"", "   ", "# insert 1", "\t# note"} {
		cmd, err := ParseLine(line)
		if err != nil || cmd != nil {
			t.Errorf("ParseLine(%q) = %v, %v; want nil, nil", line, cmd, err)
		}
	}
	if _, err := ParseLine(`insert "unterminated`); err == nil {
		t.Error("expected error for unterminated quote")
	}
}

func TestExec(t *testing.T) {
	m := NewManager()
	s := NewSession()

	for _, line := range []string{"insert 20 twenty", "insert 10", "set 30 thirty", "insert 5 five"} {
		if _, err := m.Exec(s, line); err != nil {
			t.Fatalf("Exec(%q): %v", line, err)
		}
	}

	tests := []struct {
		Line     string
		Expected string
	}{
		{Line: "find 20", Expected: "twenty"},
		{Line: "get 10", Expected: "10"},
		{Line: "contains 30", Expected: "true"},
		{Line: "has 31", Expected: "false"},
		{Line: "pred 25", Expected: "20"},
		{Line: "succ 25", Expected: "30"},
		{Line: "pred 1", Expected: "<none>"},
		{Line: "succ 99", Expected: "<none>"},
		{Line: "pred 10", Expected: "10"},
		{Line: "len", Expected: "4"},
		{Line: "height", Expected: "3"},
		{Line: "keys", Expected: "5 10 20 30"},
		{Line: "inorder", Expected: "5 10 20 30"},
		{Line: "preorder", Expected: "20 10 5 30"},
		{Line: "postorder", Expected: "5 10 30 20"},
		{Line: "values", Expected: "five 10 twenty thirty"},
		{Line: "items", Expected: "5=five\n10=10\n20=twenty\n30=thirty"},
		{Line: "check", Expected: "ok"},
		{Line: "# comment", Expected: ""},
	}

	for _, tc := range tests {
		t.Run(tc.Line, func(t *testing.T) {
			got, err := m.Exec(s, tc.Line)
			if err != nil {
				t.Fatalf("Exec(%q): %v", tc.Line, err)
			}
			if got != tc.Expected {
				t.Errorf("Exec(%q) = %q, want %q", tc.Line, got, tc.Expected)
			}
		})
	}
}

func TestExecErrors(t *testing.T) {
	m := NewManager()
	s := NewSession()

	tests := []struct {
		Line     string
		Expected error
	}{
		{Line: "frobnicate 1", Expected: ErrUnknownVerb},
		{Line: "insert", Expected: ErrUsage},
		{Line: "insert 1 2 3", Expected: ErrUsage},
		{Line: "remove", Expected: ErrUsage},
		{Line: "find", Expected: ErrUsage},
		{Line: "keys extra", Expected: ErrUsage},
		{Line: "snapshot", Expected: ErrUsage},
		{Line: "remove 7", Expected: avl.ErrNotFound},
		{Line: "find 7", Expected: avl.ErrNotFound},
		{Line: "restore nope", Expected: ErrUnknownSnapshot},
	}

	for _, tc := range tests {
		t.Run(tc.Line, func(t *testing.T) {
			if _, err := m.Exec(s, tc.Line); !errors.Is(err, tc.Expected) {
				t.Errorf("Exec(%q) error = %v, want %v", tc.Line, err, tc.Expected)
			}
		})
	}

	_, err := m.Exec(s, "insert")
	if err == nil || !strings.Contains(err.Error(), "insert KEY [VALUE]") {
		t.Errorf("usage error should carry the synopsis, got %v", err)
	}
}

func TestRemoveReturnsValue(t *testing.T) {
	m := NewManager()
	s := NewSession()
	if _, err := m.Exec(s, "insert k v"); err != nil {
		t.Fatal(err)
	}
	got, err := m.Exec(s, "delete k")
	if err != nil || got != "v" {
		t.Errorf("delete k = %q, %v", got, err)
	}
	if s.Tree.Len() != 0 {
		t.Errorf("tree not empty after delete")
	}
}

func TestSnapshotRestore(t *testing.T) {
	m := NewManager()
	s := NewSession()

	script := []string{
		"insert 1", "insert 2", "snapshot base",
		"insert 3", "remove 1", "restore base",
	}
	for _, line := range script {
		if _, err := m.Exec(s, line); err != nil {
			t.Fatalf("Exec(%q): %v", line, err)
		}
	}
	if got, _ := m.Exec(s, "keys"); got != "1 2" {
		t.Errorf("keys after restore = %q, want %q", got, "1 2")
	}

	// snapshots survive changes made after a restore
	if _, err := m.Exec(s, "clear"); err != nil {
		t.Fatal(err)
	}
	if err := s.Restore("base"); err != nil {
		t.Fatal(err)
	}
	if s.Tree.Len() != 2 {
		t.Errorf("Len() = %d after second restore", s.Tree.Len())
	}
	if _, err := m.Exec(s, "snapshot after"); err != nil {
		t.Fatal(err)
	}
	if got, _ := m.Exec(s, "snapshots"); got != "after base" {
		t.Errorf("snapshots = %q, want %q", got, "after base")
	}
	if _, err := m.Exec(s, "snapshots extra"); !errors.Is(err, ErrUsage) {
		t.Errorf("snapshots with an argument: %v", err)
	}
}

func TestRun(t *testing.T) {
	input := strings.Join([]string{
		"# build a small tree",
		"insert b",
		"insert a",
		"insert 10",
		"insert 9",
		"",
		"keys",
		"len",
	}, "\n")

	var out bytes.Buffer
	if err := NewManager().Run(context.Background(), NewSession(), strings.NewReader(input), &out); err != nil {
		t.Fatal(err)
	}
	if want := "9 10 a b\n4\n"; out.String() != want {
		t.Errorf("output %q, want %q", out.String(), want)
	}
}

func TestRunReportsFailingLine(t *testing.T) {
	input := "insert 1\nlen\nfind 2\nlen\n"

	var out bytes.Buffer
	err := NewManager().Run(context.Background(), NewSession(), strings.NewReader(input), &out)
	if !errors.Is(err, avl.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "line 3:") {
		t.Errorf("error %q should name line 3", err)
	}
	if out.String() != "1\n" {
		t.Errorf("output before failure %q", out.String())
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewSession()
	err := NewManager().Run(ctx, s, strings.NewReader("insert 1\n"), &bytes.Buffer{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if s.Tree.Len() != 0 {
		t.Error("line ran after cancellation")
	}
}

type echoHandler struct{}

func (h *echoHandler) SupportsVerb(verb string) bool { return verb == "len" || verb == "echo" }
func (h *echoHandler) Priority() int                 { return 0 }
func (h *echoHandler) Run(s *Session, cmd *Command) (string, error) {
	return cmd.FullName, nil
}

func TestRegisterHandlerPriority(t *testing.T) {
	m := NewManager()
	m.RegisterHandler(&echoHandler{})

	got, err := m.Exec(NewSession(), "len")
	if err != nil || got != "len" {
		t.Errorf("higher priority handler did not win: %q, %v", got, err)
	}
}
