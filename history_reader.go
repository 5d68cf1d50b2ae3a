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
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// HistoryEntry holds the optional timestamp and the command
type HistoryEntry struct {
	Command   string
	Timestamp *time.Time
}

func newHistoryScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	// history files can carry very long one-liners
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	return scanner
}

// parseZshHistory reads extended zsh history lines of the form
// ": 1673291850:0;ls -la". Lines without the metadata prefix are kept as
// plain commands without a timestamp.
func parseZshHistory(r io.Reader) ([]HistoryEntry, error) {
	var history []HistoryEntry

	scanner := newHistoryScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, ": ") {
			history = append(history, HistoryEntry{Command: line})
			continue
		}

		// "", " 1673291850", "0;ls -la"
		parts := strings.SplitN(line, ":", 3)
		if len(parts) < 3 {
			continue
		}

		epoch, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
		if err != nil {
			history = append(history, HistoryEntry{Command: line})
			continue
		}
		t := time.Unix(epoch, 0)

		// "0;ls -la": elapsed time, then the command
		subParts := strings.SplitN(parts[2], ";", 2)
		if len(subParts) < 2 {
			history = append(history, HistoryEntry{Timestamp: &t})
			continue
		}
		history = append(history, HistoryEntry{Timestamp: &t, Command: subParts[1]})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return history, nil
}

// parseBashHistory reads bash history written with HISTTIMEFORMAT set,
// where a "#<epoch>" line precedes the command it timestamps.
func parseBashHistory(r io.Reader) ([]HistoryEntry, error) {
	var history []HistoryEntry
	var lastTimestamp *time.Time

	scanner := newHistoryScanner(r)
	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, "#") {
			epoch, err := strconv.ParseInt(strings.TrimSpace(strings.TrimPrefix(line, "#")), 10, 64)
			if err == nil {
				t := time.Unix(epoch, 0)
				lastTimestamp = &t
			} else {
				lastTimestamp = nil
			}
			continue
		}

		history = append(history, HistoryEntry{Timestamp: lastTimestamp, Command: line})
		// a timestamp applies to the next command only
		lastTimestamp = nil
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return history, nil
}

// detectCurrentShell detects the type of Unix shell: Bash, Zshell etc.
func detectCurrentShell() string {
	currentShellPath, ok := os.LookupEnv("SHELL")
	if !ok {
		return "bash"
	}
	// "/bin/zsh" -> "zsh"
	return filepath.Base(currentShellPath)
}

// readShellHistory reads the history file of the given shell from homeDir.
func readShellHistory(shell, homeDir string) ([]HistoryEntry, error) {
	var (
		name  string
		parse func(io.Reader) ([]HistoryEntry, error)
		hint  string
	)
	switch shell {
	case "zsh":
		name, parse, hint = ".zsh_history", parseZshHistory, "Run some commands in zsh to create it"
	case "bash":
		name, parse, hint = ".bash_history", parseBashHistory, "Run 'history -w' to create it"
	default:
		return nil, fmt.Errorf("unsupported shell %q: only bash and zsh history can be read", shell)
	}

	path := filepath.Join(homeDir, name)
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s history file %s not found. %s, then try again", shell, path, hint)
		}
		return nil, err
	}
	defer file.Close()

	history, err := parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return history, nil
}

// readHistory reads the current user's shell history.
func readHistory() ([]HistoryEntry, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return readShellHistory(detectCurrentShell(), homeDir)
}
