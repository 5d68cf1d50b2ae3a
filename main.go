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
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cybrota/orderly/script"
)

func main() {
	InitializeColors()

	banner := fmt.Sprintf(`
orderly: an AVL ordered map you can script, explore and stress [Version: %s%s%s]

Copyright @ Naren Yellavula
`, Green, version, Reset)

	config := LoadConfig()

	var cmdExplore = &cobra.Command{
		Use:   "explore",
		Short: "Open the interactive tree explorer",
		Long:  fmt.Sprintf("%s\n%s", banner, "Explore opens a terminal UI that runs script verbs against a live tree"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return explore(cmd, config)
		},
	}
	addExploreFlags(cmdExplore)

	var cmdExec = &cobra.Command{
		Use:   "exec FILE",
		Short: "Run a script of tree verbs",
		Long:  fmt.Sprintf("%s\n%s", banner, "Exec runs every line of FILE (or stdin when FILE is -) against a fresh tree"),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session := script.NewSession()
			if err := runScriptFile(cmd.Context(), session, args[0]); err != nil {
				return err
			}
			if printTree, _ := cmd.Flags().GetBool("print"); printTree {
				fmt.Println(session.Tree.String())
			}
			return nil
		},
	}
	cmdExec.Flags().Bool("print", false, "print the final tree after the script finishes")

	var cmdHistory = &cobra.Command{
		Use:   "history",
		Short: "Rank shell history by frequency and recency",
		Long:  fmt.Sprintf("%s\n%s", banner, "History loads your shell history into an AVL tree and suggests the best matches"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			history, err := readHistory()
			if err != nil {
				return fmt.Errorf("error reading history: %w", err)
			}
			index := NewHistoryIndex(history)

			if has, _ := cmd.Flags().GetString("has"); has != "" {
				meta, ok := index.Lookup(has)
				if !ok {
					fmt.Printf("%q is not in your history\n", has)
					return nil
				}
				fmt.Printf("%q ran %d times", has, meta.Frequency)
				if meta.Timestamp != nil {
					fmt.Printf(", last on %s", meta.Timestamp.Format("Mon, 02 Jan 2006 15:04"))
				}
				fmt.Println()
				return nil
			}

			match, _ := cmd.Flags().GetString("match")
			limit, _ := cmd.Flags().GetInt("limit")
			if !cmd.Flags().Changed("limit") {
				limit = config.History.Limit
			}

			var lines []string
			for _, ranked := range index.Suggest(match, config.History.EnableFuzzing, limit) {
				lines = append(lines, ranked.Command)
			}
			fmt.Println(strings.Join(lines, "\n"))
			return nil
		},
	}
	cmdHistory.Flags().String("match", "", "match string prefix to look in history")
	cmdHistory.Flags().String("has", "", "report whether this exact command is in history")
	cmdHistory.Flags().Int("limit", 0, "maximum number of suggestions (default from settings)")

	var cmdStress = &cobra.Command{
		Use:   "stress",
		Short: "Run randomised insert/remove rounds with invariant checks",
		Long:  fmt.Sprintf("%s\n%s", banner, "Stress inserts and removes random keys, validating the tree after every operation"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Stress
			flags := cmd.Flags()
			if flags.Changed("keys") {
				cfg.Keys, _ = flags.GetInt("keys")
			}
			if flags.Changed("deletes") {
				cfg.Deletes, _ = flags.GetInt("deletes")
			}
			if flags.Changed("range") {
				cfg.Range, _ = flags.GetInt("range")
			}
			if flags.Changed("rounds") {
				cfg.Rounds, _ = flags.GetInt("rounds")
			}
			seed, _ := flags.GetInt64("seed")
			if !flags.Changed("seed") {
				seed = time.Now().UnixNano()
			}

			report, err := runStress(cfg, seed, os.Stderr)
			if err != nil {
				return fmt.Errorf("stress failed with seed %d: %w", seed, err)
			}
			fmt.Printf("%sAll invariants held%s: %d rounds, %d inserts, %d removes, max height %d (seed %d)\n",
				Green, Reset, report.Rounds, report.Inserts, report.Removes, report.MaxHeight, seed)
			return nil
		},
	}
	cmdStress.Flags().Int("keys", 0, "distinct keys inserted per round")
	cmdStress.Flags().Int("deletes", 0, "keys removed per round")
	cmdStress.Flags().Int("range", 0, "keys are drawn from [0, range)")
	cmdStress.Flags().Int("rounds", 0, "number of rounds")
	cmdStress.Flags().Int64("seed", 0, "random seed (default: current time)")

	var cmdPeak = &cobra.Command{
		Use:   "peak NUMS...",
		Short: "Find a peak in a list of integers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseNumbers(args)
			if err != nil {
				return err
			}
			out, err := findPeak1D(nums)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}

	var cmdPeak2D = &cobra.Command{
		Use:   "peak2d FILE",
		Short: "Find a peak in a matrix read from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMatrix(args[0])
			if err != nil {
				return err
			}
			out, err := findPeak2D(m)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}

	var cmdHeapsort = &cobra.Command{
		Use:   "heapsort NUMS...",
		Short: "Sort integers through the priority queue",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseNumbers(args)
			if err != nil {
				return err
			}
			sorted, err := heapSort(nums)
			if err != nil {
				return err
			}
			fmt.Println(strings.Trim(fmt.Sprint(sorted), "[]"))
			return nil
		},
	}

	var cmdBsearch = &cobra.Command{
		Use:   "bsearch KEY NUMS...",
		Short: "Binary search for KEY among the given integers",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%q is not an integer", args[0])
			}
			nums, err := parseNumbers(args[1:])
			if err != nil {
				return err
			}
			fmt.Println(searchNumbers(key, nums))
			return nil
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Orderly usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show Orderly settings, creating ~/.orderly.yaml if missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings()
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Orderly version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:          "orderly",
		Version:      version,
		Long:         banner,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to explore when no subcommand is provided
			return explore(cmd, config)
		},
	}
	addExploreFlags(rootCmd)

	rootCmd.AddCommand(cmdExplore, cmdExec, cmdHistory, cmdStress, cmdPeak, cmdPeak2D,
		cmdHeapsort, cmdBsearch, cmdUsage, cmdSettings, cmdVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func addExploreFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("history", false, "preload shell history commands as keys")
	cmd.Flags().String("script", "", "run a script file before opening the explorer")
}

func explore(cmd *cobra.Command, config *Config) error {
	session := script.NewSession()

	if withHistory, _ := cmd.Flags().GetBool("history"); withHistory {
		history, err := readHistory()
		if err != nil {
			log.Printf("%sSkipping history: %v%s", Warning, err, Reset)
		} else {
			for command, meta := range buildHistoryTree(history).All() {
				session.Tree.Insert(command, strconv.Itoa(meta.Frequency))
			}
		}
	}

	if path, _ := cmd.Flags().GetString("script"); path != "" {
		if err := runScriptFile(cmd.Context(), session, path); err != nil {
			return err
		}
	}

	return runExplore(session, config)
}

// runScriptFile runs the script at path, or stdin when path is "-".
func runScriptFile(ctx context.Context, session *script.Session, path string) error {
	in := os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	if err := script.NewManager().Run(ctx, session, in, os.Stdout); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
