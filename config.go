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
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const configFileName = ".orderly.yaml"

type HistoryConfig struct {
	EnableFuzzing bool `yaml:"enable_fuzzing"`
	Limit         int  `yaml:"limit"`
}

type StressConfig struct {
	Keys    int `yaml:"keys"`
	Deletes int `yaml:"deletes"`
	Range   int `yaml:"range"`
	Rounds  int `yaml:"rounds"`
}

type ExploreConfig struct {
	Traversal string `yaml:"traversal"`
}

type CacheConfig struct {
	HelpExpiration time.Duration `yaml:"help_expiration"`
	HelpCleanup    time.Duration `yaml:"help_cleanup"`
}

type Config struct {
	History HistoryConfig `yaml:"history"`
	Stress  StressConfig  `yaml:"stress"`
	Explore ExploreConfig `yaml:"explore"`
	Cache   CacheConfig   `yaml:"cache"`
}

var defaultConfig = Config{
	History: HistoryConfig{
		EnableFuzzing: false,
		Limit:         20,
	},
	Stress: StressConfig{
		Keys:    2000,
		Deletes: 1500,
		Range:   10000,
		Rounds:  5,
	},
	Explore: ExploreConfig{
		Traversal: "inorder",
	},
	Cache: CacheConfig{
		HelpExpiration: 30 * time.Minute,
		HelpCleanup:    5 * time.Minute,
	},
}

var traversals = map[string]bool{"inorder": true, "preorder": true, "postorder": true}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads ~/.orderly.yaml. Anything missing, unreadable or
// malformed falls back to defaultConfig.
func LoadConfig() *Config {
	configPath, err := getConfigPath()
	if err != nil {
		return defaults()
	}

	config, err := loadConfigFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("%sFailed to load configuration: %v. Using default settings.%s", Warning, err, Reset)
		}
		return defaults()
	}
	return config
}

// loadConfigFile parses the file at path over a copy of the defaults, so
// keys absent from the file keep their default values.
func loadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := defaults()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}
	return config, nil
}

func defaults() *Config {
	c := defaultConfig
	return &c
}

func (c *Config) validate() error {
	if c.History.Limit < 0 {
		return fmt.Errorf("history.limit must not be negative")
	}
	if err := c.Stress.validate(); err != nil {
		return err
	}
	if !traversals[c.Explore.Traversal] {
		return fmt.Errorf("explore.traversal %q is not one of inorder, preorder, postorder", c.Explore.Traversal)
	}
	if c.Cache.HelpExpiration <= 0 {
		return fmt.Errorf("cache.help_expiration must be positive")
	}
	return nil
}

func (s StressConfig) validate() error {
	if s.Keys < 0 || s.Deletes < 0 || s.Rounds < 0 {
		return fmt.Errorf("stress counts must not be negative")
	}
	if s.Range <= 0 {
		return fmt.Errorf("stress.range must be positive")
	}
	return nil
}

func createDefaultConfigFile(path string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func displaySettings() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	created := false
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Printf("Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(configPath); err != nil {
			return err
		}
		created = true
	}

	config := LoadConfig()

	fmt.Printf("%sOrderly Configuration Settings%s\n", Info, Reset)
	fmt.Printf("══════════════════════════════\n\n")

	if created {
		fmt.Printf("Config file: %s (newly created)\n\n", configPath)
	} else {
		fmt.Printf("Config file: %s\n\n", configPath)
	}

	matching := "prefix (commands starting with the query)"
	if config.History.EnableFuzzing {
		matching = "fuzzy (substring anywhere in the command)"
	}

	fmt.Printf("%sHistory:%s\n", Green, Reset)
	fmt.Printf("  • enable_fuzzing: %t  %s\n", config.History.EnableFuzzing, matching)
	fmt.Printf("  • limit: %d\n\n", config.History.Limit)

	fmt.Printf("%sStress:%s\n", Green, Reset)
	fmt.Printf("  • keys: %d  deletes: %d  range: %d  rounds: %d\n\n",
		config.Stress.Keys, config.Stress.Deletes, config.Stress.Range, config.Stress.Rounds)

	fmt.Printf("%sExplore:%s\n", Green, Reset)
	fmt.Printf("  • traversal: %s\n\n", config.Explore.Traversal)

	fmt.Printf("%sCache:%s\n", Green, Reset)
	fmt.Printf("  • help_expiration: %s  help_cleanup: %s\n", config.Cache.HelpExpiration, config.Cache.HelpCleanup)

	return nil
}
