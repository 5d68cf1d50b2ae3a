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
	"github.com/patrickmn/go-cache"
)

// NewHelpCache creates a cache for rendered verb help pages
func NewHelpCache(cfg CacheConfig) *cache.Cache {
	return cache.New(cfg.HelpExpiration, cfg.HelpCleanup)
}

func CacheHelpPage(c *cache.Cache, verb string, helpTxt string) {
	// Set rather than Add so a re-render replaces a stale page
	c.Set(verb, helpTxt, cache.DefaultExpiration)
}

func GetHelpPage(c *cache.Cache, verb string) string {
	val, ok := c.Get(verb)
	if !ok {
		return ""
	}
	return val.(string)
}

// GetOrFillHelpPage returns the cached page for verb, rendering and
// caching it with render on a miss.
func GetOrFillHelpPage(c *cache.Cache, verb string, render func(string) string) string {
	if page := GetHelpPage(c, verb); page != "" {
		return page
	}
	page := render(verb)
	CacheHelpPage(c, verb, page)
	return page
}
