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
	"runtime"
	"slices"
	"strings"

	markdown "github.com/MichaelMure/go-term-markdown"

	"github.com/cybrota/orderly/script"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Orderly %s**

An ordered map you can poke at. Orderly keeps keys in a self-balancing AVL tree
and lets you drive it from scripts, an interactive explorer or your shell history.

Built with Go %s

# 1. Commands
* **explore**: interactive tree explorer (default command)
* **exec FILE**: run a script of tree verbs
* **history**: rank your shell history by frequency and recency
* **stress**: randomised insert/remove rounds with invariant checks
* **peak**, **peak2d**, **heapsort**, **bsearch**: the companion algorithms
* **settings**: show or create ~/.orderly.yaml

# 2. Script verbs
%s

Keys are ordered naturally: integers numerically first, then everything else lexically.

# 3. Supported Shells for history
* Bash (set HISTTIMEFORMAT to record timestamps)
* Zshell (Zsh)

# Please be aware
* Copy to clipboard on Linux or Unix requires 'xclip' or 'xsel' to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version(), verbList())
	result := markdown.Render(message, 80, 3)
	return string(result)
}

// verbList renders one bullet per canonical verb
func verbList() string {
	verbs := make([]string, 0, len(script.Descriptions))
	for verb := range script.Descriptions {
		verbs = append(verbs, verb)
	}
	slices.Sort(verbs)

	var b strings.Builder
	for _, verb := range verbs {
		fmt.Fprintf(&b, "* `%s`: %s\n", script.Synopsis[verb], script.Descriptions[verb])
	}
	return b.String()
}

// verbHelpMarkdown returns the markdown help page for a script verb.
func verbHelpMarkdown(verb string) string {
	canonical := script.Canonical(strings.ToLower(verb))
	desc, ok := script.Descriptions[canonical]
	if !ok {
		return fmt.Sprintf("# %s\n\nUnknown verb. Known verbs:\n\n%s", verb, verbList())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", canonical)
	fmt.Fprintf(&b, "```\n%s\n```\n\n%s\n", script.Synopsis[canonical], desc)

	var aliases []string
	for alias, target := range script.Aliases {
		if target == canonical {
			aliases = append(aliases, "`"+alias+"`")
		}
	}
	if len(aliases) > 0 {
		slices.Sort(aliases)
		fmt.Fprintf(&b, "\nAlso available as %s.\n", strings.Join(aliases, ", "))
	}
	return b.String()
}
