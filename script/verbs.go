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

// Synopsis maps every verb to its usage line.
var Synopsis = map[string]string{
	"insert":    "insert KEY [VALUE]",
	"set":       "set KEY [VALUE]",
	"remove":    "remove KEY",
	"delete":    "delete KEY",
	"clear":     "clear",
	"find":      "find KEY",
	"get":       "get KEY",
	"contains":  "contains KEY",
	"has":       "has KEY",
	"pred":      "pred KEY",
	"succ":      "succ KEY",
	"len":       "len",
	"height":    "height",
	"keys":      "keys",
	"values":    "values",
	"items":     "items",
	"inorder":   "inorder",
	"preorder":  "preorder",
	"postorder": "postorder",
	"print":     "print",
	"check":     "check",
	"snapshot":  "snapshot NAME",
	"restore":   "restore NAME",
	"snapshots": "snapshots",
}

// Descriptions holds a one-line explanation per canonical verb. Aliases
// share the entry of the verb they stand for.
var Descriptions = map[string]string{
	"insert":    "Store VALUE under KEY, replacing any previous value. VALUE defaults to KEY.",
	"remove":    "Delete KEY and print the value it held.",
	"clear":     "Remove every key.",
	"find":      "Print the value stored under KEY.",
	"contains":  "Print true when KEY is present.",
	"pred":      "Print the greatest key not above KEY.",
	"succ":      "Print the smallest key not below KEY.",
	"len":       "Print the number of keys.",
	"height":    "Print the height of the tree.",
	"keys":      "Print every key in ascending order.",
	"values":    "Print every value in key order.",
	"items":     "Print KEY=VALUE pairs in key order.",
	"inorder":   "Print keys in in-order.",
	"preorder":  "Print keys in pre-order.",
	"postorder": "Print keys in post-order.",
	"print":     "Draw the tree sideways with node heights.",
	"check":     "Verify ordering, heights and balance.",
	"snapshot":  "Save a copy of the tree under NAME.",
	"restore":   "Replace the tree with the copy saved under NAME.",
	"snapshots": "Print the saved snapshot names in sorted order.",
}

// Aliases maps alternative verbs to their canonical form.
var Aliases = map[string]string{
	"set":    "insert",
	"delete": "remove",
	"get":    "find",
	"has":    "contains",
}

// Canonical returns the canonical name of verb.
func Canonical(verb string) string {
	if c, ok := Aliases[verb]; ok {
		return c
	}
	return verb
}
