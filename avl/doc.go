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

// Package avl implements an ordered map on top of a height-balanced
// binary search tree.
//
// Search, insertion, removal and the predecessor/successor queries all
// run in O(log n). Mutations record the path taken from the root and
// walk it back bottom-up, refreshing cached heights and rotating any
// node whose subtrees differ in height by more than one.
//
// Nodes keep no parent pointers; every node is owned by exactly one
// parent (or by the tree for the root).
//
// A Tree is not safe for concurrent use. Iterators hold references into
// the live structure, so the tree must not be mutated while an
// iteration is in progress.
package avl
