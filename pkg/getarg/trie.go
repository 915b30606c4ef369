// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package getarg

import (
	"cmp"
	"slices"
)

// noOption marks a trie node where no name terminates.
const noOption = -1

// edge links a node to the child reached by byte b.
type edge struct {
	b     byte
	child int32
}

type trieNode struct {
	edges []edge // sorted by b
	opt   int    // table position, or noOption
}

// trie maps long option names to table positions. Nodes live in a single
// arena and refer to each other by index; node 0 is the root.
type trie struct {
	nodes []trieNode
}

func (t *trie) reset() {
	t.nodes = append(t.nodes[:0], trieNode{opt: noOption})
}

func (t *trie) child(n int32, b byte) (int32, bool) {
	edges := t.nodes[n].edges
	i, ok := slices.BinarySearchFunc(edges, b, func(e edge, b byte) int {
		return cmp.Compare(e.b, b)
	})
	if !ok {
		return 0, false
	}
	return edges[i].child, true
}

// insert stores pos under name. It reports false if name is already present.
func (t *trie) insert(name string, pos int) bool {
	if len(t.nodes) == 0 {
		t.reset()
	}
	var n int32
	for i := 0; i < len(name); i++ {
		b := name[i]
		next, ok := t.child(n, b)
		if !ok {
			next = int32(len(t.nodes))
			t.nodes = append(t.nodes, trieNode{opt: noOption})
			edges := t.nodes[n].edges
			at, _ := slices.BinarySearchFunc(edges, b, func(e edge, b byte) int {
				return cmp.Compare(e.b, b)
			})
			t.nodes[n].edges = slices.Insert(edges, at, edge{b: b, child: next})
		}
		n = next
	}
	if t.nodes[n].opt != noOption {
		return false
	}
	t.nodes[n].opt = pos
	return true
}

// lookup returns the table position stored under name.
func (t *trie) lookup(name string) (int, bool) {
	if len(t.nodes) == 0 {
		return 0, false
	}
	var n int32
	for i := 0; i < len(name); i++ {
		next, ok := t.child(n, name[i])
		if !ok {
			return 0, false
		}
		n = next
	}
	if pos := t.nodes[n].opt; pos != noOption {
		return pos, true
	}
	return 0, false
}
