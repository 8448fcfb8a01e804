// Copyright 2026 The NATS Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sfxtree

import (
	"slices"
)

// Contains reports whether query occurs anywhere in the text.
// The empty query is always contained.
func (t *Tree) Contains(query []byte) bool {
	if t == nil {
		return false
	}
	_, _, ok := t.followPath(query)
	return ok
}

// IsSuffix reports whether query is a suffix of the text.
func (t *Tree) IsSuffix(query []byte) bool {
	if t == nil {
		return false
	}
	id, depth, ok := t.followPath(query)
	if !ok {
		return false
	}
	// The terminator has to come right after the query.
	if e := t.nodes[id].edge; depth < int(e.len) {
		return t.text[int(e.off)+depth] == t.term
	}
	kids := t.nodes[id].kids
	return kids != nil && kids.findChild(t.term) != nil
}

// Occurrences returns the offsets at which query occurs, ascending.
// Returns nil if query does not occur. The empty query occurs at every
// offset of the terminated text, including the terminator itself.
func (t *Tree) Occurrences(query []byte) []int {
	if t == nil {
		return nil
	}
	id, _, ok := t.followPath(query)
	if !ok {
		return nil
	}
	var offsets []int
	t.collectLeaves(id, func(suffix int32) {
		offsets = append(offsets, int(suffix))
	})
	slices.Sort(offsets)
	return offsets
}

// Count returns the number of times query occurs.
func (t *Tree) Count(query []byte) int {
	if t == nil {
		return 0
	}
	id, _, ok := t.followPath(query)
	if !ok {
		return 0
	}
	var count int
	t.collectLeaves(id, func(_ int32) { count++ })
	return count
}

// Walk visits the suffixes in lexicographic order, with the terminator
// ordering before every other byte. The callback can return false to terminate the walk.
func (t *Tree) Walk(cb func(offset int) bool) {
	if t == nil || cb == nil {
		return
	}
	type entry struct {
		c  byte
		id nodeID
	}
	var _kids [256]entry
	stack := []nodeID{rootID}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if t.isLeaf(id) {
			if !cb(int(t.nodes[id].suffix)) {
				return
			}
			continue
		}
		kids := _kids[:0]
		t.nodes[id].kids.iter(func(c byte, cid nodeID) bool {
			kids = append(kids, entry{c, cid})
			return true
		})
		// Sorted descending so the smallest ends up on top of the stack.
		slices.SortFunc(kids, func(a, b entry) int {
			return t.compareKeys(b.c, a.c)
		})
		for _, k := range kids {
			stack = append(stack, k.id)
		}
	}
}

// SuffixArray returns the starting offsets of all suffixes of the
// terminated text in lexicographic order.
func (t *Tree) SuffixArray() []int {
	if t == nil {
		return nil
	}
	sa := make([]int, 0, t.leaves)
	t.Walk(func(offset int) bool {
		sa = append(sa, offset)
		return true
	})
	return sa
}

// Internal methods

// Follow the path spelled by query from the root. Returns the node whose
// incoming edge the match ends on and how many bytes of that edge matched.
// The empty query matches at the root.
func (t *Tree) followPath(query []byte) (nodeID, int, bool) {
	cur := rootID
	for len(query) > 0 {
		kids := t.nodes[cur].kids
		if kids == nil {
			return noNode, 0, false
		}
		slot := kids.findChild(query[0])
		if slot == nil {
			return noNode, 0, false
		}
		child := *slot
		label := t.label(t.nodes[child].edge)
		cpl := commonPrefixLen(label, query)
		if cpl >= len(query) {
			// Query ends on this edge.
			return child, cpl, true
		}
		if cpl < len(label) {
			// Diverged in the middle of the edge.
			return noNode, 0, false
		}
		query = query[cpl:]
		cur = child
	}
	return cur, int(t.nodes[cur].edge.len), true
}

// Collect the suffix labels of every leaf at or below id.
// Uses an explicit stack since depth is bounded only by the longest repeat.
func (t *Tree) collectLeaves(id nodeID, cb func(suffix int32)) {
	stack := []nodeID{id}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if t.isLeaf(id) {
			cb(t.nodes[id].suffix)
			continue
		}
		t.nodes[id].kids.iter(func(_ byte, cid nodeID) bool {
			stack = append(stack, cid)
			return true
		})
	}
}

// Order first bytes with the terminator lowest.
func (t *Tree) compareKeys(a, b byte) int {
	switch {
	case a == b:
		return 0
	case a == t.term:
		return -1
	case b == t.term:
		return 1
	case a < b:
		return -1
	default:
		return 1
	}
}
