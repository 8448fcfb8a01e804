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
	"bytes"
	"fmt"
)

// Validate walks the whole tree and checks its structural invariants:
// sibling edges start with distinct bytes, every edge is non-empty, every
// root to leaf path spells exactly one suffix and every suffix has exactly
// one leaf. It is linear in the number of nodes times the tree depth and
// meant for tests and diagnostics.
func (t *Tree) Validate() error {
	if t == nil || len(t.nodes) == 0 {
		return fmt.Errorf("%w: tree not built", ErrInvariant)
	}
	if t.nodes[rootID].edge.len != 0 {
		return fmt.Errorf("%w: root has an incoming edge", ErrInvariant)
	}

	seen := make([]bool, len(t.text))
	visited := 1
	type frame struct {
		id   nodeID
		path []span
	}
	stack := []frame{{id: rootID}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &t.nodes[f.id]

		if t.isLeaf(f.id) {
			if n.kids != nil && n.kids.numChildren() > 0 {
				return fmt.Errorf("%w: leaf %d has children", ErrInvariant, n.suffix)
			}
			if err := t.checkLeafPath(n.suffix, f.path); err != nil {
				return err
			}
			if seen[n.suffix] {
				return fmt.Errorf("%w: suffix %d indexed twice", ErrInvariant, n.suffix)
			}
			seen[n.suffix] = true
			continue
		}
		if f.id != rootID && n.suffix != noSuffix {
			return fmt.Errorf("%w: branch node carries suffix %d", ErrInvariant, n.suffix)
		}
		if n.kids == nil || (f.id != rootID && n.kids.numChildren() < 2) {
			return fmt.Errorf("%w: inner node with edge %q does not branch", ErrInvariant, t.label(n.edge))
		}

		var keys [256]bool
		var err error
		n.kids.iter(func(c byte, cid nodeID) bool {
			visited++
			ce := t.nodes[cid].edge
			switch {
			case ce.len == 0:
				err = fmt.Errorf("%w: empty edge under key %q", ErrInvariant, c)
			case ce.end() > uint32(len(t.text)):
				err = fmt.Errorf("%w: edge %d+%d out of range", ErrInvariant, ce.off, ce.len)
			case t.text[ce.off] != c:
				err = fmt.Errorf("%w: edge %q filed under key %q", ErrInvariant, t.label(ce), c)
			case keys[c]:
				err = fmt.Errorf("%w: two edges start with %q", ErrInvariant, c)
			}
			if err != nil {
				return false
			}
			keys[c] = true
			path := append(f.path[:len(f.path):len(f.path)], ce)
			stack = append(stack, frame{id: cid, path: path})
			return true
		})
		if err != nil {
			return err
		}
	}

	if visited != len(t.nodes) {
		return fmt.Errorf("%w: %d of %d nodes reachable", ErrInvariant, visited, len(t.nodes))
	}
	for i, ok := range seen {
		if !ok {
			return fmt.Errorf("%w: suffix %d missing", ErrInvariant, i)
		}
	}
	return nil
}

// The edges on the way to a leaf have to spell out its suffix exactly.
func (t *Tree) checkLeafPath(suffix int32, path []span) error {
	if suffix < 0 || int(suffix) >= len(t.text) {
		return fmt.Errorf("%w: leaf label %d out of range", ErrInvariant, suffix)
	}
	want := t.text[suffix:]
	for _, e := range path {
		l := t.label(e)
		if !bytes.HasPrefix(want, l) {
			return fmt.Errorf("%w: path to leaf %d does not spell its suffix", ErrInvariant, suffix)
		}
		want = want[len(l):]
	}
	if len(want) != 0 {
		return fmt.Errorf("%w: path to leaf %d is %d bytes short", ErrInvariant, suffix, len(want))
	}
	return nil
}
