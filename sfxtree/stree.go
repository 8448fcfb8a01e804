// Copyright 2023-2026 The NATS Authors
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
	"math"
)

const (
	// DefaultTerminator is appended to the text unless WithTerminator says otherwise.
	DefaultTerminator byte = '$'

	// MaxTextLen is the longest text Build will index. Node ids are int32 and a
	// tree over n bytes needs at most 2n+1 nodes.
	MaxTextLen = math.MaxInt32/2 - 1
)

// Tree is a compressed suffix tree over a single text.
// Edges are labeled with ranges of the text, so the tree only holds
// O(number of suffixes) nodes. The tree is built once by Build and is
// read-only afterwards, so any number of goroutines may query it.
type Tree struct {
	text   []byte
	nodes  []node
	leaves int
	term   byte
}

// Option configures Build.
type Option func(*Tree)

// WithTerminator sets the byte appended to the text. It must not occur in the text.
func WithTerminator(c byte) Option {
	return func(t *Tree) { t.term = c }
}

// Build copies text, appends the terminator and inserts every suffix,
// including the lone terminator, into a new tree.
func Build(text []byte, opts ...Option) (*Tree, error) {
	t := &Tree{term: DefaultTerminator}
	for _, opt := range opts {
		opt(t)
	}
	if len(text) > MaxTextLen {
		return nil, ErrTextTooLarge
	}
	// Every suffix must end distinctly, otherwise some would never reach a leaf.
	if bytes.IndexByte(text, t.term) >= 0 {
		return nil, ErrTerminatorInText
	}

	t.text = make([]byte, len(text)+1)
	copy(t.text, text)
	t.text[len(text)] = t.term

	t.nodes = make([]node, 0, 2*len(t.text)+1)
	t.newNode(span{}, noSuffix)
	for i := 0; i < len(t.text); i++ {
		t.insert(i)
	}
	return t, nil
}

// Len returns the length of the indexed text, not counting the terminator.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.text) - 1
}

// Text returns the terminated text. It must not be modified.
func (t *Tree) Text() []byte {
	if t == nil {
		return nil
	}
	return t.text
}

// Terminator returns the byte appended to the text.
func (t *Tree) Terminator() byte { return t.term }

// NumNodes returns the number of nodes, root included.
func (t *Tree) NumNodes() int {
	if t == nil {
		return 0
	}
	return len(t.nodes)
}

// NumLeaves returns the number of leaves, which is one per suffix.
func (t *Tree) NumLeaves() int {
	if t == nil {
		return 0
	}
	return t.leaves
}

// Internal methods

func (t *Tree) newNode(edge span, suffix int32) nodeID {
	id := nodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{edge: edge, suffix: suffix})
	return id
}

func (t *Tree) newLeaf(edge span, suffix int) nodeID {
	t.leaves++
	return t.newNode(edge, int32(suffix))
}

// Attach child under parent, growing the parent's dispatch as needed.
func (t *Tree) addChild(parent nodeID, c byte, child nodeID) {
	n := &t.nodes[parent]
	if n.kids == nil {
		n.kids = newChildren()
	} else if n.kids.isFull() {
		n.kids = n.kids.grow()
	}
	n.kids.addChild(c, child)
}

// The bytes an edge is labeled with.
func (t *Tree) label(s span) []byte {
	return t.text[s.off:s.end()]
}

// A node is a leaf when its incoming edge ends with the terminator.
func (t *Tree) isLeaf(id nodeID) bool {
	e := t.nodes[id].edge
	return e.len > 0 && t.text[e.end()-1] == t.term
}

// Insert the suffix starting at start. We walk down from the root for as long
// as whole edges match and either hang a new leaf off the node we stop at,
// or split the edge we diverge on.
func (t *Tree) insert(start int) {
	rest := span{off: uint32(start), len: uint32(len(t.text) - start)}
	for cur := rootID; rest.len > 0; {
		c := t.text[rest.off]
		var slot *nodeID
		if kids := t.nodes[cur].kids; kids != nil {
			slot = kids.findChild(c)
		}
		if slot == nil {
			t.addChild(cur, c, t.newLeaf(rest, start))
			return
		}
		child := *slot
		edge := t.nodes[child].edge
		cpl := commonPrefixLen(t.label(edge), t.label(rest))
		if cpl == int(edge.len) {
			// Whole edge matched, move past it.
			rest = rest.advance(cpl)
			cur = child
			continue
		}
		// We diverge inside the edge. Insert a branch node for the common
		// part and hang the original child and a new leaf below it.
		branch := t.newNode(span{off: edge.off, len: uint32(cpl)}, noSuffix)
		edge = edge.advance(cpl)
		t.nodes[child].edge = edge
		rest = rest.advance(cpl)
		t.addChild(branch, t.text[edge.off], child)
		t.addChild(branch, t.text[rest.off], t.newLeaf(rest, start))
		// Same first byte, so the branch takes over the slot.
		*slot = branch
		return
	}
}
