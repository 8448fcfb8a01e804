// Copyright 2024-2026 The NATS Authors
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
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// Replaces newlines in edge labels so every statement stays on one line.
const dotNewline = '#'

// Dump writes an indented text representation of the tree.
func (t *Tree) Dump(w io.Writer) {
	if t == nil || len(t.nodes) == 0 {
		fmt.Fprintf(w, "EMPTY\n")
		return
	}
	t.dump(w, rootID, 0)
	fmt.Fprintln(w)
}

// Will dump out a node.
func (t *Tree) dump(w io.Writer, id nodeID, depth int) {
	n := &t.nodes[id]
	switch {
	case id == rootID:
		fmt.Fprintf(w, "%s ROOT %s\n", dumpPre(depth), n.kids.kind())
	case t.isLeaf(id):
		fmt.Fprintf(w, "%s LEAF Edge: %q Suffix: %d\n", dumpPre(depth), t.label(n.edge), n.suffix)
		return
	default:
		fmt.Fprintf(w, "%s %s Edge: %q\n", dumpPre(depth), n.kids.kind(), t.label(n.edge))
	}
	depth++
	for _, cid := range t.sortedChildren(id) {
		t.dump(w, cid, depth)
	}
}

// WriteDot writes the tree as a graphviz digraph. Nodes are numbered in
// pre-order, leaves are labeled with their suffix offset and edges with
// the text they span.
func (t *Tree) WriteDot(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("digraph g {\n")
	bw.WriteString("n0 [label=\"ROOT\"];\n")
	if t != nil && len(t.nodes) > 0 {
		t.writeDot(bw)
	}
	bw.WriteString("}\n")
	return bw.Flush()
}

func (t *Tree) writeDot(bw *bufio.Writer) {
	type entry struct {
		id     nodeID
		parent int
	}
	var stack []entry
	push := func(id nodeID, parent int) {
		kids := t.sortedChildren(id)
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, entry{kids[i], parent})
		}
	}
	push(rootID, 0)
	for seq := 1; len(stack) > 0; seq++ {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &t.nodes[e.id]
		var label string
		if n.suffix != noSuffix {
			label = strconv.Itoa(int(n.suffix))
		}
		fmt.Fprintf(bw, "n%d [label=\"%s\"];\n", seq, label)
		fmt.Fprintf(bw, "n%d -> n%d [label=\"%s\"];\n", e.parent, seq, dotEscape(t.label(n.edge)))
		if n.kids != nil {
			push(e.id, seq)
		}
	}
}

// Children of id, terminator first and then by byte value.
func (t *Tree) sortedChildren(id nodeID) []nodeID {
	kids := t.nodes[id].kids
	if kids == nil {
		return nil
	}
	keys := make([]byte, 0, kids.numChildren())
	kids.iter(func(c byte, _ nodeID) bool {
		keys = append(keys, c)
		return true
	})
	slices.SortFunc(keys, t.compareKeys)
	ids := make([]nodeID, 0, len(keys))
	for _, c := range keys {
		ids = append(ids, *kids.findChild(c))
	}
	return ids
}

func dotEscape(b []byte) string {
	var sb strings.Builder
	for _, c := range b {
		switch c {
		case '\n':
			sb.WriteByte(dotNewline)
		case '"', '\\':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// For individual dispatch dumps.
func (n *node4) kind() string   { return "NODE4" }
func (n *node10) kind() string  { return "NODE10" }
func (n *node16) kind() string  { return "NODE16" }
func (n *node48) kind() string  { return "NODE48" }
func (n *node256) kind() string { return "NODE256" }

// Calculates the indendation, etc.
func dumpPre(depth int) string {
	if depth == 0 {
		return "--"
	}
	var b strings.Builder
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
	b.WriteString("|__")
	return b.String()
}
