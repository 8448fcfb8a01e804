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

// Index of a node inside the tree arena.
type nodeID int32

const (
	// The root always lives in the first arena slot and is never anybody's child,
	// so a zero nodeID doubles as an empty slot in the dispatch tables.
	rootID nodeID = 0
	noNode nodeID = -1

	// Suffix label for branch nodes.
	noSuffix int32 = -1
)

// A node in the arena. The incoming edge is stored on the child side,
// the parent only knows the first byte of it through its dispatch table.
// Order of struct fields for best memory alignment (as per govet/fieldalignment)
type node struct {
	kids   children
	edge   span
	suffix int32
}

// Child dispatch keyed by the first byte of each outgoing edge.
// Since a key maps to exactly one slot, two edges of the same node
// can never start with the same byte.
type children interface {
	addChild(c byte, id nodeID)
	findChild(c byte) *nodeID
	isFull() bool
	grow() children
	numChildren() uint16
	iter(f func(c byte, id nodeID) bool)
	kind() string
}

func newChildren() children {
	return &node4{}
}
