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

// Dispatch for up to 48 children.
// Note that `key` is effectively 1-indexed, as 0 means no entry, so offset by 1
type node48 struct {
	child [48]nodeID
	key   [256]byte
	size  uint16
}

func (n *node48) addChild(c byte, id nodeID) {
	if n.size >= 48 {
		panic("node48 full!")
	}
	n.child[n.size] = id
	n.key[c] = byte(n.size + 1) // 1-indexed
	n.size++
}

func (n *node48) findChild(c byte) *nodeID {
	i := n.key[c]
	if i == 0 {
		return nil
	}
	return &n.child[i-1]
}

func (n *node48) isFull() bool        { return n.size >= 48 }
func (n *node48) numChildren() uint16 { return n.size }

func (n *node48) grow() children {
	nn := &node256{}
	for c := 0; c < len(n.key); c++ {
		if i := n.key[byte(c)]; i > 0 {
			nn.addChild(byte(c), n.child[i-1])
		}
	}
	return nn
}

// Walks in key order.
func (n *node48) iter(f func(c byte, id nodeID) bool) {
	for c := 0; c < len(n.key); c++ {
		if i := n.key[c]; i > 0 && !f(byte(c), n.child[i-1]) {
			return
		}
	}
}
