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

// Dispatch for up to 10 children.
// Sized for branch points that fan out over digits, which are common
// in logs and other machine generated text.
type node10 struct {
	child [10]nodeID
	key   [10]byte
	size  uint16
}

func (n *node10) addChild(c byte, id nodeID) {
	if n.size >= 10 {
		panic("node10 full!")
	}
	n.key[n.size] = c
	n.child[n.size] = id
	n.size++
}

func (n *node10) findChild(c byte) *nodeID {
	for i := uint16(0); i < n.size; i++ {
		if n.key[i] == c {
			return &n.child[i]
		}
	}
	return nil
}

func (n *node10) isFull() bool        { return n.size >= 10 }
func (n *node10) numChildren() uint16 { return n.size }

func (n *node10) grow() children {
	nn := &node16{}
	for i := 0; i < 10; i++ {
		nn.addChild(n.key[i], n.child[i])
	}
	return nn
}

func (n *node10) iter(f func(c byte, id nodeID) bool) {
	for i := uint16(0); i < n.size; i++ {
		if !f(n.key[i], n.child[i]) {
			return
		}
	}
}
