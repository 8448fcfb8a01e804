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

// Dispatch for up to 16 children.
type node16 struct {
	child [16]nodeID
	key   [16]byte
	size  uint16
}

// Currently we do not keep node16 sorted or use bitfields for lookups so just add to the end.
func (n *node16) addChild(c byte, id nodeID) {
	if n.size >= 16 {
		panic("node16 full!")
	}
	n.key[n.size] = c
	n.child[n.size] = id
	n.size++
}

func (n *node16) findChild(c byte) *nodeID {
	for i := uint16(0); i < n.size; i++ {
		if n.key[i] == c {
			return &n.child[i]
		}
	}
	return nil
}

func (n *node16) isFull() bool        { return n.size >= 16 }
func (n *node16) numChildren() uint16 { return n.size }

func (n *node16) grow() children {
	nn := &node48{}
	for i := 0; i < 16; i++ {
		nn.addChild(n.key[i], n.child[i])
	}
	return nn
}

func (n *node16) iter(f func(c byte, id nodeID) bool) {
	for i := uint16(0); i < n.size; i++ {
		if !f(n.key[i], n.child[i]) {
			return
		}
	}
}
