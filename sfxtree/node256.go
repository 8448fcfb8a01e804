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

// Dispatch with a direct slot per byte value. Empty slots hold rootID.
type node256 struct {
	child [256]nodeID
	size  uint16
}

func (n *node256) addChild(c byte, id nodeID) {
	n.child[c] = id
	n.size++
}

func (n *node256) findChild(c byte) *nodeID {
	if n.child[c] != rootID {
		return &n.child[c]
	}
	return nil
}

func (n *node256) isFull() bool        { return false }
func (n *node256) numChildren() uint16 { return n.size }
func (n *node256) grow() children      { panic("grow can not be called on node256") }

// Walks in key order.
func (n *node256) iter(f func(c byte, id nodeID) bool) {
	for i := 0; i < 256; i++ {
		if n.child[i] != rootID {
			if !f(byte(i), n.child[i]) {
				return
			}
		}
	}
}
