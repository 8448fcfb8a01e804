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

import "errors"

var (
	// ErrTerminatorInText is returned when the text already contains the terminator byte.
	ErrTerminatorInText = errors.New("sfxtree: text contains the terminator")

	// ErrTextTooLarge is returned when the text can not be addressed by the tree.
	ErrTextTooLarge = errors.New("sfxtree: text too large")

	// ErrInvariant is returned by Validate when the tree structure is broken.
	ErrInvariant = errors.New("sfxtree: invariant violated")
)
