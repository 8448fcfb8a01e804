// Copyright 2012-2026 The NATS Authors
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

package search

import "errors"

var (
	// ErrMissingArguments represents an invocation without an input file and a search string.
	ErrMissingArguments = errors.New("expected INPUT_FILE and at least one SEARCH_STRING")

	// ErrInputTooLarge represents an input exceeding the configured maximum size.
	ErrInputTooLarge = errors.New("input exceeds maximum size")

	// ErrNoTerminator represents a text in which every byte value occurs, leaving nothing to terminate it with.
	ErrNoTerminator = errors.New("no byte value left to use as terminator")

	// ErrBadTerminator represents a terminator option that is not a single byte.
	ErrBadTerminator = errors.New("terminator must be a single byte")

	// ErrUnknownMode represents an unsupported query mode.
	ErrUnknownMode = errors.New("unknown query mode")

	// ErrUnknownCompression represents an unsupported decompression option.
	ErrUnknownCompression = errors.New("unknown compression algorithm")

	// ErrNotIndexed represents a query against an engine that has no text loaded.
	ErrNotIndexed = errors.New("no text indexed")
)
