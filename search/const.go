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

const (
	VERSION = "0.3.0"

	// Construction is quadratic in the worst case, so refuse very large inputs
	// unless asked to with --max_input.
	DEFAULT_MAX_INPUT_SIZE = (64 * 1024 * 1024)

	// Number of query results kept around for repeated queries.
	DEFAULT_CACHE_SIZE = 1024

	// Terminator tried first when none was configured.
	DEFAULT_TERMINATOR = '$'

	// Length of the buffer inspected to recognize a compressed input.
	MAGIC_PEEK_SIZE = 10
)

const _EMPTY_ = ""
