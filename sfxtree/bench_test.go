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
	"math/rand"
	"testing"
	"time"
)

func BenchmarkSuffixTreeBuild(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	text := randomText(r, "abcdefghijklmnopqrstuvwxyz .,\n", 64*1024)
	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Build(text); err != nil {
			b.Fatalf("Build: %v", err)
		}
	}
}

func BenchmarkSuffixTreeOccurrences(b *testing.B) {
	r := rand.New(rand.NewSource(2))
	text := randomText(r, "acgt", 256*1024)
	start := time.Now()
	st, err := Build(text)
	if err != nil {
		b.Fatalf("Build: %v", err)
	}
	b.Logf("Built %d nodes over %d bytes in %s", st.NumNodes(), len(text), time.Since(start))
	b.Logf("---")

	queries := [][]byte{
		[]byte("a"),
		[]byte("acgt"),
		[]byte("ttttt"),
		text[1000:1020],
	}
	for _, q := range queries {
		start := time.Now()
		n := len(st.Occurrences(q))
		b.Logf("Occurrences %q took %s and matched %d offsets", q, time.Since(start), n)
	}
	b.Logf("---")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		st.Occurrences(queries[i%len(queries)])
	}
}
