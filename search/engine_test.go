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


package search

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/nats-io/suffixsearch/internal/testhelper"
	"github.com/nats-io/suffixsearch/logger"
)

func TestEngineRunBanana(t *testing.T) {
	var logs bytes.Buffer
	opts := &Options{
		InputFile:   createFile(t, "banana.txt", []byte("banana")),
		Queries:     []string{"ana", "xyz", "banana", "", "bananas"},
		Compression: AutoCompression,
	}
	e := newEngine(t, opts)
	e.SetLogger(logger.NewTestLogger(&logs), false, false)

	var out bytes.Buffer
	require_NoError(t, e.Run(&out))
	require_Equal(t, out.String(), "1 3\n\n0\n0 1 2 3 4 5 6\n\n")
	require_True(t, strings.Contains(logs.String(), "[INF] Tree constructed"))
	// Debug is off at the engine level.
	require_False(t, strings.Contains(logs.String(), "[DBG]"))

	st := e.Stats()
	require_Equal(t, st.TextSize, 6)
	require_Equal(t, st.Nodes, 11)
	require_Equal(t, st.Leaves, 7)
	require_Equal(t, st.Terminator, byte('$'))
	require_Equal(t, st.Compression, NoCompression)
	require_Equal(t, st.InputFile, opts.InputFile)
}

func TestEngineRunModes(t *testing.T) {
	input := createFile(t, "mississippi.txt", []byte("mississippi"))
	for _, test := range []struct {
		mode     Mode
		expected string
	}{
		{OccurrencesMode, "2 5\n1 4 7 10\n\n"},
		{ContainsMode, "true\ntrue\nfalse\n"},
		{SuffixMode, "false\ntrue\nfalse\n"},
		{CountMode, "2\n4\n0\n"},
	} {
		t.Run(test.mode.String(), func(t *testing.T) {
			e := newEngine(t, &Options{
				InputFile: input,
				Queries:   []string{"ssi", "i", "spa"},
				Mode:      test.mode,
				Workers:   2,
			})
			var out bytes.Buffer
			require_NoError(t, e.Run(&out))
			require_Equal(t, out.String(), test.expected)
		})
	}
}

func TestEngineRunCompressedInput(t *testing.T) {
	text := []byte(strings.Repeat("abracadabra ", 20))
	input := createFile(t, "input.zst", compress(t, ZstdCompression, text))

	e := newEngine(t, &Options{
		InputFile:   input,
		Queries:     []string{"cad"},
		Mode:        CountMode,
		Compression: AutoCompression,
	})
	var out bytes.Buffer
	require_NoError(t, e.Run(&out))
	require_Equal(t, out.String(), "20\n")
	require_Equal(t, e.Stats().Compression, ZstdCompression)
	require_Equal(t, e.Stats().TextSize, len(text))
}

func TestEngineRunDotAndDump(t *testing.T) {
	dir := t.TempDir()
	dot := filepath.Join(dir, "tree.dot")
	e := newEngine(t, &Options{
		InputFile: createFile(t, "banana.txt", []byte("banana")),
		Queries:   []string{"na"},
		DotFile:   dot,
		DumpTree:  true,
		Verify:    true,
	})
	var out bytes.Buffer
	require_NoError(t, e.Run(&out))

	var dump bytes.Buffer
	e.Tree().Dump(&dump)
	require_Equal(t, out.String(), dump.String()+"2 4\n")

	var expected bytes.Buffer
	require_NoError(t, e.Tree().WriteDot(&expected))
	got, err := os.ReadFile(dot)
	require_NoError(t, err)
	require_Equal(t, string(got), expected.String())
	require_True(t, strings.HasPrefix(string(got), "digraph g {\n"))
}

func TestEngineRunErrors(t *testing.T) {
	// Missing input file.
	e := newEngine(t, &Options{InputFile: "/does/not/exist", Queries: []string{"a"}})
	require_Error(t, e.Run(&bytes.Buffer{}))

	// Input over the limit.
	e = newEngine(t, &Options{
		InputFile:    createFile(t, "big.txt", bytes.Repeat([]byte("x"), 64)),
		Queries:      []string{"x"},
		MaxInputSize: 10,
	})
	require_Error(t, e.Run(&bytes.Buffer{}), ErrInputTooLarge)

	// Dot file in a directory that does not exist.
	e = newEngine(t, &Options{
		InputFile: createFile(t, "banana.txt", []byte("banana")),
		Queries:   []string{"a"},
		DotFile:   filepath.Join(t.TempDir(), "missing", "tree.dot"),
	})
	require_Error(t, e.Run(&bytes.Buffer{}))
}

func TestEngineNotIndexed(t *testing.T) {
	e := newEngine(t, nil)
	_, err := e.Query(OccurrencesMode, "a")
	require_Error(t, err, ErrNotIndexed)
	_, err = e.Search([]string{"a"})
	require_Error(t, err, ErrNotIndexed)
	require_Error(t, e.WriteDot(filepath.Join(t.TempDir(), "x.dot")), ErrNotIndexed)
	require_True(t, e.Tree() == nil)
}

func TestEngineTerminatorSelection(t *testing.T) {
	// The default terminator occurs in the text, another byte is picked.
	e := newEngine(t, &Options{})
	require_NoError(t, e.Index([]byte("cost: $5")))
	require_Equal(t, e.Stats().Terminator, byte(0))
	r, err := e.Query(OccurrencesMode, "$")
	require_NoError(t, err)
	require_Offsets(t, r.Offsets, 6)

	// An explicit terminator that occurs in the text is refused.
	e = newEngine(t, &Options{Terminator: "$"})
	require_Error(t, e.Index([]byte("cost: $5")))

	e = newEngine(t, &Options{Terminator: `\x01`})
	require_NoError(t, e.Index([]byte("cost: $5")))
	require_Equal(t, e.Stats().Terminator, byte(1))

	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	e = newEngine(t, &Options{})
	require_Error(t, e.Index(all), ErrNoTerminator)
}

func TestEngineQueryCache(t *testing.T) {
	var logs bytes.Buffer
	e := newEngine(t, &Options{CacheSize: 8})
	e.SetLogger(logger.NewTestLogger(&logs), true, true)
	require_NoError(t, e.Index([]byte("banana")))

	r1, err := e.Query(OccurrencesMode, "an")
	require_NoError(t, err)
	r2, err := e.Query(OccurrencesMode, "an")
	require_NoError(t, err)
	require_Offsets(t, r1.Offsets, 1, 3)
	require_Offsets(t, r2.Offsets, 1, 3)
	require_Equal(t, strings.Count(logs.String(), "Cache hit"), 1)

	// Same string in another mode is a separate entry.
	r3, err := e.Query(CountMode, "an")
	require_NoError(t, err)
	require_Equal(t, r3.Count, 2)
	require_Equal(t, strings.Count(logs.String(), "Cache hit"), 1)

	// Reindexing drops cached results.
	require_NoError(t, e.Index([]byte("canal")))
	r4, err := e.Query(OccurrencesMode, "an")
	require_NoError(t, err)
	require_Offsets(t, r4.Offsets, 1)
	require_Equal(t, strings.Count(logs.String(), "Cache hit"), 1)
}

func TestEngineSearchOrderAndConcurrency(t *testing.T) {
	text := []byte(strings.Repeat("the quick brown fox jumps over the lazy dog ", 50))
	e := newEngine(t, &Options{Workers: 8, CacheSize: 16})
	require_NoError(t, e.Index(text))

	var queries []string
	for i := 0; i < 200; i++ {
		queries = append(queries, string(text[i%40:i%40+3]))
	}
	results, err := e.Search(queries)
	require_NoError(t, err)
	require_Equal(t, len(results), len(queries))
	for i, r := range results {
		require_Equal(t, r.Query, queries[i])
		require_Equal(t, r.Count, bytes.Count(text, []byte(queries[i])))
	}

	// Engine queried from many goroutines at once.
	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			q := queries[i]
			r, err := e.Query(CountMode, q)
			if err != nil {
				errs <- err
				return
			}
			if expected := bytes.Count(text, []byte(q)); r.Count != expected {
				errs <- fmt.Errorf("query %q: got %d, expected %d", q, r.Count, expected)
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}

	results, err = e.Search(nil)
	require_NoError(t, err)
	require_Equal(t, len(results), 0)
}

func TestResultString(t *testing.T) {
	require_Equal(t, Result{Mode: OccurrencesMode, Offsets: []int{1, 3, 10}}.String(), "1 3 10")
	require_Equal(t, Result{Mode: OccurrencesMode}.String(), "")
	require_Equal(t, Result{Mode: ContainsMode, Found: true}.String(), "true")
	require_Equal(t, Result{Mode: SuffixMode}.String(), "false")
	require_Equal(t, Result{Mode: CountMode, Count: 42}.String(), "42")
}

func TestEngineLogFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "search.log")
	e := newEngine(t, &Options{
		InputFile: createFile(t, "banana.txt", []byte("banana")),
		Queries:   []string{"a"},
		LogFile:   logFile,
		Debug:     true,
	})
	require_NoError(t, e.ConfigureLogger())
	require_NoError(t, e.Run(&bytes.Buffer{}))
	require_NoError(t, e.Close())

	buf, err := os.ReadFile(logFile)
	require_NoError(t, err)
	require_True(t, strings.Contains(string(buf), "[INF] Tree constructed"))
	require_True(t, strings.Contains(string(buf), "[DBG] Indexed 6 B"))
	require_True(t, strings.HasPrefix(string(buf), fmt.Sprintf("[%d] ", os.Getpid())))
}

func TestEngineLogStatements(t *testing.T) {
	l := testhelper.NewCaptureLogger()
	e := newEngine(t, &Options{
		InputFile: createFile(t, "banana.txt", []byte("banana")),
		Queries:   []string{"an", "an"},
		Workers:   1,
	})
	e.SetLogger(l, true, true)

	require_NoError(t, e.Run(&bytes.Buffer{}))
	l.CheckContains(t, "[DBG] Read 6 B from")
	l.CheckContains(t, "[DBG] Indexed 6 B")
	l.CheckContains(t, "[INF] Tree constructed")
	l.CheckContent(t, "[TRC] Query occurrences \"an\": 2")
	// Caching is off unless configured.
	l.CheckForProhibited(t, "cache hit", "Cache hit")
	require_Equal(t, l.Count("[TRC] Query occurrences"), 2)

	// Debug and trace statements are dropped by the engine once disabled.
	e.SetLogger(l, false, false)
	_, err := e.Query(OccurrencesMode, "na")
	require_NoError(t, err)
	require_Equal(t, l.Count("[TRC] Query occurrences"), 2)
}
