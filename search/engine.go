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
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/nats-io/suffixsearch/sfxtree"
)

// Engine indexes one text and answers queries against it.
// Once Index returns the engine may be queried from many goroutines.
type Engine struct {
	opts  *Options
	tree  *sfxtree.Tree
	cache *lru.Cache[cacheKey, Result]
	stats Stats

	logging struct {
		sync.RWMutex
		logger Logger
		trace  int32
		debug  int32
	}
}

// Stats describes the indexed text.
type Stats struct {
	InputFile   string        `json:"input_file,omitempty"`
	Compression Compression   `json:"compression"`
	TextSize    int           `json:"text_size"`
	Nodes       int           `json:"nodes"`
	Leaves      int           `json:"leaves"`
	Terminator  byte          `json:"terminator"`
	Digest      uint64        `json:"digest"`
	BuildTime   time.Duration `json:"build_time"`
}

// Result of a single query. Offsets is shared with the cache and must not be modified.
type Result struct {
	Query   string `json:"query"`
	Mode    Mode   `json:"mode"`
	Found   bool   `json:"found"`
	Count   int    `json:"count"`
	Offsets []int  `json:"offsets,omitempty"`
}

type cacheKey struct {
	mode  Mode
	query string
}

// String renders the result the way the command line prints it.
func (r Result) String() string {
	switch r.Mode {
	case ContainsMode, SuffixMode:
		return strconv.FormatBool(r.Found)
	case CountMode:
		return strconv.Itoa(r.Count)
	}
	var sb strings.Builder
	for i, o := range r.Offsets {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(o))
	}
	return sb.String()
}

// New creates an engine for opts. Nothing is loaded until Index or Load.
func New(opts *Options) (*Engine, error) {
	if opts == nil {
		opts = &Options{}
	}
	processOptions(opts)
	e := &Engine{opts: opts}
	if opts.CacheSize > 0 {
		cache, err := lru.New[cacheKey, Result](opts.CacheSize)
		if err != nil {
			return nil, err
		}
		e.cache = cache
	}
	return e, nil
}

// Tree returns the suffix tree, nil before Index.
func (e *Engine) Tree() *sfxtree.Tree {
	return e.tree
}

// Stats returns information about the indexed text.
func (e *Engine) Stats() Stats {
	return e.stats
}

// Load reads the configured input file and indexes it.
func (e *Engine) Load() error {
	start := time.Now()
	text, alg, err := LoadText(e.opts.InputFile, e.opts.Compression, e.opts.MaxInputSize)
	if err != nil {
		return err
	}
	e.Debugf("Read %s from %q (%s) in %v", humanize.IBytes(uint64(len(text))), e.opts.InputFile, alg, time.Since(start))
	if err := e.Index(text); err != nil {
		return err
	}
	e.stats.InputFile = e.opts.InputFile
	e.stats.Compression = alg
	return nil
}

// Index builds the suffix tree over text, replacing anything indexed before.
func (e *Engine) Index(text []byte) error {
	term, ok, err := e.opts.terminator()
	if err != nil {
		return err
	}
	if !ok {
		if term, err = chooseTerminator(text); err != nil {
			return err
		}
		if term != DEFAULT_TERMINATOR {
			e.Debugf("Text contains %q, terminating with %q", DEFAULT_TERMINATOR, term)
		}
	}

	start := time.Now()
	tree, err := sfxtree.Build(text, sfxtree.WithTerminator(term))
	if err != nil {
		return fmt.Errorf("error building tree: %w", err)
	}
	elapsed := time.Since(start)

	if e.opts.Verify {
		if err := tree.Validate(); err != nil {
			return err
		}
		e.Debugf("Tree invariants verified")
	}

	digest, err := textDigest(text)
	if err != nil {
		return err
	}

	e.tree = tree
	if e.cache != nil {
		e.cache.Purge()
	}
	e.stats = Stats{
		Compression: NoCompression,
		TextSize:    len(text),
		Nodes:       tree.NumNodes(),
		Leaves:      tree.NumLeaves(),
		Terminator:  term,
		Digest:      digest,
		BuildTime:   elapsed,
	}
	e.Debugf("Indexed %s in %v: %s nodes, %s leaves, digest %016x",
		humanize.IBytes(uint64(len(text))), elapsed,
		humanize.Comma(int64(tree.NumNodes())), humanize.Comma(int64(tree.NumLeaves())), digest)
	return nil
}

// Query answers a single query in the given mode.
func (e *Engine) Query(mode Mode, query string) (Result, error) {
	if e.tree == nil {
		return Result{}, ErrNotIndexed
	}
	key := cacheKey{mode, query}
	if e.cache != nil {
		if r, ok := e.cache.Get(key); ok {
			e.Tracef("Cache hit for %s %q", mode, query)
			return r, nil
		}
	}

	q := []byte(query)
	r := Result{Query: query, Mode: mode}
	switch mode {
	case OccurrencesMode:
		r.Offsets = e.tree.Occurrences(q)
		r.Count = len(r.Offsets)
		r.Found = r.Count > 0
	case ContainsMode:
		r.Found = e.tree.Contains(q)
	case SuffixMode:
		r.Found = e.tree.IsSuffix(q)
	case CountMode:
		r.Count = e.tree.Count(q)
		r.Found = r.Count > 0
	default:
		return Result{}, fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}
	e.Tracef("Query %s %q: %d", mode, query, r.Count)

	if e.cache != nil {
		e.cache.Add(key, r)
	}
	return r, nil
}

// Search answers every query in the configured mode, spreading the work
// over the configured number of workers. Results are in query order.
func (e *Engine) Search(queries []string) ([]Result, error) {
	if e.tree == nil {
		return nil, ErrNotIndexed
	}
	results := make([]Result, len(queries))
	if len(queries) == 0 {
		return results, nil
	}
	workers := e.opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, len(queries))

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		ferr error
	)
	work := make(chan int)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for qi := range work {
				r, err := e.Query(e.opts.Mode, queries[qi])
				if err != nil {
					mu.Lock()
					if ferr == nil {
						ferr = err
					}
					mu.Unlock()
					continue
				}
				results[qi] = r
			}
		}()
	}
	for qi := range queries {
		work <- qi
	}
	close(work)
	wg.Wait()

	if ferr != nil {
		return nil, ferr
	}
	return results, nil
}

// WriteDot writes the graphviz representation of the tree to path.
func (e *Engine) WriteDot(path string) error {
	if e.tree == nil {
		return ErrNotIndexed
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating dot file: %w", err)
	}
	if err := e.tree.WriteDot(f); err != nil {
		f.Close()
		return fmt.Errorf("error writing dot file: %w", err)
	}
	return f.Close()
}

// Run loads the input, builds the tree, writes any requested exports and
// prints one line per query to w.
func (e *Engine) Run(w io.Writer) error {
	if err := e.Load(); err != nil {
		return err
	}
	e.Noticef("Tree constructed")

	if e.opts.DotFile != _EMPTY_ {
		if err := e.WriteDot(e.opts.DotFile); err != nil {
			return err
		}
		e.Debugf("Wrote graph to %q", e.opts.DotFile)
	}

	bw := bufio.NewWriter(w)
	if e.opts.DumpTree {
		e.tree.Dump(bw)
	}

	results, err := e.Search(e.opts.Queries)
	if err != nil {
		return err
	}
	for _, r := range results {
		fmt.Fprintln(bw, r.String())
	}
	return bw.Flush()
}

// Close releases the logger if it holds any resources.
func (e *Engine) Close() error {
	e.logging.Lock()
	l := e.logging.logger
	e.logging.logger = nil
	e.logging.Unlock()
	if c, ok := l.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
