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

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Mode selects what a query reports.
type Mode uint8

const (
	// OccurrencesMode reports every offset the query occurs at.
	OccurrencesMode Mode = iota
	// ContainsMode reports whether the query occurs at all.
	ContainsMode
	// SuffixMode reports whether the text ends with the query.
	SuffixMode
	// CountMode reports how many times the query occurs.
	CountMode
)

func (m Mode) String() string {
	switch m {
	case OccurrencesMode:
		return "occurrences"
	case ContainsMode:
		return "contains"
	case SuffixMode:
		return "suffix"
	case CountMode:
		return "count"
	default:
		return "unknown"
	}
}

// ParseMode returns the Mode named by s.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "occurrences", "occurs", "o":
		return OccurrencesMode, nil
	case "contains", "c":
		return ContainsMode, nil
	case "suffix", "s":
		return SuffixMode, nil
	case "count", "n":
		return CountMode, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Options block for a suffixsearch run.
type Options struct {
	InputFile    string      `json:"input_file"`
	Queries      []string    `json:"queries"`
	Mode         Mode        `json:"mode"`
	Terminator   string      `json:"terminator,omitempty"`
	Compression  Compression `json:"compression"`
	MaxInputSize int64       `json:"max_input_size"`
	CacheSize    int         `json:"cache_size"`
	Workers      int         `json:"workers"`
	DotFile      string      `json:"dot_file,omitempty"`
	DumpTree     bool        `json:"-"`
	Verify       bool        `json:"-"`
	Debug        bool        `json:"-"`
	Trace        bool        `json:"-"`
	Logtime      bool        `json:"-"`
	LogFile      string      `json:"-"`
}

// ConfigureOptions accepts a flag set and augments it with suffixsearch
// specific flags. The positional arguments are the input file followed by
// one or more search strings.
// If the version or help flags are set, the matching print function is
// invoked and nil options are returned.
func ConfigureOptions(fs *flag.FlagSet, args []string, printVersion, printHelp func()) (*Options, error) {
	opts := &Options{}
	var (
		showVersion   bool
		showHelp      bool
		debugAndTrace bool
		mode          string
		decompress    string
	)

	fs.BoolVar(&showHelp, "h", false, "Show this message.")
	fs.BoolVar(&showHelp, "help", false, "Show this message.")
	fs.BoolVar(&showVersion, "v", false, "Print version information.")
	fs.BoolVar(&showVersion, "version", false, "Print version information.")
	fs.StringVar(&mode, "m", OccurrencesMode.String(), "Query mode: occurrences, contains, suffix or count.")
	fs.StringVar(&mode, "mode", OccurrencesMode.String(), "Query mode: occurrences, contains, suffix or count.")
	fs.StringVar(&opts.Terminator, "terminator", "", "Byte appended to the text, picked automatically if empty.")
	fs.StringVar(&decompress, "decompress", AutoCompression.String(), "Input compression: auto, none, s2, zstd or gzip.")
	fs.Int64Var(&opts.MaxInputSize, "max_input", DEFAULT_MAX_INPUT_SIZE, "Maximum input size in bytes, 0 for no limit.")
	fs.IntVar(&opts.CacheSize, "cache", DEFAULT_CACHE_SIZE, "Number of query results to cache, 0 to disable.")
	fs.IntVar(&opts.Workers, "workers", 0, "Number of query workers, defaults to GOMAXPROCS.")
	fs.StringVar(&opts.DotFile, "dot", "", "Write the tree as a graphviz digraph to this file.")
	fs.BoolVar(&opts.DumpTree, "dump", false, "Print a text dump of the tree before the results.")
	fs.BoolVar(&opts.Verify, "verify", false, "Check the tree invariants after construction.")
	fs.BoolVar(&opts.Debug, "D", false, "Enable Debug logging.")
	fs.BoolVar(&opts.Debug, "debug", false, "Enable Debug logging.")
	fs.BoolVar(&opts.Trace, "V", false, "Enable Trace logging.")
	fs.BoolVar(&opts.Trace, "trace", false, "Enable Trace logging.")
	fs.BoolVar(&debugAndTrace, "DV", false, "Enable Debug and Trace logging.")
	fs.BoolVar(&opts.Logtime, "T", false, "Timestamp log entries.")
	fs.BoolVar(&opts.Logtime, "logtime", false, "Timestamp log entries.")
	fs.StringVar(&opts.LogFile, "l", "", "File to redirect log output.")
	fs.StringVar(&opts.LogFile, "log", "", "File to redirect log output.")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if showVersion {
		printVersion()
		return nil, nil
	}

	if showHelp {
		printHelp()
		return nil, nil
	}

	if debugAndTrace {
		opts.Trace, opts.Debug = true, true
	}

	var err error
	if opts.Mode, err = ParseMode(mode); err != nil {
		return nil, err
	}
	if opts.Compression, err = ParseCompression(decompress); err != nil {
		return nil, err
	}
	if _, _, err = opts.terminator(); err != nil {
		return nil, err
	}

	if fs.NArg() < 2 {
		return nil, ErrMissingArguments
	}
	opts.InputFile = fs.Arg(0)
	opts.Queries = append([]string(nil), fs.Args()[1:]...)

	processOptions(opts)
	return opts, nil
}

// Returns the configured terminator, or false if it should be picked
// from the text. Escapes such as \x00 or \t are accepted.
func (o *Options) terminator() (byte, bool, error) {
	switch s := o.Terminator; {
	case s == _EMPTY_:
		return 0, false, nil
	case len(s) == 1:
		return s[0], true, nil
	default:
		u, err := strconv.Unquote(`"` + s + `"`)
		if err != nil || len(u) != 1 {
			return 0, false, fmt.Errorf("%w: %q", ErrBadTerminator, s)
		}
		return u[0], true, nil
	}
}

func processOptions(opts *Options) {
	// Setup non-standard Go defaults
	if opts.MaxInputSize < 0 {
		opts.MaxInputSize = 0
	}
	if opts.CacheSize < 0 {
		opts.CacheSize = 0
	}
	if opts.Workers < 0 {
		opts.Workers = 0
	}
}

// PrintAndDie is exported for access in other packages.
func PrintAndDie(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}

// PrintVersionAndExit will print our version and exit.
func PrintVersionAndExit() {
	fmt.Printf("suffixsearch: v%s\n", VERSION)
	os.Exit(0)
}
