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

package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/nats-io/suffixsearch/search"
)

var usageStr = `
Usage: suffixsearch [options] INPUT_FILE SEARCH_STRING [SEARCH_STRING...]

Search Options:
    -m, --mode <mode>                Query mode: occurrences, contains, suffix or count.
        --terminator <byte>          Byte appended to the text, picked automatically if empty.
        --cache <size>               Number of query results to cache, 0 to disable.
        --workers <count>            Number of query workers, defaults to GOMAXPROCS.

Input Options:
        --decompress <alg>           Input compression: auto, none, s2, zstd or gzip.
        --max_input <bytes>          Maximum input size in bytes, 0 for no limit.

Tree Options:
        --dot <file>                 Write the tree as a graphviz digraph to this file.
        --dump                       Print a text dump of the tree before the results.
        --verify                     Check the tree invariants after construction.

Logging Options:
    -l, --log <file>                 File to redirect log output.
    -T, --logtime                    Timestamp log entries.
    -D, --debug                      Enable Debug logging.
    -V, --trace                      Enable Trace logging.
        -DV                          Enable Debug and Trace logging.

Common Options:
    -h, --help                       Show this message.
    -v, --version                    Print version information.
`

// usage will print out the flag options for the tool.
func usage() {
	fmt.Printf("%s\n", usageStr)
	os.Exit(0)
}

func main() {
	exe := "suffixsearch"

	// Create a FlagSet and sets the usage
	fs := flag.NewFlagSet(exe, flag.ExitOnError)
	fs.Usage = usage

	// Configure the options from the flags and positional arguments.
	opts, err := search.ConfigureOptions(fs, os.Args[1:],
		search.PrintVersionAndExit,
		fs.Usage)
	if err != nil {
		search.PrintAndDie(fmt.Sprintf("%s: %s", exe, err))
	} else if opts == nil {
		return
	}

	e, err := search.New(opts)
	if err != nil {
		search.PrintAndDie(fmt.Sprintf("%s: %s", exe, err))
	}
	if err := e.ConfigureLogger(); err != nil {
		search.PrintAndDie(fmt.Sprintf("%s: %s", exe, err))
	}
	defer e.Close()

	// Adjust MAXPROCS if running under linux/cgroups quotas.
	undo, err := maxprocs.Set(maxprocs.Logger(e.Debugf))
	if err != nil {
		e.Warnf("Failed to set GOMAXPROCS: %v", err)
	} else {
		defer undo()
	}

	if err := e.Run(os.Stdout); err != nil {
		e.Errorf("Search failed: %v", err)
		e.Close()
		os.Exit(1)
	}
}
