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
	"io"
	"os"
	"runtime"
	"sync/atomic"

	"github.com/mattn/go-isatty"

	srchlog "github.com/nats-io/suffixsearch/logger"
)

// Logger interface of the suffixsearch engine
type Logger interface {

	// Log a notice statement
	Noticef(format string, v ...any)

	// Log a warning statement
	Warnf(format string, v ...any)

	// Log a fatal error
	Fatalf(format string, v ...any)

	// Log an error
	Errorf(format string, v ...any)

	// Log a debug statement
	Debugf(format string, v ...any)

	// Log a trace statement
	Tracef(format string, v ...any)
}

// ConfigureLogger configures and sets the logger for the engine.
func (e *Engine) ConfigureLogger() error {
	opts := e.opts

	var log Logger
	if opts.LogFile != _EMPTY_ {
		fl, err := srchlog.NewFileLogger(opts.LogFile, opts.Logtime, opts.Debug, opts.Trace, true)
		if err != nil {
			return err
		}
		log = fl
	} else {
		colors := runtime.GOOS != "windows" && isatty.IsTerminal(os.Stderr.Fd())
		log = srchlog.NewStdLogger(opts.Logtime, opts.Debug, opts.Trace, colors, false)
	}

	e.SetLogger(log, opts.Debug, opts.Trace)
	return nil
}

// SetLogger sets the logger of the engine
func (e *Engine) SetLogger(logger Logger, debugFlag, traceFlag bool) {
	if debugFlag {
		atomic.StoreInt32(&e.logging.debug, 1)
	} else {
		atomic.StoreInt32(&e.logging.debug, 0)
	}
	if traceFlag {
		atomic.StoreInt32(&e.logging.trace, 1)
	} else {
		atomic.StoreInt32(&e.logging.trace, 0)
	}
	e.logging.Lock()
	old := e.logging.logger
	e.logging.logger = logger
	e.logging.Unlock()

	// Check to see if the old logger implements io.Closer. This could be a
	// file logger or a dummy test logger.
	if l, ok := old.(io.Closer); ok {
		if err := l.Close(); err != nil {
			e.Errorf("Error closing logger: %v", err)
		}
	}
}

// Noticef logs a notice statement
func (e *Engine) Noticef(format string, v ...any) {
	e.executeLogCall(func(logger Logger, format string, v ...any) {
		logger.Noticef(format, v...)
	}, format, v...)
}

// Errorf logs an error
func (e *Engine) Errorf(format string, v ...any) {
	e.executeLogCall(func(logger Logger, format string, v ...any) {
		logger.Errorf(format, v...)
	}, format, v...)
}

// Warnf logs a warning error
func (e *Engine) Warnf(format string, v ...any) {
	e.executeLogCall(func(logger Logger, format string, v ...any) {
		logger.Warnf(format, v...)
	}, format, v...)
}

// Fatalf logs a fatal error
func (e *Engine) Fatalf(format string, v ...any) {
	e.executeLogCall(func(logger Logger, format string, v ...any) {
		logger.Fatalf(format, v...)
	}, format, v...)
}

// Debugf logs a debug statement
func (e *Engine) Debugf(format string, v ...any) {
	if atomic.LoadInt32(&e.logging.debug) == 0 {
		return
	}

	e.executeLogCall(func(logger Logger, format string, v ...any) {
		logger.Debugf(format, v...)
	}, format, v...)
}

// Tracef logs a trace statement
func (e *Engine) Tracef(format string, v ...any) {
	if atomic.LoadInt32(&e.logging.trace) == 0 {
		return
	}

	e.executeLogCall(func(logger Logger, format string, v ...any) {
		logger.Tracef(format, v...)
	}, format, v...)
}

func (e *Engine) executeLogCall(f func(logger Logger, format string, v ...any), format string, args ...any) {
	e.logging.RLock()
	defer e.logging.RUnlock()
	if e.logging.logger == nil {
		return
	}

	f(e.logging.logger, format, args...)
}
