// Copyright 2019-2026 The NATS Authors
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

package testhelper

// Shared by the tests of several packages, tests importing a package don't
// get exported symbols from its _test.go files.

import (
	"fmt"
	"strings"
	"sync"
	"testing"
)

// CaptureLogger records every statement, prefixed with its level.
type CaptureLogger struct {
	sync.Mutex
	Msg     string
	AllMsgs []string
}

func NewCaptureLogger() *CaptureLogger {
	return &CaptureLogger{}
}

func (l *CaptureLogger) record(level, format string, v ...any) {
	l.Lock()
	defer l.Unlock()
	l.Msg = fmt.Sprintf("[%s] %s", level, fmt.Sprintf(format, v...))
	l.AllMsgs = append(l.AllMsgs, l.Msg)
}

func (l *CaptureLogger) Noticef(format string, v ...any) { l.record("INF", format, v...) }
func (l *CaptureLogger) Warnf(format string, v ...any)   { l.record("WRN", format, v...) }
func (l *CaptureLogger) Errorf(format string, v ...any)  { l.record("ERR", format, v...) }
func (l *CaptureLogger) Fatalf(format string, v ...any)  { l.record("FTL", format, v...) }
func (l *CaptureLogger) Debugf(format string, v ...any)  { l.record("DBG", format, v...) }
func (l *CaptureLogger) Tracef(format string, v ...any)  { l.record("TRC", format, v...) }

// Count returns how many statements contain needle.
func (l *CaptureLogger) Count(needle string) int {
	l.Lock()
	defer l.Unlock()
	var n int
	for _, m := range l.AllMsgs {
		if strings.Contains(m, needle) {
			n++
		}
	}
	return n
}

func (l *CaptureLogger) CheckContent(t *testing.T, expectedStr string) {
	t.Helper()
	l.Lock()
	defer l.Unlock()
	if l.Msg != expectedStr {
		t.Fatalf("Expected log to be: %v, got %v", expectedStr, l.Msg)
	}
}

func (l *CaptureLogger) CheckContains(t *testing.T, needle string) {
	t.Helper()
	if l.Count(needle) == 0 {
		l.Lock()
		defer l.Unlock()
		t.Fatalf("Expected a log containing %q, got %q", needle, l.AllMsgs)
	}
}

func (l *CaptureLogger) CheckForProhibited(t *testing.T, reason, needle string) {
	t.Helper()
	l.Lock()
	defer l.Unlock()

	// Collect _all_ matches, rather than have to re-test repeatedly.
	shouldFail := false
	for _, m := range l.AllMsgs {
		if strings.Contains(m, needle) {
			t.Errorf("log contains %s: %v", reason, m)
			shouldFail = true
		}
	}
	if shouldFail {
		t.FailNow()
	}
}
