// Copyright 2026 The os-signpost Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package signpost

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// TestRecorder is an in-memory [Recorder] for tests: it captures every
// record and lets tests toggle enablement at runtime to exercise the
// per-call enablement check. Safe for concurrent use.
type TestRecorder struct {
	mu      sync.Mutex
	records []Record
	enabled atomic.Bool
}

// NewTestRecorder returns an enabled TestRecorder.
func NewTestRecorder() *TestRecorder {
	r := &TestRecorder{}
	r.enabled.Store(true)
	return r
}

// Enabled implements [Recorder].
func (r *TestRecorder) Enabled() bool {
	return r.enabled.Load()
}

// SetEnabled toggles the recorder's enablement flag, simulating a
// trace viewer attaching or detaching at runtime.
func (r *TestRecorder) SetEnabled(enabled bool) {
	r.enabled.Store(enabled)
}

// Record implements [Recorder], capturing the record.
func (r *TestRecorder) Record(rec Record) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, rec)
}

// Shutdown implements [Recorder]; it keeps captured records readable.
func (r *TestRecorder) Shutdown(context.Context) error {
	return nil
}

// Records returns a copy of all captured records in emission order.
func (r *TestRecorder) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

// Reset discards all captured records.
func (r *TestRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = nil
}

// TestingLogger creates a test [Logger] wired to a fresh [TestRecorder]
// with sensible defaults for unit tests, and returns both. Shutdown is
// registered with t.Cleanup.
//
// Example:
//
//	func TestSomething(t *testing.T) {
//	    t.Parallel()
//	    logger, rec := signpost.TestingLogger(t)
//	    // Emit through logger, assert on rec.Records()...
//	}
func TestingLogger(t testing.TB, opts ...Option) (*Logger, *TestRecorder) {
	t.Helper()

	rec := NewTestRecorder()

	// Default options for testing; test-specific options may add to
	// them (but not a second provider).
	defaultOpts := []Option{
		WithRecorder(rec),
	}
	allOpts := append(defaultOpts, opts...)

	logger, err := New("com.signpost.test", CategoryPointsOfInterest, allOpts...)
	if err != nil {
		t.Fatalf("TestingLogger: failed to create logger: %v", err)
	}

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := logger.Shutdown(ctx); err != nil {
			t.Logf("TestingLogger: shutdown warning: %v", err)
		}
	})

	return logger, rec
}
