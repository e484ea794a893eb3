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
	"errors"
	"fmt"
	"sync/atomic"
	"time"
)

// Logger is a named, categorized channel through which signposts reach
// the external recording facility. It holds the recorder handle, the
// configured [Scope], and the id allocator; all methods are safe for
// concurrent use.
//
// Loggers are created once per (subsystem, category) and reused; they
// are cheap to share and must not be copied by value (use
// [Logger.WithScope] to rebind the scope).
type Logger struct {
	subsystem string
	category  string
	scope     Scope

	recorder Recorder
	seq      *atomic.Uint64 // id allocator, shared by WithScope copies

	diagHandler DiagnosticHandler

	// Provider configuration, consumed by initializeRecorder at New.
	provider       Provider
	providerSet    bool
	otlpEndpoint   string
	otlpInsecure   bool
	customRecorder Recorder

	// Validation errors collected during option application.
	validationErrors []error
}

// New creates a Logger for the given subsystem and category.
// The subsystem is typically a reverse-DNS application identifier
// ("com.example.myapp"); the category is one of the Category* constants
// or a custom string.
//
// New never fails because the recording facility is unavailable: in
// that case the logger degrades to disabled ([Logger.Enabled] reports
// false) and every emission is a no-op. New does fail on invalid
// configuration (empty subsystem or category, conflicting provider
// options, nil recorder).
//
// Default configuration:
//   - Scope: [ScopeProcess]
//   - Provider: [NoopProvider] (nothing recorded)
//
// Example:
//
//	logger, err := signpost.New("com.example.myapp", signpost.CategoryPointsOfInterest,
//	    signpost.WithStdout(),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer logger.Shutdown(context.Background())
func New(subsystem, category string, opts ...Option) (*Logger, error) {
	l := newDefaultLogger(subsystem, category)

	for _, opt := range opts {
		opt(l)
	}

	if err := l.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := l.initializeRecorder(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to initialize recording: %w", err)
	}

	return l, nil
}

// MustNew creates a Logger and panics on configuration error.
//
// Example:
//
//	logger := signpost.MustNew("com.example.myapp", signpost.CategoryDynamicTracing)
func MustNew(subsystem, category string, opts ...Option) *Logger {
	l, err := New(subsystem, category, opts...)
	if err != nil {
		panic(fmt.Sprintf("signpost: failed to create logger: %v", err))
	}
	return l
}

// newDefaultLogger creates a logger with default values.
func newDefaultLogger(subsystem, category string) *Logger {
	return &Logger{
		subsystem: subsystem,
		category:  category,
		scope:     ScopeProcess,
		provider:  NoopProvider,
		seq:       new(atomic.Uint64),
	}
}

// validate checks that the configuration is valid.
func (l *Logger) validate() error {
	if len(l.validationErrors) > 0 {
		return errors.Join(l.validationErrors...)
	}
	if l.subsystem == "" {
		return errors.New("subsystem cannot be empty")
	}
	if l.category == "" {
		return errors.New("category cannot be empty")
	}
	if !l.scope.valid() {
		return fmt.Errorf("unknown scope %d: %w", int(l.scope), ErrInvalidScope)
	}
	return nil
}

// WithScope returns a Logger bound to the given scope. The copy shares
// the recorder handle and the id allocator with the receiver; no
// re-acquisition of the recording facility takes place.
func (l *Logger) WithScope(scope Scope) *Logger {
	rebound := *l
	rebound.scope = scope
	return &rebound
}

// Subsystem returns the subsystem the logger was created with.
func (l *Logger) Subsystem() string { return l.subsystem }

// Category returns the category the logger was created with.
func (l *Logger) Category() string { return l.category }

// Scope returns the logger's configured matching scope.
func (l *Logger) Scope() Scope { return l.scope }

// Enabled reports whether the recording facility is actively recording
// this channel. The flag may change at runtime, so it is re-read from
// the recorder on every call and never cached.
//
// This is the documented fast path: gate expensive message construction
// behind it so that disabled tracing costs close to nothing.
//
//	if logger.Enabled() {
//	    logger.EventWithMessage(id, "query", expensiveSummary(q))
//	}
func (l *Logger) Enabled() bool {
	return l.recorder.Enabled()
}

// Event emits a single point-in-time record. No-op when the recorder
// is disabled. Returns [ErrInvalidID] if id is a reserved value.
func (l *Logger) Event(id SignpostID, name string) error {
	return l.event(id, name, "")
}

// EventWithMessage emits a single point-in-time record carrying a
// free-text message. No-op when the recorder is disabled. Returns
// [ErrInvalidID] if id is a reserved value.
func (l *Logger) EventWithMessage(id SignpostID, name, message string) error {
	return l.event(id, name, message)
}

func (l *Logger) event(id SignpostID, name, message string) error {
	if !id.IsValid() {
		return fmt.Errorf("event %q: %w", name, ErrInvalidID)
	}
	if !l.Enabled() {
		return nil
	}
	l.emit(KindEvent, id, name, message)
	return nil
}

// Interval emits an interval begin record and returns the open
// [Interval]. Close it exactly once with [Interval.End], normally via
// defer so every exit path is covered:
//
//	iv, err := logger.Interval(logger.GenerateID(), "load")
//	if err != nil {
//	    return err
//	}
//	defer iv.End()
//
// If the recorder is disabled, no begin record is emitted but a valid
// Interval is still returned; its End is a safe no-op, so calling code
// never needs to branch on enablement to manage the interval's
// lifetime. Returns [ErrInvalidID] if id is a reserved value.
func (l *Logger) Interval(id SignpostID, name string) (*Interval, error) {
	return l.interval(id, name, "")
}

// IntervalWithMessage is [Logger.Interval] with a free-text message on
// the begin record. The message is not repeated on the end record.
func (l *Logger) IntervalWithMessage(id SignpostID, name, message string) (*Interval, error) {
	return l.interval(id, name, message)
}

func (l *Logger) interval(id SignpostID, name, message string) (*Interval, error) {
	if !id.IsValid() {
		return nil, fmt.Errorf("interval %q: %w", name, ErrInvalidID)
	}
	iv := &Interval{logger: l, id: id, name: name}
	if l.Enabled() {
		l.emit(KindIntervalBegin, id, name, message)
		iv.began = true
	}
	return iv, nil
}

// emit is the centralized emission path. Enablement is checked by the
// callers, not here: interval ends bypass the check when their begin
// was recorded (see Interval.End).
func (l *Logger) emit(kind RecordKind, id SignpostID, name, message string) {
	l.recorder.Record(Record{
		Kind:      kind,
		ID:        id,
		Name:      name,
		Message:   message,
		Scope:     l.scope,
		Subsystem: l.subsystem,
		Category:  l.category,
		Time:      time.Now(),
	})
}

// Shutdown flushes and stops the recording facility. Call it before
// the application exits so batched records reach the viewer. Idempotent.
//
// Recorders supplied via [WithRecorder] are managed by the caller and
// are not shut down here.
func (l *Logger) Shutdown(ctx context.Context) error {
	if l.provider == CustomProvider {
		l.emitDebug("skipping shutdown of caller-managed recorder")
		return nil
	}
	return l.recorder.Shutdown(ctx)
}
