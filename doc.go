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

// Package signpost provides lightweight performance-trace
// instrumentation: named intervals (a paired begin/end marking a
// duration) and events (single points in time), emitted through a
// named, categorized [Logger] to an external recording facility for
// consumption by a trace viewer.
//
// # Basic Usage
//
//	import (
//	    "context"
//	    "log"
//
//	    signpost "github.com/spiraldb/os-signpost"
//	)
//
//	logger, err := signpost.New("com.example.myapp", signpost.CategoryPointsOfInterest,
//	    signpost.WithStdout(),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer logger.Shutdown(context.Background())
//
//	iv, err := logger.Interval(logger.GenerateID(), "load")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer iv.End()
//
// # Intervals vs Events
//
// Intervals represent periods of time with a beginning and end; events
// mark single points in time. Intervals with the same logger and name
// can be in flight simultaneously, so each must be identified with a
// unique [SignpostID]: generate one with [Logger.GenerateID], derive
// one deterministically from an object's address with [PointerID], or
// wrap an existing unique value with [IDFromRaw].
//
// # Matching Scope
//
// Begin/end matching is confined to a [Scope]: [ScopeThread],
// [ScopeProcess] (default), or [ScopeSystem]. The scope defines the
// domain within which an id must be unique while its interval is open.
// Rebind with [Logger.WithScope].
//
// # Providers
//
// The recording facility behind a Logger is chosen by option:
//
//   - [WithNoop] (default): nothing recorded, [Logger.Enabled] is false
//   - [WithStdout]: records printed to stdout (development/testing)
//   - [WithOTLP] / [WithOTLPHTTP]: records exported to an OTLP collector
//   - [WithRecorder]: a caller-supplied [Recorder]
//
// If a backend is unavailable the logger degrades to disabled rather
// than failing: tracing being off never breaks the host application.
//
// # The Enablement Fast Path
//
// [Logger.Enabled] re-reads the facility's recording state on every
// call and is cheap. Gate expensive message construction behind it:
//
//	if logger.Enabled() {
//	    logger.EventWithMessage(id, "query", expensiveSummary(q))
//	}
//
// # Function Instrumentation
//
// [Logger.Trace] and the package-level [Trace] wrap a function in an
// interval named after its caller and guarantee closure on every exit
// path:
//
//	err := logger.Trace("process", func() error {
//	    return process(items)
//	})
//
// # Global Provider
//
// [Configure] installs a process-wide default logger exactly once;
// [Default] returns it. A second Configure returns
// [ErrAlreadyConfigured]; Default before Configure returns
// [ErrNotConfigured].
//
// # Thread Safety
//
// All Logger, SignpostID, and Interval operations are safe for
// concurrent use without external locking. Id generation is a
// lock-free atomic increment; [Interval.End] is idempotent under
// concurrent calls.
package signpost
