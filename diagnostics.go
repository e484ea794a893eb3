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

import "log/slog"

// DiagnosticLevel represents the severity of an internal operational
// diagnostic from this package.
type DiagnosticLevel int

const (
	// DiagnosticError indicates an error (e.g. the bridge failed to start).
	DiagnosticError DiagnosticLevel = iota
	// DiagnosticWarning indicates a warning (e.g. recorder unavailable,
	// tracing degraded to disabled).
	DiagnosticWarning
	// DiagnosticInfo indicates an informational message (e.g. recording
	// initialized).
	DiagnosticInfo
	// DiagnosticDebug indicates a debug message.
	DiagnosticDebug
)

// Diagnostic is an internal operational event from the signpost
// package itself, distinct from the trace records it emits. Diagnostics
// report degraded recorders, initialization, and shutdown.
type Diagnostic struct {
	Level   DiagnosticLevel
	Message string
	Args    []any // slog-style key-value pairs
}

// DiagnosticHandler processes internal diagnostics. Implementations can
// log them, forward them to monitoring, or ignore them.
type DiagnosticHandler func(Diagnostic)

// DefaultDiagnosticHandler returns a DiagnosticHandler that logs
// diagnostics to the provided slog.Logger. This is the implementation
// installed by [WithLogger].
//
// If logger is nil, returns a no-op handler that discards everything.
func DefaultDiagnosticHandler(logger *slog.Logger) DiagnosticHandler {
	if logger == nil {
		return func(Diagnostic) {} // no-op
	}
	return func(d Diagnostic) {
		switch d.Level {
		case DiagnosticError:
			logger.Error(d.Message, d.Args...)
		case DiagnosticWarning:
			logger.Warn(d.Message, d.Args...)
		case DiagnosticInfo:
			logger.Info(d.Message, d.Args...)
		case DiagnosticDebug:
			logger.Debug(d.Message, d.Args...)
		}
	}
}

// emitWarning emits a warning diagnostic if a handler is configured.
func (l *Logger) emitWarning(msg string, args ...any) {
	if l.diagHandler != nil {
		l.diagHandler(Diagnostic{Level: DiagnosticWarning, Message: msg, Args: args})
	}
}

// emitInfo emits an info diagnostic if a handler is configured.
func (l *Logger) emitInfo(msg string, args ...any) {
	if l.diagHandler != nil {
		l.diagHandler(Diagnostic{Level: DiagnosticInfo, Message: msg, Args: args})
	}
}

// emitDebug emits a debug diagnostic if a handler is configured.
func (l *Logger) emitDebug(msg string, args ...any) {
	if l.diagHandler != nil {
		l.diagHandler(Diagnostic{Level: DiagnosticDebug, Message: msg, Args: args})
	}
}
