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

import "runtime"

// Function instrumentation sugar. These helpers are layered purely on
// the public Logger/Interval API and keep no state of their own: they
// generate an id, open an interval named "caller::name", and guarantee
// its closure by defer on every exit path, including early returns and
// panics.

// Trace runs fn inside an interval named "caller::name" on the logger.
// fn's error is returned unchanged; the interval is closed on every
// exit path.
//
//	func (s *Store) load() error {
//	    return s.logger.Trace("load", func() error {
//	        return s.loadFromDisk()
//	    })
//	}
func (l *Logger) Trace(name string, fn func() error) error {
	return l.traced(qualifiedName(2, name), "", fn)
}

// TraceWithMessage is [Logger.Trace] with a free-text message on the
// begin record.
func (l *Logger) TraceWithMessage(name, message string, fn func() error) error {
	return l.traced(qualifiedName(2, name), message, fn)
}

func (l *Logger) traced(fullName, message string, fn func() error) error {
	iv, err := l.interval(l.GenerateID(), fullName, message)
	if err != nil {
		return fn()
	}
	defer iv.End()
	return fn()
}

// Trace runs fn inside an interval on the default logger installed by
// [Configure]. If the global provider is unconfigured, fn runs
// unchanged and nothing is emitted; instrumentation never breaks the
// host application.
func Trace(name string, fn func() error) error {
	l, err := Default()
	if err != nil {
		return fn()
	}
	return l.traced(qualifiedName(2, name), "", fn)
}

// TraceWithMessage is [Trace] with a free-text message on the begin
// record.
func TraceWithMessage(name, message string, fn func() error) error {
	l, err := Default()
	if err != nil {
		return fn()
	}
	return l.traced(qualifiedName(2, name), message, fn)
}

// TraceEvent emits a point event named "caller::name" on the default
// logger, with a generated id. No-op if the global provider is
// unconfigured.
func TraceEvent(name string) {
	l, err := Default()
	if err != nil {
		return
	}
	_ = l.Event(l.GenerateID(), qualifiedName(2, name))
}

// TraceEventWithMessage is [TraceEvent] with a free-text message.
func TraceEventWithMessage(name, message string) {
	l, err := Default()
	if err != nil {
		return
	}
	_ = l.EventWithMessage(l.GenerateID(), qualifiedName(2, name), message)
}

// qualifiedName builds "caller::name", where caller is the fully
// qualified function name skip frames above this one.
func qualifiedName(skip int, name string) string {
	return callerFuncName(skip+1) + "::" + name
}

// callerFuncName resolves the caller's function name, e.g.
// "github.com/example/app/store.(*Store).load".
func callerFuncName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	return fn.Name()
}
