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

import "sync/atomic"

// Interval represents one open interval begin record. It is created by
// [Logger.Interval], which emits the begin immediately; calling [Interval.End]
// emits the matching end with the identical id, name, and scope.
//
// Go has no implicit scope-exit hook, so closing via defer is the
// mandatory pattern: it runs on every exit path, including early
// returns and panics.
type Interval struct {
	logger *Logger
	id     SignpostID
	name   string

	// began is set when the begin record was actually emitted. If the
	// recorder was disabled at open, End stays a no-op.
	began  bool
	closed atomic.Bool
}

// ID returns the id the interval was opened with.
func (iv *Interval) ID() SignpostID { return iv.id }

// Name returns the interval name.
func (iv *Interval) Name() string { return iv.name }

// End closes the interval, emitting the end record that the recording
// facility matches to the begin by (id, name, scope). The transition
// happens exactly once: second and later calls, from any goroutine,
// emit nothing. A nil receiver is also safe, so `defer iv.End()` works
// on error paths where iv was never assigned.
//
// If the begin record was emitted, End emits the end even when the
// recorder reports disabled at close time, keeping the facility's
// begin/end pairing consistent. If the begin was suppressed (recorder
// disabled at open), End emits nothing.
func (iv *Interval) End() {
	if iv == nil || !iv.closed.CompareAndSwap(false, true) {
		return
	}
	if !iv.began {
		return
	}
	iv.logger.emit(KindIntervalEnd, iv.id, iv.name, "")
}
