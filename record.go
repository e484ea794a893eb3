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
	"time"
)

// RecordKind identifies the shape of a signpost record.
type RecordKind uint8

const (
	// KindEvent marks a single point in time.
	KindEvent RecordKind = iota
	// KindIntervalBegin opens an interval.
	KindIntervalBegin
	// KindIntervalEnd closes an interval; matched to its begin by
	// (ID, Name, Scope).
	KindIntervalEnd
)

// String returns the kind name for diagnostics.
func (k RecordKind) String() string {
	switch k {
	case KindEvent:
		return "event"
	case KindIntervalBegin:
		return "interval_begin"
	case KindIntervalEnd:
		return "interval_end"
	default:
		return "unknown"
	}
}

// Record is one well-formed signpost record as handed to the recording
// facility. End records carry the same ID, Name, and Scope as their
// begin but never repeat the begin's message.
type Record struct {
	Kind      RecordKind
	ID        SignpostID
	Name      string
	Message   string
	Scope     Scope
	Subsystem string
	Category  string
	Time      time.Time
}

// Recorder is the external recording facility: an opaque sink that
// persists or streams records to a trace viewer. Implementations must
// be safe for concurrent use.
//
// Enabled is consulted on every emission and may change at runtime
// (a viewer attaching or detaching); it must be cheap, as it is the
// fast path that makes disabled tracing cost close to nothing.
type Recorder interface {
	// Enabled reports whether the facility is actively recording.
	Enabled() bool

	// Record accepts one signpost record. Called only while the
	// facility is (or recently was) enabled; never concurrently
	// unsafe. Record must not panic.
	Record(Record)

	// Shutdown flushes and stops the facility. Idempotent.
	Shutdown(ctx context.Context) error
}
