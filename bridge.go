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

	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// tracerName identifies this library to the OpenTelemetry SDK.
const tracerName = "github.com/spiraldb/os-signpost"

// spanKey pairs an interval end with its begin. The recording facility
// matches begin/end by (id, name, scope), so that tuple is the key.
type spanKey struct {
	id    SignpostID
	name  string
	scope Scope
}

// spanBridge is a Recorder that maps signpost records onto
// OpenTelemetry spans: an interval becomes a span spanning its
// begin/end timestamps, an event becomes an instantaneous span. Open
// spans are tracked in a map keyed by (id, name, scope) until their
// end record arrives.
type spanBridge struct {
	provider *sdktrace.TracerProvider
	tracer   trace.Tracer
	owned    bool // whether Shutdown tears down the provider

	mu   sync.Mutex
	open map[spanKey]trace.Span

	down         atomic.Bool
	shutdownOnce sync.Once
	shutdownErr  error
}

func newSpanBridge(tp *sdktrace.TracerProvider, owned bool) *spanBridge {
	return &spanBridge{
		provider: tp,
		tracer:   tp.Tracer(tracerName),
		owned:    owned,
		open:     make(map[spanKey]trace.Span),
	}
}

// Enabled reports true until the bridge is shut down. A single atomic
// load, so the disabled fast path stays cheap.
func (b *spanBridge) Enabled() bool {
	return !b.down.Load()
}

// Record translates one signpost record into span operations.
func (b *spanBridge) Record(r Record) {
	switch r.Kind {
	case KindIntervalBegin:
		b.beginSpan(r)
	case KindIntervalEnd:
		b.endSpan(r)
	case KindEvent:
		b.eventSpan(r)
	}
}

func (b *spanBridge) beginSpan(r Record) {
	_, span := b.tracer.Start(context.Background(), r.Name,
		trace.WithTimestamp(r.Time),
		trace.WithAttributes(recordAttributes(r)...),
	)

	key := spanKey{id: r.ID, name: r.Name, scope: r.Scope}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.down.Load() {
		// Shut down between emit and here; close the span immediately
		// rather than leaking it.
		span.End(trace.WithTimestamp(r.Time))
		return
	}
	if prev, ok := b.open[key]; ok {
		// Two concurrently open intervals shared an id within one
		// matching domain, which the id allocation rules forbid. Close
		// the displaced span so it is not orphaned.
		prev.End()
	}
	b.open[key] = span
}

func (b *spanBridge) endSpan(r Record) {
	key := spanKey{id: r.ID, name: r.Name, scope: r.Scope}

	b.mu.Lock()
	span, ok := b.open[key]
	if ok {
		delete(b.open, key)
	}
	b.mu.Unlock()

	if ok {
		span.End(trace.WithTimestamp(r.Time))
	}
	// An end without a begin is dropped: the core never produces one,
	// so it can only come from a caller forging records.
}

func (b *spanBridge) eventSpan(r Record) {
	// Instantaneous span: same start and end timestamp.
	_, span := b.tracer.Start(context.Background(), r.Name,
		trace.WithTimestamp(r.Time),
		trace.WithAttributes(recordAttributes(r)...),
	)
	span.End(trace.WithTimestamp(r.Time))
}

// Shutdown ends any spans whose intervals are still open (orphaned
// begins), then flushes and stops the provider. Idempotent.
func (b *spanBridge) Shutdown(ctx context.Context) error {
	b.shutdownOnce.Do(func() {
		b.down.Store(true)

		b.mu.Lock()
		for key, span := range b.open {
			span.End()
			delete(b.open, key)
		}
		b.mu.Unlock()

		if b.owned {
			b.shutdownErr = b.provider.Shutdown(ctx)
		}
	})
	return b.shutdownErr
}

func recordAttributes(r Record) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, 5)
	attrs = append(attrs,
		attribute.String("signpost.id", r.ID.String()),
		attribute.String("signpost.scope", r.Scope.String()),
		attribute.String("signpost.subsystem", r.Subsystem),
		attribute.String("signpost.category", r.Category),
	)
	if r.Message != "" {
		attrs = append(attrs, attribute.String("signpost.message", r.Message))
	}
	return attrs
}
