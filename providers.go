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
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

// Provider represents the available recording backends.
type Provider string

const (
	// NoopProvider records nothing (default). Enabled() reports false.
	NoopProvider Provider = "noop"

	// StdoutProvider bridges records to a stdout span exporter
	// (development/testing).
	StdoutProvider Provider = "stdout"

	// OTLPProvider bridges records to an OTLP gRPC exporter.
	OTLPProvider Provider = "otlp"

	// OTLPHTTPProvider bridges records to an OTLP HTTP exporter.
	OTLPHTTPProvider Provider = "otlp-http"

	// CustomProvider routes records to a caller-supplied Recorder.
	CustomProvider Provider = "custom"
)

// GetProvider returns the configured recording backend.
func (l *Logger) GetProvider() Provider {
	return l.provider
}

// noopRecorder is the disabled recording facility.
type noopRecorder struct{}

func (noopRecorder) Enabled() bool                  { return false }
func (noopRecorder) Record(Record)                  {}
func (noopRecorder) Shutdown(context.Context) error { return nil }

// initializeRecorder installs the recorder for the configured provider.
// Backend unavailability is not an error: the logger degrades to the
// disabled recorder and reports the condition through diagnostics.
func (l *Logger) initializeRecorder(ctx context.Context) error {
	switch l.provider {
	case NoopProvider:
		l.recorder = noopRecorder{}
		return nil
	case CustomProvider:
		l.recorder = l.customRecorder
		return nil
	case StdoutProvider:
		return l.initStdoutRecorder()
	case OTLPProvider:
		return l.initOTLPRecorder(ctx)
	case OTLPHTTPProvider:
		return l.initOTLPHTTPRecorder(ctx)
	default:
		return fmt.Errorf("unsupported provider: %s", l.provider)
	}
}

// initStdoutRecorder bridges records to the stdout trace exporter.
func (l *Logger) initStdoutRecorder() error {
	exporter, err := stdouttrace.New(
		stdouttrace.WithPrettyPrint(),
	)
	if err != nil {
		l.degrade(StdoutProvider, err)
		return nil
	}

	l.installBridge(exporter)
	l.emitInfo("signpost recording initialized", "provider", string(StdoutProvider), "subsystem", l.subsystem)

	return nil
}

// initOTLPRecorder bridges records to the OTLP gRPC exporter.
// The context is used for connection establishment.
func (l *Logger) initOTLPRecorder(ctx context.Context) error {
	opts := []otlptracegrpc.Option{}

	if l.otlpEndpoint != "" {
		opts = append(opts, otlptracegrpc.WithEndpoint(l.otlpEndpoint))
	}

	if l.otlpInsecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}

	exporter, err := otlptracegrpc.New(ctx, opts...)
	if err != nil {
		l.degrade(OTLPProvider, err)
		return nil
	}

	l.installBridge(exporter)
	l.emitInfo("signpost recording initialized", "provider", string(OTLPProvider), "endpoint", l.otlpEndpoint, "subsystem", l.subsystem)

	return nil
}

// initOTLPHTTPRecorder bridges records to the OTLP HTTP exporter.
// The context is used for connection establishment.
func (l *Logger) initOTLPHTTPRecorder(ctx context.Context) error {
	opts := []otlptracehttp.Option{}

	if l.otlpEndpoint != "" {
		// Extract host:port and determine whether the endpoint is
		// plain HTTP.
		endpoint := l.otlpEndpoint
		isHTTP := false

		if trimmed, ok := strings.CutPrefix(endpoint, "http://"); ok {
			endpoint = trimmed
			isHTTP = true
		} else if trimmedHTTPS, trimmedOk := strings.CutPrefix(endpoint, "https://"); trimmedOk {
			endpoint = trimmedHTTPS
		}

		if idx := strings.Index(endpoint, "/"); idx != -1 {
			endpoint = endpoint[:idx]
		}

		opts = append(opts, otlptracehttp.WithEndpoint(endpoint))
		if isHTTP {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
	}

	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		l.degrade(OTLPHTTPProvider, err)
		return nil
	}

	l.installBridge(exporter)
	l.emitInfo("signpost recording initialized", "provider", string(OTLPHTTPProvider), "endpoint", l.otlpEndpoint, "subsystem", l.subsystem)

	return nil
}

// installBridge wires the span bridge over the given exporter.
func (l *Logger) installBridge(exporter sdktrace.SpanExporter) {
	res := createResource(l.subsystem)
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	l.recorder = newSpanBridge(tp, true)
}

// degrade installs the disabled recorder after a backend failure.
// Unavailability of the recording facility is never fatal (the host
// application must keep working with tracing off).
func (l *Logger) degrade(p Provider, err error) {
	l.emitWarning("recording facility unavailable, signposts disabled",
		"provider", string(p),
		"error", err,
	)
	l.recorder = noopRecorder{}
}

// createResource creates an OpenTelemetry resource carrying the
// subsystem as the service identity.
func createResource(subsystem string) *resource.Resource {
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(subsystem),
		semconv.ServiceVersion(Version),
	)
}
