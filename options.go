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
	"fmt"
	"log/slog"
)

// Option defines functional options for Logger configuration.
// Options are applied during Logger creation via [New].
type Option func(*Logger)

// WithScope sets the matching scope for intervals and events emitted
// through the logger. Default is [ScopeProcess].
//
// Example:
//
//	logger := signpost.MustNew("com.example.myapp", signpost.CategoryDynamicTracing,
//	    signpost.WithScope(signpost.ScopeThread),
//	)
func WithScope(scope Scope) Option {
	return func(l *Logger) {
		l.scope = scope
	}
}

// WithDiagnosticHandler sets a custom handler for internal operational
// diagnostics. Use this for advanced cases like custom alerting or
// non-slog logging systems.
//
// Example:
//
//	signpost.New(subsystem, category, signpost.WithDiagnosticHandler(func(d signpost.Diagnostic) {
//	    if d.Level == signpost.DiagnosticError {
//	        alerting.Notify(d.Message)
//	    }
//	}))
func WithDiagnosticHandler(handler DiagnosticHandler) Option {
	return func(l *Logger) {
		l.diagHandler = handler
	}
}

// WithLogger routes internal operational diagnostics to the provided
// slog.Logger using [DefaultDiagnosticHandler]. This is a convenience
// wrapper around [WithDiagnosticHandler].
//
// Example:
//
//	signpost.New(subsystem, category, signpost.WithLogger(slog.Default()))
func WithLogger(logger *slog.Logger) Option {
	return WithDiagnosticHandler(DefaultDiagnosticHandler(logger))
}

// WithNoop configures the noop provider (default, nothing recorded).
//
// Only one provider can be configured. Configuring multiple providers
// will result in a validation error.
func WithNoop() Option {
	return func(l *Logger) {
		l.setProvider(NoopProvider)
	}
}

// WithStdout configures the stdout provider for development and
// debugging: records flow through the OpenTelemetry span bridge into a
// pretty-printing stdout exporter.
//
// Only one provider can be configured. Configuring multiple providers
// will result in a validation error.
func WithStdout() Option {
	return func(l *Logger) {
		l.setProvider(StdoutProvider)
	}
}

// OTLPOption configures OTLP provider behavior.
type OTLPOption func(*otlpConfig)

type otlpConfig struct {
	insecure bool
}

// OTLPInsecure enables insecure gRPC for OTLP.
// Default is false (uses TLS). Set it for local development.
func OTLPInsecure() OTLPOption {
	return func(c *otlpConfig) {
		c.insecure = true
	}
}

// WithOTLP configures the OTLP gRPC provider with an endpoint in
// "host:port" form (e.g. "localhost:4317").
//
// Only one provider can be configured. Configuring multiple providers
// will result in a validation error.
//
// Example:
//
//	logger := signpost.MustNew(subsystem, category,
//	    signpost.WithOTLP("localhost:4317", signpost.OTLPInsecure()),
//	)
func WithOTLP(endpoint string, opts ...OTLPOption) Option {
	return func(l *Logger) {
		if !l.setProvider(OTLPProvider) {
			return
		}
		l.otlpEndpoint = endpoint
		cfg := &otlpConfig{}
		for _, opt := range opts {
			opt(cfg)
		}
		l.otlpInsecure = cfg.insecure
	}
}

// WithOTLPHTTP configures the OTLP HTTP provider with an endpoint in
// "http://host:port" form (e.g. "http://localhost:4318").
//
// Only one provider can be configured. Configuring multiple providers
// will result in a validation error.
func WithOTLPHTTP(endpoint string) Option {
	return func(l *Logger) {
		if !l.setProvider(OTLPHTTPProvider) {
			return
		}
		l.otlpEndpoint = endpoint
	}
}

// WithRecorder routes records to a caller-supplied [Recorder]. The
// caller manages the recorder's lifecycle; [Logger.Shutdown] will not
// shut it down. This is also how the test recorder plugs in.
//
// Only one provider can be configured. Configuring multiple providers
// will result in a validation error.
func WithRecorder(r Recorder) Option {
	return func(l *Logger) {
		if !l.setProvider(CustomProvider) {
			return
		}
		if r == nil {
			l.validationErrors = append(l.validationErrors,
				fmt.Errorf("provider: %w", ErrNilRecorder))
			return
		}
		l.customRecorder = r
	}
}

// setProvider records the provider choice, collecting a validation
// error when one was already chosen.
func (l *Logger) setProvider(p Provider) bool {
	if l.providerSet {
		l.validationErrors = append(l.validationErrors,
			fmt.Errorf("provider: multiple providers configured (already have %q, cannot add %q); only one provider allowed", l.provider, p))
		return false
	}
	l.provider = p
	l.providerSet = true
	return true
}
