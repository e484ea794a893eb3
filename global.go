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
	"sync"
)

// Process-wide default logger. Two states: unconfigured (nil) and
// configured; the transition happens at most once per process.
var (
	globalMu     sync.Mutex
	globalLogger *Logger
)

// Configure installs the process-wide default logger, returned by
// [Default] and used by the package-level [Trace] and [TraceEvent]
// helpers. Call it once, early, before concurrent use begins.
//
// A second call returns [ErrAlreadyConfigured] and leaves the first
// logger installed: reconfiguring mid-process would split interval
// matching across two identities at the recording facility.
//
// Example:
//
//	logger, err := signpost.Configure("com.example.myapp", signpost.CategoryPointsOfInterest,
//	    signpost.WithOTLP("localhost:4317"),
//	)
func Configure(subsystem, category string, opts ...Option) (*Logger, error) {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalLogger != nil {
		return nil, fmt.Errorf("configure %q/%q: %w", subsystem, category, ErrAlreadyConfigured)
	}

	l, err := New(subsystem, category, opts...)
	if err != nil {
		return nil, err
	}

	globalLogger = l
	return l, nil
}

// MustConfigure is [Configure] panicking on error, for use in main or
// init where a misconfigured bootstrap should stop the process.
func MustConfigure(subsystem, category string, opts ...Option) *Logger {
	l, err := Configure(subsystem, category, opts...)
	if err != nil {
		panic(fmt.Sprintf("signpost: failed to configure: %v", err))
	}
	return l
}

// Default returns the process-wide logger installed by [Configure].
// Every call after configuration returns the same instance. Before
// configuration it returns [ErrNotConfigured] rather than silently
// auto-configuring, so a misordered bootstrap is loud.
func Default() (*Logger, error) {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalLogger == nil {
		return nil, ErrNotConfigured
	}
	return globalLogger, nil
}
