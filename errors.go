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

import "errors"

// Error types for better error handling and testing.
//
// Sentinel errors (package-level vars) enable [errors.Is] checks;
// all errors returned by this package wrap one of them.
var (
	// ErrInvalidID indicates a reserved SignpostID ([IDNull] or [IDInvalid])
	// was passed where a real correlation id is required. Opening an
	// interval or emitting an event with a reserved id would corrupt
	// begin/end matching at the recording facility, so it fails fast.
	ErrInvalidID = errors.New("invalid signpost id")

	// ErrInvalidScope indicates the requested operation is not valid for
	// the logger's configured scope. Returned by [PointerID] on a
	// system-scoped logger, since memory addresses are not meaningful
	// across process boundaries.
	ErrInvalidScope = errors.New("invalid scope for operation")

	// ErrNotConfigured indicates [Default] was called before [Configure]
	// installed the process-wide default logger.
	ErrNotConfigured = errors.New("signpost not configured")

	// ErrAlreadyConfigured indicates [Configure] was called a second time.
	// The first logger stays installed; reconfiguring mid-process would
	// orphan interval matching across two different identities.
	ErrAlreadyConfigured = errors.New("signpost already configured")

	// ErrNilRecorder indicates a nil [Recorder] was provided to
	// [WithRecorder]. This is a programmer error and is caught during
	// initialization.
	ErrNilRecorder = errors.New("recorder is nil")
)
