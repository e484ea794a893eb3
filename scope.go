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

// Scope controls the matching domain for signpost interval begin/end
// pairing. A [SignpostID] must be unique within its scope while the
// interval is open; the recording facility matches begin and end
// records by (id, name, scope).
type Scope int

const (
	// ScopeProcess restricts matching to a single process (default).
	// An id must be unique across all goroutines in the process.
	ScopeProcess Scope = iota

	// ScopeThread restricts matching to a single thread of execution.
	// Two threads may reuse the same id concurrently without collision.
	ScopeThread

	// ScopeSystem allows matching to span cooperating processes.
	// Ids must be coordinated across processes; pointer-derived ids
	// are not valid here.
	ScopeSystem
)

// String returns the scope name for diagnostics and record output.
func (s Scope) String() string {
	switch s {
	case ScopeProcess:
		return "process"
	case ScopeThread:
		return "thread"
	case ScopeSystem:
		return "system"
	default:
		return "unknown"
	}
}

// valid reports whether s is one of the defined scopes.
func (s Scope) valid() bool {
	switch s {
	case ScopeProcess, ScopeThread, ScopeSystem:
		return true
	default:
		return false
	}
}
