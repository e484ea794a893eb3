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
	"unsafe"
)

// SignpostID is a 64-bit correlation identifier that links an interval's
// begin record to its end record. Intervals with the same logger and name
// can be in flight simultaneously; the recording facility disambiguates
// them by id, so two concurrently open intervals within the same
// (logger, scope) domain must not share one.
type SignpostID uint64

const (
	// IDNull is the reserved zero value. It means "unset" and must never
	// be used to open an interval or emit an event.
	IDNull SignpostID = 0

	// IDInvalid is the reserved all-ones error sentinel.
	IDInvalid SignpostID = ^SignpostID(0)
)

// Generated ids occupy the low half of the 64-bit space (high bit clear);
// pointer-derived ids always have the high bit set. The two allocation
// schemes can therefore coexist on one logger without colliding.
const (
	counterIDMask = uint64(1)<<63 - 1
	pointerIDBit  = uint64(1) << 63
)

// Multiplicative hash constant (Knuth) used to disperse pointer bits
// across the id space.
const addressMultiplier = 2654435761

// IDFromRaw creates a SignpostID from an existing 64-bit value, for
// callers that already hold a unique correlation value (a request id,
// a row key). The caller must ensure the value is unique within the
// matching scope and is not one of the reserved values.
func IDFromRaw(raw uint64) SignpostID {
	return SignpostID(raw)
}

// Raw returns the raw 64-bit value of the id, for storing in external
// systems or debugging.
func (id SignpostID) Raw() uint64 {
	return uint64(id)
}

// IsValid reports whether the id may be used to open an interval or
// emit an event. The reserved values [IDNull] and [IDInvalid] are not
// valid.
func (id SignpostID) IsValid() bool {
	return id != IDNull && id != IDInvalid
}

// String formats the id as a hex literal.
func (id SignpostID) String() string {
	return fmt.Sprintf("0x%x", uint64(id))
}

// GenerateID returns a fresh id guaranteed to be unique among all ids
// generated on this logger (and its [Logger.WithScope] copies, which
// share the allocator). Safe for concurrent use: N concurrent calls
// return N distinct ids. This is the safest way to create ids when no
// existing unique identifier is at hand.
func (l *Logger) GenerateID() SignpostID {
	for {
		v := l.seq.Add(1) & counterIDMask
		if id := SignpostID(v); id.IsValid() {
			return id
		}
	}
}

// PointerID derives a deterministic id from p's address: the same
// pointer yields the same id for as long as the pointee is alive. This
// is useful for tracking an object's lifecycle, and for correlating a
// begin emitted in one place with an end emitted elsewhere through the
// same pointer.
//
// The address is dispersed with a multiplicative hash and tagged so it
// can never collide with ids from [Logger.GenerateID] on the same
// logger. The result is always valid on supported pointer widths.
//
// Returns [ErrInvalidScope] if the logger is system-scoped, since
// addresses are not meaningful across process boundaries. Returns
// [ErrInvalidID] for a nil pointer.
func PointerID[T any](l *Logger, p *T) (SignpostID, error) {
	if l.scope == ScopeSystem {
		return IDNull, fmt.Errorf("pointer-derived ids are process-local: %w", ErrInvalidScope)
	}
	if p == nil {
		return IDNull, fmt.Errorf("nil pointer: %w", ErrInvalidID)
	}
	addr := uint64(uintptr(unsafe.Pointer(p)))
	id := SignpostID(addr*addressMultiplier | pointerIDBit)
	if id == IDInvalid {
		// Still deterministic for this address; keeps the high bit.
		id ^= 1
	}
	return id, nil
}
