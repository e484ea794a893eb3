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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetGlobal returns the global provider to its unconfigured state.
// Tests touching the global provider share process state, so they must
// not run in parallel.
func resetGlobal() {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = nil
}

func TestDefaultBeforeConfigure(t *testing.T) {
	resetGlobal()

	_, err := Default()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotConfigured))
}

func TestConfigureOnce(t *testing.T) {
	resetGlobal()

	first, err := Configure("com.test.app", CategoryPointsOfInterest)
	require.NoError(t, err)
	require.NotNil(t, first)

	got, err := Default()
	require.NoError(t, err)
	assert.Same(t, first, got)

	// Second configuration is rejected; the first logger stays.
	_, err = Configure("com.other.app", CategoryDynamicTracing)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAlreadyConfigured))

	got, err = Default()
	require.NoError(t, err)
	assert.Same(t, first, got)
}

func TestConfigureInvalidLeavesUnconfigured(t *testing.T) {
	resetGlobal()

	_, err := Configure("", CategoryPointsOfInterest)
	require.Error(t, err)

	// A failed Configure must not consume the one-shot slot.
	_, err = Default()
	assert.True(t, errors.Is(err, ErrNotConfigured))

	_, err = Configure("com.test.app", CategoryPointsOfInterest)
	require.NoError(t, err)
}

func TestMustConfigurePanicsOnRepeat(t *testing.T) {
	resetGlobal()

	MustConfigure("com.test.app", CategoryPointsOfInterest)
	require.Panics(t, func() {
		MustConfigure("com.test.app", CategoryPointsOfInterest)
	})
}

// Round-trip scenario: configure the global provider, open an interval,
// emit an event inside it, close the interval, and observe the exact
// record sequence at the sink.
func TestGlobalRoundTrip(t *testing.T) {
	resetGlobal()

	rec := NewTestRecorder()
	logger, err := Configure("com.test.app", CategoryPointsOfInterest, WithRecorder(rec))
	require.NoError(t, err)

	id := logger.GenerateID()

	iv, err := logger.Interval(id, "work")
	require.NoError(t, err)
	require.NoError(t, logger.Event(logger.GenerateID(), "checkpoint"))
	iv.End()

	records := rec.Records()
	require.Len(t, records, 3)

	assert.Equal(t, KindIntervalBegin, records[0].Kind)
	assert.Equal(t, "work", records[0].Name)
	assert.Equal(t, id, records[0].ID)

	assert.Equal(t, KindEvent, records[1].Kind)
	assert.Equal(t, "checkpoint", records[1].Name)

	assert.Equal(t, KindIntervalEnd, records[2].Kind)
	assert.Equal(t, "work", records[2].Name)
	assert.Equal(t, id, records[2].ID)

	for _, r := range records {
		assert.Equal(t, ScopeProcess, r.Scope)
		assert.Equal(t, "com.test.app", r.Subsystem)
		assert.Equal(t, CategoryPointsOfInterest, r.Category)
	}
}
