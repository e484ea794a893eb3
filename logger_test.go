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
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidation(t *testing.T) {
	t.Parallel()

	t.Run("EmptySubsystem", func(t *testing.T) {
		t.Parallel()

		_, err := New("", CategoryPointsOfInterest)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "subsystem")
	})

	t.Run("EmptyCategory", func(t *testing.T) {
		t.Parallel()

		_, err := New("com.example.app", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "category")
	})

	t.Run("InvalidScope", func(t *testing.T) {
		t.Parallel()

		_, err := New("com.example.app", CategoryPointsOfInterest, WithScope(Scope(42)))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidScope))
	})

	t.Run("MustNewPanics", func(t *testing.T) {
		t.Parallel()

		require.Panics(t, func() {
			MustNew("", CategoryPointsOfInterest)
		})
	})
}

func TestNoopDefault(t *testing.T) {
	t.Parallel()

	logger, err := New("com.example.app", CategoryDynamicTracing)
	require.NoError(t, err)

	assert.Equal(t, NoopProvider, logger.GetProvider())
	assert.False(t, logger.Enabled())
	assert.Equal(t, "com.example.app", logger.Subsystem())
	assert.Equal(t, CategoryDynamicTracing, logger.Category())
	assert.Equal(t, ScopeProcess, logger.Scope())

	// Emissions are no-ops but never errors.
	require.NoError(t, logger.Event(logger.GenerateID(), "point"))
	iv, err := logger.Interval(logger.GenerateID(), "work")
	require.NoError(t, err)
	iv.End()

	require.NoError(t, logger.Shutdown(context.Background()))
}

func TestEventEmission(t *testing.T) {
	t.Parallel()

	logger, rec := TestingLogger(t)
	id := logger.GenerateID()

	require.NoError(t, logger.Event(id, "checkpoint"))
	require.NoError(t, logger.EventWithMessage(id, "checkpoint", "halfway"))

	records := rec.Records()
	require.Len(t, records, 2)

	assert.Equal(t, KindEvent, records[0].Kind)
	assert.Equal(t, id, records[0].ID)
	assert.Equal(t, "checkpoint", records[0].Name)
	assert.Empty(t, records[0].Message)
	assert.Equal(t, ScopeProcess, records[0].Scope)
	assert.Equal(t, "com.signpost.test", records[0].Subsystem)
	assert.Equal(t, CategoryPointsOfInterest, records[0].Category)
	assert.False(t, records[0].Time.IsZero())

	assert.Equal(t, "halfway", records[1].Message)
}

func TestInvalidIDRejected(t *testing.T) {
	t.Parallel()

	logger, rec := TestingLogger(t)

	err := logger.Event(IDNull, "point")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidID))

	err = logger.EventWithMessage(IDInvalid, "point", "msg")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidID))

	iv, err := logger.Interval(IDNull, "work")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidID))
	assert.Nil(t, iv)

	iv, err = logger.IntervalWithMessage(IDInvalid, "work", "msg")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidID))
	assert.Nil(t, iv)

	// Fail fast means nothing reached the recorder.
	assert.Empty(t, rec.Records())
}

func TestDisabledLoggerEmitsNothing(t *testing.T) {
	t.Parallel()

	logger, rec := TestingLogger(t)
	rec.SetEnabled(false)

	assert.False(t, logger.Enabled())

	require.NoError(t, logger.Event(logger.GenerateID(), "point"))

	iv, err := logger.Interval(logger.GenerateID(), "work")
	require.NoError(t, err)
	require.NotNil(t, iv, "disabled logger still returns a usable interval")
	iv.End()

	assert.Empty(t, rec.Records())
}

func TestEnablementRecheckedPerCall(t *testing.T) {
	t.Parallel()

	logger, rec := TestingLogger(t)
	id := logger.GenerateID()

	require.NoError(t, logger.Event(id, "one"))
	rec.SetEnabled(false)
	require.NoError(t, logger.Event(id, "two"))
	rec.SetEnabled(true)
	require.NoError(t, logger.Event(id, "three"))

	records := rec.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "one", records[0].Name)
	assert.Equal(t, "three", records[1].Name)
}

func TestWithScopeSharesAllocator(t *testing.T) {
	t.Parallel()

	logger, rec := TestingLogger(t)
	threaded := logger.WithScope(ScopeThread)

	assert.Equal(t, ScopeThread, threaded.Scope())
	assert.Equal(t, ScopeProcess, logger.Scope(), "rebinding must not mutate the original")

	// Copies share the id allocator, so ids never collide across them.
	id1 := logger.GenerateID()
	id2 := threaded.GenerateID()
	assert.NotEqual(t, id1, id2)

	// Records carry the scope of the logger that emitted them.
	require.NoError(t, threaded.Event(id2, "point"))
	records := rec.Records()
	require.Len(t, records, 1)
	assert.Equal(t, ScopeThread, records[0].Scope)
}

func TestStdoutProviderConstruction(t *testing.T) {
	t.Parallel()

	logger, err := New("com.example.app", CategoryPointsOfInterest, WithStdout())
	require.NoError(t, err)

	assert.Equal(t, StdoutProvider, logger.GetProvider())
	assert.True(t, logger.Enabled())

	// Shutdown is idempotent.
	require.NoError(t, logger.Shutdown(context.Background()))
	require.NoError(t, logger.Shutdown(context.Background()))
	assert.False(t, logger.Enabled())
}

func TestDiagnosticsViaSlog(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	slogger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logger, err := New("com.example.app", CategoryPointsOfInterest,
		WithStdout(),
		WithLogger(slogger),
	)
	require.NoError(t, err)
	defer logger.Shutdown(context.Background())

	assert.Contains(t, buf.String(), "signpost recording initialized")
	assert.Contains(t, buf.String(), "com.example.app")
}

func TestDefaultDiagnosticHandlerNilLogger(t *testing.T) {
	t.Parallel()

	handler := DefaultDiagnosticHandler(nil)
	require.NotNil(t, handler)
	assert.NotPanics(t, func() {
		handler(Diagnostic{Level: DiagnosticError, Message: "dropped"})
	})
}
