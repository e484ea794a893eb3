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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservedIDsAreInvalid(t *testing.T) {
	t.Parallel()

	assert.False(t, IDNull.IsValid())
	assert.False(t, IDInvalid.IsValid())
	assert.True(t, IDFromRaw(42).IsValid())
	assert.Equal(t, uint64(42), IDFromRaw(42).Raw())
	assert.Equal(t, "0x2a", IDFromRaw(42).String())
}

func TestGenerateIDConcurrentUniqueness(t *testing.T) {
	t.Parallel()

	logger, _ := TestingLogger(t)

	const (
		goroutines = 32
		perG       = 128
	)

	var (
		mu   sync.Mutex
		seen = make(map[SignpostID]bool, goroutines*perG)
		wg   sync.WaitGroup
	)

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids := make([]SignpostID, 0, perG)
			for i := 0; i < perG; i++ {
				ids = append(ids, logger.GenerateID())
			}
			mu.Lock()
			defer mu.Unlock()
			for _, id := range ids {
				seen[id] = true
			}
		}()
	}
	wg.Wait()

	// Pairwise distinct: every generated id landed in the set.
	assert.Len(t, seen, goroutines*perG)
	for id := range seen {
		assert.True(t, id.IsValid())
		assert.Zero(t, id.Raw()&pointerIDBit, "generated ids keep the high bit clear")
	}
}

func TestPointerIDDeterministic(t *testing.T) {
	t.Parallel()

	logger, _ := TestingLogger(t)

	var obj int

	id1, err := PointerID(logger, &obj)
	require.NoError(t, err)
	id2, err := PointerID(logger, &obj)
	require.NoError(t, err)

	assert.True(t, id1.IsValid())
	assert.Equal(t, id1, id2, "same address must derive the same id")
	assert.NotZero(t, id1.Raw()&pointerIDBit, "pointer-derived ids carry the high bit")
}

func TestPointerIDDistinctAddresses(t *testing.T) {
	t.Parallel()

	logger, _ := TestingLogger(t)

	var a, b int

	idA, err := PointerID(logger, &a)
	require.NoError(t, err)
	idB, err := PointerID(logger, &b)
	require.NoError(t, err)

	assert.NotEqual(t, idA, idB)
}

func TestPointerIDDisjointFromGenerated(t *testing.T) {
	t.Parallel()

	logger, _ := TestingLogger(t)

	var obj int
	pid, err := PointerID(logger, &obj)
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		assert.NotEqual(t, pid, logger.GenerateID())
	}
}

func TestPointerIDSystemScopeRejected(t *testing.T) {
	t.Parallel()

	logger, _ := TestingLogger(t)
	system := logger.WithScope(ScopeSystem)

	var obj int
	_, err := PointerID(system, &obj)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidScope))
}

func TestPointerIDNilPointer(t *testing.T) {
	t.Parallel()

	logger, _ := TestingLogger(t)

	var p *int
	_, err := PointerID(logger, p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidID))
}
