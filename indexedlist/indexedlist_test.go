// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Hullspace Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package indexedlist_test

import (
	"math/rand"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hullspace/shipd/fault"
	"github.com/hullspace/shipd/fixtures"
	"github.com/hullspace/shipd/indexedlist"
	"github.com/hullspace/shipd/ship"
	"github.com/hullspace/shipd/storage"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	fixtures.SetupTestStorage()
	rc := m.Run()
	fixtures.TeardownTestStorage()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func newList() *indexedlist.List {
	return indexedlist.New(
		storage.Pool.CensureList,
		storage.Pool.CensureIndex,
		storage.Pool.CensureCount,
	)
}

func TestAddRemove(t *testing.T) {
	l := newList()
	key := []byte("add-remove")

	require.NoError(t, l.Add(key, 10))
	require.NoError(t, l.Add(key, 20))
	require.NoError(t, l.Add(key, 30))

	assert.Equal(t, uint64(3), l.Count(key), "wrong count")
	assert.True(t, l.Contains(key, 20), "member missing")
	assert.False(t, l.Contains(key, 40), "non-member present")

	err := l.Add(key, 20)
	assert.Equal(t, fault.ErrListEntryExists, err, "duplicate add did not fail")
	assert.Equal(t, uint64(3), l.Count(key), "count changed by failed add")

	require.NoError(t, l.Remove(key, 20))
	assert.Equal(t, uint64(2), l.Count(key), "wrong count after remove")
	assert.False(t, l.Contains(key, 20), "removed member still present")

	err = l.Remove(key, 20)
	assert.Equal(t, fault.ErrListEntryNotFound, err, "absent remove did not fail")

	require.NoError(t, l.Remove(key, 10))
	require.NoError(t, l.Remove(key, 30))
	assert.Equal(t, uint64(0), l.Count(key), "list not empty")
}

// removing a non-last member must keep all other members retrievable
func TestSwapDelete(t *testing.T) {
	l := newList()
	key := []byte("swap-delete")

	members := []ship.Ship{100, 200, 300, 400, 500}
	for _, member := range members {
		require.NoError(t, l.Add(key, member))
	}

	require.NoError(t, l.Remove(key, 200))

	assert.Equal(t, uint64(4), l.Count(key), "wrong count")

	seen := make(map[ship.Ship]int)
	for i := uint64(0); i < l.Count(key); i += 1 {
		member, err := l.At(key, i)
		require.NoError(t, err)
		seen[member] += 1
	}

	for _, member := range members {
		expected := 1
		if 200 == member {
			expected = 0
		}
		assert.Equal(t, expected, seen[member], "member %d retrievable %d times", member, seen[member])
	}

	// the last slot was truncated
	_, err := l.At(key, 4)
	assert.Equal(t, fault.ErrIndexOutOfRange, err, "truncated slot still readable")

	for member := range seen {
		if seen[member] > 0 {
			require.NoError(t, l.Remove(key, member))
		}
	}
}

func TestAtOutOfRange(t *testing.T) {
	l := newList()
	key := []byte("at-range")

	_, err := l.At(key, 0)
	assert.Equal(t, fault.ErrIndexOutOfRange, err, "empty list readable")

	require.NoError(t, l.Add(key, 7))
	member, err := l.At(key, 0)
	require.NoError(t, err)
	assert.Equal(t, ship.Ship(7), member, "wrong member")

	_, err = l.At(key, 1)
	assert.Equal(t, fault.ErrIndexOutOfRange, err, "out of range readable")

	require.NoError(t, l.Remove(key, 7))
}

func TestKeyIsolation(t *testing.T) {
	l := newList()
	keyOne := []byte("isolation-one")
	keyTwo := []byte("isolation-two")

	require.NoError(t, l.Add(keyOne, 42))
	assert.False(t, l.Contains(keyTwo, 42), "member leaked between keys")
	assert.Equal(t, uint64(0), l.Count(keyTwo), "count leaked between keys")

	require.NoError(t, l.Remove(keyOne, 42))
}

// random add/remove sequence checked against a map model
func TestRandomSequence(t *testing.T) {
	l := newList()
	key := []byte("random")

	rng := rand.New(rand.NewSource(4457))
	model := make(map[ship.Ship]struct{})

	for step := 0; step < 1000; step += 1 {
		member := ship.Ship(rng.Intn(50))
		_, present := model[member]
		if rng.Intn(2) == 0 {
			err := l.Add(key, member)
			if present {
				assert.Equal(t, fault.ErrListEntryExists, err, "step %d: duplicate add", step)
			} else {
				require.NoError(t, err, "step %d: add", step)
				model[member] = struct{}{}
			}
		} else {
			err := l.Remove(key, member)
			if present {
				require.NoError(t, err, "step %d: remove", step)
				delete(model, member)
			} else {
				assert.Equal(t, fault.ErrListEntryNotFound, err, "step %d: absent remove", step)
			}
		}

		require.Equal(t, uint64(len(model)), l.Count(key), "step %d: count mismatch", step)
	}

	for _, member := range l.All(key) {
		_, present := model[member]
		assert.True(t, present, "listed member %d not in model", member)
	}
	for member := range model {
		assert.True(t, l.Contains(key, member), "model member %d not listed", member)
		require.NoError(t, l.Remove(key, member))
	}
}
