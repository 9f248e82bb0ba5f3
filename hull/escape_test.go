// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Hullspace Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hull_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hullspace/shipd/fault"
	"github.com/hullspace/shipd/fixtures"
	"github.com/hullspace/shipd/hull"
	"github.com/hullspace/shipd/messagebus"
	"github.com/hullspace/shipd/ship"
)

func TestEscapeRequiresAdmin(t *testing.T) {
	err := hull.RequestEscape(fixtures.AccountOne, 91000, 1)
	assert.Equal(t, fault.ErrNotAuthorised, err, "non-admin caller accepted")
}

func TestEscapeAccept(t *testing.T) {
	s := ship.Ship(91001)
	target := ship.Ship(7)

	require.NoError(t, hull.SetActive(fixtures.Admin, s, fixtures.AccountOne))
	originalSponsor := hull.GetSponsor(s)
	parentCount := hull.GetSpawnCount(originalSponsor)

	messagebus.Bus.Escape.Flush()

	require.NoError(t, hull.RequestEscape(fixtures.Admin, s, target))
	assert.True(t, hull.IsEscapeRequested(s), "request not pending")
	assert.Equal(t, target, hull.GetEscapeRequest(s), "wrong target")
	assert.Equal(t, originalSponsor, hull.GetSponsor(s), "sponsor changed before accept")

	require.NoError(t, hull.AcceptEscape(fixtures.Admin, s))
	assert.Equal(t, target, hull.GetSponsor(s), "sponsor not adopted")
	assert.False(t, hull.IsEscapeRequested(s), "request still pending")

	// sponsorship and spawn bookkeeping are independent relations
	assert.Equal(t, parentCount, hull.GetSpawnCount(originalSponsor), "old sponsor spawn count changed")
	assert.Equal(t, uint64(0), hull.GetSpawnCount(target), "new sponsor spawn count changed")

	requested := <-messagebus.Bus.Escape.Chan()
	assert.Equal(t, hull.EscapeRequestEvent, requested.Command, "wrong event")
	accepted := <-messagebus.Bus.Escape.Chan()
	assert.Equal(t, hull.EscapeAcceptEvent, accepted.Command, "wrong event")
	assert.Equal(t, target.Bytes(), accepted.Parameters[1], "wrong event sponsor")
}

func TestEscapeAcceptWithoutRequest(t *testing.T) {
	s := ship.Ship(91002)

	err := hull.AcceptEscape(fixtures.Admin, s)
	assert.Equal(t, fault.ErrEscapeNotRequested, err, "accept without request accepted")
	assert.True(t, fault.IsErrInvalid(err), "wrong error class")
}

// cancel succeeds as a no-op even when nothing is pending
func TestEscapeCancelIdempotent(t *testing.T) {
	s := ship.Ship(91003)

	require.NoError(t, hull.CancelEscape(fixtures.Admin, s))
	assert.False(t, hull.IsEscapeRequested(s), "cancel left request pending")

	require.NoError(t, hull.RequestEscape(fixtures.Admin, s, 3))
	require.NoError(t, hull.CancelEscape(fixtures.Admin, s))
	assert.False(t, hull.IsEscapeRequested(s), "request not canceled")

	err := hull.AcceptEscape(fixtures.Admin, s)
	assert.Equal(t, fault.ErrEscapeNotRequested, err, "accept after cancel accepted")
}

// re-requesting silently replaces the target; requesting the current
// sponsor is allowed
func TestEscapeRequestPermissive(t *testing.T) {
	s := ship.Ship(91004)

	require.NoError(t, hull.SetActive(fixtures.Admin, s, fixtures.AccountOne))
	sponsor := hull.GetSponsor(s)

	require.NoError(t, hull.RequestEscape(fixtures.Admin, s, 9))
	require.NoError(t, hull.RequestEscape(fixtures.Admin, s, 11))
	assert.Equal(t, ship.Ship(11), hull.GetEscapeRequest(s), "target not replaced")

	// the current sponsor is not rejected as a target
	require.NoError(t, hull.RequestEscape(fixtures.Admin, s, sponsor))
	assert.Equal(t, sponsor, hull.GetEscapeRequest(s), "current sponsor rejected")

	require.NoError(t, hull.CancelEscape(fixtures.Admin, s))
}
