// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Hullspace Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reputation_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hullspace/shipd/authority"
	"github.com/hullspace/shipd/fault"
	"github.com/hullspace/shipd/fixtures"
	"github.com/hullspace/shipd/messagebus"
	"github.com/hullspace/shipd/ownership"
	"github.com/hullspace/shipd/reputation"
	"github.com/hullspace/shipd/ship"
)

// test ships
const (
	galaxyOne = ship.Ship(10)
	galaxyTwo = ship.Ship(11)
	starOne   = ship.Ship(300)
	starTwo   = ship.Ship(301)
	planetOne = ship.Ship(100000)
	planetTwo = ship.Ship(100001)
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	fixtures.SetupTestStorage()
	if err := ownership.Initialise(authority.NewSingleAdmin(fixtures.Admin)); nil != err {
		panic(err)
	}
	if err := reputation.Initialise(); nil != err {
		panic(err)
	}

	rc := m.Run()
	_ = reputation.Finalise()
	_ = ownership.Finalise()
	fixtures.TeardownTestStorage()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

// assign owners used by the tests; idempotent per ship
func setupOwners(t *testing.T) {
	t.Helper()
	assignments := []struct {
		s     ship.Ship
		owner string
	}{
		{galaxyOne, "one"},
		{galaxyTwo, "two"},
		{starOne, "one"},
		{starTwo, "two"},
		{planetOne, "one"},
		{planetTwo, "two"},
	}
	for _, item := range assignments {
		owner := fixtures.AccountOne
		if "two" == item.owner {
			owner = fixtures.AccountTwo
		}
		if !ownership.IsOwner(item.s, owner) {
			require.NoError(t, ownership.SetOwner(fixtures.Admin, item.s, owner))
		}
	}
}

func TestCensureRequiresOwner(t *testing.T) {
	setupOwners(t)

	err := reputation.Censure(fixtures.AccountTwo, galaxyOne, planetTwo)
	assert.Equal(t, fault.ErrNotShipOwner, err, "non-owner caller accepted")
	assert.True(t, fault.IsErrAuthorization(err), "wrong error class")

	err = reputation.Censure(nil, galaxyOne, planetTwo)
	assert.Equal(t, fault.ErrNotShipOwner, err, "nil caller accepted")
}

func TestCensureRankGuard(t *testing.T) {
	setupOwners(t)

	// a planet can censure nothing at all
	for _, target := range []ship.Ship{galaxyTwo, starTwo, planetTwo} {
		err := reputation.Censure(fixtures.AccountOne, planetOne, target)
		assert.Equal(t, fault.ErrCensureRankTooLow, err, "planet censured %s", target)
	}

	// a star cannot censure a galaxy
	err := reputation.Censure(fixtures.AccountOne, starOne, galaxyTwo)
	assert.Equal(t, fault.ErrCensureRankTooLow, err, "star censured galaxy")

	// a star can censure its own rank
	require.NoError(t, reputation.Censure(fixtures.AccountOne, starOne, starTwo))
	require.NoError(t, reputation.Forgive(fixtures.AccountOne, starOne, starTwo))
}

func TestCensureSelf(t *testing.T) {
	setupOwners(t)

	err := reputation.Censure(fixtures.AccountOne, galaxyOne, galaxyOne)
	assert.Equal(t, fault.ErrSelfCensure, err, "self censure accepted")
}

func TestCensureAndForgive(t *testing.T) {
	setupOwners(t)

	messagebus.Bus.Reputation.Flush()

	require.NoError(t, reputation.Censure(fixtures.AccountOne, galaxyOne, planetTwo))

	assert.Equal(t, uint64(1), reputation.GetCensureCount(galaxyOne), "wrong censure count")
	assert.Equal(t, []ship.Ship{planetTwo}, reputation.GetCensures(galaxyOne), "wrong censure list")

	event := <-messagebus.Bus.Reputation.Chan()
	assert.Equal(t, reputation.CensureEvent, event.Command, "wrong event")
	assert.Equal(t, galaxyOne.Bytes(), event.Parameters[0], "wrong event censurer")
	assert.Equal(t, planetTwo.Bytes(), event.Parameters[1], "wrong event target")

	// duplicates rejected
	err := reputation.Censure(fixtures.AccountOne, galaxyOne, planetTwo)
	assert.Equal(t, fault.ErrDuplicateCensure, err, "duplicate censure accepted")

	require.NoError(t, reputation.Forgive(fixtures.AccountOne, galaxyOne, planetTwo))
	assert.Equal(t, uint64(0), reputation.GetCensureCount(galaxyOne), "censure not removed")

	event = <-messagebus.Bus.Reputation.Chan()
	assert.Equal(t, reputation.ForgiveEvent, event.Command, "wrong event")

	err = reputation.Forgive(fixtures.AccountOne, galaxyOne, planetTwo)
	assert.Equal(t, fault.ErrNotCensured, err, "forgiving absent censure accepted")
}

func TestCensureCap(t *testing.T) {
	setupOwners(t)

	// sixteen distinct planet targets
	first := ship.Ship(200000)
	for i := uint32(0); i < reputation.MaximumCensures; i += 1 {
		require.NoError(t, reputation.Censure(fixtures.AccountTwo, galaxyTwo, first+ship.Ship(i)))
	}
	assert.Equal(t, uint64(reputation.MaximumCensures), reputation.GetCensureCount(galaxyTwo), "wrong count at cap")

	// the seventeenth must fail with a capacity error
	overflow := first + ship.Ship(reputation.MaximumCensures)
	err := reputation.Censure(fixtures.AccountTwo, galaxyTwo, overflow)
	assert.Equal(t, fault.ErrTooManyCensures, err, "cap not enforced")
	assert.True(t, fault.IsErrCapacity(err), "wrong error class")

	// one forgive frees a slot
	require.NoError(t, reputation.Forgive(fixtures.AccountTwo, galaxyTwo, first))
	require.NoError(t, reputation.Censure(fixtures.AccountTwo, galaxyTwo, overflow))

	// clean up
	for _, target := range reputation.GetCensures(galaxyTwo) {
		require.NoError(t, reputation.Forgive(fixtures.AccountTwo, galaxyTwo, target))
	}
}
