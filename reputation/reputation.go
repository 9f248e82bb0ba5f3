// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Hullspace Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reputation

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/hullspace/shipd/account"
	"github.com/hullspace/shipd/fault"
	"github.com/hullspace/shipd/indexedlist"
	"github.com/hullspace/shipd/messagebus"
	"github.com/hullspace/shipd/ownership"
	"github.com/hullspace/shipd/ship"
	"github.com/hullspace/shipd/storage"
)

// event commands
const (
	CensureEvent = "censure"
	ForgiveEvent = "forgive"
)

// MaximumCensures - outstanding censures allowed per censurer
const MaximumCensures = 16

var globalData struct {
	sync.RWMutex
	log      *logger.L
	censures *indexedlist.List

	// set once during initialise
	initialised bool
}

// Initialise - set up the reputation registry
//
// storage and ownership must already be initialised
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("reputation")
	globalData.log.Info("starting…")

	globalData.censures = indexedlist.New(
		storage.Pool.CensureList,
		storage.Pool.CensureIndex,
		storage.Pool.CensureCount,
	)

	globalData.initialised = true
	return nil
}

// Finalise - shut down the reputation registry
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.censures = nil
	globalData.initialised = false
	return nil
}

// GetCensureCount - outstanding censures by a censurer
func GetCensureCount(censurer ship.Ship) uint64 {
	globalData.RLock()
	defer globalData.RUnlock()

	if nil == globalData.censures {
		return 0
	}
	return globalData.censures.Count(censurer.Bytes())
}

// GetCensures - the ships a censurer currently censures
//
// order is not significant
func GetCensures(censurer ship.Ship) []ship.Ship {
	globalData.RLock()
	defer globalData.RUnlock()

	if nil == globalData.censures {
		return []ship.Ship{}
	}
	return globalData.censures.All(censurer.Bytes())
}

// Censure - place a negative reputation marker
//
// the caller must own the censuring ship; a ship cannot censure
// itself, censure the same target twice, censure a higher ranked
// target, or hold more than MaximumCensures outstanding censures;
// planets rank lowest of all so they can censure nothing
func Censure(caller *account.Account, asShip ship.Ship, target ship.Ship) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}
	if !ownership.IsOwner(asShip, caller) {
		return fault.ErrNotShipOwner
	}
	if asShip == target {
		return fault.ErrSelfCensure
	}
	if globalData.censures.Contains(asShip.Bytes(), target) {
		return fault.ErrDuplicateCensure
	}
	if ship.Planet == asShip.Class() || target.Class() < asShip.Class() {
		return fault.ErrCensureRankTooLow
	}
	if globalData.censures.Count(asShip.Bytes()) >= MaximumCensures {
		return fault.ErrTooManyCensures
	}

	err := globalData.censures.Add(asShip.Bytes(), target)
	if nil != err {
		logger.Panicf("reputation: censure list already has ship: %s  censurer: %s", target, asShip)
	}

	globalData.log.Infof("censure: censurer: %s  target: %s", asShip, target)
	messagebus.Bus.Reputation.Send(CensureEvent, asShip.Bytes(), target.Bytes())
	return nil
}

// Forgive - withdraw a censure
//
// the caller must own the censuring ship; fails when the target is not
// currently censured
func Forgive(caller *account.Account, asShip ship.Ship, target ship.Ship) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}
	if !ownership.IsOwner(asShip, caller) {
		return fault.ErrNotShipOwner
	}
	if !globalData.censures.Contains(asShip.Bytes(), target) {
		return fault.ErrNotCensured
	}

	err := globalData.censures.Remove(asShip.Bytes(), target)
	if nil != err {
		logger.Panicf("reputation: censure list missing ship: %s  censurer: %s", target, asShip)
	}

	globalData.log.Infof("forgive: censurer: %s  target: %s", asShip, target)
	messagebus.Bus.Reputation.Send(ForgiveEvent, asShip.Bytes(), target.Bytes())
	return nil
}
