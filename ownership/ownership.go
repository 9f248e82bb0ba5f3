// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Hullspace Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/hullspace/shipd/account"
	"github.com/hullspace/shipd/authority"
	"github.com/hullspace/shipd/fault"
	"github.com/hullspace/shipd/hullrecord"
	"github.com/hullspace/shipd/indexedlist"
	"github.com/hullspace/shipd/messagebus"
	"github.com/hullspace/shipd/ship"
	"github.com/hullspace/shipd/storage"
)

// event commands
const (
	TransferEvent = "transfer"
)

var globalData struct {
	sync.RWMutex
	log    *logger.L
	policy authority.Policy
	owned  *indexedlist.List

	// set once during initialise
	initialised bool
}

// Initialise - set up the ownership registry
//
// storage must already be initialised
func Initialise(policy authority.Policy) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("ownership")
	globalData.log.Info("starting…")

	globalData.policy = policy
	globalData.owned = indexedlist.New(
		storage.Pool.OwnerList,
		storage.Pool.OwnerIndex,
		storage.Pool.OwnerCount,
	)

	globalData.initialised = true
	return nil
}

// Finalise - shut down the ownership registry
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.policy = nil
	globalData.owned = nil
	globalData.initialised = false
	return nil
}

// read a hull, treating a corrupt record as a database fault
func fetchHull(s ship.Ship) *hullrecord.Hull {
	hull, err := hullrecord.Fetch(storage.Pool.Hulls, s)
	if nil != err {
		logger.Panicf("ownership: corrupt hull record for ship: %s  error: %s", s, err)
	}
	return hull
}

// GetOwner - current owner of a ship
//
// the zero account means unowned
func GetOwner(s ship.Ship) *account.Account {
	globalData.RLock()
	defer globalData.RUnlock()
	return fetchHull(s).Owner
}

// IsOwner - check a specific account owns a ship
//
// the zero account never owns anything
func IsOwner(s ship.Ship, who *account.Account) bool {
	if who.IsZero() {
		return false
	}
	return GetOwner(s).Equal(who)
}

// SetOwner - reassign a ship to a new owner
//
// privileged; the new owner must differ from the current one; passing
// the zero account releases the ship
func SetOwner(caller *account.Account, s ship.Ship, newOwner *account.Account) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}
	if !globalData.policy.IsAuthorizedAdmin(caller) {
		return fault.ErrNotAuthorised
	}

	return assign(s, newOwner)
}

// Assign - ownership-assignment step shared with ship activation
//
// authorization must have been checked by the caller
func Assign(s ship.Ship, newOwner *account.Account) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}
	return assign(s, newOwner)
}

// must hold the lock before calling this
func assign(s ship.Ship, newOwner *account.Account) error {
	hull := fetchHull(s)

	if hull.Owner.Equal(newOwner) {
		return fault.ErrSameOwner
	}

	if !hull.Owner.IsZero() {
		err := globalData.owned.Remove(hull.Owner.Bytes(), s)
		if nil != err {
			logger.Panicf("ownership: owner list missing ship: %s  owner: %s", s, hull.Owner)
		}
	}
	if !newOwner.IsZero() {
		err := globalData.owned.Add(newOwner.Bytes(), s)
		if nil != err {
			logger.Panicf("ownership: owner list already has ship: %s  owner: %s", s, newOwner)
		}
	}

	hull.Owner = newOwner
	hullrecord.Store(storage.Pool.Hulls, s, hull)

	globalData.log.Infof("transfer: ship: %s  owner: %s", s, newOwner)
	messagebus.Bus.Transfer.Send(TransferEvent, s.Bytes(), newOwner.Bytes())
	return nil
}

// OwnedShipCount - number of ships an owner holds
func OwnedShipCount(owner *account.Account) uint64 {
	globalData.RLock()
	defer globalData.RUnlock()

	if owner.IsZero() || nil == globalData.owned {
		return 0
	}
	return globalData.owned.Count(owner.Bytes())
}

// OwnedShips - all ships an owner holds
//
// order is not significant
func OwnedShips(owner *account.Account) []ship.Ship {
	globalData.RLock()
	defer globalData.RUnlock()

	if owner.IsZero() || nil == globalData.owned {
		return []ship.Ship{}
	}
	return globalData.owned.All(owner.Bytes())
}

// OwnedShipAtIndex - one ship from an owner's list
//
// fails if the index is not below OwnedShipCount
func OwnedShipAtIndex(owner *account.Account, index uint64) (ship.Ship, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if owner.IsZero() || nil == globalData.owned {
		return 0, fault.ErrIndexOutOfRange
	}
	return globalData.owned.At(owner.Bytes(), index)
}
