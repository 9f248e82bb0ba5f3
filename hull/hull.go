// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Hullspace Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hull

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/hullspace/shipd/account"
	"github.com/hullspace/shipd/authority"
	"github.com/hullspace/shipd/fault"
	"github.com/hullspace/shipd/hullrecord"
	"github.com/hullspace/shipd/indexedlist"
	"github.com/hullspace/shipd/messagebus"
	"github.com/hullspace/shipd/ownership"
	"github.com/hullspace/shipd/ship"
	"github.com/hullspace/shipd/storage"
)

// event commands
const (
	ActivationEvent = "activate"
	SpawnEvent      = "spawn"
	KeysEvent       = "keys"
	ContinuityEvent = "continuity"
)

var globalData struct {
	sync.RWMutex
	log     *logger.L
	policy  authority.Policy
	spawned *indexedlist.List

	// set once during initialise
	initialised bool
}

// Initialise - set up the hull store
//
// storage must already be initialised
func Initialise(policy authority.Policy) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("hull")
	globalData.log.Info("starting…")

	globalData.policy = policy
	globalData.spawned = indexedlist.New(
		storage.Pool.SpawnedList,
		storage.Pool.SpawnedIndex,
		storage.Pool.SpawnedCount,
	)

	globalData.initialised = true
	return nil
}

// Finalise - shut down the hull store
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.policy = nil
	globalData.spawned = nil
	globalData.initialised = false
	return nil
}

// read a hull, treating a corrupt record as a database fault
func fetchHull(s ship.Ship) *hullrecord.Hull {
	hull, err := hullrecord.Fetch(storage.Pool.Hulls, s)
	if nil != err {
		logger.Panicf("hull: corrupt record for ship: %s  error: %s", s, err)
	}
	return hull
}

func storeHull(s ship.Ship, hull *hullrecord.Hull) {
	hullrecord.Store(storage.Pool.Hulls, s, hull)
}

// check privileged access; must hold the lock
func authorise(caller *account.Account) error {
	if !globalData.initialised {
		return fault.ErrNotInitialised
	}
	if !globalData.policy.IsAuthorizedAdmin(caller) {
		return fault.ErrNotAuthorised
	}
	return nil
}

// Get - snapshot of the full hull record
func Get(s ship.Ship) *hullrecord.Hull {
	globalData.RLock()
	defer globalData.RUnlock()
	return fetchHull(s)
}

// IsActive - check the activation flag
func IsActive(s ship.Ship) bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return fetchHull(s).Active
}

// SetActive - activate a ship
//
// privileged; fails if the ship is already active; sets the sponsor to
// the structural prefix, registers the ship under its prefix when it is
// not a galaxy, and assigns the initial owner the same way SetOwner
// does
func SetActive(caller *account.Account, s ship.Ship, initialOwner *account.Account) error {
	globalData.Lock()

	if err := authorise(caller); nil != err {
		globalData.Unlock()
		return err
	}

	hull := fetchHull(s)
	if hull.Active {
		globalData.Unlock()
		return fault.ErrAlreadyActive
	}
	// the ownership step below requires a real change of owner
	if hull.Owner.Equal(initialOwner) {
		globalData.Unlock()
		return fault.ErrSameOwner
	}

	hull.Active = true
	prefix := s.Prefix()
	hull.Sponsor = prefix
	storeHull(s, hull)

	if ship.Galaxy != s.Class() {
		err := globalData.spawned.Add(prefix.Bytes(), s)
		if nil != err {
			logger.Panicf("hull: spawned list already has ship: %s  prefix: %s", s, prefix)
		}
		globalData.log.Infof("spawn: prefix: %s  ship: %s", prefix, s)
		messagebus.Bus.Spawn.Send(SpawnEvent, prefix.Bytes(), s.Bytes())
	}

	// release before calling into the ownership registry
	globalData.Unlock()

	err := ownership.Assign(s, initialOwner)
	if nil != err {
		// the owner change was pre-validated above
		logger.Panicf("hull: activation ownership assignment failed: ship: %s  error: %s", s, err)
	}

	messagebus.Bus.Activation.Send(ActivationEvent, s.Bytes(), initialOwner.Bytes())
	return nil
}

// GetKeys - current key material
//
// all-zero values mean the keys were never set
func GetKeys(s ship.Ship) (encryptionKey []byte, authenticationKey []byte) {
	globalData.RLock()
	defer globalData.RUnlock()
	hull := fetchHull(s)
	return hull.EncryptionKey, hull.AuthenticationKey
}

// GetKeyRevisionNumber - number of times the keys have changed
func GetKeyRevisionNumber(s ship.Ship) uint64 {
	globalData.RLock()
	defer globalData.RUnlock()
	return fetchHull(s).KeyRevision
}

// HasBeenBooted - the keys have been set at least once
func HasBeenBooted(s ship.Ship) bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return fetchHull(s).HasBeenBooted()
}

// SetKeys - overwrite both keys and bump the revision
//
// privileged; the overwrite is unconditional
func SetKeys(caller *account.Account, s ship.Ship, encryptionKey []byte, authenticationKey []byte) error {
	globalData.Lock()
	defer globalData.Unlock()

	if err := authorise(caller); nil != err {
		return err
	}
	if hullrecord.KeyLength != len(encryptionKey) || hullrecord.KeyLength != len(authenticationKey) {
		return fault.ErrInvalidKeyLength
	}

	hull := fetchHull(s)
	copy(hull.EncryptionKey, encryptionKey)
	copy(hull.AuthenticationKey, authenticationKey)
	hull.KeyRevision += 1
	storeHull(s, hull)

	globalData.log.Infof("keys: ship: %s  revision: %d", s, hull.KeyRevision)

	revision := make([]byte, 8)
	packUint64(revision, hull.KeyRevision)
	messagebus.Bus.Keys.Send(KeysEvent, s.Bytes(), revision)
	return nil
}

// GetContinuityNumber - number of execution resets
func GetContinuityNumber(s ship.Ship) uint64 {
	globalData.RLock()
	defer globalData.RUnlock()
	return fetchHull(s).ContinuityNumber
}

// IncrementContinuityNumber - record an off-ledger execution reset
//
// privileged
func IncrementContinuityNumber(caller *account.Account, s ship.Ship) error {
	globalData.Lock()
	defer globalData.Unlock()

	if err := authorise(caller); nil != err {
		return err
	}

	hull := fetchHull(s)
	hull.ContinuityNumber += 1
	storeHull(s, hull)

	globalData.log.Infof("continuity: ship: %s  number: %d", s, hull.ContinuityNumber)

	number := make([]byte, 8)
	packUint64(number, hull.ContinuityNumber)
	messagebus.Bus.Continuity.Send(ContinuityEvent, s.Bytes(), number)
	return nil
}

// GetSpawnCount - number of active children registered under a prefix
func GetSpawnCount(s ship.Ship) uint64 {
	globalData.RLock()
	defer globalData.RUnlock()
	if nil == globalData.spawned {
		return 0
	}
	return globalData.spawned.Count(s.Bytes())
}

// GetSpawned - the active children registered under a prefix
//
// order is not significant
func GetSpawned(s ship.Ship) []ship.Ship {
	globalData.RLock()
	defer globalData.RUnlock()
	if nil == globalData.spawned {
		return []ship.Ship{}
	}
	return globalData.spawned.All(s.Bytes())
}

func packUint64(buffer []byte, value uint64) {
	binary.BigEndian.PutUint64(buffer, value)
}
