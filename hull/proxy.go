// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Hullspace Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hull

import (
	"github.com/hullspace/shipd/account"
	"github.com/hullspace/shipd/messagebus"
	"github.com/hullspace/shipd/ship"
)

// event commands
const (
	SpawnProxyEvent    = "spawn-proxy"
	TransferProxyEvent = "transfer-proxy"
)

// GetSpawnProxy - delegate allowed to spawn children for a ship
//
// the zero account means no delegate
func GetSpawnProxy(s ship.Ship) *account.Account {
	globalData.RLock()
	defer globalData.RUnlock()
	return fetchHull(s).SpawnProxy
}

// IsSpawnProxy - check a specific account is the spawn delegate
func IsSpawnProxy(s ship.Ship, who *account.Account) bool {
	if who.IsZero() {
		return false
	}
	return GetSpawnProxy(s).Equal(who)
}

// SetSpawnProxy - change the spawn delegate
//
// privileged; the zero account clears the delegate
func SetSpawnProxy(caller *account.Account, s ship.Ship, proxy *account.Account) error {
	globalData.Lock()
	defer globalData.Unlock()

	if err := authorise(caller); nil != err {
		return err
	}

	hull := fetchHull(s)
	hull.SpawnProxy = proxy
	storeHull(s, hull)

	globalData.log.Infof("spawn proxy: ship: %s  proxy: %s", s, proxy)
	messagebus.Bus.Proxy.Send(SpawnProxyEvent, s.Bytes(), proxy.Bytes())
	return nil
}

// GetTransferProxy - delegate allowed to initiate transfer of a ship
//
// the zero account means no delegate
func GetTransferProxy(s ship.Ship) *account.Account {
	globalData.RLock()
	defer globalData.RUnlock()
	return fetchHull(s).TransferProxy
}

// IsTransferProxy - check a specific account is the transfer delegate
func IsTransferProxy(s ship.Ship, who *account.Account) bool {
	if who.IsZero() {
		return false
	}
	return GetTransferProxy(s).Equal(who)
}

// SetTransferProxy - change the transfer delegate
//
// privileged; the zero account clears the delegate
func SetTransferProxy(caller *account.Account, s ship.Ship, proxy *account.Account) error {
	globalData.Lock()
	defer globalData.Unlock()

	if err := authorise(caller); nil != err {
		return err
	}

	hull := fetchHull(s)
	hull.TransferProxy = proxy
	storeHull(s, hull)

	globalData.log.Infof("transfer proxy: ship: %s  proxy: %s", s, proxy)
	messagebus.Bus.Proxy.Send(TransferProxyEvent, s.Bytes(), proxy.Bytes())
	return nil
}
