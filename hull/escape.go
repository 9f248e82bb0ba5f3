// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Hullspace Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hull

import (
	"github.com/hullspace/shipd/account"
	"github.com/hullspace/shipd/fault"
	"github.com/hullspace/shipd/messagebus"
	"github.com/hullspace/shipd/ship"
)

// event commands
const (
	EscapeRequestEvent = "escape-request"
	EscapeCancelEvent  = "escape-cancel"
	EscapeAcceptEvent  = "escape-accept"
)

// GetSponsor - the ship currently vouching for this one
func GetSponsor(s ship.Ship) ship.Ship {
	globalData.RLock()
	defer globalData.RUnlock()
	return fetchHull(s).Sponsor
}

// IsEscapeRequested - an escape request is pending
func IsEscapeRequested(s ship.Ship) bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return fetchHull(s).EscapeRequested
}

// GetEscapeRequest - target of the pending escape request
//
// only meaningful while IsEscapeRequested reports true
func GetEscapeRequest(s ship.Ship) ship.Ship {
	globalData.RLock()
	defer globalData.RUnlock()
	return fetchHull(s).EscapeTarget
}

// RequestEscape - ask for a new sponsor
//
// privileged; an earlier pending request is silently replaced, and
// requesting the current sponsor again is allowed
func RequestEscape(caller *account.Account, s ship.Ship, target ship.Ship) error {
	globalData.Lock()
	defer globalData.Unlock()

	if err := authorise(caller); nil != err {
		return err
	}

	hull := fetchHull(s)
	hull.EscapeRequested = true
	hull.EscapeTarget = target
	storeHull(s, hull)

	globalData.log.Infof("escape request: ship: %s  target: %s", s, target)
	messagebus.Bus.Escape.Send(EscapeRequestEvent, s.Bytes(), target.Bytes())
	return nil
}

// CancelEscape - withdraw a pending request
//
// privileged; succeeds as a no-op when nothing is pending
func CancelEscape(caller *account.Account, s ship.Ship) error {
	globalData.Lock()
	defer globalData.Unlock()

	if err := authorise(caller); nil != err {
		return err
	}

	hull := fetchHull(s)
	hull.EscapeRequested = false
	storeHull(s, hull)

	globalData.log.Infof("escape cancel: ship: %s", s)
	messagebus.Bus.Escape.Send(EscapeCancelEvent, s.Bytes())
	return nil
}

// AcceptEscape - adopt the requested sponsor
//
// privileged; fails when no request is pending; the spawned lists of
// the old and new sponsors are untouched as sponsorship and spawn
// bookkeeping are independent relations
func AcceptEscape(caller *account.Account, s ship.Ship) error {
	globalData.Lock()
	defer globalData.Unlock()

	if err := authorise(caller); nil != err {
		return err
	}

	hull := fetchHull(s)
	if !hull.EscapeRequested {
		return fault.ErrEscapeNotRequested
	}

	hull.Sponsor = hull.EscapeTarget
	hull.EscapeRequested = false
	storeHull(s, hull)

	globalData.log.Infof("escape accept: ship: %s  sponsor: %s", s, hull.Sponsor)
	messagebus.Bus.Escape.Send(EscapeAcceptEvent, s.Bytes(), hull.Sponsor.Bytes())
	return nil
}
