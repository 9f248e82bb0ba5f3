// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Hullspace Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hullrecord

import (
	"github.com/hullspace/shipd/account"
	"github.com/hullspace/shipd/ship"
)

// KeyLength - bytes in each of the two hull keys
const KeyLength = 32

// Hull - the full state record for one ship
type Hull struct {
	Owner             *account.Account `json:"owner"`
	Active            bool             `json:"active"`
	EncryptionKey     []byte           `json:"encryptionKey"`      // KeyLength bytes, all zero when unset
	AuthenticationKey []byte           `json:"authenticationKey"`  // KeyLength bytes, all zero when unset
	KeyRevision       uint64           `json:"keyRevisionNumber"`  // 0 means never booted
	ContinuityNumber  uint64           `json:"continuityNumber"`
	Sponsor           ship.Ship        `json:"sponsor"`
	EscapeRequested   bool             `json:"escapeRequested"`
	EscapeTarget      ship.Ship        `json:"escapeRequestedTo"`
	SpawnProxy        *account.Account `json:"spawnProxy"`
	TransferProxy     *account.Account `json:"transferProxy"`
}

// NewHull - the zero hull every ship starts from
func NewHull() *Hull {
	return &Hull{
		Owner:             &account.Account{},
		EncryptionKey:     make([]byte, KeyLength),
		AuthenticationKey: make([]byte, KeyLength),
		SpawnProxy:        &account.Account{},
		TransferProxy:     &account.Account{},
	}
}

// HasBeenBooted - key material has been set at least once
func (hull *Hull) HasBeenBooted() bool {
	return hull.KeyRevision > 0
}
