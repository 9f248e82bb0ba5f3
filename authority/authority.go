// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Hullspace Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package authority - the injected administrator policy
//
// The ledger never decides for itself who the privileged orchestrator
// is; the policy is supplied at initialisation so the core stays
// testable in isolation.
package authority

import (
	"github.com/hullspace/shipd/account"
)

// Policy - gate for privileged operations
type Policy interface {
	IsAuthorizedAdmin(caller *account.Account) bool
}

type singleAdmin struct {
	admin *account.Account
}

// NewSingleAdmin - policy accepting exactly one administrator account
func NewSingleAdmin(admin *account.Account) Policy {
	return &singleAdmin{admin: admin}
}

func (p *singleAdmin) IsAuthorizedAdmin(caller *account.Account) bool {
	if p.admin.IsZero() || caller.IsZero() {
		return false
	}
	return p.admin.Equal(caller)
}
