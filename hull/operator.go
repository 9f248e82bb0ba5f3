// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Hullspace Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hull

import (
	"github.com/hullspace/shipd/account"
	"github.com/hullspace/shipd/storage"
	"github.com/hullspace/shipd/util"
)

// owner ⧺ operator, each block length prefixed to keep the parts
// unambiguous
func operatorKey(owner *account.Account, operator *account.Account) []byte {
	ownerBytes := owner.Bytes()
	operatorBytes := operator.Bytes()

	key := make([]byte, 0, 2+len(ownerBytes)+len(operatorBytes))
	key = append(key, util.ToVarint64(uint64(len(ownerBytes)))...)
	key = append(key, ownerBytes...)
	key = append(key, util.ToVarint64(uint64(len(operatorBytes)))...)
	return append(key, operatorBytes...)
}

// IsOperator - check an operator grant
func IsOperator(owner *account.Account, operator *account.Account) bool {
	globalData.RLock()
	defer globalData.RUnlock()

	if owner.IsZero() || operator.IsZero() {
		return false
	}
	return storage.Pool.Operators.Has(operatorKey(owner, operator))
}

// SetOperator - grant or revoke blanket delegation for an owner
//
// privileged; a grant row is stored only while approved
func SetOperator(caller *account.Account, owner *account.Account, operator *account.Account, approved bool) error {
	globalData.Lock()
	defer globalData.Unlock()

	if err := authorise(caller); nil != err {
		return err
	}

	key := operatorKey(owner, operator)
	if approved {
		storage.Pool.Operators.Put(key, []byte{0x01})
	} else {
		storage.Pool.Operators.Delete(key)
	}

	globalData.log.Infof("operator: owner: %s  operator: %s  approved: %t", owner, operator, approved)
	return nil
}
