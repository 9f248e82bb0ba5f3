// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Hullspace Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - external identities
//
// An account is an ed25519 public key.  The zero account stands for
// "nobody" and is used to mark unowned ships and unset proxies.
package account

import (
	"bytes"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/hullspace/shipd/fault"
	"github.com/hullspace/shipd/util"
)

// supported key algorithms
const (
	ED25519 = iota + 1
	// end of list (one greater than last item)
	algorithmLimit = iota + 1
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01

	algorithmShift = 4 // shift 4 bits to get algorithm
)

// Account - an external identity
//
// the nil pointer and the empty public key both denote "nobody"
type Account struct {
	PublicKey []byte
}

// IsZero - check for the "nobody" account
func (account *Account) IsZero() bool {
	return nil == account || 0 == len(account.PublicKey)
}

// Bytes - key variant followed by the raw public key
//
// the zero account packs to an empty slice
func (account *Account) Bytes() []byte {
	if account.IsZero() {
		return []byte{}
	}
	keyVariant := uint64(ED25519)<<algorithmShift | publicKeyCode
	return append(util.ToVarint64(keyVariant), account.PublicKey...)
}

// Equal - compare two accounts, either may be nil
func (account *Account) Equal(other *Account) bool {
	if account.IsZero() || other.IsZero() {
		return account.IsZero() && other.IsZero()
	}
	return bytes.Equal(account.PublicKey, other.PublicKey)
}

// String - base58 encoded packed key with checksum appended
func (account *Account) String() string {
	if account.IsZero() {
		return ""
	}
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return util.ToBase58(buffer)
}

// MarshalText - convert an account to its base58 text form
func (account *Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// AccountFromBytes - unpack the key variant and raw public key
func AccountFromBytes(buffer []byte) (*Account, error) {
	if 0 == len(buffer) {
		return &Account{}, nil
	}

	keyVariant, keyVariantLength := util.FromVarint64(buffer)
	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.ErrNotPublicKey
	}

	keyAlgorithm := keyVariant >> algorithmShift
	if keyAlgorithm < 1 || keyAlgorithm >= algorithmLimit {
		return nil, fault.ErrInvalidKeyType
	}

	publicKey := buffer[keyVariantLength:]
	if ed25519.PublicKeySize != len(publicKey) {
		return nil, fault.ErrInvalidKeyLength
	}

	return &Account{
		PublicKey: append([]byte{}, publicKey...),
	}, nil
}

// AccountFromBase58 - convert a base58 encoded string to an account
func AccountFromBase58(accountBase58Encoded string) (*Account, error) {
	if "" == accountBase58Encoded {
		return &Account{}, nil
	}

	accountDecoded := util.FromBase58(accountBase58Encoded)
	if 0 == len(accountDecoded) {
		return nil, fault.ErrCannotDecodeAccount
	}

	if len(accountDecoded) <= checksumLength {
		return nil, fault.ErrCannotDecodeAccount
	}

	checksumStart := len(accountDecoded) - checksumLength
	checksum := sha3.Sum256(accountDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], accountDecoded[checksumStart:]) {
		return nil, fault.ErrChecksumMismatch
	}

	return AccountFromBytes(accountDecoded[:checksumStart])
}
