// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Hullspace Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"bytes"
	"testing"

	"golang.org/x/crypto/ed25519"

	"github.com/hullspace/shipd/account"
	"github.com/hullspace/shipd/fault"
)

// deterministic test key
var publicKey = []byte{
	0x7a, 0x81, 0x92, 0x56, 0x5e, 0x6c, 0xa2, 0x35,
	0x80, 0xe1, 0x81, 0x59, 0xef, 0x30, 0x73, 0xf6,
	0xe2, 0xfb, 0x8e, 0x7e, 0x9d, 0x31, 0x49, 0x7e,
	0x79, 0xd7, 0x73, 0x1b, 0xa3, 0x74, 0x11, 0x01,
}

func TestBytesRoundTrip(t *testing.T) {
	acc := &account.Account{PublicKey: publicKey}

	buffer := acc.Bytes()
	if 1+ed25519.PublicKeySize != len(buffer) {
		t.Fatalf("packed length: %d  expected: %d", len(buffer), 1+ed25519.PublicKeySize)
	}

	actual, err := account.AccountFromBytes(buffer)
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if !bytes.Equal(publicKey, actual.PublicKey) {
		t.Errorf("round trip: %x  actual: %x", publicKey, actual.PublicKey)
	}
	if !acc.Equal(actual) {
		t.Errorf("accounts not equal after round trip")
	}
}

func TestBase58RoundTrip(t *testing.T) {
	acc := &account.Account{PublicKey: publicKey}

	encoded := acc.String()
	if "" == encoded {
		t.Fatalf("empty base58 form for non-zero account")
	}

	actual, err := account.AccountFromBase58(encoded)
	if nil != err {
		t.Fatalf("decode error: %s", err)
	}
	if !acc.Equal(actual) {
		t.Errorf("base58 round trip: %s  actual: %s", acc, actual)
	}
}

func TestChecksumMismatch(t *testing.T) {
	acc := &account.Account{PublicKey: publicKey}
	encoded := acc.String()

	// corrupt the last character
	last := encoded[len(encoded)-1]
	replacement := byte('2')
	if last == replacement {
		replacement = '3'
	}
	corrupted := encoded[:len(encoded)-1] + string(replacement)

	_, err := account.AccountFromBase58(corrupted)
	if nil == err {
		t.Fatalf("corrupted account decoded without error")
	}
	if !fault.IsErrProcess(err) {
		t.Errorf("unexpected error class: %v", err)
	}
}

func TestZeroAccount(t *testing.T) {
	zero := &account.Account{}
	if !zero.IsZero() {
		t.Errorf("empty account is not zero")
	}
	if 0 != len(zero.Bytes()) {
		t.Errorf("zero account packs to non-empty bytes")
	}
	if "" != zero.String() {
		t.Errorf("zero account has non-empty text form")
	}

	var missing *account.Account
	if !missing.IsZero() {
		t.Errorf("nil account is not zero")
	}
	if !missing.Equal(zero) {
		t.Errorf("nil and empty accounts are not equal")
	}

	decoded, err := account.AccountFromBytes([]byte{})
	if nil != err {
		t.Fatalf("unpack empty error: %s", err)
	}
	if !decoded.IsZero() {
		t.Errorf("empty bytes did not unpack to zero account")
	}
}
