// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Hullspace Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/mr-tron/base58"
)

// FromBase58 - convert a base58 encoded string to bytes
//
// returns an empty slice if the string is not valid base58
func FromBase58(s string) []byte {
	result, err := base58.FastBase58Decoding(s)
	if nil != err {
		return []byte{}
	}
	return result
}

// ToBase58 - convert bytes to a base58 encoded string
func ToBase58(b []byte) string {
	return base58.FastBase58Encoding(b)
}
