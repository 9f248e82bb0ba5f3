// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Hullspace Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package reputation - the negative reputation registry
//
// An owner may censure other ships of equal or lower rank on behalf
// of a ship it owns, and later forgive them.  A censurer carries at
// most sixteen outstanding censures; the cap is enforced here with a
// distinct capacity error since this host charges nothing for growth.
package reputation
