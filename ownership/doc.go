// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Hullspace Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ownership - who owns which ships
//
// One owner per ship; per owner an indexed list of owned ships.  The
// invariant is: a ship appears in an owner's list exactly when the
// ship's hull names that owner.  SetOwner is the only place ownership
// changes; higher level transfer workflows compose on top of it.
package ownership
