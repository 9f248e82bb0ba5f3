// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Hullspace Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ship - the 32 bit identifier space
//
// Every possible 32 bit value names one ship.  A ship's class and its
// structural parent are derived from the numeric value alone, so the
// functions here are pure and total over the whole range.
package ship
