// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Hullspace Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is added to the key
// before storing.  Similarly the prefix is stripped from the key when
// retrieving elements.
//
// An unset key reads as "not found" rather than an empty value, which
// the ledger layers above rely on to distinguish absent records from
// zero records.
package storage
