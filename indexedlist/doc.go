// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Hullspace Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package indexedlist - ordered duplicate-free lists with a reverse index
//
// Each list is identified by an arbitrary key and stored across three
// pools:
//
//	list:   key ⧺ position → member
//	index:  key ⧺ member   → position
//	count:  key            → length
//
// All operations are O(1).  Removal copies the last member into the
// vacated slot and truncates, so the order of members is not stable
// across removals; callers may rely on membership and length only.
//
// An absent index record means the member is not in the list, so the
// zero position is a valid one and no sentinel offset is needed.
package indexedlist
