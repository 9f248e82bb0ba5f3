// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Hullspace Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package hullrecord - the per-ship state record and its packed form
//
// Every ship conceptually has a hull from genesis; a ship with no
// stored record reads back as the zero hull, so records are only
// written once some field departs from its default.
package hullrecord
