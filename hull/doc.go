// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Hullspace Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package hull - the hull store
//
// Activation, key material, continuity, spawn bookkeeping, proxy and
// operator delegation, and the escape state machine.  All writes are
// privileged: the injected authority policy decides who may call them.
package hull
