// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Hullspace Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - the notification event queues
//
// Every mutating ledger operation emits exactly one event describing
// the state change; the queues here are the durable audit trail's feed
// and the only push mechanism external observers get.
package messagebus
