// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Hullspace Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - read the Lua configuration file
//
// The file is executed as a Lua script and its final result table is
// mapped onto the configuration structure, so values may be computed
// rather than merely literal.
package configuration
