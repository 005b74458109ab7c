// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - Lua configuration for the transaction tool
//
// the file is a Lua script returning a table; most of base Lua is
// available so values can be computed or read from the environment
// with os.getenv.  A minimal file:
//
//   local M = {}
//   M.network = "devnet"
//   M.vendor_field = "anticounterfeit"
//   M.fees = { simple_transaction = "2000000" }
//   M.logging = { levels = { DEFAULT = "info" } }
//   return M
package configuration
