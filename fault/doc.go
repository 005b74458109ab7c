// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison with
// errors.Is, and a set of error classes so that callers can decide
// between "fix the input and retry" (invalid, length) and "drop the
// message" (not found, record) without partial string matches.
package fault
