// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Build, sign and decode custom ledger transactions offline
//
// e.g. register a manufacturer on devnet and print the signed JSON
// together with the packed hex:
//
//   arktx -c arktx.conf -p 'secret passphrase' manufacturer \
//       --nonce=2 --address=ANBkoGqWeTSiaEVgVzSKZd3jS7UWzv9PSo --prefix=AES1212
//
//   arktx decode --verify --packed=ff021ed1070000c900...
package main
