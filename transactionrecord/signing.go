// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"crypto/sha256"
	"encoding/hex"
)

//go:generate mockgen -source=signing.go -destination=mocks/signing.go -package=mocks

// Signer - the external signing collaborator
//
// the core never derives keys itself: it asks for the public key that
// goes into the header, then for a signature over the digest of the
// signing bytes
type Signer interface {
	PublicKey(secret string) ([]byte, error)
	Sign(digest []byte, secret string) ([]byte, error)
}

// Verifier - checks a signature produced by a Signer
type Verifier interface {
	Verify(publicKey []byte, digest []byte, signature []byte) error
}

// Digest - the hash that is signed
func Digest(message []byte) []byte {
	d := sha256.Sum256(message)
	return d[:]
}

// MakeId - transaction id of a complete signed record
func (record Packed) MakeId() string {
	d := sha256.Sum256(record)
	return hex.EncodeToString(d[:])
}
