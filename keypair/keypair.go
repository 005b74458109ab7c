// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/btcsuite/btcd/btcec"
	"github.com/btcsuite/btcutil/base58"
	"golang.org/x/crypto/ripemd160"

	"github.com/unimi-anticounterfeit/arktx/fault"
)

var (
	ErrEmptyPassphrase = fault.InvalidError("passphrase is empty")
	ErrInvalidAddress  = fault.InvalidError("address is invalid")
	ErrWrongNetwork    = fault.InvalidError("address is for a different network")
)

// Signer - signing collaborator using a secp256k1 key derived from a
// passphrase: private key = SHA-256(passphrase)
type Signer struct{}

// Verifier - checks DER encoded ECDSA signatures
type Verifier struct{}

// RawKeyPair - text version of the keys for a passphrase
type RawKeyPair struct {
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
	Address    string `json:"address"`
}

func keysFromPassphrase(passphrase string) (*btcec.PrivateKey, *btcec.PublicKey, error) {
	if "" == passphrase {
		return nil, nil, ErrEmptyPassphrase
	}
	seed := sha256.Sum256([]byte(passphrase))
	privateKey, publicKey := btcec.PrivKeyFromBytes(btcec.S256(), seed[:])
	return privateKey, publicKey, nil
}

// PublicKey - compressed 33 byte public key for the passphrase
func (Signer) PublicKey(passphrase string) ([]byte, error) {
	_, publicKey, err := keysFromPassphrase(passphrase)
	if nil != err {
		return nil, err
	}
	return publicKey.SerializeCompressed(), nil
}

// Sign - deterministic low-S ECDSA signature of the digest, DER encoded
func (Signer) Sign(digest []byte, passphrase string) ([]byte, error) {
	privateKey, _, err := keysFromPassphrase(passphrase)
	if nil != err {
		return nil, err
	}
	signature, err := privateKey.Sign(digest)
	if nil != err {
		return nil, err
	}
	return signature.Serialize(), nil
}

// Verify - check a DER signature of the digest
func (Verifier) Verify(publicKey []byte, digest []byte, signature []byte) error {
	key, err := btcec.ParsePubKey(publicKey, btcec.S256())
	if nil != err {
		return fault.ErrInvalidPublicKey
	}
	s, err := btcec.ParseDERSignature(signature, btcec.S256())
	if nil != err {
		return fault.ErrInvalidSignature
	}
	if !s.Verify(digest, key) {
		return fault.ErrInvalidSignature
	}
	return nil
}

// Address - Base58Check(network ‖ RIPEMD-160(publicKey))
func Address(publicKey []byte, network uint8) (string, error) {
	if _, err := btcec.ParsePubKey(publicKey, btcec.S256()); nil != err {
		return "", fault.ErrInvalidPublicKey
	}
	h := ripemd160.New()
	h.Write(publicKey)
	return base58.CheckEncode(h.Sum(nil), network), nil
}

// CheckAddress - verify checksum, length and network of an address
func CheckAddress(address string, network uint8) error {
	payload, version, err := base58.CheckDecode(address)
	if nil != err || ripemd160.Size != len(payload) {
		return ErrInvalidAddress
	}
	if version != network {
		return ErrWrongNetwork
	}
	return nil
}

// MakeRawKeyPair - keys and address for a passphrase
func MakeRawKeyPair(passphrase string, network uint8) (*RawKeyPair, error) {
	privateKey, publicKey, err := keysFromPassphrase(passphrase)
	if nil != err {
		return nil, err
	}
	compressed := publicKey.SerializeCompressed()
	address, err := Address(compressed, network)
	if nil != err {
		return nil, err
	}
	return &RawKeyPair{
		PublicKey:  hex.EncodeToString(compressed),
		PrivateKey: hex.EncodeToString(privateKey.Serialize()),
		Address:    address,
	}, nil
}
