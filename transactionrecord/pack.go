// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/pkg/errors"

	"github.com/unimi-anticounterfeit/arktx/fault"
)

// first byte of every record, distinguishes it from version 1 records
const packedMarker = 0xff

// SigningBytes - the envelope in wire form without any signature
//
// Layout (integers little endian):
//   0xff | version u8 | network u8 | typeGroup u32 | type u16 |
//   nonce u64 | senderPublicKey [33] | fee u64 |
//   vendorField length u8 | vendorField | asset
//
// the envelope is validated against its variant schema first so an
// invalid asset never reaches the signer
func (registry *Registry) SigningBytes(envelope *Envelope) (Packed, error) {
	codec, err := registry.Lookup(envelope.TypeGroup, envelope.Type)
	if nil != err {
		return nil, err
	}
	if err := codec.Schema().Validate(envelope); nil != err {
		return nil, err
	}

	if PublicKeyLength != len(envelope.SenderPublicKey) {
		return nil, errors.Wrapf(fault.ErrInvalidPublicKey, "length: %d", len(envelope.SenderPublicKey))
	}
	if len(envelope.VendorField) > maxVendorFieldLength {
		return nil, errors.Wrapf(fault.ErrVendorFieldTooLong, "%d bytes", len(envelope.VendorField))
	}

	asset, err := codec.Pack(envelope.Asset)
	if nil != err {
		return nil, err
	}

	// concatenate bytes
	message := make(Packed, 0, 59+len(envelope.VendorField)+len(asset)+72)
	message = append(message, packedMarker, envelope.Version, envelope.Network)
	message = appendUint32(message, envelope.TypeGroup)
	message = appendUint16(message, envelope.Type)
	message = appendUint64(message, envelope.Nonce)
	message = append(message, envelope.SenderPublicKey...)
	message = appendUint64(message, envelope.Fee)
	message = append(message, byte(len(envelope.VendorField)))
	message = append(message, envelope.VendorField...)
	message = append(message, asset...)

	return message, nil
}

// Pack - the envelope in wire form
//
// a draft packs to its signing bytes; a signed envelope has its
// signature appended
func (registry *Registry) Pack(envelope *Envelope) (Packed, error) {
	message, err := registry.SigningBytes(envelope)
	if nil != err {
		return nil, err
	}
	if 0 == len(envelope.Signature) {
		return message, nil
	}
	if !wellFormedSignature(envelope.Signature) {
		return nil, errors.Wrapf(fault.ErrInvalidSignature, "length: %d", len(envelope.Signature))
	}

	// Signature Last
	return append(message, envelope.Signature...), nil
}

// Verify - check the envelope signature against its signing bytes
func (registry *Registry) Verify(envelope *Envelope, verifier Verifier) error {
	if 0 == len(envelope.Signature) {
		return fault.ErrUnsigned
	}
	message, err := registry.SigningBytes(envelope)
	if nil != err {
		return err
	}
	return verifier.Verify(envelope.SenderPublicKey, Digest(message), envelope.Signature)
}

// signatures are either DER (self delimiting) or fixed size Schnorr
func wellFormedSignature(signature []byte) bool {
	if len(signature) == schnorrSignatureSize {
		return true
	}
	return derLength(signature) == len(signature)
}

// total length of a DER signature from its header, zero if not DER
//
//   0x30 len 0x02 rLen r... 0x02 sLen s...
func derLength(b []byte) int {
	if len(b) < minimumDERLength || 0x30 != b[0] || b[1] >= 0x80 {
		return 0
	}
	total := int(b[1]) + 2
	if total < minimumDERLength || total > len(b) || 0x02 != b[2] {
		return 0
	}
	rLength := int(b[3])
	sOffset := 4 + rLength
	if 0 == rLength || sOffset+2 > total || 0x02 != b[sOffset] {
		return 0
	}
	sLength := int(b[sOffset+1])
	if 0 == sLength || sOffset+2+sLength != total {
		return 0
	}
	return total
}
