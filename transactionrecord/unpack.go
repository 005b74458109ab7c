// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/pkg/errors"

	"github.com/unimi-anticounterfeit/arktx/fault"
)

// Unpack - turn a byte slice into an envelope
//
// the header selects the codec for the asset bytes; anything after the
// asset is taken as the signature (DER by its length byte, otherwise a
// 64 byte Schnorr signature).  Returns the number of bytes used, which
// may be less than len(record) if data follows the signature.
func (registry *Registry) Unpack(record Packed) (*Envelope, int, error) {
	r := reader{buffer: record}

	marker, err := r.uint8()
	if nil != err {
		return nil, 0, err
	}
	if packedMarker != marker {
		return nil, 0, fault.ErrNotTransactionPack
	}

	version, err := r.uint8()
	if nil != err {
		return nil, 0, err
	}
	if CurrentVersion != version {
		return nil, 0, errors.Wrapf(fault.ErrNotTransactionPack, "version: %d", version)
	}

	network, err := r.uint8()
	if nil != err {
		return nil, 0, err
	}
	typeGroup, err := r.uint32()
	if nil != err {
		return nil, 0, err
	}
	transactionType, err := r.uint16()
	if nil != err {
		return nil, 0, err
	}
	nonce, err := r.uint64()
	if nil != err {
		return nil, 0, err
	}
	publicKey, err := r.bytes(PublicKeyLength)
	if nil != err {
		return nil, 0, err
	}
	fee, err := r.uint64()
	if nil != err {
		return nil, 0, err
	}
	vendorField, err := r.string8("vendorField")
	if nil != err {
		return nil, 0, err
	}

	// dispatch on the header
	codec, err := registry.Lookup(typeGroup, transactionType)
	if nil != err {
		return nil, 0, err
	}
	asset, assetLength, err := codec.Unpack(record[r.n:])
	if nil != err {
		return nil, 0, err
	}
	r.n += assetLength

	// optional signature is remainder of record
	var signature []byte
	switch remaining := r.remaining(); {
	case 0 == remaining:
		// unsigned
	case 0 != derLength(record[r.n:]):
		signature, err = r.bytes(derLength(record[r.n:]))
	default:
		signature, err = r.bytes(schnorrSignatureSize)
	}
	if nil != err {
		return nil, 0, err
	}

	envelope := &Envelope{
		Version:         version,
		Network:         network,
		TypeGroup:       typeGroup,
		Type:            transactionType,
		Nonce:           nonce,
		SenderPublicKey: append([]byte(nil), publicKey...),
		Fee:             fee,
		Amount:          0,
		VendorField:     vendorField,
		Asset:           asset,
	}
	if 0 != len(signature) {
		envelope.Signature = append([]byte(nil), signature...)
		envelope.Id = record[:r.n].MakeId()
	}

	if err := codec.Schema().Validate(envelope); nil != err {
		return nil, 0, err
	}
	return envelope, r.n, nil
}

// Decode - unpack a record that must be consumed completely
func (registry *Registry) Decode(record Packed) (*Envelope, error) {
	envelope, n, err := registry.Unpack(record)
	if nil != err {
		return nil, err
	}
	if n != len(record) {
		return nil, errors.Wrapf(fault.ErrTrailingData, "used: %d of: %d bytes", n, len(record))
	}
	return envelope, nil
}
