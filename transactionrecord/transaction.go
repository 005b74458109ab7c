// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/hex"
	"fmt"
)

// type groups of the custom transactions
const (
	BusinessTypeGroup        = uint32(1001)
	AnticounterfeitTypeGroup = uint32(2001)
	SimpleTypeGroup          = uint32(3001)
)

// transaction types inside their groups
const (
	BusinessRegistrationType = uint16(100)

	RegisterManufacturerType = uint16(201)
	RegisterProductType      = uint16(202)
	TransferProductType      = uint16(203) // reserved: no codec
	ReceiveProductType       = uint16(204) // reserved: no codec

	SimpleTransactionType = uint16(301)
)

// CurrentVersion - the only envelope version produced and accepted
const CurrentVersion = uint8(2)

// network address version bytes
const (
	MainnetNetwork = uint8(0x17)
	DevnetNetwork  = uint8(0x1e)
	TestnetNetwork = uint8(0x17)
)

// byte sizes for various fields
const (
	PublicKeyLength      = 33
	schnorrSignatureSize = 64
	minimumDERLength     = 8
	maxVendorFieldLength = 255
)

// Key - the dispatch key of a transaction variant
type Key struct {
	TypeGroup uint32
	Type      uint16
}

// keys of the registered variants
var (
	RegisterManufacturerKey = Key{AnticounterfeitTypeGroup, RegisterManufacturerType}
	RegisterProductKey      = Key{AnticounterfeitTypeGroup, RegisterProductType}
	SimpleTransactionKey    = Key{SimpleTypeGroup, SimpleTransactionType}
	BusinessRegistrationKey = Key{BusinessTypeGroup, BusinessRegistrationType}
)

// String - for the fmt package
func (key Key) String() string {
	return fmt.Sprintf("%d/%d", key.TypeGroup, key.Type)
}

// Packed - packed records are just a byte slice
type Packed []byte

// Asset - the variant specific payload carried by an envelope
//
// SchemaId names the schema describing the asset (and is its key in
// the JSON form); Values returns the field values in schema order
type Asset interface {
	SchemaId() string
	Values() []string
}

// Envelope - the common transaction record shared by all variants
//
// a draft has no sender public key, signature or id; once those are
// filled in the envelope must be treated as read only
type Envelope struct {
	Version         uint8
	Network         uint8
	TypeGroup       uint32
	Type            uint16
	Nonce           uint64
	SenderPublicKey []byte
	Fee             uint64
	Amount          uint64
	VendorField     string
	Asset           Asset
	Signature       []byte
	Id              string
}

// Key - the dispatch key of the envelope
func (envelope *Envelope) Key() Key {
	return Key{TypeGroup: envelope.TypeGroup, Type: envelope.Type}
}

// IsSigned - true once the signature and id are present
func (envelope *Envelope) IsSigned() bool {
	return 0 != len(envelope.Signature) && "" != envelope.Id
}

// Copy - detached copy, the asset is shared since assets are never
// modified after being attached
func (envelope *Envelope) Copy() *Envelope {
	e := *envelope
	e.SenderPublicKey = append([]byte(nil), envelope.SenderPublicKey...)
	e.Signature = append([]byte(nil), envelope.Signature...)
	if 0 == len(e.SenderPublicKey) {
		e.SenderPublicKey = nil
	}
	if 0 == len(e.Signature) {
		e.Signature = nil
	}
	return &e
}

// RecordName - returns the name of a transaction asset as a string
func RecordName(asset interface{}) (string, bool) {
	switch asset.(type) {
	case *RegisterManufacturer, RegisterManufacturer:
		return "RegisterManufacturer", true

	case *RegisterProduct, RegisterProduct:
		return "RegisterProduct", true

	case *SimpleData, SimpleData:
		return "SimpleTransaction", true

	case *BusinessData, BusinessData:
		return "BusinessRegistration", true

	default:
		return "*unknown*", false
	}
}

// MarshalText - convert a packed to its hex JSON form
func (record Packed) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(record))
	b := make([]byte, size)
	hex.Encode(b, record)
	return b, nil
}

// UnmarshalText - convert a packed from its hex JSON form
func (record *Packed) UnmarshalText(s []byte) error {
	size := hex.DecodedLen(len(s))
	*record = make([]byte, size)
	_, err := hex.Decode(*record, s)
	return err
}
