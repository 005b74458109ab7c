// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/hex"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/unimi-anticounterfeit/arktx/fault"
)

// hexBytes - binary field shown as hex text
type hexBytes []byte

func (b hexBytes) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(len(b)))
	hex.Encode(buffer, b)
	return buffer, nil
}

func (b *hexBytes) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	n, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	*b = buffer[:n]
	return nil
}

// the JSON form accepted by the ledger's transaction pool
type envelopeJSON struct {
	Version         uint8           `json:"version"`
	Network         uint8           `json:"network"`
	TypeGroup       uint32          `json:"typeGroup"`
	Type            uint16          `json:"type"`
	Nonce           uint64          `json:"nonce,string"`
	SenderPublicKey hexBytes        `json:"senderPublicKey,omitempty"`
	Fee             uint64          `json:"fee,string"`
	Amount          uint64          `json:"amount,string"`
	VendorField     string          `json:"vendorField,omitempty"`
	Asset           json.RawMessage `json:"asset"`
	Signature       hexBytes        `json:"signature,omitempty"`
	Id              string          `json:"id,omitempty"`
}

// MarshalJSON - the asset is keyed by its schema id
func (envelope Envelope) MarshalJSON() ([]byte, error) {
	asset := map[string]Asset{}
	if nil != envelope.Asset {
		asset[envelope.Asset.SchemaId()] = envelope.Asset
	}
	a, err := json.Marshal(asset)
	if nil != err {
		return nil, err
	}

	return json.Marshal(envelopeJSON{
		Version:         envelope.Version,
		Network:         envelope.Network,
		TypeGroup:       envelope.TypeGroup,
		Type:            envelope.Type,
		Nonce:           envelope.Nonce,
		SenderPublicKey: envelope.SenderPublicKey,
		Fee:             envelope.Fee,
		Amount:          envelope.Amount,
		VendorField:     envelope.VendorField,
		Asset:           a,
		Signature:       envelope.Signature,
		Id:              envelope.Id,
	})
}

// EnvelopeFromJSON - parse the JSON form, dispatching the asset on
// typeGroup/type
//
// the result is validated; for a signed envelope the id is recomputed
// from the wire form and must match
func (registry *Registry) EnvelopeFromJSON(data []byte) (*Envelope, error) {
	var j envelopeJSON
	if err := json.Unmarshal(data, &j); nil != err {
		return nil, err
	}

	codec, err := registry.Lookup(j.TypeGroup, j.Type)
	if nil != err {
		return nil, err
	}

	envelope := &Envelope{
		Version:         j.Version,
		Network:         j.Network,
		TypeGroup:       j.TypeGroup,
		Type:            j.Type,
		Nonce:           j.Nonce,
		SenderPublicKey: j.SenderPublicKey,
		Fee:             j.Fee,
		Amount:          j.Amount,
		VendorField:     j.VendorField,
		Signature:       j.Signature,
		Id:              j.Id,
	}

	assets := map[string]json.RawMessage{}
	if 0 != len(j.Asset) {
		if err := json.Unmarshal(j.Asset, &assets); nil != err {
			return nil, err
		}
	}
	if raw, ok := assets[codec.Schema().Id]; ok {
		asset := codec.NewAsset()
		if err := json.Unmarshal(raw, asset); nil != err {
			return nil, err
		}
		envelope.Asset = asset
	}

	if err := codec.Schema().Validate(envelope); nil != err {
		return nil, err
	}

	if 0 != len(envelope.Signature) {
		packed, err := registry.Pack(envelope)
		if nil != err {
			return nil, err
		}
		id := packed.MakeId()
		if id != envelope.Id {
			return nil, errors.Wrapf(fault.ErrIdMismatch, "id: %q expected: %q", envelope.Id, id)
		}
	}
	return envelope, nil
}
