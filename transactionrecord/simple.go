// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

// SimpleData - the unpacked simple transaction asset
type SimpleData struct {
	Id string `json:"Id"` // utf-8
}

// SchemaId - key of the asset in the JSON form
func (asset *SimpleData) SchemaId() string {
	return simpleSchema.Id
}

// Values - field values in schema order
func (asset *SimpleData) Values() []string {
	if nil == asset {
		return nil
	}
	return []string{asset.Id}
}

var simpleSchema = Schema{
	Id:        "simpleData",
	TypeGroup: SimpleTypeGroup,
	Type:      SimpleTransactionType,
	Fields: []Field{
		{Name: "Id", Minimum: 5, Maximum: 10},
	},
}

// SimpleCodec - codec for SimpleTypeGroup/SimpleTransactionType
type SimpleCodec struct{}

// Schema - a private copy of the structural description
func (SimpleCodec) Schema() *Schema {
	return simpleSchema.clone()
}

// DefaultFee - 0.01 coins
func (SimpleCodec) DefaultFee() uint64 {
	return 1000000
}

// NewAsset - empty payload for decoding
func (SimpleCodec) NewAsset() Asset {
	return &SimpleData{}
}

// Pack - little endian u16 length then bytes
//
// NOTE: the only variant with a two byte prefix; existing ledger data
//       depends on it, do not copy for new variants
func (codec SimpleCodec) Pack(a Asset) ([]byte, error) {
	asset, ok := a.(*SimpleData)
	if !ok {
		return nil, wrongAsset(codec.Schema(), a)
	}
	if nil == asset {
		return nil, missingAsset(codec.Schema())
	}
	return appendString16(make([]byte, 0, 2+len(asset.Id)), "Id", asset.Id)
}

// Unpack - read back the field written by Pack
func (SimpleCodec) Unpack(buffer []byte) (Asset, int, error) {
	r := reader{buffer: buffer}

	id, err := r.string16("Id")
	if nil != err {
		return nil, 0, err
	}
	return &SimpleData{Id: id}, r.n, nil
}
