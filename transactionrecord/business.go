// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

// BusinessData - the unpacked business registration asset
type BusinessData struct {
	Name    string `json:"name"`    // utf-8
	Website string `json:"website"` // utf-8
}

// SchemaId - key of the asset in the JSON form
func (asset *BusinessData) SchemaId() string {
	return businessSchema.Id
}

// Values - field values in schema order
func (asset *BusinessData) Values() []string {
	if nil == asset {
		return nil
	}
	return []string{asset.Name, asset.Website}
}

var businessSchema = Schema{
	Id:        "businessData",
	TypeGroup: BusinessTypeGroup,
	Type:      BusinessRegistrationType,
	Fields: []Field{
		{Name: "name", Minimum: 3, Maximum: 20},
		{Name: "website", Minimum: 3, Maximum: 20},
	},
}

// BusinessCodec - codec for BusinessTypeGroup/BusinessRegistrationType
type BusinessCodec struct{}

// Schema - a private copy of the structural description
func (BusinessCodec) Schema() *Schema {
	return businessSchema.clone()
}

// DefaultFee - 50 coins
func (BusinessCodec) DefaultFee() uint64 {
	return 5000000000
}

// NewAsset - empty payload for decoding
func (BusinessCodec) NewAsset() Asset {
	return &BusinessData{}
}

// Pack - u8 length and bytes of name then website
func (codec BusinessCodec) Pack(a Asset) ([]byte, error) {
	asset, ok := a.(*BusinessData)
	if !ok {
		return nil, wrongAsset(codec.Schema(), a)
	}
	if nil == asset {
		return nil, missingAsset(codec.Schema())
	}

	buffer := make([]byte, 0, 2+len(asset.Name)+len(asset.Website))
	buffer, err := appendString8(buffer, "name", asset.Name)
	if nil != err {
		return nil, err
	}
	return appendString8(buffer, "website", asset.Website)
}

// Unpack - read back the fields written by Pack
func (BusinessCodec) Unpack(buffer []byte) (Asset, int, error) {
	r := reader{buffer: buffer}

	name, err := r.string8("name")
	if nil != err {
		return nil, 0, err
	}
	website, err := r.string8("website")
	if nil != err {
		return nil, 0, err
	}
	return &BusinessData{Name: name, Website: website}, r.n, nil
}
