// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

// RegisterManufacturer - the unpacked manufacturer registration asset
type RegisterManufacturer struct {
	ManufacturerAddressId string `json:"ManufacturerAddressId"` // utf-8: ledger address
	ProductPrefixID       string `json:"ProductPrefixID"`       // utf-8
}

// SchemaId - key of the asset in the JSON form
func (asset *RegisterManufacturer) SchemaId() string {
	return registerManufacturerSchema.Id
}

// Values - field values in schema order
func (asset *RegisterManufacturer) Values() []string {
	if nil == asset {
		return nil
	}
	return []string{asset.ManufacturerAddressId, asset.ProductPrefixID}
}

var registerManufacturerSchema = Schema{
	Id:        "AnticounterfeitRegisterManufacturerTransaction",
	TypeGroup: AnticounterfeitTypeGroup,
	Type:      RegisterManufacturerType,
	Fields: []Field{
		{Name: "ManufacturerAddressId", Minimum: 34, Maximum: 34},
		{Name: "ProductPrefixID", Minimum: 5, Maximum: 15},
	},
}

// RegisterManufacturerCodec - codec for AnticounterfeitTypeGroup/RegisterManufacturerType
type RegisterManufacturerCodec struct{}

// Schema - a private copy of the structural description
func (RegisterManufacturerCodec) Schema() *Schema {
	return registerManufacturerSchema.clone()
}

// DefaultFee - 50 coins
func (RegisterManufacturerCodec) DefaultFee() uint64 {
	return 5000000000
}

// NewAsset - empty payload for decoding
func (RegisterManufacturerCodec) NewAsset() Asset {
	return &RegisterManufacturer{}
}

// Pack - u8 length and bytes of each field in order
func (codec RegisterManufacturerCodec) Pack(a Asset) ([]byte, error) {
	asset, ok := a.(*RegisterManufacturer)
	if !ok {
		return nil, wrongAsset(codec.Schema(), a)
	}
	if nil == asset {
		return nil, missingAsset(codec.Schema())
	}

	buffer := make([]byte, 0, 2+len(asset.ManufacturerAddressId)+len(asset.ProductPrefixID))
	buffer, err := appendString8(buffer, "ManufacturerAddressId", asset.ManufacturerAddressId)
	if nil != err {
		return nil, err
	}
	return appendString8(buffer, "ProductPrefixID", asset.ProductPrefixID)
}

// Unpack - read back the fields written by Pack
func (RegisterManufacturerCodec) Unpack(buffer []byte) (Asset, int, error) {
	r := reader{buffer: buffer}

	addressId, err := r.string8("ManufacturerAddressId")
	if nil != err {
		return nil, 0, err
	}
	prefixId, err := r.string8("ProductPrefixID")
	if nil != err {
		return nil, 0, err
	}

	asset := &RegisterManufacturer{
		ManufacturerAddressId: addressId,
		ProductPrefixID:       prefixId,
	}
	return asset, r.n, nil
}
