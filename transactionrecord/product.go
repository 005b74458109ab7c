// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

// RegisterProduct - the unpacked product registration asset
type RegisterProduct struct {
	ProductId             string `json:"ProductId"`             // utf-8: starts with the manufacturer prefix
	Description           string `json:"Description"`           // utf-8: may be empty
	ManufacturerAddressId string `json:"ManufacturerAddressId"` // utf-8: ledger address
	Metadata              string `json:"Metadata"`              // utf-8: may be empty
}

// SchemaId - key of the asset in the JSON form
func (asset *RegisterProduct) SchemaId() string {
	return registerProductSchema.Id
}

// Values - field values in schema order
func (asset *RegisterProduct) Values() []string {
	if nil == asset {
		return nil
	}
	return []string{asset.ProductId, asset.Description, asset.ManufacturerAddressId, asset.Metadata}
}

var registerProductSchema = Schema{
	Id:        "AnticounterfeitRegisterProductTransaction",
	TypeGroup: AnticounterfeitTypeGroup,
	Type:      RegisterProductType,
	Fields: []Field{
		{Name: "ProductId", Minimum: 5, Maximum: 64},
		{Name: "Description", Minimum: 0, Maximum: 255},
		{Name: "ManufacturerAddressId", Minimum: 34, Maximum: 34},
		{Name: "Metadata", Minimum: 0, Maximum: 255},
	},
}

// RegisterProductCodec - codec for AnticounterfeitTypeGroup/RegisterProductType
type RegisterProductCodec struct{}

// Schema - a private copy of the structural description
func (RegisterProductCodec) Schema() *Schema {
	return registerProductSchema.clone()
}

// DefaultFee - same as the manufacturer registration
func (RegisterProductCodec) DefaultFee() uint64 {
	return 5000000000
}

// NewAsset - empty payload for decoding
func (RegisterProductCodec) NewAsset() Asset {
	return &RegisterProduct{}
}

// Pack - u8 length and bytes of each field in order
func (codec RegisterProductCodec) Pack(a Asset) ([]byte, error) {
	asset, ok := a.(*RegisterProduct)
	if !ok {
		return nil, wrongAsset(codec.Schema(), a)
	}
	if nil == asset {
		return nil, missingAsset(codec.Schema())
	}

	fields := codec.Schema().Fields
	values := asset.Values()

	size := len(values)
	for _, v := range values {
		size += len(v)
	}
	buffer := make([]byte, 0, size)

	var err error
	for i, v := range values {
		buffer, err = appendString8(buffer, fields[i].Name, v)
		if nil != err {
			return nil, err
		}
	}
	return buffer, nil
}

// Unpack - read back the fields written by Pack
func (RegisterProductCodec) Unpack(buffer []byte) (Asset, int, error) {
	r := reader{buffer: buffer}

	productId, err := r.string8("ProductId")
	if nil != err {
		return nil, 0, err
	}
	description, err := r.string8("Description")
	if nil != err {
		return nil, 0, err
	}
	addressId, err := r.string8("ManufacturerAddressId")
	if nil != err {
		return nil, 0, err
	}
	metadata, err := r.string8("Metadata")
	if nil != err {
		return nil, 0, err
	}

	asset := &RegisterProduct{
		ProductId:             productId,
		Description:           description,
		ManufacturerAddressId: addressId,
		Metadata:              metadata,
	}
	return asset, r.n, nil
}
