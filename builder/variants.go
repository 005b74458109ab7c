// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package builder

import (
	"github.com/unimi-anticounterfeit/arktx/transactionrecord"
)

// ManufacturerBuilder - draft of a manufacturer registration
type ManufacturerBuilder struct {
	draft
}

// RegisterManufacturer - new draft with the variant defaults
func (factory *Factory) RegisterManufacturer() ManufacturerBuilder {
	return ManufacturerBuilder{
		draft: factory.newDraft(transactionrecord.RegisterManufacturerKey, &transactionrecord.RegisterManufacturer{}),
	}
}

// Nonce - copy with the sender nonce set
func (b ManufacturerBuilder) Nonce(nonce uint64) ManufacturerBuilder {
	b.draft = b.withNonce(nonce)
	return b
}

// Fee - copy with the fee in base units
func (b ManufacturerBuilder) Fee(fee uint64) ManufacturerBuilder {
	b.draft = b.withFee(fee)
	return b
}

// VendorField - copy with the vendor field
func (b ManufacturerBuilder) VendorField(vendorField string) ManufacturerBuilder {
	b.draft = b.withVendorField(vendorField)
	return b
}

// Manufacturer - set the payload
func (b ManufacturerBuilder) Manufacturer(addressId string, prefixId string) ManufacturerBuilder {
	b.draft = b.withAsset(&transactionrecord.RegisterManufacturer{
		ManufacturerAddressId: addressId,
		ProductPrefixID:       prefixId,
	})
	return b
}

// Struct - the unsigned envelope
func (b ManufacturerBuilder) Struct() Unsigned {
	return b.unsigned()
}

// Sign - validate, sign and pack into an immutable transaction
func (b ManufacturerBuilder) Sign(signer transactionrecord.Signer, secret string) (*Signed, error) {
	return b.sign(signer, secret)
}

// ProductBuilder - draft of a product registration
type ProductBuilder struct {
	draft
}

// RegisterProduct - new draft with the variant defaults
func (factory *Factory) RegisterProduct() ProductBuilder {
	return ProductBuilder{
		draft: factory.newDraft(transactionrecord.RegisterProductKey, &transactionrecord.RegisterProduct{}),
	}
}

// Nonce - copy with the sender nonce set
func (b ProductBuilder) Nonce(nonce uint64) ProductBuilder {
	b.draft = b.withNonce(nonce)
	return b
}

// Fee - copy with the fee in base units
func (b ProductBuilder) Fee(fee uint64) ProductBuilder {
	b.draft = b.withFee(fee)
	return b
}

// VendorField - copy with the vendor field
func (b ProductBuilder) VendorField(vendorField string) ProductBuilder {
	b.draft = b.withVendorField(vendorField)
	return b
}

// Product - set the payload; description and metadata may be empty
func (b ProductBuilder) Product(productId string, description string, addressId string, metadata string) ProductBuilder {
	b.draft = b.withAsset(&transactionrecord.RegisterProduct{
		ProductId:             productId,
		Description:           description,
		ManufacturerAddressId: addressId,
		Metadata:              metadata,
	})
	return b
}

// Struct - the unsigned envelope
func (b ProductBuilder) Struct() Unsigned {
	return b.unsigned()
}

// Sign - validate, sign and pack into an immutable transaction
func (b ProductBuilder) Sign(signer transactionrecord.Signer, secret string) (*Signed, error) {
	return b.sign(signer, secret)
}

// SimpleBuilder - draft of a simple transaction
type SimpleBuilder struct {
	draft
}

// SimpleTransaction - new draft with the variant defaults
func (factory *Factory) SimpleTransaction() SimpleBuilder {
	return SimpleBuilder{
		draft: factory.newDraft(transactionrecord.SimpleTransactionKey, &transactionrecord.SimpleData{}),
	}
}

// Nonce - copy with the sender nonce set
func (b SimpleBuilder) Nonce(nonce uint64) SimpleBuilder {
	b.draft = b.withNonce(nonce)
	return b
}

// Fee - copy with the fee in base units
func (b SimpleBuilder) Fee(fee uint64) SimpleBuilder {
	b.draft = b.withFee(fee)
	return b
}

// VendorField - copy with the vendor field
func (b SimpleBuilder) VendorField(vendorField string) SimpleBuilder {
	b.draft = b.withVendorField(vendorField)
	return b
}

// SimpleData - set the payload
func (b SimpleBuilder) SimpleData(id string) SimpleBuilder {
	b.draft = b.withAsset(&transactionrecord.SimpleData{
		Id: id,
	})
	return b
}

// Struct - the unsigned envelope
func (b SimpleBuilder) Struct() Unsigned {
	return b.unsigned()
}

// Sign - validate, sign and pack into an immutable transaction
func (b SimpleBuilder) Sign(signer transactionrecord.Signer, secret string) (*Signed, error) {
	return b.sign(signer, secret)
}

// BusinessBuilder - draft of a business registration
type BusinessBuilder struct {
	draft
}

// BusinessRegistration - new draft with the variant defaults
func (factory *Factory) BusinessRegistration() BusinessBuilder {
	return BusinessBuilder{
		draft: factory.newDraft(transactionrecord.BusinessRegistrationKey, &transactionrecord.BusinessData{}),
	}
}

// Nonce - copy with the sender nonce set
func (b BusinessBuilder) Nonce(nonce uint64) BusinessBuilder {
	b.draft = b.withNonce(nonce)
	return b
}

// Fee - copy with the fee in base units
func (b BusinessBuilder) Fee(fee uint64) BusinessBuilder {
	b.draft = b.withFee(fee)
	return b
}

// VendorField - copy with the vendor field
func (b BusinessBuilder) VendorField(vendorField string) BusinessBuilder {
	b.draft = b.withVendorField(vendorField)
	return b
}

// BusinessData - set the payload
func (b BusinessBuilder) BusinessData(name string, website string) BusinessBuilder {
	b.draft = b.withAsset(&transactionrecord.BusinessData{
		Name:    name,
		Website: website,
	})
	return b
}

// Struct - the unsigned envelope
func (b BusinessBuilder) Struct() Unsigned {
	return b.unsigned()
}

// Sign - validate, sign and pack into an immutable transaction
func (b BusinessBuilder) Sign(signer transactionrecord.Signer, secret string) (*Signed, error) {
	return b.sign(signer, secret)
}
