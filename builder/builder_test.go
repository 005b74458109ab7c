// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package builder_test

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unimi-anticounterfeit/arktx/builder"
	"github.com/unimi-anticounterfeit/arktx/fault"
	"github.com/unimi-anticounterfeit/arktx/fixtures"
	"github.com/unimi-anticounterfeit/arktx/keypair"
	"github.com/unimi-anticounterfeit/arktx/transactionrecord"
	"github.com/unimi-anticounterfeit/arktx/transactionrecord/mocks"
)

func newFactory(t *testing.T) (*builder.Factory, *transactionrecord.Registry) {
	registry, err := transactionrecord.Standard()
	require.Nil(t, err, "standard registry error")
	return builder.New(logger.New(fixtures.LogCategory), registry, transactionrecord.DevnetNetwork), registry
}

func TestDraftDefaults(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	factory, _ := newFactory(t)

	envelope := factory.RegisterManufacturer().Struct().Envelope()
	assert.Equal(t, transactionrecord.CurrentVersion, envelope.Version, "wrong version")
	assert.Equal(t, transactionrecord.DevnetNetwork, envelope.Network, "wrong network")
	assert.Equal(t, transactionrecord.AnticounterfeitTypeGroup, envelope.TypeGroup, "wrong type group")
	assert.Equal(t, transactionrecord.RegisterManufacturerType, envelope.Type, "wrong type")
	assert.Equal(t, uint64(5000000000), envelope.Fee, "wrong fee")
	assert.Equal(t, uint64(0), envelope.Amount, "wrong amount")
	assert.Equal(t, &transactionrecord.RegisterManufacturer{}, envelope.Asset, "wrong asset")
	assert.False(t, envelope.IsSigned(), "draft is signed")

	envelope = factory.SimpleTransaction().Struct().Envelope()
	assert.Equal(t, transactionrecord.SimpleTypeGroup, envelope.TypeGroup, "wrong type group")
	assert.Equal(t, transactionrecord.SimpleTransactionType, envelope.Type, "wrong type")
	assert.Equal(t, uint64(1000000), envelope.Fee, "wrong fee")

	envelope = factory.BusinessRegistration().Struct().Envelope()
	assert.Equal(t, transactionrecord.BusinessTypeGroup, envelope.TypeGroup, "wrong type group")
	assert.Equal(t, transactionrecord.BusinessRegistrationType, envelope.Type, "wrong type")
	assert.Equal(t, uint64(5000000000), envelope.Fee, "wrong fee")

	envelope = factory.RegisterProduct().Struct().Envelope()
	assert.Equal(t, transactionrecord.AnticounterfeitTypeGroup, envelope.TypeGroup, "wrong type group")
	assert.Equal(t, transactionrecord.RegisterProductType, envelope.Type, "wrong type")
}

// setters return a new builder and leave the receiver alone
func TestSettersDoNotMutate(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	factory, _ := newFactory(t)

	base := factory.RegisterManufacturer().Manufacturer(fixtures.ManufacturerAddress, fixtures.ProductPrefix)
	modified := base.Nonce(7).Fee(42).VendorField("vendor").Manufacturer(fixtures.ManufacturerAddress, "OTHER")

	b := base.Struct().Envelope()
	m := modified.Struct().Envelope()

	assert.Equal(t, uint64(0), b.Nonce, "base nonce changed")
	assert.Equal(t, uint64(5000000000), b.Fee, "base fee changed")
	assert.Equal(t, "", b.VendorField, "base vendor field changed")
	assert.Equal(t, fixtures.ProductPrefix, b.Asset.(*transactionrecord.RegisterManufacturer).ProductPrefixID, "base asset changed")

	assert.Equal(t, uint64(7), m.Nonce, "nonce not set")
	assert.Equal(t, uint64(42), m.Fee, "fee not set")
	assert.Equal(t, "vendor", m.VendorField, "vendor field not set")
	assert.Equal(t, "OTHER", m.Asset.(*transactionrecord.RegisterManufacturer).ProductPrefixID, "asset not set")
}

func TestSignWithMockSigner(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	factory, registry := newFactory(t)

	publicKey, err := hex.DecodeString(fixtures.PublicKey)
	require.Nil(t, err, "public key hex error")
	signature := []byte{0x30, 0x06, 0x02, 0x01, 0x01, 0x02, 0x01, 0x01}

	draft := factory.SimpleTransaction().Nonce(3).SimpleData("ABCDE")

	expected := draft.Struct().Envelope()
	expected.SenderPublicKey = publicKey
	message, err := registry.SigningBytes(expected)
	require.Nil(t, err, "signing bytes error")

	signer := mocks.NewMockSigner(ctl)
	signer.EXPECT().PublicKey("secret").Return(publicKey, nil).Times(1)
	signer.EXPECT().Sign(transactionrecord.Digest(message), "secret").Return(signature, nil).Times(1)

	signed, err := draft.Sign(signer, "secret")
	require.Nil(t, err, "sign error")

	packed := signed.Packed()
	assert.Equal(t, transactionrecord.Packed(append(append([]byte{}, message...), signature...)), packed, "wrong packed")
	assert.Equal(t, packed.MakeId(), signed.Id(), "wrong id")

	envelope := signed.Struct()
	assert.Equal(t, signature, envelope.Signature, "wrong signature")
	assert.Equal(t, publicKey, envelope.SenderPublicKey, "wrong public key")
	assert.True(t, envelope.IsSigned(), "not signed")

	// the copy handed out cannot change the signed transaction
	envelope.Nonce = 99
	envelope.Signature[0] = 0x00
	assert.Equal(t, uint64(3), signed.Struct().Nonce, "signed nonce changed")
	assert.Equal(t, signature, signed.Struct().Signature, "signed signature changed")

	// the draft stays a draft
	assert.False(t, draft.Struct().Envelope().IsSigned(), "draft was signed")
}

func TestSignWithKeypair(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	factory, registry := newFactory(t)

	signed, err := factory.RegisterManufacturer().
		Nonce(1).
		VendorField("anticounterfeit").
		Manufacturer(fixtures.ManufacturerAddress, fixtures.ProductPrefix).
		Sign(keypair.Signer{}, fixtures.Passphrase)
	require.Nil(t, err, "sign error")

	envelope := signed.Struct()
	assert.Equal(t, fixtures.PublicKey, hex.EncodeToString(envelope.SenderPublicKey), "wrong public key")
	assert.Nil(t, registry.Verify(envelope, keypair.Verifier{}), "signature rejected")

	decoded, err := registry.Decode(signed.Packed())
	require.Nil(t, err, "decode error")
	assert.Equal(t, envelope, decoded, "decoded differs")
	assert.Equal(t, signed.Id(), decoded.Id, "wrong id")

	address, err := keypair.Address(envelope.SenderPublicKey, envelope.Network)
	require.Nil(t, err, "address error")
	assert.Equal(t, fixtures.Address, address, "wrong sender address")
}

func TestSignEveryVariant(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	factory, registry := newFactory(t)
	signer := keypair.Signer{}

	product, err := factory.RegisterProduct().
		Nonce(2).
		Product(fixtures.ProductPrefix+"-1", "", fixtures.ManufacturerAddress, "").
		Sign(signer, fixtures.Passphrase)
	require.Nil(t, err, "product sign error")

	business, err := factory.BusinessRegistration().
		Nonce(3).
		BusinessData("Acme", "acme.example").
		Sign(signer, fixtures.Passphrase)
	require.Nil(t, err, "business sign error")

	simple, err := factory.SimpleTransaction().
		Nonce(0).
		SimpleData("ABCDEFGHIJ").
		Sign(signer, fixtures.Passphrase)
	require.Nil(t, err, "simple sign error")

	for _, s := range []*builder.Signed{product, business, simple} {
		decoded, err := registry.Decode(s.Packed())
		require.Nil(t, err, "decode error")
		assert.Equal(t, s.Struct(), decoded, "decoded differs")
		assert.Nil(t, registry.Verify(decoded, keypair.Verifier{}), "signature rejected")
	}
}

func TestSignIncomplete(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	factory, _ := newFactory(t)

	// the signer must never be called
	signer := mocks.NewMockSigner(ctl)

	_, err := factory.RegisterManufacturer().
		Manufacturer(fixtures.ManufacturerAddress, fixtures.ProductPrefix).
		Sign(signer, "secret")
	assert.True(t, errors.Is(err, fault.ErrIncompleteTransaction), "missing nonce: wrong error: %v", err)
	assert.Contains(t, err.Error(), "nonce", "nonce not named")

	_, err = factory.RegisterManufacturer().
		Nonce(1).
		Fee(0).
		Manufacturer(fixtures.ManufacturerAddress, fixtures.ProductPrefix).
		Sign(signer, "secret")
	assert.True(t, errors.Is(err, fault.ErrIncompleteTransaction), "zero fee: wrong error: %v", err)
	assert.True(t, fault.IsErrInvalid(err), "wrong class")
}

func TestSignSchemaViolation(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	factory, _ := newFactory(t)

	// the signer must never be called
	signer := mocks.NewMockSigner(ctl)

	_, err := factory.RegisterManufacturer().
		Nonce(1).
		Manufacturer(fixtures.ManufacturerAddress[:33], fixtures.ProductPrefix).
		Sign(signer, "secret")
	assert.True(t, errors.Is(err, fault.ErrSchemaViolation), "short address: wrong error: %v", err)

	_, err = factory.SimpleTransaction().
		Nonce(1).
		Sign(signer, "secret")
	assert.True(t, errors.Is(err, fault.ErrSchemaViolation), "empty asset: wrong error: %v", err)
}

func TestSignerFailure(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	factory, _ := newFactory(t)

	publicKey, err := hex.DecodeString(fixtures.PublicKey)
	require.Nil(t, err, "public key hex error")

	hsmError := errors.New("hardware module offline")

	signer := mocks.NewMockSigner(ctl)
	signer.EXPECT().PublicKey("secret").Return(publicKey, nil).Times(1)
	signer.EXPECT().Sign(gomock.Any(), "secret").Return(nil, hsmError).Times(1)

	_, err = factory.BusinessRegistration().
		Nonce(1).
		BusinessData("Acme", "acme.example").
		Sign(signer, "secret")
	assert.True(t, errors.Is(err, fault.ErrSigningFailed), "wrong error: %v", err)
	assert.True(t, errors.Is(err, hsmError), "original error lost: %v", err)
	assert.True(t, fault.IsErrProcess(err), "wrong class")

	var signingError *fault.SigningError
	require.True(t, errors.As(err, &signingError), "not a signing error")
	assert.Equal(t, hsmError, signingError.Err, "original error changed")

	// public key failure is reported the same way
	signer.EXPECT().PublicKey("secret").Return(nil, hsmError).Times(1)
	_, err = factory.BusinessRegistration().
		Nonce(1).
		BusinessData("Acme", "acme.example").
		Sign(signer, "secret")
	assert.True(t, errors.Is(err, fault.ErrSigningFailed), "wrong error: %v", err)
	assert.True(t, errors.Is(err, hsmError), "original error lost: %v", err)
}

func TestUnsignedJSON(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	factory, registry := newFactory(t)

	data, err := factory.SimpleTransaction().Nonce(4).SimpleData("ABCDE").Struct().MarshalJSON()
	require.Nil(t, err, "marshal error")

	envelope, err := registry.EnvelopeFromJSON(data)
	require.Nil(t, err, "from JSON error")
	assert.Equal(t, uint64(4), envelope.Nonce, "wrong nonce")
	assert.Equal(t, &transactionrecord.SimpleData{Id: "ABCDE"}, envelope.Asset, "wrong asset")
}
