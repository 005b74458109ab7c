// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/unimi-anticounterfeit/arktx/builder"
	"github.com/unimi-anticounterfeit/arktx/fault"
	"github.com/unimi-anticounterfeit/arktx/keypair"
	"github.com/unimi-anticounterfeit/arktx/transactionrecord"
)

// output of the signing commands
type signedDisplay struct {
	Id          string                   `json:"id"`
	Transaction *builder.Signed          `json:"transaction"`
	Packed      transactionrecord.Packed `json:"packed"`
}

// values common to all signing commands
type common struct {
	nonce       uint64
	fee         uint64
	vendorField string
	passphrase  string
}

func checkCommon(c *cli.Context, m *metadata, key transactionrecord.Key) (*common, error) {
	if !c.IsSet("nonce") {
		return nil, fmt.Errorf("nonce is required")
	}

	passphrase := c.GlobalString("passphrase")
	if "" == passphrase {
		return nil, keypair.ErrEmptyPassphrase
	}

	codec, err := m.registry.Lookup(key.TypeGroup, key.Type)
	if nil != err {
		return nil, err
	}

	fee := codec.DefaultFee()
	if f, ok := m.config.Fee(key); ok {
		fee = f
	}
	if c.IsSet("fee") {
		fee = c.Uint64("fee")
	}

	vendorField := m.config.VendorField
	if c.IsSet("vendor-field") {
		vendorField = c.String("vendor-field")
	}

	if m.verbose {
		fmt.Fprintf(m.e, "%s: nonce: %d  fee: %d  vendor field: %q\n", key, c.Uint64("nonce"), fee, vendorField)
	}

	return &common{
		nonce:       c.Uint64("nonce"),
		fee:         fee,
		vendorField: vendorField,
		passphrase:  passphrase,
	}, nil
}

func checkRequired(name string, value string) error {
	if "" == value {
		return fmt.Errorf("%s is required", name)
	}
	return nil
}

// the manufacturer address must belong to the selected network
func checkAddress(m *metadata, address string) error {
	if err := checkRequired("address", address); nil != err {
		return err
	}
	return keypair.CheckAddress(address, m.network)
}

func printSigned(m *metadata, signed *builder.Signed, err error) error {
	if nil != err {
		return err
	}
	return printJson(m.w, signedDisplay{
		Id:          signed.Id(),
		Transaction: signed,
		Packed:      signed.Packed(),
	})
}

func runManufacturer(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	address := c.String("address")
	if err := checkAddress(m, address); nil != err {
		return err
	}
	prefix := c.String("prefix")
	if err := checkRequired("prefix", prefix); nil != err {
		return err
	}

	v, err := checkCommon(c, m, transactionrecord.RegisterManufacturerKey)
	if nil != err {
		return err
	}

	signed, err := m.factory().RegisterManufacturer().
		Nonce(v.nonce).
		Fee(v.fee).
		VendorField(v.vendorField).
		Manufacturer(address, prefix).
		Sign(keypair.Signer{}, v.passphrase)
	return printSigned(m, signed, err)
}

func runProduct(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	productId := c.String("id")
	if err := checkRequired("id", productId); nil != err {
		return err
	}
	address := c.String("address")
	if err := checkAddress(m, address); nil != err {
		return err
	}

	v, err := checkCommon(c, m, transactionrecord.RegisterProductKey)
	if nil != err {
		return err
	}

	signed, err := m.factory().RegisterProduct().
		Nonce(v.nonce).
		Fee(v.fee).
		VendorField(v.vendorField).
		Product(productId, c.String("description"), address, c.String("metadata")).
		Sign(keypair.Signer{}, v.passphrase)
	return printSigned(m, signed, err)
}

func runSimple(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	id := c.String("id")
	if err := checkRequired("id", id); nil != err {
		return err
	}

	v, err := checkCommon(c, m, transactionrecord.SimpleTransactionKey)
	if nil != err {
		return err
	}

	signed, err := m.factory().SimpleTransaction().
		Nonce(v.nonce).
		Fee(v.fee).
		VendorField(v.vendorField).
		SimpleData(id).
		Sign(keypair.Signer{}, v.passphrase)
	return printSigned(m, signed, err)
}

func runBusiness(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	name := c.String("name")
	if err := checkRequired("name", name); nil != err {
		return err
	}
	website := c.String("website")
	if err := checkRequired("website", website); nil != err {
		return err
	}

	v, err := checkCommon(c, m, transactionrecord.BusinessRegistrationKey)
	if nil != err {
		return err
	}

	signed, err := m.factory().BusinessRegistration().
		Nonce(v.nonce).
		Fee(v.fee).
		VendorField(v.vendorField).
		BusinessData(name, website).
		Sign(keypair.Signer{}, v.passphrase)
	return printSigned(m, signed, err)
}

func runDecode(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	packedHex := c.String("packed")
	if err := checkRequired("packed", packedHex); nil != err {
		return err
	}

	packed, err := hex.DecodeString(packedHex)
	if nil != err {
		return err
	}

	envelope, err := m.registry.Decode(packed)
	if nil != err {
		return err
	}

	type decodeDisplay struct {
		Name        string                      `json:"name"`
		Sender      string                      `json:"sender"`
		Verified    *bool                       `json:"verified,omitempty"`
		Transaction *transactionrecord.Envelope `json:"transaction"`
	}

	name, _ := transactionrecord.RecordName(envelope.Asset)
	sender, err := keypair.Address(envelope.SenderPublicKey, envelope.Network)
	if nil != err {
		return err
	}

	output := decodeDisplay{
		Name:        name,
		Sender:      sender,
		Transaction: envelope,
	}

	if c.Bool("verify") {
		err := m.registry.Verify(envelope, keypair.Verifier{})
		switch {
		case nil == err:
			verified := true
			output.Verified = &verified
		case fault.ErrInvalidSignature == err, fault.ErrUnsigned == err:
			verified := false
			output.Verified = &verified
		default:
			return err
		}
	}

	return printJson(m.w, output)
}

func runTypes(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	type field struct {
		Name    string `json:"name"`
		Minimum int    `json:"minimum"`
		Maximum int    `json:"maximum"`
	}
	type typeDisplay struct {
		TypeGroup  uint32  `json:"typeGroup"`
		Type       uint16  `json:"type"`
		Schema     string  `json:"schema"`
		DefaultFee uint64  `json:"defaultFee,string"`
		Fields     []field `json:"fields"`
	}

	output := make([]typeDisplay, 0)
	for _, key := range m.registry.Keys() {
		codec, err := m.registry.Lookup(key.TypeGroup, key.Type)
		if nil != err {
			return err
		}
		schema := codec.Schema()
		t := typeDisplay{
			TypeGroup:  key.TypeGroup,
			Type:       key.Type,
			Schema:     schema.Id,
			DefaultFee: codec.DefaultFee(),
			Fields:     make([]field, 0, len(schema.Fields)),
		}
		for _, f := range schema.Fields {
			t.Fields = append(t.Fields, field{Name: f.Name, Minimum: f.Minimum, Maximum: f.Maximum})
		}
		output = append(output, t)
	}

	return printJson(m.w, output)
}

func runAddress(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	rawKeyPair, err := keypair.MakeRawKeyPair(c.GlobalString("passphrase"), m.network)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "network: 0x%02x\n", m.network)
	}

	return printJson(m.w, rawKeyPair)
}
