// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unimi-anticounterfeit/arktx/fixtures"
	"github.com/unimi-anticounterfeit/arktx/keypair"
	"github.com/unimi-anticounterfeit/arktx/transactionrecord"
)

func TestNetworkVersion(t *testing.T) {
	for name, expected := range map[string]uint8{
		"mainnet": transactionrecord.MainnetNetwork,
		"DevNet":  transactionrecord.DevnetNetwork,
		"testnet": transactionrecord.TestnetNetwork,
	} {
		n, err := networkVersion(name)
		assert.Nil(t, err, "%s: unexpected error", name)
		assert.Equal(t, expected, n, "%s: wrong version", name)
	}

	_, err := networkVersion("bitmark")
	assert.NotNil(t, err, "unknown network accepted")
}

func TestPrintJson(t *testing.T) {
	buffer := &bytes.Buffer{}
	err := printJson(buffer, transactionrecord.Packed{0xff, 0x02})
	require.Nil(t, err, "print error")
	assert.Equal(t, "\"ff02\"\n", buffer.String(), "wrong output")

	var v interface{}
	assert.Nil(t, json.Unmarshal(buffer.Bytes(), &v), "output is not JSON")
}

func TestCheckAddress(t *testing.T) {
	publicKey, err := hex.DecodeString(fixtures.PublicKey)
	require.Nil(t, err, "public key hex error")

	devnet, err := keypair.Address(publicKey, transactionrecord.DevnetNetwork)
	require.Nil(t, err, "address error")

	m := &metadata{network: transactionrecord.DevnetNetwork}
	assert.Nil(t, checkAddress(m, devnet), "devnet address rejected")

	assert.NotNil(t, checkAddress(m, ""), "empty address accepted")
	assert.Equal(t, keypair.ErrInvalidAddress, checkAddress(m, devnet[:len(devnet)-1]), "damaged address accepted")

	m.network = transactionrecord.MainnetNetwork
	assert.Equal(t, keypair.ErrWrongNetwork, checkAddress(m, devnet), "address of another network accepted")
}
