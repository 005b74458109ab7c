// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unimi-anticounterfeit/arktx/fault"
	"github.com/unimi-anticounterfeit/arktx/fixtures"
	"github.com/unimi-anticounterfeit/arktx/transactionrecord"
)

func TestEnvelopeJSON(t *testing.T) {
	registry := standard(t)

	envelope := manufacturerDraft()
	envelope.VendorField = "hello"
	signEnvelope(t, registry, envelope)

	data, err := json.Marshal(envelope)
	require.Nil(t, err, "marshal error")

	s := string(data)
	assert.Contains(t, s, `"typeGroup":2001`, "typeGroup")
	assert.Contains(t, s, `"type":201`, "type")
	assert.Contains(t, s, `"fee":"5000000000"`, "fee is not a decimal string")
	assert.Contains(t, s, `"amount":"0"`, "amount is not a decimal string")
	assert.Contains(t, s, `"nonce":"5"`, "nonce is not a decimal string")
	assert.Contains(t, s, `"senderPublicKey":"`+fixtures.PublicKey+`"`, "public key")
	assert.Contains(t, s, `"asset":{"AnticounterfeitRegisterManufacturerTransaction":{"ManufacturerAddressId":"`+fixtures.ManufacturerAddress+`","ProductPrefixID":"AES1212"}}`, "asset")
	assert.Contains(t, s, `"id":"`+envelope.Id+`"`, "id")

	recovered, err := registry.EnvelopeFromJSON(data)
	if nil != err {
		t.Fatalf("from JSON error: %s", err)
	}
	if !reflect.DeepEqual(envelope, recovered) {
		t.Fatalf("different, original: %+v  recovered: %+v", envelope, recovered)
	}
}

func TestEnvelopeJSONDraft(t *testing.T) {
	registry := standard(t)

	envelope := &transactionrecord.Envelope{
		Version:   transactionrecord.CurrentVersion,
		Network:   transactionrecord.DevnetNetwork,
		TypeGroup: transactionrecord.SimpleTypeGroup,
		Type:      transactionrecord.SimpleTransactionType,
		Nonce:     2,
		Fee:       1000000,
		Asset:     &transactionrecord.SimpleData{Id: "ABCDE"},
	}

	data, err := json.Marshal(envelope)
	require.Nil(t, err, "marshal error")
	assert.False(t, strings.Contains(string(data), "signature"), "draft has a signature: %s", data)
	assert.False(t, strings.Contains(string(data), `"id"`), "draft has an id: %s", data)

	recovered, err := registry.EnvelopeFromJSON(data)
	require.Nil(t, err, "from JSON error")
	assert.Equal(t, envelope, recovered, "different envelope")
}

func TestEnvelopeJSONErrors(t *testing.T) {
	registry := standard(t)

	envelope := manufacturerDraft()
	signEnvelope(t, registry, envelope)

	// id that does not match the contents
	wrongId := envelope.Copy()
	wrongId.Id = strings.Repeat("0", 64)
	data, err := json.Marshal(wrongId)
	require.Nil(t, err, "marshal error")
	_, err = registry.EnvelopeFromJSON(data)
	assert.True(t, errors.Is(err, fault.ErrIdMismatch), "wrong error: %v", err)

	// unregistered variant
	_, err = registry.EnvelopeFromJSON([]byte(`{"version":2,"typeGroup":9999,"type":1,"nonce":"1","fee":"1","amount":"0","asset":{}}`))
	assert.True(t, errors.Is(err, fault.ErrUnknownVariant), "wrong error: %v", err)

	// payload stored under another schema key
	_, err = registry.EnvelopeFromJSON([]byte(`{"version":2,"typeGroup":3001,"type":301,"nonce":"1","fee":"1","amount":"0","asset":{"businessData":{"name":"abc","website":"abc"}}}`))
	assert.True(t, errors.Is(err, fault.ErrSchemaViolation), "wrong error: %v", err)

	// non-zero amount
	_, err = registry.EnvelopeFromJSON([]byte(`{"version":2,"typeGroup":3001,"type":301,"nonce":"1","fee":"1","amount":"7","asset":{"simpleData":{"Id":"ABCDE"}}}`))
	assert.True(t, errors.Is(err, fault.ErrSchemaViolation), "wrong error: %v", err)

	_, err = registry.EnvelopeFromJSON([]byte(`{`))
	assert.NotNil(t, err, "broken JSON accepted")
}

func TestPackedText(t *testing.T) {
	packed := transactionrecord.Packed{0xff, 0x02, 0x1e}

	data, err := json.Marshal(packed)
	require.Nil(t, err, "marshal error")
	assert.Equal(t, `"ff021e"`, string(data), "wrong text")

	var recovered transactionrecord.Packed
	err = json.Unmarshal(data, &recovered)
	require.Nil(t, err, "unmarshal error")
	assert.Equal(t, packed, recovered, "different packed")
}
