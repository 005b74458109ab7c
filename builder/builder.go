// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package builder

import (
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"

	"github.com/unimi-anticounterfeit/arktx/fault"
	"github.com/unimi-anticounterfeit/arktx/transactionrecord"
)

// Factory - creates draft builders bound to one registry and network
type Factory struct {
	log      *logger.L
	registry *transactionrecord.Registry
	network  uint8
}

// New - factory for builders
//
// the registry must come from a sealed setup so every variant is
// registered before the first draft exists
func New(log *logger.L, registry *transactionrecord.Registry, network uint8) *Factory {
	return &Factory{
		log:      log,
		registry: registry,
		network:  network,
	}
}

// draft - state common to all variant builders
//
// held by value: a setter works on its own copy and returns it, so a
// builder that was handed out is never changed behind its holder
type draft struct {
	factory  *Factory
	envelope transactionrecord.Envelope
	nonceSet bool
}

func (factory *Factory) newDraft(key transactionrecord.Key, asset transactionrecord.Asset) draft {
	fee := uint64(0)
	codec, err := factory.registry.Lookup(key.TypeGroup, key.Type)
	if nil == err {
		fee = codec.DefaultFee()
	} else {
		factory.log.Warnf("draft: %s: %s", key, err)
	}

	factory.log.Debugf("draft: %s  network: 0x%02x  default fee: %d", key, factory.network, fee)

	return draft{
		factory: factory,
		envelope: transactionrecord.Envelope{
			Version:   transactionrecord.CurrentVersion,
			Network:   factory.network,
			TypeGroup: key.TypeGroup,
			Type:      key.Type,
			Fee:       fee,
			Amount:    0,
			Asset:     asset,
		},
	}
}

// Unsigned - a draft envelope
//
// a distinct type so it cannot be passed where a signed transaction
// is expected
type Unsigned struct {
	envelope *transactionrecord.Envelope
}

// Envelope - copy of the draft envelope
func (u Unsigned) Envelope() *transactionrecord.Envelope {
	return u.envelope.Copy()
}

// MarshalJSON - the draft in the ledger's JSON form
func (u Unsigned) MarshalJSON() ([]byte, error) {
	return u.envelope.MarshalJSON()
}

// Signed - an immutable signed transaction
//
// there are no setters; Struct hands out copies only
type Signed struct {
	envelope *transactionrecord.Envelope
	packed   transactionrecord.Packed
}

// Struct - copy of the signed envelope
func (s *Signed) Struct() *transactionrecord.Envelope {
	return s.envelope.Copy()
}

// Packed - the complete wire record
func (s *Signed) Packed() transactionrecord.Packed {
	return append(transactionrecord.Packed(nil), s.packed...)
}

// Id - hex transaction id
func (s *Signed) Id() string {
	return s.envelope.Id
}

// MarshalJSON - the signed transaction in the ledger's JSON form
func (s *Signed) MarshalJSON() ([]byte, error) {
	return s.envelope.MarshalJSON()
}

func (d draft) withNonce(nonce uint64) draft {
	d.envelope.Nonce = nonce
	d.nonceSet = true
	return d
}

func (d draft) withFee(fee uint64) draft {
	d.envelope.Fee = fee
	return d
}

func (d draft) withVendorField(vendorField string) draft {
	d.envelope.VendorField = vendorField
	return d
}

func (d draft) withAsset(asset transactionrecord.Asset) draft {
	d.envelope.Asset = asset
	return d
}

func (d draft) unsigned() Unsigned {
	return Unsigned{envelope: d.envelope.Copy()}
}

// sign - check, sign and pack the draft
//
// the draft itself is left unchanged
func (d draft) sign(signer transactionrecord.Signer, secret string) (*Signed, error) {
	log := d.factory.log
	registry := d.factory.registry
	key := d.envelope.Key()

	missing := make([]string, 0, 2)
	if !d.nonceSet {
		missing = append(missing, "nonce")
	}
	if 0 == d.envelope.Fee {
		missing = append(missing, "fee")
	}
	if 0 != len(missing) {
		return nil, errors.Wrapf(fault.ErrIncompleteTransaction, "%s: missing: %s", key, strings.Join(missing, ", "))
	}

	envelope := d.envelope.Copy()

	// an invalid asset never reaches the signer
	if err := registry.Validate(envelope); nil != err {
		log.Debugf("sign: %s: %s", key, err)
		return nil, err
	}

	publicKey, err := signer.PublicKey(secret)
	if nil != err {
		log.Errorf("sign: %s: public key error: %s", key, err)
		return nil, &fault.SigningError{Err: err}
	}
	envelope.SenderPublicKey = publicKey

	message, err := registry.SigningBytes(envelope)
	if nil != err {
		return nil, err
	}

	signature, err := signer.Sign(transactionrecord.Digest(message), secret)
	if nil != err {
		log.Errorf("sign: %s: signature error: %s", key, err)
		return nil, &fault.SigningError{Err: err}
	}
	envelope.Signature = signature

	packed, err := registry.Pack(envelope)
	if nil != err {
		return nil, err
	}
	envelope.Id = packed.MakeId()

	log.Infof("signed: %s  nonce: %d  fee: %d  id: %s", key, envelope.Nonce, envelope.Fee, envelope.Id)

	return &Signed{
		envelope: envelope,
		packed:   packed,
	}, nil
}
