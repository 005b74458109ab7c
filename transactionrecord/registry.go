// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"sort"
	"sync"

	"github.com/pkg/errors"

	"github.com/unimi-anticounterfeit/arktx/fault"
)

// Setup - collects codecs before any transaction is built or parsed
//
// not safe for concurrent use; a host performs registration once,
// on one goroutine, then calls Seal and shares the Registry
type Setup struct {
	codecs map[Key]Codec
	sealed bool
}

// Registry - read-only mapping from dispatch key to codec
//
// only obtainable from Setup.Seal, so every lookup happens after
// registration is complete
type Registry struct {
	codecs map[Key]Codec
}

// NewSetup - empty registration table
func NewSetup() *Setup {
	return &Setup{
		codecs: make(map[Key]Codec),
	}
}

// Register - add a codec under typeGroup/type
//
// remapping a key is a configuration error and is never resolved by
// overwriting the earlier entry
func (setup *Setup) Register(typeGroup uint32, transactionType uint16, codec Codec) error {
	if setup.sealed {
		return fault.ErrRegistrySealed
	}

	key := Key{TypeGroup: typeGroup, Type: transactionType}
	if nil == codec || nil == codec.Schema() || codec.Schema().Key() != key {
		return errors.Wrapf(fault.ErrRegistrationMismatch, "key: %s", key)
	}
	if _, ok := setup.codecs[key]; ok {
		return errors.Wrapf(fault.ErrDuplicateRegistration, "key: %s", key)
	}

	setup.codecs[key] = codec
	return nil
}

// Seal - finish registration and return the read-only registry
//
// further Register calls fail with fault.ErrRegistrySealed
func (setup *Setup) Seal() *Registry {
	setup.sealed = true

	codecs := make(map[Key]Codec, len(setup.codecs))
	for k, v := range setup.codecs {
		codecs[k] = v
	}
	return &Registry{
		codecs: codecs,
	}
}

// Lookup - codec registered for typeGroup/type
func (registry *Registry) Lookup(typeGroup uint32, transactionType uint16) (Codec, error) {
	key := Key{TypeGroup: typeGroup, Type: transactionType}
	codec, ok := registry.codecs[key]
	if !ok {
		return nil, errors.Wrapf(fault.ErrUnknownVariant, "key: %s", key)
	}
	return codec, nil
}

// Keys - all registered keys in ascending order
func (registry *Registry) Keys() []Key {
	keys := make([]Key, 0, len(registry.codecs))
	for k := range registry.codecs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].TypeGroup != keys[j].TypeGroup {
			return keys[i].TypeGroup < keys[j].TypeGroup
		}
		return keys[i].Type < keys[j].Type
	})
	return keys
}

// Validate - check an envelope against the schema of its variant
func (registry *Registry) Validate(envelope *Envelope) error {
	codec, err := registry.Lookup(envelope.TypeGroup, envelope.Type)
	if nil != err {
		return err
	}
	return codec.Schema().Validate(envelope)
}

// the process wide registry of the built-in variants
var (
	standardOnce     sync.Once
	standardRegistry *Registry
	standardError    error
)

// Standard - registry holding the built-in variants
//
// registration runs once per process; later calls return the same
// registry
func Standard() (*Registry, error) {
	standardOnce.Do(func() {
		setup := NewSetup()
		for _, codec := range []Codec{
			BusinessCodec{},
			RegisterManufacturerCodec{},
			RegisterProductCodec{},
			SimpleCodec{},
		} {
			key := codec.Schema().Key()
			if err := setup.Register(key.TypeGroup, key.Type, codec); nil != err {
				standardError = err
				return
			}
		}
		standardRegistry = setup.Seal()
	})
	return standardRegistry, standardError
}
