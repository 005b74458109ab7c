// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/unimi-anticounterfeit/arktx/fault"
)

// Codec - the capabilities of one transaction variant
//
// Pack and Unpack only cover the asset bytes; the envelope header is
// handled by the registry. Both are pure functions of their inputs.
type Codec interface {
	Schema() *Schema
	DefaultFee() uint64
	NewAsset() Asset
	Pack(asset Asset) ([]byte, error)
	Unpack(buffer []byte) (Asset, int, error)
}

// wrong payload type handed to a codec
func wrongAsset(schema *Schema, asset Asset) error {
	name, _ := RecordName(asset)
	return errors.Wrapf(fault.ErrSchemaViolation, "%s.asset %s is the wrong payload", schema.Id, name)
}

// nil payload handed to a codec
func missingAsset(schema *Schema) error {
	return errors.Wrapf(fault.ErrSchemaViolation, "%s.asset is required", schema.Id)
}

// append a string preceded by its byte length as a single byte
func appendString8(buffer []byte, name string, s string) ([]byte, error) {
	if len(s) > math.MaxUint8 {
		return nil, errors.Wrapf(fault.ErrPrefixOverflow, "%s: %d bytes", name, len(s))
	}
	buffer = append(buffer, byte(len(s)))
	return append(buffer, s...), nil
}

// append a string preceded by its byte length as a little endian uint16
func appendString16(buffer []byte, name string, s string) ([]byte, error) {
	if len(s) > math.MaxUint16 {
		return nil, errors.Wrapf(fault.ErrPrefixOverflow, "%s: %d bytes", name, len(s))
	}
	var l [2]byte
	binary.LittleEndian.PutUint16(l[:], uint16(len(s)))
	buffer = append(buffer, l[:]...)
	return append(buffer, s...), nil
}

// append little endian integers
func appendUint16(buffer []byte, value uint16) []byte {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], value)
	return append(buffer, b[:]...)
}

func appendUint32(buffer []byte, value uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], value)
	return append(buffer, b[:]...)
}

func appendUint64(buffer []byte, value uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], value)
	return append(buffer, b[:]...)
}

// reader - sequential decoding of a packed record
//
// every read checks the remaining length first so a short buffer is
// reported as truncated input instead of a slice panic
type reader struct {
	buffer []byte
	n      int
}

func (r *reader) remaining() int {
	return len(r.buffer) - r.n
}

func (r *reader) bytes(count int) ([]byte, error) {
	if count < 0 || r.remaining() < count {
		return nil, errors.Wrapf(fault.ErrTruncatedInput, "need %d bytes at offset %d, have %d", count, r.n, r.remaining())
	}
	b := r.buffer[r.n : r.n+count]
	r.n += count
	return b, nil
}

func (r *reader) uint8() (uint8, error) {
	b, err := r.bytes(1)
	if nil != err {
		return 0, err
	}
	return b[0], nil
}

func (r *reader) uint16() (uint16, error) {
	b, err := r.bytes(2)
	if nil != err {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (r *reader) uint32() (uint32, error) {
	b, err := r.bytes(4)
	if nil != err {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *reader) uint64() (uint64, error) {
	b, err := r.bytes(8)
	if nil != err {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// string preceded by a single byte length
func (r *reader) string8(name string) (string, error) {
	l, err := r.uint8()
	if nil != err {
		return "", errors.WithMessage(err, name)
	}
	return r.text(name, int(l))
}

// string preceded by a little endian uint16 length
func (r *reader) string16(name string) (string, error) {
	l, err := r.uint16()
	if nil != err {
		return "", errors.WithMessage(err, name)
	}
	return r.text(name, int(l))
}

func (r *reader) text(name string, length int) (string, error) {
	b, err := r.bytes(length)
	if nil != err {
		return "", errors.WithMessage(err, name)
	}
	if !utf8.Valid(b) {
		return "", errors.Wrap(fault.ErrInvalidUTF8, name)
	}
	return string(b), nil
}
