// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/unimi-anticounterfeit/arktx/fault"
)

// Field - a required string field of an asset
//
// the bounds are inclusive and count bytes of the UTF-8 encoding
type Field struct {
	Name    string
	Minimum int
	Maximum int
}

// Schema - structural description of one transaction variant
type Schema struct {
	Id        string // also the key of the asset in the JSON form
	TypeGroup uint32
	Type      uint16
	Fields    []Field
}

// copy with its own field slice
func (schema *Schema) clone() *Schema {
	s := *schema
	s.Fields = append([]Field(nil), schema.Fields...)
	return &s
}

// Key - the dispatch key described by the schema
func (schema *Schema) Key() Key {
	return Key{TypeGroup: schema.TypeGroup, Type: schema.Type}
}

// Validate - check an envelope against the schema
//
// every violation is reported; each one matches fault.ErrSchemaViolation
func (schema *Schema) Validate(envelope *Envelope) error {
	var result *multierror.Error

	if envelope.TypeGroup != schema.TypeGroup {
		result = multierror.Append(result, schema.violation("typeGroup", "is %d, must be %d", envelope.TypeGroup, schema.TypeGroup))
	}
	if envelope.Type != schema.Type {
		result = multierror.Append(result, schema.violation("type", "is %d, must be %d", envelope.Type, schema.Type))
	}
	if envelope.Version != CurrentVersion {
		result = multierror.Append(result, schema.violation("version", "is %d, must be %d", envelope.Version, CurrentVersion))
	}
	if 0 != envelope.Amount {
		result = multierror.Append(result, schema.violation("amount", "is %d, must be 0", envelope.Amount))
	}

	result = multierror.Append(result, schema.validateAsset(envelope.Asset))

	return result.ErrorOrNil()
}

// ValidateAsset - check only the payload fields
func (schema *Schema) ValidateAsset(asset Asset) error {
	var result *multierror.Error
	result = multierror.Append(result, schema.validateAsset(asset))
	return result.ErrorOrNil()
}

func (schema *Schema) validateAsset(asset Asset) error {
	if nil == asset {
		return schema.violation("asset", "is required")
	}
	if asset.SchemaId() != schema.Id {
		name, _ := RecordName(asset)
		return schema.violation("asset", "%s is the wrong payload", name)
	}

	// typed nil pointer
	values := asset.Values()
	if nil == values {
		return schema.violation("asset", "is required")
	}
	if len(values) != len(schema.Fields) {
		return schema.violation("asset", "has %d fields, expected %d", len(values), len(schema.Fields))
	}

	var result *multierror.Error
	for i, field := range schema.Fields {
		v := values[i]
		n := len(v)
		switch {
		case !utf8.ValidString(v):
			result = multierror.Append(result, schema.violation(field.Name, "is not valid UTF-8"))
		case n < field.Minimum:
			result = multierror.Append(result, schema.violation(field.Name, "length %d is below minimum %d", n, field.Minimum))
		case n > field.Maximum:
			result = multierror.Append(result, schema.violation(field.Name, "length %d is above maximum %d", n, field.Maximum))
		}
	}
	return result.ErrorOrNil()
}

func (schema *Schema) violation(field string, format string, arguments ...interface{}) error {
	return errors.Wrapf(fault.ErrSchemaViolation, "%s.%s "+format, append([]interface{}{schema.Id, field}, arguments...)...)
}
