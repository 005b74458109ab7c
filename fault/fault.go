// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrDuplicateRegistration = ExistsError("transaction type already registered")
	ErrIdMismatch            = RecordError("transaction id does not match contents")
	ErrIncompleteTransaction = InvalidError("transaction is incomplete")
	ErrInvalidPublicKey      = InvalidError("invalid public key")
	ErrInvalidSignature      = InvalidError("invalid signature")
	ErrInvalidUTF8           = RecordError("field is not valid utf-8")
	ErrNotTransactionPack    = RecordError("not a transaction pack")
	ErrPrefixOverflow        = LengthError("field too long for its length prefix")
	ErrRegistrationMismatch  = InvalidError("registration key does not match codec schema")
	ErrRegistrySealed        = ProcessError("registry is sealed")
	ErrSchemaViolation       = InvalidError("schema violation")
	ErrSigningFailed         = ProcessError("signing failed")
	ErrTrailingData          = RecordError("trailing data after transaction")
	ErrTruncatedInput        = LengthError("truncated input")
	ErrUnknownVariant        = NotFoundError("unknown transaction type")
	ErrUnsigned              = InvalidError("transaction is not signed")
	ErrVendorFieldTooLong    = LengthError("vendor field too long")
)

// the error interface methods
func (e GenericError) Error() string  { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool   { var t ExistsError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool  { var t InvalidError; return errors.As(e, &t) }
func IsErrLength(e error) bool   { var t LengthError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool  { var t ProcessError; return errors.As(e, &t) }
func IsErrRecord(e error) bool   { var t RecordError; return errors.As(e, &t) }

// SigningError - carries the error returned by a signing collaborator
// unchanged; matches ErrSigningFailed and unwraps to the original
type SigningError struct {
	Err error
}

func (e *SigningError) Error() string {
	return ErrSigningFailed.Error() + ": " + e.Err.Error()
}

func (e *SigningError) Unwrap() error { return e.Err }

func (e *SigningError) Is(target error) bool {
	return target == ErrSigningFailed
}

// As - a signing error also classifies as a process error
func (e *SigningError) As(target interface{}) bool {
	if p, ok := target.(*ProcessError); ok {
		*p = ErrSigningFailed
		return true
	}
	return false
}
