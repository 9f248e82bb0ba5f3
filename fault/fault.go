// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Hullspace Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type AuthorizationError GenericError
type CapacityError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyActive         = InvalidError("ship is already active")
	ErrAlreadyInitialised    = ProcessError("already initialised")
	ErrCannotDecodeAccount   = ProcessError("cannot decode account")
	ErrCensureRankTooLow     = InvalidError("censure rank is too low")
	ErrChecksumMismatch      = ProcessError("checksum mismatch")
	ErrDuplicateCensure      = ExistsError("target is already censured")
	ErrEscapeNotRequested    = InvalidError("no escape request is pending")
	ErrIndexOutOfRange       = NotFoundError("index is out of range")
	ErrInvalidKeyLength      = InvalidError("key length is invalid")
	ErrInvalidKeyType        = InvalidError("key type is invalid")
	ErrListEntryExists       = ExistsError("list entry already exists")
	ErrListEntryNotFound     = NotFoundError("list entry not found")
	ErrNotAuthorised         = AuthorizationError("caller is not authorised")
	ErrNotCensured           = NotFoundError("target is not censured")
	ErrNotInitialised        = ProcessError("not initialised")
	ErrNotPublicKey          = ProcessError("not a public key")
	ErrNotShipOwner          = AuthorizationError("caller does not own the ship")
	ErrSameOwner             = InvalidError("new owner is the same as current owner")
	ErrSelfCensure           = InvalidError("a ship cannot censure itself")
	ErrShipRecordCorrupt     = ProcessError("ship record is corrupt")
	ErrTooManyCensures       = CapacityError("too many outstanding censures")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorizationError) Error() string { return string(e) }
func (e CapacityError) Error() string      { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }

// determine the class of an error
func IsErrAuthorization(e error) bool { _, ok := e.(AuthorizationError); return ok }
func IsErrCapacity(e error) bool      { _, ok := e.(CapacityError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
