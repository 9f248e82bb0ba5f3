// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Hullspace Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hullrecord

import (
	"github.com/hullspace/shipd/account"
	"github.com/hullspace/shipd/fault"
	"github.com/hullspace/shipd/ship"
	"github.com/hullspace/shipd/storage"
	"github.com/hullspace/shipd/util"
)

// flag bits
const (
	activeFlag          = 0x01
	escapeRequestedFlag = 0x02
)

// Packed - the on-disk form of a hull
type Packed []byte

// Pack - serialise a hull
//
// layout: flags byte, two fixed-length keys, varint counters, two
// fixed-length ships, three varint-length-prefixed accounts
func (hull *Hull) Pack() Packed {
	flags := byte(0)
	if hull.Active {
		flags |= activeFlag
	}
	if hull.EscapeRequested {
		flags |= escapeRequestedFlag
	}

	message := []byte{flags}
	message = appendKey(message, hull.EncryptionKey)
	message = appendKey(message, hull.AuthenticationKey)
	message = appendUint64(message, hull.KeyRevision)
	message = appendUint64(message, hull.ContinuityNumber)
	message = append(message, hull.Sponsor.Bytes()...)
	message = append(message, hull.EscapeTarget.Bytes()...)
	message = appendBytes(message, hull.Owner.Bytes())
	message = appendBytes(message, hull.SpawnProxy.Bytes())
	message = appendBytes(message, hull.TransferProxy.Bytes())
	return message
}

// Unpack - deserialise a hull
func (record Packed) Unpack() (*Hull, error) {
	hull := NewHull()

	if len(record) < 1 {
		return nil, fault.ErrShipRecordCorrupt
	}
	flags := record[0]
	hull.Active = 0 != flags&activeFlag
	hull.EscapeRequested = 0 != flags&escapeRequestedFlag
	record = record[1:]

	var err error
	if record, err = splitKey(record, hull.EncryptionKey); nil != err {
		return nil, err
	}
	if record, err = splitKey(record, hull.AuthenticationKey); nil != err {
		return nil, err
	}
	if hull.KeyRevision, record, err = splitUint64(record); nil != err {
		return nil, err
	}
	if hull.ContinuityNumber, record, err = splitUint64(record); nil != err {
		return nil, err
	}
	if hull.Sponsor, record, err = splitShip(record); nil != err {
		return nil, err
	}
	if hull.EscapeTarget, record, err = splitShip(record); nil != err {
		return nil, err
	}
	if hull.Owner, record, err = splitAccount(record); nil != err {
		return nil, err
	}
	if hull.SpawnProxy, record, err = splitAccount(record); nil != err {
		return nil, err
	}
	if hull.TransferProxy, record, err = splitAccount(record); nil != err {
		return nil, err
	}
	if 0 != len(record) {
		return nil, fault.ErrShipRecordCorrupt
	}
	return hull, nil
}

// Fetch - read a hull from a pool
//
// a missing record reads back as the zero hull
func Fetch(pool *storage.PoolHandle, s ship.Ship) (*Hull, error) {
	record := pool.Get(s.Bytes())
	if nil == record {
		return NewHull(), nil
	}
	return Packed(record).Unpack()
}

// Store - write a hull to a pool
func Store(pool *storage.PoolHandle, s ship.Ship, hull *Hull) {
	pool.Put(s.Bytes(), hull.Pack())
}

// append a fixed-length key
func appendKey(buffer []byte, key []byte) []byte {
	if KeyLength == len(key) {
		return append(buffer, key...)
	}
	// tolerate an unset slice
	return append(buffer, make([]byte, KeyLength)...)
}

// append a Varint64 encoded number
func appendUint64(buffer []byte, value uint64) []byte {
	return append(buffer, util.ToVarint64(value)...)
}

// append a varint length prefixed byte block
func appendBytes(buffer []byte, data []byte) []byte {
	buffer = append(buffer, util.ToVarint64(uint64(len(data)))...)
	return append(buffer, data...)
}

// split a fixed-length key into dest
func splitKey(record []byte, dest []byte) ([]byte, error) {
	if len(record) < KeyLength {
		return nil, fault.ErrShipRecordCorrupt
	}
	copy(dest, record[:KeyLength])
	return record[KeyLength:], nil
}

// split a Varint64 encoded number
func splitUint64(record []byte) (uint64, []byte, error) {
	value, count := util.FromVarint64(record)
	if 0 == count {
		return 0, nil, fault.ErrShipRecordCorrupt
	}
	return value, record[count:], nil
}

// split a fixed-length ship
func splitShip(record []byte) (ship.Ship, []byte, error) {
	if len(record) < ship.ByteSize {
		return 0, nil, fault.ErrShipRecordCorrupt
	}
	return ship.FromBytes(record[:ship.ByteSize]), record[ship.ByteSize:], nil
}

// split a varint length prefixed account
func splitAccount(record []byte) (*account.Account, []byte, error) {
	length, count := util.FromVarint64(record)
	if 0 == count {
		return nil, nil, fault.ErrShipRecordCorrupt
	}
	record = record[count:]
	if uint64(len(record)) < length {
		return nil, nil, fault.ErrShipRecordCorrupt
	}
	acc, err := account.AccountFromBytes(record[:length])
	if nil != err {
		return nil, nil, err
	}
	return acc, record[length:], nil
}
