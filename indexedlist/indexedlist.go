// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Hullspace Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package indexedlist

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"

	"github.com/hullspace/shipd/fault"
	"github.com/hullspace/shipd/ship"
	"github.com/hullspace/shipd/storage"
)

// List - an indexed list pattern over three storage pools
type List struct {
	list  *storage.PoolHandle
	index *storage.PoolHandle
	count *storage.PoolHandle
}

// New - bind a list to its three pools
func New(list, index, count *storage.PoolHandle) *List {
	return &List{
		list:  list,
		index: index,
		count: count,
	}
}

// key ⧺ big endian position
func listKey(key []byte, position uint64) []byte {
	buffer := make([]byte, 0, len(key)+8)
	buffer = append(buffer, key...)
	position8 := make([]byte, 8)
	binary.BigEndian.PutUint64(position8, position)
	return append(buffer, position8...)
}

// key ⧺ member
func indexKey(key []byte, member ship.Ship) []byte {
	buffer := make([]byte, 0, len(key)+ship.ByteSize)
	buffer = append(buffer, key...)
	return append(buffer, member.Bytes()...)
}

// Count - current number of members
func (l *List) Count(key []byte) uint64 {
	n, _ := l.count.GetN(key)
	return n
}

// Contains - check membership
func (l *List) Contains(key []byte, member ship.Ship) bool {
	return l.index.Has(indexKey(key, member))
}

// Add - append a member
//
// fails if the member is already present
func (l *List) Add(key []byte, member ship.Ship) error {
	ik := indexKey(key, member)
	if l.index.Has(ik) {
		return fault.ErrListEntryExists
	}

	n := l.Count(key)
	l.list.Put(listKey(key, n), member.Bytes())
	l.index.PutN(ik, n)
	l.count.PutN(key, n+1)
	return nil
}

// Remove - remove a member by value
//
// the last member is copied into the vacated slot and the list is
// truncated, so ordering is not preserved
func (l *List) Remove(key []byte, member ship.Ship) error {
	ik := indexKey(key, member)
	position, found := l.index.GetN(ik)
	if !found {
		return fault.ErrListEntryNotFound
	}

	n := l.Count(key)
	if 0 == n {
		logger.Panicf("indexedlist.Remove: index entry with empty list: %x", key)
	}
	last := n - 1

	if position != last {
		moved := l.list.Get(listKey(key, last))
		if ship.ByteSize != len(moved) {
			logger.Panicf("indexedlist.Remove: corrupt member record: %x", moved)
		}
		l.list.Put(listKey(key, position), moved)
		l.index.PutN(indexKey(key, ship.FromBytes(moved)), position)
	}

	l.list.Delete(listKey(key, last))
	l.index.Delete(ik)
	if 0 == last {
		l.count.Delete(key)
	} else {
		l.count.PutN(key, last)
	}
	return nil
}

// At - member at a position
//
// fails if the position is out of range
func (l *List) At(key []byte, position uint64) (ship.Ship, error) {
	if position >= l.Count(key) {
		return 0, fault.ErrIndexOutOfRange
	}
	member := l.list.Get(listKey(key, position))
	if ship.ByteSize != len(member) {
		logger.Panicf("indexedlist.At: corrupt member record: %x", member)
	}
	return ship.FromBytes(member), nil
}

// All - snapshot of the whole list
func (l *List) All(key []byte) []ship.Ship {
	n := l.Count(key)
	members := make([]ship.Ship, n)
	for i := uint64(0); i < n; i += 1 {
		member := l.list.Get(listKey(key, i))
		if ship.ByteSize != len(member) {
			logger.Panicf("indexedlist.All: corrupt member record: %x", member)
		}
		members[i] = ship.FromBytes(member)
	}
	return members
}
