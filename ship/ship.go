// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Hullspace Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ship

import (
	"encoding/binary"
	"strconv"
)

// Ship - one identifier in the address hierarchy
type Ship uint32

// numeric boundaries of the classes
const (
	galaxyLimit = 0x100   // first non-galaxy ship
	starLimit   = 0x10000 // first planet
)

// ByteSize - number of bytes in the packed form of a ship
const ByteSize = 4

// Class - the tier of a ship
type Class int

// all possible classes, in rank order: lower value means higher rank
const (
	Galaxy Class = iota
	Star
	Planet
)

// Class - derive the class from the numeric value
func (ship Ship) Class() Class {
	switch {
	case ship < galaxyLimit:
		return Galaxy
	case ship < starLimit:
		return Star
	default:
		return Planet
	}
}

// Prefix - derive the structural parent
//
// galaxies are their own prefix
func (ship Ship) Prefix() Ship {
	if ship < starLimit {
		return ship % galaxyLimit
	}
	return ship % starLimit
}

// Bytes - pack as big endian for use as a storage key
func (ship Ship) Bytes() []byte {
	buffer := make([]byte, ByteSize)
	binary.BigEndian.PutUint32(buffer, uint32(ship))
	return buffer
}

// FromBytes - unpack a big endian storage key
func FromBytes(buffer []byte) Ship {
	return Ship(binary.BigEndian.Uint32(buffer))
}

// String - decimal representation
func (ship Ship) String() string {
	return strconv.FormatUint(uint64(ship), 10)
}

// convert a class to its string name
func (class Class) String() string {
	switch class {
	case Galaxy:
		return "galaxy"
	case Star:
		return "star"
	case Planet:
		return "planet"
	default:
		return "unknown"
	}
}

// MarshalText - convert class to text
func (class Class) MarshalText() ([]byte, error) {
	return []byte(class.String()), nil
}
