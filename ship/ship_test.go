// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Hullspace Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ship_test

import (
	"testing"

	"github.com/hullspace/shipd/ship"
)

func TestClass(t *testing.T) {
	classTests := []struct {
		ship     ship.Ship
		expected ship.Class
	}{
		{0, ship.Galaxy},
		{1, ship.Galaxy},
		{255, ship.Galaxy},
		{256, ship.Star},
		{511, ship.Star},
		{65535, ship.Star},
		{65536, ship.Planet},
		{65792, ship.Planet},
		{0xffffffff, ship.Planet},
	}

	for i, item := range classTests {
		actual := item.ship.Class()
		if item.expected != actual {
			t.Errorf("%d: class of: %d  actual: %s  expected: %s", i, item.ship, actual, item.expected)
		}
	}
}

func TestPrefix(t *testing.T) {
	prefixTests := []struct {
		ship     ship.Ship
		expected ship.Ship
	}{
		{0, 0},
		{255, 255},
		{256, 0},
		{511, 255},
		{65535, 255},
		{65536, 0},
		{65792, 256},
		{0xffffffff, 65535},
	}

	for i, item := range prefixTests {
		actual := item.ship.Prefix()
		if item.expected != actual {
			t.Errorf("%d: prefix of: %d  actual: %d  expected: %d", i, item.ship, actual, item.expected)
		}
	}
}

func TestBytesRoundTrip(t *testing.T) {
	for _, s := range []ship.Ship{0, 255, 256, 65535, 65536, 0xdeadbeef, 0xffffffff} {
		buffer := s.Bytes()
		if ship.ByteSize != len(buffer) {
			t.Fatalf("packed length: %d  expected: %d", len(buffer), ship.ByteSize)
		}
		actual := ship.FromBytes(buffer)
		if s != actual {
			t.Errorf("round trip: %d  actual: %d", s, actual)
		}
	}
}

func TestClassNames(t *testing.T) {
	if "galaxy" != ship.Galaxy.String() || "star" != ship.Star.String() || "planet" != ship.Planet.String() {
		t.Errorf("unexpected class names: %s %s %s", ship.Galaxy, ship.Star, ship.Planet)
	}
}
