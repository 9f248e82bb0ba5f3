// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Hullspace Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/hullspace/shipd/account"
	"github.com/hullspace/shipd/hull"
	"github.com/hullspace/shipd/ownership"
	"github.com/hullspace/shipd/reputation"
	"github.com/hullspace/shipd/ship"
	"github.com/hullspace/shipd/storage"
)

// setup command handler
//
// commands that do not need the configuration file or the database
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Printf("%s\n", version)

	case "pools", "hull", "owner", "owned", "spawned", "censures", "activate", "transfer", "dump":
		return false // defer processing until database is loaded

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] --config-file=FILE [command arguments...]\n\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                   (h) - display this message\n")
		fmt.Printf("  version                (v) - display version string\n")
		fmt.Printf("  pools                      - list the database pools and their key prefixes\n")
		fmt.Printf("  dump TAG COUNT             - dump raw records from the pool with prefix TAG\n")
		fmt.Printf("  hull SHIP                  - display the hull record of a ship as JSON\n")
		fmt.Printf("  owner SHIP                 - display the owner of a ship\n")
		fmt.Printf("  owned ACCOUNT              - list the ships owned by an account\n")
		fmt.Printf("  spawned SHIP               - list the active ships under a prefix\n")
		fmt.Printf("  censures SHIP              - list the censures made by a ship\n")
		fmt.Printf("  activate SHIP ACCOUNT      - activate a ship to an initial owner (administrator)\n")
		fmt.Printf("  transfer SHIP ACCOUNT      - transfer a ship to a new owner (administrator)\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the database pools are open so these commands can access
// and/or change the ledger
func processDataCommand(log *logger.L, admin *account.Account, arguments []string) {

	command := arguments[0]
	arguments = arguments[1:]

	switch command {

	case "pools":
		poolType := reflect.TypeOf(storage.Pool)
		for i := 0; i < poolType.NumField(); i += 1 {
			fieldInfo := poolType.Field(i)
			fmt.Printf("  %s → %s\n", fieldInfo.Tag.Get("prefix"), fieldInfo.Name)
		}

	case "dump":
		if len(arguments) < 2 {
			exitwithstatus.Message("usage: dump TAG COUNT")
		}
		dumpPool(arguments[0], arguments[1])

	case "hull":
		s := parseShip(arguments)
		h := hull.Get(s)
		b, err := json.MarshalIndent(h, "", "  ")
		if nil != err {
			exitwithstatus.Message("hull JSON error: %s", err)
		}
		fmt.Printf("%s\n", b)

	case "owner":
		s := parseShip(arguments)
		owner := ownership.GetOwner(s)
		if owner.IsZero() {
			fmt.Printf("%s: no owner\n", s)
		} else {
			fmt.Printf("%s: %s\n", s, owner)
		}

	case "owned":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing account argument")
		}
		owner, err := account.AccountFromBase58(arguments[0])
		if nil != err {
			exitwithstatus.Message("error in account: %s", err)
		}
		for _, s := range ownership.OwnedShips(owner) {
			fmt.Printf("%s\n", s)
		}

	case "spawned":
		s := parseShip(arguments)
		for _, spawned := range hull.GetSpawned(s) {
			fmt.Printf("%s\n", spawned)
		}

	case "censures":
		s := parseShip(arguments)
		for _, censured := range reputation.GetCensures(s) {
			fmt.Printf("%s\n", censured)
		}

	case "activate":
		s, owner := parseShipAndAccount(arguments)
		err := hull.SetActive(admin, s, owner)
		if nil != err {
			exitwithstatus.Message("activate error: %s", err)
		}
		log.Infof("activated: %s  owner: %s", s, owner)
		fmt.Printf("activated: %s\n", s)

	case "transfer":
		s, owner := parseShipAndAccount(arguments)
		err := ownership.SetOwner(admin, s, owner)
		if nil != err {
			exitwithstatus.Message("transfer error: %s", err)
		}
		log.Infof("transferred: %s  owner: %s", s, owner)
		fmt.Printf("transferred: %s\n", s)

	default:
		exitwithstatus.Message("error: no such command: %s", command)
	}
}

// dump the raw key/value pairs of one pool as hex
func dumpPool(tag string, countArgument string) {

	count, err := strconv.Atoi(countArgument)
	if nil != err {
		exitwithstatus.Message("error in count: %s", err)
	}

	// this will be a struct type
	poolType := reflect.TypeOf(storage.Pool)

	// read-only access
	poolValue := reflect.ValueOf(storage.Pool)

	// the handle
	p := (*storage.PoolHandle)(nil)
	// write access to p as a Value
	pvalue := reflect.ValueOf(&p).Elem()

	// scan each field to locate tag
	for i := 0; i < poolType.NumField(); i += 1 {
		fieldInfo := poolType.Field(i)
		if tag == fieldInfo.Tag.Get("prefix") {
			pvalue.Set(poolValue.Field(i))
		}
	}
	if nil == p {
		exitwithstatus.Message("no pool corresponding to: %q", tag)
	}

	cursor := p.NewFetchCursor()
	data, err := cursor.Fetch(count)
	if nil != err {
		exitwithstatus.Message("error on fetch: %s", err)
	}
	for i, e := range data {
		fmt.Printf("%d: Key: %x\n", i, e.Key)
		fmt.Printf("%d: Val: %x\n", i, e.Value)
	}
}

// first argument as a ship number
func parseShip(arguments []string) ship.Ship {
	if len(arguments) < 1 {
		exitwithstatus.Message("missing ship argument")
	}
	n, err := strconv.ParseUint(arguments[0], 10, 32)
	if nil != err {
		exitwithstatus.Message("error in ship number: %s", err)
	}
	return ship.Ship(n)
}

// first argument as a ship number, second as an account
func parseShipAndAccount(arguments []string) (ship.Ship, *account.Account) {
	s := parseShip(arguments)
	if len(arguments) < 2 {
		exitwithstatus.Message("missing account argument")
	}
	owner, err := account.AccountFromBase58(arguments[1])
	if nil != err {
		exitwithstatus.Message("error in account: %s", err)
	}
	return s, owner
}
