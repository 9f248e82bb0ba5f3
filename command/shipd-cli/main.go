// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Hullspace Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/hullspace/shipd/account"
	"github.com/hullspace/shipd/authority"
	"github.com/hullspace/shipd/configuration"
	"github.com/hullspace/shipd/hull"
	"github.com/hullspace/shipd/ownership"
	"github.com/hullspace/shipd/reputation"
	"github.com/hullspace/shipd/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not need the configuration file
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := configuration.GetConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)

	// administrator account for privileged operations
	admin, err := account.AccountFromBase58(theConfiguration.Admin)
	if nil != err {
		exitwithstatus.Message("%s: invalid admin account: %q  error: %s", program, theConfiguration.Admin, err)
	}

	// open the ledger database
	log.Info("initialise storage")
	err = storage.Initialise(theConfiguration.DatabasePath(), storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	policy := authority.NewSingleAdmin(admin)

	err = ownership.Initialise(policy)
	if nil != err {
		log.Criticalf("ownership initialise error: %s", err)
		exitwithstatus.Message("ownership initialise error: %s", err)
	}
	defer ownership.Finalise()

	err = hull.Initialise(policy)
	if nil != err {
		log.Criticalf("hull initialise error: %s", err)
		exitwithstatus.Message("hull initialise error: %s", err)
	}
	defer hull.Finalise()

	err = reputation.Initialise()
	if nil != err {
		log.Criticalf("reputation initialise error: %s", err)
		exitwithstatus.Message("reputation initialise error: %s", err)
	}
	defer reputation.Finalise()

	// these commands read and/or change the ledger database
	if 0 == len(arguments) {
		arguments = []string{"help"}
	}
	processDataCommand(log, admin, arguments)
}
