// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Hullspace Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - setup and teardown helpers shared by tests
package fixtures

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/hullspace/shipd/account"
	"github.com/hullspace/shipd/storage"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// deterministic test identities
var (
	AccountOne   *account.Account
	AccountTwo   *account.Account
	AccountThree *account.Account
	Admin        *account.Account
)

func init() {
	AccountOne = testAccount(0x01)
	AccountTwo = testAccount(0x02)
	AccountThree = testAccount(0x03)
	Admin = testAccount(0xaa)
}

// a fake but well-formed ed25519 public key
func testAccount(fill byte) *account.Account {
	publicKey := make([]byte, 32)
	for i := 0; i < len(publicKey); i += 1 {
		publicKey[i] = fill
	}
	return &account.Account{PublicKey: publicKey}
}

// SetupTestLogger - direct logging output to a scratch directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - flush logs and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

// SetupTestStorage - open a scratch database
//
// requires SetupTestLogger to have been called first
func SetupTestStorage() {
	_ = os.Mkdir(dir, 0700)
	database := filepath.Join(dir, "test-index.leveldb")
	_ = os.RemoveAll(database)
	err := storage.Initialise(database, storage.ReadWrite)
	if nil != err {
		panic(fmt.Sprintf("storage initialise error: %s", err))
	}
}

// TeardownTestStorage - close and erase the scratch database
func TeardownTestStorage() {
	storage.Finalise()
	_ = os.RemoveAll(filepath.Join(dir, "test-index.leveldb"))
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
