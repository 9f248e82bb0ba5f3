// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Hullspace Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"
)

// basic defaults (directories and files are relative to the
// "data_directory" from the configuration file)
const (
	defaultLevelDBDirectory = "data"
	defaultDatabase         = "shipd.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "shipd.log"
	defaultLogCount     = 10          // number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// DatabaseType - location of the ledger database
type DatabaseType struct {
	Directory string `gluamapper:"directory"`
	Name      string `gluamapper:"name"`
}

// Configuration - the full configuration file contents
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory"`
	Admin         string               `gluamapper:"admin"` // base58 administrator account
	Database      DatabaseType         `gluamapper:"database"`
	Logging       logger.Configuration `gluamapper:"logging"`
}

// GetConfiguration - read, decode and normalise the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// directory of the configuration file is the default data directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: dataDirectory,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	// relative paths hang off the data directory
	options.Database.Directory = ensureAbsolute(options.DataDirectory, options.Database.Directory)
	options.Logging.Directory = ensureAbsolute(options.DataDirectory, options.Logging.Directory)

	return options, nil
}

// DatabasePath - full path to the LevelDB database
func (c *Configuration) DatabasePath() string {
	return filepath.Join(c.Database.Directory, c.Database.Name)
}

// prepend the base directory to a relative path
func ensureAbsolute(directory string, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(directory, path)
}
