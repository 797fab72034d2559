// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
)

// basic defaults (directories and files are relative to the config file)
const (
	defaultLogDirectory = "log"
	defaultLogFile      = "avldemo.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// the literal sequences used when no configuration file is given
var (
	defaultInsert   = []int{21, 34, 14, 11, 15, 16, 22, 23, 35, 24, 25, 1000, 1001}
	defaultRemove   = []int{23, 35, 34, 1000}
	defaultContains = []int{1, 11}
)

// Configuration - items to process and the logging setup
type Configuration struct {
	Insert   []int                `gluamapper:"insert" json:"insert"`
	Remove   []int                `gluamapper:"remove" json:"remove"`
	Contains []int                `gluamapper:"contains" json:"contains"`
	Logging  logger.Configuration `gluamapper:"logging" json:"logging"`
}

// the configuration used when there is no file
func defaultConfiguration() *Configuration {
	return &Configuration{
		Insert:   defaultInsert,
		Remove:   defaultRemove,
		Contains: defaultContains,
		Logging: logger.Configuration{
			Directory: ".",
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	// only the file decides which items are processed
	options := defaultConfiguration()
	options.Insert = nil
	options.Remove = nil
	options.Contains = nil
	options.Logging.Directory = defaultLogDirectory

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// ensure absolute log directory
	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(dataDirectory, options.Logging.Directory)
	}
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	return options, nil
}
