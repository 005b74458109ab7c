// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"

	"github.com/unimi-anticounterfeit/arktx/fault"
	"github.com/unimi-anticounterfeit/arktx/transactionrecord"
	"github.com/unimi-anticounterfeit/arktx/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the configuration file
	defaultNetwork       = "testnet"

	defaultLogDirectory = "log"
	defaultLogFile      = "arktx.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	maxVendorFieldLength = 255
)

// address version byte of each network
var networks = map[string]uint8{
	"mainnet": transactionrecord.MainnetNetwork,
	"devnet":  transactionrecord.DevnetNetwork,
	"testnet": transactionrecord.TestnetNetwork,
}

// FeeType - fee overrides as decimal strings, blank for the default
type FeeType struct {
	RegisterManufacturer string `gluamapper:"register_manufacturer" json:"register_manufacturer"`
	RegisterProduct      string `gluamapper:"register_product" json:"register_product"`
	SimpleTransaction    string `gluamapper:"simple_transaction" json:"simple_transaction"`
	BusinessRegistration string `gluamapper:"business_registration" json:"business_registration"`
}

type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Network       string               `gluamapper:"network" json:"network"`
	VendorField   string               `gluamapper:"vendor_field" json:"vendor_field"`
	Fees          FeeType              `gluamapper:"fees" json:"fees"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`

	// derived from the above
	networkVersion uint8
	feeOverrides   map[transactionrecord.Key]uint64
}

// GetConfiguration - read, decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Network:       defaultNetwork,

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

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	options.Network = strings.ToLower(options.Network)
	version, ok := networks[options.Network]
	if !ok {
		return nil, errors.Errorf("Network: %q is not supported", options.Network)
	}
	options.networkVersion = version

	if len(options.VendorField) > maxVendorFieldLength {
		return nil, errors.Wrapf(fault.ErrVendorFieldTooLong, "vendor_field: %d bytes", len(options.VendorField))
	}

	options.feeOverrides = make(map[transactionrecord.Key]uint64)
	for _, f := range []struct {
		name  string
		key   transactionrecord.Key
		value string
	}{
		{"register_manufacturer", transactionrecord.RegisterManufacturerKey, options.Fees.RegisterManufacturer},
		{"register_product", transactionrecord.RegisterProductKey, options.Fees.RegisterProduct},
		{"simple_transaction", transactionrecord.SimpleTransactionKey, options.Fees.SimpleTransaction},
		{"business_registration", transactionrecord.BusinessRegistrationKey, options.Fees.BusinessRegistration},
	} {
		if "" == f.value {
			continue
		}
		fee, err := strconv.ParseUint(f.value, 10, 64)
		if nil != err || 0 == fee {
			return nil, errors.Errorf("Fee: %s: %q is not a positive integer", f.name, f.value)
		}
		options.feeOverrides[f.key] = fee
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, errors.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, errors.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// log file must be a plain name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, errors.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	options.Logging.Directory = util.EnsureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// NetworkVersion - address version byte of the configured network
func (c *Configuration) NetworkVersion() uint8 {
	return c.networkVersion
}

// Fee - configured fee override for a variant
func (c *Configuration) Fee(key transactionrecord.Key) (uint64, bool) {
	fee, ok := c.feeOverrides[key]
	return fee, ok
}
