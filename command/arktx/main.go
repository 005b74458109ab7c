// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/unimi-anticounterfeit/arktx/builder"
	"github.com/unimi-anticounterfeit/arktx/configuration"
	"github.com/unimi-anticounterfeit/arktx/transactionrecord"
	"github.com/unimi-anticounterfeit/arktx/util"
)

type metadata struct {
	config   *configuration.Configuration
	network  uint8
	registry *transactionrecord.Registry
	log      *logger.L
	verbose  bool
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// commands that build and sign, these need the configuration for logging
var signingCommands = map[string]struct{}{
	"manufacturer": {},
	"product":      {},
	"simple":       {},
	"business":     {},
}

// common flags of the signing commands
func transactionFlags(extra ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		cli.Uint64Flag{
			Name:  "nonce, n",
			Usage: "*sender nonce `NUMBER`",
		},
		cli.Uint64Flag{
			Name:  "fee, f",
			Usage: " fee in base units `NUMBER` [configured or variant default]",
		},
		cli.StringFlag{
			Name:  "vendor-field",
			Value: "",
			Usage: " vendor field `STRING` [configured value]",
		},
	}, extra...)
}

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "arktx"
	app.Usage = "build, sign and decode custom ledger transactions"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " Lua configuration `FILE` (required to sign)",
		},
		cli.StringFlag{
			Name:  "network",
			Value: "",
			Usage: " override the network `NAME` [mainnet|devnet|testnet]",
		},
		cli.StringFlag{
			Name:   "passphrase, p",
			Value:  "",
			Usage:  " sender `PASSPHRASE`",
			EnvVar: "ARKTX_PASSPHRASE",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "manufacturer",
			Usage:     "register a manufacturer",
			ArgsUsage: "\n   (* = required)",
			Flags: transactionFlags(
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*manufacturer ledger `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "prefix",
					Value: "",
					Usage: "*product id `PREFIX`",
				},
			),
			Action: runManufacturer,
		},
		{
			Name:      "product",
			Usage:     "register a product",
			ArgsUsage: "\n   (* = required)",
			Flags: transactionFlags(
				cli.StringFlag{
					Name:  "id",
					Value: "",
					Usage: "*product `ID`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: " product description `STRING`",
				},
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*manufacturer ledger `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "metadata, m",
					Value: "",
					Usage: " product metadata `STRING`",
				},
			),
			Action: runProduct,
		},
		{
			Name:      "simple",
			Usage:     "simple transaction carrying an id",
			ArgsUsage: "\n   (* = required)",
			Flags: transactionFlags(
				cli.StringFlag{
					Name:  "id",
					Value: "",
					Usage: "*data `ID`",
				},
			),
			Action: runSimple,
		},
		{
			Name:      "business",
			Usage:     "register a business",
			ArgsUsage: "\n   (* = required)",
			Flags: transactionFlags(
				cli.StringFlag{
					Name:  "name",
					Value: "",
					Usage: "*business `NAME`",
				},
				cli.StringFlag{
					Name:  "website, w",
					Value: "",
					Usage: "*business `WEBSITE`",
				},
			),
			Action: runBusiness,
		},
		{
			Name:      "decode",
			Usage:     "decode a packed transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "packed, x",
					Value: "",
					Usage: "*packed transaction `HEX`",
				},
				cli.BoolFlag{
					Name:  "verify",
					Usage: " also check the signature",
				},
			},
			Action: runDecode,
		},
		{
			Name:   "types",
			Usage:  "list the registered transaction types",
			Action: runTypes,
		},
		{
			Name:   "address",
			Usage:  "show public key and address for the passphrase",
			Action: runAddress,
		},
		{
			Name:  "version",
			Usage: "display arktx version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command || "" == command || "help" == command {
			return nil
		}

		m := &metadata{
			network: transactionrecord.TestnetNetwork,
			verbose: verbose,
			e:       e,
			w:       w,
		}

		file := c.GlobalString("config")
		if "" != file {
			if !util.EnsureFileExists(file) {
				return fmt.Errorf("configuration file: %q does not exist", file)
			}
			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", file)
			}
			config, err := configuration.GetConfiguration(file)
			if nil != err {
				return err
			}
			m.config = config
			m.network = config.NetworkVersion()

			if err := logger.Initialise(config.Logging); nil != err {
				return err
			}
			m.log = logger.New("main")
			m.log.Infof("arktx: version: %s  network: %s", version, config.Network)

		} else if _, ok := signingCommands[command]; ok {
			return fmt.Errorf("command: %q requires a configuration file", command)
		}

		if n := c.GlobalString("network"); "" != n {
			network, err := networkVersion(n)
			if nil != err {
				return err
			}
			m.network = network
		}

		registry, err := transactionrecord.Standard()
		if nil != err {
			return err
		}
		m.registry = registry

		c.App.Metadata["config"] = m
		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if ok && nil != m.log {
			m.log.Info("finished")
			logger.Finalise()
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}

func networkVersion(name string) (uint8, error) {
	switch strings.ToLower(name) {
	case "mainnet":
		return transactionrecord.MainnetNetwork, nil
	case "devnet":
		return transactionrecord.DevnetNetwork, nil
	case "testnet":
		return transactionrecord.TestnetNetwork, nil
	default:
		return 0, fmt.Errorf("network: %q can only be mainnet/devnet/testnet", name)
	}
}

// factory for the signing commands
func (m *metadata) factory() *builder.Factory {
	return builder.New(logger.New("builder"), m.registry, m.network)
}
