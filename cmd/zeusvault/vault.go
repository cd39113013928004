// Copyright (c) 2024 - for information on the respective copyright owner
// see the NOTICE file and/or the repository at
// https://github.com/zeus-wallet/zeus-go
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	zeus "github.com/zeus-wallet/zeus-go"
	"github.com/zeus-wallet/zeus-go/currency"
	"github.com/zeus-wallet/zeus-go/log"
	"github.com/zeus-wallet/zeus-go/profile"
)

const (
	// flag names shared by the vault commands.
	configfileF  = "configfile"
	vaultfileF   = "vaultfile"
	loglevelF    = "loglevel"
	logfileF     = "logfile"
	memorycostF  = "memorycost"
	timecostF    = "timecost"
	parallelismF = "parallelism"

	// flag names of the balance command.
	chainidF = "chainid"
	blockF   = "block"

	// default values for flags.
	defaultConfigFile = "zeus.yaml"
	defaultLogLevel   = "info"
)

var (
	// vault level viper instance for parsing configuration from flags and
	// the configuration file.
	vaultViper *viper.Viper

	// flags are binded with the viper instance to override values from the
	// config file.
	flagsToBind = []string{
		vaultfileF,
		loglevelF,
		logfileF,
		memorycostF,
		timecostF,
		parallelismF,
	}
)

func init() {
	vaultViper = viper.New()

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(newWalletCmd)
	rootCmd.AddCommand(importWalletCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(balanceCmd)

	balanceCmd.Flags().Uint64(chainidF, 1, "chain ID the balance was observed on")
	balanceCmd.Flags().Uint64(blockF, 0, "block number at which the balance was observed")

	pf := rootCmd.PersistentFlags()
	pf.String(configfileF, defaultConfigFile, "vault config file")
	pf.String(vaultfileF, profile.FileName, "path of the encrypted vault file")
	pf.String(loglevelF, defaultLogLevel, "Log level. Supported levels: debug, info, error")
	pf.String(logfileF, "", "Log file path. Use empty string for stderr")
	pf.Uint32(memorycostF, zeus.DefaultMemoryCost, "Argon2 memory cost for new saves")
	pf.Uint32(timecostF, zeus.DefaultTimeCost, "Argon2 time cost for new saves")
	pf.Uint32(parallelismF, zeus.DefaultParallelism, "Argon2 parallelism for new saves")

	// Bind the configuration flags to the viper instance used to override
	// the values defined in the config file.
	for i := range flagsToBind {
		_ = vaultViper.BindPFlag(flagsToBind[i], pf.Lookup(flagsToBind[i]))
	}
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new empty vault file",
	Run: func(cmd *cobra.Command, args []string) {
		p, logger := setupProfile(true)
		if _, err := os.Stat(p.Path()); err == nil {
			logger.Errorf("Vault file already exists at %s", p.Path())
			os.Exit(1)
		}
		if err := p.EncryptAndSave(); err != nil {
			logger.WithError(err).Error("Creating vault")
			os.Exit(1)
		}
		logger.WithField("file", p.Path()).Info("Created vault")
	},
}

var newWalletCmd = &cobra.Command{
	Use:   "new-wallet [name]",
	Short: "Generate a wallet with a fresh random key and add it to the vault",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p, logger := unlockProfile()
		w, err := p.NewWallet(nameArg(args))
		if err != nil {
			logger.WithError(err).Error("Adding wallet")
			os.Exit(1)
		}
		if err := p.EncryptAndSave(); err != nil {
			logger.WithError(err).Error("Saving vault")
			os.Exit(1)
		}
		fmt.Printf("Added wallet %s (%s)\n", w.Name, w.Address().Hex())
	},
}

var importWalletCmd = &cobra.Command{
	Use:   "import-wallet [name]",
	Short: "Import a wallet from a hex private key and add it to the vault",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p, logger := unlockProfile()
		keyHex, err := readSecret("Private key (hex): ")
		if err != nil {
			logger.WithError(err).Error("Reading private key")
			os.Exit(1)
		}
		w, err := p.ImportWallet(nameArg(args), keyHex)
		if err != nil {
			logger.WithError(err).Error("Importing wallet")
			os.Exit(1)
		}
		if err := p.EncryptAndSave(); err != nil {
			logger.WithError(err).Error("Saving vault")
			os.Exit(1)
		}
		fmt.Printf("Imported wallet %s (%s)\n", w.Name, w.Address().Hex())
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the wallets in the vault with their cached balances",
	Run: func(cmd *cobra.Command, args []string) {
		p, _ := unlockProfile()
		printer := currency.NewParser(currency.ETH)
		for _, w := range p.Wallets() {
			fmt.Printf("%s\t%s\n", w.Name, w.Address().Hex())
			for chainID, b := range w.Balances {
				fmt.Printf("\tchain %d: %s %s at block %d\n",
					chainID, printer.Print(b.Amount), currency.ETH, b.Block)
			}
		}
	},
}

var exportCmd = &cobra.Command{
	Use:   "export name",
	Short: "Export the private key of the named wallet",
	Long: `
Export the hex-encoded private key of the named wallet. The credentials are
re-validated against the vault file itself, not against any cached state.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p, logger := setupProfile(false)
		keyHex, err := p.ExportWallet(args[0], p.Credentials)
		if err != nil {
			logger.WithError(err).Error("Exporting wallet")
			os.Exit(1)
		}
		fmt.Println(keyHex)
	},
}

var balanceCmd = &cobra.Command{
	Use:   "balance name amount",
	Short: "Record an observed balance for the named wallet",
	Long: `
Record the balance observed for the named wallet, in ETH, together with the
chain and the block it was observed at. The vault never queries a chain
itself; this caches what an external observer reported.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		p, logger := unlockProfile()
		amount, err := currency.NewParser(currency.ETH).Parse(args[1])
		if err != nil {
			logger.WithError(err).Error("Parsing amount")
			os.Exit(1)
		}
		chainID, err := cmd.Flags().GetUint64(chainidF)
		if err != nil {
			logger.WithError(err).Error("Reading chain ID flag")
			os.Exit(1)
		}
		block, err := cmd.Flags().GetUint64(blockF)
		if err != nil {
			logger.WithError(err).Error("Reading block flag")
			os.Exit(1)
		}
		if err := p.UpdateBalance(args[0], chainID, amount, block); err != nil {
			logger.WithError(err).Error("Updating balance")
			os.Exit(1)
		}
		if err := p.EncryptAndSave(); err != nil {
			logger.WithError(err).Error("Saving vault")
			os.Exit(1)
		}
		fmt.Printf("Recorded balance for %s on chain %d at block %d\n", args[0], chainID, block)
	},
}

// setupProfile reads the configuration, prompts for credentials and returns
// a profile bound to the configured vault file. It does not touch the file.
func setupProfile(confirmPassword bool) (*profile.Profile, *log.Logger) {
	parseConfigFile()

	logger, err := log.NewLogger(vaultViper.GetString(loglevelF), vaultViper.GetString(logfileF))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	creds, err := readCredentials(confirmPassword)
	if err != nil {
		logger.WithError(err).Error("Reading credentials")
		os.Exit(1)
	}

	p := profile.New(vaultViper.GetString(vaultfileF), creds)
	p.Params = zeus.CipherParams{
		MemoryCost:   vaultViper.GetUint32(memorycostF),
		TimeCost:     vaultViper.GetUint32(timecostF),
		Parallelism:  vaultViper.GetUint32(parallelismF),
		OutputLength: zeus.DefaultOutputLength,
	}
	return p, logger
}

// unlockProfile additionally decrypts and loads the vault file. The password
// hash step is slow on purpose; commands block on it.
func unlockProfile() (*profile.Profile, *log.Logger) {
	p, logger := setupProfile(false)
	if err := p.DecryptAndLoad(); err != nil {
		logger.WithError(err).Error("Unlocking vault")
		os.Exit(1)
	}
	return p, logger
}

func parseConfigFile() {
	configFile := defaultConfigFile
	if f := rootCmd.PersistentFlags().Lookup(configfileF); f != nil && f.Value.String() != "" {
		configFile = f.Value.String()
	}
	vaultViper.SetConfigFile(configFile)
	// A missing config file is fine, flags and defaults apply. A config
	// file that exists but cannot be parsed is not.
	if err := vaultViper.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(configFile); statErr == nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

func nameArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
