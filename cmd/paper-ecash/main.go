// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paper-ecash CLI. It turns a file
// of ecash bearer tokens into a printable PDF of two-sided banknotes with
// per-note QR codes.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command; the generation run hangs directly off it so
// the surface stays `paper-ecash <notes.csv> [flags]`.
var rootCmd = &cobra.Command{
	Use:   "paper-ecash <csv_file>",
	Short: "Render ecash tokens as printable paper banknotes",
	Long: `paper-ecash reads bearer tokens from a file (one per line), encodes each
as a QR code, and lays the notes out on A4 sheets: front artwork with the QR
overlaid, plus a duplex-aligned back page, with dashed cutting guides.

Tokens are treated as opaque strings; acquiring them (and reclaiming unused
ones) is the job of your wallet, not this tool.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,

	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paper-ecash.yaml or ~/.config/paper-ecash/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paper-ecash")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paper-ecash"))
		}
	}

	viper.SetEnvPrefix("PAPER_ECASH")
	// Flag names use dashes; env vars cannot, so --qr-size maps to
	// PAPER_ECASH_QR_SIZE.
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
