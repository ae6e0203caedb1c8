// Copyright Fadilla Wahyudi, 2026. All rights reserved.

// Package main is the entry point for the dayone2html CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the dayone2html CLI.
var rootCmd = &cobra.Command{
	Use:   "dayone2html",
	Short: "Convert a Day One JSON export into a single HTML page",
	Long: `dayone2html converts the JSON export of the Day One journaling app into
one self-contained HTML document: every entry in order, a linked table
of contents, localized timestamps, weather and location lines, and the
photos, videos, and audio clips found in the exported media directories.

The conversion runs entirely locally and touches nothing but the export,
the media directories, and the output file.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./dayone2html.yaml, then ~/.config/dayone2html/)")
}

// initConfig wires the configuration sources: an optional .env file, an
// optional YAML config, and DAYONE2HTML_* environment variables.
func initConfig() {
	godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("dayone2html")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "dayone2html"))
		}
	}

	viper.SetEnvPrefix("DAYONE2HTML")
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
