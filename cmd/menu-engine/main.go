// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the menu-engine CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the menu-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "menu-engine",
	Short: "Match client questions against the galactic recipe catalog",
	Long: `menu-engine answers structured client questions ("which dishes use these
ingredients, come from planets near X, and are prepared by a chef holding
licence Y at level Z?") against a catalog of recipes and restaurants.

Questions, recipes and restaurants are read as JSON or YAML produced by the
extraction stage. Matching writes a row_id,result CSV and stores every run
in a local SQLite database so unchanged inputs are not evaluated twice.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./menu-engine.yaml or ~/.config/menu-engine/menu-engine.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("log-dev", false, "human-readable console logs")
	rootCmd.PersistentFlags().String("results-dir", "results", "directory for results.db and exports")

	bindFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	bindFlag("logging.development", rootCmd.PersistentFlags().Lookup("log-dev"))
	bindFlag("store.results_dir", rootCmd.PersistentFlags().Lookup("results-dir"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("menu-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "menu-engine"))
		}
	}

	viper.SetEnvPrefix("MENU_ENGINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
