// Package cli provides command-line interface for cipherlist
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cipherlist/cipherlist/internal/config"
)

var cfgFile string
var cfg *config.Config

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cipherlist",
	Short: "Resolve and cross-reference OpenSSL cipher-list expressions",
	Long: `Cipherlist resolves OpenSSL cipher-list expressions against an embedded
cipher-suite catalog and cross-references the results with JSSE provider
implementations.

Examples:
  # Resolve an expression into an ordered suite list
  cipherlist resolve 'HIGH:!aNULL:@STRENGTH'

  # Cross-reference the DEFAULT list against every provider
  cipherlist crossref DEFAULT

  # Dump the full catalog
  cipherlist list

  # Check the embedded data for defects
  cipherlist verify

  # Launch the interactive catalog browser
  cipherlist tui`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Add subcommands
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(crossrefCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(tuiCmd)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/cipherlist/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringP("format", "F", "", "output format (table, json, yaml)")

	// Bind flags to viper
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("format"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFromFile(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		// Use defaults if config load fails
		cfg = config.DefaultConfig()
	}

	// Override with viper values
	if viper.IsSet("log_level") {
		cfg.Logging.Level = viper.GetString("log_level")
	}
	if viper.GetBool("verbose") {
		cfg.Logging.Level = "debug"
	}
	if viper.IsSet("output.format") && viper.GetString("output.format") != "" {
		cfg.Output.DefaultFormat = viper.GetString("output.format")
	}
}

// GetConfig returns the loaded configuration
func GetConfig() *config.Config {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return cfg
}
