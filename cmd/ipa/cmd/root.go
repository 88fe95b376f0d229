// Package cmd contains all CLI commands for the ipa tool.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/phonlab/ipa/internal/config"
	"github.com/phonlab/ipa/internal/symtab"
)

var cfgDir string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ipa",
	Short: "Tokenize IPA phonetic transcriptions into segments",
	Long: `ipa segments phonetic transcription strings into linguistically
meaningful units: phonetic segments (a base glyph plus its attached
diacritics), boundary markers, and stress markers.

Each character is resolved against a symbol reference table describing
its role (base, left/right diacritic, ligature, boundary, stress) and
phonetic type, then grouped into segments by a single-pass scanner.

Running 'ipa' without arguments launches the interactive inspector.`,
	RunE: runInteractive,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", "", "config directory (default is $HOME/.config/ipa)")
	rootCmd.PersistentFlags().String("table", "", "symbol table file (.csv or .db), overriding the configured source")

	viper.BindPFlag("table", rootCmd.PersistentFlags().Lookup("table"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgDir != "" {
		viper.Set("config_dir", cfgDir)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", dir)
	}

	viper.SetEnvPrefix("IPA")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadUserConfig reads config.yaml from the config directory, falling
// back to the defaults when it does not exist.
func loadUserConfig() (*config.Config, error) {
	path := filepath.Join(getConfigDir(), "config.yaml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.DefaultConfig(), nil
	}
	return config.Load(path)
}

// loadTable resolves the symbol table: the --table flag (or IPA_TABLE)
// wins, then the configured source, then the embedded default.
func loadTable() (*symtab.Table, error) {
	if path := viper.GetString("table"); path != "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".db", ".sqlite", ".sqlite3":
			return symtab.LoadSQLite(path)
		default:
			return symtab.LoadCSV(path)
		}
	}

	cfg, err := loadUserConfig()
	if err != nil {
		return nil, err
	}
	return cfg.LoadTable()
}
