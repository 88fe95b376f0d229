package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/phonlab/ipa/internal/symtab"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize ipa configuration",
	Long: `Initialize ipa configuration files in your config directory.

This creates:
  - symbols.csv   (editable copy of the embedded symbol table)
  - config.yaml   (symbol table source and custom symbol overlays)

Pass --sqlite to also export the table as symbols.db for querying.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
	initCmd.Flags().Bool("sqlite", false, "also export the symbol table to symbols.db")
}

const configTemplate = `# ipa configuration
#
# table.source selects the symbol reference table:
#   embedded  built-in table (default)
#   csv       CSV file at table.path
#   sqlite    SQLite database at table.path
table:
  source: embedded

# Extra symbols are merged over the table, shadowing rows with the
# same grapheme. Example:
#
# extra_symbols:
#   - symbol: "ᵝ"
#     description: "Compressed"
#     name: "Modifier Letter Small Beta"
#     unicode: "U+1D5D"
#     type: Diacritic
#     role: diacritic_right
`

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	exportSQLite, _ := cmd.Flags().GetBool("sqlite")
	configDir := getConfigDir()

	if _, err := os.Stat(filepath.Join(configDir, "config.yaml")); err == nil && !force {
		return fmt.Errorf("configuration already exists in %s\nUse --force to overwrite", configDir)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	fmt.Printf("Initializing ipa configuration in %s\n\n", configDir)

	csvPath := filepath.Join(configDir, "symbols.csv")
	if err := os.WriteFile(csvPath, symtab.DefaultCSV(), 0644); err != nil {
		return fmt.Errorf("writing symbols.csv: %w", err)
	}
	fmt.Println("  Created symbols.csv")

	cfgPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config.yaml: %w", err)
	}
	fmt.Println("  Created config.yaml")

	if exportSQLite {
		table, err := symtab.Default()
		if err != nil {
			return err
		}
		dbPath := filepath.Join(configDir, "symbols.db")
		if err := symtab.SaveSQLite(dbPath, table); err != nil {
			return err
		}
		fmt.Println("  Created symbols.db")
	}

	fmt.Println()
	fmt.Println("Configuration initialized!")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Edit symbols.csv or config.yaml to customize the symbol table")
	fmt.Println("  2. Run 'ipa tokenize \"pʰæt\"' to segment a transcription")
	fmt.Println("  3. Run 'ipa' to launch the interactive inspector")

	return nil
}
