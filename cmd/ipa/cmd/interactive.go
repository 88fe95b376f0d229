package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/phonlab/ipa/internal/tokenizer"
	"github.com/phonlab/ipa/internal/tui"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i", "ui"},
	Short:   "Launch the interactive transcription inspector",
	Long: `Launch an interactive terminal UI for exploring IPA transcriptions.

Features:
  - Type any transcription to see its live segmentation
  - Step through entries to inspect components and features
  - Enlarged glyph rendering for small combining diacritics

Controls:
  ←/→     Select entry
  Esc     Quit`,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	table, err := loadTable()
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		tui.New(tokenizer.New(table)),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
