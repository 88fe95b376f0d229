package cmd

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/phonlab/ipa/internal/ipa"
	"github.com/phonlab/ipa/internal/tokenizer"
)

var segmentsCmd = &cobra.Command{
	Use:   "segments <transcription>",
	Short: "Extract the well-formed phonological segments of a transcription",
	Long: `Tokenize a transcription and print only its well-formed segments,
skipping boundaries, stress markers, and stray diacritics.

Example:
  ipa segments "pʰæt kʰaʧ"
  ipa segments --bases "pʰæt kʰaʧ"`,
	Args: cobra.ExactArgs(1),
	RunE: runSegments,
}

func init() {
	rootCmd.AddCommand(segmentsCmd)
	segmentsCmd.Flags().Bool("bases", false, "print only the diacritic-stripped base string")
}

func runSegments(cmd *cobra.Command, args []string) error {
	basesOnly, _ := cmd.Flags().GetBool("bases")

	table, err := loadTable()
	if err != nil {
		return err
	}

	tok := tokenizer.New(table)
	transcript, err := tok.Tokenize(args[0])
	if err != nil {
		return err
	}

	if basesOnly {
		fmt.Println(transcript.BasesString())
		return nil
	}

	i := 0
	for seg := range transcript.Segments() {
		i++
		fmt.Printf("  %2d  %s  base=%s%s%s\n",
			i,
			runewidth.FillRight(seg.String(), 8),
			seg.BaseString(),
			diacriticNote("left", seg.LeftDiacritics()),
			diacriticNote("right", seg.RightDiacritics()),
		)
	}
	if i == 0 {
		fmt.Println("No well-formed segments found.")
	}
	return nil
}

func diacriticNote(side string, diacritics []*ipa.PhoElement) string {
	if len(diacritics) == 0 {
		return ""
	}
	parts := make([]string, len(diacritics))
	for i, d := range diacritics {
		parts[i] = d.Display
	}
	return fmt.Sprintf("  %s=%s", side, strings.Join(parts, " "))
}
