package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phonlab/ipa/internal/glyphart"
	"github.com/phonlab/ipa/internal/ipa"
	"github.com/phonlab/ipa/internal/tokenizer"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <string>",
	Short: "Classify each character against the symbol table",
	Long: `Classify each character of the input and display its:
  - Resolved symbol, name, and codepoint
  - Role (base, left/right diacritic, ligature, boundary, stress)
  - Phonetic type and classification variant
  - Articulatory features (consonants and vowels)

Example:
  ipa classify pʰ
  ipa classify --art ə̃`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().Bool("art", false, "render each glyph as large block art")
}

func runClassify(cmd *cobra.Command, args []string) error {
	art, _ := cmd.Flags().GetBool("art")

	table, err := loadTable()
	if err != nil {
		return err
	}
	tok := tokenizer.New(table)

	for _, r := range args[0] {
		el, err := tok.Classify(r)
		if err != nil {
			var unknown *ipa.UnknownSymbolError
			if errors.As(err, &unknown) {
				fmt.Printf("Character: %s\n", string(r))
				fmt.Printf("  Not in symbol table\n\n")
				continue
			}
			return err
		}

		fmt.Printf("Character: %s\n", el.Display)
		if rec := el.Record; rec != nil {
			fmt.Printf("  Name:        %s (%s)\n", rec.Name, rec.Unicode)
			fmt.Printf("  Description: %s\n", rec.Description)
		} else {
			fmt.Printf("  Description: Word boundary\n")
		}
		fmt.Printf("  Type:        %s\n", el.Type)
		fmt.Printf("  Role:        %s\n", el.Role)
		fmt.Printf("  Variant:     %s\n", el.Kind)
		printFeatures(el)
		if art {
			if block := glyphart.RenderBlock(el.Display, 24, 12); block != "" {
				fmt.Println()
				fmt.Println(block)
			}
		}
		fmt.Println()
	}
	return nil
}

func printFeatures(el *ipa.PhoElement) {
	if el.Record == nil {
		return
	}
	switch el.Kind {
	case ipa.KindConsonant:
		f := el.Record.Consonant
		fmt.Printf("  Voice:       %s\n", f.Voice)
		fmt.Printf("  Place:       %s\n", f.Place)
		fmt.Printf("  Manner:      %s\n", f.Manner)
		fmt.Printf("  Sonority:    %d\n", f.Sonority)
	case ipa.KindVowel:
		f := el.Record.Vowel
		fmt.Printf("  Backness:    %s\n", f.Backness)
		fmt.Printf("  Height:      %s\n", f.Height)
		fmt.Printf("  Rounding:    %s\n", f.Rounding)
	}
}
