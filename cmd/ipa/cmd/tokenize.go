package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/phonlab/ipa/internal/ipa"
	"github.com/phonlab/ipa/internal/tokenizer"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <transcription>",
	Short: "Tokenize a transcription into segments, boundaries, and stress marks",
	Long: `Tokenize an IPA transcription string and print one line per entry.

Enclosing brackets and slashes are stripped, runs of whitespace become a
single word boundary, and each remaining character is resolved against
the symbol table.

Example:
  ipa tokenize "pʰæt kʰaʧ suto"
  ipa tokenize --json "ˈtoʊkən"`,
	Args: cobra.ExactArgs(1),
	RunE: runTokenize,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
	tokenizeCmd.Flags().Bool("json", false, "print entries as JSON")
}

// jsonElement is the machine-readable form of one element.
type jsonElement struct {
	Char    string `json:"char"`
	Symbol  string `json:"symbol"`
	Display string `json:"display"`
	Role    string `json:"role"`
	Type    string `json:"type"`
	Kind    string `json:"kind"`
}

func runTokenize(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	table, err := loadTable()
	if err != nil {
		return err
	}

	tok := tokenizer.New(table)
	transcript, err := tok.Tokenize(args[0])
	if err != nil {
		return err
	}

	if asJSON {
		return printTranscriptJSON(cmd, transcript)
	}

	fmt.Printf("Input:   %s\n", args[0])
	fmt.Printf("Entries: %d\n\n", len(transcript))
	for i, entry := range transcript {
		fmt.Printf("  %2d  %-10s  %s  %s\n",
			i+1, entryLabel(entry), runewidth.FillRight(entryString(entry), 8), entryDetail(entry))
	}
	return nil
}

func printTranscriptJSON(cmd *cobra.Command, transcript ipa.Transcript) error {
	out := make([][]jsonElement, len(transcript))
	for i, entry := range transcript {
		out[i] = make([]jsonElement, len(entry))
		for j, el := range entry {
			out[i][j] = jsonElement{
				Char:    string(el.Char),
				Symbol:  el.Symbol,
				Display: el.Display,
				Role:    string(el.Role),
				Type:    string(el.Type),
				Kind:    el.Kind.String(),
			}
		}
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// entryLabel names the entry: a word boundary, a boundary or stress
// marker, a well-formed segment, or an incomplete fragment.
func entryLabel(entry []*ipa.PhoElement) string {
	if len(entry) == 1 {
		switch entry[0].Role {
		case ipa.RoleBoundary:
			return "boundary"
		case ipa.RoleStress:
			return "stress"
		}
	}
	if _, err := ipa.NewSegment(entry); err != nil {
		return "incomplete"
	}
	return "segment"
}

func entryString(entry []*ipa.PhoElement) string {
	var sb strings.Builder
	for _, el := range entry {
		sb.WriteString(el.Symbol)
	}
	if sb.Len() == 0 {
		return "∅"
	}
	return sb.String()
}

func entryDetail(entry []*ipa.PhoElement) string {
	parts := make([]string, len(entry))
	for i, el := range entry {
		if el.Char == ' ' {
			parts[i] = "␣ (word boundary)"
			continue
		}
		parts[i] = fmt.Sprintf("%s (%s)", el.Display, el.Role)
	}
	return strings.Join(parts, ", ")
}
