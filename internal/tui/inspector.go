package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/phonlab/ipa/internal/glyphart"
	"github.com/phonlab/ipa/internal/ipa"
	"github.com/phonlab/ipa/internal/tokenizer"
)

// Model is the interactive transcription inspector: type an IPA string,
// see its segmentation live, and step through the entries.
type Model struct {
	tok   *tokenizer.Tokenizer
	input textinput.Model

	transcript ipa.Transcript
	tokenErr   error
	selected   int

	width  int
	height int
}

// New creates the inspector model over a tokenizer.
func New(tok *tokenizer.Tokenizer) Model {
	ti := textinput.New()
	ti.Placeholder = `pʰæt kʰaʧ suto`
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 48

	return Model{tok: tok, input: ti}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "shift+tab":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "right", "tab":
			if m.selected < len(m.transcript)-1 {
				m.selected++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.retokenize()
	return m, cmd
}

func (m *Model) retokenize() {
	value := m.input.Value()
	if value == "" {
		m.transcript = nil
		m.tokenErr = nil
		m.selected = 0
		return
	}
	m.transcript, m.tokenErr = m.tok.Tokenize(value)
	if m.selected >= len(m.transcript) {
		m.selected = 0
	}
}

// View renders the inspector.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("IPA Transcription Inspector"))
	b.WriteString("  ")
	b.WriteString(subtitleStyle.Render("live segmentation"))
	b.WriteString("\n\n")
	b.WriteString(inputBoxStyle.Render(m.input.View()))
	b.WriteString("\n\n")

	switch {
	case m.tokenErr != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("✗ %v", m.tokenErr)))
		b.WriteString("\n")
	case len(m.transcript) > 0:
		b.WriteString(m.viewEntries())
		b.WriteString("\n")
		b.WriteString(m.viewDetail())
	default:
		b.WriteString(helpStyle.Render("Type an IPA transcription to segment it."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("←/→ select entry · esc quit"))
	return b.String()
}

// viewEntries renders the transcript as a row of styled chips.
func (m Model) viewEntries() string {
	chips := make([]string, 0, len(m.transcript))
	for i, entry := range m.transcript {
		label := chipText(entry)
		style := chipStyle(entry)
		if i == m.selected {
			style = entrySelectedStyle
		}
		chips = append(chips, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

func chipText(entry []*ipa.PhoElement) string {
	var sb strings.Builder
	for _, el := range entry {
		if el.Char == ' ' {
			sb.WriteString("␣")
			continue
		}
		sb.WriteString(el.Symbol)
	}
	if sb.Len() == 0 {
		return "∅"
	}
	return sb.String()
}

func chipStyle(entry []*ipa.PhoElement) lipgloss.Style {
	if len(entry) == 1 {
		switch entry[0].Role {
		case ipa.RoleBoundary:
			return entryBoundaryStyle
		case ipa.RoleStress:
			return entryStressStyle
		}
	}
	if _, err := ipa.NewSegment(entry); err != nil {
		return entryBadStyle
	}
	return entryStyle
}

// viewDetail renders the selected entry: its components, features, and
// an enlarged glyph when a font is available.
func (m Model) viewDetail() string {
	if m.selected >= len(m.transcript) {
		return ""
	}
	entry := m.transcript[m.selected]
	if len(entry) == 0 {
		return detailBoxStyle.Render(helpStyle.Render("empty entry"))
	}

	var rows []string
	seg, segErr := ipa.NewSegment(entry)
	if segErr == nil {
		rows = append(rows, detailRow("Segment", seg.String()))
		rows = append(rows, detailRow("Base", seg.BaseString()))
		if left := displayList(seg.LeftDiacritics()); left != "" {
			rows = append(rows, detailRow("Left", left))
		}
		if right := displayList(seg.RightDiacritics()); right != "" {
			rows = append(rows, detailRow("Right", right))
		}
	} else if len(entry) == 1 && entry[0].Char == ' ' {
		rows = append(rows, detailRow("Entry", "word boundary"))
	} else {
		rows = append(rows, detailRow("Entry", chipText(entry)))
		rows = append(rows, errorStyle.Render(segErr.Error()))
	}

	for _, el := range entry {
		if el.Record == nil {
			continue
		}
		rows = append(rows, detailRow(
			runewidth.FillRight(el.Display, 4),
			fmt.Sprintf("%s · %s · %s", el.Record.Name, el.Role, el.Kind)))
	}

	detail := detailBoxStyle.Render(strings.Join(rows, "\n"))

	if segErr == nil && glyphart.Available() {
		art := glyphart.RenderBlock(seg.String(), 20, 8)
		if art != "" {
			return lipgloss.JoinHorizontal(lipgloss.Top, detail, "  ", glyphStyle.Render(art))
		}
	}
	return detail
}

func detailRow(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}

func displayList(els []*ipa.PhoElement) string {
	if len(els) == 0 {
		return ""
	}
	parts := make([]string, len(els))
	for i, el := range els {
		parts[i] = el.Display
	}
	return strings.Join(parts, " ")
}
