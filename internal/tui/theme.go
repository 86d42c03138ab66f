// apps/go-term/internal/tui/theme.go
//
// Colour modes for the terminal host.
//   - mono: reverse / dim / bold / bold+underline
//   - low:  eight base ANSI colours
//   - high: bright sixteen-colour palette
//   - auto: picked from the output's detected profile

package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/robalobadob/wordle/apps/go-term/internal/config"
	"github.com/robalobadob/wordle/apps/go-term/internal/game"
)

// Theme holds the styles for each cell classification plus chrome.
type Theme struct {
	Cells  [4]lipgloss.Style // indexed by game.Classification
	Bold   lipgloss.Style
	Dim    lipgloss.Style
	Border lipgloss.Style
	Accent lipgloss.Style
}

// Cell returns the style for classification c.
func (t Theme) Cell(c game.Classification) lipgloss.Style { return t.Cells[c] }

// NewTheme builds styles for a colour mode, rendering to w.
// In auto mode the detected profile of w decides; a writer that is not a
// terminal gets unstyled output.
func NewTheme(mode string, w io.Writer) Theme {
	r := lipgloss.NewRenderer(w)

	switch mode {
	case config.ColorMono:
		// attributes still need escape sequences
		r.SetColorProfile(termenv.ANSI)
		return monoTheme(r)
	case config.ColorLow:
		r.SetColorProfile(termenv.ANSI)
		return lowTheme(r)
	case config.ColorHigh:
		r.SetColorProfile(termenv.ANSI256)
		return highTheme(r)
	}

	switch r.ColorProfile() {
	case termenv.Ascii:
		return monoTheme(r)
	case termenv.ANSI:
		return lowTheme(r)
	default:
		return highTheme(r)
	}
}

// monoTheme distinguishes cells by attribute only.
func monoTheme(r *lipgloss.Renderer) Theme {
	base := r.NewStyle()
	return Theme{
		Cells: [4]lipgloss.Style{
			game.Blank:     base.Reverse(true),
			game.Wrong:     base.Faint(true),
			game.Misplaced: base.Bold(true),
			game.Correct:   base.Bold(true).Underline(true),
		},
		Bold:   base.Bold(true),
		Dim:    base.Faint(true),
		Border: base,
		Accent: base.Bold(true),
	}
}

// lowTheme uses the eight base ANSI colours.
func lowTheme(r *lipgloss.Renderer) Theme {
	base := r.NewStyle()
	return Theme{
		Cells: [4]lipgloss.Style{
			game.Blank:     base.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("7")),
			game.Wrong:     base.Foreground(lipgloss.Color("7")).Background(lipgloss.Color("0")),
			game.Misplaced: base.Foreground(lipgloss.Color("7")).Background(lipgloss.Color("3")).Bold(true),
			game.Correct:   base.Foreground(lipgloss.Color("7")).Background(lipgloss.Color("2")).Bold(true),
		},
		Bold:   base.Bold(true),
		Dim:    base.Foreground(lipgloss.Color("7")),
		Border: base.Foreground(lipgloss.Color("7")),
		Accent: base.Foreground(lipgloss.Color("2")).Bold(true),
	}
}

// highTheme uses the bright half of the sixteen-colour palette.
func highTheme(r *lipgloss.Renderer) Theme {
	base := r.NewStyle()
	return Theme{
		Cells: [4]lipgloss.Style{
			game.Blank:     base.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("8")),
			game.Wrong:     base.Foreground(lipgloss.Color("7")).Background(lipgloss.Color("8")),
			game.Misplaced: base.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("3")).Bold(true),
			game.Correct:   base.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("2")).Bold(true),
		},
		Bold:   base.Bold(true),
		Dim:    base.Foreground(lipgloss.Color("8")),
		Border: base.Foreground(lipgloss.Color("8")),
		Accent: base.Foreground(lipgloss.Color("10")).Bold(true),
	}
}
