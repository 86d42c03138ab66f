// apps/go-term/internal/tui/board.go
//
// Board: the game.Sink for the terminal host.
// Renders:
//   - the six-row grid (current row shows the candidate while typing);
//   - the QWERTY keyboard coloured by best-known letter status;
//   - the session histogram (rows 1..6 plus Miss) and streak;
//   - the notice line, or the key legend when help is requested.

package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
	"github.com/robalobadob/wordle/apps/go-term/internal/stats"
)

var qwertyRows = [...]string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}

// rowView is what the board knows about one grid row.
type rowView struct {
	letters string
	marks   game.Marks
}

// Board is the terminal's picture of a round. It implements game.Sink; the
// round pushes scored rows, keyboard state and notices into it and the
// model renders it on every frame.
type Board struct {
	theme   Theme
	rows    [game.RowCount]rowView
	current int
	keys    game.Keyboard
	notice  string
	help    bool
	reveal  string
}

// NewBoard returns an empty board drawn with theme.
func NewBoard(theme Theme) *Board {
	return &Board{theme: theme}
}

// Reset clears the board for a new round.
func (b *Board) Reset() {
	*b = Board{theme: b.theme}
}

func (b *Board) RenderRow(row int, marks game.Marks, letters string) {
	b.rows[row] = rowView{letters: letters, marks: marks}
	b.current = row
}

func (b *Board) RenderKeyboard(k game.Keyboard) { b.keys = k }

func (b *Board) Notify(msg string) {
	b.notice = msg
	b.help = false
}

func (b *Board) Reveal(w game.Word) {
	b.reveal = w.String()
	b.notice = "Word was: " + b.reveal
	b.help = false
}

// ShowHelp replaces the notice line with the key legend.
func (b *Board) ShowHelp() {
	b.help = true
}

// ClearNotice drops the notice and help line.
func (b *Board) ClearNotice() {
	b.notice = ""
	b.help = false
}

// Revealed returns the target shown at the end of the round, if any.
func (b *Board) Revealed() string { return b.reveal }

func (b *Board) cell(c game.Classification, letter byte) string {
	if letter == 0 {
		letter = ' '
	}
	return b.theme.Cell(c).Render(" " + string(letter) + " ")
}

// Grid renders all rows. While typing, candidate fills the current row.
func (b *Board) Grid(candidate string, typing bool) string {
	lines := make([]string, 0, game.RowCount)
	for i, rv := range b.rows {
		letters := rv.letters
		if typing && i == b.current {
			letters = candidate
		}
		cells := make([]string, game.WordLen)
		for j := range cells {
			var ch byte
			if j < len(letters) {
				ch = letters[j]
			}
			cells[j] = b.cell(rv.marks[j], ch)
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n\n")
}

// Keys renders the QWERTY keyboard coloured by best-known status.
func (b *Board) Keys() string {
	lines := make([]string, len(qwertyRows))
	for i, row := range qwertyRows {
		var sb strings.Builder
		sb.WriteString(strings.Repeat(" ", i))
		for j := 0; j < len(row); j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			c := row[j]
			sb.WriteString(b.theme.Cell(b.keys.Status(c)).Render(string(c)))
		}
		lines[i] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// Stats renders the histogram with the bucket of the last round highlighted.
// last is a zero-based row, game.RowCount for a miss, or -1 for none.
func (b *Board) Stats(h stats.Histogram, streak, last int) string {
	rows := make([][]string, 0, game.RowCount+1)
	for i := 0; i < game.RowCount; i++ {
		rows = append(rows, []string{strconv.Itoa(i + 1), strconv.Itoa(h.Bucket(i))})
	}
	rows = append(rows, []string{"Miss", strconv.Itoa(h.Lost)})

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(b.theme.Border).
		BorderHeader(true).
		BorderRow(false).
		Headers("Row", "Games").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return b.theme.Bold.Padding(0, 1)
			case row == last:
				return b.theme.Accent.Padding(0, 1)
			}
			return b.theme.Dim.Padding(0, 1)
		})

	return lipgloss.JoinVertical(lipgloss.Left,
		t.Render(),
		b.theme.Dim.Render("Streak: "+strconv.Itoa(streak)),
	)
}

// Footer renders the notice line, or the key legend when help is showing.
func (b *Board) Footer() string {
	if !b.help {
		return b.notice
	}
	var sb strings.Builder
	for _, it := range []struct {
		c    game.Classification
		desc string
	}{
		{game.Blank, "unused"},
		{game.Wrong, "wrong"},
		{game.Misplaced, "misplaced"},
		{game.Correct, "right"},
	} {
		sb.WriteString(b.theme.Cell(it.c).Render("XXX"))
		sb.WriteString(": " + it.desc + "; ")
	}
	sb.WriteString(b.theme.Bold.Render("^C"))
	sb.WriteString(": quit; ")
	sb.WriteString(b.theme.Bold.Render("^D"))
	sb.WriteString(": new")
	return sb.String()
}
