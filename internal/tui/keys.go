// apps/go-term/internal/tui/keys.go
//
// Key decoding: lowercase letters type, Enter confirms, Backspace deletes,
// ^D abandons the round, ^C quits.

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
)

// decodeKey maps a key press onto a round event. ok is false for keys the
// round has no use for; the caller shows the help line instead.
func decodeKey(msg tea.KeyMsg) (ev game.Event, ok bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return game.Quit, true
	case tea.KeyCtrlD:
		return game.Cancel, true
	case tea.KeyEnter, tea.KeyCtrlJ:
		return game.Confirm, true
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		return game.Backspace, true
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && !msg.Alt {
			if c := msg.Runes[0]; c >= 'a' && c <= 'z' {
				return game.Letter(byte(c)), true
			}
		}
	}
	return game.Event{}, false
}
