package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/parabola/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		want     core.Action
		wantQuit bool
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionPrevField, false},
		{"vim down", runeKey("j"), core.ActionNextField, false},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionNextField, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionIncrease, false},
		{"plus", runeKey("+"), core.ActionIncrease, false},
		{"minus", runeKey("-"), core.ActionDecrease, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire, false},
		{"save", runeKey("s"), core.ActionSave, false},
		{"reset", runeKey("r"), core.ActionReset, false},
		{"query", runeKey("/"), core.ActionQuery, false},
		{"screenshot", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionScreenshot, false},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"quit", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("z"), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, quit := km.MapKey(tc.msg)
			if got != tc.want || quit != tc.wantQuit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tc.msg.String(), got, quit, tc.want, tc.wantQuit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionHistory},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey("q"), MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
		}
	}
}
