package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestDefaultKeyMapActions(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey('a'), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey('d'), core.ActionRight},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDrop},
		{"s", runeKey('s'), core.ActionDrop},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotate},
		{"w", runeKey('w'), core.ActionRotate},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"?", runeKey('?'), core.ActionHelp},
		{"unbound", runeKey('z'), core.ActionNone},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Action(tt.msg); got != tt.expected {
				t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
			}
		})
	}
}

func TestCustomKeyMap(t *testing.T) {
	keys := config.DefaultConfig().Keys
	keys.Rotate = []string{"x"}
	km := NewKeyMap(keys)

	if got := km.Action(runeKey('x')); got != core.ActionRotate {
		t.Errorf("Action(x) = %v, expected Rotate", got)
	}
	if got := km.Action(tea.KeyMsg{Type: tea.KeyUp}); got != core.ActionNone {
		t.Errorf("Action(up) = %v, expected None once rebound", got)
	}
	if help := km.Rotate.Help().Key; help != "x" {
		t.Errorf("Rotate help key = %q, expected %q", help, "x")
	}
}

func TestHoldTrackerLatestPressWins(t *testing.T) {
	h := newHoldTracker(time.Millisecond)

	first := releaseMsg{action: core.ActionLeft, seq: 1}
	h.press(core.ActionLeft)
	h.press(core.ActionLeft) // auto-repeat
	second := releaseMsg{action: core.ActionLeft, seq: 2}

	if h.release(first) {
		t.Error("release(first) = true, expected stale release to be ignored")
	}
	if !h.held(core.ActionLeft) {
		t.Error("held(Left) = false after stale release, expected true")
	}
	if !h.release(second) {
		t.Error("release(second) = false, expected true")
	}
	if h.held(core.ActionLeft) {
		t.Error("held(Left) = true after release, expected false")
	}
	if h.release(second) {
		t.Error("release(second) twice = true, expected false")
	}
}

func TestHoldTrackerActionsIndependent(t *testing.T) {
	h := newHoldTracker(time.Millisecond)
	h.press(core.ActionLeft)  // seq 1
	h.press(core.ActionDrop)  // seq 2
	h.press(core.ActionRight) // seq 3

	if !h.release(releaseMsg{action: core.ActionLeft, seq: 1}) {
		t.Error("release(Left, 1) = false, expected true")
	}
	if !h.held(core.ActionDrop) || !h.held(core.ActionRight) {
		t.Error("releasing Left released other actions")
	}

	h.reset()
	if h.held(core.ActionDrop) || h.held(core.ActionRight) {
		t.Error("held() = true after reset, expected false")
	}
	if h.release(releaseMsg{action: core.ActionDrop, seq: 2}) {
		t.Error("release() after reset = true, expected false")
	}
}

func TestHoldTrackerPressReturnsRelease(t *testing.T) {
	h := newHoldTracker(time.Millisecond)
	cmd := h.press(core.ActionDrop)
	if cmd == nil {
		t.Fatal("press() returned nil command")
	}

	raw := cmd()
	msg, ok := raw.(releaseMsg)
	if !ok {
		t.Fatalf("press() command produced %T, expected releaseMsg", raw)
	}
	if msg.action != core.ActionDrop || msg.seq != 1 {
		t.Errorf("releaseMsg = %+v, expected Drop seq 1", msg)
	}
}
