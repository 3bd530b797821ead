package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

// KeyMap translates Bubble Tea key messages to game actions.
// It also implements help.KeyMap for the footer.
type KeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Drop   key.Binding
	Rotate key.Binding
	Quit   key.Binding
	Help   key.Binding
}

// NewKeyMap builds bindings from configured key names.
func NewKeyMap(cfg config.KeyConfig) KeyMap {
	return KeyMap{
		Left:   binding(cfg.Left, "left"),
		Right:  binding(cfg.Right, "right"),
		Drop:   binding(cfg.Drop, "drop"),
		Rotate: binding(cfg.Rotate, "rotate"),
		Quit:   binding(cfg.Quit, "quit"),
		Help:   binding(cfg.Help, "more"),
	}
}

// DefaultKeyMap returns the built-in bindings.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultConfig().Keys)
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}

// Action returns the action bound to a key, or ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Help):
		return core.ActionHelp
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Drop):
		return core.ActionDrop
	case key.Matches(msg, k.Rotate):
		return core.ActionRotate
	}
	return core.ActionNone
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Rotate, k.Help}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Drop, k.Rotate},
		{k.Help, k.Quit},
	}
}

// releaseMsg releases a held action unless it was pressed again since.
type releaseMsg struct {
	action core.Action
	seq    uint64
}

// holdTracker emulates key-up events. Terminals only report presses and
// auto-repeats, so an action counts as held until window passes without a
// new press.
type holdTracker struct {
	window time.Duration
	seq    uint64
	latest map[core.Action]uint64
}

func newHoldTracker(window time.Duration) *holdTracker {
	return &holdTracker{
		window: window,
		latest: make(map[core.Action]uint64),
	}
}

// press records a press and returns the command delivering its release.
func (h *holdTracker) press(a core.Action) tea.Cmd {
	h.seq++
	msg := releaseMsg{action: a, seq: h.seq}
	h.latest[a] = h.seq
	return tea.Tick(h.window, func(time.Time) tea.Msg {
		return msg
	})
}

// release reports whether msg belongs to the most recent press of its action.
func (h *holdTracker) release(msg releaseMsg) bool {
	if seq, ok := h.latest[msg.action]; !ok || seq != msg.seq {
		return false
	}
	delete(h.latest, msg.action)
	return true
}

// held reports whether an action is currently held.
func (h *holdTracker) held(a core.Action) bool {
	_, ok := h.latest[a]
	return ok
}

// reset forgets every held action.
func (h *holdTracker) reset() {
	clear(h.latest)
}
