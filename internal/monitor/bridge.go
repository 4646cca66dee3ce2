package monitor

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/smartparking/parkwatch/internal/poller"
)

// Sender is the part of *tea.Program the bridge needs.
type Sender interface {
	Send(msg tea.Msg)
}

// Bridge forwards poll outcomes to the Bubble Tea program via program.Send().
// This is goroutine-safe.
type Bridge struct {
	program Sender
}

// NewBridge creates a bridge that forwards outcomes to the given program.
func NewBridge(program Sender) *Bridge {
	return &Bridge{program: program}
}

// Deliver forwards one outcome to the TUI.
func (b *Bridge) Deliver(out poller.Outcome) {
	b.program.Send(OutcomeMsg{Outcome: out})
}

// Handler returns Deliver as a poller.Handler.
func (b *Bridge) Handler() poller.Handler {
	return b.Deliver
}
