package ui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// SpinnerState is where a spinner is in its life.
type SpinnerState int

const (
	SpinnerPending SpinnerState = iota
	SpinnerInProgress
	SpinnerSuccess
	SpinnerFailed
)

var spinnerFrames = []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}

const spinnerInterval = 80 * time.Millisecond

// Spinner animates "label..." on one line while a fetch is in flight, then
// replaces it with a single result line:
//
//	✓ Fetching http://localhost:8000/dashboard-data: 3 lots, 40 spaces 0.21s
type Spinner struct {
	w     io.Writer
	label string
	now   func() time.Time

	mu      sync.Mutex
	state   SpinnerState
	frame   int
	started time.Time
	drawn   int // width of the frame on screen
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewSpinner creates a spinner writing to w.
func NewSpinner(w io.Writer, label string) *Spinner {
	return &Spinner{w: w, label: label, now: time.Now}
}

// Start draws the first frame and animates until Stop, Success or Fail.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	s.state = SpinnerInProgress
	s.started = s.now()
	s.drawFrame()

	go s.animate(ctx, s.done)
}

func (s *Spinner) animate(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.mu.Lock()
			s.frame = (s.frame + 1) % len(spinnerFrames)
			s.drawFrame()
			s.mu.Unlock()
		}
	}
}

// Stop ends the animation and leaves the state unchanged.
func (s *Spinner) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel = nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Success stops the spinner and prints a ✓ line with detail.
func (s *Spinner) Success(detail string) {
	s.finish(SpinnerSuccess, detail)
}

// Fail stops the spinner and prints a ✗ line with detail.
func (s *Spinner) Fail(detail string) {
	s.finish(SpinnerFailed, detail)
}

// State returns the current state.
func (s *Spinner) State() SpinnerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Label returns the text shown next to the spinner.
func (s *Spinner) Label() string {
	return s.label
}

func (s *Spinner) finish(state SpinnerState, detail string) {
	s.Stop()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state

	symbol, color := SymbolPending, ColorMuted
	switch state {
	case SpinnerSuccess:
		symbol, color = SymbolSuccess, ColorSuccess
	case SpinnerFailed:
		symbol, color = SymbolFail, ColorError
	}

	parts := []string{lipgloss.NewStyle().Foreground(color).Render(symbol), s.label}
	if detail != "" {
		parts[1] += ": " + detail
	}
	if !s.started.IsZero() {
		parts = append(parts, lipgloss.NewStyle().Foreground(ColorMuted).Render(formatDuration(s.now().Sub(s.started))))
	}

	s.erase()
	fmt.Fprintln(s.w, strings.Join(parts, " "))
}

// drawFrame redraws the current frame. Callers hold s.mu.
func (s *Spinner) drawFrame() {
	style := lipgloss.NewStyle().Foreground(spinnerColors[(s.frame/2)%len(spinnerColors)])
	line := style.Render(spinnerFrames[s.frame]) + " " + s.label + "..."

	s.erase()
	fmt.Fprint(s.w, line)
	s.drawn = lipgloss.Width(line)
}

// erase blanks the frame on screen. Callers hold s.mu.
func (s *Spinner) erase() {
	if s.drawn == 0 {
		return
	}
	fmt.Fprint(s.w, "\r"+strings.Repeat(" ", s.drawn)+"\r")
	s.drawn = 0
}

// formatDuration shows short waits with two decimals: "0.05s", "0.3s", "1.2s".
func formatDuration(d time.Duration) string {
	secs := d.Seconds()
	if secs < 0.1 {
		return fmt.Sprintf("%.2fs", secs)
	}
	return fmt.Sprintf("%.1fs", secs)
}
