package monitor

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/smartparking/parkwatch/internal/errors"
	"github.com/smartparking/parkwatch/internal/poller"
	"github.com/smartparking/parkwatch/internal/render"
)

// RenderPlain draws a view state as uncolored text: refresh marker, metric
// cards, lots, then the space table.
func RenderPlain(v render.ViewState, loc render.Locale) string {
	var b strings.Builder

	fmt.Fprintf(&b, loc.LastUpdate+"\n", v.RefreshedText)

	if len(v.Metrics) > 0 {
		b.WriteString("\n")
		width := 0
		for _, m := range v.Metrics {
			if w := len([]rune(m.Label)); w > width {
				width = w
			}
		}
		for _, m := range v.Metrics {
			fmt.Fprintf(&b, "  %-*s  %s\n", width, m.Label, m.Text)
		}
	}

	b.WriteString("\n")
	if v.Lots.Placeholder != "" {
		b.WriteString(v.Lots.Placeholder + "\n")
	} else {
		for _, c := range v.Lots.Cards {
			fmt.Fprintf(&b, "%s  %s %s  [%s]  %s\n", c.Title, c.FreeText, c.TotalText, c.Severity, c.UpdatedText)
		}
	}

	b.WriteString("\n")
	if v.Spaces.Placeholder != "" {
		b.WriteString(v.Spaces.Placeholder + "\n")
	} else {
		header, lines := SpaceTable(v.Spaces.Rows, loc, PlainPill)
		b.WriteString(header + "\n")
		for _, line := range lines {
			b.WriteString(line + "\n")
		}
	}

	return b.String()
}

// PlainPrinter is a poller handler that renders every outcome into its own
// view state and prints it, separated by a blank line.
type PlainPrinter struct {
	mu       sync.Mutex
	w        io.Writer
	view     render.ViewState
	renderer *render.Renderer
	locale   render.Locale
	printed  int
}

// NewPlainPrinter creates a printer writing to w.
func NewPlainPrinter(w io.Writer, r *render.Renderer, metrics []render.MetricSlot) *PlainPrinter {
	return &PlainPrinter{
		w:        w,
		view:     render.NewViewState(metrics, r.Locale),
		renderer: r,
		locale:   r.Locale,
	}
}

// Handle renders and prints one outcome.
func (p *PlainPrinter) Handle(out poller.Outcome) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.renderer.Render(&p.view, out.Snapshot)

	if p.printed > 0 {
		fmt.Fprintln(p.w)
	}
	if !out.OK() {
		fmt.Fprintf(p.w, "! %s: %s\n", ErrorLabel(out.Err), errors.Summary(out.Err))
	}
	fmt.Fprint(p.w, RenderPlain(p.view, p.locale))
	p.printed++
}

// ViewState returns a copy of the printer's current state.
func (p *PlainPrinter) ViewState() render.ViewState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.view.Clone()
}
