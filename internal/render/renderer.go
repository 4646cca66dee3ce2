// Package render turns a snapshot (or the absence of one) into the
// dashboard's display regions. Rendering is a pure mapping: the only state
// that survives between calls is whatever the Sink kept from earlier writes.
package render

import (
	"fmt"
	"strconv"
	"time"

	"github.com/smartparking/parkwatch/internal/snapshot"
)

// Renderer maps poll outcomes onto a Sink.
type Renderer struct {
	Locale Locale
	// Location is the viewer's time zone. Nil means time.Local.
	Location *time.Location
	// Now returns the render time. Nil means time.Now.
	Now func() time.Time
}

// New creates a renderer for the given locale in the local time zone.
func New(loc Locale) *Renderer {
	return &Renderer{Locale: loc}
}

// Render writes a successful snapshot, or the failure view when snap is nil.
func (r *Renderer) Render(sink Sink, snap *snapshot.Snapshot) {
	if snap == nil {
		r.RenderFailure(sink)
		return
	}
	r.RenderSuccess(sink, snap)
}

// RenderFailure replaces the lot and space regions with the loading-error
// placeholder. Metric cards and the refresh marker keep their last values.
func (r *Renderer) RenderFailure(sink Sink) {
	sink.SetLots(LotRegion{Placeholder: r.Locale.LoadError})
	sink.SetSpaces(SpaceRegion{Placeholder: r.Locale.LoadError})
}

// RenderSuccess overlays the summary, replaces lots and spaces, and stamps
// the refresh marker with the current local time of day.
func (r *Renderer) RenderSuccess(sink Sink, snap *snapshot.Snapshot) {
	for key, val := range snap.Summary {
		if sink.HasMetric(key) {
			sink.SetMetric(key, SummaryText(val))
		}
	}
	sink.SetLots(r.Lots(snap.Lots))
	sink.SetSpaces(r.Spaces(snap.Spaces))

	now := r.now()
	sink.SetRefreshed(now, now.In(r.location()).Format(r.Locale.TimeLayout))
}

// Lots builds the lot region.
func (r *Renderer) Lots(lots []snapshot.LotStatus) LotRegion {
	if len(lots) == 0 {
		return LotRegion{Placeholder: r.Locale.NoLots}
	}
	cards := make([]LotCard, 0, len(lots))
	for _, l := range lots {
		cards = append(cards, LotCard{
			LotID:       l.LotID,
			Free:        l.Free,
			TotalSpaces: l.TotalSpaces,
			Title:       fmt.Sprintf(r.Locale.LotTitle, orDash(l.LotID)),
			FreeText:    strconv.Itoa(l.Free),
			TotalText:   fmt.Sprintf(r.Locale.OutOf, l.TotalSpaces),
			UpdatedText: fmt.Sprintf(r.Locale.LastUpdate, r.FormatTimestamp(l.LastUpdate)),
			Severity:    Classify(l.Free, l.TotalSpaces),
		})
	}
	return LotRegion{Cards: cards}
}

// Spaces builds the space table region.
func (r *Renderer) Spaces(spaces []snapshot.SpaceStatus) SpaceRegion {
	if len(spaces) == 0 {
		return SpaceRegion{Placeholder: r.Locale.NoSpaces}
	}
	rows := make([]SpaceRow, 0, len(spaces))
	for _, s := range spaces {
		rows = append(rows, SpaceRow{
			LotID:     orDash(s.LotID),
			SpaceID:   orDash(s.SpaceID),
			Occupancy: OccupancyPill(s.Occupied, r.Locale),
			Sensor:    SensorPill(s.SensorOnline, r.Locale),
			LastSeen:  r.FormatTimestamp(s.LastSeen),
		})
	}
	return SpaceRegion{Rows: rows}
}

// FormatTimestamp renders ts in the viewer's date-time convention. Empty
// values become a dash; values that don't parse are returned unchanged so
// malformed upstream data stays visible.
func (r *Renderer) FormatTimestamp(ts snapshot.Timestamp) string {
	if ts.IsZero() {
		return Dash
	}
	t, ok := ts.Time(r.location())
	if !ok {
		return ts.Raw
	}
	return t.In(r.location()).Format(r.Locale.DateTimeLayout)
}

// SummaryText formats a summary value: numbers in shortest form, other
// non-null values as text, null as a dash.
func SummaryText(val interface{}) string {
	switch v := val.(type) {
	case nil:
		return Dash
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

func (r *Renderer) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

func (r *Renderer) location() *time.Location {
	if r.Location != nil {
		return r.Location
	}
	return time.Local
}

func orDash(s string) string {
	if s == "" {
		return Dash
	}
	return s
}
