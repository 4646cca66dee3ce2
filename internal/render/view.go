package render

import "time"

// Sink is the set of display regions the Renderer writes into. Each region
// supports only "replace contents".
type Sink interface {
	// HasMetric reports whether a display slot exists for the summary key.
	HasMetric(key string) bool
	SetMetric(key, text string)
	SetLots(LotRegion)
	SetSpaces(SpaceRegion)
	SetRefreshed(at time.Time, text string)
}

// MetricSlot declares a summary metric card.
type MetricSlot struct {
	Key   string `json:"key" yaml:"key" mapstructure:"key"`
	Label string `json:"label" yaml:"label" mapstructure:"label"`
}

// Metric is a summary card and the text it currently shows.
type Metric struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Text  string `json:"text"`
}

// LotCard is one rendered parking lot.
type LotCard struct {
	LotID       string   `json:"lotId"`
	Free        int      `json:"free"`
	TotalSpaces int      `json:"totalSpaces"`
	Title       string   `json:"title"`
	FreeText    string   `json:"freeText"`
	TotalText   string   `json:"totalText"`
	UpdatedText string   `json:"updatedText"`
	Severity    Severity `json:"severity"`
}

// LotRegion is the lot list. When Placeholder is set the region shows that
// single entry and Cards is empty.
type LotRegion struct {
	Placeholder string    `json:"placeholder,omitempty"`
	Cards       []LotCard `json:"cards,omitempty"`
}

// SpaceRow is one rendered sensor row.
type SpaceRow struct {
	LotID     string `json:"lotId"`
	SpaceID   string `json:"spaceId"`
	Occupancy Pill   `json:"occupancy"`
	Sensor    Pill   `json:"sensor"`
	LastSeen  string `json:"lastSeen"`
}

// SpaceRegion is the space table body. When Placeholder is set the table
// shows a single full-width row and Rows is empty.
type SpaceRegion struct {
	Placeholder string     `json:"placeholder,omitempty"`
	Rows        []SpaceRow `json:"rows,omitempty"`
}

// ViewState is the in-memory display: every region the dashboard shows.
type ViewState struct {
	Metrics       []Metric    `json:"metrics"`
	Lots          LotRegion   `json:"lots"`
	Spaces        SpaceRegion `json:"spaces"`
	RefreshedAt   time.Time   `json:"refreshedAt"`
	RefreshedText string      `json:"refreshedText"`
}

// NewViewState creates the initial display: every metric slot shows a dash
// and both regions show the loading placeholder.
func NewViewState(slots []MetricSlot, loc Locale) ViewState {
	metrics := make([]Metric, 0, len(slots))
	for _, s := range slots {
		label := s.Label
		if label == "" {
			label = s.Key
		}
		metrics = append(metrics, Metric{Key: s.Key, Label: label, Text: Dash})
	}
	return ViewState{
		Metrics:       metrics,
		Lots:          LotRegion{Placeholder: loc.Loading},
		Spaces:        SpaceRegion{Placeholder: loc.Loading},
		RefreshedText: Dash,
	}
}

// HasMetric implements Sink.
func (v *ViewState) HasMetric(key string) bool {
	return v.metricIndex(key) >= 0
}

// SetMetric implements Sink. Unknown keys are ignored.
func (v *ViewState) SetMetric(key, text string) {
	if i := v.metricIndex(key); i >= 0 {
		v.Metrics[i].Text = text
	}
}

// SetLots implements Sink.
func (v *ViewState) SetLots(r LotRegion) {
	v.Lots = r
}

// SetSpaces implements Sink.
func (v *ViewState) SetSpaces(r SpaceRegion) {
	v.Spaces = r
}

// SetRefreshed implements Sink.
func (v *ViewState) SetRefreshed(at time.Time, text string) {
	v.RefreshedAt = at
	v.RefreshedText = text
}

// MetricText returns the text shown in the slot for key.
func (v *ViewState) MetricText(key string) (string, bool) {
	if i := v.metricIndex(key); i >= 0 {
		return v.Metrics[i].Text, true
	}
	return "", false
}

func (v *ViewState) metricIndex(key string) int {
	for i := range v.Metrics {
		if v.Metrics[i].Key == key {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy, so a sink can hand its state to another goroutine.
func (v ViewState) Clone() ViewState {
	out := v
	out.Metrics = append([]Metric(nil), v.Metrics...)
	out.Lots.Cards = append([]LotCard(nil), v.Lots.Cards...)
	out.Spaces.Rows = append([]SpaceRow(nil), v.Spaces.Rows...)
	return out
}
