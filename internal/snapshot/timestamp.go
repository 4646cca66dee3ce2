package snapshot

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Timestamp is a nullable timestamp exactly as the backend sent it. The raw
// text is kept so a malformed value can be shown verbatim instead of being
// silently dropped.
type Timestamp struct {
	Raw string
	// Number is set when the JSON value was a number (epoch milliseconds).
	Number bool
}

// NewTimestamp wraps a textual timestamp.
func NewTimestamp(raw string) Timestamp {
	return Timestamp{Raw: raw}
}

// IsZero reports whether the timestamp is null, missing or empty. The
// number 0 is zero too: backends send it for "never seen".
func (t Timestamp) IsZero() bool {
	if t.Number {
		v, err := strconv.ParseFloat(t.Raw, 64)
		return err == nil && v == 0
	}
	return t.Raw == ""
}

// UnmarshalJSON accepts a string, a number or null.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*t = Timestamp{}
		return nil
	case data[0] == '"':
		var s string
		if err := jsonAPI.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Timestamp{Raw: s}
		return nil
	default:
		if _, err := strconv.ParseFloat(string(data), 64); err != nil {
			return fmt.Errorf("timestamp must be a string, a number or null, got %s", data)
		}
		*t = Timestamp{Raw: string(data), Number: true}
		return nil
	}
}

// MarshalJSON writes the raw value back in its original JSON type.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	switch {
	case t.Number:
		return []byte(t.Raw), nil
	case t.Raw == "":
		return []byte("null"), nil
	default:
		return jsonAPI.Marshal(t.Raw)
	}
}

// Layouts tried in order when parsing a textual timestamp. Values without a
// zone are read in the viewer's location, except a bare date which is UTC.
var zonedLayouts = []string{
	time.RFC3339Nano,
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02T15:04:05Z0700",
}

var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// Time parses the timestamp. Numbers are epoch milliseconds. The loc argument
// is used for values that carry no zone.
func (t Timestamp) Time(loc *time.Location) (time.Time, bool) {
	if t.IsZero() {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	if t.Number {
		ms, err := strconv.ParseFloat(t.Raw, 64)
		if err != nil {
			return time.Time{}, false
		}
		return time.UnixMilli(int64(ms)), true
	}

	raw := strings.TrimSpace(t.Raw)
	for _, layout := range zonedLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, true
		}
	}
	for _, layout := range localLayouts {
		if ts, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return ts, true
		}
	}
	if ts, err := time.ParseInLocation("2006-01-02", raw, time.UTC); err == nil {
		return ts, true
	}
	return time.Time{}, false
}
