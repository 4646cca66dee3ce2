package snapshot

import (
	"strings"
	"testing"
	"time"

	"github.com/smartparking/parkwatch/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBytes_FullSnapshot(t *testing.T) {
	body := `{
  "summary": {"lots": 3, "freeSpaces": 42, "status": "degraded", "note": null},
  "lots": [
    {"lotId": "A1", "free": 10, "totalSpaces": 20, "lastUpdate": "2024-01-01T10:00:00Z"},
    {"name": "b2", "free": 0, "occupied": 5, "totalSpaces": 5, "lastUpdate": null}
  ],
  "spaces": [
    {"lotId": "B2", "spaceId": "5", "occupied": true, "sensorOnline": false, "lastSeen": null},
    {"lotId": "A1", "spaceId": "1", "occupied": false, "sensorOnline": true, "lastSeen": 1704103200000}
  ]
}`

	snap, err := DecodeBytes([]byte(body))
	require.NoError(t, err)

	assert.Equal(t, float64(3), snap.Summary["lots"])
	assert.Equal(t, float64(42), snap.Summary["freeSpaces"])
	assert.Equal(t, "degraded", snap.Summary["status"])
	v, ok := snap.Summary["note"]
	assert.True(t, ok)
	assert.Nil(t, v)

	require.Len(t, snap.Lots, 2)
	assert.Equal(t, "A1", snap.Lots[0].LotID)
	assert.Equal(t, 10, snap.Lots[0].Free)
	assert.Equal(t, 20, snap.Lots[0].TotalSpaces)
	assert.Equal(t, NewTimestamp("2024-01-01T10:00:00Z"), snap.Lots[0].LastUpdate)

	// lotId falls back to the upper-cased resource name
	assert.Equal(t, "B2", snap.Lots[1].LotID)
	assert.True(t, snap.Lots[1].LastUpdate.IsZero())

	require.Len(t, snap.Spaces, 2)
	assert.True(t, snap.Spaces[0].Occupied)
	assert.False(t, snap.Spaces[0].SensorOnline)
	assert.True(t, snap.Spaces[0].LastSeen.IsZero())
	assert.Equal(t, Timestamp{Raw: "1704103200000", Number: true}, snap.Spaces[1].LastSeen)
}

func TestDecodeBytes_FreeFallback(t *testing.T) {
	tests := []struct {
		name string
		lot  string
		want int
	}{
		{name: "free present", lot: `{"lotId": "A1", "free": 3, "occupied": 2, "totalSpaces": 20}`, want: 3},
		{name: "free present zero", lot: `{"lotId": "A1", "free": 0, "occupied": 2, "totalSpaces": 20}`, want: 0},
		{name: "derived from occupied", lot: `{"name": "north", "occupied": 2, "totalSpaces": 20}`, want: 18},
		{name: "no occupied either", lot: `{"lotId": "A1", "totalSpaces": 20}`, want: 20},
		{name: "never negative", lot: `{"lotId": "A1", "occupied": 25, "totalSpaces": 20}`, want: 0},
		{name: "null free", lot: `{"lotId": "A1", "free": null, "occupied": 2, "totalSpaces": 20}`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap, err := DecodeBytes([]byte(`{"lots": [` + tt.lot + `]}`))
			require.NoError(t, err)
			require.Len(t, snap.Lots, 1)
			assert.Equal(t, tt.want, snap.Lots[0].Free)
		})
	}
}

func TestDecodeBytes_DerivedLotKeepsOtherFields(t *testing.T) {
	snap, err := DecodeBytes([]byte(`{"lots": [{"name": "north", "totalSpaces": 20, "occupied": 2, "lastUpdate": "2024-01-01T10:00:00Z"}]}`))
	require.NoError(t, err)

	lot := snap.Lots[0]
	assert.Equal(t, "NORTH", lot.LotID)
	assert.Equal(t, 18, lot.Free)
	assert.Equal(t, 2, lot.Occupied)
	assert.Equal(t, 20, lot.TotalSpaces)
	assert.Equal(t, NewTimestamp("2024-01-01T10:00:00Z"), lot.LastUpdate)
}

func TestDecodeBytes_MissingFieldsAreEmpty(t *testing.T) {
	snap, err := DecodeBytes([]byte(`{}`))
	require.NoError(t, err)

	assert.Empty(t, snap.Summary)
	assert.Empty(t, snap.Lots)
	assert.Empty(t, snap.Spaces)
}

func TestDecodeBytes_Failures(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `<html>502 Bad Gateway</html>`},
		{name: "truncated", body: `{"lots": [`},
		{name: "null document", body: `null`},
		{name: "array document", body: `[]`},
		{name: "wrong field type", body: `{"lots": [{"free": "ten"}]}`},
		{name: "bad timestamp type", body: `{"spaces": [{"lastSeen": true}]}`},
		{name: "trailing garbage", body: `{} {}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap, err := DecodeBytes([]byte(tt.body))
			assert.Nil(t, snap)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrDecode), "want DECODE, got %v", err)
		})
	}
}

func TestDecode_Reader(t *testing.T) {
	snap, err := Decode(strings.NewReader(`{"lots": []}`))
	require.NoError(t, err)
	assert.NotNil(t, snap)
	assert.Empty(t, snap.Lots)
}

func TestTimestamp_MarshalRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		ts   Timestamp
		want string
	}{
		{name: "null", ts: Timestamp{}, want: `null`},
		{name: "string", ts: NewTimestamp("2024-01-01T10:00:00Z"), want: `"2024-01-01T10:00:00Z"`},
		{name: "number", ts: Timestamp{Raw: "1704103200000", Number: true}, want: `1704103200000`},
		{name: "number zero stays a number", ts: Timestamp{Raw: "0", Number: true}, want: `0`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := tt.ts.MarshalJSON()
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestTimestamp_IsZero(t *testing.T) {
	tests := []struct {
		name string
		ts   Timestamp
		want bool
	}{
		{name: "missing", ts: Timestamp{}, want: true},
		{name: "number zero", ts: Timestamp{Raw: "0", Number: true}, want: true},
		{name: "number zero float", ts: Timestamp{Raw: "0.0", Number: true}, want: true},
		{name: "number", ts: Timestamp{Raw: "1704103200000", Number: true}, want: false},
		{name: "string zero is text", ts: NewTimestamp("0"), want: false},
		{name: "string", ts: NewTimestamp("2024-01-01"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ts.IsZero())
		})
	}
}

func TestDecodeBytes_EpochZeroIsMissing(t *testing.T) {
	snap, err := DecodeBytes([]byte(`{"lots":[{"name":"north","free":1,"lastUpdate":0}]}`))
	require.NoError(t, err)
	require.Len(t, snap.Lots, 1)
	assert.True(t, snap.Lots[0].LastUpdate.IsZero())
}

func TestTimestamp_Time(t *testing.T) {
	rome, err := time.LoadLocation("Europe/Rome")
	require.NoError(t, err)

	tests := []struct {
		name   string
		ts     Timestamp
		want   time.Time
		wantOK bool
	}{
		{
			name:   "RFC3339 UTC",
			ts:     NewTimestamp("2024-01-01T10:00:00Z"),
			want:   time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "RFC3339 with offset and micros",
			ts:     NewTimestamp("2024-01-01T10:00:00.123456+00:00"),
			want:   time.Date(2024, 1, 1, 10, 0, 0, 123456000, time.UTC),
			wantOK: true,
		},
		{
			name:   "no zone is local",
			ts:     NewTimestamp("2024-01-01T10:00:00"),
			want:   time.Date(2024, 1, 1, 10, 0, 0, 0, rome),
			wantOK: true,
		},
		{
			name:   "space separated",
			ts:     NewTimestamp("2024-01-01 10:00:00"),
			want:   time.Date(2024, 1, 1, 10, 0, 0, 0, rome),
			wantOK: true,
		},
		{
			name:   "bare date is UTC",
			ts:     NewTimestamp("2024-01-01"),
			want:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "RFC1123",
			ts:     NewTimestamp("Mon, 01 Jan 2024 10:00:00 GMT"),
			want:   time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "zone without seconds",
			ts:     NewTimestamp("2024-01-01T10:00Z"),
			want:   time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "offset without seconds",
			ts:     NewTimestamp("2024-01-01T12:00+02:00"),
			want:   time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "epoch millis",
			ts:     Timestamp{Raw: "1704103200000", Number: true},
			want:   time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{name: "empty", ts: Timestamp{}, wantOK: false},
		{name: "epoch zero", ts: Timestamp{Raw: "0", Number: true}, wantOK: false},
		{name: "garbage", ts: NewTimestamp("yesterday-ish"), wantOK: false},
		{name: "digits as string", ts: NewTimestamp("1704103200000"), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.ts.Time(rome)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
			}
		})
	}
}
