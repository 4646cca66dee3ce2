package cli

import (
	"testing"
	"time"

	"github.com/smartparking/parkwatch/internal/config"
	"github.com/smartparking/parkwatch/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name    string
		flag    string
		want    time.Duration
		wantErr bool
	}{
		{name: "go duration", flag: "5s", want: 5 * time.Second},
		{name: "milliseconds suffix", flag: "1500ms", want: 1500 * time.Millisecond},
		{name: "bare number is milliseconds", flag: "3000", want: 3 * time.Second},
		{name: "surrounding space", flag: " 2s ", want: 2 * time.Second},
		{name: "zero number", flag: "0", wantErr: true},
		{name: "negative duration", flag: "-1s", wantErr: true},
		{name: "garbage", flag: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDuration("interval", tt.flag)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrConfig))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWatchFlags_Apply(t *testing.T) {
	cfg := config.DefaultConfig()
	flags := WatchFlags{
		SourceFlags: SourceFlags{
			Endpoint: "  http://parking.local/data ",
			Locale:   "it",
			Timeout:  "2s",
		},
		Interval:     "5000",
		DiscardStale: true,
	}

	require.NoError(t, flags.Apply(cfg))
	assert.Equal(t, "http://parking.local/data", cfg.Endpoint)
	assert.Equal(t, "it", cfg.Locale)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.Equal(t, 5*time.Second, cfg.Interval)
	assert.True(t, cfg.DiscardStale)
}

func TestWatchFlags_ApplyEmptyKeepsConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DiscardStale = true

	require.NoError(t, WatchFlags{}.Apply(cfg))
	assert.Equal(t, config.DefaultConfig().Endpoint, cfg.Endpoint)
	assert.Equal(t, config.DefaultInterval, cfg.Interval)
	assert.True(t, cfg.DiscardStale, "an unset flag never turns the option off")
}

func TestWatchFlags_ApplyErrors(t *testing.T) {
	assert.Error(t, WatchFlags{Interval: "fast"}.Apply(config.DefaultConfig()))
	assert.Error(t, SourceFlags{Timeout: "-3s"}.Apply(config.DefaultConfig()))
}
