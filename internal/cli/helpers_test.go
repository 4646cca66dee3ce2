package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/smartparking/parkwatch/internal/config"
	"github.com/smartparking/parkwatch/internal/render"
	"github.com/stretchr/testify/require"
)

const snapshotBody = `{
  "summary": {"lots": 3, "unknownKey": 9},
  "lots": [{"lotId": "A1", "free": 7, "totalSpaces": 20, "lastUpdate": "2024-01-01T10:00:00Z"}],
  "spaces": [{"lotId": "A1", "spaceId": "1", "occupied": true, "sensorOnline": true, "lastSeen": null}]
}`

// syncBuffer is a goroutine-safe bytes.Buffer.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// isolate points HOME and the working directory at empty temp dirs so no
// real config file is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func snapshotServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testApp(t *testing.T, endpoint string) *app {
	t.Helper()
	isolate(t)

	a, err := newApp(GlobalFlags{NoColor: true}, false, func(cfg *config.Config) error {
		cfg.Endpoint = endpoint
		cfg.Metrics = []render.MetricSlot{{Key: "lots", Label: "Lots"}}
		return nil
	})
	require.NoError(t, err)
	a.renderer.Location = time.UTC
	t.Cleanup(a.Close)
	return a
}
