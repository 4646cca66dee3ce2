package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/smartparking/parkwatch/internal/config"
	"github.com/smartparking/parkwatch/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_CreatesConfig(t *testing.T) {
	dir := isolate(t)

	var out bytes.Buffer
	err := Init(InitOptions{
		Endpoint:       "http://parking.local/data",
		Locale:         "it",
		Interval:       "5s",
		NonInteractive: true,
	}, &out)
	require.NoError(t, err)

	path := filepath.Join(dir, config.ConfigFileName)
	assert.FileExists(t, path)
	assert.Contains(t, out.String(), "Created "+config.ConfigFileName)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://parking.local/data", cfg.Endpoint)
	assert.Equal(t, "it", cfg.Locale)
	assert.Equal(t, 5*time.Second, cfg.Interval)
}

func TestInit_DefaultsWithoutValues(t *testing.T) {
	dir := isolate(t)

	require.NoError(t, Init(InitOptions{NonInteractive: true}, &bytes.Buffer{}))

	cfg, err := config.Load(filepath.Join(dir, config.ConfigFileName))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultEndpoint, cfg.Endpoint)
	assert.Equal(t, config.DefaultInterval, cfg.Interval)
}

func TestInit_ExistingWithoutValues(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("endpoint: http://old/x\n"), 0644))

	err := Init(InitOptions{NonInteractive: true}, &bytes.Buffer{})

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "already exists")
}

func TestInit_UpdatesInPlace(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, config.ConfigFileName)
	original := "# downtown garage\nendpoint: http://old/x # backend\nlocale: en\n"
	require.NoError(t, os.WriteFile(path, []byte(original), 0644))

	var out bytes.Buffer
	err := Init(InitOptions{Endpoint: "http://new/y", Interval: "4000", NonInteractive: true}, &out)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# downtown garage")
	assert.Contains(t, string(data), "http://new/y")
	assert.NotContains(t, string(data), "http://old/x")
	assert.Contains(t, out.String(), "Updated endpoint, interval in")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://new/y", cfg.Endpoint)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, 4*time.Second, cfg.Interval)
}

func TestInit_UpdateRejectsBadValue(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, config.ConfigFileName)
	original := "endpoint: http://old/x\n"
	require.NoError(t, os.WriteFile(path, []byte(original), 0644))

	err := Init(InitOptions{Endpoint: "ftp://nope", NonInteractive: true}, &bytes.Buffer{})
	require.Error(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, string(data))
}

func TestInit_Force(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("# old\nendpoint: http://old/x\n"), 0644))

	err := Init(InitOptions{Endpoint: "http://new/y", Force: true, NonInteractive: true}, &bytes.Buffer{})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "# old")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://new/y", cfg.Endpoint)
}

func TestInit_InvalidEndpoint(t *testing.T) {
	dir := isolate(t)

	err := Init(InitOptions{Endpoint: "not a url", NonInteractive: true}, &bytes.Buffer{})

	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, config.ConfigFileName))
}

func TestInit_EnvEndpointKeptVerbatim(t *testing.T) {
	dir := isolate(t)
	t.Setenv("PARKING_URL", "http://parking.local")

	err := Init(InitOptions{Endpoint: "${PARKING_URL}/data", NonInteractive: true}, &bytes.Buffer{})
	require.NoError(t, err)

	path := filepath.Join(dir, config.ConfigFileName)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "${PARKING_URL}/data")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://parking.local/data", cfg.Endpoint)
}

func TestInit_Global(t *testing.T) {
	isolate(t)

	err := Init(InitOptions{Global: true, Endpoint: "http://parking.local/data", NonInteractive: true}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.FileExists(t, config.GlobalPath())
	assert.NoFileExists(t, config.ConfigFileName)
}

func TestInit_ExplicitPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "parking.yaml")

	err := Init(InitOptions{Path: path, Global: true, NonInteractive: true}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.FileExists(t, path)
	assert.NoFileExists(t, config.GlobalPath())
}
