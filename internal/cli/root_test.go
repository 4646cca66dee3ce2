package cli

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/smartparking/parkwatch/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestRootCommand_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"watch", "once", "init", "version", "completion"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestRootCommand_Flags(t *testing.T) {
	for _, name := range []string{"config", "no-color", "log-file", "debug"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "missing global flag --%s", name)
	}

	watchOnly := []string{"interval", "discard-stale", "plain"}
	source := []string{"endpoint", "locale", "timeout"}

	for _, name := range append(source, watchOnly...) {
		assert.NotNil(t, rootCmd.Flags().Lookup(name), "root missing --%s", name)
		assert.NotNil(t, watchCmd.Flags().Lookup(name), "watch missing --%s", name)
	}
	for _, name := range source {
		assert.NotNil(t, onceCmd.Flags().Lookup(name), "once missing --%s", name)
	}
	for _, name := range watchOnly {
		assert.Nil(t, onceCmd.Flags().Lookup(name), "once should not take --%s", name)
	}
	assert.NotNil(t, onceCmd.Flags().Lookup("json"))
	assert.NotNil(t, initCmd.Flags().ShorthandLookup("f"))
}

func TestReportError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantOut  string
	}{
		{
			name:     "exit code only",
			err:      errors.NewExitError(3),
			wantCode: 3,
			wantOut:  "",
		},
		{
			name:     "structured",
			err:      errors.New(errors.ErrConfig, "No endpoint configured", "Set one"),
			wantCode: 1,
			wantOut:  "✗ No endpoint configured\n\n  Set one\n",
		},
		{
			name:     "plain",
			err:      fmt.Errorf("boom"),
			wantCode: 1,
			wantOut:  "✗ boom\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			assert.Equal(t, tt.wantCode, reportError(&buf, tt.err))
			assert.Equal(t, tt.wantOut, buf.String())
		})
	}
}
