package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/smartparking/parkwatch/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEnvelope(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var env map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))
	return env
}

func TestWriteJSONSuccess(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSONSuccess(&buf, map[string]string{"key": "value"}))

	env := decodeEnvelope(t, &buf)
	assert.Equal(t, true, env["success"])
	assert.Equal(t, map[string]interface{}{"key": "value"}, env["data"])
	assert.NotContains(t, env, "error")
	assert.Contains(t, buf.String(), "\n  \"success\"", "output is indented")
}

func TestWriteJSONSuccess_NilData(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSONSuccess(&buf, nil))

	env := decodeEnvelope(t, &buf)
	assert.Equal(t, true, env["success"])
	assert.NotContains(t, env, "data")
}

func TestErrorToJSON(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    string
		wantMessage string
		wantDetails interface{}
	}{
		{
			name:        "http status",
			err:         errors.NewHTTPStatus(503, "http://x"),
			wantCode:    ErrCodeHTTPStatus,
			wantMessage: "Snapshot endpoint answered HTTP 503",
			wantDetails: map[string]int{"status": 503},
		},
		{
			name:        "network with cause",
			err:         errors.WrapWithCode(fmt.Errorf("connection refused"), errors.ErrNetwork, "Snapshot endpoint unreachable", "start it"),
			wantCode:    ErrCodeEndpointUnreachable,
			wantMessage: "Snapshot endpoint unreachable",
			wantDetails: map[string]string{"cause": "connection refused"},
		},
		{
			name:        "decode",
			err:         errors.New(errors.ErrDecode, "Response is not JSON", ""),
			wantCode:    ErrCodeDecodeFailed,
			wantMessage: "Response is not JSON",
		},
		{
			name:        "config",
			err:         errors.New(errors.ErrConfig, "No endpoint configured", ""),
			wantCode:    ErrCodeConfigInvalid,
			wantMessage: "No endpoint configured",
		},
		{
			name:        "internal",
			err:         errors.New(errors.ErrInternal, "oops", ""),
			wantCode:    ErrCodeInternal,
			wantMessage: "oops",
		},
		{
			name:        "unmapped code",
			err:         errors.New("SOMETHING", "odd", ""),
			wantCode:    ErrCodeUnknown,
			wantMessage: "odd",
		},
		{
			name:        "wrapped structured error",
			err:         fmt.Errorf("once: %w", errors.New(errors.ErrDecode, "bad", "")),
			wantCode:    ErrCodeDecodeFailed,
			wantMessage: "bad",
		},
		{
			name:        "plain error",
			err:         fmt.Errorf("boom"),
			wantCode:    ErrCodeUnknown,
			wantMessage: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ErrorToJSON(tt.err)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantCode, got.Code)
			assert.Equal(t, tt.wantMessage, got.Message)
			assert.Equal(t, tt.wantDetails, got.Details)
		})
	}

	assert.Nil(t, ErrorToJSON(nil))
}

func TestWriteJSONFromError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSONFromError(&buf, errors.NewHTTPStatus(502, "http://x")))

	env := decodeEnvelope(t, &buf)
	assert.Equal(t, false, env["success"])
	errObj, ok := env["error"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, ErrCodeHTTPStatus, errObj["code"])
	assert.Equal(t, map[string]interface{}{"status": float64(502)}, errObj["details"])
	assert.NotEmpty(t, errObj["suggestion"])
}
