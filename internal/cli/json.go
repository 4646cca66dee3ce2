package cli

import (
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/smartparking/parkwatch/internal/errors"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONEnvelope wraps command output in a consistent structure for machine parsing.
// All --json output should use this envelope.
type JSONEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *JSONError  `json:"error,omitempty"`
}

// JSONError provides structured error information for machine parsing.
type JSONError struct {
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	Suggestion string      `json:"suggestion,omitempty"`
	Details    interface{} `json:"details,omitempty"`
}

// Error codes for machine-readable output.
const (
	ErrCodeConfigInvalid       = "CONFIG_INVALID"
	ErrCodeEndpointUnreachable = "ENDPOINT_UNREACHABLE"
	ErrCodeHTTPStatus          = "HTTP_STATUS"
	ErrCodeDecodeFailed        = "DECODE_FAILED"
	ErrCodeInternal            = "INTERNAL"
	ErrCodeUnknown             = "UNKNOWN"
)

// WriteJSONSuccess writes a successful response with data to the writer.
func WriteJSONSuccess(w io.Writer, data interface{}) error {
	return writeJSONEnvelope(w, JSONEnvelope{
		Success: true,
		Data:    data,
	})
}

// WriteJSONFromError converts a Go error to a JSON error response.
func WriteJSONFromError(w io.Writer, err error) error {
	return writeJSONEnvelope(w, JSONEnvelope{
		Success: false,
		Error:   ErrorToJSON(err),
	})
}

// ErrorToJSON converts an error to a JSONError.
func ErrorToJSON(err error) *JSONError {
	if err == nil {
		return nil
	}

	if pwErr, ok := errors.AsError(err); ok {
		out := &JSONError{
			Code:       mapErrorCode(pwErr.Code),
			Message:    pwErr.Message,
			Suggestion: pwErr.Suggestion,
		}
		if status, ok := errors.HTTPStatus(err); ok {
			out.Details = map[string]int{"status": status}
		} else if pwErr.Cause != nil {
			out.Details = map[string]string{"cause": pwErr.Cause.Error()}
		}
		return out
	}

	return &JSONError{
		Code:    ErrCodeUnknown,
		Message: err.Error(),
	}
}

// mapErrorCode converts internal error codes to machine-readable codes.
func mapErrorCode(code string) string {
	switch code {
	case errors.ErrConfig:
		return ErrCodeConfigInvalid
	case errors.ErrNetwork:
		return ErrCodeEndpointUnreachable
	case errors.ErrHTTP:
		return ErrCodeHTTPStatus
	case errors.ErrDecode:
		return ErrCodeDecodeFailed
	case errors.ErrInternal:
		return ErrCodeInternal
	default:
		return ErrCodeUnknown
	}
}

func writeJSONEnvelope(w io.Writer, env JSONEnvelope) error {
	enc := jsonAPI.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}
