package snapshot

import (
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/smartparking/parkwatch/internal/errors"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Decode reads and parses a snapshot document from r.
func Decode(r io.Reader) (*Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrNetwork,
			"Snapshot body could not be read",
			"The connection dropped while the response was streaming")
	}
	return DecodeBytes(data)
}

// DecodeBytes parses a snapshot document. A body that is JSON null carries no
// snapshot and is reported as a decode failure, like any body that is not a
// JSON object of the expected shape.
func DecodeBytes(data []byte) (*Snapshot, error) {
	var snap *Snapshot
	if err := jsonAPI.Unmarshal(data, &snap); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrDecode,
			"Snapshot body is not valid dashboard data",
			"The endpoint must return a JSON object with summary, lots and spaces")
	}
	if snap == nil {
		return nil, errors.New(errors.ErrDecode,
			"Snapshot body is null",
			"The backend has no data to publish yet")
	}
	snap.normalize()
	return snap, nil
}
