package endpoint

import "github.com/iotaledger/hive.go/ierrors"

var (
	// ErrParseBytesFailed is returned if information can not be parsed from a sequence of bytes.
	ErrParseBytesFailed = ierrors.New("failed to parse bytes")

	// ErrParseJSONFailed is returned if information can not be parsed from its JSON representation.
	ErrParseJSONFailed = ierrors.New("failed to parse JSON")
)
