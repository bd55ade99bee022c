package roki

import (
	"encoding/json"
	"fmt"
)

// DecodeResponse parses a captured dump of a decoded response. Field names
// mirror the wire message (trip_idx, station_idx, text_no_lang, ...), so a
// dump written by the transport layer round-trips losslessly. The binary
// wire grammar itself is handled upstream; this is the hand-off format for
// fixtures and the CLI.
func DecodeResponse(b []byte) (*Response, error) {
	var resp Response
	if err := json.Unmarshal(b, &resp); err != nil {
		return nil, fmt.Errorf("decode roki response: %w", err)
	}
	return &resp, nil
}
