package formatter

import (
	"encoding/json"
)

type responseBuilder struct {
	indent bool
}

// NewResponseBuilder creates a builder emitting compact JSON.
func NewResponseBuilder() *responseBuilder {
	return &responseBuilder{}
}

// NewIndentedResponseBuilder creates a builder emitting human-readable
// four-space indented JSON.
func NewIndentedResponseBuilder() *responseBuilder {
	return &responseBuilder{indent: true}
}

// BuildJSON serializes v to JSON. Optional fields absent from the resolved
// tree produce no key at all, never a null placeholder.
func (rb *responseBuilder) BuildJSON(v any) []byte {
	var b []byte
	if rb.indent {
		b, _ = json.MarshalIndent(v, "", "    ")
	} else {
		b, _ = json.Marshal(v)
	}
	return b
}
