// Package journeys defines the resolved journey tree: the fully inlined,
// index-free form of a roki response, suitable for display, logging, or
// serialization to key/value documents.
//
// Optional fields are pointers (or nil-able maps) carrying `omitempty` tags:
// a field absent from the source message stays absent from the serialized
// output, it never appears as a null or zero placeholder.
package journeys
