// Package resolver flattens a decoded roki response into self-contained
// journeys: every arena index is followed and inlined, repeated service-alert
// references are deduplicated per leg by alert id, and translated texts
// collapse to language→text maps.
//
// Resolution is a pure in-memory transform: no I/O, no mutation of the
// input, no state across calls. A Resolver may be shared across goroutines.
//
// Failures are fatal for the whole call. An index outside its arena or a
// malformed reference chain aborts resolution with an error wrapping
// roki.ErrCorruptResponse; no partial result is returned. Unknown alert
// enum codes render the "UNKNOWN" sentinel by default, or abort with
// roki.ErrUnknownEnumValue when Options.StrictEnums is set.
package resolver
