// Package formatter serializes resolved journeys and SIRI responses to
// JSON key/value documents, compact or indented.
package formatter
