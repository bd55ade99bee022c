// Package siri exports resolved roki service alerts as a SIRI-SX
// (Situation Exchange) delivery for downstream systems that consume SIRI
// rather than the resolved journey tree.
//
// Alerts are deduplicated by id across the whole response; each situation
// records the dated vehicle journeys (trip id + trip date) of the legs that
// referenced it.
package siri
