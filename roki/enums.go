package roki

import (
	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
)

// The roki service aggregates GTFS-Realtime feeds, so its alert vocabulary
// is the GTFS-RT one. Aliasing the generated enumerations keeps the numeric
// codes and symbolic names (CONSTRUCTION, NO_SERVICE, SEVERE, ...) in lock
// step with the upstream definitions.
type (
	// AlertCause is the reason behind a service alert.
	AlertCause = gtfsrtpb.Alert_Cause
	// AlertEffect is the effect of an alert on service.
	AlertEffect = gtfsrtpb.Alert_Effect
	// AlertSeverity is the severity level of an alert.
	AlertSeverity = gtfsrtpb.Alert_SeverityLevel
)

// CauseName returns the symbolic name for c and whether c belongs to the
// closed enumeration.
func CauseName(c AlertCause) (string, bool) {
	n, ok := gtfsrtpb.Alert_Cause_name[int32(c)]
	return n, ok
}

// EffectName returns the symbolic name for e and whether e belongs to the
// closed enumeration.
func EffectName(e AlertEffect) (string, bool) {
	n, ok := gtfsrtpb.Alert_Effect_name[int32(e)]
	return n, ok
}

// SeverityName returns the symbolic name for s and whether s belongs to the
// closed enumeration.
func SeverityName(s AlertSeverity) (string, bool) {
	n, ok := gtfsrtpb.Alert_SeverityLevel_name[int32(s)]
	return n, ok
}
