// Package roki models a decoded roki journey-planning response.
//
// A response carries its journeys plus six arenas (stops, stations, trips,
// routes, service alerts, trip updates); everything outside an arena refers
// to arena entries by integer index. The package provides the decoded data
// model, bounds-checked arena accessors, and the alert enumerations.
//
// The main type is Response; arena lookups go through its Objects field.
package roki
