package roki

import (
	"errors"
	"fmt"
)

// ErrCorruptResponse marks a structural inconsistency in a decoded response:
// an index reference outside its arena's bounds, or an arena entry missing a
// required field. It signals a protocol-level bug between client and service;
// retrying the same bytes cannot succeed.
var ErrCorruptResponse = errors.New("corrupt roki response")

// ErrUnknownEnumValue marks an alert cause/effect/severity code outside the
// closed enumeration for that field.
var ErrUnknownEnumValue = errors.New("unknown enum value")

func lookup[T any](arena string, items []T, ref Ref) (*T, error) {
	if int(ref.Idx) >= len(items) {
		return nil, fmt.Errorf("%w: %s index %d out of range (arena size %d)",
			ErrCorruptResponse, arena, ref.Idx, len(items))
	}
	return &items[ref.Idx], nil
}

// Stop returns the stop referenced by ref, or ErrCorruptResponse when the
// index falls outside the stops arena.
func (o *Objects) Stop(ref Ref) (*Stop, error) {
	return lookup("stop", o.Stops, ref)
}

// Station returns the station referenced by ref.
func (o *Objects) Station(ref Ref) (*Station, error) {
	return lookup("station", o.Stations, ref)
}

// Trip returns the trip referenced by ref.
func (o *Objects) Trip(ref Ref) (*Trip, error) {
	return lookup("trip", o.Trips, ref)
}

// Route returns the route referenced by ref.
func (o *Objects) Route(ref Ref) (*Route, error) {
	return lookup("route", o.Routes, ref)
}

// ServiceAlert returns the service alert referenced by ref.
func (o *Objects) ServiceAlert(ref Ref) (*ServiceAlert, error) {
	return lookup("service alert", o.ServiceAlerts, ref)
}

// TripUpdate returns the trip update referenced by ref.
func (o *Objects) TripUpdate(ref Ref) (*TripUpdate, error) {
	return lookup("trip update", o.TripUpdates, ref)
}
