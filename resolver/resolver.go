package resolver

import (
	"fmt"

	"github.com/theoremus-urban-solutions/roki-journeys/journeys"
	"github.com/theoremus-urban-solutions/roki-journeys/roki"
	"github.com/theoremus-urban-solutions/roki-journeys/utils"
)

// Options controls resolution behavior.
type Options struct {
	// StrictEnums aborts resolution with roki.ErrUnknownEnumValue when an
	// alert carries a cause/effect/severity code outside its closed
	// enumeration. When unset, unknown codes render as UnknownEnumName.
	StrictEnums bool
}

// UnknownEnumName is the sentinel symbolic name rendered for enum codes
// outside their closed enumeration when Options.StrictEnums is unset.
const UnknownEnumName = "UNKNOWN"

// Resolver flattens decoded responses. The zero value resolves with default
// options.
type Resolver struct {
	opts Options
}

// New creates a resolver with the given options.
func New(opts Options) *Resolver {
	return &Resolver{opts: opts}
}

// Resolve flattens resp with default options.
func Resolve(resp *roki.Response) ([]journeys.Journey, error) {
	return New(Options{}).Resolve(resp)
}

// Resolve walks every journey in resp and produces its fully inlined form.
// Journey and leg order is preserved. resp is not mutated.
func (r *Resolver) Resolve(resp *roki.Response) ([]journeys.Journey, error) {
	out := make([]journeys.Journey, 0, len(resp.Journeys))
	for i := range resp.Journeys {
		j, err := r.resolveJourney(&resp.Journeys[i], &resp.Objects)
		if err != nil {
			return nil, fmt.Errorf("journey %d: %w", i, err)
		}
		out = append(out, j)
	}
	return out, nil
}

func (r *Resolver) resolveJourney(j *roki.Journey, objects *roki.Objects) (journeys.Journey, error) {
	out := journeys.Journey{
		DepartureTime: utils.Iso8601FromUnixSeconds(j.DepartureTime.Seconds),
		ArrivalTime:   utils.Iso8601FromUnixSeconds(j.ArrivalTime.Seconds),
		Legs:          make([]journeys.Leg, 0, len(j.Legs)),
	}
	for i := range j.Legs {
		leg, err := r.resolveLeg(&j.Legs[i], objects)
		if err != nil {
			return journeys.Journey{}, fmt.Errorf("leg %d: %w", i, err)
		}
		out.Legs = append(out.Legs, leg)
	}
	return out, nil
}

func (r *Resolver) resolveLeg(leg *roki.Leg, objects *roki.Objects) (journeys.Leg, error) {
	var out journeys.Leg

	if len(leg.StopTimes) == 0 {
		return out, fmt.Errorf("%w: leg has no stop times", roki.ErrCorruptResponse)
	}

	trip, err := objects.Trip(leg.TripIdx)
	if err != nil {
		return out, err
	}
	if trip.ID == "" {
		return out, fmt.Errorf("%w: trip %d has no id", roki.ErrCorruptResponse, leg.TripIdx.Idx)
	}
	out.TripID = trip.ID
	out.TripDate = utils.CompactDate(leg.TripDate.Year, leg.TripDate.Month, leg.TripDate.Day)

	route, err := objects.Route(trip.RouteIdx)
	if err != nil {
		return out, err
	}
	out.RouteID = route.ID
	out.RouteName = route.ShortName

	start := &leg.StopTimes[0]
	out.StartTime = utils.Iso8601FromUnixSeconds(start.BoardTime.Seconds)
	if start.BoardDelay != nil {
		delay := start.BoardDelay.Seconds
		out.StartDelay = &delay
	}
	startStop, err := objects.Stop(start.StopIdx)
	if err != nil {
		return out, err
	}
	out.StartStopID = startStop.ID
	if startStop.StationIdx != nil {
		station, err := objects.Station(*startStop.StationIdx)
		if err != nil {
			return out, err
		}
		name := station.Name
		out.StartStationName = &name
	}

	end := &leg.StopTimes[len(leg.StopTimes)-1]
	out.EndTime = utils.Iso8601FromUnixSeconds(end.DebarkTime.Seconds)
	if end.DebarkDelay != nil {
		delay := end.DebarkDelay.Seconds
		out.EndDelay = &delay
	}
	endStop, err := objects.Stop(end.StopIdx)
	if err != nil {
		return out, err
	}
	out.EndStopID = endStop.ID
	if endStop.StationIdx != nil {
		station, err := objects.Station(*endStop.StationIdx)
		if err != nil {
			return out, err
		}
		name := station.Name
		out.EndStationName = &name
	}

	if len(leg.ServiceAlerts) > 0 {
		alerts := make(map[string]journeys.ServiceAlert, len(leg.ServiceAlerts))
		for _, ref := range leg.ServiceAlerts {
			alert, err := objects.ServiceAlert(ref)
			if err != nil {
				return out, err
			}
			resolved, err := r.resolveServiceAlert(alert)
			if err != nil {
				return out, err
			}
			// keyed by alert id, not arena index: two references that share
			// an id collapse to one entry, the later reference winning
			alerts[resolved.ServiceAlertID] = resolved
		}
		out.ServiceAlerts = alerts
	}

	if leg.TripUpdate != nil {
		update, err := objects.TripUpdate(*leg.TripUpdate)
		if err != nil {
			return out, err
		}
		resolved := resolveTripUpdate(update)
		out.TripUpdate = &resolved
	}

	return out, nil
}
