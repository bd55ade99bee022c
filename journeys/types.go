package journeys

// Journey is one resolved candidate journey. Leg order matches the order in
// the response.
type Journey struct {
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
	Legs          []Leg  `json:"legs"`
}

// Leg is one resolved leg. Start fields come from the leg's first stop-time,
// end fields from its last. Delays and station names are present only when
// the source message carried them; ServiceAlerts is present only when the
// leg referenced at least one alert.
type Leg struct {
	TripID           string                  `json:"trip_id"`
	TripDate         string                  `json:"trip_date"`
	RouteID          string                  `json:"route_id"`
	RouteName        string                  `json:"route_name"`
	StartTime        string                  `json:"start_time"`
	StartDelay       *int64                  `json:"start_delay,omitempty"`
	StartStopID      string                  `json:"start_stop_id"`
	StartStationName *string                 `json:"start_station_name,omitempty"`
	EndTime          string                  `json:"end_time"`
	EndDelay         *int64                  `json:"end_delay,omitempty"`
	EndStopID        string                  `json:"end_stop_id"`
	EndStationName   *string                 `json:"end_station_name,omitempty"`
	ServiceAlerts    map[string]ServiceAlert `json:"service_alerts,omitempty"`
	TripUpdate       *TripUpdate             `json:"trip_update,omitempty"`
}

// ServiceAlert is a resolved service alert. Cause, effect and severity are
// the symbolic enumeration names, never the raw numeric codes.
type ServiceAlert struct {
	FeedName       string            `json:"feed_name"`
	Timestamp      string            `json:"timestamp"`
	ServiceAlertID string            `json:"service_alert_id"`
	ActivePeriods  []ActivePeriod    `json:"active_periods"`
	Cause          string            `json:"cause"`
	Effect         string            `json:"effect"`
	Severity       string            `json:"severity"`
	URL            map[string]string `json:"url"`
	Header         map[string]string `json:"header"`
	Description    map[string]string `json:"description"`
}

// ActivePeriod is one resolved alert validity window.
type ActivePeriod struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// TripUpdate is a resolved realtime trip revision reference.
type TripUpdate struct {
	FeedName      string `json:"feed_name"`
	FeedTimestamp string `json:"feed_timestamp"`
	TripUpdateID  string `json:"trip_update_id"`
}
