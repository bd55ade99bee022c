package roki

// Ref is an index reference into one of the response arenas.
type Ref struct {
	Idx uint32 `json:"idx"`
}

// Timestamp is an instant as seconds since the Unix epoch.
type Timestamp struct {
	Seconds int64 `json:"seconds"`
}

// Duration is a length of time in whole seconds.
type Duration struct {
	Seconds int64 `json:"seconds"`
}

// Date is a calendar date as separate year/month/day fields.
type Date struct {
	Year  int32 `json:"year"`
	Month int32 `json:"month"`
	Day   int32 `json:"day"`
}

// Response is one decoded journey-planning response: the candidate journeys
// plus the arenas they reference. Arenas are populated once by the transport
// layer and are read-only afterwards.
type Response struct {
	Journeys []Journey `json:"journeys"`
	Objects  Objects   `json:"objects"`
}

// Objects holds the response arenas. Position in each slice is the index
// space used by Ref values elsewhere in the message.
type Objects struct {
	Stops         []Stop         `json:"stops"`
	Stations      []Station      `json:"stations"`
	Trips         []Trip         `json:"trips"`
	Routes        []Route        `json:"routes"`
	ServiceAlerts []ServiceAlert `json:"service_alerts"`
	TripUpdates   []TripUpdate   `json:"trip_updates"`
}

// Journey is one candidate journey, a non-empty ordered sequence of legs.
type Journey struct {
	DepartureTime Timestamp `json:"departure_time"`
	ArrivalTime   Timestamp `json:"arrival_time"`
	Legs          []Leg     `json:"legs"`
}

// Leg is one continuous ride on a single trip. The first stop-time is the
// boarding point and the last the alighting point. TripUpdate is present
// only when realtime data was used for this leg.
type Leg struct {
	TripIdx       Ref        `json:"trip_idx"`
	TripDate      Date       `json:"trip_date"`
	StopTimes     []StopTime `json:"stop_times"`
	ServiceAlerts []Ref      `json:"service_alerts"`
	TripUpdate    *Ref       `json:"trip_update,omitempty"`
}

// StopTime is a scheduled call at one stop. Delays are optional; nil means
// the field was absent from the wire message, not a zero delay.
type StopTime struct {
	StopIdx     Ref       `json:"stop_idx"`
	BoardTime   Timestamp `json:"board_time"`
	BoardDelay  *Duration `json:"board_delay,omitempty"`
	DebarkTime  Timestamp `json:"debark_time"`
	DebarkDelay *Duration `json:"debark_delay,omitempty"`
}

// Stop is a boarding/alighting point. A stop need not belong to a station.
type Stop struct {
	ID         string `json:"id"`
	StationIdx *Ref   `json:"station_idx,omitempty"`
}

// Station is a named group of stops.
type Station struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Trip is one run of a vehicle along a route.
type Trip struct {
	ID       string `json:"id"`
	RouteIdx Ref    `json:"route_idx"`
}

// Route is a line identified to riders by its short name.
type Route struct {
	ID        string `json:"id"`
	ShortName string `json:"short_name"`
}

// ServiceAlert is an out-of-band advisory sourced from a realtime feed.
type ServiceAlert struct {
	ID            string         `json:"id"`
	FeedName      string         `json:"feed_name"`
	FeedTimestamp Timestamp      `json:"feed_timestamp"`
	ActivePeriods []ActivePeriod `json:"active_periods"`
	Cause         AlertCause     `json:"cause"`
	Effect        AlertEffect    `json:"effect"`
	Severity      AlertSeverity  `json:"severity"`
	URL           TranslatedText `json:"url"`
	Header        TranslatedText `json:"header"`
	Description   TranslatedText `json:"description"`
}

// ActivePeriod is one window during which an alert applies.
type ActivePeriod struct {
	Start Timestamp `json:"start"`
	End   Timestamp `json:"end"`
}

// TripUpdate is a realtime revision to a trip's schedule.
type TripUpdate struct {
	ID            string    `json:"id"`
	FeedName      string    `json:"feed_name"`
	FeedTimestamp Timestamp `json:"feed_timestamp"`
}

// TranslatedText is a text in zero or more languages. NoLangText is the
// untagged default; nil means no default was supplied.
type TranslatedText struct {
	NoLangText   *string       `json:"text_no_lang,omitempty"`
	Translations []Translation `json:"translations"`
}

// Translation is one (language code, text) pair.
type Translation struct {
	Lang string `json:"lang"`
	Text string `json:"text"`
}
