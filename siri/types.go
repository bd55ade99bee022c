package siri

import transitTypes "github.com/theoremus-urban-solutions/transit-types/siri"

// SiriResponse is the top-level SIRI response structure
type SiriResponse struct {
	Siri SiriServiceDelivery `json:"Siri"`
}

// SiriServiceDelivery wraps the ServiceDelivery element
type SiriServiceDelivery struct {
	ServiceDelivery ServiceDelivery `json:"ServiceDelivery"`
}

// ServiceDelivery carries the situation exchange deliveries
type ServiceDelivery struct {
	ResponseTimestamp         string              `json:"ResponseTimestamp"`
	ProducerRef               string              `json:"ProducerRef,omitempty"`
	SituationExchangeDelivery []SituationExchange `json:"SituationExchangeDelivery"`
}

// SituationExchange is one SIRI-SX delivery
type SituationExchange struct {
	Situations []PtSituationElement `json:"Situations"`
}

// PtSituationElement represents a single public transport situation
// (alert/disruption)
type PtSituationElement struct {
	ParticipantRef  string           `json:"ParticipantRef,omitempty"`
	SituationNumber string           `json:"SituationNumber"`
	SourceType      string           `json:"SourceType,omitempty"`
	Progress        string           `json:"Progress"` // open|closed
	ValidityPeriod  []ValidityPeriod `json:"ValidityPeriod,omitempty"`
	Severity        string           `json:"Severity"`
	ReportType      string           `json:"ReportType"` // general|incident
	Summary         string           `json:"Summary"`
	Description     string           `json:"Description,omitempty"`
	InfoLinks       []InfoLink       `json:"InfoLinks,omitempty"`
	Affects         Affects          `json:"Affects"`
}

// ValidityPeriod represents a time period with start and end time
type ValidityPeriod struct {
	StartTime string `json:"StartTime"`
	EndTime   string `json:"EndTime,omitempty"`
}

// InfoLink represents a URL with optional language attribute
type InfoLink struct {
	Uri  string `json:"Uri"`
	Lang string `json:"lang,omitempty"`
}

// Affects represents the scope of the situation
type Affects struct {
	VehicleJourneys []AffectedVehicleJourney `json:"VehicleJourneys,omitempty"`
}

// AffectedVehicleJourney represents an affected dated vehicle journey
type AffectedVehicleJourney struct {
	FramedVehicleJourneyRef *transitTypes.FramedVehicleJourneyRef `json:"FramedVehicleJourneyRef,omitempty"`
	LineRef                 string                                `json:"LineRef,omitempty"`
}
