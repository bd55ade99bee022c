package siri

import (
	"sort"
	"time"

	"github.com/theoremus-urban-solutions/roki-journeys/journeys"
	"github.com/theoremus-urban-solutions/roki-journeys/utils"
	transitTypes "github.com/theoremus-urban-solutions/transit-types/siri"
)

// BuildSituationExchange collects the service alerts referenced by resolved
// journeys into one SIRI-SX delivery. Alerts referenced from several legs
// appear once, with every referencing dated vehicle journey listed under
// Affects. now decides whether a situation is still open.
func BuildSituationExchange(resolved []journeys.Journey, codespace string, now time.Time) SituationExchange {
	if codespace == "" {
		codespace = "UNKNOWN"
	}

	var order []string
	byID := map[string]*PtSituationElement{}
	seenJourney := map[string]map[string]bool{}

	for _, journey := range resolved {
		for _, leg := range journey.Legs {
			ids := make([]string, 0, len(leg.ServiceAlerts))
			for id := range leg.ServiceAlerts {
				ids = append(ids, id)
			}
			sort.Strings(ids)

			for _, id := range ids {
				alert := leg.ServiceAlerts[id]
				el, ok := byID[id]
				if !ok {
					built := buildSituation(alert, codespace, now)
					byID[id] = &built
					el = &built
					seenJourney[id] = map[string]bool{}
					order = append(order, id)
				}
				journeyKey := leg.TripDate + "_" + leg.TripID
				if seenJourney[id][journeyKey] {
					continue
				}
				seenJourney[id][journeyKey] = true
				el.Affects.VehicleJourneys = append(el.Affects.VehicleJourneys, AffectedVehicleJourney{
					FramedVehicleJourneyRef: &transitTypes.FramedVehicleJourneyRef{
						DataFrameRef:           leg.TripDate,
						DatedVehicleJourneyRef: leg.TripID,
					},
					LineRef: codespace + ":Line:" + leg.RouteID,
				})
			}
		}
	}

	elements := make([]PtSituationElement, 0, len(order))
	for _, id := range order {
		elements = append(elements, *byID[id])
	}
	return SituationExchange{Situations: elements}
}

// WrapSituationExchangeResponse wraps a SX delivery in a complete SIRI
// response envelope.
func WrapSituationExchangeResponse(sx SituationExchange, codespace string) *SiriResponse {
	if codespace == "" {
		codespace = "UNKNOWN"
	}
	return &SiriResponse{
		Siri: SiriServiceDelivery{
			ServiceDelivery: ServiceDelivery{
				ResponseTimestamp:         utils.Iso8601Now(),
				ProducerRef:               codespace,
				SituationExchangeDelivery: []SituationExchange{sx},
			},
		},
	}
}

func buildSituation(alert journeys.ServiceAlert, codespace string, now time.Time) PtSituationElement {
	summary := textFromTranslation(alert.Header)
	if summary == "" {
		summary = causeToSummary(alert.Cause)
	}

	el := PtSituationElement{
		ParticipantRef:  codespace,
		SituationNumber: codespace + ":SituationNumber:" + alert.ServiceAlertID,
		SourceType:      "directReport",
		Severity:        mapSeverity(alert.Severity),
		ReportType:      causeToReportType(alert.Cause),
		Summary:         summary,
		Description:     textFromTranslation(alert.Description),
	}

	for _, p := range alert.ActivePeriods {
		el.ValidityPeriod = append(el.ValidityPeriod, ValidityPeriod{
			StartTime: p.Start,
			EndTime:   p.End,
		})
	}

	// Set Progress based on validity: closed once every window has ended
	el.Progress = "open"
	if len(alert.ActivePeriods) > 0 {
		closed := true
		for _, p := range alert.ActivePeriods {
			end, err := time.Parse(time.RFC3339, p.End)
			if err != nil || !end.Before(now) {
				closed = false
				break
			}
		}
		if closed {
			el.Progress = "closed"
		}
	}

	langs := make([]string, 0, len(alert.URL))
	for lang := range alert.URL {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	for _, lang := range langs {
		el.InfoLinks = append(el.InfoLinks, InfoLink{Uri: alert.URL[lang], Lang: lang})
	}

	return el
}

// textFromTranslation prefers the untagged default, then English, then the
// first language in lexical order.
func textFromTranslation(texts map[string]string) string {
	if t, ok := texts[""]; ok {
		return t
	}
	if t, ok := texts["en"]; ok {
		return t
	}
	langs := make([]string, 0, len(texts))
	for lang := range texts {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	for _, lang := range langs {
		return texts[lang]
	}
	return ""
}

// mapSeverity maps the roki alert severity name to a SIRI severity
func mapSeverity(severity string) string {
	switch severity {
	case "INFO":
		return "normal"
	case "WARNING":
		return "slight"
	case "SEVERE":
		return "severe"
	default:
		return "undefined"
	}
}

func causeToReportType(cause string) string {
	switch cause {
	case "STRIKE", "ACCIDENT", "POLICE_ACTIVITY", "MEDICAL_EMERGENCY":
		return "incident"
	default:
		return "general"
	}
}

func causeToSummary(cause string) string {
	switch cause {
	case "UNKNOWN_CAUSE":
		return "Unknown cause"
	case "OTHER_CAUSE":
		return "Other cause"
	case "TECHNICAL_PROBLEM":
		return "Technical problem"
	case "STRIKE":
		return "Strike or unavailable staff"
	case "DEMONSTRATION":
		return "Demonstration"
	case "ACCIDENT":
		return "Accident"
	case "HOLIDAY":
		return "Holiday"
	case "WEATHER":
		return "Weather related"
	case "MAINTENANCE":
		return "Maintenance"
	case "CONSTRUCTION":
		return "Construction work"
	case "POLICE_ACTIVITY":
		return "Police activity"
	case "MEDICAL_EMERGENCY":
		return "Medical emergency"
	default:
		return "Unknown cause"
	}
}
