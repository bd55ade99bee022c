package siri

import (
	"testing"
	"time"

	"github.com/theoremus-urban-solutions/roki-journeys/journeys"
)

func testAlert(id string) journeys.ServiceAlert {
	return journeys.ServiceAlert{
		FeedName:       "sncf-alerts",
		Timestamp:      "2024-11-21T14:40:00Z",
		ServiceAlertID: id,
		ActivePeriods: []journeys.ActivePeriod{
			{Start: "2024-11-21T00:00:00Z", End: "2024-11-23T00:00:00Z"},
		},
		Cause:    "CONSTRUCTION",
		Effect:   "DETOUR",
		Severity: "WARNING",
		URL: map[string]string{
			"":   "https://example.com/alerts/" + id,
			"fr": "https://example.com/fr/alerts/" + id,
		},
		Header:      map[string]string{"": "Travaux sur la ligne"},
		Description: map[string]string{"fr": "Circulation perturbée.", "en": "Disrupted service."},
	}
}

func testLeg(tripID, tripDate, routeID string, alerts ...journeys.ServiceAlert) journeys.Leg {
	leg := journeys.Leg{
		TripID:   tripID,
		TripDate: tripDate,
		RouteID:  routeID,
	}
	if len(alerts) > 0 {
		leg.ServiceAlerts = map[string]journeys.ServiceAlert{}
		for _, a := range alerts {
			leg.ServiceAlerts[a.ServiceAlertID] = a
		}
	}
	return leg
}

func TestBuildSituationExchange(t *testing.T) {
	resolved := []journeys.Journey{
		{Legs: []journeys.Leg{testLeg("T1", "20241122", "R1", testAlert("A1"))}},
	}
	now := time.Date(2024, 11, 22, 12, 0, 0, 0, time.UTC)

	sx := BuildSituationExchange(resolved, "SNCF", now)
	if len(sx.Situations) != 1 {
		t.Fatalf("expected 1 situation, got %d", len(sx.Situations))
	}

	el := sx.Situations[0]
	if el.SituationNumber != "SNCF:SituationNumber:A1" {
		t.Errorf("SituationNumber: got %s", el.SituationNumber)
	}
	if el.ParticipantRef != "SNCF" {
		t.Errorf("ParticipantRef: got %s", el.ParticipantRef)
	}
	if el.Severity != "slight" {
		t.Errorf("Severity: got %s, want slight", el.Severity)
	}
	if el.ReportType != "general" {
		t.Errorf("ReportType: got %s, want general", el.ReportType)
	}
	if el.Progress != "open" {
		t.Errorf("Progress: got %s, want open", el.Progress)
	}
	if el.Summary != "Travaux sur la ligne" {
		t.Errorf("Summary: got %s", el.Summary)
	}
	if el.Description != "Disrupted service." {
		t.Errorf("Description: got %s", el.Description)
	}
	if len(el.ValidityPeriod) != 1 || el.ValidityPeriod[0].StartTime != "2024-11-21T00:00:00Z" {
		t.Errorf("ValidityPeriod: got %+v", el.ValidityPeriod)
	}

	if len(el.InfoLinks) != 2 {
		t.Fatalf("expected 2 info links, got %d", len(el.InfoLinks))
	}
	if el.InfoLinks[0].Lang != "" || el.InfoLinks[1].Lang != "fr" {
		t.Errorf("info links not in lexical lang order: %+v", el.InfoLinks)
	}

	if len(el.Affects.VehicleJourneys) != 1 {
		t.Fatalf("expected 1 affected vehicle journey, got %d", len(el.Affects.VehicleJourneys))
	}
	avj := el.Affects.VehicleJourneys[0]
	if avj.FramedVehicleJourneyRef == nil {
		t.Fatal("missing FramedVehicleJourneyRef")
	}
	if avj.FramedVehicleJourneyRef.DataFrameRef != "20241122" {
		t.Errorf("DataFrameRef: got %s", avj.FramedVehicleJourneyRef.DataFrameRef)
	}
	if avj.FramedVehicleJourneyRef.DatedVehicleJourneyRef != "T1" {
		t.Errorf("DatedVehicleJourneyRef: got %s", avj.FramedVehicleJourneyRef.DatedVehicleJourneyRef)
	}
	if avj.LineRef != "SNCF:Line:R1" {
		t.Errorf("LineRef: got %s", avj.LineRef)
	}
}

func TestBuildSituationExchange_DeduplicatesAcrossLegs(t *testing.T) {
	alert := testAlert("A1")
	resolved := []journeys.Journey{
		{Legs: []journeys.Leg{
			testLeg("T1", "20241122", "R1", alert),
			testLeg("T2", "20241122", "R2", alert),
		}},
		{Legs: []journeys.Leg{
			// same alert via the same dated journey as the first leg
			testLeg("T1", "20241122", "R1", alert),
		}},
	}
	now := time.Date(2024, 11, 22, 12, 0, 0, 0, time.UTC)

	sx := BuildSituationExchange(resolved, "SNCF", now)
	if len(sx.Situations) != 1 {
		t.Fatalf("expected 1 deduplicated situation, got %d", len(sx.Situations))
	}

	vjs := sx.Situations[0].Affects.VehicleJourneys
	if len(vjs) != 2 {
		t.Fatalf("expected 2 distinct affected journeys, got %d", len(vjs))
	}
	if vjs[0].FramedVehicleJourneyRef.DatedVehicleJourneyRef != "T1" ||
		vjs[1].FramedVehicleJourneyRef.DatedVehicleJourneyRef != "T2" {
		t.Errorf("affected journeys: got %+v", vjs)
	}
}

func TestBuildSituationExchange_Empty(t *testing.T) {
	resolved := []journeys.Journey{
		{Legs: []journeys.Leg{testLeg("T1", "20241122", "R1")}},
	}
	sx := BuildSituationExchange(resolved, "SNCF", time.Now())
	if len(sx.Situations) != 0 {
		t.Errorf("expected no situations, got %d", len(sx.Situations))
	}
}

func TestBuildSituation_ClosedProgress(t *testing.T) {
	alert := testAlert("A1")
	now := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC) // after every window
	el := buildSituation(alert, "SNCF", now)
	if el.Progress != "closed" {
		t.Errorf("Progress: got %s, want closed", el.Progress)
	}
}

func TestBuildSituation_IncidentReportType(t *testing.T) {
	alert := testAlert("A1")
	alert.Cause = "STRIKE"
	alert.Header = map[string]string{}
	el := buildSituation(alert, "SNCF", time.Now())
	if el.ReportType != "incident" {
		t.Errorf("ReportType: got %s, want incident", el.ReportType)
	}
	if el.Summary != "Strike or unavailable staff" {
		t.Errorf("Summary fallback: got %s", el.Summary)
	}
}

func TestMapSeverity(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"INFO", "normal"},
		{"WARNING", "slight"},
		{"SEVERE", "severe"},
		{"UNKNOWN_SEVERITY", "undefined"},
		{"", "undefined"},
	}
	for _, tt := range tests {
		if got := mapSeverity(tt.input); got != tt.expected {
			t.Errorf("mapSeverity(%q): got %s, want %s", tt.input, got, tt.expected)
		}
	}
}

func TestTextFromTranslation(t *testing.T) {
	tests := []struct {
		name     string
		input    map[string]string
		expected string
	}{
		{"prefers untagged default", map[string]string{"": "D", "en": "E", "fr": "F"}, "D"},
		{"falls back to english", map[string]string{"en": "E", "fr": "F"}, "E"},
		{"falls back to first lexical", map[string]string{"fr": "F", "de": "G"}, "G"},
		{"empty", map[string]string{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := textFromTranslation(tt.input); got != tt.expected {
				t.Errorf("got %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestWrapSituationExchangeResponse(t *testing.T) {
	sx := SituationExchange{}
	resp := WrapSituationExchangeResponse(sx, "SNCF")
	sd := resp.Siri.ServiceDelivery
	if sd.ProducerRef != "SNCF" {
		t.Errorf("ProducerRef: got %s", sd.ProducerRef)
	}
	if len(sd.SituationExchangeDelivery) != 1 {
		t.Fatalf("expected 1 delivery, got %d", len(sd.SituationExchangeDelivery))
	}
	if _, err := time.Parse(time.RFC3339, sd.ResponseTimestamp); err != nil {
		t.Errorf("ResponseTimestamp not RFC3339: %v", err)
	}

	fallback := WrapSituationExchangeResponse(sx, "")
	if fallback.Siri.ServiceDelivery.ProducerRef != "UNKNOWN" {
		t.Errorf("empty codespace should fall back to UNKNOWN, got %s", fallback.Siri.ServiceDelivery.ProducerRef)
	}
}
