package resolver

import (
	"fmt"

	"github.com/theoremus-urban-solutions/roki-journeys/journeys"
	"github.com/theoremus-urban-solutions/roki-journeys/roki"
	"github.com/theoremus-urban-solutions/roki-journeys/utils"
)

func (r *Resolver) resolveServiceAlert(a *roki.ServiceAlert) (journeys.ServiceAlert, error) {
	var out journeys.ServiceAlert

	if a.ID == "" {
		return out, fmt.Errorf("%w: service alert has no id", roki.ErrCorruptResponse)
	}

	name, known := roki.CauseName(a.Cause)
	cause, err := r.enumName("cause", int32(a.Cause), name, known)
	if err != nil {
		return out, err
	}
	name, known = roki.EffectName(a.Effect)
	effect, err := r.enumName("effect", int32(a.Effect), name, known)
	if err != nil {
		return out, err
	}
	name, known = roki.SeverityName(a.Severity)
	severity, err := r.enumName("severity", int32(a.Severity), name, known)
	if err != nil {
		return out, err
	}

	periods := make([]journeys.ActivePeriod, 0, len(a.ActivePeriods))
	for _, p := range a.ActivePeriods {
		periods = append(periods, journeys.ActivePeriod{
			Start: utils.Iso8601FromUnixSeconds(p.Start.Seconds),
			End:   utils.Iso8601FromUnixSeconds(p.End.Seconds),
		})
	}

	out = journeys.ServiceAlert{
		FeedName:       a.FeedName,
		Timestamp:      utils.Iso8601FromUnixSeconds(a.FeedTimestamp.Seconds),
		ServiceAlertID: a.ID,
		ActivePeriods:  periods,
		Cause:          cause,
		Effect:         effect,
		Severity:       severity,
		URL:            resolveTranslation(a.URL),
		Header:         resolveTranslation(a.Header),
		Description:    resolveTranslation(a.Description),
	}
	return out, nil
}

func (r *Resolver) enumName(field string, code int32, name string, known bool) (string, error) {
	if known {
		return name, nil
	}
	if r.opts.StrictEnums {
		return "", fmt.Errorf("%w: alert %s code %d", roki.ErrUnknownEnumValue, field, code)
	}
	return UnknownEnumName, nil
}

// resolveTranslation builds the language→text map: the untagged default (if
// any) goes under the empty-string key first, then each translation in
// sequence order. Later entries overwrite earlier ones, including the
// default.
func resolveTranslation(t roki.TranslatedText) map[string]string {
	out := make(map[string]string, len(t.Translations)+1)
	if t.NoLangText != nil {
		out[""] = *t.NoLangText
	}
	for _, tr := range t.Translations {
		out[tr.Lang] = tr.Text
	}
	return out
}

func resolveTripUpdate(u *roki.TripUpdate) journeys.TripUpdate {
	return journeys.TripUpdate{
		FeedName:      u.FeedName,
		FeedTimestamp: utils.Iso8601FromUnixSeconds(u.FeedTimestamp.Seconds),
		TripUpdateID:  u.ID,
	}
}
