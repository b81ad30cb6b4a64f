package store

import (
	"regexp"
	"strings"
	"time"

	"agenda-api/internal/metrics"
	"agenda-api/internal/models"
)

var hourMinute = regexp.MustCompile(`^\d{1,2}:\d{2}$`)

var timestampLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// purgeExpired drops every event whose effective timestamp is strictly
// before now. Events without a resolvable timestamp are kept.
func purgeExpired(events []models.Event, now time.Time) ([]models.Event, int) {
	kept := make([]models.Event, 0, len(events))
	removed := 0
	for _, event := range events {
		if ts, ok := effectiveTime(event); ok && ts.Before(now) {
			removed++
			continue
		}
		kept = append(kept, event)
	}
	if removed > 0 {
		metrics.EventsPurged.Add(float64(removed))
	}
	return kept, removed
}

// effectiveTime resolves the moment an event expires. An event with a time
// expires at that time of day; one with only a date expires at the end of
// that day. Timestamps parse in the server's local timezone.
func effectiveTime(event models.Event) (time.Time, bool) {
	date := strings.TrimSpace(event.Date)
	if date == "" {
		return time.Time{}, false
	}

	var candidates []string
	if t := normalizeTime(event.Time); t != "" {
		candidates = append(candidates, date+"T"+t)
	}
	candidates = append(candidates, date+"T23:59:59", date)

	for _, candidate := range candidates {
		for _, layout := range timestampLayouts {
			if ts, err := time.ParseInLocation(layout, candidate, time.Local); err == nil {
				return ts, true
			}
		}
	}
	return time.Time{}, false
}

// normalizeTime expands a bare "HH:MM" to "HH:MM:00"; anything else passes
// through trimmed.
func normalizeTime(t string) string {
	t = strings.TrimSpace(t)
	if hourMinute.MatchString(t) {
		return t + ":00"
	}
	return t
}
