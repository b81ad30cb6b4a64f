package models

import (
	"regexp"
	"strings"
	"time"
)

// Event is a single agenda entry. Optional fields are either absent or hold
// a non-empty trimmed value; an empty string is never stored.
type Event struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Time        string   `json:"time,omitempty"`
	Location    string   `json:"location,omitempty"`
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image,omitempty"`
	Gallery     []string `json:"gallery,omitempty"`
}

// Operator is the single credential pair allowed to mutate the agenda.
type Operator struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// BuildID derives a default event id from the title and date:
// "concert-2030-01-01". An empty slug falls back to "evento"; an empty date
// falls back to today's date.
func BuildID(title, date string) string {
	datePart := strings.TrimSpace(date)
	if datePart == "" {
		datePart = time.Now().Format("2006-01-02")
	}
	titlePart := slugStrip.ReplaceAllString(strings.ToLower(strings.TrimSpace(title)), "-")
	titlePart = strings.Trim(titlePart, "-")
	if titlePart == "" {
		titlePart = "evento"
	}
	return titlePart + "-" + datePart
}
