package store

import (
	_ "embed"
	"encoding/json"
	"log"

	"agenda-api/internal/models"
)

// The bundled dataset mirrors the agenda document shipped with the site
// build, used when no agenda file exists at any candidate path.
//
//go:embed default_agenda.json
var defaultAgenda []byte

// DefaultFallback returns a fresh copy of the bundled agenda dataset.
// Callers get their own slice; the bundled data is never mutated.
func DefaultFallback() []models.Event {
	var events []models.Event
	if err := json.Unmarshal(defaultAgenda, &events); err != nil {
		log.Printf("agenda: failed to parse bundled dataset: %v", err)
		return nil
	}
	return events
}
