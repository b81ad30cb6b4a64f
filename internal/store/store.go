package store

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"agenda-api/internal/models"
)

// DefaultCandidates are the agenda document locations probed in order. The
// first pair covers running from the project root, the second pair covers
// running from inside a build output directory.
var DefaultCandidates = []string{
	filepath.Join("src", "data", "agenda.json"),
	filepath.Join("data", "agenda.json"),
	filepath.Join("..", "src", "data", "agenda.json"),
	filepath.Join("..", "data", "agenda.json"),
}

// Store persists the event collection as a single JSON document. Reads and
// writes are independent whole-file operations with no locking; concurrent
// writers race and the last one wins.
type Store struct {
	candidates []string
	fallback   func() []models.Event
	now        func() time.Time
}

// Options configure a Store. Zero values select the default candidate list,
// the bundled fallback dataset and the wall clock.
type Options struct {
	Candidates []string
	Fallback   func() []models.Event
	Now        func() time.Time
}

func New(opts Options) *Store {
	s := &Store{
		candidates: opts.Candidates,
		fallback:   opts.Fallback,
		now:        opts.Now,
	}
	if len(s.candidates) == 0 {
		s.candidates = DefaultCandidates
	}
	if s.fallback == nil {
		s.fallback = DefaultFallback
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// resolvePath returns the first candidate that exists on disk.
func (s *Store) resolvePath() (string, bool) {
	for _, path := range s.candidates {
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// ReadEvents loads the current collection and drops every event whose
// date/time has passed. A missing document yields the bundled fallback; an
// empty or whitespace-only document yields an empty collection. When the
// purge removed something from a real file, the trimmed collection is
// written back opportunistically; a failure there is logged and otherwise
// ignored.
func (s *Store) ReadEvents() []models.Event {
	events, path, fromFile := s.load()

	kept, removed := purgeExpired(events, s.now())
	if removed > 0 && fromFile {
		if err := s.writeTo(path, kept); err != nil {
			log.Printf("agenda: failed to write back purged events to %s: %v", path, err)
		}
	}
	return kept
}

func (s *Store) load() (events []models.Event, path string, fromFile bool) {
	path, ok := s.resolvePath()
	if !ok {
		return s.fallback(), "", false
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("agenda: failed to read %s: %v", path, err)
		return nil, path, true
	}
	if strings.TrimSpace(string(raw)) == "" {
		return nil, path, true
	}
	if err := json.Unmarshal(raw, &events); err != nil {
		log.Printf("agenda: failed to parse %s: %v", path, err)
		return nil, path, true
	}
	return events, path, true
}

// WriteEvents replaces the whole stored collection. The target is the first
// existing candidate, or the primary candidate when none exists yet; missing
// parent directories are created.
func (s *Store) WriteEvents(events []models.Event) error {
	path, ok := s.resolvePath()
	if !ok {
		path = s.candidates[0]
	}
	return s.writeTo(path, events)
}

func (s *Store) writeTo(path string, events []models.Event) error {
	if events == nil {
		events = []models.Event{}
	}
	raw, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

// GetEventByID returns the event with the given id from the post-purge
// collection, or nil when the id is empty or unknown.
func (s *Store) GetEventByID(id string) *models.Event {
	if id == "" {
		return nil
	}
	for _, event := range s.ReadEvents() {
		if event.ID == id {
			e := event
			return &e
		}
	}
	return nil
}
