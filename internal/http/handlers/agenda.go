package handlers

import (
	"io"
	"log"
	"net/http"
	"sort"
	"strings"

	"github.com/gorilla/mux"

	"agenda-api/internal/models"
	"agenda-api/internal/security"
	"agenda-api/internal/store"
)

type AgendaHandler struct {
	store *store.Store
	auth  *security.Authorizer
}

func NewAgendaHandler(store *store.Store, auth *security.Authorizer) *AgendaHandler {
	return &AgendaHandler{
		store: store,
		auth:  auth,
	}
}

// List returns every upcoming event, sorted ascending by date.
func (h *AgendaHandler) List(w http.ResponseWriter, r *http.Request) {
	events := h.store.ReadEvents()
	sort.SliceStable(events, func(i, j int) bool {
		return strings.Compare(events[i].Date, events[j].Date) < 0
	})
	if events == nil {
		events = []models.Event{}
	}
	respondJSON(w, http.StatusOK, events)
}

// Create adds a new event. The id is caller-supplied or derived from the
// title and date; a colliding id is rejected, never overwritten.
func (h *AgendaHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !h.auth.Authorize(r) {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	patch, ok := decodeBody(w, r)
	if !ok {
		return
	}

	if patch.Title.Value == "" || patch.Date.Value == "" {
		respondError(w, http.StatusBadRequest, "Both `title` and `date` are required fields.")
		return
	}

	events := h.store.ReadEvents()

	id := patch.ID.Value
	if id == "" {
		id = models.BuildID(patch.Title.Value, patch.Date.Value)
	}
	for _, existing := range events {
		if existing.ID == id {
			respondError(w, http.StatusConflict, "Duplicated event id.")
			return
		}
	}

	event := patch.NewEvent(id)
	events = append(events, event)
	if err := h.store.WriteEvents(events); err != nil {
		log.Printf("agenda: failed to save new event %s: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to save events.")
		return
	}

	respondJSON(w, http.StatusCreated, event)
}

// Update merges a partial payload into an existing event. Optional fields
// follow the presence rules: an omitted key keeps the stored value, a blank
// one clears it.
func (h *AgendaHandler) Update(w http.ResponseWriter, r *http.Request) {
	if !h.auth.Authorize(r) {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id := mux.Vars(r)["id"]
	if id == "" {
		respondError(w, http.StatusBadRequest, "Missing event id.")
		return
	}

	patch, ok := decodeBody(w, r)
	if !ok {
		return
	}

	events := h.store.ReadEvents()
	index := -1
	for i, event := range events {
		if event.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		respondError(w, http.StatusNotFound, "Event not found.")
		return
	}

	if patch.Title.Value == "" || patch.Date.Value == "" {
		respondError(w, http.StatusBadRequest, "Both `title` and `date` must be provided.")
		return
	}

	updated := models.ApplyPatch(events[index], patch)
	events[index] = updated
	if err := h.store.WriteEvents(events); err != nil {
		log.Printf("agenda: failed to save updated event %s: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to save events.")
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

// Delete removes an event by id.
func (h *AgendaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.auth.Authorize(r) {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id := mux.Vars(r)["id"]
	if id == "" {
		respondError(w, http.StatusBadRequest, "Missing event id.")
		return
	}

	events := h.store.ReadEvents()
	next := make([]models.Event, 0, len(events))
	for _, event := range events {
		if event.ID != id {
			next = append(next, event)
		}
	}
	if len(next) == len(events) {
		respondError(w, http.StatusNotFound, "Event not found.")
		return
	}

	if err := h.store.WriteEvents(next); err != nil {
		log.Printf("agenda: failed to save events after deleting %s: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to save events.")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MissingID handles mutation requests that dropped the id path segment.
func (h *AgendaHandler) MissingID(w http.ResponseWriter, r *http.Request) {
	if !h.auth.Authorize(r) {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	respondError(w, http.StatusBadRequest, "Missing event id.")
}

func decodeBody(w http.ResponseWriter, r *http.Request) (models.EventPatch, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return models.EventPatch{}, false
	}
	patch, err := models.DecodePatch(body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return models.EventPatch{}, false
	}
	return patch, true
}
