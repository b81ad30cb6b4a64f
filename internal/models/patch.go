package models

import (
	"encoding/json"
	"strings"
)

// StringField is the tri-state decode of one payload field: absent
// (Present=false), explicitly blank (Present=true, Value=""), or a value.
// Updates must tell "key missing" apart from "key blank": a blank value
// clears the stored field, a missing key preserves it.
type StringField struct {
	Present bool
	Value   string
}

// GalleryField is the tri-state decode of the gallery payload field. The
// payload may carry either an array of strings or one delimited string.
type GalleryField struct {
	Present bool
	Items   []string
}

// EventPatch is the sanitized form of a raw create/update payload.
type EventPatch struct {
	ID          StringField
	Title       StringField
	Date        StringField
	Time        StringField
	Location    StringField
	Description StringField
	Image       StringField
	Gallery     GalleryField
}

// DecodePatch parses a raw JSON body into an EventPatch, recording per field
// whether the key was present at all. Non-string values (including null)
// sanitize to the empty string.
func DecodePatch(body []byte) (EventPatch, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return EventPatch{}, err
	}

	var p EventPatch
	p.ID = stringField(raw, "id")
	p.Title = stringField(raw, "title")
	p.Date = stringField(raw, "date")
	p.Time = stringField(raw, "time")
	p.Location = stringField(raw, "location")
	p.Description = stringField(raw, "description")
	p.Image = stringField(raw, "image")

	if msg, ok := raw["gallery"]; ok {
		p.Gallery = GalleryField{Present: true, Items: sanitizeGallery(msg)}
	}
	return p, nil
}

func stringField(raw map[string]json.RawMessage, key string) StringField {
	msg, ok := raw[key]
	if !ok {
		return StringField{}
	}
	var s string
	if err := json.Unmarshal(msg, &s); err != nil {
		return StringField{Present: true}
	}
	return StringField{Present: true, Value: strings.TrimSpace(s)}
}

func sanitizeGallery(msg json.RawMessage) []string {
	var items []string
	var arr []json.RawMessage
	if err := json.Unmarshal(msg, &arr); err == nil {
		for _, el := range arr {
			var s string
			if json.Unmarshal(el, &s) != nil {
				continue
			}
			if s = strings.TrimSpace(s); s != "" {
				items = append(items, s)
			}
		}
		return items
	}

	var s string
	if err := json.Unmarshal(msg, &s); err != nil {
		return nil
	}
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '\n' || r == ',' }) {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}

// NewEvent builds a fresh event from the patch. The caller validates title
// and date and picks the id beforehand.
func (p EventPatch) NewEvent(id string) Event {
	e := Event{
		ID:          id,
		Title:       p.Title.Value,
		Date:        p.Date.Value,
		Time:        p.Time.Value,
		Location:    p.Location.Value,
		Description: p.Description.Value,
		Image:       p.Image.Value,
	}
	if len(p.Gallery.Items) > 0 {
		e.Gallery = append([]string(nil), p.Gallery.Items...)
	}
	return e
}

// ApplyPatch merges a patch into an existing event. Title and date always
// replace; the optional fields follow the presence rules: an absent key
// keeps the stored value, a present-but-blank key clears it. The id is
// never touched.
func ApplyPatch(current Event, p EventPatch) Event {
	updated := current
	updated.Title = p.Title.Value
	updated.Date = p.Date.Value

	applyString(&updated.Time, p.Time)
	applyString(&updated.Location, p.Location)
	applyString(&updated.Description, p.Description)
	applyString(&updated.Image, p.Image)

	if p.Gallery.Present {
		if len(p.Gallery.Items) > 0 {
			updated.Gallery = append([]string(nil), p.Gallery.Items...)
		} else {
			updated.Gallery = nil
		}
	}
	return updated
}

func applyString(dst *string, f StringField) {
	if f.Present {
		*dst = f.Value
	}
}
