package models

import (
	"reflect"
	"testing"
)

func Test_DecodePatch_DistinguishesAbsentFromBlank(t *testing.T) {
	patch, err := DecodePatch([]byte(`{"title":"Concert","date":"2030-01-01","location":"  "}`))
	if err != nil {
		t.Fatalf("failed to decode patch: %v", err)
	}

	if patch.Time.Present {
		t.Errorf("time was not in the payload but decoded as present")
	}
	if !patch.Location.Present {
		t.Errorf("location was in the payload but decoded as absent")
	}
	if patch.Location.Value != "" {
		t.Errorf("whitespace-only location should sanitize to empty, got %q", patch.Location.Value)
	}
}

func Test_DecodePatch_NullCountsAsPresent(t *testing.T) {
	patch, err := DecodePatch([]byte(`{"title":"Concert","date":"2030-01-01","image":null}`))
	if err != nil {
		t.Fatalf("failed to decode patch: %v", err)
	}
	if !patch.Image.Present {
		t.Errorf("null image should count as present")
	}
	if patch.Image.Value != "" {
		t.Errorf("null image should sanitize to empty, got %q", patch.Image.Value)
	}
}

func Test_DecodePatch_RejectsInvalidJSON(t *testing.T) {
	if _, err := DecodePatch([]byte(`{"title":`)); err == nil {
		t.Errorf("expected an error for truncated JSON")
	}
}

func Test_DecodePatch_GalleryFromArray(t *testing.T) {
	patch, err := DecodePatch([]byte(`{"gallery":[" a.jpg ","","b.jpg",42]}`))
	if err != nil {
		t.Fatalf("failed to decode patch: %v", err)
	}
	want := []string{"a.jpg", "b.jpg"}
	if !reflect.DeepEqual(patch.Gallery.Items, want) {
		t.Errorf("gallery items mismatch:\nwant %v\ngot  %v", want, patch.Gallery.Items)
	}
}

func Test_DecodePatch_GalleryFromDelimitedString(t *testing.T) {
	patch, err := DecodePatch([]byte(`{"gallery":"a.jpg, b.jpg\nc.jpg,,"}`))
	if err != nil {
		t.Fatalf("failed to decode patch: %v", err)
	}
	want := []string{"a.jpg", "b.jpg", "c.jpg"}
	if !reflect.DeepEqual(patch.Gallery.Items, want) {
		t.Errorf("gallery items mismatch:\nwant %v\ngot  %v", want, patch.Gallery.Items)
	}
}

func Test_DecodePatch_GalleryEmptyArrayIsPresentAndEmpty(t *testing.T) {
	patch, err := DecodePatch([]byte(`{"gallery":[]}`))
	if err != nil {
		t.Fatalf("failed to decode patch: %v", err)
	}
	if !patch.Gallery.Present {
		t.Errorf("empty gallery array should count as present")
	}
	if len(patch.Gallery.Items) != 0 {
		t.Errorf("empty gallery array should sanitize to no items, got %v", patch.Gallery.Items)
	}
}

func Test_ApplyPatch_OmittedFieldsArePreserved(t *testing.T) {
	current := Event{
		ID:       "concert-2030-01-01",
		Title:    "Concert",
		Date:     "2030-01-01",
		Location: "Hall A",
		Gallery:  []string{"a.jpg"},
	}
	patch, err := DecodePatch([]byte(`{"title":"Concert","date":"2030-01-01"}`))
	if err != nil {
		t.Fatalf("failed to decode patch: %v", err)
	}

	updated := ApplyPatch(current, patch)
	if updated.Location != "Hall A" {
		t.Errorf("omitted location should be preserved, got %q", updated.Location)
	}
	if !reflect.DeepEqual(updated.Gallery, []string{"a.jpg"}) {
		t.Errorf("omitted gallery should be preserved, got %v", updated.Gallery)
	}
}

func Test_ApplyPatch_BlankFieldClears(t *testing.T) {
	current := Event{
		ID:       "concert-2030-01-01",
		Title:    "Concert",
		Date:     "2030-01-01",
		Location: "Hall A",
		Gallery:  []string{"a.jpg"},
	}
	patch, err := DecodePatch([]byte(`{"title":"Concert","date":"2030-01-01","location":"","gallery":[]}`))
	if err != nil {
		t.Fatalf("failed to decode patch: %v", err)
	}

	updated := ApplyPatch(current, patch)
	if updated.Location != "" {
		t.Errorf("blank location should clear the field, got %q", updated.Location)
	}
	if updated.Gallery != nil {
		t.Errorf("empty gallery should clear the field, got %v", updated.Gallery)
	}
}

func Test_ApplyPatch_ReplacesValuesAndKeepsID(t *testing.T) {
	current := Event{ID: "concert-2030-01-01", Title: "Concert", Date: "2030-01-01"}
	patch, err := DecodePatch([]byte(`{"id":"other","title":" Gala ","date":"2031-02-02","time":"20:00"}`))
	if err != nil {
		t.Fatalf("failed to decode patch: %v", err)
	}

	updated := ApplyPatch(current, patch)
	if updated.ID != "concert-2030-01-01" {
		t.Errorf("id must never change on update, got %q", updated.ID)
	}
	if updated.Title != "Gala" {
		t.Errorf("title should be replaced trimmed, got %q", updated.Title)
	}
	if updated.Date != "2031-02-02" {
		t.Errorf("date should be replaced, got %q", updated.Date)
	}
	if updated.Time != "20:00" {
		t.Errorf("time should be set, got %q", updated.Time)
	}
}

func Test_NewEvent_DropsBlankOptionals(t *testing.T) {
	patch, err := DecodePatch([]byte(`{"title":"Concert","date":"2030-01-01","location":" ","gallery":""}`))
	if err != nil {
		t.Fatalf("failed to decode patch: %v", err)
	}

	event := patch.NewEvent("concert-2030-01-01")
	if event.Location != "" {
		t.Errorf("blank location should not be stored, got %q", event.Location)
	}
	if event.Gallery != nil {
		t.Errorf("empty gallery should not be stored, got %v", event.Gallery)
	}
}

func Test_BuildID_SlugsTitleAndDate(t *testing.T) {
	cases := []struct {
		title, date, want string
	}{
		{"Concert", "2030-01-01", "concert-2030-01-01"},
		{"  Año Nuevo!  ", "2030-12-31", "a-o-nuevo-2030-12-31"},
		{"Fiesta de Verano", "2030-07-15", "fiesta-de-verano-2030-07-15"},
		{"***", "2030-01-01", "evento-2030-01-01"},
	}
	for _, c := range cases {
		if got := BuildID(c.title, c.date); got != c.want {
			t.Errorf("BuildID(%q, %q) = %q, want %q", c.title, c.date, got, c.want)
		}
	}
}
