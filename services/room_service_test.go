package services

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/osociohoteleiro/praiabela/models"
)

func decodeArray(t *testing.T, raw []byte) []string {
	t.Helper()
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode array column %q: %v", raw, err)
	}
	return out
}

func TestRoomArrayRoundTrip(t *testing.T) {
	svc := NewRoomService(newTestDB(t))

	amenities := []string{"Wi-Fi", "TV", "Ar-condicionado"}
	room := models.Room{
		Name:        "Suíte Master",
		Description: "Vista para o mar",
		Capacity:    2,
		Size:        "20m²",
		Price:       450,
		Amenities:   models.JSONArray(amenities),
		ImageURLs:   models.JSONArray(nil),
		IsActive:    true,
	}
	if err := svc.Create(&room); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.GetByID(room.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	gotAmenities := decodeArray(t, got.Amenities)
	if len(gotAmenities) != len(amenities) {
		t.Fatalf("amenities length = %d, want %d", len(gotAmenities), len(amenities))
	}
	for i, want := range amenities {
		if gotAmenities[i] != want {
			t.Errorf("amenities[%d] = %q, want %q", i, gotAmenities[i], want)
		}
	}

	// nil input must still decode as an empty array, never null
	if urls := decodeArray(t, got.ImageURLs); urls == nil || len(urls) != 0 {
		t.Errorf("image_urls = %v, want empty array", urls)
	}
}

func TestRoomPublicListingFiltersInactive(t *testing.T) {
	svc := NewRoomService(newTestDB(t))

	active := models.Room{Name: "Visível", Description: "d", Amenities: models.JSONArray(nil), ImageURLs: models.JSONArray(nil), IsActive: true}
	hidden := models.Room{Name: "Oculto", Description: "d", Amenities: models.JSONArray(nil), ImageURLs: models.JSONArray(nil), IsActive: false}
	for _, r := range []*models.Room{&active, &hidden} {
		if err := svc.Create(r); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	public, err := svc.ListPublic()
	if err != nil {
		t.Fatalf("list public: %v", err)
	}
	if len(public) != 1 || public[0].ID != active.ID {
		t.Fatalf("public listing = %d rooms, want only the active one", len(public))
	}

	all, err := svc.ListAll()
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("admin listing = %d rooms, want 2", len(all))
	}
}

func TestRoomUpdateIsFullReplace(t *testing.T) {
	svc := NewRoomService(newTestDB(t))

	room := models.Room{
		Name:        "Chalé",
		Description: "d",
		Size:        "20m²",
		Amenities:   models.JSONArray([]string{"TV"}),
		ImageURLs:   models.JSONArray(nil),
		IsActive:    true,
	}
	if err := svc.Create(&room); err != nil {
		t.Fatalf("create: %v", err)
	}
	stored, err := svc.GetByID(room.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	// Size omitted in replacement payload: it must be cleared, not kept.
	updated, err := svc.Update(room.ID, models.Room{
		Name:        "Chalé",
		Description: "d",
		Amenities:   models.JSONArray(nil),
		ImageURLs:   models.JSONArray(nil),
		IsActive:    true,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Size != "" {
		t.Errorf("size = %q after replace without size, want empty", updated.Size)
	}
	if a := decodeArray(t, updated.Amenities); len(a) != 0 {
		t.Errorf("amenities = %v after replace, want empty", a)
	}
	if !updated.CreatedAt.Equal(stored.CreatedAt) {
		t.Errorf("created_at changed on update")
	}
}

func TestRoomUpdateUnknownID(t *testing.T) {
	svc := NewRoomService(newTestDB(t))
	if _, err := svc.Update(99, models.Room{Name: "x", Description: "y"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update unknown id: err = %v, want ErrNotFound", err)
	}
}

func TestRoomDelete(t *testing.T) {
	svc := NewRoomService(newTestDB(t))

	room := models.Room{Name: "n", Description: "d", Amenities: models.JSONArray(nil), ImageURLs: models.JSONArray(nil), IsActive: true}
	if err := svc.Create(&room); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(room.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetByID(room.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get after delete: err = %v, want ErrNotFound", err)
	}
	// deleting again is an error, not a silent no-op
	if err := svc.Delete(room.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: err = %v, want ErrNotFound", err)
	}
}
