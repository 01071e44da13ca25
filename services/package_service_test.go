package services

import (
	"testing"

	"github.com/osociohoteleiro/praiabela/models"
)

func TestPackageFeaturedSortsFirst(t *testing.T) {
	svc := NewPackageService(newTestDB(t))

	plain := models.Package{
		Name:        "Pacote Relax",
		Description: "d",
		Price:       1800,
		Inclusions:  models.JSONArray([]string{"3 diárias"}),
		ImageURLs:   models.JSONArray(nil),
		IsActive:    true,
	}
	featured := models.Package{
		Name:        "Pacote Lua de Mel",
		Description: "d",
		Price:       2500,
		Inclusions:  models.JSONArray([]string{"5 diárias"}),
		ImageURLs:   models.JSONArray(nil),
		IsFeatured:  true,
		IsActive:    true,
	}
	for _, p := range []*models.Package{&plain, &featured} {
		if err := svc.Create(p); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	public, err := svc.ListPublic()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(public) != 2 {
		t.Fatalf("listing = %d packages, want 2", len(public))
	}
	if public[0].ID != featured.ID {
		t.Errorf("first package id = %d, want featured %d", public[0].ID, featured.ID)
	}
}

func TestMediaListFilters(t *testing.T) {
	svc := NewMediaService(newTestDB(t))

	rows := []models.Media{
		{Type: models.MediaTypeImage, Category: "gallery", URL: "u1", StorageKey: "images/1-a.jpg", Filename: "a.jpg"},
		{Type: models.MediaTypeImage, Category: "general", URL: "u2", StorageKey: "images/2-b.jpg", Filename: "b.jpg"},
		{Type: models.MediaTypeVideo, Category: "hero", URL: "u3", StorageKey: "videos/3-c.mp4", Filename: "c.mp4"},
	}
	for i := range rows {
		if err := svc.Create(&rows[i]); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	tests := []struct {
		name      string
		mediaType string
		category  string
		want      int
	}{
		{"no filter", "", "", 3},
		{"by type", "image", "", 2},
		{"by category", "", "hero", 1},
		{"type and category", "image", "gallery", 1},
		{"no match", "video", "gallery", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.List(tt.mediaType, tt.category)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if len(got) != tt.want {
				t.Fatalf("got %d rows, want %d", len(got), tt.want)
			}
		})
	}
}

func TestMediaDeleteByKey(t *testing.T) {
	svc := NewMediaService(newTestDB(t))

	row := models.Media{Type: models.MediaTypeImage, URL: "u", StorageKey: "images/9-z.jpg", Filename: "z.jpg"}
	if err := svc.Create(&row); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.DeleteByKey("images/9-z.jpg"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	rows, err := svc.List("", "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("media log still has %d rows after delete", len(rows))
	}
}
