package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/osociohoteleiro/praiabela/controllers"
	"github.com/osociohoteleiro/praiabela/middleware"
	"github.com/osociohoteleiro/praiabela/models"
	"github.com/osociohoteleiro/praiabela/services"
)

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
	token  string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Admin{},
		&models.SiteInfo{},
		&models.Room{},
		&models.Package{},
		&models.Promotion{},
		&models.Experience{},
		&models.GalleryImage{},
		&models.Media{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	hash, err := services.HashPassword("admin123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if err := db.Create(&models.Admin{Email: "admin@praiabela.com", Password: hash, Name: "Administrador"}).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	authSvc := services.NewAuthService(db, "test-secret")
	mediaSvc := services.NewMediaService(db)
	ctrl := Controllers{
		Auth:        controllers.NewAuthController(authSvc),
		Rooms:       controllers.NewRoomController(services.NewRoomService(db)),
		Packages:    controllers.NewPackageController(services.NewPackageService(db)),
		Promotions:  controllers.NewPromotionController(services.NewPromotionService(db)),
		Experiences: controllers.NewExperienceController(services.NewExperienceService(db)),
		Gallery:     controllers.NewGalleryController(services.NewGalleryService(db)),
		SiteInfo:    controllers.NewSiteInfoController(services.NewSiteInfoService(db)),
		Media:       controllers.NewMediaController(mediaSvc),
		Upload:      controllers.NewUploadController(nil, mediaSvc),
	}

	router := SetupRouter(ctrl, authSvc, middleware.NewRateLimiter(time.Minute, 10000))

	token, _, err := authSvc.Login("admin@praiabela.com", "admin123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	return &testServer{router: router, db: db, token: token}
}

func (ts *testServer) request(t *testing.T, method, path string, body any, authed bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+ts.token)
	}

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	w := ts.request(t, http.MethodGet, "/api/health", nil, false)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t)
	w := ts.request(t, http.MethodGet, "/api/nope", nil, false)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	var body map[string]string
	decodeJSON(t, w, &body)
	if body["code"] != "NOT_FOUND" {
		t.Errorf("code = %q, want NOT_FOUND", body["code"])
	}
}

func TestLoginEndpoint(t *testing.T) {
	ts := newTestServer(t)

	w := ts.request(t, http.MethodPost, "/api/auth/login",
		map[string]string{"email": "admin@praiabela.com", "password": "admin123"}, false)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var body struct {
		Token string `json:"token"`
		Admin struct {
			Email string `json:"email"`
		} `json:"admin"`
	}
	decodeJSON(t, w, &body)
	if body.Token == "" || body.Admin.Email != "admin@praiabela.com" {
		t.Fatalf("unexpected login body: %s", w.Body.String())
	}

	// wrong password and unknown email return identical bodies
	bad := ts.request(t, http.MethodPost, "/api/auth/login",
		map[string]string{"email": "admin@praiabela.com", "password": "nope"}, false)
	ghost := ts.request(t, http.MethodPost, "/api/auth/login",
		map[string]string{"email": "ghost@praiabela.com", "password": "admin123"}, false)
	if bad.Code != http.StatusUnauthorized || ghost.Code != http.StatusUnauthorized {
		t.Fatalf("statuses = %d/%d, want 401/401", bad.Code, ghost.Code)
	}
	if bad.Body.String() != ghost.Body.String() {
		t.Errorf("login failure bodies differ: %s vs %s", bad.Body.String(), ghost.Body.String())
	}
}

func TestMutationsRequireAuth(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/rooms"},
		{http.MethodPut, "/api/rooms/1"},
		{http.MethodDelete, "/api/rooms/1"},
		{http.MethodGet, "/api/rooms/admin/all"},
		{http.MethodPost, "/api/packages"},
		{http.MethodPut, "/api/site-info"},
		{http.MethodGet, "/api/media"},
		{http.MethodPut, "/api/gallery/reorder/batch"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := ts.request(t, tt.method, tt.path, map[string]any{}, false)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", w.Code)
			}
		})
	}
}

func TestPackageCreateAndPublicListing(t *testing.T) {
	ts := newTestServer(t)

	payload := map[string]any{
		"name":        "Pacote Relax",
		"description": "Descanse e renove suas energias",
		"price":       1800.00,
		"inclusions":  []string{"3 diárias", "Café da manhã"},
		"is_featured": false,
	}
	w := ts.request(t, http.MethodPost, "/api/packages", payload, true)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}
	var created struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, w, &created)
	if created.ID == 0 {
		t.Fatal("created package has no id")
	}

	list := ts.request(t, http.MethodGet, "/api/packages", nil, false)
	if list.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", list.Code)
	}
	var packages []struct {
		ID         uint     `json:"id"`
		Price      float64  `json:"price"`
		Inclusions []string `json:"inclusions"`
	}
	decodeJSON(t, list, &packages)

	found := false
	for _, p := range packages {
		if p.ID == created.ID {
			found = true
			if p.Price != 1800.00 {
				t.Errorf("price = %v, want 1800.00", p.Price)
			}
			if len(p.Inclusions) != 2 || p.Inclusions[1] != "Café da manhã" {
				t.Errorf("inclusions = %v, want the 2 original strings", p.Inclusions)
			}
		}
	}
	if !found {
		t.Fatalf("created package %d missing from public listing", created.ID)
	}
}

func TestPackageCreateValidation(t *testing.T) {
	ts := newTestServer(t)

	w := ts.request(t, http.MethodPost, "/api/packages",
		map[string]any{"name": "Sem inclusões", "description": "d", "price": 100.0}, true)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", w.Code, w.Body.String())
	}
	var body map[string]string
	decodeJSON(t, w, &body)
	if body["code"] != "VALIDATION_ERROR" {
		t.Errorf("code = %q, want VALIDATION_ERROR", body["code"])
	}
}

func TestExperienceReorderEndpoint(t *testing.T) {
	ts := newTestServer(t)
	expSvc := services.NewExperienceService(ts.db)

	ids := make([]uint, 3)
	for i := range ids {
		exp := models.Experience{
			Title:        fmt.Sprintf("Experiência %d", i+1),
			Description:  "d",
			ImageURL:     "https://cdn.example.com/exp.jpg",
			DisplayOrder: i,
			IsActive:     true,
		}
		if err := expSvc.Create(&exp); err != nil {
			t.Fatalf("seed experience: %v", err)
		}
		ids[i] = exp.ID
	}

	payload := map[string]any{"items": []map[string]any{
		{"id": ids[2], "display_order": 0},
		{"id": ids[0], "display_order": 1},
	}}
	w := ts.request(t, http.MethodPut, "/api/experiences/reorder/batch", payload, true)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	list := ts.request(t, http.MethodGet, "/api/experiences", nil, false)
	var experiences []struct {
		ID uint `json:"id"`
	}
	decodeJSON(t, list, &experiences)

	pos := map[uint]int{}
	for i, e := range experiences {
		pos[e.ID] = i
	}
	if pos[ids[2]] >= pos[ids[0]] {
		t.Fatalf("id %d (order 0) listed after id %d (order 1): %v", ids[2], ids[0], pos)
	}
}

func TestDeleteAbsentRoomIs404(t *testing.T) {
	ts := newTestServer(t)
	w := ts.request(t, http.MethodDelete, "/api/rooms/999", nil, true)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404: %s", w.Code, w.Body.String())
	}
}

func TestUploadWithoutStorageConfigured(t *testing.T) {
	ts := newTestServer(t)
	w := ts.request(t, http.MethodDelete, "/api/upload/images/1-a.jpg", nil, true)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500: %s", w.Code, w.Body.String())
	}
	var body map[string]string
	decodeJSON(t, w, &body)
	if body["code"] != "STORAGE_FAILURE" {
		t.Errorf("code = %q, want STORAGE_FAILURE", body["code"])
	}
}
