package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/draftwise/draftwise/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.EmailTemplate{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := newTestDB(t)
	r := gin.New()

	categoryHandler := NewCategoryHandler(db)
	templateHandler := NewTemplateHandler(db)
	statsHandler := NewStatsHandler(db)

	api := r.Group("/api")
	api.GET("/stats", statsHandler.GetStats)
	api.POST("/categories", categoryHandler.Create)
	api.GET("/categories", categoryHandler.List)
	api.GET("/categories/:id", categoryHandler.GetByID)
	api.PUT("/categories/:id", categoryHandler.Update)
	api.DELETE("/categories/:id", categoryHandler.Delete)
	api.POST("/templates", templateHandler.Create)
	api.GET("/templates", templateHandler.List)
	api.GET("/templates/:id", templateHandler.GetByID)
	api.PUT("/templates/:id", templateHandler.Update)
	api.DELETE("/templates/:id", templateHandler.Delete)

	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCategoryCRUDOverHTTP(t *testing.T) {
	r, _ := newTestRouter(t)

	// Create
	w := doJSON(t, r, "POST", "/api/categories", gin.H{"name": "Work", "description": "Work emails"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, expected 201: %s", w.Code, w.Body.String())
	}
	var created models.Category
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode create response: %v", err)
	}
	if created.ID == 0 || created.Name != "Work" {
		t.Errorf("create response = %+v", created)
	}

	// Duplicate name conflicts
	w = doJSON(t, r, "POST", "/api/categories", gin.H{"name": "Work"})
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate create status = %d, expected 409", w.Code)
	}

	// Get
	w = doJSON(t, r, "GET", fmt.Sprintf("/api/categories/%d", created.ID), nil)
	if w.Code != http.StatusOK {
		t.Errorf("get status = %d, expected 200", w.Code)
	}

	// Update
	w = doJSON(t, r, "PUT", fmt.Sprintf("/api/categories/%d", created.ID), gin.H{"name": "Personal", "description": ""})
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, expected 200: %s", w.Code, w.Body.String())
	}
	var updated models.Category
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("failed to decode update response: %v", err)
	}
	if updated.Name != "Personal" {
		t.Errorf("updated name = %q, expected Personal", updated.Name)
	}

	// Delete, then 404
	w = doJSON(t, r, "DELETE", fmt.Sprintf("/api/categories/%d", created.ID), nil)
	if w.Code != http.StatusOK {
		t.Errorf("delete status = %d, expected 200", w.Code)
	}
	w = doJSON(t, r, "GET", fmt.Sprintf("/api/categories/%d", created.ID), nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d, expected 404", w.Code)
	}
}

func TestCategoryNotFoundAndValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, tc := range []struct {
		method string
		path   string
		body   interface{}
		want   int
	}{
		{"GET", "/api/categories/9999", nil, http.StatusNotFound},
		{"PUT", "/api/categories/9999", gin.H{"name": "X"}, http.StatusNotFound},
		{"DELETE", "/api/categories/9999", nil, http.StatusNotFound},
		{"GET", "/api/categories/abc", nil, http.StatusBadRequest},
		{"GET", "/api/categories?skip=abc", nil, http.StatusBadRequest},
		{"GET", "/api/categories?limit=xyz", nil, http.StatusBadRequest},
		{"POST", "/api/categories", gin.H{"description": "missing name"}, http.StatusBadRequest},
	} {
		w := doJSON(t, r, tc.method, tc.path, tc.body)
		if w.Code != tc.want {
			t.Errorf("%s %s status = %d, expected %d", tc.method, tc.path, w.Code, tc.want)
		}
	}
}

func TestTemplateCRUDOverHTTP(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, "POST", "/api/templates", gin.H{
		"name":      "Follow-up",
		"subject":   "Following up",
		"content":   "Hi...",
		"tags":      "work,follow-up",
		"is_public": true,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, expected 201: %s", w.Code, w.Body.String())
	}
	var created models.EmailTemplate
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode create response: %v", err)
	}

	// Same name is allowed for templates
	w = doJSON(t, r, "POST", "/api/templates", gin.H{"name": "Follow-up", "subject": "s", "content": "c"})
	if w.Code != http.StatusCreated {
		t.Errorf("duplicate-name create status = %d, expected 201", w.Code)
	}

	w = doJSON(t, r, "PUT", fmt.Sprintf("/api/templates/%d", created.ID), gin.H{
		"name":    "Renamed",
		"subject": "New subject",
		"content": "New content",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, expected 200: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, "DELETE", fmt.Sprintf("/api/templates/%d", created.ID), nil)
	if w.Code != http.StatusOK {
		t.Errorf("delete status = %d, expected 200", w.Code)
	}
	w = doJSON(t, r, "GET", fmt.Sprintf("/api/templates/%d", created.ID), nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d, expected 404", w.Code)
	}

	w = doJSON(t, r, "POST", "/api/templates", gin.H{"name": "incomplete"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("create without subject/content status = %d, expected 400", w.Code)
	}
}

func TestTemplateListFiltersOverHTTP(t *testing.T) {
	r, db := newTestRouter(t)

	catID := uint(1)
	seed := []models.EmailTemplate{
		{Name: "t1", Subject: "s", Content: "c", CategoryID: &catID, Tags: "sales,intro", IsPublic: true},
		{Name: "t2", Subject: "s", Content: "c", Tags: "support"},
		{Name: "t3", Subject: "s", Content: "c", CategoryID: &catID, Tags: "sales"},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	decode := func(w *httptest.ResponseRecorder) []models.EmailTemplate {
		t.Helper()
		if w.Code != http.StatusOK {
			t.Fatalf("list status = %d: %s", w.Code, w.Body.String())
		}
		var list []models.EmailTemplate
		if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
			t.Fatalf("failed to decode list: %v", err)
		}
		return list
	}

	if got := decode(doJSON(t, r, "GET", "/api/templates?category_id=1", nil)); len(got) != 2 {
		t.Errorf("category_id filter returned %d, expected 2", len(got))
	}
	if got := decode(doJSON(t, r, "GET", "/api/templates?tag=sales", nil)); len(got) != 2 {
		t.Errorf("tag filter returned %d, expected 2", len(got))
	}
	if got := decode(doJSON(t, r, "GET", "/api/templates?is_public=true", nil)); len(got) != 1 {
		t.Errorf("is_public filter returned %d, expected 1", len(got))
	}
	if got := decode(doJSON(t, r, "GET", "/api/templates?category_id=1&tag=sales&is_public=true", nil)); len(got) != 1 {
		t.Errorf("combined filters returned %d, expected 1", len(got))
	}
	if got := decode(doJSON(t, r, "GET", "/api/templates?skip=1&limit=1", nil)); len(got) != 1 {
		t.Errorf("skip/limit returned %d, expected 1", len(got))
	}

	for _, path := range []string{
		"/api/templates?category_id=abc",
		"/api/templates?is_public=maybe",
		"/api/templates?skip=abc",
		"/api/templates?limit=xyz",
	} {
		if w := doJSON(t, r, "GET", path, nil); w.Code != http.StatusBadRequest {
			t.Errorf("GET %s status = %d, expected 400", path, w.Code)
		}
	}

	// ParseBool accepts 0/1 spellings as well.
	if got := decode(doJSON(t, r, "GET", "/api/templates?is_public=1", nil)); len(got) != 1 {
		t.Errorf("is_public=1 filter returned %d, expected 1", len(got))
	}
}

func TestStatsOverHTTP(t *testing.T) {
	r, db := newTestRouter(t)

	if err := db.Create(&models.Category{Name: "A"}).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if err := db.Create(&models.EmailTemplate{Name: "t", Subject: "s", Content: "c", IsPublic: true}).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	w := doJSON(t, r, "GET", "/api/stats", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("stats status = %d: %s", w.Code, w.Body.String())
	}

	var stats struct {
		Categories      int64 `json:"categories"`
		Templates       int64 `json:"templates"`
		PublicTemplates int64 `json:"public_templates"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("failed to decode stats: %v", err)
	}
	if stats.Categories != 1 || stats.Templates != 1 || stats.PublicTemplates != 1 {
		t.Errorf("stats = %+v, expected 1/1/1", stats)
	}
}
