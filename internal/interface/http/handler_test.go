package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxeliving/catalog-api/internal/application"
	"github.com/luxeliving/catalog-api/internal/domain/entity"
	"github.com/luxeliving/catalog-api/internal/infrastructure/memory"
	"github.com/luxeliving/catalog-api/internal/interface/middleware"
	"github.com/luxeliving/catalog-api/pkg/helpers"
	"github.com/luxeliving/catalog-api/pkg/validation"
)

type fixture struct {
	router *gin.Engine
	store  *memory.Store
	jwt    *helpers.JWTManager
}

// newFixture builds a router with the same route shape as the served API,
// backed by the in-memory store.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store := memory.NewStore()
	jwt := helpers.NewJWTManager("handler-test-secret", time.Hour)

	catalog := application.NewCatalogService(store.Properties(), application.NewFallbackCatalog(), nil, time.Minute, logger)
	savedSvc := application.NewSavedPropertyService(store.Properties(), store.Saved(), logger)
	authSvc := application.NewAuthService(store.Users(), jwt, logger)

	ph := NewPropertyHandler(catalog, logger)
	sh := NewSavedPropertyHandler(savedSvc, logger)
	ah := NewAuthHandler(authSvc, logger)

	r := gin.New()
	api := r.Group("/api")

	props := api.Group("/properties")
	props.GET("", ph.List)
	props.GET("/featured", ph.Featured)
	auth := props.Group("")
	auth.Use(middleware.Auth(jwt))
	auth.POST("/:id/save", sh.Save)
	auth.GET("/saved", sh.List)
	auth.DELETE("/saved/:id", sh.Remove)
	props.GET("/:id", ph.Get)

	api.POST("/auth/register", ah.Register)
	api.POST("/auth/login", ah.Login)

	return &fixture{router: r, store: store, jwt: jwt}
}

func (f *fixture) seed(t *testing.T) {
	t.Helper()
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	listings := []*entity.Property{
		{ID: "villa-a", Title: "Villa A", Price: 1200000, Type: entity.TypeVilla, Bedrooms: 4, Featured: true},
		{ID: "villa-b", Title: "Villa B", Price: 2500000, Type: entity.TypeVilla, Bedrooms: 5},
		{ID: "villa-c", Title: "Villa C", Price: 1900000, Type: entity.TypeVilla, Bedrooms: 6, Featured: true},
		{ID: "villa-cheap", Title: "Budget Villa", Price: 400000, Type: entity.TypeVilla, Bedrooms: 2},
		{ID: "house-a", Title: "House A", Price: 1500000, Type: entity.TypeHouse, Bedrooms: 3, Featured: true},
	}
	for i, p := range listings {
		p.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, f.store.Properties().Create(context.Background(), p))
	}
}

func (f *fixture) do(t *testing.T, method, path, token string, payload any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	var decoded map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func (f *fixture) registerUser(t *testing.T, email string) string {
	t.Helper()
	w, body := f.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestListProperties(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	w, body := f.do(t, http.MethodGet, "/api/properties?type=VILLA&minPrice=1000000&page=1&limit=2", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["count"])
	assert.Equal(t, float64(3), body["total"])
	assert.Equal(t, float64(1), body["page"])
	assert.Equal(t, float64(2), body["pages"])
	assert.Equal(t, "live", body["source"])

	items := body["data"].([]any)
	first := items[0].(map[string]any)
	assert.Equal(t, "villa-c", first["id"])
}

func TestListPropertiesDefaults(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	w, body := f.do(t, http.MethodGet, "/api/properties?page=abc&limit=-5&minPrice=free", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(5), body["total"])
	assert.Equal(t, float64(1), body["page"])
	assert.Equal(t, float64(5), body["pages"]) // limit floored to 1
}

func TestListPropertiesFallsBack(t *testing.T) {
	f := newFixture(t)
	f.store.SetErr(errors.New("store down"))

	w, body := f.do(t, http.MethodGet, "/api/properties", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "fallback", body["source"])
	assert.Equal(t, float64(5), body["total"])
}

func TestFeaturedProperties(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	w, body := f.do(t, http.MethodGet, "/api/properties/featured", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(3), body["count"])
	assert.Equal(t, "live", body["source"])

	f.store.SetErr(errors.New("store down"))
	_, body = f.do(t, http.MethodGet, "/api/properties/featured", "", nil)
	assert.Equal(t, "fallback", body["source"])
	assert.Equal(t, float64(3), body["count"])
}

func TestGetProperty(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	w, body := f.do(t, http.MethodGet, "/api/properties/villa-a", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, "Villa A", data["title"])
	assert.Equal(t, "live", body["source"])
}

func TestGetPropertyNotFound(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	w, body := f.do(t, http.MethodGet, "/api/properties/no-such-listing", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Property not found: no-such-listing", body["error"])
}

func TestGetPropertySampleIDWhileDegraded(t *testing.T) {
	f := newFixture(t)
	f.store.SetErr(errors.New("store down"))

	w, body := f.do(t, http.MethodGet, "/api/properties/luxury-villa-1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fallback", body["source"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "Luxury Oceanfront Villa", data["title"])
}

func TestSaveRequiresAuth(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	for _, req := range []struct{ method, path string }{
		{http.MethodPost, "/api/properties/villa-a/save"},
		{http.MethodGet, "/api/properties/saved"},
		{http.MethodDelete, "/api/properties/saved/some-id"},
	} {
		w, body := f.do(t, req.method, req.path, "", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code, req.path)
		assert.Equal(t, "Please authenticate", body["error"], req.path)
	}

	w, _ := f.do(t, http.MethodPost, "/api/properties/villa-a/save", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSaveFlow(t *testing.T) {
	f := newFixture(t)
	f.seed(t)
	token := f.registerUser(t, "buyer@example.com")

	// save with notes
	w, body := f.do(t, http.MethodPost, "/api/properties/villa-a/save", token, gin.H{"notes": "tour saturday"})
	require.Equal(t, http.StatusOK, w.Code)
	saved := body["data"].(map[string]any)
	assert.Equal(t, "tour saturday", saved["notes"])
	prop := saved["property"].(map[string]any)
	assert.Equal(t, "Villa A", prop["title"])

	// duplicate save is a conflict
	w, body = f.do(t, http.MethodPost, "/api/properties/villa-a/save", token, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Property already saved", body["error"])

	// list
	w, body = f.do(t, http.MethodGet, "/api/properties/saved", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["count"])

	// remove
	savedID := saved["id"].(string)
	w, body = f.do(t, http.MethodDelete, "/api/properties/saved/"+savedID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Property removed from saved", body["message"])

	// remove again is NotFound
	w, body = f.do(t, http.MethodDelete, "/api/properties/saved/"+savedID, token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Saved property not found", body["error"])
}

func TestSaveUnknownProperty(t *testing.T) {
	f := newFixture(t)
	f.seed(t)
	token := f.registerUser(t, "buyer@example.com")

	w, body := f.do(t, http.MethodPost, "/api/properties/no-such-listing/save", token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Property not found", body["error"])
}

func TestSaveWhileStoreDown(t *testing.T) {
	f := newFixture(t)
	f.seed(t)
	token := f.registerUser(t, "buyer@example.com")
	f.store.SetErr(errors.New("write timeout"))

	w, body := f.do(t, http.MethodPost, "/api/properties/villa-a/save", token, nil)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, false, body["success"])
}

func TestSavedListsAreIsolatedPerUser(t *testing.T) {
	f := newFixture(t)
	f.seed(t)
	alice := f.registerUser(t, "alice@example.com")
	bob := f.registerUser(t, "bob@example.com")

	w, body := f.do(t, http.MethodPost, "/api/properties/villa-a/save", alice, nil)
	require.Equal(t, http.StatusOK, w.Code)
	savedID := body["data"].(map[string]any)["id"].(string)

	_, body = f.do(t, http.MethodGet, "/api/properties/saved", bob, nil)
	assert.Equal(t, float64(0), body["count"])

	// bob cannot remove alice's bookmark
	w, _ = f.do(t, http.MethodDelete, "/api/properties/saved/"+savedID, bob, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	_, body = f.do(t, http.MethodGet, "/api/properties/saved", alice, nil)
	assert.Equal(t, float64(1), body["count"])
}

func TestRegisterValidation(t *testing.T) {
	f := newFixture(t)

	w, body := f.do(t, http.MethodPost, "/api/auth/register", "", gin.H{"email": "not-an-email", "password": "123"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])

	w, _ = f.do(t, http.MethodPost, "/api/auth/register", "", gin.H{"password": "password123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newFixture(t)
	f.registerUser(t, "dup@example.com")

	w, body := f.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    "dup@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email already registered", body["error"])
}

func TestLoginEndpoint(t *testing.T) {
	f := newFixture(t)
	f.registerUser(t, "login@example.com")

	w, body := f.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "login@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Login successful", body["message"])
	assert.NotEmpty(t, body["token"])

	w, body = f.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "login@example.com",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", body["error"])
}
