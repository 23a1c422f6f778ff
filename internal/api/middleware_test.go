package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ignite/email-validator/internal/storage"
)

// panicRouter builds a router in the given environment with one extra route
// whose handler panics with the provided value.
func panicRouter(t *testing.T, environment string, panicValue interface{}) http.Handler {
	t.Helper()
	cfg := testConfig(t)
	cfg.Server.Environment = environment
	h := NewHandlers(&storage.Stores{}, cfg.API.Prefix())
	router := SetupRoutes(h, cfg)
	router.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		panic(panicValue)
	})
	return router
}

func TestRecovererDevelopmentIncludesStack(t *testing.T) {
	router := panicRouter(t, "development", "something broke")

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	assert.NoError(t, unmarshalBody(rec, &body))
	assert.Equal(t, "INTERNAL_SERVER_ERROR", body["error"])
	assert.NotEmpty(t, body["message"])
	assert.Contains(t, body["stack"], "goroutine")
}

func TestRecovererProductionOmitsStack(t *testing.T) {
	router := panicRouter(t, "production", "something broke")

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	assert.NoError(t, unmarshalBody(rec, &body))
	assert.Equal(t, "INTERNAL_SERVER_ERROR", body["error"])
	assert.NotContains(t, body, "stack")

	// Internal detail must never leak to the client
	assert.NotContains(t, rec.Body.String(), "something broke")
}

func TestRecovererKeepsDeclaredStatus(t *testing.T) {
	router := panicRouter(t, "production", ValidationError("Email is required"))

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	assert.NoError(t, unmarshalBody(rec, &body))
	assert.Equal(t, "VALIDATION_ERROR", body["error"])
	assert.Equal(t, "Email is required", body["message"])
}

func TestRecovererDoesNotAffectOtherRequests(t *testing.T) {
	router := panicRouter(t, "production", "boom")

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// A failure is terminal for its own request only
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func unmarshalBody(rec *httptest.ResponseRecorder, v interface{}) error {
	return json.Unmarshal(rec.Body.Bytes(), v)
}
