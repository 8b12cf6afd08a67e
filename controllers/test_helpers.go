package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Burgamansi/CarmoPlusUltra/cache"
	"github.com/Burgamansi/CarmoPlusUltra/services"
	"github.com/Burgamansi/CarmoPlusUltra/store"
)

// SetupTestAPI builds an API over a fresh in-memory store and an
// initialized cache. Tests seed the store before calling this.
func SetupTestAPI(t *testing.T, s *store.MemoryStore) *API {
	t.Helper()

	c := cache.New()
	c.Initialize(context.Background(), s)
	return NewAPI(services.NewApp(s, c), nil, nil)
}

// SetupTestContext creates a test Gin context with a response recorder
func SetupTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	// CreateTestContext leaves Request nil; handlers that touch it
	// (e.g. via c.Request.Context()) need a placeholder. WithJSONBody
	// replaces it for tests that send a body.
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

// WithJSONBody attaches a JSON request body to the context.
func WithJSONBody(t *testing.T, c *gin.Context, method string, payload interface{}) {
	t.Helper()

	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Failed to marshal request body: %v", err)
	}
	c.Request = httptest.NewRequest(method, "/", bytes.NewBuffer(raw))
	c.Request.Header.Set("Content-Type", "application/json")
}

// DecodeResponse unmarshals the recorded body into out.
func DecodeResponse(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("Failed to decode response %q: %v", w.Body.String(), err)
	}
}
