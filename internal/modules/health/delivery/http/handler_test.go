package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	health "smat.com/campusapi/internal/modules/health/service"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := health.NewHealthService("2.3.4", time.Now, func(context.Context) error { return nil }, nil, zap.NewNop())
	h := NewHealthHandler(svc)

	r := gin.New()
	r.GET("/api/health", h.Check)
	r.GET("/api/health/info", h.Info)
	return r
}

func TestCheck(t *testing.T) {
	w := httptest.NewRecorder()
	setupRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "Backend is Active!" {
		t.Errorf("unexpected body %q", w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("expected text/plain, got %s", ct)
	}
}

func TestInfo(t *testing.T) {
	w := httptest.NewRecorder()
	setupRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health/info", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["status"] != "Active" || body["version"] != "2.3.4" {
		t.Errorf("unexpected body %v", body)
	}
	if body["database"] != "up" || body["redis"] != "disabled" {
		t.Errorf("unexpected component states %v", body)
	}
	if _, err := time.Parse("2006-01-02T15:04:05", body["timestamp"]); err != nil {
		t.Errorf("timestamp not ISO local date-time: %v", err)
	}
}
