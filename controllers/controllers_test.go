package controllers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/Snehagupta00/TrueGrit/database"
	"github.com/Snehagupta00/TrueGrit/middleware"

	"github.com/go-chi/chi/v5"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func authedRequest(method, target, body, ownerID string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	identity := &middleware.Identity{OwnerID: ownerID, Name: "Test User", Email: "test@example.com"}
	return req.WithContext(middleware.WithIdentity(req.Context(), identity))
}

// withURLParam injects a chi route parameter for handlers exercised outside
// a router.
func withURLParam(req *http.Request, key string, value uint) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, strconv.FormatUint(uint64(value), 10))
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
