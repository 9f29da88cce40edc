package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/Snehagupta00/TrueGrit/config"
	"github.com/Snehagupta00/TrueGrit/database"
	"github.com/Snehagupta00/TrueGrit/models"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "router-test-secret"

func setupRouter(t *testing.T) http.Handler {
	t.Helper()
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	cfg := config.Config{
		Port:           "0",
		JWTSecret:      testSecret,
		AllowedOrigins: []string{"http://localhost:5173"},
	}
	return SetupRouter(cfg, db)
}

func bearerFor(t *testing.T, ownerID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   ownerID,
		"name":  "Router Test",
		"email": "router@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return "Bearer " + signed
}

func do(t *testing.T, h http.Handler, method, target, body, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRouterRejectsAnonymousAPIAccess(t *testing.T) {
	h := setupRouter(t)

	for _, target := range []string{"/api/activity", "/api/nutrition", "/api/goals", "/api/user", "/api/profile", "/api/recommendations"} {
		w := do(t, h, http.MethodGet, target, "", "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401 got %d", target, w.Code)
		}
		if !strings.Contains(w.Body.String(), `"error":"Unauthorized"`) {
			t.Fatalf("%s: unexpected body %q", target, w.Body.String())
		}
	}
}

func TestRouterHealthzIsPublic(t *testing.T) {
	h := setupRouter(t)
	w := do(t, h, http.MethodGet, "/healthz", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
}

func TestRouterMetricsIsPublic(t *testing.T) {
	h := setupRouter(t)
	w := do(t, h, http.MethodGet, "/metrics", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
}

func TestRouterGoalLifecycle(t *testing.T) {
	h := setupRouter(t)
	owner := bearerFor(t, "user-1")
	stranger := bearerFor(t, "user-2")

	w := do(t, h, http.MethodPost, "/api/goals", `{"type":"steps","target":8000}`, owner)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201 got %d: %s", w.Code, w.Body.String())
	}
	var goal models.Goal
	if err := json.Unmarshal(w.Body.Bytes(), &goal); err != nil {
		t.Fatalf("decode: %v", err)
	}

	path := "/api/goals/" + strconv.FormatUint(uint64(goal.ID), 10)

	// A stranger cannot update or delete it, and learns nothing.
	if w := do(t, h, http.MethodPut, path, `{"type":"steps","target":1}`, stranger); w.Code != http.StatusNotFound {
		t.Fatalf("foreign update: expected 404 got %d", w.Code)
	}
	if w := do(t, h, http.MethodDelete, path, "", stranger); w.Code != http.StatusNotFound {
		t.Fatalf("foreign delete: expected 404 got %d", w.Code)
	}

	// The owner can.
	w2 := do(t, h, http.MethodPut, path, `{"type":"weight-loss","target":5}`, owner)
	if w2.Code != http.StatusOK {
		t.Fatalf("update: expected 200 got %d: %s", w2.Code, w2.Body.String())
	}
	var updated models.Goal
	if err := json.Unmarshal(w2.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if updated.Type != models.GoalWeightLoss || updated.Target != 5 {
		t.Fatalf("unexpected updated goal %+v", updated)
	}

	if w := do(t, h, http.MethodDelete, path, "", owner); w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200 got %d", w.Code)
	}
	if w := do(t, h, http.MethodDelete, path, "", owner); w.Code != http.StatusNotFound {
		t.Fatalf("second delete: expected 404 got %d", w.Code)
	}
}

func TestRouterUserCreatedFromClaims(t *testing.T) {
	h := setupRouter(t)

	w := do(t, h, http.MethodGet, "/api/user", "", bearerFor(t, "user-7"))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}
	var user models.User
	if err := json.Unmarshal(w.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if user.OwnerID != "user-7" || user.Name != "Router Test" || user.Email != "router@example.com" {
		t.Fatalf("user not built from token claims: %+v", user)
	}
}
