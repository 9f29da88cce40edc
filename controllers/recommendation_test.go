package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Snehagupta00/TrueGrit/repository"
)

func TestRecommendationsIncompleteProfile(t *testing.T) {
	db := setupTestDB(t)
	profiles := repository.NewProfileRepository(db)
	nutrition := repository.NewNutritionRepository(db)
	c := NewRecommendationController(profiles, nutrition)

	// No profile stored at all.
	w := httptest.NewRecorder()
	c.Get(w, authedRequest(http.MethodGet, "/api/recommendations", "", "user-1"))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	var resp RecommendationsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ProfileComplete || resp.Diet != nil || resp.Workout != nil {
		t.Fatalf("expected incomplete-profile response, got %+v", resp)
	}

	// A profile missing the fitness level is still incomplete.
	pc := NewProfileController(profiles)
	pw := httptest.NewRecorder()
	pc.Update(pw, authedRequest(http.MethodPut, "/api/profile", `{"weight":70,"height":175}`, "user-1"))
	if pw.Code != http.StatusOK {
		t.Fatalf("profile update failed: %d", pw.Code)
	}

	w2 := httptest.NewRecorder()
	c.Get(w2, authedRequest(http.MethodGet, "/api/recommendations", "", "user-1"))
	var resp2 RecommendationsResponse
	if err := json.Unmarshal(w2.Body.Bytes(), &resp2); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp2.ProfileComplete {
		t.Fatalf("profile without fitness level must be incomplete: %+v", resp2)
	}
}

func TestRecommendationsBundle(t *testing.T) {
	db := setupTestDB(t)
	profiles := repository.NewProfileRepository(db)
	nutritionRepo := repository.NewNutritionRepository(db)
	c := NewRecommendationController(profiles, nutritionRepo)

	pc := NewProfileController(profiles)
	pw := httptest.NewRecorder()
	pc.Update(pw, authedRequest(http.MethodPut, "/api/profile",
		`{"weight":90,"height":170,"fitnessLevel":"intermediate"}`, "user-1"))
	if pw.Code != http.StatusOK {
		t.Fatalf("profile update failed: %d", pw.Code)
	}

	nc := NewNutritionController(nutritionRepo)
	for _, body := range []string{
		`{"food":"a","calories":200,"carbs":10,"protein":10,"fats":5}`,
		`{"food":"b","calories":300,"carbs":20,"protein":20,"fats":10}`,
		`{"food":"c","calories":400,"carbs":30,"protein":30,"fats":15}`,
	} {
		nw := httptest.NewRecorder()
		nc.Create(nw, authedRequest(http.MethodPost, "/api/nutrition", body, "user-1"))
		if nw.Code != http.StatusCreated {
			t.Fatalf("nutrition create failed: %d", nw.Code)
		}
	}

	w := httptest.NewRecorder()
	c.Get(w, authedRequest(http.MethodGet, "/api/recommendations", "", "user-1"))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}
	var resp RecommendationsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.ProfileComplete {
		t.Fatalf("expected complete profile: %s", w.Body.String())
	}
	// 90kg at 170cm is BMI 31.1: weight-management diet.
	if resp.Diet == nil || resp.Diet.Goal != "Weight management" {
		t.Fatalf("unexpected diet: %+v", resp.Diet)
	}
	if resp.Workout == nil || resp.Workout.Frequency != "4-5 days per week" {
		t.Fatalf("unexpected workout: %+v", resp.Workout)
	}
	if resp.Stats == nil || resp.Stats.BMI != 31.1 {
		t.Fatalf("unexpected stats: %+v", resp.Stats)
	}
	if resp.Stats.AvgCalories == nil || *resp.Stats.AvgCalories != 300 {
		t.Fatalf("unexpected avg calories: %+v", resp.Stats.AvgCalories)
	}
}

// Another user's nutrition history must not bleed into the caller's averages.
func TestRecommendationsScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	profiles := repository.NewProfileRepository(db)
	nutritionRepo := repository.NewNutritionRepository(db)
	c := NewRecommendationController(profiles, nutritionRepo)

	pc := NewProfileController(profiles)
	pw := httptest.NewRecorder()
	pc.Update(pw, authedRequest(http.MethodPut, "/api/profile",
		`{"weight":70,"height":175,"fitnessLevel":"beginner"}`, "user-1"))
	if pw.Code != http.StatusOK {
		t.Fatalf("profile update failed: %d", pw.Code)
	}

	nc := NewNutritionController(nutritionRepo)
	nw := httptest.NewRecorder()
	nc.Create(nw, authedRequest(http.MethodPost, "/api/nutrition",
		`{"food":"someone else's pizza","calories":1000,"carbs":100,"protein":30,"fats":40}`, "user-2"))
	if nw.Code != http.StatusCreated {
		t.Fatalf("nutrition create failed: %d", nw.Code)
	}

	w := httptest.NewRecorder()
	c.Get(w, authedRequest(http.MethodGet, "/api/recommendations", "", "user-1"))
	var resp RecommendationsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.ProfileComplete {
		t.Fatalf("expected complete profile")
	}
	if resp.Stats.AvgCalories != nil {
		t.Fatalf("averages must be unavailable when the caller has no entries, got %v", *resp.Stats.AvgCalories)
	}
}
