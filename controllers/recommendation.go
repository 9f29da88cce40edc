package controllers

import (
	"errors"
	"net/http"

	"github.com/Snehagupta00/TrueGrit/recommend"
	"github.com/Snehagupta00/TrueGrit/repository"
)

// RecommendationController exposes the recommendation deriver over HTTP. It
// reads the caller's profile and nutrition history and runs the pure derive
// step; it writes nothing.
type RecommendationController struct {
	profiles  *repository.ProfileRepository
	nutrition *repository.NutritionRepository
}

// NewRecommendationController creates and returns a new RecommendationController.
func NewRecommendationController(profiles *repository.ProfileRepository, nutrition *repository.NutritionRepository) *RecommendationController {
	return &RecommendationController{profiles: profiles, nutrition: nutrition}
}

// RecommendationsResponse is the body for GET /api/recommendations. When the
// profile is missing weight, height, or fitness level, ProfileComplete is
// false and the bundle fields are omitted so the client can prompt the user
// to complete their profile.
type RecommendationsResponse struct {
	ProfileComplete bool                             `json:"profileComplete"`
	Diet            *recommend.DietRecommendation    `json:"diet,omitempty"`
	Workout         *recommend.WorkoutRecommendation `json:"workout,omitempty"`
	Stats           *recommend.Stats                 `json:"stats,omitempty"`
}

// Get handles GET /api/recommendations.
func (c *RecommendationController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	profile, err := c.profiles.Get(r.Context(), id.OwnerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// No profile yet: same outcome as an incomplete one.
			writeJSON(w, http.StatusOK, RecommendationsResponse{ProfileComplete: false})
			return
		}
		storeError(w, "get profile for recommendations", err)
		return
	}

	entries, err := c.nutrition.ListByOwner(r.Context(), id.OwnerID)
	if err != nil {
		storeError(w, "list nutrition entries for recommendations", err)
		return
	}

	bundle, ok := recommend.Derive(*profile, entries)
	if !ok {
		writeJSON(w, http.StatusOK, RecommendationsResponse{ProfileComplete: false})
		return
	}

	writeJSON(w, http.StatusOK, RecommendationsResponse{
		ProfileComplete: true,
		Diet:            &bundle.Diet,
		Workout:         &bundle.Workout,
		Stats:           &bundle.Stats,
	})
}
