package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Snehagupta00/TrueGrit/models"
	"github.com/Snehagupta00/TrueGrit/repository"
)

// ProfileController serves the per-owner profile singleton.
type ProfileController struct {
	repo *repository.ProfileRepository
}

// NewProfileController creates and returns a new ProfileController.
func NewProfileController(repo *repository.ProfileRepository) *ProfileController {
	return &ProfileController{repo: repo}
}

// UpdateProfileRequest is the payload for PUT /api/profile. Weight and height
// are optional; omitting one clears it, since the update is wholesale.
type UpdateProfileRequest struct {
	Weight       *float64 `json:"weight"`
	Height       *float64 `json:"height"`
	FitnessLevel string   `json:"fitnessLevel"`
}

// Validate ensures request correctness.
func (r UpdateProfileRequest) Validate() error {
	if r.Weight != nil && *r.Weight <= 0 {
		return errors.New("weight must be > 0")
	}
	if r.Height != nil && *r.Height <= 0 {
		return errors.New("height must be > 0")
	}
	switch r.FitnessLevel {
	case "", models.FitnessBeginner, models.FitnessIntermediate, models.FitnessAdvanced:
	default:
		return errors.New("fitnessLevel must be one of beginner, intermediate, advanced")
	}
	return nil
}

// Get handles GET /api/profile, creating an empty profile on first access.
func (c *ProfileController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	profile, err := c.repo.GetOrCreate(r.Context(), id.OwnerID)
	if err != nil {
		storeError(w, "get profile", err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// Update handles PUT /api/profile as an upsert keyed on the owner id.
func (c *ProfileController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := c.repo.Upsert(r.Context(), id.OwnerID, req.Weight, req.Height, req.FitnessLevel)
	if err != nil {
		storeError(w, "update profile", err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}
