package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Snehagupta00/TrueGrit/models"
	"github.com/Snehagupta00/TrueGrit/repository"
)

// ActivityController serves the append-only exercise log.
type ActivityController struct {
	repo *repository.ActivityRepository
}

// NewActivityController creates and returns a new ActivityController.
func NewActivityController(repo *repository.ActivityRepository) *ActivityController {
	return &ActivityController{repo: repo}
}

// CreateActivityRequest is the payload for POST /api/activity. Any owner-like
// field in the body is ignored; the record is stamped with the caller's id.
type CreateActivityRequest struct {
	Type      string  `json:"type"`
	Duration  float64 `json:"duration"`
	Intensity string  `json:"intensity"`
	Calories  float64 `json:"calories"`
}

// Validate ensures request correctness.
func (r CreateActivityRequest) Validate() error {
	if strings.TrimSpace(r.Type) == "" {
		return errors.New("type is required")
	}
	if r.Duration <= 0 {
		return errors.New("duration must be > 0")
	}
	switch r.Intensity {
	case models.IntensityLow, models.IntensityMedium, models.IntensityHigh:
	default:
		return errors.New("intensity must be one of low, medium, high")
	}
	if r.Calories <= 0 {
		return errors.New("calories must be > 0")
	}
	return nil
}

// Create handles POST /api/activity.
func (c *ActivityController) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var req CreateActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	activity := models.Activity{
		OwnerID:   id.OwnerID,
		Type:      req.Type,
		Duration:  req.Duration,
		Intensity: req.Intensity,
		Calories:  req.Calories,
	}
	if err := c.repo.Create(r.Context(), &activity); err != nil {
		storeError(w, "create activity", err)
		return
	}

	writeJSON(w, http.StatusCreated, activity)
}

// List handles GET /api/activity.
func (c *ActivityController) List(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	activities, err := c.repo.ListByOwner(r.Context(), id.OwnerID)
	if err != nil {
		storeError(w, "list activities", err)
		return
	}
	if activities == nil {
		activities = []models.Activity{}
	}

	writeJSON(w, http.StatusOK, activities)
}
