package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Snehagupta00/TrueGrit/models"
	"github.com/Snehagupta00/TrueGrit/repository"

	"github.com/go-chi/chi/v5"
)

// GoalController serves the goal collection, the only mutable one.
type GoalController struct {
	repo *repository.GoalRepository
}

// NewGoalController creates and returns a new GoalController.
func NewGoalController(repo *repository.GoalRepository) *GoalController {
	return &GoalController{repo: repo}
}

// GoalRequest is the payload for POST /api/goals.
type GoalRequest struct {
	Type   string  `json:"type"`
	Target float64 `json:"target"`
}

// Validate ensures request correctness.
func (r GoalRequest) Validate() error {
	if err := validateGoalType(r.Type); err != nil {
		return err
	}
	if r.Target <= 0 {
		return errors.New("target must be > 0")
	}
	return nil
}

// UpdateGoalRequest is the payload for PUT /api/goals/{id}. Fields are
// optional; only the supplied ones are overwritten.
type UpdateGoalRequest struct {
	Type   *string  `json:"type"`
	Target *float64 `json:"target"`
}

// Validate ensures request correctness.
func (r UpdateGoalRequest) Validate() error {
	if r.Type == nil && r.Target == nil {
		return errors.New("at least one of type, target is required")
	}
	if r.Type != nil {
		if err := validateGoalType(*r.Type); err != nil {
			return err
		}
	}
	if r.Target != nil && *r.Target <= 0 {
		return errors.New("target must be > 0")
	}
	return nil
}

func validateGoalType(goalType string) error {
	switch goalType {
	case models.GoalWeightLoss, models.GoalMuscleGain, models.GoalSteps:
		return nil
	default:
		return errors.New("type must be one of weight-loss, muscle-gain, steps")
	}
}

// Create handles POST /api/goals.
func (c *GoalController) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var req GoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	goal := models.Goal{
		OwnerID: id.OwnerID,
		Type:    req.Type,
		Target:  req.Target,
	}
	if err := c.repo.Create(r.Context(), &goal); err != nil {
		storeError(w, "create goal", err)
		return
	}

	writeJSON(w, http.StatusCreated, goal)
}

// List handles GET /api/goals.
func (c *GoalController) List(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	goals, err := c.repo.ListByOwner(r.Context(), id.OwnerID)
	if err != nil {
		storeError(w, "list goals", err)
		return
	}
	if goals == nil {
		goals = []models.Goal{}
	}

	writeJSON(w, http.StatusOK, goals)
}

// Update handles PUT /api/goals/{id}. A goal owned by another user is
// reported as 404, never as the other user's data.
func (c *GoalController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	goalID, ok := goalIDParam(w, r)
	if !ok {
		return
	}

	var req UpdateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Target != nil {
		updates["target"] = *req.Target
	}

	goal, err := c.repo.Update(r.Context(), id.OwnerID, goalID, updates)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Goal not found")
			return
		}
		storeError(w, "update goal", err)
		return
	}

	writeJSON(w, http.StatusOK, goal)
}

// Delete handles DELETE /api/goals/{id}.
func (c *GoalController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	goalID, ok := goalIDParam(w, r)
	if !ok {
		return
	}

	if err := c.repo.Delete(r.Context(), id.OwnerID, goalID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Goal not found")
			return
		}
		storeError(w, "delete goal", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Goal deleted"})
}

func goalIDParam(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "id")
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid goal ID")
		return 0, false
	}
	return uint(parsed), true
}
