package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Snehagupta00/TrueGrit/models"
	"github.com/Snehagupta00/TrueGrit/repository"
)

// NutritionController serves the append-only nutrition log.
type NutritionController struct {
	repo *repository.NutritionRepository
}

// NewNutritionController creates and returns a new NutritionController.
func NewNutritionController(repo *repository.NutritionRepository) *NutritionController {
	return &NutritionController{repo: repo}
}

// CreateNutritionRequest is the payload for POST /api/nutrition.
type CreateNutritionRequest struct {
	Food     string  `json:"food"`
	Calories float64 `json:"calories"`
	Carbs    float64 `json:"carbs"`
	Protein  float64 `json:"protein"`
	Fats     float64 `json:"fats"`
}

// Validate ensures request correctness. Macros may be zero but not negative.
func (r CreateNutritionRequest) Validate() error {
	if strings.TrimSpace(r.Food) == "" {
		return errors.New("food is required")
	}
	if r.Calories < 0 || r.Carbs < 0 || r.Protein < 0 || r.Fats < 0 {
		return errors.New("calories, carbs, protein and fats must be >= 0")
	}
	return nil
}

// Create handles POST /api/nutrition.
func (c *NutritionController) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var req CreateNutritionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	entry := models.NutritionEntry{
		OwnerID:  id.OwnerID,
		Food:     req.Food,
		Calories: req.Calories,
		Carbs:    req.Carbs,
		Protein:  req.Protein,
		Fats:     req.Fats,
	}
	if err := c.repo.Create(r.Context(), &entry); err != nil {
		storeError(w, "create nutrition entry", err)
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

// List handles GET /api/nutrition.
func (c *NutritionController) List(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	entries, err := c.repo.ListByOwner(r.Context(), id.OwnerID)
	if err != nil {
		storeError(w, "list nutrition entries", err)
		return
	}
	if entries == nil {
		entries = []models.NutritionEntry{}
	}

	writeJSON(w, http.StatusOK, entries)
}
