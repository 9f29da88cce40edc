package controllers

import (
	"net/http"

	"github.com/Snehagupta00/TrueGrit/repository"
)

// UserController serves the per-owner user singleton.
type UserController struct {
	repo *repository.UserRepository
}

// NewUserController creates and returns a new UserController.
func NewUserController(repo *repository.UserRepository) *UserController {
	return &UserController{repo: repo}
}

// Get handles GET /api/user. On first access the record is created from the
// identity provider's claims; afterwards the stored record is returned
// unmodified.
func (c *UserController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	user, err := c.repo.GetOrCreate(r.Context(), id.OwnerID, id.Name, id.Email)
	if err != nil {
		storeError(w, "get user", err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
