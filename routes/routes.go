package routes

import (
	"net/http"

	"github.com/Snehagupta00/TrueGrit/config"
	"github.com/Snehagupta00/TrueGrit/controllers"
	"github.com/Snehagupta00/TrueGrit/middleware"
	"github.com/Snehagupta00/TrueGrit/observability"
	"github.com/Snehagupta00/TrueGrit/repository"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// SetupRouter wires repositories, controllers and middleware into the router.
func SetupRouter(cfg config.Config, db *gorm.DB) *chi.Mux {
	activities := controllers.NewActivityController(repository.NewActivityRepository(db))
	nutritionRepo := repository.NewNutritionRepository(db)
	nutrition := controllers.NewNutritionController(nutritionRepo)
	goals := controllers.NewGoalController(repository.NewGoalRepository(db))
	profileRepo := repository.NewProfileRepository(db)
	profiles := controllers.NewProfileController(profileRepo)
	users := controllers.NewUserController(repository.NewUserRepository(db))
	recommendations := controllers.NewRecommendationController(profileRepo, nutritionRepo)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(observability.Middleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", healthz)
	r.Handle("/metrics", promhttp.Handler())

	// Every resource route sits behind the identity middleware: no verified
	// caller, no store access.
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Authenticator(cfg.JWTSecret, cfg.JWTIssuer))

		r.Post("/activity", activities.Create)
		r.Get("/activity", activities.List)

		r.Post("/nutrition", nutrition.Create)
		r.Get("/nutrition", nutrition.List)

		r.Post("/goals", goals.Create)
		r.Get("/goals", goals.List)
		r.Put("/goals/{id}", goals.Update)
		r.Delete("/goals/{id}", goals.Delete)

		r.Get("/user", users.Get)

		r.Get("/profile", profiles.Get)
		r.Put("/profile", profiles.Update)

		r.Get("/recommendations", recommendations.Get)
	})

	return r
}

func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
