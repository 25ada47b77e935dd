package tracker

import (
	"net/http"

	"github.com/CommunityWatch/CW-Backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes(verifier middleware.TokenVerifier) http.Handler {
	r := chi.NewRouter()

	// Public routes
	r.Get("/records", ListRecordsHandler)
	r.Get("/stats", StatsHandler)

	// Submitting a record requires a logged-in account
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(verifier))
		r.Post("/records", CreateRecordHandler)
	})

	return r
}
