package jurisdiction

import (
	"net/http"

	"github.com/CommunityWatch/CW-Backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes(verifier middleware.TokenVerifier) http.Handler {
	r := chi.NewRouter()

	// Public routes
	r.Get("/resolve", ResolveHandler)
	r.Get("/gis-index", GisIndexHandler)
	r.Get("/info", InfoHandler)
	r.Get("/search", SearchHandler)
	r.Post("/feedback", FeedbackHandler)

	// Editing filing info requires a logged-in account
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(verifier))
		r.Post("/info", UpdateInfoHandler)
		r.Post("/defer", UpdateDeferHandler)
	})

	return r
}
