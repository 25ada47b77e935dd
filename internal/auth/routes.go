package auth

import (
	"net/http"

	"github.com/CommunityWatch/CW-Backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()

	// Creation and login are rate limited per client IP to slow credential
	// stuffing and bulk account creation.
	r.Use(middleware.RateLimitMiddleware(middleware.DefaultAuthRate()))

	r.Post("/accounts/standard", CreateStandardAccountHandler)
	r.Post("/accounts/code", CreateCodeAccountHandler)
	r.Post("/login/standard", LoginStandardAccountHandler)
	r.Post("/login/code", LoginCodeAccountHandler)
	r.Get("/questions", QuestionsHandler)

	return r
}
