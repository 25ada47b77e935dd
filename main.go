package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/CommunityWatch/CW-Backend/internal/auth"
	"github.com/CommunityWatch/CW-Backend/internal/db"
	"github.com/CommunityWatch/CW-Backend/internal/jurisdiction"
	"github.com/CommunityWatch/CW-Backend/internal/middleware"
	"github.com/CommunityWatch/CW-Backend/internal/tracker"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	response := "Server is up!"
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, response)
}

func main() {
	_ = godotenv.Load(".env.local")
	db.Connect()

	port := os.Getenv("PORT")
	if port == "" {
		port = "5050"
	}

	auth.Init()
	jurisdiction.Init()
	tracker.Init(jurisdiction.Service.Store)

	verifier := auth.Verifier()

	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)
	r.Get("/", RootHandler)

	r.Mount("/auth", auth.SetupRoutes())
	r.Mount("/jurisdictions", jurisdiction.SetupRoutes(verifier))
	r.Mount("/tracker", tracker.SetupRoutes(verifier))

	fmt.Println("Server listening on port :" + port + "...")

	http.ListenAndServe("0.0.0.0:"+port, r)
}
