package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"votesvc/internal/delivery/http/controllers"

	_ "votesvc/docs"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(candidateController *controllers.CandidateController, healthController *controllers.HealthController) *http.ServeMux {
	mux := http.NewServeMux()

	// Candidates
	mux.HandleFunc("GET /candidates", candidateController.List)

	// Health
	mux.HandleFunc("GET /healthz", healthController.Liveness)
	mux.HandleFunc("GET /readyz", healthController.Readiness)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
