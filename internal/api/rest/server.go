// Package rest serves the backend API: the team/venue table, stored
// events per venue, bracket simulation, and the latest validation
// report.
package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/roguetex/courtside/internal/registry"
	"github.com/roguetex/courtside/internal/store"
)

// Server is the REST API server.
type Server struct {
	port   string
	server *http.Server
}

// NewServer wires the router. db may be nil when no Postgres store is
// configured; the events endpoint then responds 503 and schedule
// simulation runs without busy-date lookups.
func NewServer(port string, reg *registry.Registry, db *store.Database, reportPath string) *Server {
	handler := NewHandler(reg, db, reportPath)

	router := mux.NewRouter()

	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)
	router.Use(CORSMiddleware)

	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/teams", handler.GetTeams).Methods("GET")
	api.HandleFunc("/events", handler.GetVenueEvents).Methods("GET")
	api.HandleFunc("/schedule", handler.GenerateSchedule).Methods("POST")
	api.HandleFunc("/validation", handler.GetValidationReport).Methods("GET")

	return &Server{
		port: port,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%s", port),
			Handler: router,
		},
	}
}

// Start starts the REST API server.
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
