package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

// Options configures the REST server.
type Options struct {
	Port        int
	Version     string
	CORSOrigins []string
	// MCP is mounted at /mcp when set.
	MCP http.Handler
}

// Server represents the REST API server
type Server struct {
	port    int
	server  *http.Server
	handler *Handler
	log     *logrus.Entry
}

// NewServer creates a new REST API server
func NewServer(tracker Tracker, opts Options, log *logrus.Entry) *Server {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	log = log.WithField("component", "rest")
	handler := NewHandler(tracker, opts.Version, log)

	router := mux.NewRouter()

	// Apply middleware
	router.Use(RecoveryMiddleware(log))
	router.Use(LoggingMiddleware(log))

	// Health check
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// Standings page
	router.HandleFunc("/", handler.StandingsPage).Methods("GET")

	// API v1 routes
	api := router.PathPrefix("/api/v1").Subrouter()

	// Matchup
	api.HandleFunc("/matchup", handler.GetMatchup).Methods("GET")
	api.HandleFunc("/matchup/top", handler.GetTopPerformers).Methods("GET")
	api.HandleFunc("/matchup/teams/{team:[0-9]+}", handler.GetTeam).Methods("GET")
	api.HandleFunc("/matchup/refresh", handler.RefreshMatchup).Methods("POST")

	// MCP tools
	if opts.MCP != nil {
		router.PathPrefix("/mcp").Handler(opts.MCP)
	}

	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Mcp-Session-Id"},
		MaxAge:         300,
	})

	return &Server{
		port:    opts.Port,
		handler: handler,
		log:     log,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           c.Handler(router),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start starts the REST API server
func (s *Server) Start() error {
	s.log.WithField("port", s.port).Info("listening")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
