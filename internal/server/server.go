// internal/server/server.go

package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"misinfotracker/internal/config"
	"misinfotracker/internal/server/handlers"
	"misinfotracker/internal/view"
)

// Server represents the HTTP server
type Server struct {
	server *http.Server
	router *chi.Mux
}

// NewServer creates a new HTTP server
func NewServer(
	cfg config.Config,
	dash handlers.Dashboard,
	page *view.PageRenderer,
	logger *zap.Logger,
) *Server {
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(requestLogger(logger))
	router.Use(middleware.Recoverer)

	// Create handler dependencies
	dashboardHandler := handlers.NewDashboardHandler(dash, page, logger)
	apiHandler := handlers.NewAPIHandler(dash, logger)
	liveHandler := handlers.NewLiveHandler(dash, handlers.NewWebSocketConfig(cfg.WebSocket), logger)

	// Routes
	router.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.Get("/", dashboardHandler.Page)

		// Chart images
		r.Route("/charts", func(r chi.Router) {
			r.Get("/timeseries.svg", dashboardHandler.TimeSeriesChart)
			r.Get("/distribution.svg", dashboardHandler.DistributionChart)
			r.Get("/heatmap.svg", dashboardHandler.HeatmapChart)
		})

		r.Route("/api", func(r chi.Router) {
			// CORS configuration
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins:   cfg.Server.CorsOrigins,
				AllowedMethods:   []string{"GET", "OPTIONS"},
				AllowedHeaders:   []string{"Accept", "Content-Type"},
				ExposedHeaders:   []string{"Link"},
				AllowCredentials: false,
				MaxAge:           300,
			}))

			// Health check
			r.Get("/health", apiHandler.Health)

			// API version
			r.Route("/v1", func(r chi.Router) {
				r.Get("/domains", apiHandler.GetDomains)
				r.Get("/records", apiHandler.GetRecords)
				r.Get("/charts", apiHandler.GetCharts)
			})
		})
	})

	// WebSocket endpoint for live filter updates
	router.Method(http.MethodGet, "/ws/dashboard", liveHandler)

	// Create HTTP server
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return &Server{
		server: httpServer,
		router: router,
	}
}

// Handler returns the routed handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the listen address
func (s *Server) Addr() string {
	return s.server.Addr
}

// ListenAndServe starts the HTTP server
func (s *Server) ListenAndServe() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
