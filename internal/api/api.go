// Package api exposes the HTTP JSON API over live search, monitors and their
// stored results.
package api

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/marketradar-pl/marketradar/internal/platform/models"
	"github.com/marketradar-pl/marketradar/internal/scraper"
	"github.com/rs/zerolog"
)

//go:generate mockery --name Scrapers --filename scrapers.go
//go:generate mockery --name Storage --filename storage.go
//go:generate mockery --name Commander --filename commander.go

// Scrapers resolves marketplace names to their scrapers.
type Scrapers interface {
	Get(name string) (scraper.Scraper, bool)
	Names() []string
}

// Storage persists monitors and everything their checks produce.
type Storage interface {
	CreateMonitor(ctx context.Context, monitor *models.Monitor) error
	GetMonitor(ctx context.Context, id int) (*models.Monitor, error)
	ListMonitors(ctx context.Context) ([]models.Monitor, error)
	UpdateMonitor(ctx context.Context, monitor *models.Monitor) error
	DeleteMonitor(ctx context.Context, id int) error
	ListListings(ctx context.Context, monitorID int) ([]models.Listing, error)
	ListNotifications(ctx context.Context, monitorID int) ([]models.Notification, error)
	ListSearchRuns(ctx context.Context, monitorID int) ([]models.SearchRun, error)
	SaveSearchRun(ctx context.Context, run *models.SearchRun) error
}

// Commander enqueues monitor check commands.
type Commander interface {
	SendCheckCommand(ctx context.Context, monitorID int) error
}

// Server exposes the HTTP API.
type Server struct {
	scrapers  Scrapers
	storage   Storage
	commander Commander
	logger    *zerolog.Logger
}

// NewServer returns new Server.
func NewServer(scrapers Scrapers, storage Storage, commander Commander, logger *zerolog.Logger) *Server {
	return &Server{
		scrapers:  scrapers,
		storage:   storage,
		commander: commander,
		logger:    logger,
	}
}

// Router returns the API route table.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/search", s.handleSearch).Methods(http.MethodPost)
	api.HandleFunc("/item", s.handleItemDetails).Methods(http.MethodGet)
	api.HandleFunc("/marketplaces", s.handleListMarketplaces).Methods(http.MethodGet)

	api.HandleFunc("/monitors", s.handleCreateMonitor).Methods(http.MethodPost)
	api.HandleFunc("/monitors", s.handleListMonitors).Methods(http.MethodGet)
	api.HandleFunc("/monitors/{id:[0-9]+}", s.handleGetMonitor).Methods(http.MethodGet)
	api.HandleFunc("/monitors/{id:[0-9]+}", s.handleUpdateMonitor).Methods(http.MethodPut)
	api.HandleFunc("/monitors/{id:[0-9]+}", s.handleDeleteMonitor).Methods(http.MethodDelete)
	api.HandleFunc("/monitors/{id:[0-9]+}/check", s.handleCheckMonitor).Methods(http.MethodPost)
	api.HandleFunc("/monitors/{id:[0-9]+}/listings", s.handleListListings).Methods(http.MethodGet)
	api.HandleFunc("/monitors/{id:[0-9]+}/notifications", s.handleListNotifications).Methods(http.MethodGet)
	api.HandleFunc("/monitors/{id:[0-9]+}/runs", s.handleListSearchRuns).Methods(http.MethodGet)

	return router
}
