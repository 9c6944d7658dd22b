package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/marketradar-pl/marketradar/internal/platform"
	"github.com/marketradar-pl/marketradar/internal/platform/models"
	"github.com/samber/lo"
)

// handleSearch runs a one-off search on a single marketplace. Every call is
// recorded as a search run without a monitor.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "can't decode request body")
		return
	}

	keywords := splitKeywords(req.Keywords)
	if len(keywords) == 0 {
		writeError(w, http.StatusBadRequest, "no keywords provided")
		return
	}

	marketplace := strings.TrimSpace(req.Marketplace)
	run := models.SearchRun{
		Marketplace: marketplace,
		Query:       strings.Join(keywords, " "),
	}

	scr, ok := s.scrapers.Get(marketplace)
	if !ok {
		run.StatusMessage = lo.ToPtr(platform.ErrUnknownMarketplace.Error())
		s.saveSearchRun(r.Context(), &run)
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown marketplace: %s", marketplace))
		return
	}

	results := scr.Search(r.Context(), keywords, req.Filters)
	if results == nil {
		results = []models.Listing{}
	}

	run.ResultCount = len(results)
	run.IsSuccess = true
	s.saveSearchRun(r.Context(), &run)

	writeJSON(w, http.StatusOK, searchResponse{
		Results: results,
		Total:   len(results),
	})
}

// saveSearchRun records the run. Failures only get logged, the search
// response doesn't depend on history bookkeeping.
func (s *Server) saveSearchRun(ctx context.Context, run *models.SearchRun) {
	if err := s.storage.SaveSearchRun(ctx, run); err != nil {
		s.logger.Warn().Err(err).Msg("can't save search run")
	}
}

func (s *Server) handleItemDetails(w http.ResponseWriter, r *http.Request) {
	url := strings.TrimSpace(r.URL.Query().Get("url"))
	marketplace := strings.TrimSpace(r.URL.Query().Get("marketplace"))
	if url == "" || marketplace == "" {
		writeError(w, http.StatusBadRequest, "url and marketplace are required")
		return
	}

	scr, ok := s.scrapers.Get(marketplace)
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown marketplace: %s", marketplace))
		return
	}

	listing, ok := scr.ItemDetails(r.Context(), url)
	if !ok {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}

	writeJSON(w, http.StatusOK, listing)
}

func (s *Server) handleListMarketplaces(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, marketplacesResponse{Marketplaces: s.scrapers.Names()})
}

func (s *Server) handleCreateMonitor(w http.ResponseWriter, r *http.Request) {
	var req monitorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "can't decode request body")
		return
	}

	monitor, err := req.toMonitor()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.storage.CreateMonitor(r.Context(), &monitor); err != nil {
		s.logger.Error().Err(err).Msg("can't create monitor")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toMonitorResponse(&monitor))
}

func (s *Server) handleListMonitors(w http.ResponseWriter, r *http.Request) {
	monitors, err := s.storage.ListMonitors(r.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("can't list monitors")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, monitorsResponse{
		Monitors: lo.Map(monitors, func(monitor models.Monitor, _ int) monitorResponse {
			return toMonitorResponse(&monitor)
		}),
	})
}

func (s *Server) handleGetMonitor(w http.ResponseWriter, r *http.Request) {
	monitor, err := s.storage.GetMonitor(r.Context(), monitorID(r))
	if err != nil {
		s.respondMonitorError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toMonitorResponse(monitor))
}

// handleUpdateMonitor replaces the monitor configuration. The check history
// fields stay untouched.
func (s *Server) handleUpdateMonitor(w http.ResponseWriter, r *http.Request) {
	var req monitorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "can't decode request body")
		return
	}

	updated, err := req.toMonitor()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	monitor, err := s.storage.GetMonitor(r.Context(), monitorID(r))
	if err != nil {
		s.respondMonitorError(w, err)
		return
	}

	monitor.Name = updated.Name
	monitor.Keywords = updated.Keywords
	monitor.Marketplaces = updated.Marketplaces
	monitor.Filters = updated.Filters
	monitor.IntervalMinutes = updated.IntervalMinutes
	monitor.TelegramChatID = updated.TelegramChatID
	monitor.IsActive = updated.IsActive

	if err := s.storage.UpdateMonitor(r.Context(), monitor); err != nil {
		s.respondMonitorError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toMonitorResponse(monitor))
}

func (s *Server) handleDeleteMonitor(w http.ResponseWriter, r *http.Request) {
	if err := s.storage.DeleteMonitor(r.Context(), monitorID(r)); err != nil {
		s.respondMonitorError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleCheckMonitor enqueues a check command for the worker instead of
// scraping inline, so slow marketplaces can't stall the API.
func (s *Server) handleCheckMonitor(w http.ResponseWriter, r *http.Request) {
	id := monitorID(r)
	if _, err := s.storage.GetMonitor(r.Context(), id); err != nil {
		s.respondMonitorError(w, err)
		return
	}

	if err := s.commander.SendCheckCommand(r.Context(), id); err != nil {
		s.logger.Error().Err(err).Int("monitorId", id).Msg("can't enqueue monitor check")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusAccepted, checkResponse{Status: "queued", MonitorID: id})
}

func (s *Server) handleListListings(w http.ResponseWriter, r *http.Request) {
	id := monitorID(r)
	if _, err := s.storage.GetMonitor(r.Context(), id); err != nil {
		s.respondMonitorError(w, err)
		return
	}

	listings, err := s.storage.ListListings(r.Context(), id)
	if err != nil {
		s.logger.Error().Err(err).Msg("can't list listings")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, listingsResponse{
		Listings: lo.Map(listings, func(listing models.Listing, _ int) storedListing {
			return storedListing{ID: listing.ID, Listing: listing}
		}),
	})
}

func (s *Server) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	id := monitorID(r)
	if _, err := s.storage.GetMonitor(r.Context(), id); err != nil {
		s.respondMonitorError(w, err)
		return
	}

	notifications, err := s.storage.ListNotifications(r.Context(), id)
	if err != nil {
		s.logger.Error().Err(err).Msg("can't list notifications")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, notificationsResponse{
		Notifications: lo.Map(notifications, func(notification models.Notification, _ int) notificationResponse {
			return toNotificationResponse(notification)
		}),
	})
}

func (s *Server) handleListSearchRuns(w http.ResponseWriter, r *http.Request) {
	id := monitorID(r)
	if _, err := s.storage.GetMonitor(r.Context(), id); err != nil {
		s.respondMonitorError(w, err)
		return
	}

	runs, err := s.storage.ListSearchRuns(r.Context(), id)
	if err != nil {
		s.logger.Error().Err(err).Msg("can't list search runs")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, searchRunsResponse{
		Runs: lo.Map(runs, func(run models.SearchRun, _ int) searchRunResponse {
			return toSearchRunResponse(run)
		}),
	})
}

// respondMonitorError maps storage errors of the monitor endpoints.
func (s *Server) respondMonitorError(w http.ResponseWriter, err error) {
	if errors.Is(err, platform.ErrMonitorNotFound) {
		writeError(w, http.StatusNotFound, "monitor not found")
		return
	}

	s.logger.Error().Err(err).Msg("can't access monitor storage")
	writeError(w, http.StatusInternalServerError, "internal error")
}

// monitorID reads the monitor ID path variable. The route pattern keeps it
// numeric.
func monitorID(r *http.Request) int {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	return id
}
