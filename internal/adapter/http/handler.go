package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"prose-marketing/internal/core/domain"
	"prose-marketing/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds the campaign and analytics use cases and a logger for
// structured logging. Routes are registered on a chi.Router for
// convenient method handling.
type Handler struct {
	campaigns port.CampaignUseCase
	analytics port.AnalyticsUseCase
	logger    *slog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(campaigns port.CampaignUseCase, analytics port.AnalyticsUseCase, logger *slog.Logger) *Handler {
	h := &Handler{campaigns: campaigns, analytics: analytics, logger: logger}
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/campaigns", h.handleLaunchCampaign)
		r.Get("/campaigns/{id}", h.handleGetCampaign)
		r.Put("/campaigns/{id}/pause", h.handlePauseCampaign)
		r.Put("/campaigns/{id}/complete", h.handleCompleteCampaign)
		r.Get("/campaigns/{id}/analytics", h.handleCampaignAnalytics)
		r.Get("/analytics/dashboard/{projectID}", h.handleDashboard)
		r.Post("/analytics/reports", h.handleGenerateReport)
		r.Post("/analytics/sales", h.handleTrackSale)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// respondJSON writes v as a JSON body with the given status.
func (h *Handler) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

type errorBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// respondError maps an error to the wire format. MarketingError carries
// its own status and code; anything else is a 500 INTERNAL_ERROR with
// the detail kept out of the body.
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	var mErr *domain.MarketingError
	if errors.As(err, &mErr) {
		h.respondJSON(w, mErr.Status, map[string]any{"error": errorBody{
			Code:    mErr.Code,
			Message: mErr.Message,
			Details: mErr.Details,
		}})
		return
	}
	h.logger.Error("unhandled error", slog.Any("error", err))
	h.respondJSON(w, http.StatusInternalServerError, map[string]any{"error": errorBody{
		Code:    "INTERNAL_ERROR",
		Message: "internal error",
	}})
}
