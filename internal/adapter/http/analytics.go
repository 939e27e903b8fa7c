package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"prose-marketing/internal/core/domain"
	"prose-marketing/internal/core/port"
)

func (h *Handler) handleCampaignAnalytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.analytics.GetCampaignAnalytics(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, analytics)
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	data, err := h.analytics.GetDashboardData(r.Context(), chi.URLParam(r, "projectID"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, data)
}

// handleGenerateReport builds a performance report for one campaign.
// The date range defaults to the last 30 days when the caller omits it.
func (h *Handler) handleGenerateReport(w http.ResponseWriter, r *http.Request) {
	var req port.ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, domain.ErrValidation("body", "invalid JSON"))
		return
	}
	if req.CampaignID == "" {
		h.respondError(w, domain.ErrValidation("campaign_id", "is required"))
		return
	}
	if req.To.IsZero() {
		req.To = time.Now()
	}
	if req.From.IsZero() {
		req.From = req.To.AddDate(0, 0, -30)
	}
	report, err := h.analytics.GenerateReport(r.Context(), req)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, report)
}

func (h *Handler) handleTrackSale(w http.ResponseWriter, r *http.Request) {
	var req port.TrackSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, domain.ErrValidation("body", "invalid JSON"))
		return
	}
	if req.ProjectID == "" {
		h.respondError(w, domain.ErrValidation("project_id", "is required"))
		return
	}
	if err := h.analytics.TrackSale(r.Context(), req); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusAccepted, map[string]string{"status": "recorded"})
}
