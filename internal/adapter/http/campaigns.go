package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"prose-marketing/internal/core/domain"
	"prose-marketing/internal/core/port"
)

// handleLaunchCampaign decodes a launch request and starts the campaign.
// Validation failures come back as 400 VALIDATION_ERROR; a created
// campaign is returned with HTTP 201 even when individual channel
// launches failed.
func (h *Handler) handleLaunchCampaign(w http.ResponseWriter, r *http.Request) {
	var req port.LaunchCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, domain.ErrValidation("body", "invalid JSON"))
		return
	}
	campaign, err := h.campaigns.LaunchCampaign(r.Context(), req)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, campaign)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	campaign, err := h.campaigns.GetCampaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, campaign)
}

func (h *Handler) handlePauseCampaign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.campaigns.PauseCampaign(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"id": id, "status": string(domain.StatusPaused)})
}

func (h *Handler) handleCompleteCampaign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.campaigns.CompleteCampaign(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"id": id, "status": string(domain.StatusCompleted)})
}
