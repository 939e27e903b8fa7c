package port

import (
	"context"

	"prose-marketing/internal/core/domain"
)

// LaunchCampaignRequest is the inbound contract for launching a
// campaign. Channels must be a non-empty subset of the known channel
// enumeration; duration is in days.
type LaunchCampaignRequest struct {
	ProjectID    string              `json:"project_id"`
	Type         domain.CampaignType `json:"campaign_type"`
	BudgetCents  int64               `json:"budget_cents"`
	Channels     []domain.Channel    `json:"channels"`
	DurationDays int                 `json:"duration_days"`
}

// CampaignUseCase is the primary port for campaign lifecycle
// operations. Mock implementations are generated from this interface
// for testing.
type CampaignUseCase interface {
	// LaunchCampaign creates the campaign record, allocates budget over
	// the requested channels and launches every channel concurrently.
	// Individual channel failures are logged and swallowed; the call
	// only fails when the campaign record itself cannot be created or
	// the request is invalid.
	LaunchCampaign(ctx context.Context, req LaunchCampaignRequest) (*domain.Campaign, error)

	// GetCampaign returns a campaign by id, or a CAMPAIGN_NOT_FOUND
	// error when it does not exist.
	GetCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error)

	// PauseCampaign transitions the campaign to paused. Re-pausing an
	// already paused campaign is not an error.
	PauseCampaign(ctx context.Context, campaignID string) error

	// CompleteCampaign transitions the campaign to completed.
	CompleteCampaign(ctx context.Context, campaignID string) error
}
