package port

import (
	"context"

	"prose-marketing/internal/core/domain"
)

// ChannelOutcome is what a launcher reports after a successful launch.
// BudgetCents is the allocation the channel actually committed to;
// fixed-cost channels may return an amount that differs from the
// allocation they were offered.
type ChannelOutcome struct {
	ExternalID  string
	BudgetCents int64
	Detail      string
}

// ChannelPerformance is a point-in-time metric pull from a channel's
// own reporting API.
type ChannelPerformance struct {
	Impressions  int64
	Clicks       int64
	Conversions  int64
	SpendCents   int64
	RevenueCents int64
}

// ChannelLauncher is the uniform capability contract every channel
// integration satisfies. The orchestrator depends only on this
// interface and selects the implementation by channel kind.
type ChannelLauncher interface {
	// Channel identifies which channel this launcher serves.
	Channel() domain.Channel
	// Launch starts the channel's side of a campaign with the given
	// budget allocation. It must be safe to call concurrently with
	// launches of other channels.
	Launch(ctx context.Context, book domain.BookMetadata, campaign domain.Campaign, budgetCents int64) (*ChannelOutcome, error)
	// FetchPerformance pulls current performance counters for a
	// previously launched channel campaign.
	FetchPerformance(ctx context.Context, externalID string) (*ChannelPerformance, error)
}

// BookMetadataProvider resolves the book context for a publishing
// project. It is an external collaborator of the orchestrator.
type BookMetadataProvider interface {
	BookMetadata(ctx context.Context, projectID string) (*domain.BookMetadata, error)
}

// CRMSync pushes campaign state to the CRM after a launch settles.
// Failures are best-effort territory: the orchestrator logs and moves on.
type CRMSync interface {
	SyncCampaign(ctx context.Context, c *domain.Campaign) error
	SyncContact(ctx context.Context, contact domain.ReaderContact) error
}
