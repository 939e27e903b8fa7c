package port

import (
	"context"

	"prose-marketing/internal/core/domain"
)

// MarketingRepository is the outbound persistence port. Lookups return
// (nil, nil) when no row exists so callers can distinguish not-found
// from infrastructure failures. Each write is a standalone statement;
// the repository never wraps channel writes of one campaign in a
// shared transaction.
type MarketingRepository interface {
	// CreateCampaign inserts a campaign and returns it with generated
	// id and timestamps.
	CreateCampaign(ctx context.Context, c domain.Campaign) (*domain.Campaign, error)
	// GetCampaign returns a campaign by id, or nil when absent.
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	// UpdateCampaignStatus sets the lifecycle status and returns the
	// updated campaign, or nil when the id is unknown.
	UpdateCampaignStatus(ctx context.Context, id string, status domain.CampaignStatus) (*domain.Campaign, error)

	// CreateChannelRecord inserts the durable per-channel state created
	// by a successful channel launch.
	CreateChannelRecord(ctx context.Context, rec domain.ChannelRecord) (*domain.ChannelRecord, error)
	// ListChannelRecords returns the channel records of a campaign in
	// insertion order.
	ListChannelRecords(ctx context.Context, campaignID string) ([]domain.ChannelRecord, error)

	// ListEmailCampaigns returns the email sends recorded for a campaign.
	ListEmailCampaigns(ctx context.Context, campaignID string) ([]domain.EmailCampaign, error)
	// ListSocialPosts returns the organic posts recorded for a campaign.
	ListSocialPosts(ctx context.Context, campaignID string) ([]domain.SocialPost, error)

	// CreateSale appends one sale record.
	CreateSale(ctx context.Context, s domain.Sale) (*domain.Sale, error)
	// ProjectSalesTotals returns the all-time sale count and revenue
	// (cents) for a project.
	ProjectSalesTotals(ctx context.Context, projectID string) (count int64, revenueCents int64, err error)
	// ActiveCampaignTotals returns the number of active campaigns for a
	// project and their combined budget (cents).
	ActiveCampaignTotals(ctx context.Context, projectID string) (count int64, spendCents int64, err error)
}
