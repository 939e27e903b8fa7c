package port

import (
	"context"
	"time"

	"prose-marketing/internal/core/domain"
)

// ReportRequest selects the campaign and date range for a marketing
// report.
type ReportRequest struct {
	CampaignID string    `json:"campaign_id"`
	From       time.Time `json:"from"`
	To         time.Time `json:"to"`
}

// TrackSaleRequest records one attributed sale. Units defaults to 1
// when zero.
type TrackSaleRequest struct {
	ProjectID    string            `json:"project_id"`
	Platform     string            `json:"platform"`
	Format       domain.SaleFormat `json:"format"`
	Units        int64             `json:"units"`
	RevenueCents int64             `json:"revenue_cents"`
	Source       domain.SaleSource `json:"source"`
}

// AnalyticsUseCase is the primary port for the read side: analytics
// snapshots, reports, sale tracking and the project dashboard.
type AnalyticsUseCase interface {
	// GetCampaignAnalytics recomputes the analytics snapshot from
	// persisted channel and sub-channel records. Channels that never
	// launched are absent from the breakdown rather than zero-filled.
	GetCampaignAnalytics(ctx context.Context, campaignID string) (*domain.CampaignAnalytics, error)

	// GenerateReport computes analytics and derives the best performing
	// channel by maximum defined ROI.
	GenerateReport(ctx context.Context, req ReportRequest) (*domain.MarketingReport, error)

	// TrackSale appends a sale record. Persistence failures are logged,
	// not surfaced.
	TrackSale(ctx context.Context, req TrackSaleRequest) error

	// GetDashboardData aggregates project-wide sales against the spend
	// of active campaigns.
	GetDashboardData(ctx context.Context, projectID string) (*domain.DashboardData, error)
}
