package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"prose-marketing/internal/core/domain"
	"prose-marketing/internal/core/metrics"
	"prose-marketing/internal/core/port"
)

// royaltyRate is the contractual author royalty applied when a sale is
// tracked without an explicit royalty amount.
const royaltyRate = 0.70

// Tracker is the read side of the service: it aggregates persisted
// channel and sale records into analytics snapshots, reports and the
// project dashboard. It owns no mutable state of its own and caches
// nothing. It implements port.AnalyticsUseCase.
type Tracker struct {
	repo   port.MarketingRepository
	logger *slog.Logger
}

// NewTracker returns a tracker over the given repository.
func NewTracker(repo port.MarketingRepository, logger *slog.Logger) *Tracker {
	return &Tracker{repo: repo, logger: logger}
}

// GetCampaignAnalytics recomputes the analytics snapshot for a
// campaign from its persisted channel records. A channel the request
// selected but that never launched has no record, so it is simply
// absent from the breakdown; absence means zero contribution, not an
// error.
func (t *Tracker) GetCampaignAnalytics(ctx context.Context, campaignID string) (*domain.CampaignAnalytics, error) {
	campaign, err := t.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, analyticsError(campaignID, err)
	}
	if campaign == nil {
		return nil, domain.ErrCampaignNotFound(campaignID)
	}

	records, err := t.repo.ListChannelRecords(ctx, campaignID)
	if err != nil {
		return nil, analyticsError(campaignID, err)
	}

	var spendCents, revenueCents, conversions int64
	for _, r := range records {
		spendCents += r.SpendCents
		revenueCents += r.RevenueCents
		conversions += r.Conversions
	}
	spend := domain.Dollars(spendCents)
	revenue := domain.Dollars(revenueCents)

	breakdown, err := t.channelBreakdown(ctx, campaignID, records)
	if err != nil {
		return nil, analyticsError(campaignID, err)
	}

	return &domain.CampaignAnalytics{
		CampaignID: campaignID,
		Spend:      spend,
		Revenue:    revenue,
		SalesCount: conversions,
		ROI:        ratio(metrics.ROI(revenue, spend)),
		ACOS:       ratio(metrics.ACOS(spend, revenue)),
		ROAS:       ratio(metrics.ROAS(revenue, spend)),
		CPA:        ratio(metrics.CPA(spend, conversions)),
		Channels:   *breakdown,
	}, nil
}

// channelBreakdown maps every present channel record to its normalized
// metrics. Email and social aggregate their own sub-records instead of
// the channel tally.
func (t *Tracker) channelBreakdown(ctx context.Context, campaignID string, records []domain.ChannelRecord) (*domain.ChannelBreakdown, error) {
	var b domain.ChannelBreakdown
	for _, r := range records {
		switch r.Channel {
		case domain.ChannelAmazonAds:
			b.AmazonAds = channelMetrics(r)
		case domain.ChannelFacebook:
			b.Facebook = channelMetrics(r)
		case domain.ChannelBookBub:
			b.BookBub = channelMetrics(r)
		case domain.ChannelEmail:
			emails, err := t.repo.ListEmailCampaigns(ctx, campaignID)
			if err != nil {
				return nil, err
			}
			b.Email = emailMetrics(emails)
		case domain.ChannelSocial:
			posts, err := t.repo.ListSocialPosts(ctx, campaignID)
			if err != nil {
				return nil, err
			}
			b.Social = socialMetrics(posts)
		}
	}
	return &b, nil
}

func channelMetrics(r domain.ChannelRecord) *domain.ChannelMetrics {
	spend := domain.Dollars(r.SpendCents)
	revenue := domain.Dollars(r.RevenueCents)
	return &domain.ChannelMetrics{
		Spend:       spend,
		Revenue:     revenue,
		Impressions: r.Impressions,
		Clicks:      r.Clicks,
		Conversions: r.Conversions,
		ROI:         ratio(metrics.ROI(revenue, spend)),
	}
}

func emailMetrics(emails []domain.EmailCampaign) *domain.EmailMetrics {
	var sent, opens, clicks, conversions int64
	for _, e := range emails {
		sent += e.Recipients
		opens += e.Opens
		clicks += e.Clicks
		conversions += e.Conversions
	}
	return &domain.EmailMetrics{
		Sent:        sent,
		Opens:       opens,
		Clicks:      clicks,
		Conversions: conversions,
		OpenRate:    metrics.OpenRate(opens, sent),
		ClickRate:   metrics.ClickRate(clicks, opens),
	}
}

func socialMetrics(posts []domain.SocialPost) *domain.SocialMetrics {
	m := &domain.SocialMetrics{Posts: int64(len(posts))}
	for _, p := range posts {
		m.Impressions += p.Engagement.Views
		m.Engagement += p.Engagement.Likes + p.Engagement.Comments + p.Engagement.Shares
		m.Clicks += p.Engagement.Clicks
		m.Conversions += p.Engagement.Conversions
	}
	return m
}

// GenerateReport computes analytics and picks the best performing
// channel by maximum defined ROI in breakdown order, first maximum
// wins. A channel with undefined ROI is excluded from the comparison
// rather than competing as zero; with no candidates the sentinel "N/A"
// is reported.
func (t *Tracker) GenerateReport(ctx context.Context, req port.ReportRequest) (*domain.MarketingReport, error) {
	analytics, err := t.GetCampaignAnalytics(ctx, req.CampaignID)
	if err != nil {
		var me *domain.MarketingError
		if errors.As(err, &me) {
			return nil, err
		}
		e := domain.NewMarketingError(domain.CodeReport, "failed to generate marketing report", 500, err)
		return nil, e.WithDetail("campaign_id", req.CampaignID)
	}

	candidates := []struct {
		name string
		m    *domain.ChannelMetrics
	}{
		{"amazon_ads", analytics.Channels.AmazonAds},
		{"facebook", analytics.Channels.Facebook},
		{"bookbub", analytics.Channels.BookBub},
	}

	best := domain.BestChannelNone
	bestROI := math.Inf(-1)
	for _, c := range candidates {
		if c.m == nil || c.m.ROI == nil {
			continue
		}
		if *c.m.ROI > bestROI {
			bestROI = *c.m.ROI
			best = c.name
		}
	}

	now := time.Now().UTC()
	report := &domain.MarketingReport{
		ReportFile:  fmt.Sprintf("/reports/campaign_%s_%d.pdf", req.CampaignID, now.UnixMilli()),
		GeneratedAt: now,
		Summary: domain.ReportSummary{
			ROI:                   analytics.ROI,
			TotalSales:            analytics.SalesCount,
			BestPerformingChannel: best,
		},
	}

	t.logger.Info("report generated",
		slog.String("campaign_id", req.CampaignID),
		slog.String("file", report.ReportFile))
	return report, nil
}

// TrackSale appends a sale record, deriving the royalty from the
// contractual rate. The path is non-critical telemetry: a persistence
// failure is logged and swallowed.
func (t *Tracker) TrackSale(ctx context.Context, req port.TrackSaleRequest) error {
	units := req.Units
	if units == 0 {
		units = 1
	}
	source := req.Source
	if source == "" {
		source = domain.SourceOrganic
	}

	_, err := t.repo.CreateSale(ctx, domain.Sale{
		ProjectID:    req.ProjectID,
		Platform:     req.Platform,
		SaleDate:     time.Now().UTC(),
		Format:       req.Format,
		Units:        units,
		RevenueCents: req.RevenueCents,
		RoyaltyCents: int64(math.Round(float64(req.RevenueCents) * royaltyRate)),
		Source:       source,
	})
	if err != nil {
		t.logger.Error("failed to track sale",
			slog.String("project_id", req.ProjectID),
			slog.String("platform", req.Platform),
			slog.Any("error", err))
		return nil
	}

	t.logger.Info("sale tracked",
		slog.String("project_id", req.ProjectID),
		slog.String("platform", req.Platform),
		slog.Int64("revenue_cents", req.RevenueCents))
	return nil
}

// GetDashboardData aggregates all-time sales for a project against
// the budget of its currently active campaigns.
func (t *Tracker) GetDashboardData(ctx context.Context, projectID string) (*domain.DashboardData, error) {
	salesCount, revenueCents, err := t.repo.ProjectSalesTotals(ctx, projectID)
	if err != nil {
		e := domain.NewMarketingError(domain.CodeDashboard, "failed to retrieve dashboard data", 500, err)
		return nil, e.WithDetail("project_id", projectID)
	}
	activeCount, spendCents, err := t.repo.ActiveCampaignTotals(ctx, projectID)
	if err != nil {
		e := domain.NewMarketingError(domain.CodeDashboard, "failed to retrieve dashboard data", 500, err)
		return nil, e.WithDetail("project_id", projectID)
	}

	revenue := domain.Dollars(revenueCents)
	spend := domain.Dollars(spendCents)
	return &domain.DashboardData{
		TotalSales:      salesCount,
		TotalRevenue:    revenue,
		TotalSpend:      spend,
		ROI:             ratio(metrics.ROI(revenue, spend)),
		ActiveCampaigns: activeCount,
	}, nil
}

// ratio converts a comma-ok metric into the pointer form used by the
// analytics DTOs, where nil means undefined.
func ratio(v float64, ok bool) *float64 {
	if !ok {
		return nil
	}
	return &v
}

func analyticsError(campaignID string, err error) *domain.MarketingError {
	e := domain.NewMarketingError(domain.CodeAnalytics, "failed to retrieve campaign analytics", 500, err)
	return e.WithDetail("campaign_id", campaignID)
}
