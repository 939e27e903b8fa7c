package usecase

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"prose-marketing/internal/core/domain"
	"prose-marketing/internal/core/port"
	"prose-marketing/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
)

func activeCampaign(id string) *domain.Campaign {
	return &domain.Campaign{ID: id, ProjectID: "project-1", Status: domain.StatusActive, BudgetCents: 100_000}
}

func TestGetCampaignAnalytics(t *testing.T) {
	repo := mocks.NewMockMarketingRepository(t)

	repo.EXPECT().GetCampaign(mock.Anything, "c1").Return(activeCampaign("c1"), nil)
	repo.EXPECT().ListChannelRecords(mock.Anything, "c1").Return([]domain.ChannelRecord{
		{
			CampaignID:   "c1",
			Channel:      domain.ChannelAmazonAds,
			SpendCents:   10_000,
			RevenueCents: 30_000,
			Impressions:  1_000,
			Clicks:       50,
			Conversions:  3,
		},
		{
			CampaignID: "c1",
			Channel:    domain.ChannelSocial,
		},
	}, nil)
	repo.EXPECT().ListSocialPosts(mock.Anything, "c1").Return([]domain.SocialPost{
		{Engagement: domain.PostEngagement{Views: 500, Likes: 10, Comments: 5, Shares: 2, Clicks: 8, Conversions: 1}},
		{Engagement: domain.PostEngagement{Views: 300, Likes: 4, Comments: 1, Shares: 0, Clicks: 2}},
	}, nil)

	svc := NewTracker(repo, discardLogger())

	a, err := svc.GetCampaignAnalytics(context.Background(), "c1")
	if err != nil {
		t.Fatalf("GetCampaignAnalytics error: %v", err)
	}

	if a.Spend != 100 || a.Revenue != 300 || a.SalesCount != 3 {
		t.Fatalf("totals = spend %v revenue %v sales %d, want 100/300/3", a.Spend, a.Revenue, a.SalesCount)
	}
	if a.ROI == nil || *a.ROI != 200 {
		t.Fatalf("campaign ROI = %v, want 200", a.ROI)
	}

	if a.Channels.AmazonAds == nil {
		t.Fatalf("amazon breakdown missing")
	}
	if a.Channels.AmazonAds.ROI == nil || *a.Channels.AmazonAds.ROI != 200 {
		t.Fatalf("amazon ROI = %v, want 200", a.Channels.AmazonAds.ROI)
	}
	if a.Channels.Facebook != nil {
		t.Fatalf("facebook never launched and must be absent, got %+v", a.Channels.Facebook)
	}

	social := a.Channels.Social
	if social == nil {
		t.Fatalf("social breakdown missing")
	}
	if social.Posts != 2 || social.Impressions != 800 || social.Engagement != 22 || social.Clicks != 10 || social.Conversions != 1 {
		t.Fatalf("social metrics = %+v", social)
	}
}

func TestGetCampaignAnalyticsNotFound(t *testing.T) {
	repo := mocks.NewMockMarketingRepository(t)
	repo.EXPECT().GetCampaign(mock.Anything, "missing").Return(nil, nil)

	svc := NewTracker(repo, discardLogger())

	_, err := svc.GetCampaignAnalytics(context.Background(), "missing")
	var me *domain.MarketingError
	if !errors.As(err, &me) || me.Code != domain.CodeCampaignNotFound {
		t.Fatalf("expected CAMPAIGN_NOT_FOUND, got %v", err)
	}
}

// Freshly launched channels have all-zero tallies; the spend ratios are
// undefined then, not zero.
func TestGetCampaignAnalyticsZeroSpend(t *testing.T) {
	repo := mocks.NewMockMarketingRepository(t)
	repo.EXPECT().GetCampaign(mock.Anything, "c1").Return(activeCampaign("c1"), nil)
	repo.EXPECT().ListChannelRecords(mock.Anything, "c1").Return([]domain.ChannelRecord{
		{CampaignID: "c1", Channel: domain.ChannelAmazonAds, BudgetCents: 50_000},
	}, nil)

	svc := NewTracker(repo, discardLogger())

	a, err := svc.GetCampaignAnalytics(context.Background(), "c1")
	if err != nil {
		t.Fatalf("GetCampaignAnalytics error: %v", err)
	}
	if a.ROI != nil || a.ROAS != nil || a.ACOS != nil || a.CPA != nil {
		t.Fatalf("zero-activity ratios must be undefined: %+v", a)
	}
	if a.Channels.AmazonAds == nil || a.Channels.AmazonAds.ROI != nil {
		t.Fatalf("zero-spend channel ROI must be undefined: %+v", a.Channels.AmazonAds)
	}
}

func TestGetCampaignAnalyticsEmailBreakdown(t *testing.T) {
	repo := mocks.NewMockMarketingRepository(t)
	repo.EXPECT().GetCampaign(mock.Anything, "c1").Return(activeCampaign("c1"), nil)
	repo.EXPECT().ListChannelRecords(mock.Anything, "c1").Return([]domain.ChannelRecord{
		{CampaignID: "c1", Channel: domain.ChannelEmail},
	}, nil)
	repo.EXPECT().ListEmailCampaigns(mock.Anything, "c1").Return([]domain.EmailCampaign{
		{Recipients: 1_000, Opens: 250, Clicks: 50, Conversions: 5},
		{Recipients: 1_000, Opens: 150, Clicks: 30, Conversions: 3},
	}, nil)

	svc := NewTracker(repo, discardLogger())

	a, err := svc.GetCampaignAnalytics(context.Background(), "c1")
	if err != nil {
		t.Fatalf("GetCampaignAnalytics error: %v", err)
	}
	email := a.Channels.Email
	if email == nil {
		t.Fatalf("email breakdown missing")
	}
	if email.Sent != 2_000 || email.Opens != 400 || email.Clicks != 80 || email.Conversions != 8 {
		t.Fatalf("email totals = %+v", email)
	}
	if email.OpenRate != 20 {
		t.Fatalf("open rate = %v, want 20", email.OpenRate)
	}
	if email.ClickRate != 20 {
		t.Fatalf("click rate = %v, want 20", email.ClickRate)
	}
}

// Two reads with no intervening writes must produce identical snapshots.
func TestGetCampaignAnalyticsIdempotent(t *testing.T) {
	repo := mocks.NewMockMarketingRepository(t)
	repo.EXPECT().GetCampaign(mock.Anything, "c1").Return(activeCampaign("c1"), nil)
	repo.EXPECT().ListChannelRecords(mock.Anything, "c1").Return([]domain.ChannelRecord{
		{CampaignID: "c1", Channel: domain.ChannelAmazonAds, SpendCents: 5_000, RevenueCents: 9_000, Conversions: 2},
	}, nil)

	svc := NewTracker(repo, discardLogger())

	first, err := svc.GetCampaignAnalytics(context.Background(), "c1")
	if err != nil {
		t.Fatalf("first read: %v", err)
	}
	second, err := svc.GetCampaignAnalytics(context.Background(), "c1")
	if err != nil {
		t.Fatalf("second read: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("analytics not idempotent:\n%+v\n%+v", first, second)
	}
}

// TestGenerateReportBestChannel: breakdown {amazon: roi 10, facebook:
// roi 25, bookbub: roi undefined} must select facebook; the undefined
// channel is excluded, not treated as 0.
func TestGenerateReportBestChannel(t *testing.T) {
	repo := mocks.NewMockMarketingRepository(t)
	repo.EXPECT().GetCampaign(mock.Anything, "c1").Return(activeCampaign("c1"), nil)
	repo.EXPECT().ListChannelRecords(mock.Anything, "c1").Return([]domain.ChannelRecord{
		{Channel: domain.ChannelAmazonAds, SpendCents: 10_000, RevenueCents: 11_000},
		{Channel: domain.ChannelFacebook, SpendCents: 10_000, RevenueCents: 12_500},
		{Channel: domain.ChannelBookBub, SpendCents: 0, RevenueCents: 4_000},
	}, nil)

	svc := NewTracker(repo, discardLogger())

	report, err := svc.GenerateReport(context.Background(), port.ReportRequest{CampaignID: "c1"})
	if err != nil {
		t.Fatalf("GenerateReport error: %v", err)
	}
	if report.Summary.BestPerformingChannel != "facebook" {
		t.Fatalf("best channel = %s, want facebook", report.Summary.BestPerformingChannel)
	}
	if !strings.HasPrefix(report.ReportFile, "/reports/campaign_c1_") {
		t.Fatalf("unexpected report file %q", report.ReportFile)
	}
}

func TestGenerateReportNoChannels(t *testing.T) {
	repo := mocks.NewMockMarketingRepository(t)
	repo.EXPECT().GetCampaign(mock.Anything, "c1").Return(activeCampaign("c1"), nil)
	repo.EXPECT().ListChannelRecords(mock.Anything, "c1").Return(nil, nil)

	svc := NewTracker(repo, discardLogger())

	report, err := svc.GenerateReport(context.Background(), port.ReportRequest{CampaignID: "c1"})
	if err != nil {
		t.Fatalf("GenerateReport error: %v", err)
	}
	if report.Summary.BestPerformingChannel != domain.BestChannelNone {
		t.Fatalf("best channel = %s, want %s", report.Summary.BestPerformingChannel, domain.BestChannelNone)
	}
}

func TestTrackSale(t *testing.T) {
	repo := mocks.NewMockMarketingRepository(t)

	var saved domain.Sale
	repo.EXPECT().
		CreateSale(mock.Anything, mock.AnythingOfType("domain.Sale")).
		Run(func(ctx context.Context, s domain.Sale) { saved = s }).
		Return(&domain.Sale{ID: "s1"}, nil)

	svc := NewTracker(repo, discardLogger())

	err := svc.TrackSale(context.Background(), port.TrackSaleRequest{
		ProjectID:    "project-1",
		Platform:     "amazon",
		Format:       domain.FormatEbook,
		RevenueCents: 999,
	})
	if err != nil {
		t.Fatalf("TrackSale error: %v", err)
	}
	if saved.RoyaltyCents != 699 {
		t.Fatalf("royalty = %d, want 699 (70%% of 999)", saved.RoyaltyCents)
	}
	if saved.Units != 1 {
		t.Fatalf("units default = %d, want 1", saved.Units)
	}
	if saved.Source != domain.SourceOrganic {
		t.Fatalf("source default = %s, want organic", saved.Source)
	}
}

// Sale tracking is non-critical telemetry: a persistence failure is
// swallowed.
func TestTrackSaleBestEffort(t *testing.T) {
	repo := mocks.NewMockMarketingRepository(t)
	repo.EXPECT().
		CreateSale(mock.Anything, mock.AnythingOfType("domain.Sale")).
		Return(nil, errors.New("db down"))

	svc := NewTracker(repo, discardLogger())

	if err := svc.TrackSale(context.Background(), port.TrackSaleRequest{ProjectID: "p", Platform: "kobo", RevenueCents: 500}); err != nil {
		t.Fatalf("TrackSale must swallow persistence failures, got %v", err)
	}
}

func TestGetDashboardData(t *testing.T) {
	repo := mocks.NewMockMarketingRepository(t)
	repo.EXPECT().ProjectSalesTotals(mock.Anything, "project-1").Return(int64(12), int64(50_000), nil)
	repo.EXPECT().ActiveCampaignTotals(mock.Anything, "project-1").Return(int64(2), int64(100_000), nil)

	svc := NewTracker(repo, discardLogger())

	d, err := svc.GetDashboardData(context.Background(), "project-1")
	if err != nil {
		t.Fatalf("GetDashboardData error: %v", err)
	}
	if d.TotalSales != 12 || d.TotalRevenue != 500 || d.TotalSpend != 1000 || d.ActiveCampaigns != 2 {
		t.Fatalf("dashboard = %+v", d)
	}
	if d.ROI == nil || *d.ROI != -50 {
		t.Fatalf("dashboard ROI = %v, want -50", d.ROI)
	}
}
