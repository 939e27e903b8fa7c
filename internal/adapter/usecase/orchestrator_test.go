package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"prose-marketing/internal/core/domain"
	"prose-marketing/internal/core/port"
	"prose-marketing/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func launchRequest() port.LaunchCampaignRequest {
	return port.LaunchCampaignRequest{
		ProjectID:    "project-1",
		Type:         domain.CampaignLaunch,
		BudgetCents:  100_000,
		Channels:     []domain.Channel{domain.ChannelAmazonAds, domain.ChannelFacebook},
		DurationDays: 30,
	}
}

// TestLaunchCampaignPartialFailure makes one of two channel launches
// fail and checks the launch still succeeds: the campaign comes back
// active and only the surviving channel gets a record.
func TestLaunchCampaignPartialFailure(t *testing.T) {
	repo := mocks.NewMockMarketingRepository(t)
	books := mocks.NewMockBookMetadataProvider(t)
	crm := mocks.NewMockCRMSync(t)

	created := &domain.Campaign{ID: "c1", ProjectID: "project-1", Status: domain.StatusActive}
	repo.EXPECT().
		CreateCampaign(mock.Anything, mock.AnythingOfType("domain.Campaign")).
		Return(created, nil)

	books.EXPECT().
		BookMetadata(mock.Anything, "project-1").
		Return(&domain.BookMetadata{ProjectID: "project-1", Title: "The Darkweaver Chronicles"}, nil)

	amazon := mocks.NewMockChannelLauncher(t)
	amazon.EXPECT().Channel().Return(domain.ChannelAmazonAds)
	amazon.EXPECT().
		Launch(mock.Anything, mock.AnythingOfType("domain.BookMetadata"), mock.AnythingOfType("domain.Campaign"), int64(50_000)).
		Return(&port.ChannelOutcome{ExternalID: "az-1", BudgetCents: 50_000}, nil)

	facebook := mocks.NewMockChannelLauncher(t)
	facebook.EXPECT().Channel().Return(domain.ChannelFacebook)
	facebook.EXPECT().
		Launch(mock.Anything, mock.AnythingOfType("domain.BookMetadata"), mock.AnythingOfType("domain.Campaign"), int64(20_000)).
		Return(nil, errors.New("facebook api outage"))

	var (
		mu      sync.Mutex
		records []domain.ChannelRecord
	)
	repo.EXPECT().
		CreateChannelRecord(mock.Anything, mock.AnythingOfType("domain.ChannelRecord")).
		Run(func(ctx context.Context, rec domain.ChannelRecord) {
			mu.Lock()
			defer mu.Unlock()
			records = append(records, rec)
		}).
		Return(&domain.ChannelRecord{ID: "ch-1"}, nil)

	crm.EXPECT().SyncCampaign(mock.Anything, created).Return(nil)

	svc := NewOrchestrator(repo, books, crm, discardLogger(), amazon, facebook)

	campaign, err := svc.LaunchCampaign(context.Background(), launchRequest())
	if err != nil {
		t.Fatalf("LaunchCampaign error: %v", err)
	}
	if campaign.Status != domain.StatusActive {
		t.Fatalf("campaign status = %s, want active", campaign.Status)
	}

	if len(records) != 1 {
		t.Fatalf("expected 1 channel record, got %d", len(records))
	}
	if records[0].Channel != domain.ChannelAmazonAds {
		t.Fatalf("persisted channel = %s, want amazon_ads", records[0].Channel)
	}
	if records[0].BudgetCents != 50_000 {
		t.Fatalf("persisted budget = %d, want 50000", records[0].BudgetCents)
	}
	if records[0].SpendCents != 0 || records[0].Impressions != 0 || records[0].Conversions != 0 {
		t.Fatalf("channel record counters must start at zero: %+v", records[0])
	}
}

// TestLaunchCampaignDuplicateChannel lists the same channel twice in
// the request and checks the integration fires exactly once: duplicate
// entries must not double the real ad spend or the channel record.
func TestLaunchCampaignDuplicateChannel(t *testing.T) {
	repo := mocks.NewMockMarketingRepository(t)
	books := mocks.NewMockBookMetadataProvider(t)

	created := &domain.Campaign{ID: "c1", ProjectID: "project-1", Status: domain.StatusActive}
	repo.EXPECT().
		CreateCampaign(mock.Anything, mock.AnythingOfType("domain.Campaign")).
		Return(created, nil)
	books.EXPECT().
		BookMetadata(mock.Anything, "project-1").
		Return(&domain.BookMetadata{ProjectID: "project-1"}, nil)

	var (
		mu       sync.Mutex
		launches int
		records  int
	)
	amazon := mocks.NewMockChannelLauncher(t)
	amazon.EXPECT().Channel().Return(domain.ChannelAmazonAds)
	amazon.EXPECT().
		Launch(mock.Anything, mock.AnythingOfType("domain.BookMetadata"), mock.AnythingOfType("domain.Campaign"), int64(50_000)).
		Run(func(ctx context.Context, book domain.BookMetadata, campaign domain.Campaign, budgetCents int64) {
			mu.Lock()
			defer mu.Unlock()
			launches++
		}).
		Return(&port.ChannelOutcome{ExternalID: "az-1", BudgetCents: 50_000}, nil)

	repo.EXPECT().
		CreateChannelRecord(mock.Anything, mock.AnythingOfType("domain.ChannelRecord")).
		Run(func(ctx context.Context, rec domain.ChannelRecord) {
			mu.Lock()
			defer mu.Unlock()
			records++
		}).
		Return(&domain.ChannelRecord{ID: "ch-1"}, nil)

	svc := NewOrchestrator(repo, books, nil, discardLogger(), amazon)

	req := launchRequest()
	req.Channels = []domain.Channel{domain.ChannelAmazonAds, domain.ChannelAmazonAds}
	if _, err := svc.LaunchCampaign(context.Background(), req); err != nil {
		t.Fatalf("LaunchCampaign error: %v", err)
	}

	if launches != 1 {
		t.Fatalf("launcher fired %d times for a duplicated channel entry, want 1", launches)
	}
	if records != 1 {
		t.Fatalf("persisted %d channel records for a duplicated channel entry, want 1", records)
	}
}

// TestLaunchCampaignCreateFailure checks that a campaign-record
// creation failure aborts the launch before any channel is attempted.
func TestLaunchCampaignCreateFailure(t *testing.T) {
	repo := mocks.NewMockMarketingRepository(t)
	books := mocks.NewMockBookMetadataProvider(t)

	repo.EXPECT().
		CreateCampaign(mock.Anything, mock.AnythingOfType("domain.Campaign")).
		Return(nil, errors.New("db unavailable"))

	amazon := mocks.NewMockChannelLauncher(t)
	amazon.EXPECT().Channel().Return(domain.ChannelAmazonAds)

	facebook := mocks.NewMockChannelLauncher(t)
	facebook.EXPECT().Channel().Return(domain.ChannelFacebook)

	svc := NewOrchestrator(repo, books, nil, discardLogger(), amazon, facebook)

	_, err := svc.LaunchCampaign(context.Background(), launchRequest())
	var me *domain.MarketingError
	if !errors.As(err, &me) {
		t.Fatalf("expected MarketingError, got %v", err)
	}
	if me.Code != domain.CodeCampaignLaunch {
		t.Fatalf("code = %s, want %s", me.Code, domain.CodeCampaignLaunch)
	}
}

func TestLaunchCampaignValidation(t *testing.T) {
	repo := mocks.NewMockMarketingRepository(t)
	books := mocks.NewMockBookMetadataProvider(t)
	svc := NewOrchestrator(repo, books, nil, discardLogger())

	cases := []struct {
		name   string
		mutate func(*port.LaunchCampaignRequest)
	}{
		{"empty project", func(r *port.LaunchCampaignRequest) { r.ProjectID = "" }},
		{"bad type", func(r *port.LaunchCampaignRequest) { r.Type = "blitz" }},
		{"zero budget", func(r *port.LaunchCampaignRequest) { r.BudgetCents = 0 }},
		{"no channels", func(r *port.LaunchCampaignRequest) { r.Channels = nil }},
		{"bad channel", func(r *port.LaunchCampaignRequest) { r.Channels = []domain.Channel{"telegraph"} }},
		{"zero duration", func(r *port.LaunchCampaignRequest) { r.DurationDays = 0 }},
		{"too long", func(r *port.LaunchCampaignRequest) { r.DurationDays = 366 }},
	}
	for _, c := range cases {
		req := launchRequest()
		c.mutate(&req)
		_, err := svc.LaunchCampaign(context.Background(), req)
		var me *domain.MarketingError
		if !errors.As(err, &me) || me.Code != domain.CodeValidation {
			t.Fatalf("%s: expected validation error, got %v", c.name, err)
		}
	}
}

func TestPauseCampaign(t *testing.T) {
	repo := mocks.NewMockMarketingRepository(t)
	books := mocks.NewMockBookMetadataProvider(t)
	svc := NewOrchestrator(repo, books, nil, discardLogger())

	repo.EXPECT().
		UpdateCampaignStatus(mock.Anything, "c1", domain.StatusPaused).
		Return(&domain.Campaign{ID: "c1", Status: domain.StatusPaused}, nil)
	if err := svc.PauseCampaign(context.Background(), "c1"); err != nil {
		t.Fatalf("PauseCampaign error: %v", err)
	}

	repo.EXPECT().
		UpdateCampaignStatus(mock.Anything, "missing", domain.StatusPaused).
		Return(nil, nil)
	err := svc.PauseCampaign(context.Background(), "missing")
	var me *domain.MarketingError
	if !errors.As(err, &me) || me.Code != domain.CodeCampaignNotFound {
		t.Fatalf("expected CAMPAIGN_NOT_FOUND, got %v", err)
	}

	repo.EXPECT().
		UpdateCampaignStatus(mock.Anything, "c2", domain.StatusPaused).
		Return(nil, errors.New("db down"))
	err = svc.PauseCampaign(context.Background(), "c2")
	if !errors.As(err, &me) || me.Code != domain.CodeCampaignPause {
		t.Fatalf("expected CAMPAIGN_PAUSE_ERROR, got %v", err)
	}
}

func TestCompleteCampaign(t *testing.T) {
	repo := mocks.NewMockMarketingRepository(t)
	books := mocks.NewMockBookMetadataProvider(t)
	svc := NewOrchestrator(repo, books, nil, discardLogger())

	repo.EXPECT().
		UpdateCampaignStatus(mock.Anything, "c1", domain.StatusCompleted).
		Return(&domain.Campaign{ID: "c1", Status: domain.StatusCompleted}, nil)
	if err := svc.CompleteCampaign(context.Background(), "c1"); err != nil {
		t.Fatalf("CompleteCampaign error: %v", err)
	}
}
