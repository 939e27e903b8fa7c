package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"prose-marketing/internal/core/domain"
	"prose-marketing/internal/core/port"
)

const maxDurationDays = 365

// Orchestrator owns the campaign lifecycle: creation, budget
// allocation, concurrent fan-out to the channel launchers and status
// transitions. It implements port.CampaignUseCase.
type Orchestrator struct {
	repo      port.MarketingRepository
	books     port.BookMetadataProvider
	crm       port.CRMSync
	launchers map[domain.Channel]port.ChannelLauncher
	logger    *slog.Logger
}

// NewOrchestrator wires the orchestrator with its collaborators. Each
// launcher is registered under the channel it reports via Channel().
func NewOrchestrator(
	repo port.MarketingRepository,
	books port.BookMetadataProvider,
	crm port.CRMSync,
	logger *slog.Logger,
	launchers ...port.ChannelLauncher,
) *Orchestrator {
	byChannel := make(map[domain.Channel]port.ChannelLauncher, len(launchers))
	for _, l := range launchers {
		byChannel[l.Channel()] = l
	}
	return &Orchestrator{
		repo:      repo,
		books:     books,
		crm:       crm,
		launchers: byChannel,
		logger:    logger,
	}
}

// LaunchCampaign creates the campaign record, allocates budget and
// launches every requested channel concurrently. All launch tasks are
// waited on before returning; an individual channel failure is logged
// and swallowed so one broken integration never fails the whole
// launch. Only request validation and campaign-record creation can
// fail the call.
func (o *Orchestrator) LaunchCampaign(ctx context.Context, req port.LaunchCampaignRequest) (*domain.Campaign, error) {
	if err := validateLaunchRequest(req); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	campaign, err := o.repo.CreateCampaign(ctx, domain.Campaign{
		ProjectID:   req.ProjectID,
		Name:        fmt.Sprintf("%s Campaign - %s", req.Type, now.Format(time.RFC3339)),
		Type:        req.Type,
		StartDate:   now,
		EndDate:     now.AddDate(0, 0, req.DurationDays),
		BudgetCents: req.BudgetCents,
		Status:      domain.StatusActive,
	})
	if err != nil {
		return nil, domain.ErrCampaignLaunch(err)
	}

	o.logger.Info("campaign created",
		slog.String("campaign_id", campaign.ID),
		slog.String("type", string(req.Type)))

	alloc := AllocateBudget(req.BudgetCents, req.Channels)

	// Dispatch over the channel enumeration, not the raw request slice:
	// a duplicated entry selects its channel once, never twice.
	var wg sync.WaitGroup
	for _, ch := range domain.Channels {
		if !slices.Contains(req.Channels, ch) {
			continue
		}
		wg.Add(1)
		go func(ch domain.Channel, budgetCents int64) {
			defer wg.Done()
			o.launchChannel(ctx, *campaign, ch, budgetCents)
		}(ch, alloc[ch])
	}
	wg.Wait()

	if o.crm != nil {
		if err := o.crm.SyncCampaign(ctx, campaign); err != nil {
			o.logger.Error("crm sync failed",
				slog.String("campaign_id", campaign.ID),
				slog.Any("error", err))
		}
	}

	o.logger.Info("campaign fully launched", slog.String("campaign_id", campaign.ID))
	return campaign, nil
}

// launchChannel runs one channel launch task: resolve book context,
// invoke the channel capability, persist the channel record. Every
// failure path logs and returns without propagating so sibling
// channels are unaffected.
func (o *Orchestrator) launchChannel(ctx context.Context, campaign domain.Campaign, ch domain.Channel, budgetCents int64) {
	launcher, ok := o.launchers[ch]
	if !ok {
		o.logger.Error("no launcher registered for channel",
			slog.String("campaign_id", campaign.ID),
			slog.String("channel", string(ch)))
		return
	}

	book, err := o.books.BookMetadata(ctx, campaign.ProjectID)
	if err != nil {
		o.logger.Error("failed to fetch book metadata",
			slog.String("campaign_id", campaign.ID),
			slog.String("channel", string(ch)),
			slog.Any("error", err))
		return
	}

	outcome, err := launcher.Launch(ctx, *book, campaign, budgetCents)
	if err != nil {
		o.logger.Error("channel launch failed",
			slog.String("campaign_id", campaign.ID),
			slog.String("channel", string(ch)),
			slog.Any("error", err))
		return
	}

	// Fixed-cost channels report the budget they actually committed.
	committed := budgetCents
	if outcome != nil && outcome.BudgetCents > 0 {
		committed = outcome.BudgetCents
	}

	if _, err := o.repo.CreateChannelRecord(ctx, domain.ChannelRecord{
		CampaignID:  campaign.ID,
		Channel:     ch,
		BudgetCents: committed,
	}); err != nil {
		o.logger.Error("failed to persist channel record",
			slog.String("campaign_id", campaign.ID),
			slog.String("channel", string(ch)),
			slog.Any("error", err))
		return
	}

	o.logger.Info("channel launched",
		slog.String("campaign_id", campaign.ID),
		slog.String("channel", string(ch)),
		slog.Int64("budget_cents", committed))
}

// GetCampaign returns a campaign by id.
func (o *Orchestrator) GetCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	campaign, err := o.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("get campaign %s: %w", campaignID, err)
	}
	if campaign == nil {
		return nil, domain.ErrCampaignNotFound(campaignID)
	}
	return campaign, nil
}

// PauseCampaign transitions the campaign to paused. Pausing an already
// paused campaign is accepted; there is no status-machine guard.
func (o *Orchestrator) PauseCampaign(ctx context.Context, campaignID string) error {
	updated, err := o.repo.UpdateCampaignStatus(ctx, campaignID, domain.StatusPaused)
	if err != nil {
		return domain.ErrCampaignPause(campaignID, err)
	}
	if updated == nil {
		return domain.ErrCampaignNotFound(campaignID)
	}
	o.logger.Info("campaign paused", slog.String("campaign_id", campaignID))
	return nil
}

// CompleteCampaign transitions the campaign to completed.
func (o *Orchestrator) CompleteCampaign(ctx context.Context, campaignID string) error {
	updated, err := o.repo.UpdateCampaignStatus(ctx, campaignID, domain.StatusCompleted)
	if err != nil {
		return domain.ErrCampaignComplete(campaignID, err)
	}
	if updated == nil {
		return domain.ErrCampaignNotFound(campaignID)
	}
	o.logger.Info("campaign completed", slog.String("campaign_id", campaignID))
	return nil
}

func validateLaunchRequest(req port.LaunchCampaignRequest) error {
	if req.ProjectID == "" {
		return domain.ErrValidation("project_id", "must not be empty")
	}
	if !domain.ValidCampaignType(req.Type) {
		return domain.ErrValidation("campaign_type", fmt.Sprintf("unknown campaign type %q", req.Type))
	}
	if req.BudgetCents <= 0 {
		return domain.ErrValidation("budget_cents", "must be greater than zero")
	}
	if len(req.Channels) == 0 {
		return domain.ErrValidation("channels", "at least one channel is required")
	}
	for _, ch := range req.Channels {
		if !domain.ValidChannel(ch) {
			return domain.ErrValidation("channels", fmt.Sprintf("unknown channel %q", ch))
		}
	}
	if req.DurationDays < 1 || req.DurationDays > maxDurationDays {
		return domain.ErrValidation("duration_days", "must be between 1 and 365")
	}
	return nil
}
