package channel

import (
	"context"
	"fmt"
	"time"

	"prose-marketing/internal/config/configs"
	"prose-marketing/internal/core/domain"
	"prose-marketing/internal/core/port"
)

// socialPlatforms is the organic posting surface for a launch campaign.
var socialPlatforms = []string{"twitter", "facebook", "instagram"}

// OrganicSocial schedules launch-week posts through the social
// scheduling API. Organic posts carry no ad spend; the allocation is
// the content budget echoed back for the channel record.
type OrganicSocial struct {
	apiClient
}

// NewOrganicSocial creates the social launcher.
func NewOrganicSocial(cfg configs.ChannelAPI) *OrganicSocial {
	return &OrganicSocial{apiClient: newAPIClient(cfg)}
}

func (s *OrganicSocial) Channel() domain.Channel { return domain.ChannelSocial }

// Launch schedules a post series across the configured platforms for
// the campaign window.
func (s *OrganicSocial) Launch(ctx context.Context, book domain.BookMetadata, campaign domain.Campaign, budgetCents int64) (*port.ChannelOutcome, error) {
	payload := map[string]any{
		"project_id":  book.ProjectID,
		"book_title":  book.Title,
		"author_name": book.AuthorName,
		"launch_date": time.Now().UTC(),
		"end_date":    campaign.EndDate,
		"platforms":   socialPlatforms,
	}

	var resp struct {
		ScheduleID     string `json:"schedule_id"`
		PostsScheduled int    `json:"posts_scheduled"`
	}
	if err := s.post(ctx, "/api/schedules", payload, &resp); err != nil {
		return nil, fmt.Errorf("social schedule launch: %w", err)
	}

	return &port.ChannelOutcome{
		ExternalID:  resp.ScheduleID,
		BudgetCents: budgetCents,
		Detail:      fmt.Sprintf("%d posts scheduled", resp.PostsScheduled),
	}, nil
}

// FetchPerformance aggregates engagement across the scheduled posts.
func (s *OrganicSocial) FetchPerformance(ctx context.Context, externalID string) (*port.ChannelPerformance, error) {
	var resp struct {
		Views       int64 `json:"views"`
		Clicks      int64 `json:"clicks"`
		Conversions int64 `json:"conversions"`
	}
	if err := s.get(ctx, "/api/schedules/"+externalID+"/engagement", &resp); err != nil {
		return nil, fmt.Errorf("social engagement: %w", err)
	}
	return &port.ChannelPerformance{
		Impressions: resp.Views,
		Clicks:      resp.Clicks,
		Conversions: resp.Conversions,
	}, nil
}
