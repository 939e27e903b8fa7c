package channel

import (
	"context"
	"fmt"

	"prose-marketing/internal/config/configs"
	"prose-marketing/internal/core/domain"
	"prose-marketing/internal/core/port"
)

// FacebookAds launches conversion campaigns on the Meta Marketing API.
type FacebookAds struct {
	apiClient
}

// NewFacebookAds creates the Facebook Ads launcher.
func NewFacebookAds(cfg configs.ChannelAPI) *FacebookAds {
	return &FacebookAds{apiClient: newAPIClient(cfg)}
}

func (f *FacebookAds) Channel() domain.Channel { return domain.ChannelFacebook }

// Launch creates a campaign with a reader-interest audience and a
// creative assembled from the book metadata.
func (f *FacebookAds) Launch(ctx context.Context, book domain.BookMetadata, campaign domain.Campaign, budgetCents int64) (*port.ChannelOutcome, error) {
	genre := book.Genre
	if genre == "" {
		genre = "Books"
	}

	payload := map[string]any{
		"name":               fmt.Sprintf("%s - Facebook Campaign", book.Title),
		"daily_budget_cents": budgetCents / daysPerMonth,
		"audience": map[string]any{
			"age_min":   18,
			"age_max":   65,
			"interests": []string{genre},
			"locations": []string{"US", "GB", "CA", "AU"},
		},
		"creative": map[string]any{
			"image_url":   book.CoverURL,
			"headline":    book.Title,
			"description": book.Description,
			"link_url":    book.StoreURL,
		},
	}

	var resp struct {
		CampaignID string `json:"campaign_id"`
	}
	if err := f.post(ctx, "/v19.0/campaigns", payload, &resp); err != nil {
		return nil, fmt.Errorf("facebook ads launch: %w", err)
	}

	return &port.ChannelOutcome{
		ExternalID:  resp.CampaignID,
		BudgetCents: budgetCents,
	}, nil
}

// FetchPerformance pulls campaign insights for a launched campaign.
func (f *FacebookAds) FetchPerformance(ctx context.Context, externalID string) (*port.ChannelPerformance, error) {
	var resp struct {
		Impressions  int64 `json:"impressions"`
		Clicks       int64 `json:"clicks"`
		Conversions  int64 `json:"conversions"`
		SpendCents   int64 `json:"spend_cents"`
		RevenueCents int64 `json:"purchase_value_cents"`
	}
	if err := f.get(ctx, "/v19.0/campaigns/"+externalID+"/insights", &resp); err != nil {
		return nil, fmt.Errorf("facebook ads performance: %w", err)
	}
	return &port.ChannelPerformance{
		Impressions:  resp.Impressions,
		Clicks:       resp.Clicks,
		Conversions:  resp.Conversions,
		SpendCents:   resp.SpendCents,
		RevenueCents: resp.RevenueCents,
	}, nil
}
