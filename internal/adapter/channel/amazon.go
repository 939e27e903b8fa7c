package channel

import (
	"context"
	"fmt"

	"prose-marketing/internal/config/configs"
	"prose-marketing/internal/core/domain"
	"prose-marketing/internal/core/port"
)

// AmazonAds launches sponsored-product campaigns on the Amazon Ads API.
type AmazonAds struct {
	apiClient
}

// NewAmazonAds creates the Amazon Ads launcher.
func NewAmazonAds(cfg configs.ChannelAPI) *AmazonAds {
	return &AmazonAds{apiClient: newAPIClient(cfg)}
}

func (a *AmazonAds) Channel() domain.Channel { return domain.ChannelAmazonAds }

// Launch creates a sponsored-product campaign keyed on the book's ASIN
// and keywords, with the allocation spread over a daily budget.
func (a *AmazonAds) Launch(ctx context.Context, book domain.BookMetadata, campaign domain.Campaign, budgetCents int64) (*port.ChannelOutcome, error) {
	payload := map[string]any{
		"name":               fmt.Sprintf("%s - Sponsored Products", book.Title),
		"asin":               book.ASIN,
		"daily_budget_cents": budgetCents / daysPerMonth,
		"keywords":           book.Keywords,
		"bidding_strategy":   "auto",
		"start_date":         campaign.StartDate,
		"end_date":           campaign.EndDate,
	}

	var resp struct {
		CampaignID string `json:"campaign_id"`
		AdGroupID  string `json:"ad_group_id"`
	}
	if err := a.post(ctx, "/v2/sp/campaigns", payload, &resp); err != nil {
		return nil, fmt.Errorf("amazon ads launch: %w", err)
	}

	return &port.ChannelOutcome{
		ExternalID:  resp.CampaignID,
		BudgetCents: budgetCents,
		Detail:      fmt.Sprintf("ad group %s", resp.AdGroupID),
	}, nil
}

// FetchPerformance pulls the campaign report for a launched sponsored-
// product campaign.
func (a *AmazonAds) FetchPerformance(ctx context.Context, externalID string) (*port.ChannelPerformance, error) {
	var resp struct {
		Impressions  int64 `json:"impressions"`
		Clicks       int64 `json:"clicks"`
		Conversions  int64 `json:"attributed_conversions"`
		SpendCents   int64 `json:"cost_cents"`
		RevenueCents int64 `json:"attributed_sales_cents"`
	}
	if err := a.get(ctx, "/v2/sp/campaigns/"+externalID+"/report", &resp); err != nil {
		return nil, fmt.Errorf("amazon ads performance: %w", err)
	}
	return &port.ChannelPerformance{
		Impressions:  resp.Impressions,
		Clicks:       resp.Clicks,
		Conversions:  resp.Conversions,
		SpendCents:   resp.SpendCents,
		RevenueCents: resp.RevenueCents,
	}, nil
}
