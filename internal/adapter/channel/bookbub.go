package channel

import (
	"context"
	"fmt"
	"time"

	"prose-marketing/internal/config/configs"
	"prose-marketing/internal/core/domain"
	"prose-marketing/internal/core/port"
)

// Featured Deal pricing and lead time. Deals are scheduled two weeks
// out and run for three days at the promo price.
const (
	dealLeadTime      = 14 * 24 * time.Hour
	dealDuration      = 3 * 24 * time.Hour
	regularPriceCents = 999
	dealPriceCents    = 99
)

// BookBub applies for Featured Deals through the BookBub partner API.
// Unlike the ad platforms it is a fixed-cost channel: the committed
// budget is whatever the application quotes, not the offered
// allocation.
type BookBub struct {
	apiClient
}

// NewBookBub creates the BookBub launcher.
func NewBookBub(cfg configs.ChannelAPI) *BookBub {
	return &BookBub{apiClient: newAPIClient(cfg)}
}

func (b *BookBub) Channel() domain.Channel { return domain.ChannelBookBub }

// Launch submits a Featured Deal application for the book.
func (b *BookBub) Launch(ctx context.Context, book domain.BookMetadata, campaign domain.Campaign, budgetCents int64) (*port.ChannelOutcome, error) {
	genre := book.Genre
	if genre == "" {
		genre = "fiction"
	}
	dealStart := time.Now().UTC().Add(dealLeadTime)

	payload := map[string]any{
		"book_title":          book.Title,
		"author_name":         book.AuthorName,
		"store_url":           book.StoreURL,
		"genre":               genre,
		"regular_price_cents": regularPriceCents,
		"deal_price_cents":    dealPriceCents,
		"deal_start_date":     dealStart,
		"deal_end_date":       dealStart.Add(dealDuration),
	}

	var resp struct {
		DealID             string `json:"deal_id"`
		EstimatedCostCents int64  `json:"estimated_cost_cents"`
		Status             string `json:"status"`
	}
	if err := b.post(ctx, "/v1/featured-deals", payload, &resp); err != nil {
		return nil, fmt.Errorf("bookbub deal application: %w", err)
	}

	committed := resp.EstimatedCostCents
	if committed == 0 {
		committed = budgetCents
	}
	return &port.ChannelOutcome{
		ExternalID:  resp.DealID,
		BudgetCents: committed,
		Detail:      resp.Status,
	}, nil
}

// FetchPerformance pulls deal performance for an accepted Featured Deal.
func (b *BookBub) FetchPerformance(ctx context.Context, externalID string) (*port.ChannelPerformance, error) {
	var resp struct {
		Impressions  int64 `json:"impressions"`
		Clicks       int64 `json:"clicks"`
		Sales        int64 `json:"sales"`
		SpendCents   int64 `json:"cost_cents"`
		RevenueCents int64 `json:"revenue_cents"`
	}
	if err := b.get(ctx, "/v1/featured-deals/"+externalID+"/performance", &resp); err != nil {
		return nil, fmt.Errorf("bookbub performance: %w", err)
	}
	return &port.ChannelPerformance{
		Impressions:  resp.Impressions,
		Clicks:       resp.Clicks,
		Conversions:  resp.Sales,
		SpendCents:   resp.SpendCents,
		RevenueCents: resp.RevenueCents,
	}, nil
}
