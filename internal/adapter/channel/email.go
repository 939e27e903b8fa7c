package channel

import (
	"context"
	"fmt"

	"prose-marketing/internal/config/configs"
	"prose-marketing/internal/core/domain"
	"prose-marketing/internal/core/port"
)

// sequenceGapDays is the delay between consecutive emails of a reader
// nurture sequence.
const sequenceGapDays = 3

// EmailSequence starts reader nurture sequences through the email
// service provider API.
type EmailSequence struct {
	apiClient
}

// NewEmailSequence creates the email launcher.
func NewEmailSequence(cfg configs.ChannelAPI) *EmailSequence {
	return &EmailSequence{apiClient: newAPIClient(cfg)}
}

func (e *EmailSequence) Channel() domain.Channel { return domain.ChannelEmail }

// Launch creates a welcome-plus-nurture sequence for the book's reader
// list. The provider fills in content from the supplied book context.
func (e *EmailSequence) Launch(ctx context.Context, book domain.BookMetadata, campaign domain.Campaign, budgetCents int64) (*port.ChannelOutcome, error) {
	payload := map[string]any{
		"name":        fmt.Sprintf("%s - Reader Sequence", book.Title),
		"project_id":  book.ProjectID,
		"author_name": book.AuthorName,
		"book_title":  book.Title,
		"emails": []map[string]any{
			{"email_type": "welcome", "delay_days": 0},
			{"email_type": "nurture", "delay_days": sequenceGapDays},
			{"email_type": "nurture", "delay_days": 2 * sequenceGapDays},
			{"email_type": "launch", "delay_days": 3 * sequenceGapDays},
		},
	}

	var resp struct {
		SequenceID string `json:"sequence_id"`
	}
	if err := e.post(ctx, "/api/sequences", payload, &resp); err != nil {
		return nil, fmt.Errorf("email sequence launch: %w", err)
	}

	return &port.ChannelOutcome{
		ExternalID:  resp.SequenceID,
		BudgetCents: budgetCents,
	}, nil
}

// FetchPerformance aggregates the sequence's send statistics.
func (e *EmailSequence) FetchPerformance(ctx context.Context, externalID string) (*port.ChannelPerformance, error) {
	var resp struct {
		Recipients  int64 `json:"recipients"`
		Clicks      int64 `json:"clicks"`
		Conversions int64 `json:"conversions"`
	}
	if err := e.get(ctx, "/api/sequences/"+externalID+"/stats", &resp); err != nil {
		return nil, fmt.Errorf("email sequence stats: %w", err)
	}
	return &port.ChannelPerformance{
		Impressions: resp.Recipients,
		Clicks:      resp.Clicks,
		Conversions: resp.Conversions,
	}, nil
}
