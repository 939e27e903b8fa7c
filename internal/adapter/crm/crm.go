// Package crm pushes marketing state into the author CRM so launch
// activity shows up next to reader contacts. It also hosts the static
// book metadata source the launchers draw their creative from.
package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"prose-marketing/internal/config/configs"
	"prose-marketing/internal/core/domain"
)

// Client talks to the CRM HTTP API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(cfg configs.ChannelAPI) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout()},
	}
}

// SyncCampaign records a campaign event against the CRM project record.
func (c *Client) SyncCampaign(ctx context.Context, campaign *domain.Campaign) error {
	return c.postJSON(ctx, "/api/campaign-events", map[string]any{
		"project_id":    campaign.ProjectID,
		"campaign_id":   campaign.ID,
		"campaign_name": campaign.Name,
		"campaign_type": campaign.Type,
		"status":        campaign.Status,
		"budget_cents":  campaign.BudgetCents,
		"start_date":    campaign.StartDate,
		"end_date":      campaign.EndDate,
	})
}

// SyncContact upserts a reader contact, tagged by project and source.
func (c *Client) SyncContact(ctx context.Context, contact domain.ReaderContact) error {
	firstName, lastName, _ := strings.Cut(contact.Name, " ")
	return c.postJSON(ctx, "/api/contacts", map[string]any{
		"email":      contact.Email,
		"first_name": firstName,
		"last_name":  lastName,
		"tags":       []string{"reader_" + contact.ProjectID, string(contact.Source)},
		"custom_fields": map[string]any{
			"book_purchased": contact.ProjectID,
			"purchase_date":  time.Now().UTC(),
		},
	})
}

func (c *Client) postJSON(ctx context.Context, path string, payload any) error {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("CRM error (status %d): %s", resp.StatusCode, string(body))
	}
	return nil
}
