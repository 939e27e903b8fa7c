// Package channel contains the outbound channel integrations. Each
// launcher is a thin client over one provider's HTTP API and satisfies
// port.ChannelLauncher; the orchestrator picks launchers by channel
// kind and never imports a provider directly.
package channel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"prose-marketing/internal/config/configs"
)

// apiClient is the shared HTTP plumbing for the channel launchers:
// base URL, bearer auth and JSON encoding. One client instance is
// constructed per provider at startup and shared by reference.
type apiClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func newAPIClient(cfg configs.ChannelAPI) apiClient {
	return apiClient{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout()},
	}
}

// doRequest executes one JSON request against the provider API and
// decodes the response into out when out is non-nil.
func (c *apiClient) doRequest(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
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

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

func (c *apiClient) post(ctx context.Context, path string, body, out any) error {
	return c.doRequest(ctx, http.MethodPost, path, body, out)
}

func (c *apiClient) get(ctx context.Context, path string, out any) error {
	return c.doRequest(ctx, http.MethodGet, path, nil, out)
}

// daysPerMonth converts a campaign-level allocation into the daily
// budget the ad platforms expect.
const daysPerMonth = 30
