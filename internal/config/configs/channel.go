package configs

import "time"

// ChannelAPI holds the connection settings for one outbound marketing
// API (an ad platform, the email provider, the social scheduler or the
// CRM). Each consumer supplies its own env prefix.
type ChannelAPI struct {
	// BaseURL is the root of the provider's HTTP API.
	BaseURL string `env:"BASE_URL"`
	// APIKey is sent as a bearer token on every request.
	APIKey string `env:"API_KEY"`
	// TimeoutSeconds bounds each request to the provider.
	TimeoutSeconds int `env:"TIMEOUT_SECONDS" envDefault:"10"`
}

// Timeout returns the request timeout as a duration.
func (c ChannelAPI) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
