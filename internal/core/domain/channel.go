package domain

import (
	"slices"
	"time"
)

// Channel identifies one marketing distribution surface.
type Channel string

const (
	ChannelAmazonAds Channel = "amazon_ads"
	ChannelFacebook  Channel = "facebook_ads"
	ChannelBookBub   Channel = "bookbub"
	ChannelEmail     Channel = "email"
	ChannelSocial    Channel = "social_organic"
)

// Channels lists every known channel in breakdown order. Launch
// dispatch iterates this slice, so each channel fires at most once per
// campaign no matter how the request lists it.
var Channels = []Channel{
	ChannelAmazonAds,
	ChannelFacebook,
	ChannelBookBub,
	ChannelEmail,
	ChannelSocial,
}

// ValidChannel reports whether c is a known channel.
func ValidChannel(c Channel) bool {
	return slices.Contains(Channels, c)
}

// ChannelRecord is the durable per-channel state of a launched
// campaign. At most one record exists per (campaign, channel); a
// channel whose launch failed has no record at all. The tally fields
// only ever grow over the record's life.
type ChannelRecord struct {
	ID           string    `json:"id"`
	CampaignID   string    `json:"campaign_id"`
	Channel      Channel   `json:"channel"`
	BudgetCents  int64     `json:"budget_allocation_cents"`
	SpendCents   int64     `json:"spend_cents"`
	Impressions  int64     `json:"impressions"`
	Clicks       int64     `json:"clicks"`
	Conversions  int64     `json:"conversions"`
	RevenueCents int64     `json:"revenue_cents"`
	CreatedAt    time.Time `json:"created_at"`
}

// EmailCampaign is one email send belonging to a campaign's nurture
// sequence. Rows are written by the email ingestion path; the core
// only reads them when aggregating email metrics.
type EmailCampaign struct {
	ID          string    `json:"id"`
	CampaignID  string    `json:"campaign_id"`
	EmailType   string    `json:"email_type"` // welcome, nurture, launch, promo, newsletter
	Subject     string    `json:"subject_line"`
	SendDate    time.Time `json:"send_date"`
	Recipients  int64     `json:"recipients_count"`
	Opens       int64     `json:"opens_count"`
	Clicks      int64     `json:"clicks_count"`
	Conversions int64     `json:"conversions_count"`
	Status      string    `json:"status"` // draft, scheduled, sent
}

// PostEngagement is the engagement tally of a single social post.
type PostEngagement struct {
	Views       int64 `json:"views"`
	Likes       int64 `json:"likes"`
	Comments    int64 `json:"comments"`
	Shares      int64 `json:"shares"`
	Clicks      int64 `json:"clicks"`
	Conversions int64 `json:"conversions"`
}

// SocialPost is one organic post scheduled for a campaign. Like email
// campaigns these rows are written outside the core and only read here.
type SocialPost struct {
	ID         string         `json:"id"`
	CampaignID string         `json:"campaign_id"`
	Platform   string         `json:"platform"` // twitter, facebook, instagram, tiktok
	Content    string         `json:"content"`
	Status     string         `json:"status"` // draft, scheduled, posted, failed
	Engagement PostEngagement `json:"engagement"`
	CreatedAt  time.Time      `json:"created_at"`
}
