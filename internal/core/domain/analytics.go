package domain

import "time"

// Dollars converts an integer cent amount into a float dollar amount
// for reporting payloads.
func Dollars(cents int64) float64 {
	return float64(cents) / 100
}

// ChannelMetrics is the normalized per-channel view of an ad-style
// channel. ROI is nil when it is undefined (no spend yet); an
// undefined ROI excludes the channel from best-channel comparisons
// rather than competing as zero.
type ChannelMetrics struct {
	Spend       float64  `json:"spend"`
	Revenue     float64  `json:"revenue"`
	Impressions int64    `json:"impressions"`
	Clicks      int64    `json:"clicks"`
	Conversions int64    `json:"conversions"`
	ROI         *float64 `json:"roi,omitempty"`
}

// EmailMetrics aggregates every email send of a campaign's sequence.
type EmailMetrics struct {
	Sent        int64   `json:"sent"`
	Opens       int64   `json:"opens"`
	Clicks      int64   `json:"clicks"`
	Conversions int64   `json:"conversions"`
	OpenRate    float64 `json:"open_rate"`
	ClickRate   float64 `json:"click_rate"`
}

// SocialMetrics aggregates every organic post of a campaign.
// Engagement counts likes, comments and shares; views are reported
// separately as impressions.
type SocialMetrics struct {
	Posts       int64 `json:"posts"`
	Impressions int64 `json:"impressions"`
	Engagement  int64 `json:"engagement"`
	Clicks      int64 `json:"clicks"`
	Conversions int64 `json:"conversions"`
}

// ChannelBreakdown holds per-channel metrics for the channels that
// actually launched. A nil entry means the channel never produced a
// record, which is the normal outcome of a failed launch. Field order
// is the comparison order for report tie-breaking.
type ChannelBreakdown struct {
	AmazonAds *ChannelMetrics `json:"amazon_ads,omitempty"`
	Facebook  *ChannelMetrics `json:"facebook,omitempty"`
	BookBub   *ChannelMetrics `json:"bookbub,omitempty"`
	Email     *EmailMetrics   `json:"email,omitempty"`
	Social    *SocialMetrics  `json:"social,omitempty"`
}

// CampaignAnalytics is a derived snapshot of campaign performance. It
// is recomputed from persisted state on every request and never
// stored, so two reads with no intervening writes are identical.
type CampaignAnalytics struct {
	CampaignID string           `json:"campaign_id"`
	Spend      float64          `json:"spend"`
	Revenue    float64          `json:"revenue"`
	SalesCount int64            `json:"sales_count"`
	ROI        *float64         `json:"roi,omitempty"`
	ACOS       *float64         `json:"acos,omitempty"`
	ROAS       *float64         `json:"roas,omitempty"`
	CPA        *float64         `json:"cpa,omitempty"`
	Channels   ChannelBreakdown `json:"channels"`
}

// BestChannelNone is reported when no launched channel has a defined ROI.
const BestChannelNone = "N/A"

// ReportSummary is the headline block of a marketing report.
type ReportSummary struct {
	ROI                   *float64 `json:"roi,omitempty"`
	TotalSales            int64    `json:"total_sales"`
	BestPerformingChannel string   `json:"best_performing_channel"`
}

// MarketingReport describes a generated campaign report. ReportFile is
// a descriptor for the rendered artifact; rendering itself is handled
// by an external collaborator.
type MarketingReport struct {
	ReportFile  string        `json:"report_file"`
	GeneratedAt time.Time     `json:"generated_at"`
	Summary     ReportSummary `json:"summary"`
}

// DashboardData is the project-level overview: all-time sales against
// the spend of currently active campaigns.
type DashboardData struct {
	TotalSales      int64    `json:"total_sales"`
	TotalRevenue    float64  `json:"total_revenue"`
	TotalSpend      float64  `json:"total_spend"`
	ROI             *float64 `json:"roi,omitempty"`
	ActiveCampaigns int64    `json:"active_campaigns"`
}
