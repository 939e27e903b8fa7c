package domain

import "time"

// CampaignType classifies where in the book lifecycle a campaign runs.
type CampaignType string

const (
	CampaignPreLaunch CampaignType = "pre_launch"
	CampaignLaunch    CampaignType = "launch"
	CampaignOngoing   CampaignType = "ongoing"
	CampaignPromo     CampaignType = "promo"
)

// ValidCampaignType reports whether t is a known campaign type.
func ValidCampaignType(t CampaignType) bool {
	switch t {
	case CampaignPreLaunch, CampaignLaunch, CampaignOngoing, CampaignPromo:
		return true
	}
	return false
}

// CampaignStatus is the campaign lifecycle state.
type CampaignStatus string

const (
	StatusDraft     CampaignStatus = "draft"
	StatusActive    CampaignStatus = "active"
	StatusPaused    CampaignStatus = "paused"
	StatusCompleted CampaignStatus = "completed"
)

// Campaign represents a multi-channel marketing campaign for a single
// publishing project. Budgets are stored in integer cents.
type Campaign struct {
	ID          string         `json:"id"`
	ProjectID   string         `json:"project_id"`
	Name        string         `json:"name"`
	Type        CampaignType   `json:"campaign_type"`
	StartDate   time.Time      `json:"start_date"`
	EndDate     time.Time      `json:"end_date"`
	BudgetCents int64          `json:"budget_cents"`
	Status      CampaignStatus `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
