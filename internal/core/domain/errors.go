package domain

import (
	"fmt"
	"net/http"
)

// Machine-readable error codes surfaced at the service boundary.
const (
	CodeCampaignLaunch   = "CAMPAIGN_LAUNCH_ERROR"
	CodeCampaignPause    = "CAMPAIGN_PAUSE_ERROR"
	CodeCampaignComplete = "CAMPAIGN_COMPLETE_ERROR"
	CodeCampaignNotFound = "CAMPAIGN_NOT_FOUND"
	CodeValidation       = "VALIDATION_ERROR"
	CodeAnalytics        = "ANALYTICS_ERROR"
	CodeReport           = "REPORT_ERROR"
	CodeDashboard        = "DASHBOARD_ERROR"
	CodeCRMSync          = "CRM_SYNC_ERROR"
)

// MarketingError is the typed error returned by core operations. Code
// is machine readable, Status is an HTTP-like severity hint and Details
// carries structured context such as the failing id.
type MarketingError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Status  int            `json:"-"`
	Details map[string]any `json:"details,omitempty"`
	Err     error          `json:"-"`
}

func (e *MarketingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *MarketingError) Unwrap() error { return e.Err }

// NewMarketingError builds a MarketingError with arbitrary code and status.
func NewMarketingError(code, message string, status int, err error) *MarketingError {
	return &MarketingError{Code: code, Message: message, Status: status, Err: err}
}

// WithDetail attaches one structured detail and returns the error for chaining.
func (e *MarketingError) WithDetail(key string, value any) *MarketingError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// ErrCampaignNotFound reports a missing campaign record.
func ErrCampaignNotFound(campaignID string) *MarketingError {
	e := NewMarketingError(CodeCampaignNotFound, "campaign not found", http.StatusNotFound, nil)
	return e.WithDetail("campaign_id", campaignID)
}

// ErrCampaignLaunch reports a failure to create the campaign record;
// no channels are attempted once this is raised.
func ErrCampaignLaunch(err error) *MarketingError {
	return NewMarketingError(CodeCampaignLaunch, "failed to launch marketing campaign", http.StatusInternalServerError, err)
}

// ErrCampaignPause reports a persistence failure while pausing.
func ErrCampaignPause(campaignID string, err error) *MarketingError {
	e := NewMarketingError(CodeCampaignPause, "failed to pause campaign", http.StatusInternalServerError, err)
	return e.WithDetail("campaign_id", campaignID)
}

// ErrCampaignComplete reports a persistence failure while completing.
func ErrCampaignComplete(campaignID string, err error) *MarketingError {
	e := NewMarketingError(CodeCampaignComplete, "failed to complete campaign", http.StatusInternalServerError, err)
	return e.WithDetail("campaign_id", campaignID)
}

// ErrValidation reports a rejected request field.
func ErrValidation(field, message string) *MarketingError {
	e := NewMarketingError(CodeValidation, "validation failed", http.StatusBadRequest, nil)
	return e.WithDetail("field", field).WithDetail("reason", message)
}
