package domain

import "time"

// SaleFormat is the purchased book format.
type SaleFormat string

const (
	FormatEbook     SaleFormat = "ebook"
	FormatPrint     SaleFormat = "print"
	FormatAudiobook SaleFormat = "audiobook"
)

// SaleSource attributes a sale to the surface that drove it.
type SaleSource string

const (
	SourceOrganic  SaleSource = "organic"
	SourceAd       SaleSource = "ad"
	SourcePromo    SaleSource = "promo"
	SourceReferral SaleSource = "referral"
)

// Sale is a single recorded book sale. Sales are ingested separately
// from campaign state and are only read by the analytics side.
type Sale struct {
	ID           string     `json:"id"`
	ProjectID    string     `json:"project_id"`
	Platform     string     `json:"platform"` // amazon, apple, kobo, audible, direct
	SaleDate     time.Time  `json:"sale_date"`
	Format       SaleFormat `json:"format"`
	Units        int64      `json:"units_sold"`
	RevenueCents int64      `json:"revenue_cents"`
	RoyaltyCents int64      `json:"royalty_cents"`
	Source       SaleSource `json:"source"`
}
