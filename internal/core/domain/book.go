package domain

// BookMetadata carries the book and author context a channel needs to
// assemble ads, emails or posts. It is sourced from the book metadata
// provider, not persisted by this service.
type BookMetadata struct {
	ProjectID   string
	Title       string
	AuthorName  string
	Genre       string
	ASIN        string
	StoreURL    string
	CoverURL    string
	Description string
	Keywords    []string
}
