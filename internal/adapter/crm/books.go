package crm

import (
	"context"

	"prose-marketing/internal/config/configs"
	"prose-marketing/internal/core/domain"
)

// StaticBooks serves one configured book identity for every project.
// The catalog service owns real book records; until that integration
// lands the launchers run off these defaults.
type StaticBooks struct {
	book domain.BookMetadata
}

func NewStaticBooks(cfg configs.Book) *StaticBooks {
	return &StaticBooks{book: domain.BookMetadata{
		Title:       cfg.Title,
		AuthorName:  cfg.AuthorName,
		Genre:       cfg.Genre,
		ASIN:        cfg.ASIN,
		StoreURL:    cfg.StoreURL,
		CoverURL:    cfg.CoverURL,
		Description: cfg.Description,
		Keywords:    cfg.Keywords,
	}}
}

func (s *StaticBooks) BookMetadata(_ context.Context, projectID string) (*domain.BookMetadata, error) {
	book := s.book
	book.ProjectID = projectID
	return &book, nil
}
