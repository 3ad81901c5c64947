package book

import (
	"context"
	"log"
	"time"

	"mybooklist/internal/catalog"
	"mybooklist/internal/genre"
	"mybooklist/internal/marketplace"
)

// Service provides catalog business logic. It holds no cache: every browse
// performs a fresh list-all against the store, so a mutation is always
// followed by a wholesale reload on the next read.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Browse loads the whole collection and applies the query engine. When the
// load fails the built-in sample catalog is served instead, so the shelf
// stays browsable without a store.
func (s *Service) Browse(ctx context.Context, q catalog.Query) ([]Book, error) {
	books, err := s.repo.ListAll(ctx)
	if err != nil {
		log.Printf("catalog load failed, serving sample catalog: %v", err)
		books = SampleCatalog()
	}
	return catalog.Apply(books, q), nil
}

// Stats returns the aggregate snapshot over the full collection.
func (s *Service) Stats(ctx context.Context) (catalog.Stats, error) {
	books, err := s.repo.ListAll(ctx)
	if err != nil {
		log.Printf("catalog load failed, computing stats over sample catalog: %v", err)
		books = SampleCatalog()
	}
	return catalog.ComputeStats(books, s.now()), nil
}

// Get returns one book by id.
func (s *Service) Get(ctx context.Context, id string) (Book, error) {
	return s.repo.GetByID(ctx, id)
}

// Create persists a draft as a new record. The store assigns the id; the
// added date is set here, once. An invalid or empty genre degrades to
// "other", and a missing marketplace link is derived from the draft.
func (s *Service) Create(ctx context.Context, d Draft, ownerID string) (Book, error) {
	g := d.Genre
	if !genre.Valid(g) {
		g = genre.Other
	}
	marketplaceURL := d.MarketplaceURL
	if marketplaceURL == "" {
		marketplaceURL = marketplace.SearchURL(d.Title, d.Author, d.ISBN)
	}

	b := Book{
		Title:          d.Title,
		Author:         d.Author,
		ISBN:           d.ISBN,
		Genre:          g,
		Rating:         d.Rating,
		Comment:        d.Comment,
		Favorite:       d.Favorite,
		Description:    d.Description,
		PublishedDate:  d.PublishedDate,
		PageCount:      d.PageCount,
		Thumbnail:      d.Thumbnail,
		MarketplaceURL: marketplaceURL,
		AddedDate:      s.now().UTC(),
		OwnerID:        ownerID,
	}

	id, err := s.repo.Create(ctx, &b)
	if err != nil {
		return Book{}, err
	}
	b.ID = id
	return b, nil
}

// Update applies a partial update. The id and added date are immutable.
func (s *Service) Update(ctx context.Context, id string, p Patch) error {
	if p.IsZero() {
		return nil
	}
	if p.Genre != nil && !genre.Valid(*p.Genre) {
		other := genre.Other
		p.Genre = &other
	}
	return s.repo.Update(ctx, id, p)
}

// Delete removes a record.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// ToggleFavorite flips a book's favorite flag and returns the new value.
func (s *Service) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	next := !b.Favorite
	if err := s.repo.Update(ctx, id, Patch{Favorite: &next}); err != nil {
		return false, err
	}
	return next, nil
}
