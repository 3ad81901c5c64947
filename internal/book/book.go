package book

import (
	"errors"

	"mybooklist/internal/bookmodel"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// Book is the catalog's unit of storage. The record lives in bookmodel so
// the catalog package can use it without importing this package.
type Book = bookmodel.Book

// Draft carries the fields the curator edits before a create or update.
type Draft struct {
	Title          string `json:"title"`
	Author         string `json:"author"`
	ISBN           string `json:"isbn"`
	Genre          string `json:"genre"`
	Rating         int    `json:"rating"`
	Comment        string `json:"comment"`
	Favorite       bool   `json:"favorite"`
	Description    string `json:"description"`
	PublishedDate  string `json:"published_date"`
	PageCount      int    `json:"page_count"`
	Thumbnail      string `json:"thumbnail"`
	MarketplaceURL string `json:"marketplace_url"`
}

// Patch is a partial update. Nil fields are left untouched; ID, AddedDate and
// OwnerID are not patchable.
type Patch struct {
	Title          *string `json:"title"`
	Author         *string `json:"author"`
	ISBN           *string `json:"isbn"`
	Genre          *string `json:"genre"`
	Rating         *int    `json:"rating"`
	Comment        *string `json:"comment"`
	Favorite       *bool   `json:"favorite"`
	Description    *string `json:"description"`
	PublishedDate  *string `json:"published_date"`
	PageCount      *int    `json:"page_count"`
	Thumbnail      *string `json:"thumbnail"`
	MarketplaceURL *string `json:"marketplace_url"`
}

// IsZero reports whether the patch would change nothing.
func (p Patch) IsZero() bool {
	return p.Title == nil && p.Author == nil && p.ISBN == nil && p.Genre == nil &&
		p.Rating == nil && p.Comment == nil && p.Favorite == nil &&
		p.Description == nil && p.PublishedDate == nil && p.PageCount == nil &&
		p.Thumbnail == nil && p.MarketplaceURL == nil
}
