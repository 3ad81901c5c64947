// Package bookmodel holds the Book record. It exists so that both the book
// and catalog packages can depend on the type without importing each other;
// package book re-exports it as an alias, so the rest of the code keeps
// using book.Book.
package bookmodel

import "time"

// Book is the catalog's unit of storage. The store assigns ID on create;
// AddedDate is set once at creation and never changes afterwards.
type Book struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Author         string    `json:"author"`
	ISBN           string    `json:"isbn,omitempty"`
	Genre          string    `json:"genre"`
	Rating         int       `json:"rating"` // 0-5, 0 = unrated
	Comment        string    `json:"comment,omitempty"`
	Favorite       bool      `json:"favorite"`
	Description    string    `json:"description,omitempty"`
	PublishedDate  string    `json:"published_date,omitempty"`
	PageCount      int       `json:"page_count"` // 0 = unknown
	Thumbnail      string    `json:"thumbnail,omitempty"`
	MarketplaceURL string    `json:"marketplace_url,omitempty"`
	AddedDate      time.Time `json:"added_date"`
	OwnerID        string    `json:"owner_id,omitempty"`
}
