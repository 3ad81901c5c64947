package catalog

import (
	"time"

	book "mybooklist/internal/bookmodel"
)

// Stats is an aggregate snapshot over the whole collection, independent of
// any active filter.
type Stats struct {
	TotalBooks    int     `json:"total_books"`
	TotalPages    int     `json:"total_pages"`
	AverageRating float64 `json:"average_rating"`
	FavoriteBooks int     `json:"favorite_books"`
	ThisYearBooks int     `json:"this_year_books"`
}

// ComputeStats recomputes the snapshot from scratch. The mean rating covers
// rated books only and is 0 when none exist; "this year" is evaluated
// against now's calendar year.
func ComputeStats(books []book.Book, now time.Time) Stats {
	s := Stats{TotalBooks: len(books)}

	ratedSum, ratedCount := 0, 0
	for _, b := range books {
		s.TotalPages += b.PageCount
		if b.Rating > 0 {
			ratedSum += b.Rating
			ratedCount++
		}
		if b.Favorite {
			s.FavoriteBooks++
		}
		if b.AddedDate.Year() == now.Year() {
			s.ThisYearBooks++
		}
	}
	if ratedCount > 0 {
		s.AverageRating = float64(ratedSum) / float64(ratedCount)
	}
	return s
}
