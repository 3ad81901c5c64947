package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	book "mybooklist/internal/bookmodel"
)

func TestComputeStats(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

	t.Run("aggregates", func(t *testing.T) {
		books := []book.Book{
			{Rating: 4, PageCount: 256, Favorite: true, AddedDate: day(15)},
			{Rating: 5, PageCount: 260, Favorite: true, AddedDate: day(20)},
			{Rating: 0, PageCount: 400, AddedDate: time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)},
		}
		got := ComputeStats(books, now)

		assert.Equal(t, 3, got.TotalBooks)
		assert.Equal(t, 916, got.TotalPages)
		assert.InDelta(t, 4.5, got.AverageRating, 0.0001)
		assert.Equal(t, 2, got.FavoriteBooks)
		assert.Equal(t, 2, got.ThisYearBooks)
	})

	t.Run("all unrated means zero average", func(t *testing.T) {
		books := []book.Book{{Rating: 0}, {Rating: 0}, {Rating: 0}}
		got := ComputeStats(books, now)
		assert.Equal(t, float64(0), got.AverageRating)
	})

	t.Run("empty collection", func(t *testing.T) {
		got := ComputeStats(nil, now)
		assert.Equal(t, Stats{}, got)
	})

	t.Run("idempotent over a snapshot", func(t *testing.T) {
		books := testBooks()
		assert.Equal(t, ComputeStats(books, now), ComputeStats(books, now))
	})
}
