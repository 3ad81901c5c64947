// Package catalog derives the display view of the in-memory collection:
// filtering, sorting and the statistics snapshot. It performs no I/O and
// never mutates its input.
package catalog

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	book "mybooklist/internal/bookmodel"
)

// Sort keys accepted by Apply. Anything else falls back to SortAdded.
const (
	SortAdded    = "added"
	SortRating   = "rating"
	SortFavorite = "favorite"
	SortPages    = "pages"
	SortYear     = "year"
	SortAuthor   = "author"
)

// GenreAll disables genre filtering.
const GenreAll = "all"

// Query selects and orders books for display.
type Query struct {
	Search string
	Genre  string
	Sort   string
}

// Apply filters books by the query's search term and genre, then returns a
// stably sorted copy. The input slice is never reordered.
func Apply(books []book.Book, q Query) []book.Book {
	term := strings.ToLower(q.Search)

	filtered := make([]book.Book, 0, len(books))
	for _, b := range books {
		if !matchesSearch(b, term) {
			continue
		}
		if q.Genre != "" && q.Genre != GenreAll && b.Genre != q.Genre {
			continue
		}
		filtered = append(filtered, b)
	}

	sort.SliceStable(filtered, lessFunc(filtered, q.Sort))
	return filtered
}

func matchesSearch(b book.Book, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(b.Title), term) ||
		strings.Contains(strings.ToLower(b.Author), term) ||
		strings.Contains(strings.ToLower(b.Comment), term)
}

func lessFunc(books []book.Book, sortKey string) func(i, j int) bool {
	switch sortKey {
	case SortRating:
		// Unrated books always sort after rated ones.
		return func(i, j int) bool {
			a, b := books[i], books[j]
			if a.Rating == 0 || b.Rating == 0 {
				return a.Rating != 0 && b.Rating == 0
			}
			return a.Rating > b.Rating
		}
	case SortFavorite:
		return func(i, j int) bool {
			a, b := books[i], books[j]
			if a.Favorite != b.Favorite {
				return a.Favorite
			}
			return a.Rating > b.Rating
		}
	case SortPages:
		return func(i, j int) bool {
			return books[i].PageCount > books[j].PageCount
		}
	case SortYear:
		return func(i, j int) bool {
			return PublicationYear(books[i]) > PublicationYear(books[j])
		}
	case SortAuthor:
		c := collate.New(language.Japanese)
		return func(i, j int) bool {
			return c.CompareString(books[i].Author, books[j].Author) < 0
		}
	default:
		return func(i, j int) bool {
			return books[i].AddedDate.After(books[j].AddedDate)
		}
	}
}

// PublicationYear extracts the year from a book's published date. Dates come
// from external metadata and vary in precision ("2012-06-23", "2012-06",
// "2012"); anything unparseable counts as year 0 and sorts last.
func PublicationYear(b book.Book) int {
	s := strings.TrimSpace(b.PublishedDate)
	if len(s) < 4 {
		return 0
	}
	year, err := strconv.Atoi(s[:4])
	if err != nil || year < 0 {
		return 0
	}
	return year
}
