package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	book "mybooklist/internal/bookmodel"
)

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
}

func testBooks() []book.Book {
	return []book.Book{
		{ID: "1", Title: "吾輩は猫である", Author: "夏目漱石", Genre: "fiction", Rating: 4, Favorite: true, Comment: "猫の視点が秀逸", PublishedDate: "1905-01-01", PageCount: 256, AddedDate: day(15)},
		{ID: "2", Title: "リーダブルコード", Author: "Dustin Boswell", Genre: "tech", Rating: 5, Favorite: true, Comment: "プログラマー必読", PublishedDate: "2012-06-23", PageCount: 260, AddedDate: day(20)},
		{ID: "3", Title: "FACTFULNESS", Author: "ハンス・ロスリング", Genre: "business", Rating: 0, Favorite: false, Comment: "データに基づく世界の見方", PublishedDate: "2019", PageCount: 400, AddedDate: day(10)},
	}
}

func ids(books []book.Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.ID
	}
	return out
}

func TestApplyFilter(t *testing.T) {
	books := testBooks()

	t.Run("no filter returns everything", func(t *testing.T) {
		got := Apply(books, Query{})
		assert.Len(t, got, 3)
	})

	t.Run("search matches title case-insensitively", func(t *testing.T) {
		got := Apply(books, Query{Search: "factfulness"})
		assert.Equal(t, []string{"3"}, ids(got))
	})

	t.Run("search matches author", func(t *testing.T) {
		got := Apply(books, Query{Search: "漱石"})
		assert.Equal(t, []string{"1"}, ids(got))
	})

	t.Run("search matches comment", func(t *testing.T) {
		got := Apply(books, Query{Search: "必読"})
		assert.Equal(t, []string{"2"}, ids(got))
	})

	t.Run("genre filter", func(t *testing.T) {
		got := Apply(books, Query{Genre: "tech"})
		assert.Equal(t, []string{"2"}, ids(got))
	})

	t.Run("genre all passes everything", func(t *testing.T) {
		got := Apply(books, Query{Genre: GenreAll})
		assert.Len(t, got, 3)
	})

	t.Run("search and genre are ANDed", func(t *testing.T) {
		got := Apply(books, Query{Search: "コード", Genre: "fiction"})
		assert.Empty(t, got)
	})

	t.Run("output is a subset satisfying both predicates", func(t *testing.T) {
		got := Apply(books, Query{Search: "の", Genre: "fiction"})
		for _, b := range got {
			assert.Equal(t, "fiction", b.Genre)
		}
	})

	t.Run("input is not mutated", func(t *testing.T) {
		before := ids(books)
		Apply(books, Query{Sort: SortAuthor})
		assert.Equal(t, before, ids(books))
	})
}

func TestApplySort(t *testing.T) {
	t.Run("rating descending with unrated last", func(t *testing.T) {
		got := Apply(testBooks(), Query{Sort: SortRating})
		assert.Equal(t, []string{"2", "1", "3"}, ids(got))
		for i := 0; i < len(got)-1; i++ {
			a, b := got[i], got[i+1]
			if a.Rating == 0 {
				assert.Zero(t, b.Rating)
			} else if b.Rating != 0 {
				assert.GreaterOrEqual(t, a.Rating, b.Rating)
			}
		}
	})

	t.Run("favorites first then raw rating", func(t *testing.T) {
		books := []book.Book{
			{ID: "a", Favorite: false, Rating: 5},
			{ID: "b", Favorite: true, Rating: 0},
			{ID: "c", Favorite: true, Rating: 3},
		}
		got := Apply(books, Query{Sort: SortFavorite})
		assert.Equal(t, []string{"c", "b", "a"}, ids(got))
	})

	t.Run("pages descending", func(t *testing.T) {
		got := Apply(testBooks(), Query{Sort: SortPages})
		assert.Equal(t, []string{"3", "2", "1"}, ids(got))
	})

	t.Run("year descending with missing date last", func(t *testing.T) {
		books := testBooks()
		books = append(books, book.Book{ID: "4", Title: "undated", PublishedDate: ""})
		got := Apply(books, Query{Sort: SortYear})
		assert.Equal(t, []string{"3", "2", "1", "4"}, ids(got))
	})

	t.Run("author ascending", func(t *testing.T) {
		got := Apply(testBooks(), Query{Sort: SortAuthor})
		assert.Equal(t, "Dustin Boswell", got[0].Author)
	})

	t.Run("default is recency", func(t *testing.T) {
		got := Apply(testBooks(), Query{})
		assert.Equal(t, []string{"2", "1", "3"}, ids(got))
	})

	t.Run("unknown sort key falls back to recency", func(t *testing.T) {
		got := Apply(testBooks(), Query{Sort: "bogus"})
		assert.Equal(t, []string{"2", "1", "3"}, ids(got))
	})
}

func TestPublicationYear(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2012-06-23", 2012},
		{"2019", 2019},
		{"1905-01", 1905},
		{"", 0},
		{"n/a", 0},
		{"19", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PublicationYear(book.Book{PublishedDate: tt.date}), tt.date)
	}
}
