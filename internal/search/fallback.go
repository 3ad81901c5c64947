package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mybooklist/internal/genre"
	"mybooklist/internal/marketplace"
)

// FallbackGenerator synthesizes two placeholder candidates from the query
// when the external API cannot be used. It never fails; the delay emulates
// the latency profile of the primary path.
type FallbackGenerator struct {
	Delay time.Duration
	now   func() time.Time
}

func NewFallbackGenerator() *FallbackGenerator {
	return &FallbackGenerator{Delay: time.Second, now: time.Now}
}

// Generate returns exactly two deterministic results derived from the query.
// The delay respects context cancellation but the results are returned
// either way; this path is the terminal safety net.
func (g *FallbackGenerator) Generate(ctx context.Context, query string) []Result {
	if g.Delay > 0 {
		timer := time.NewTimer(g.Delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
		}
	}

	stamp := g.now().UnixMilli()

	first := Result{
		ID:            "fallback-1",
		Title:         query + "関連の本",
		Authors:       []string{"著者名"},
		ISBN:          "9784000000000",
		Description:   query + "に関する興味深い内容を扱った書籍です。読者に新しい視点を提供します。",
		PublishedDate: "2024-01-01",
		PageCount:     300,
		Thumbnail:     fmt.Sprintf("https://picsum.photos/300/450?random=%d", stamp),
		Categories:    []string{"一般"},
	}
	second := Result{
		ID:            "fallback-2",
		Title:         query + "入門",
		Authors:       []string{"専門家 太郎"},
		ISBN:          "9784000000001",
		Description:   query + "の基礎から応用まで幅広くカバーした入門書。初心者にもわかりやすく解説されています。",
		PublishedDate: "2023-12-01",
		PageCount:     250,
		Thumbnail:     fmt.Sprintf("https://picsum.photos/300/450?random=%d", stamp+1),
		Categories:    []string{"教育"},
	}

	results := []Result{first, second}
	for i := range results {
		r := &results[i]
		r.SuggestedGenre = genre.FromCategories(r.Categories)
		r.MarketplaceURL = marketplace.SearchURL(r.Title, strings.Join(r.Authors, ", "), r.ISBN)
	}
	return results
}
