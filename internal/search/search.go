// Package search queries the external book-metadata API and degrades to a
// deterministic offline generator when the API cannot be used. Failures of
// the external call never reach the caller as errors; they only surface as
// diagnostic text on the outcome.
package search

import (
	"context"
	"errors"
	"log"
	"strings"

	"mybooklist/internal/genre"
	"mybooklist/internal/marketplace"
	"mybooklist/internal/platform/googlebooks"
)

// Sources of an outcome.
const (
	SourceAPI      = "googlebooks"
	SourceFallback = "fallback"
)

const maxResults = 10

// Result is a transient candidate used to pre-populate a draft. It is never
// persisted. SuggestedGenre and MarketplaceURL are derived here so a chosen
// candidate maps straight onto a draft.
type Result struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Authors        []string `json:"authors"`
	ISBN           string   `json:"isbn,omitempty"`
	Description    string   `json:"description,omitempty"`
	PublishedDate  string   `json:"published_date,omitempty"`
	PageCount      int      `json:"page_count"`
	Thumbnail      string   `json:"thumbnail,omitempty"`
	Categories     []string `json:"categories,omitempty"`
	SuggestedGenre string   `json:"suggested_genre"`
	MarketplaceURL string   `json:"marketplace_url,omitempty"`
}

// Outcome carries the candidates plus where they came from. Diagnostic is
// human-readable text about why the primary path was skipped, never an error.
type Outcome struct {
	Results    []Result
	Source     string
	Diagnostic string
}

// BooksClient is the external search collaborator.
type BooksClient interface {
	SearchVolumes(ctx context.Context, query string, maxResults int) ([]googlebooks.Volume, error)
}

// Adapter chooses between the external API and the fallback generator.
type Adapter struct {
	client   BooksClient // nil when no API credential is configured
	fallback *FallbackGenerator
}

func NewAdapter(client BooksClient) *Adapter {
	return &Adapter{client: client, fallback: NewFallbackGenerator()}
}

// Search returns candidates for the query. Zero hits from the API is a valid
// empty outcome, not a failure; only an unusable or failing API selects the
// fallback path.
func (a *Adapter) Search(ctx context.Context, query string) Outcome {
	if a.client == nil {
		return Outcome{
			Results:    a.fallback.Generate(ctx, query),
			Source:     SourceFallback,
			Diagnostic: "no API credential configured",
		}
	}

	volumes, err := a.client.SearchVolumes(ctx, query, maxResults)
	if err != nil {
		diag := diagnose(err)
		log.Printf("book search failed (%s), using fallback: %v", diag, err)
		return Outcome{
			Results:    a.fallback.Generate(ctx, query),
			Source:     SourceFallback,
			Diagnostic: diag,
		}
	}

	results := make([]Result, 0, len(volumes))
	for _, v := range volumes {
		results = append(results, fromVolume(v))
	}
	return Outcome{Results: results, Source: SourceAPI}
}

func diagnose(err error) string {
	switch {
	case errors.Is(err, googlebooks.ErrRateLimited):
		return "rate limit exceeded"
	case errors.Is(err, googlebooks.ErrBadQuery):
		return "malformed query"
	default:
		return "search API unavailable"
	}
}

func fromVolume(v googlebooks.Volume) Result {
	info := v.VolumeInfo
	isbn := info.ISBN13()
	return Result{
		ID:             v.ID,
		Title:          info.Title,
		Authors:        info.Authors,
		ISBN:           isbn,
		Description:    info.Description,
		PublishedDate:  info.PublishedDate,
		PageCount:      info.PageCount,
		Thumbnail:      info.ImageLinks.Thumbnail,
		Categories:     info.Categories,
		SuggestedGenre: genre.FromCategories(info.Categories),
		MarketplaceURL: marketplace.SearchURL(info.Title, strings.Join(info.Authors, ", "), isbn),
	}
}
