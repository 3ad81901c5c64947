// Package googlebooks is a thin client for the Google Books volumes API.
package googlebooks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

var (
	// ErrRateLimited maps HTTP 403, which the API uses for key and daily
	// quota limits.
	ErrRateLimited = errors.New("googlebooks: rate limit exceeded")
	// ErrBadQuery maps HTTP 400.
	ErrBadQuery = errors.New("googlebooks: malformed query")
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
}

func NewClient(apiKey string, rps int) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL: "https://www.googleapis.com/books/v1",
		apiKey:  apiKey,
		limiter: rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
	}
}

// volumesResponse matches /volumes
type volumesResponse struct {
	TotalItems int      `json:"totalItems"`
	Items      []Volume `json:"items"`
}

type Volume struct {
	ID         string     `json:"id"`
	VolumeInfo VolumeInfo `json:"volumeInfo"`
}

type VolumeInfo struct {
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	PublishedDate string   `json:"publishedDate"`
	Description   string   `json:"description"`
	PageCount     int      `json:"pageCount"`
	Categories    []string `json:"categories"`
	ImageLinks    struct {
		Thumbnail string `json:"thumbnail"`
	} `json:"imageLinks"`
	IndustryIdentifiers []IndustryIdentifier `json:"industryIdentifiers"`
}

type IndustryIdentifier struct {
	Type       string `json:"type"`
	Identifier string `json:"identifier"`
}

// ISBN13 returns the volume's ISBN-13 identifier, or "".
func (v VolumeInfo) ISBN13() string {
	for _, id := range v.IndustryIdentifiers {
		if id.Type == "ISBN_13" {
			return id.Identifier
		}
	}
	return ""
}

// SearchVolumes queries the volumes endpoint, bounded and ordered by
// relevance. Failures are not retried; 403 and 400 get distinct errors so
// the caller can report the cause.
func (c *Client) SearchVolumes(ctx context.Context, query string, maxResults int) ([]Volume, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s/volumes?q=%s&key=%s&maxResults=%d&printType=books&orderBy=relevance",
		c.baseURL, url.QueryEscape(query), url.QueryEscape(c.apiKey), maxResults)

	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusForbidden:
		return nil, ErrRateLimited
	case resp.StatusCode == http.StatusBadRequest:
		return nil, ErrBadQuery
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("googlebooks: unexpected status code: %d", resp.StatusCode)
	}

	var res volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, err
	}
	return res.Items, nil
}
