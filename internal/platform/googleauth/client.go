// Package googleauth verifies Google sign-in credentials against the
// tokeninfo endpoint. It implements auth.Provider.
package googleauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mybooklist/internal/auth"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	clientID   string // when set, the token audience must match
}

func NewClient(clientID string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL:  "https://oauth2.googleapis.com",
		clientID: clientID,
	}
}

// tokenInfo matches /tokeninfo
type tokenInfo struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
	Name          string `json:"name"`
	Aud           string `json:"aud"`
}

func (c *Client) Verify(ctx context.Context, credential string) (auth.Identity, error) {
	u := c.baseURL + "/tokeninfo?id_token=" + url.QueryEscape(credential)

	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return auth.Identity{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return auth.Identity{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return auth.Identity{}, fmt.Errorf("googleauth: unexpected status code: %d", resp.StatusCode)
	}

	var info tokenInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return auth.Identity{}, err
	}

	if c.clientID != "" && info.Aud != c.clientID {
		return auth.Identity{}, fmt.Errorf("googleauth: token audience mismatch")
	}
	if info.EmailVerified != "true" {
		return auth.Identity{}, fmt.Errorf("googleauth: email not verified")
	}

	return auth.Identity{
		Subject: info.Sub,
		Email:   info.Email,
		Name:    info.Name,
	}, nil
}

func (c *Client) Revoke(ctx context.Context, credential string) error {
	body := strings.NewReader("token=" + url.QueryEscape(credential))

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/revoke", body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("googleauth: unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
