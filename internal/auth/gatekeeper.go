// Package auth restricts write-capable sessions to a single allow-listed
// identity, the curator. Anyone else who completes the provider's sign-in is
// revoked immediately and never ends up authenticated.
package auth

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"
)

var (
	// ErrUnauthorized is returned when the provider rejects the credential.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotCurator is returned when a valid identity is not the allow-listed
	// curator.
	ErrNotCurator = errors.New("identity is not the curator")
)

// Identity is what the external provider asserts about a signed-in account.
type Identity struct {
	Subject string
	Email   string
	Name    string
}

// Provider is the external identity collaborator.
type Provider interface {
	// Verify checks an interactive sign-in credential and returns the
	// identity it asserts.
	Verify(ctx context.Context, credential string) (Identity, error)
	// Revoke invalidates the credential (forced sign-out).
	Revoke(ctx context.Context, credential string) error
}

// Event is a session-change notification: authenticated carries the curator
// identity, unauthenticated carries none.
type Event struct {
	Authenticated bool
	Identity      Identity
}

// Gatekeeper turns provider sign-ins into curator sessions.
type Gatekeeper struct {
	provider     Provider
	curatorEmail string
	secret       string
	sessionTTL   time.Duration

	mu          sync.Mutex
	subscribers []func(Event)
}

func NewGatekeeper(provider Provider, curatorEmail, secret string) *Gatekeeper {
	return &Gatekeeper{
		provider:     provider,
		curatorEmail: curatorEmail,
		secret:       secret,
		sessionTTL:   12 * time.Hour,
	}
}

// Subscribe registers a session-change callback. Registration happens once at
// startup; events are delivered synchronously from SignIn and SignOut.
func (g *Gatekeeper) Subscribe(fn func(Event)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.subscribers = append(g.subscribers, fn)
}

func (g *Gatekeeper) notify(e Event) {
	g.mu.Lock()
	subs := make([]func(Event), len(g.subscribers))
	copy(subs, g.subscribers)
	g.mu.Unlock()
	for _, fn := range subs {
		fn(e)
	}
}

// SignIn verifies the provider credential and, only if the identity is the
// allow-listed curator, issues a session token. The allow-list check runs
// before any session state exists; a non-curator identity is revoked at the
// provider and the session stays unauthenticated.
func (g *Gatekeeper) SignIn(ctx context.Context, credential string) (string, Identity, error) {
	id, err := g.provider.Verify(ctx, credential)
	if err != nil {
		log.Printf("sign-in rejected by provider: %v", err)
		return "", Identity{}, ErrUnauthorized
	}

	if !strings.EqualFold(id.Email, g.curatorEmail) {
		if err := g.provider.Revoke(ctx, credential); err != nil {
			log.Printf("revoke after non-curator sign-in failed for %s: %v", id.Email, err)
		}
		g.notify(Event{Authenticated: false})
		return "", Identity{}, ErrNotCurator
	}

	token, err := GenerateToken(g.secret, id.Subject, id.Email, g.sessionTTL)
	if err != nil {
		return "", Identity{}, err
	}
	g.notify(Event{Authenticated: true, Identity: id})
	return token, id, nil
}

// SignOut ends the curator session.
func (g *Gatekeeper) SignOut() {
	g.notify(Event{Authenticated: false})
}

// SessionTTL is exposed for the login response.
func (g *Gatekeeper) SessionTTL() time.Duration {
	return g.sessionTTL
}
