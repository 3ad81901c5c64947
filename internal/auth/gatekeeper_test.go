package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const (
	testSecret  = "test-secret"
	testCurator = "curator@example.com"
)

type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) Verify(ctx context.Context, credential string) (Identity, error) {
	args := m.Called(ctx, credential)
	return args.Get(0).(Identity), args.Error(1)
}

func (m *mockProvider) Revoke(ctx context.Context, credential string) error {
	args := m.Called(ctx, credential)
	return args.Error(0)
}

func TestGatekeeper_SignIn(t *testing.T) {
	ctx := context.Background()

	t.Run("curator gets a session", func(t *testing.T) {
		provider := new(mockProvider)
		provider.On("Verify", ctx, "cred").Return(Identity{Subject: "sub-1", Email: testCurator}, nil)

		g := NewGatekeeper(provider, testCurator, testSecret)
		var events []Event
		g.Subscribe(func(e Event) { events = append(events, e) })

		token, id, err := g.SignIn(ctx, "cred")
		assert.NoError(t, err)
		assert.Equal(t, testCurator, id.Email)

		claims, err := ParseToken(testSecret, token)
		assert.NoError(t, err)
		assert.Equal(t, "sub-1", claims.Sub)
		assert.Equal(t, testCurator, claims.Email)

		// The event fires synchronously, after the allow-list check.
		assert.Len(t, events, 1)
		assert.True(t, events[0].Authenticated)
		assert.Equal(t, testCurator, events[0].Identity.Email)
	})

	t.Run("curator email match is case-insensitive", func(t *testing.T) {
		provider := new(mockProvider)
		provider.On("Verify", ctx, "cred").Return(Identity{Email: "Curator@Example.com"}, nil)

		g := NewGatekeeper(provider, testCurator, testSecret)
		_, _, err := g.SignIn(ctx, "cred")
		assert.NoError(t, err)
	})

	t.Run("non-curator is revoked and never authenticated", func(t *testing.T) {
		provider := new(mockProvider)
		provider.On("Verify", ctx, "cred").Return(Identity{Subject: "x", Email: "visitor@example.com"}, nil)
		provider.On("Revoke", ctx, "cred").Return(nil)

		g := NewGatekeeper(provider, testCurator, testSecret)
		var events []Event
		g.Subscribe(func(e Event) { events = append(events, e) })

		token, _, err := g.SignIn(ctx, "cred")
		assert.ErrorIs(t, err, ErrNotCurator)
		assert.Empty(t, token)

		assert.Len(t, events, 1)
		assert.False(t, events[0].Authenticated)
		provider.AssertCalled(t, "Revoke", ctx, "cred")
	})

	t.Run("revoke failure still refuses the session", func(t *testing.T) {
		provider := new(mockProvider)
		provider.On("Verify", ctx, "cred").Return(Identity{Email: "visitor@example.com"}, nil)
		provider.On("Revoke", ctx, "cred").Return(errors.New("revoke failed"))

		g := NewGatekeeper(provider, testCurator, testSecret)
		token, _, err := g.SignIn(ctx, "cred")
		assert.ErrorIs(t, err, ErrNotCurator)
		assert.Empty(t, token)
	})

	t.Run("provider rejection", func(t *testing.T) {
		provider := new(mockProvider)
		provider.On("Verify", ctx, "bad").Return(Identity{}, errors.New("invalid token"))

		g := NewGatekeeper(provider, testCurator, testSecret)
		token, _, err := g.SignIn(ctx, "bad")
		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.Empty(t, token)
	})
}

func TestGatekeeper_SignOut(t *testing.T) {
	g := NewGatekeeper(new(mockProvider), testCurator, testSecret)
	var events []Event
	g.Subscribe(func(e Event) { events = append(events, e) })

	g.SignOut()

	assert.Len(t, events, 1)
	assert.False(t, events[0].Authenticated)
}
