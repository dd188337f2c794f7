package registry

import (
	"context"

	"etsy-mock-api/internal/model"
)

// TokenStore holds issued token records keyed by access token.
// This abstraction allows swapping between the in-memory registry (default,
// dies with the process) and Redis (shared across several mock instances
// during development) without changing the token service.
type TokenStore interface {
	// Save stores a freshly issued token record. Existing records are never
	// overwritten or deleted; refreshing mints a new pair alongside the old.
	Save(ctx context.Context, record *model.TokenRecord) error

	// GetByAccessToken resolves an access token by exact string match.
	// Returns ErrTokenNotFound if no record exists. Expiry is not enforced.
	GetByAccessToken(ctx context.Context, accessToken string) (*model.TokenRecord, error)

	// FindByRefreshToken returns the record whose refresh token matches,
	// or ErrTokenNotFound.
	FindByRefreshToken(ctx context.Context, refreshToken string) (*model.TokenRecord, error)
}

// StoreError is a sentinel error type for token store failures.
type StoreError string

func (e StoreError) Error() string { return string(e) }

const (
	// ErrTokenNotFound indicates no record matched the supplied token.
	ErrTokenNotFound StoreError = "token not found"
)
