package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log"

	"etsy-mock-api/internal/model"
	"etsy-mock-api/internal/registry"
	"etsy-mock-api/internal/repository"
)

const (
	// GrantAuthorizationCode and GrantRefreshToken are the two supported
	// OAuth2 grant types.
	GrantAuthorizationCode = "authorization_code"
	GrantRefreshToken      = "refresh_token"

	// TokenType is the constant token type returned with every pair.
	TokenType = "Bearer"

	// TokenExpirySeconds is reported with every issued pair. It is
	// informational only; the mock never expires tokens.
	TokenExpirySeconds = 3600
)

// FullScopes is the fixed scope set granted to every issued token.
var FullScopes = []string{"shops_r", "shops_w", "transactions_r", "transactions_w", "listings_r", "listings_w"}

// GrantRequest carries the form fields of a token request. Which fields are
// read depends on the grant type; none of the authorization-code fields are
// validated against any real registration.
type GrantRequest struct {
	GrantType    string
	Code         string
	ClientID     string
	RedirectURI  string
	CodeVerifier string
	RefreshToken string
}

// TokenService implements the token registry operations: issuance, refresh
// rotation and validation.
type TokenService struct {
	store registry.TokenStore
}

// NewTokenService creates a new token service.
func NewTokenService(store registry.TokenStore) *TokenService {
	return &TokenService{store: store}
}

// Issue handles both supported grant types.
//
// authorization_code mints a fresh access/refresh pair bound to the seed
// user and shop with the full scope set. refresh_token looks up the record
// owning the supplied refresh token and mints a brand-new pair carrying the
// identities and scopes forward; the old access token stays resolvable.
func (s *TokenService) Issue(ctx context.Context, req GrantRequest) (*model.TokenRecord, error) {
	switch req.GrantType {
	case GrantAuthorizationCode:
		record := &model.TokenRecord{
			TokenType: TokenType,
			ExpiresIn: TokenExpirySeconds,
			UserID:    repository.SeedUserID,
			ShopID:    repository.SeedShopID,
			Scopes:    FullScopes,
		}
		return s.mint(ctx, record)

	case GrantRefreshToken:
		old, err := s.store.FindByRefreshToken(ctx, req.RefreshToken)
		if err != nil {
			if errors.Is(err, registry.ErrTokenNotFound) {
				return nil, ErrInvalidRefreshToken
			}
			return nil, err
		}
		record := &model.TokenRecord{
			TokenType: TokenType,
			ExpiresIn: TokenExpirySeconds,
			UserID:    old.UserID,
			ShopID:    old.ShopID,
			Scopes:    old.Scopes,
		}
		return s.mint(ctx, record)

	default:
		return nil, ErrUnsupportedGrant
	}
}

// Validate resolves an access token by exact string match. No expiry check.
func (s *TokenService) Validate(ctx context.Context, accessToken string) (*model.TokenRecord, error) {
	if accessToken == "" {
		return nil, ErrInvalidAccessToken
	}
	record, err := s.store.GetByAccessToken(ctx, accessToken)
	if err != nil {
		if errors.Is(err, registry.ErrTokenNotFound) {
			return nil, ErrInvalidAccessToken
		}
		return nil, err
	}
	return record, nil
}

// mint fills in a fresh access/refresh pair and stores the record.
func (s *TokenService) mint(ctx context.Context, record *model.TokenRecord) (*model.TokenRecord, error) {
	access, err := newToken()
	if err != nil {
		return nil, err
	}
	refresh, err := newToken()
	if err != nil {
		return nil, err
	}

	record.AccessToken = access
	record.RefreshToken = refresh

	if err := s.store.Save(ctx, record); err != nil {
		return nil, err
	}

	log.Printf("[TokenService] Issued token for user_id=%d shop_id=%d", record.UserID, record.ShopID)
	return record, nil
}

// newToken generates an opaque url-safe token from 32 random bytes.
func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
