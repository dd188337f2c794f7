package registry

import (
	"context"
	"sync"

	"etsy-mock-api/internal/model"
)

// MemoryTokenStore is the in-memory implementation of TokenStore. This is
// the default: token state lives only for the process lifetime.
type MemoryTokenStore struct {
	mu      sync.RWMutex
	records map[string]*model.TokenRecord

	// order tracks issuance order so the refresh-token scan is
	// deterministic: first match wins.
	order []string
}

// NewMemoryTokenStore creates an empty in-memory token store.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{
		records: make(map[string]*model.TokenRecord),
	}
}

// Save stores a token record keyed by its access token.
func (s *MemoryTokenStore) Save(ctx context.Context, record *model.TokenRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *record
	if _, exists := s.records[record.AccessToken]; !exists {
		s.order = append(s.order, record.AccessToken)
	}
	s.records[record.AccessToken] = &cp
	return nil
}

// GetByAccessToken resolves an access token by exact string match.
func (s *MemoryTokenStore) GetByAccessToken(ctx context.Context, accessToken string) (*model.TokenRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[accessToken]
	if !ok {
		return nil, ErrTokenNotFound
	}
	cp := *record
	return &cp, nil
}

// FindByRefreshToken scans the registry in issuance order for a record
// whose refresh token matches.
func (s *MemoryTokenStore) FindByRefreshToken(ctx context.Context, refreshToken string) (*model.TokenRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, accessToken := range s.order {
		record := s.records[accessToken]
		if record.RefreshToken == refreshToken {
			cp := *record
			return &cp, nil
		}
	}
	return nil, ErrTokenNotFound
}

var _ TokenStore = (*MemoryTokenStore)(nil)
