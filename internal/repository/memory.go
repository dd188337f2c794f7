package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"etsy-mock-api/internal/model"
)

// firstListingID is assigned when a listing is created into an empty
// collection; otherwise the next id is max existing + 1.
const firstListingID int64 = 2000000001

// MemoryStore holds the three mock entity collections in process memory.
// It implements ShopRepository, ReceiptRepository and ListingRepository.
//
// State is seeded once at startup and lives only for the process lifetime.
// Every read-modify-write sequence runs under the store mutex so concurrent
// requests cannot race on identifier assignment or lose updates. Insertion
// order is tracked per collection because list ordering (and sort
// tie-breaking) is observable behavior.
type MemoryStore struct {
	mu sync.RWMutex

	shops        map[int64]*model.Shop
	shopOrder    []int64
	receipts     map[int64]*model.Receipt
	receiptOrder []int64
	listings     map[int64]*model.Listing
	listingOrder []int64

	now func() time.Time
}

// NewMemoryStore creates an empty store. Call Seed to load the sample data.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		shops:    make(map[int64]*model.Shop),
		receipts: make(map[int64]*model.Receipt),
		listings: make(map[int64]*model.Listing),
		now:      time.Now,
	}
}

// GetShop returns one shop by id.
func (s *MemoryStore) GetShop(ctx context.Context, shopID int64) (*model.Shop, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	shop, ok := s.shops[shopID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *shop
	return &cp, nil
}

// ListShops returns all shops in insertion order.
func (s *MemoryStore) ListShops(ctx context.Context) ([]*model.Shop, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Shop, 0, len(s.shopOrder))
	for _, id := range s.shopOrder {
		cp := *s.shops[id]
		out = append(out, &cp)
	}
	return out, nil
}

// GetReceipt returns one receipt by id.
func (s *MemoryStore) GetReceipt(ctx context.Context, receiptID int64) (*model.Receipt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	receipt, ok := s.receipts[receiptID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *receipt
	return &cp, nil
}

// ListReceipts returns all receipts in insertion order.
func (s *MemoryStore) ListReceipts(ctx context.Context) ([]*model.Receipt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Receipt, 0, len(s.receiptOrder))
	for _, id := range s.receiptOrder {
		cp := *s.receipts[id]
		out = append(out, &cp)
	}
	return out, nil
}

// UpdateReceipt applies the shipped/paid patch. The update timestamps are
// refreshed whether or not any flag actually changed.
func (s *MemoryStore) UpdateReceipt(ctx context.Context, receiptID int64, patch model.ReceiptPatch) (*model.Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	receipt, ok := s.receipts[receiptID]
	if !ok {
		return nil, ErrNotFound
	}

	if patch.WasShipped != nil {
		receipt.IsShipped = *patch.WasShipped
	}
	if patch.WasPaid != nil {
		receipt.IsPaid = *patch.WasPaid
	}

	now := s.now().Unix()
	receipt.UpdateDate = now
	receipt.UpdatedTimestamp = now

	cp := *receipt
	return &cp, nil
}

// GetListing returns one listing by id.
func (s *MemoryStore) GetListing(ctx context.Context, listingID int64) (*model.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	listing, ok := s.listings[listingID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *listing
	return &cp, nil
}

// ListListings returns all listings in insertion order.
func (s *MemoryStore) ListListings(ctx context.Context) ([]*model.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Listing, 0, len(s.listingOrder))
	for _, id := range s.listingOrder {
		cp := *s.listings[id]
		out = append(out, &cp)
	}
	return out, nil
}

// CreateListing assigns the next identifier, stamps the creation timestamps
// and stores the listing. Identifier assignment and insertion happen under
// one lock so two concurrent creates cannot claim the same id.
func (s *MemoryStore) CreateListing(ctx context.Context, listing *model.Listing) (*model.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	listing.ListingID = s.nextListingIDLocked()
	listing.URL = fmt.Sprintf("https://www.etsy.com/listing/%d/", listing.ListingID)

	now := s.now().Unix()
	listing.CreationTimestamp = now
	listing.CreatedTimestamp = now
	listing.LastModifiedTimestamp = now
	listing.UpdatedTimestamp = now

	cp := *listing
	s.listings[listing.ListingID] = &cp
	s.listingOrder = append(s.listingOrder, listing.ListingID)

	out := *listing
	return &out, nil
}

// UpdateListing applies the allow-listed patch fields. Identifier fields on
// the patch are ignored; the modification timestamps always refresh.
func (s *MemoryStore) UpdateListing(ctx context.Context, listingID int64, patch model.ListingPatch) (*model.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	listing, ok := s.listings[listingID]
	if !ok {
		return nil, ErrNotFound
	}

	if patch.Title != nil {
		listing.Title = *patch.Title
	}
	if patch.Description != nil {
		listing.Description = *patch.Description
	}
	if patch.Quantity != nil {
		listing.Quantity = *patch.Quantity
	}
	if patch.Price != nil {
		listing.Price = *patch.Price
	}
	if patch.State != nil {
		listing.State = *patch.State
	}
	if patch.Tags != nil {
		listing.Tags = *patch.Tags
	}
	if patch.Materials != nil {
		listing.Materials = *patch.Materials
	}
	if patch.IsCustomizable != nil {
		listing.IsCustomizable = *patch.IsCustomizable
	}
	if patch.IsPersonalizable != nil {
		listing.IsPersonalizable = *patch.IsPersonalizable
	}
	if patch.ProcessingMin != nil {
		listing.ProcessingMin = *patch.ProcessingMin
	}
	if patch.ProcessingMax != nil {
		listing.ProcessingMax = *patch.ProcessingMax
	}
	if patch.TaxonomyID != nil {
		listing.TaxonomyID = *patch.TaxonomyID
	}
	if patch.ShippingProfileID != nil {
		listing.ShippingProfileID = patch.ShippingProfileID
	}

	now := s.now().Unix()
	listing.LastModifiedTimestamp = now
	listing.UpdatedTimestamp = now

	cp := *listing
	return &cp, nil
}

// nextListingIDLocked computes max existing id + 1. Caller must hold the lock.
func (s *MemoryStore) nextListingIDLocked() int64 {
	if len(s.listings) == 0 {
		return firstListingID
	}
	var max int64
	for id := range s.listings {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// Interface conformance checks.
var (
	_ ShopRepository    = (*MemoryStore)(nil)
	_ ReceiptRepository = (*MemoryStore)(nil)
	_ ListingRepository = (*MemoryStore)(nil)
)
