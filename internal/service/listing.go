package service

import (
	"context"
	"errors"
	"sort"

	"etsy-mock-api/internal/model"
	"etsy-mock-api/internal/repository"
)

// StateActive is the default lifecycle state filter; any stored value other
// than the requested one simply fails the equality match.
const StateActive = "active"

// ListingFilter holds the recognized query parameters of a listing listing.
type ListingFilter struct {
	// State filters by lifecycle state equality. Empty means "active".
	State  string
	Limit  int
	Offset int
}

// ListingService handles listing queries, creation and partial updates.
type ListingService struct {
	shops    repository.ShopRepository
	listings repository.ListingRepository
}

// NewListingService creates a new listing service.
func NewListingService(shops repository.ShopRepository, listings repository.ListingRepository) *ListingService {
	return &ListingService{shops: shops, listings: listings}
}

// ListShopListings returns one page of the shop's listings plus the total
// match count computed before pagination. Listings are scoped by owning
// shop, filtered by state, and sorted by identifier descending.
func (s *ListingService) ListShopListings(ctx context.Context, shopID int64, filter ListingFilter) ([]*model.Listing, int, error) {
	if err := s.requireShop(ctx, shopID); err != nil {
		return nil, 0, err
	}

	state := filter.State
	if state == "" {
		state = StateActive
	}

	listings, err := s.listings.ListListings(ctx)
	if err != nil {
		return nil, 0, err
	}

	matched := []*model.Listing{}
	for _, l := range listings {
		if l.ShopID != shopID {
			continue
		}
		if l.State != state {
			continue
		}
		matched = append(matched, l)
	}

	// Highest id first; ties keep insertion order.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].ListingID > matched[j].ListingID
	})

	count := len(matched)
	return paginate(matched, filter.Limit, filter.Offset), count, nil
}

// GetListing returns one listing by id. There is no shop scoping on the
// single-listing endpoint.
func (s *ListingService) GetListing(ctx context.Context, listingID int64) (*model.Listing, error) {
	listing, err := s.listings.GetListing(ctx, listingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return listing, nil
}

// CreateListing builds a listing from the draft, filling absent fields with
// their documented defaults, and stores it under the requested shop. The
// owning user comes from the caller's token record. The shop/user pair is
// not cross-checked beyond shop existence; the mock skips referential
// validation on purpose.
func (s *ListingService) CreateListing(ctx context.Context, shopID, userID int64, draft model.ListingDraft) (*model.Listing, error) {
	if err := s.requireShop(ctx, shopID); err != nil {
		return nil, err
	}

	listing := &model.Listing{
		UserID:             userID,
		ShopID:             shopID,
		Title:              stringOr(draft.Title, "New Listing"),
		Description:        stringOr(draft.Description, ""),
		State:              StateActive,
		Quantity:           intOr(draft.Quantity, 1),
		Price:              priceOr(draft.Price),
		WhoMade:            stringOr(draft.WhoMade, "i_did"),
		WhenMade:           stringOr(draft.WhenMade, "made_to_order"),
		IsSupply:           boolOr(draft.IsSupply, false),
		TaxonomyID:         int64Or(draft.TaxonomyID, 1),
		ShippingProfileID:  draft.ShippingProfileID,
		ReturnPolicyID:     draft.ReturnPolicyID,
		ProcessingMin:      intOr(draft.ProcessingMin, 1),
		ProcessingMax:      intOr(draft.ProcessingMax, 3),
		Tags:               sliceOr(draft.Tags),
		Materials:          sliceOr(draft.Materials),
		IsCustomizable:     boolOr(draft.IsCustomizable, false),
		IsPersonalizable:   boolOr(draft.IsPersonalizable, false),
		ListingType:        stringOr(draft.Type, "physical"),
		ShouldAutoRenew:    boolOr(draft.ShouldAutoRenew, true),
		IsTaxable:          boolOr(draft.IsTaxable, true),
		ProductionPartners: []interface{}{},
		SKUs:               []string{},
	}

	return s.listings.CreateListing(ctx, listing)
}

// UpdateListing applies an allow-listed partial update.
func (s *ListingService) UpdateListing(ctx context.Context, shopID, listingID int64, patch model.ListingPatch) (*model.Listing, error) {
	if err := s.requireShop(ctx, shopID); err != nil {
		return nil, err
	}

	listing, err := s.listings.UpdateListing(ctx, listingID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return listing, nil
}

func (s *ListingService) requireShop(ctx context.Context, shopID int64) error {
	if _, err := s.shops.GetShop(ctx, shopID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrShopNotFound
		}
		return err
	}
	return nil
}

// Draft default helpers.

func stringOr(v *string, def string) string {
	if v != nil {
		return *v
	}
	return def
}

func intOr(v *int, def int) int {
	if v != nil {
		return *v
	}
	return def
}

func int64Or(v *int64, def int64) int64 {
	if v != nil {
		return *v
	}
	return def
}

func boolOr(v *bool, def bool) bool {
	if v != nil {
		return *v
	}
	return def
}

func sliceOr(v *[]string) []string {
	if v != nil {
		return *v
	}
	return []string{}
}

func priceOr(v *model.Money) model.Money {
	if v != nil {
		return *v
	}
	return model.USD(1000)
}
