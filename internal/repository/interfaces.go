package repository

import (
	"context"
	"errors"

	"etsy-mock-api/internal/model"
)

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ShopRepository defines shop data access methods. Shops are read-only.
type ShopRepository interface {
	// GetShop returns one shop by id, or ErrNotFound.
	GetShop(ctx context.Context, shopID int64) (*model.Shop, error)

	// ListShops returns all shops in insertion order.
	ListShops(ctx context.Context) ([]*model.Shop, error)
}

// ReceiptRepository defines receipt (order) data access methods.
type ReceiptRepository interface {
	// GetReceipt returns one receipt by id, or ErrNotFound.
	GetReceipt(ctx context.Context, receiptID int64) (*model.Receipt, error)

	// ListReceipts returns all receipts in insertion order.
	ListReceipts(ctx context.Context) ([]*model.Receipt, error)

	// UpdateReceipt applies the patch and refreshes the update timestamps.
	UpdateReceipt(ctx context.Context, receiptID int64, patch model.ReceiptPatch) (*model.Receipt, error)
}

// ListingRepository defines listing data access methods.
type ListingRepository interface {
	// GetListing returns one listing by id, or ErrNotFound.
	GetListing(ctx context.Context, listingID int64) (*model.Listing, error)

	// ListListings returns all listings in insertion order.
	ListListings(ctx context.Context) ([]*model.Listing, error)

	// CreateListing assigns the next identifier and stores the listing.
	CreateListing(ctx context.Context, listing *model.Listing) (*model.Listing, error)

	// UpdateListing applies the allow-listed patch fields and refreshes the
	// modification timestamps.
	UpdateListing(ctx context.Context, listingID int64, patch model.ListingPatch) (*model.Listing, error)
}

// RequestLogRepository defines request audit log storage.
type RequestLogRepository interface {
	// Insert records one handled API call.
	Insert(ctx context.Context, entry *model.RequestLog) error

	// List returns entries newest-first plus the total count.
	List(ctx context.Context, limit, offset int) ([]model.RequestLog, int64, error)

	// Close closes the repository connection.
	Close() error
}
