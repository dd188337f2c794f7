package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"etsy-mock-api/internal/middleware"
	"etsy-mock-api/internal/model"
	"etsy-mock-api/internal/service"
	"etsy-mock-api/pkg/apierror"
	"etsy-mock-api/pkg/response"
)

// ListingHandler handles listing HTTP requests.
type ListingHandler struct {
	listings *service.ListingService
}

// NewListingHandler creates a new listing handler.
func NewListingHandler(listings *service.ListingService) *ListingHandler {
	return &ListingHandler{listings: listings}
}

// ListShopListings handles GET /v3/application/shops/{shop_id}/listings
// Recognized params: limit, offset, state (default "active").
func (h *ListingHandler) ListShopListings(w http.ResponseWriter, r *http.Request) {
	h.listShopListings(w, r, r.URL.Query().Get("state"))
}

// ListActiveShopListings handles GET /v3/application/shops/{shop_id}/listings/active
// The alias forces the active filter; a state query param is ignored.
func (h *ListingHandler) ListActiveShopListings(w http.ResponseWriter, r *http.Request) {
	h.listShopListings(w, r, service.StateActive)
}

func (h *ListingHandler) listShopListings(w http.ResponseWriter, r *http.Request, state string) {
	shopID, ok := pathID(r, "shop_id")
	if !ok {
		response.Error(w, service.ErrShopNotFound)
		return
	}

	filter := service.ListingFilter{
		State:  state,
		Limit:  queryInt(r, "limit", service.DefaultLimit),
		Offset: queryInt(r, "offset", 0),
	}

	listings, count, err := h.listings.ListShopListings(r.Context(), shopID, filter)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.List(w, count, listings)
}

// GetListing handles GET /v3/application/listings/{listing_id}
func (h *ListingHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	listingID, ok := pathID(r, "listing_id")
	if !ok {
		response.Error(w, service.ErrListingNotFound)
		return
	}

	listing, err := h.listings.GetListing(r.Context(), listingID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, listing)
}

// CreateListing handles POST /v3/application/shops/{shop_id}/listings
// Unspecified fields take their documented defaults; unknown JSON keys are
// rejected rather than silently swallowed. The owning user is taken from
// the caller's token record.
func (h *ListingHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	shopID, ok := pathID(r, "shop_id")
	if !ok {
		response.Error(w, service.ErrShopNotFound)
		return
	}

	record := middleware.GetTokenRecord(r.Context())
	if record == nil {
		response.Error(w, apierror.Unauthorized("Invalid access token"))
		return
	}

	var draft model.ListingDraft
	if err := decodeStrict(r, &draft); err != nil {
		response.Error(w, err)
		return
	}

	listing, err := h.listings.CreateListing(r.Context(), shopID, record.UserID, draft)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, listing)
}

// UpdateListing handles PUT/PATCH /v3/application/shops/{shop_id}/listings/{listing_id}
// Only allow-listed fields are applied; identifier fields in the body are
// accepted and ignored, unknown keys are rejected.
func (h *ListingHandler) UpdateListing(w http.ResponseWriter, r *http.Request) {
	shopID, ok := pathID(r, "shop_id")
	if !ok {
		response.Error(w, service.ErrShopNotFound)
		return
	}
	listingID, ok := pathID(r, "listing_id")
	if !ok {
		response.Error(w, service.ErrListingNotFound)
		return
	}

	var patch model.ListingPatch
	if err := decodeStrict(r, &patch); err != nil {
		response.Error(w, err)
		return
	}

	listing, err := h.listings.UpdateListing(r.Context(), shopID, listingID, patch)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, listing)
}

// decodeStrict decodes a JSON body rejecting unknown fields. An empty body
// decodes to the zero value, so "create with defaults" still works.
func decodeStrict(r *http.Request, v interface{}) *apierror.Error {
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return apierror.BadRequest("invalid request body: " + err.Error())
	}
	return nil
}
