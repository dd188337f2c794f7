package service

import "etsy-mock-api/pkg/apierror"

// Domain outcomes, phrased exactly as the Etsy v3 error bodies the client
// wrapper expects.
var (
	ErrShopNotFound    = apierror.NotFound("Shop not found")
	ErrReceiptNotFound = apierror.NotFound("Receipt not found")
	ErrListingNotFound = apierror.NotFound("Listing not found")

	ErrUnsupportedGrant    = apierror.BadRequest("Unsupported grant_type")
	ErrInvalidRefreshToken = apierror.Unauthorized("Invalid refresh token")
	ErrInvalidAccessToken  = apierror.Unauthorized("Invalid access token")
)
