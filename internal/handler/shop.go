package handler

import (
	"net/http"

	"etsy-mock-api/internal/service"
	"etsy-mock-api/pkg/apierror"
	"etsy-mock-api/pkg/response"
)

// ShopHandler handles shop-related HTTP requests.
type ShopHandler struct {
	shops *service.ShopService
}

// NewShopHandler creates a new shop handler.
func NewShopHandler(shops *service.ShopService) *ShopHandler {
	return &ShopHandler{shops: shops}
}

// GetShop handles GET /v3/application/shops/{shop_id}
func (h *ShopHandler) GetShop(w http.ResponseWriter, r *http.Request) {
	shopID, ok := pathID(r, "shop_id")
	if !ok {
		response.Error(w, service.ErrShopNotFound)
		return
	}

	shop, err := h.shops.GetShop(r.Context(), shopID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, shop)
}

// GetShopsByUser handles GET /v3/application/users/{user_id}/shops
func (h *ShopHandler) GetShopsByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "user_id")
	if !ok {
		response.Error(w, apierror.NotFound(""))
		return
	}

	shops, count, err := h.shops.ListShopsByUser(r.Context(), userID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.List(w, count, shops)
}
