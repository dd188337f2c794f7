package handler

import (
	"encoding/json"
	"net/http"

	"etsy-mock-api/internal/model"
	"etsy-mock-api/internal/service"
	"etsy-mock-api/pkg/apierror"
	"etsy-mock-api/pkg/response"
)

// ReceiptHandler handles receipt (order) HTTP requests.
type ReceiptHandler struct {
	receipts *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler.
func NewReceiptHandler(receipts *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receipts: receipts}
}

// ListShopReceipts handles GET /v3/application/shops/{shop_id}/receipts
// Recognized params: limit, offset, min_created, max_created, was_paid, was_shipped.
func (h *ReceiptHandler) ListShopReceipts(w http.ResponseWriter, r *http.Request) {
	shopID, ok := pathID(r, "shop_id")
	if !ok {
		response.Error(w, service.ErrShopNotFound)
		return
	}

	filter := service.ReceiptFilter{
		MinCreated: queryInt64Ptr(r, "min_created"),
		MaxCreated: queryInt64Ptr(r, "max_created"),
		WasPaid:    queryBoolPtr(r, "was_paid"),
		WasShipped: queryBoolPtr(r, "was_shipped"),
		Limit:      queryInt(r, "limit", service.DefaultLimit),
		Offset:     queryInt(r, "offset", 0),
	}

	receipts, count, err := h.receipts.ListShopReceipts(r.Context(), shopID, filter)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.List(w, count, receipts)
}

// GetShopReceipt handles GET /v3/application/shops/{shop_id}/receipts/{receipt_id}
func (h *ReceiptHandler) GetShopReceipt(w http.ResponseWriter, r *http.Request) {
	shopID, ok := pathID(r, "shop_id")
	if !ok {
		response.Error(w, service.ErrShopNotFound)
		return
	}
	receiptID, ok := pathID(r, "receipt_id")
	if !ok {
		response.Error(w, service.ErrReceiptNotFound)
		return
	}

	receipt, err := h.receipts.GetShopReceipt(r.Context(), shopID, receiptID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, receipt)
}

// UpdateShopReceipt handles PUT /v3/application/shops/{shop_id}/receipts/{receipt_id}
// Only was_shipped and was_paid are read from the body; everything else is
// ignored.
func (h *ReceiptHandler) UpdateShopReceipt(w http.ResponseWriter, r *http.Request) {
	shopID, ok := pathID(r, "shop_id")
	if !ok {
		response.Error(w, service.ErrShopNotFound)
		return
	}
	receiptID, ok := pathID(r, "receipt_id")
	if !ok {
		response.Error(w, service.ErrReceiptNotFound)
		return
	}

	var patch model.ReceiptPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		response.Error(w, apierror.BadRequest("invalid request body"))
		return
	}
	defer r.Body.Close()

	receipt, err := h.receipts.UpdateShopReceipt(r.Context(), shopID, receiptID, patch)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, receipt)
}
