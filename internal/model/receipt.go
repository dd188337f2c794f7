package model

// Receipt represents an Etsy order. Paid/shipped flags and the update
// timestamps are mutable through ReceiptPatch; everything else is fixed
// once the record exists.
type Receipt struct {
	ReceiptID          int64         `json:"receipt_id"`
	ReceiptType        int           `json:"receipt_type"`
	SellerUserID       int64         `json:"seller_user_id"`
	SellerEmail        string        `json:"seller_email"`
	BuyerUserID        int64         `json:"buyer_user_id"`
	BuyerEmail         string        `json:"buyer_email"`
	Name               string        `json:"name"`
	FirstLine          string        `json:"first_line"`
	SecondLine         string        `json:"second_line"`
	City               string        `json:"city"`
	State              string        `json:"state"`
	Zip                string        `json:"zip"`
	Status             string        `json:"status"`
	FormattedAddress   string        `json:"formatted_address"`
	CountryISO         string        `json:"country_iso"`
	PaymentMethod      string        `json:"payment_method"`
	PaymentEmail       string        `json:"payment_email"`
	MessageFromSeller  *string       `json:"message_from_seller"`
	MessageFromBuyer   string        `json:"message_from_buyer"`
	MessageFromPayment *string       `json:"message_from_payment"`
	IsPaid             bool          `json:"is_paid"`
	IsShipped          bool          `json:"is_shipped"`
	CreateDate         int64         `json:"create_date"`
	CreatedTimestamp   int64         `json:"created_timestamp"`
	UpdateDate         int64         `json:"update_date"`
	UpdatedTimestamp   int64         `json:"updated_timestamp"`
	IsGift             bool          `json:"is_gift"`
	GiftMessage        *string       `json:"gift_message"`
	Grandtotal         Money         `json:"grandtotal"`
	Subtotal           Money         `json:"subtotal"`
	TotalPrice         Money         `json:"total_price"`
	TotalShippingCost  Money         `json:"total_shipping_cost"`
	TotalTaxCost       Money         `json:"total_tax_cost"`
	TotalVatCost       Money         `json:"total_vat_cost"`
	DiscountAmt        Money         `json:"discount_amt"`
	GiftWrapPrice      Money         `json:"gift_wrap_price"`
	Shipments          []interface{} `json:"shipments"`
	Transactions       []interface{} `json:"transactions"`
}

// ReceiptPatch holds the caller-supplied fields of a receipt update.
// Only the shipped and paid flags may change; nil fields are left alone.
type ReceiptPatch struct {
	WasShipped *bool `json:"was_shipped"`
	WasPaid    *bool `json:"was_paid"`
}
