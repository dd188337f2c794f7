package model

// Shop represents an Etsy shop record. Shops are immutable after seeding;
// there is no shop create or update endpoint.
type Shop struct {
	ShopID                         int64    `json:"shop_id"`
	ShopName                       string   `json:"shop_name"`
	UserID                         int64    `json:"user_id"`
	CreateDate                     int64    `json:"create_date"`
	Title                          string   `json:"title"`
	Announcement                   string   `json:"announcement"`
	CurrencyCode                   string   `json:"currency_code"`
	IsVacation                     bool     `json:"is_vacation"`
	VacationMessage                *string  `json:"vacation_message"`
	SaleMessage                    string   `json:"sale_message"`
	DigitalSaleMessage             string   `json:"digital_sale_message"`
	UpdateDate                     int64    `json:"update_date"`
	ListingActiveCount             int      `json:"listing_active_count"`
	DigitalListingCount            int      `json:"digital_listing_count"`
	LoginName                      string   `json:"login_name"`
	AcceptsCustomRequests          bool     `json:"accepts_custom_requests"`
	PolicyWelcome                  string   `json:"policy_welcome"`
	PolicyPayment                  string   `json:"policy_payment"`
	PolicyShipping                 string   `json:"policy_shipping"`
	PolicyRefunds                  string   `json:"policy_refunds"`
	PolicyAdditional               string   `json:"policy_additional"`
	PolicyPrivacy                  string   `json:"policy_privacy"`
	VacationAutoreply              *string  `json:"vacation_autoreply"`
	URL                            string   `json:"url"`
	ImageURL760x100                string   `json:"image_url_760x100"`
	NumFavorers                    int      `json:"num_favorers"`
	Languages                      []string `json:"languages"`
	IconURLFullxfull               string   `json:"icon_url_fullxfull"`
	IsUsingStructuredPolicies      bool     `json:"is_using_structured_policies"`
	HasOnboardedStructuredPolicies bool     `json:"has_onboarded_structured_policies"`
	HasUnstructuredPolicies        bool     `json:"has_unstructured_policies"`
	PolicyUpdateDate               int64    `json:"policy_update_date"`
	ShopLocationCountryISO         string   `json:"shop_location_country_iso"`
}
