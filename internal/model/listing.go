package model

// Listing represents a sellable catalog item. The identifier and the owning
// shop/user pair are immutable; everything reachable through ListingPatch is
// not. Pointer fields are nullable on the wire.
type Listing struct {
	ListingID                   int64         `json:"listing_id"`
	UserID                      int64         `json:"user_id"`
	ShopID                      int64         `json:"shop_id"`
	Title                       string        `json:"title"`
	Description                 string        `json:"description"`
	State                       string        `json:"state"`
	CreationTimestamp           int64         `json:"creation_timestamp"`
	CreatedTimestamp            int64         `json:"created_timestamp"`
	EndingTimestamp             int64         `json:"ending_timestamp,omitempty"`
	OriginalCreationTimestamp   int64         `json:"original_creation_timestamp,omitempty"`
	LastModifiedTimestamp       int64         `json:"last_modified_timestamp"`
	UpdatedTimestamp            int64         `json:"updated_timestamp"`
	StateTimestamp              int64         `json:"state_timestamp,omitempty"`
	Quantity                    int           `json:"quantity"`
	ShopSectionID               *int64        `json:"shop_section_id"`
	FeaturedRank                int           `json:"featured_rank"`
	URL                         string        `json:"url"`
	NumFavorers                 int           `json:"num_favorers"`
	NonTaxable                  bool          `json:"non_taxable"`
	IsTaxable                   bool          `json:"is_taxable"`
	IsCustomizable              bool          `json:"is_customizable"`
	IsPersonalizable            bool          `json:"is_personalizable"`
	PersonalizationIsRequired   bool          `json:"personalization_is_required"`
	PersonalizationCharCountMax *int          `json:"personalization_char_count_max"`
	PersonalizationInstructions *string       `json:"personalization_instructions"`
	ListingType                 string        `json:"listing_type"`
	Tags                        []string      `json:"tags"`
	Materials                   []string      `json:"materials"`
	ShippingProfileID           *int64        `json:"shipping_profile_id"`
	ReturnPolicyID              *int64        `json:"return_policy_id"`
	ProcessingMin               int           `json:"processing_min"`
	ProcessingMax               int           `json:"processing_max"`
	WhoMade                     string        `json:"who_made"`
	WhenMade                    string        `json:"when_made"`
	IsSupply                    bool          `json:"is_supply"`
	ItemWeight                  float64       `json:"item_weight,omitempty"`
	ItemWeightUnit              string        `json:"item_weight_unit,omitempty"`
	ItemLength                  float64       `json:"item_length,omitempty"`
	ItemWidth                   float64       `json:"item_width,omitempty"`
	ItemHeight                  float64       `json:"item_height,omitempty"`
	ItemDimensionsUnit          string        `json:"item_dimensions_unit,omitempty"`
	IsPrivate                   bool          `json:"is_private"`
	Style                       []string      `json:"style,omitempty"`
	FileData                    string        `json:"file_data"`
	HasVariations               bool          `json:"has_variations"`
	ShouldAutoRenew             bool          `json:"should_auto_renew"`
	Language                    string        `json:"language,omitempty"`
	Price                       Money         `json:"price"`
	TaxonomyID                  int64         `json:"taxonomy_id"`
	ProductionPartners          []interface{} `json:"production_partners"`
	SKUs                        []string      `json:"skus"`
	Views                       int           `json:"views"`
	IsDigital                   bool          `json:"is_digital"`
}

// ListingDraft holds the caller-supplied fields for creating a listing.
// Every field is optional; nil falls back to its documented default.
type ListingDraft struct {
	Title             *string   `json:"title"`
	Description       *string   `json:"description"`
	Quantity          *int      `json:"quantity"`
	Price             *Money    `json:"price"`
	WhoMade           *string   `json:"who_made"`
	WhenMade          *string   `json:"when_made"`
	IsSupply          *bool     `json:"is_supply"`
	TaxonomyID        *int64    `json:"taxonomy_id"`
	ShippingProfileID *int64    `json:"shipping_profile_id"`
	ReturnPolicyID    *int64    `json:"return_policy_id"`
	ProcessingMin     *int      `json:"processing_min"`
	ProcessingMax     *int      `json:"processing_max"`
	Tags              *[]string `json:"tags"`
	Materials         *[]string `json:"materials"`
	IsCustomizable    *bool     `json:"is_customizable"`
	IsPersonalizable  *bool     `json:"is_personalizable"`
	Type              *string   `json:"type"`
	ShouldAutoRenew   *bool     `json:"should_auto_renew"`
	IsTaxable         *bool     `json:"is_taxable"`
}

// ListingPatch holds the allow-listed fields of a listing update. Nil fields
// are left alone. The trailing identifier fields are recognized so that
// round-tripped records decode cleanly, but they are never applied.
type ListingPatch struct {
	Title             *string   `json:"title"`
	Description       *string   `json:"description"`
	Quantity          *int      `json:"quantity"`
	Price             *Money    `json:"price"`
	State             *string   `json:"state"`
	Tags              *[]string `json:"tags"`
	Materials         *[]string `json:"materials"`
	IsCustomizable    *bool     `json:"is_customizable"`
	IsPersonalizable  *bool     `json:"is_personalizable"`
	ProcessingMin     *int      `json:"processing_min"`
	ProcessingMax     *int      `json:"processing_max"`
	TaxonomyID        *int64    `json:"taxonomy_id"`
	ShippingProfileID *int64    `json:"shipping_profile_id"`

	// Immutable identifiers, accepted and ignored.
	ListingID *int64 `json:"listing_id"`
	ShopID    *int64 `json:"shop_id"`
	UserID    *int64 `json:"user_id"`
}
