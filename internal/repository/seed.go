package repository

import (
	"fmt"

	"etsy-mock-api/internal/model"
)

// Seed identities. Every token issued by the mock is bound to this pair.
const (
	SeedShopID int64 = 12345678
	SeedUserID int64 = 87654321
)

// Seed loads the sample shop, three receipts and five listings, replacing
// anything already stored. Timestamps are relative to the current clock so
// that created/filtered date math behaves like live data.
func (s *MemoryStore) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	nowUnix := now.Unix()

	s.shops = make(map[int64]*model.Shop)
	s.shopOrder = nil
	s.receipts = make(map[int64]*model.Receipt)
	s.receiptOrder = nil
	s.listings = make(map[int64]*model.Listing)
	s.listingOrder = nil

	s.shops[SeedShopID] = &model.Shop{
		ShopID:                         SeedShopID,
		ShopName:                       "TestShopName",
		UserID:                         SeedUserID,
		CreateDate:                     1234567890,
		Title:                          "My Awesome Test Shop",
		Announcement:                   "Welcome to my shop!",
		CurrencyCode:                   "USD",
		IsVacation:                     false,
		SaleMessage:                    "Thank you for your purchase!",
		DigitalSaleMessage:             "Thank you for your digital purchase!",
		UpdateDate:                     nowUnix,
		ListingActiveCount:             5,
		DigitalListingCount:            2,
		LoginName:                      "testshopowner",
		AcceptsCustomRequests:          true,
		PolicyWelcome:                  "Welcome to my shop!",
		PolicyPayment:                  "We accept all major payment methods.",
		PolicyShipping:                 "Items ship within 1-3 business days.",
		PolicyRefunds:                  "Returns accepted within 30 days.",
		PolicyAdditional:               "Please contact us with any questions.",
		PolicyPrivacy:                  "Your privacy is important to us.",
		URL:                            "https://www.etsy.com/shop/TestShopName",
		ImageURL760x100:                "https://example.com/shop-banner.jpg",
		NumFavorers:                    150,
		Languages:                      []string{"en-US"},
		IconURLFullxfull:               "https://example.com/shop-icon.jpg",
		IsUsingStructuredPolicies:      true,
		HasOnboardedStructuredPolicies: true,
		HasUnstructuredPolicies:        false,
		PolicyUpdateDate:               nowUnix,
		ShopLocationCountryISO:         "US",
	}
	s.shopOrder = append(s.shopOrder, SeedShopID)

	// Three receipts, one per day back from now. Only the newest is shipped.
	for i := int64(1); i <= 3; i++ {
		receiptID := 1000000000 + i
		createDate := now.AddDate(0, 0, -int(i)).Unix()

		status := "paid"
		if i >= 3 {
			status = "processing"
		}

		s.receipts[receiptID] = &model.Receipt{
			ReceiptID:         receiptID,
			ReceiptType:       0,
			SellerUserID:      SeedUserID,
			SellerEmail:       "seller@example.com",
			BuyerUserID:       99999999 + i,
			BuyerEmail:        fmt.Sprintf("buyer%d@example.com", i),
			Name:              fmt.Sprintf("Test Buyer %d", i),
			FirstLine:         fmt.Sprintf("%d Main Street", 100+i),
			SecondLine:        fmt.Sprintf("Apt %d", i),
			City:              "New York",
			State:             "NY",
			Zip:               "10001",
			Status:            status,
			FormattedAddress:  fmt.Sprintf("%d Main Street\nApt %d\nNew York, NY 10001\nUnited States", 100+i, i),
			CountryISO:        "US",
			PaymentMethod:     "paypal",
			PaymentEmail:      fmt.Sprintf("buyer%d@example.com", i),
			MessageFromBuyer:  fmt.Sprintf("Please ship quickly! - Buyer %d", i),
			IsPaid:            true,
			IsShipped:         i == 1,
			CreateDate:        createDate,
			CreatedTimestamp:  createDate,
			UpdateDate:        nowUnix,
			UpdatedTimestamp:  nowUnix,
			IsGift:            false,
			Grandtotal:        model.USD(2500 + i*500),
			Subtotal:          model.USD(2000 + i*500),
			TotalPrice:        model.USD(2500 + i*500),
			TotalShippingCost: model.USD(500),
			TotalTaxCost:      model.USD(0),
			TotalVatCost:      model.USD(0),
			DiscountAmt:       model.USD(0),
			GiftWrapPrice:     model.USD(0),
			Shipments:         []interface{}{},
			Transactions:      []interface{}{},
		}
		s.receiptOrder = append(s.receiptOrder, receiptID)
	}

	// Five active listings, all created a month ago.
	created := now.AddDate(0, 0, -30).Unix()
	ending := now.AddDate(0, 0, 90).Unix()
	for i := int64(1); i <= 5; i++ {
		listingID := 2000000000 + i
		even := i%2 == 0

		listing := &model.Listing{
			ListingID:                 listingID,
			UserID:                    SeedUserID,
			ShopID:                    SeedShopID,
			Title:                     fmt.Sprintf("Handmade Test Product %d", i),
			Description:               fmt.Sprintf("This is a beautiful handmade product number %d. Made with love and care.", i),
			State:                     "active",
			CreationTimestamp:         created,
			CreatedTimestamp:          created,
			EndingTimestamp:           ending,
			OriginalCreationTimestamp: created,
			LastModifiedTimestamp:     nowUnix,
			UpdatedTimestamp:          nowUnix,
			StateTimestamp:            nowUnix,
			Quantity:                  int(10 + i),
			ShopSectionID:             int64Ptr(30000000 + i),
			FeaturedRank:              -1,
			URL:                       fmt.Sprintf("https://www.etsy.com/listing/%d/handmade-test-product-%d", listingID, i),
			NumFavorers:               int(10 + i*5),
			NonTaxable:                false,
			IsTaxable:                 true,
			IsCustomizable:            even,
			IsPersonalizable:          even,
			PersonalizationIsRequired: false,
			ListingType:               "physical",
			Tags:                      []string{"handmade", "gift", fmt.Sprintf("product%d", i)},
			Materials:                 []string{"wood", "fabric", "metal"},
			ShippingProfileID:         int64Ptr(40000000 + i),
			ReturnPolicyID:            int64Ptr(50000000),
			ProcessingMin:             1,
			ProcessingMax:             3,
			WhoMade:                   "i_did",
			WhenMade:                  "made_to_order",
			IsSupply:                  false,
			ItemWeight:                float64(100 + i*10),
			ItemWeightUnit:            "oz",
			ItemLength:                5.0 + float64(i),
			ItemWidth:                 3.0 + float64(i),
			ItemHeight:                2.0 + float64(i),
			ItemDimensionsUnit:        "in",
			IsPrivate:                 false,
			Style:                     []string{"Minimalist", "Modern"},
			HasVariations:             false,
			ShouldAutoRenew:           true,
			Language:                  "en-US",
			Price:                     model.USD(1500 + i*500),
			TaxonomyID:                1000 + i,
			ProductionPartners:        []interface{}{},
			SKUs:                      []string{},
			Views:                     int(100 + i*50),
			IsDigital:                 i > 3,
		}
		if even {
			listing.PersonalizationCharCountMax = intPtr(50)
			listing.PersonalizationInstructions = strPtr("Please provide personalization details")
		}

		s.listings[listingID] = listing
		s.listingOrder = append(s.listingOrder, listingID)
	}
}

func int64Ptr(v int64) *int64 { return &v }
func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
