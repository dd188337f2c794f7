package router_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"etsy-mock-api/internal/handler"
	"etsy-mock-api/internal/middleware"
	"etsy-mock-api/internal/registry"
	"etsy-mock-api/internal/repository"
	"etsy-mock-api/internal/router"
	"etsy-mock-api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	srv   *httptest.Server
	store *repository.MemoryStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := repository.NewMemoryStore()
	store.Seed()

	tokenService := service.NewTokenService(registry.NewMemoryTokenStore())

	r := router.New(router.Config{
		Handler:        handler.New("mock-etsy-api", "3.0.0"),
		OAuthHandler:   handler.NewOAuthHandler(tokenService),
		ShopHandler:    handler.NewShopHandler(service.NewShopService(store)),
		ReceiptHandler: handler.NewReceiptHandler(service.NewReceiptService(store, store)),
		ListingHandler: handler.NewListingHandler(service.NewListingService(store, store)),
		AdminHandler:   handler.NewAdminHandler(store, nil),
		LogHandler:     handler.NewRequestLogHandler(nil),
		AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthConfig{
			TokenService: tokenService,
		}),
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return &testEnv{srv: srv, store: store}
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
}

type collection struct {
	Count   int                      `json:"count"`
	Results []map[string]interface{} `json:"results"`
}

func (e *testEnv) obtainToken(t *testing.T) tokenResponse {
	t.Helper()

	form := url.Values{
		"grant_type":   {"authorization_code"},
		"code":         {"test-auth-code"},
		"client_id":    {"test-client"},
		"redirect_uri": {"http://localhost/callback"},
	}
	resp, err := http.PostForm(e.srv.URL+"/v3/public/oauth/token", form)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tok tokenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tok))
	return tok
}

// do sends an authenticated request; an empty token skips the Authorization
// header entirely.
func (e *testEnv) do(t *testing.T, method, path, token string, body io.Reader) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, e.srv.URL+path, body)
	require.NoError(t, err)
	req.Header.Set("x-api-key", "test-keystring")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func assertErrorBody(t *testing.T, resp *http.Response, status int, message string) {
	t.Helper()
	assert.Equal(t, status, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, map[string]string{"error": message}, body)
}

func TestPingAndRootArePublic(t *testing.T) {
	env := newTestEnv(t)

	resp, err := http.Get(env.srv.URL + "/v3/application/openapi-ping")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var ping map[string]interface{}
	decodeBody(t, resp, &ping)
	assert.Equal(t, "mock-etsy-api", ping["application"])
	assert.Equal(t, "3.0.0", ping["version"])
	assert.NotZero(t, ping["timestamp"])

	resp, err = http.Get(env.srv.URL + "/")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var index map[string]interface{}
	decodeBody(t, resp, &index)
	assert.Equal(t, "Mock Etsy API v3", index["name"])
}

func TestAuthGate(t *testing.T) {
	env := newTestEnv(t)

	t.Run("missing x-api-key", func(t *testing.T) {
		resp, err := http.Get(env.srv.URL + "/v3/application/shops/12345678")
		require.NoError(t, err)
		assertErrorBody(t, resp, http.StatusUnauthorized, "Missing x-api-key header")
	})

	t.Run("missing bearer token", func(t *testing.T) {
		resp := env.do(t, http.MethodGet, "/v3/application/shops/12345678", "", nil)
		assertErrorBody(t, resp, http.StatusUnauthorized, "Missing or invalid Authorization header")
	})

	t.Run("malformed authorization scheme", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, env.srv.URL+"/v3/application/shops/12345678", nil)
		require.NoError(t, err)
		req.Header.Set("x-api-key", "test-keystring")
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		assertErrorBody(t, resp, http.StatusUnauthorized, "Missing or invalid Authorization header")
	})

	t.Run("unknown access token", func(t *testing.T) {
		resp := env.do(t, http.MethodGet, "/v3/application/shops/12345678", "never-issued", nil)
		assertErrorBody(t, resp, http.StatusUnauthorized, "Invalid access token")
	})

	t.Run("valid token passes", func(t *testing.T) {
		tok := env.obtainToken(t)
		resp := env.do(t, http.MethodGet, "/v3/application/shops/12345678", tok.AccessToken, nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestOAuthTokenFlow(t *testing.T) {
	env := newTestEnv(t)

	tok := env.obtainToken(t)
	assert.NotEmpty(t, tok.AccessToken)
	assert.NotEmpty(t, tok.RefreshToken)
	assert.Equal(t, "Bearer", tok.TokenType)
	assert.Equal(t, 3600, tok.ExpiresIn)

	// Refresh mints a brand-new pair.
	resp, err := http.PostForm(env.srv.URL+"/v3/public/oauth/token", url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {tok.RefreshToken},
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var refreshed tokenResponse
	decodeBody(t, resp, &refreshed)
	assert.NotEqual(t, tok.AccessToken, refreshed.AccessToken)
	assert.NotEqual(t, tok.RefreshToken, refreshed.RefreshToken)

	// The pre-refresh access token still authenticates.
	resp = env.do(t, http.MethodGet, "/v3/application/shops/12345678", tok.AccessToken, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/v3/application/shops/12345678", refreshed.AccessToken, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestOAuthTokenErrors(t *testing.T) {
	env := newTestEnv(t)

	t.Run("unsupported grant type", func(t *testing.T) {
		resp, err := http.PostForm(env.srv.URL+"/v3/public/oauth/token", url.Values{
			"grant_type": {"client_credentials"},
		})
		require.NoError(t, err)
		assertErrorBody(t, resp, http.StatusBadRequest, "Unsupported grant_type")
	})

	t.Run("unknown refresh token", func(t *testing.T) {
		resp, err := http.PostForm(env.srv.URL+"/v3/public/oauth/token", url.Values{
			"grant_type":    {"refresh_token"},
			"refresh_token": {"never-issued"},
		})
		require.NoError(t, err)
		assertErrorBody(t, resp, http.StatusUnauthorized, "Invalid refresh token")
	})
}

func TestGetShop(t *testing.T) {
	env := newTestEnv(t)
	tok := env.obtainToken(t)

	resp := env.do(t, http.MethodGet, "/v3/application/shops/12345678", tok.AccessToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var shop map[string]interface{}
	decodeBody(t, resp, &shop)
	assert.Equal(t, float64(12345678), shop["shop_id"])
	assert.Equal(t, "TestShopName", shop["shop_name"])
	assert.Equal(t, float64(87654321), shop["user_id"])

	resp = env.do(t, http.MethodGet, "/v3/application/shops/999", tok.AccessToken, nil)
	assertErrorBody(t, resp, http.StatusNotFound, "Shop not found")

	// Non-numeric ids behave like unknown ids.
	resp = env.do(t, http.MethodGet, "/v3/application/shops/not-a-number", tok.AccessToken, nil)
	assertErrorBody(t, resp, http.StatusNotFound, "Shop not found")
}

func TestGetShopsByUser(t *testing.T) {
	env := newTestEnv(t)
	tok := env.obtainToken(t)

	resp := env.do(t, http.MethodGet, "/v3/application/users/87654321/shops", tok.AccessToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body collection
	decodeBody(t, resp, &body)
	assert.Equal(t, 1, body.Count)
	require.Len(t, body.Results, 1)
	assert.Equal(t, "TestShopName", body.Results[0]["shop_name"])

	// Unknown users yield an empty collection, not a 404.
	resp = env.do(t, http.MethodGet, "/v3/application/users/42/shops", tok.AccessToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &body)
	assert.Equal(t, 0, body.Count)
	assert.Empty(t, body.Results)
}

func TestListShopReceipts(t *testing.T) {
	env := newTestEnv(t)
	tok := env.obtainToken(t)

	resp := env.do(t, http.MethodGet, "/v3/application/shops/12345678/receipts", tok.AccessToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body collection
	decodeBody(t, resp, &body)
	assert.Equal(t, 3, body.Count)
	require.Len(t, body.Results, 3)
	assert.Equal(t, float64(1000000001), body.Results[0]["receipt_id"])

	resp = env.do(t, http.MethodGet, "/v3/application/shops/12345678/receipts?was_shipped=false", tok.AccessToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &body)
	assert.Equal(t, 2, body.Count)
	require.Len(t, body.Results, 2)
	assert.Equal(t, float64(1000000002), body.Results[0]["receipt_id"])
	assert.Equal(t, float64(1000000003), body.Results[1]["receipt_id"])

	// The count reflects all matches even when the page is smaller.
	resp = env.do(t, http.MethodGet, "/v3/application/shops/12345678/receipts?limit=1", tok.AccessToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &body)
	assert.Equal(t, 3, body.Count)
	assert.Len(t, body.Results, 1)

	resp = env.do(t, http.MethodGet, "/v3/application/shops/999/receipts", tok.AccessToken, nil)
	assertErrorBody(t, resp, http.StatusNotFound, "Shop not found")
}

func TestUpdateShopReceipt(t *testing.T) {
	env := newTestEnv(t)
	tok := env.obtainToken(t)

	payload := strings.NewReader(`{"was_shipped": true}`)
	resp := env.do(t, http.MethodPut, "/v3/application/shops/12345678/receipts/1000000002", tok.AccessToken, payload)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var receipt map[string]interface{}
	decodeBody(t, resp, &receipt)
	assert.Equal(t, true, receipt["is_shipped"])
	assert.Equal(t, float64(1000000002), receipt["receipt_id"])

	// Immutable fields survive the round trip.
	grandtotal, ok := receipt["grandtotal"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(3500), grandtotal["amount"])

	resp = env.do(t, http.MethodPut, "/v3/application/shops/12345678/receipts/42", tok.AccessToken, strings.NewReader(`{}`))
	assertErrorBody(t, resp, http.StatusNotFound, "Receipt not found")
}

func TestListShopListings(t *testing.T) {
	env := newTestEnv(t)
	tok := env.obtainToken(t)

	resp := env.do(t, http.MethodGet, "/v3/application/shops/12345678/listings", tok.AccessToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body collection
	decodeBody(t, resp, &body)
	assert.Equal(t, 5, body.Count)
	require.Len(t, body.Results, 5)
	assert.Equal(t, float64(2000000005), body.Results[0]["listing_id"])
	assert.Equal(t, float64(2000000001), body.Results[4]["listing_id"])

	resp = env.do(t, http.MethodGet, "/v3/application/shops/12345678/listings?limit=2&offset=4", tok.AccessToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &body)
	assert.Equal(t, 5, body.Count)
	require.Len(t, body.Results, 1)
	assert.Equal(t, float64(2000000001), body.Results[0]["listing_id"])
}

func TestListActiveShopListingsIgnoresStateParam(t *testing.T) {
	env := newTestEnv(t)
	tok := env.obtainToken(t)

	resp := env.do(t, http.MethodGet, "/v3/application/shops/12345678/listings/active?state=inactive", tok.AccessToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body collection
	decodeBody(t, resp, &body)
	assert.Equal(t, 5, body.Count)
	for _, l := range body.Results {
		assert.Equal(t, "active", l["state"])
	}
}

func TestGetListing(t *testing.T) {
	env := newTestEnv(t)
	tok := env.obtainToken(t)

	resp := env.do(t, http.MethodGet, "/v3/application/listings/2000000003", tok.AccessToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var listing map[string]interface{}
	decodeBody(t, resp, &listing)
	assert.Equal(t, "Handmade Test Product 3", listing["title"])

	resp = env.do(t, http.MethodGet, "/v3/application/listings/42", tok.AccessToken, nil)
	assertErrorBody(t, resp, http.StatusNotFound, "Listing not found")
}

func TestCreateListing(t *testing.T) {
	env := newTestEnv(t)
	tok := env.obtainToken(t)

	t.Run("empty body creates with defaults", func(t *testing.T) {
		resp := env.do(t, http.MethodPost, "/v3/application/shops/12345678/listings", tok.AccessToken, strings.NewReader(""))
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var listing map[string]interface{}
		decodeBody(t, resp, &listing)
		assert.Equal(t, float64(2000000006), listing["listing_id"])
		assert.Equal(t, "New Listing", listing["title"])
		assert.Equal(t, "active", listing["state"])
		assert.Equal(t, float64(1), listing["quantity"])
		assert.Equal(t, float64(87654321), listing["user_id"])
	})

	t.Run("supplied fields override defaults", func(t *testing.T) {
		payload := strings.NewReader(`{"title": "Ceramic mug", "quantity": 3, "price": {"amount": 1899, "divisor": 100, "currency_code": "USD"}}`)
		resp := env.do(t, http.MethodPost, "/v3/application/shops/12345678/listings", tok.AccessToken, payload)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var listing map[string]interface{}
		decodeBody(t, resp, &listing)
		assert.Equal(t, "Ceramic mug", listing["title"])
		assert.Equal(t, float64(3), listing["quantity"])
	})

	t.Run("unknown fields are rejected", func(t *testing.T) {
		payload := strings.NewReader(`{"title": "x", "not_a_field": 1}`)
		resp := env.do(t, http.MethodPost, "/v3/application/shops/12345678/listings", tok.AccessToken, payload)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown shop", func(t *testing.T) {
		resp := env.do(t, http.MethodPost, "/v3/application/shops/999/listings", tok.AccessToken, strings.NewReader(`{}`))
		assertErrorBody(t, resp, http.StatusNotFound, "Shop not found")
	})
}

func TestUpdateListing(t *testing.T) {
	env := newTestEnv(t)
	tok := env.obtainToken(t)

	t.Run("patch applies allow-listed fields", func(t *testing.T) {
		payload := strings.NewReader(`{"title": "Renamed Product", "quantity": 9}`)
		resp := env.do(t, http.MethodPatch, "/v3/application/shops/12345678/listings/2000000001", tok.AccessToken, payload)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var listing map[string]interface{}
		decodeBody(t, resp, &listing)
		assert.Equal(t, "Renamed Product", listing["title"])
		assert.Equal(t, float64(9), listing["quantity"])
	})

	t.Run("identifier fields in the body are ignored", func(t *testing.T) {
		payload := strings.NewReader(`{"listing_id": 999, "shop_id": 999, "title": "Still Mine"}`)
		resp := env.do(t, http.MethodPut, "/v3/application/shops/12345678/listings/2000000002", tok.AccessToken, payload)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var listing map[string]interface{}
		decodeBody(t, resp, &listing)
		assert.Equal(t, float64(2000000002), listing["listing_id"])
		assert.Equal(t, float64(12345678), listing["shop_id"])
		assert.Equal(t, "Still Mine", listing["title"])
	})

	t.Run("unknown listing", func(t *testing.T) {
		resp := env.do(t, http.MethodPatch, "/v3/application/shops/12345678/listings/42", tok.AccessToken, strings.NewReader(`{}`))
		assertErrorBody(t, resp, http.StatusNotFound, "Listing not found")
	})
}

func TestInternalEndpoints(t *testing.T) {
	env := newTestEnv(t)

	resp, err := http.Get(env.srv.URL + "/internal/stats")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats map[string]interface{}
	decodeBody(t, resp, &stats)
	entities, ok := stats["entities"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), entities["shops"])
	assert.Equal(t, float64(3), entities["receipts"])
	assert.Equal(t, float64(5), entities["listings"])

	// The request log endpoint reports disabled when no repository is wired.
	resp, err = http.Get(env.srv.URL + "/internal/requests")
	require.NoError(t, err)
	assertErrorBody(t, resp, http.StatusNotFound, "Request log is disabled")
}
