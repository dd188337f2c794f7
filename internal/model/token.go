package model

// TokenRecord contains the data stored with an issued access token.
// The expiry is informational only; nothing enforces it.
type TokenRecord struct {
	AccessToken  string   `json:"access_token"`
	TokenType    string   `json:"token_type"`
	ExpiresIn    int      `json:"expires_in"`
	RefreshToken string   `json:"refresh_token"`
	UserID       int64    `json:"user_id"`
	ShopID       int64    `json:"shop_id"`
	Scopes       []string `json:"scopes"`
}
