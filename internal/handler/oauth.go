package handler

import (
	"net/http"

	"etsy-mock-api/internal/service"
	"etsy-mock-api/pkg/apierror"
	"etsy-mock-api/pkg/response"
)

// OAuthHandler handles the public token endpoint.
type OAuthHandler struct {
	tokens *service.TokenService
}

// NewOAuthHandler creates a new oauth handler.
func NewOAuthHandler(tokens *service.TokenService) *OAuthHandler {
	return &OAuthHandler{tokens: tokens}
}

// TokenResponse is the wire shape of an issued pair. The stored record
// carries more (identities, scopes) but only these four fields go out.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
}

// Token handles POST /v3/public/oauth/token. The body is form-encoded;
// grant_type selects which of the remaining fields are read.
func (h *OAuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		response.Error(w, apierror.BadRequest("invalid form body"))
		return
	}

	record, err := h.tokens.Issue(r.Context(), service.GrantRequest{
		GrantType:    r.PostFormValue("grant_type"),
		Code:         r.PostFormValue("code"),
		ClientID:     r.PostFormValue("client_id"),
		RedirectURI:  r.PostFormValue("redirect_uri"),
		CodeVerifier: r.PostFormValue("code_verifier"),
		RefreshToken: r.PostFormValue("refresh_token"),
	})
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, TokenResponse{
		AccessToken:  record.AccessToken,
		TokenType:    record.TokenType,
		ExpiresIn:    record.ExpiresIn,
		RefreshToken: record.RefreshToken,
	})
}
