package middleware

import (
	"context"
	"net/http"
	"strings"

	"etsy-mock-api/internal/model"
	"etsy-mock-api/internal/service"
	"etsy-mock-api/pkg/apierror"
)

// TokenRecordKey is the key for storing the resolved token record in the
// request context.
const TokenRecordKey contextKey = "token_record"

// AuthConfig holds configuration for the auth middleware.
type AuthConfig struct {
	TokenService *service.TokenService
}

// NewAuthMiddleware creates the two-header auth gate. It is composed
// explicitly in front of the protected route group; exempt endpoints
// (token issuance, ping, root) are simply registered outside the group.
//
// Check one: a non-empty x-api-key header. The value is not validated
// against any registry. Check two: a Bearer token that resolves in the
// token registry. Either failure short-circuits to a 401 and dispatch is
// never reached.
func NewAuthMiddleware(cfg AuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("x-api-key") == "" {
				writeError(w, apierror.Unauthorized("Missing x-api-key header"))
				return
			}

			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, apierror.Unauthorized("Missing or invalid Authorization header"))
				return
			}

			token := strings.TrimPrefix(auth, "Bearer ")
			record, err := cfg.TokenService.Validate(r.Context(), token)
			if err != nil {
				if apiErr, ok := err.(*apierror.Error); ok {
					writeError(w, apiErr)
				} else {
					writeError(w, apierror.Unauthorized("Invalid access token"))
				}
				return
			}

			ctx := context.WithValue(r.Context(), TokenRecordKey, record)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// writeError writes an API error response.
func writeError(w http.ResponseWriter, err *apierror.Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.StatusCode)
	w.Write(err.ToJSON())
}

// GetTokenRecord retrieves the resolved token record from request context.
func GetTokenRecord(ctx context.Context) *model.TokenRecord {
	if record, ok := ctx.Value(TokenRecordKey).(*model.TokenRecord); ok {
		return record
	}
	return nil
}
