package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/vin0san/mini-twitter/apperr"
)

type ctxKey string

const identityKey ctxKey = "identity"

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext returns the identity stored by Middleware.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// ErrorWriter renders an error response; handlers supply theirs so the
// middleware and the handlers share one error format.
type ErrorWriter func(w http.ResponseWriter, r *http.Request, err error)

// Middleware verifies the bearer token and stores the identity in the request
// context. Requests without a valid token never reach next.
func Middleware(tokens *TokenService, writeError ErrorWriter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				writeError(w, r, apperr.UnauthenticatedError("missing bearer token"))
				return
			}
			id, err := tokens.Verify(token)
			if err != nil {
				writeError(w, r, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
