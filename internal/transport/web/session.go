package web

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// sessionCookie identifies the shopper's cart. The cart itself lives in
// memory only; a new session starts with an empty cart.
const sessionCookie = "storefront_session"

type sessionKey struct{}

// Sessions resolves the shopper's session ID once per request, setting the
// cookie when the request arrived without one, and stores it in the context.
func Sessions(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id string
		if cookie, err := r.Cookie(sessionCookie); err == nil && cookie.Value != "" {
			id = cookie.Value
		} else {
			id = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookie,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		ctx := context.WithValue(r.Context(), sessionKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionFrom returns the session ID placed in the context by Sessions.
func sessionFrom(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}
