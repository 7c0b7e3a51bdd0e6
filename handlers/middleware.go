package handlers

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/pocketbase/pocketbase/core"
)

type contextKey string

const clientIDKey contextKey = "clientID"

const clientIDCookie = "hh_client"

// GetClientID extracts the client id from the request context.
func GetClientID(r *http.Request) string {
	if val, ok := r.Context().Value(clientIDKey).(string); ok {
		return val
	}
	return ""
}

// ClientIDMiddleware reads the client id cookie, minting a new id when none
// exists, and stores it in the request context. The id scopes the
// order-state records the same way browser-local storage is scoped to one
// browser.
func ClientIDMiddleware() func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var clientID string

		cookie, err := e.Request.Cookie(clientIDCookie)
		if err == nil && cookie.Value != "" {
			clientID = cookie.Value
		} else {
			clientID = newClientID()
			http.SetCookie(e.Response, &http.Cookie{
				Name:     clientIDCookie,
				Value:    clientID,
				Path:     "/",
				MaxAge:   60 * 60 * 24 * 365,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(e.Request.Context(), clientIDKey, clientID)
		e.Request = e.Request.WithContext(ctx)

		return e.Next()
	}
}

func newClientID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "anonymous"
	}
	return hex.EncodeToString(b)
}
