// Package handlers wires the quoting core to PocketBase routes: a JSON API
// for the frontend plus binary offer downloads.
package handlers

import (
	"github.com/pocketbase/pocketbase/core"
)

// apiError writes a JSON error body. Every handler failure goes through
// here so the frontend can rely on one error shape.
func apiError(e *core.RequestEvent, statusCode int, message string) error {
	return e.JSON(statusCode, map[string]string{"error": message})
}
