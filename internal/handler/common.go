// Package handler exposes the HTTP handlers for the API. Handlers bind and
// validate request bodies, call into the store, and map sentinel errors to
// HTTP statuses. All state is injected through the handler constructors;
// there are no package-level singletons.
package handler

import (
	"errors"

	"github.com/labstack/echo/v4"
)

// getUserID extracts the authenticated user id that the JWTAuth middleware
// stored in the context. A missing or mistyped value means the middleware
// did not run; treat it as unauthenticated.
func getUserID(c echo.Context) (uint64, error) {
	if id, ok := c.Get("user_id").(uint64); ok && id > 0 {
		return id, nil
	}
	return 0, errors.New("invalid user_id in context")
}
