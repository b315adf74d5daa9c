// Handlers for the unauthenticated browse API. Guests can list event
// types and events and filter by type or organizer without a session.
package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/utsavhq/utsav/internal/store"
)

// PublicHandler serves the catalog browse endpoints.
type PublicHandler struct {
	Store *store.Store
}

func NewPublicHandler(s *store.Store) *PublicHandler {
	return &PublicHandler{Store: s}
}

// GetEventTypes handles GET /event-types.
func (h *PublicHandler) GetEventTypes(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.EventTypes())
}

// GetEventType handles GET /event-types/:id.
func (h *PublicHandler) GetEventType(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	t, err := h.Store.GetEventType(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "event type not found"})
	}
	return c.JSON(http.StatusOK, t)
}

// GetEvents handles GET /events.
func (h *PublicHandler) GetEvents(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.Events())
}

// GetEvent handles GET /events/:id. A non-existent id answers 404 with no
// event payload.
func (h *PublicHandler) GetEvent(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ev, err := h.Store.GetEvent(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
	}
	return c.JSON(http.StatusOK, ev)
}

// GetEventsByType handles GET /events/type/:eventTypeId.
func (h *PublicHandler) GetEventsByType(c echo.Context) error {
	typeID, err := strconv.ParseUint(c.Param("eventTypeId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event type id"})
	}
	return c.JSON(http.StatusOK, h.Store.EventsByType(typeID))
}

// GetEventsByOrganizer handles GET /events/organizer/:organizerId.
func (h *PublicHandler) GetEventsByOrganizer(c echo.Context) error {
	organizerID, err := strconv.ParseUint(c.Param("organizerId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid organizer id"})
	}
	return c.JSON(http.StatusOK, h.Store.EventsByOrganizer(organizerID))
}
