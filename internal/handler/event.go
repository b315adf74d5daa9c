package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/utsavhq/utsav/internal/store"
)

// OrganizerHandler serves the event management endpoints. Creation sits
// behind the organizer role gate; update and delete additionally require
// ownership of the specific event, checked in the store so the 403-vs-404
// distinction comes from one place.
type OrganizerHandler struct {
	Store *store.Store
}

func NewOrganizerHandler(s *store.Store) *OrganizerHandler {
	return &OrganizerHandler{Store: s}
}

type createEventReq struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Price       int64  `json:"price" validate:"gte=0"`
	ImageURL    string `json:"imageUrl"`
	EventTypeID uint64 `json:"eventTypeId" validate:"required"`
	// organizerId in the body is ignored: ownership always comes from the
	// session.
}

// CreateEvent handles POST /events. The creating user becomes the
// organizer regardless of anything supplied in the request body.
func (h *OrganizerHandler) CreateEvent(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createEventReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Title = strings.TrimSpace(req.Title)
	if err := c.Validate(&req); err != nil {
		return err
	}

	ev, err := h.Store.CreateEventFor(userID, store.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		EventTypeID: req.EventTypeID,
	})
	if err != nil {
		switch err {
		case store.ErrNotOrganizer:
			return c.JSON(http.StatusForbidden, echo.Map{"error": "only organizers can create events"})
		case store.ErrEventTypeNotFound:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "event type not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create event failed"})
	}
	return c.JSON(http.StatusCreated, ev)
}

// UpdateEvent handles PUT /events/:id. Partial bodies merge into the
// stored event; absent fields are untouched.
func (h *OrganizerHandler) UpdateEvent(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var upd store.EventUpdate
	if err := c.Bind(&upd); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if upd.Price != nil && *upd.Price < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "price must not be negative"})
	}

	ev, err := h.Store.UpdateEvent(id, userID, upd)
	if err != nil {
		switch err {
		case store.ErrEventNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		case store.ErrForbidden:
			return c.JSON(http.StatusForbidden, echo.Map{"error": "you can only update your own events"})
		case store.ErrEventTypeNotFound:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "event type not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update event failed"})
	}
	return c.JSON(http.StatusOK, ev)
}

// DeleteEvent handles DELETE /events/:id. Deletion does not cascade to
// cart items or registrations.
func (h *OrganizerHandler) DeleteEvent(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	if err := h.Store.DeleteEvent(id, userID); err != nil {
		switch err {
		case store.ErrEventNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		case store.ErrForbidden:
			return c.JSON(http.StatusForbidden, echo.Map{"error": "you can only delete your own events"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete event failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
