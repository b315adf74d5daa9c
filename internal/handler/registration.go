package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/utsavhq/utsav/internal/queue"
	queue_publisher "github.com/utsavhq/utsav/internal/service"
	"github.com/utsavhq/utsav/internal/store"
)

// RegistrationHandler serves direct event registration, cart checkout and
// the registration history. Both registration paths publish a confirmation
// to the broker; publish failures are logged inside the publisher and never
// fail the request.
type RegistrationHandler struct {
	Store *store.Store
}

func NewRegistrationHandler(s *store.Store) *RegistrationHandler {
	return &RegistrationHandler{Store: s}
}

type registerEventReq struct {
	EventID uint64 `json:"eventId" validate:"required"`
}

// RegisterEvent handles POST /register-event: one registration row,
// immediately, independent of cart state.
func (h *RegistrationHandler) RegisterEvent(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req registerEventReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	reg, err := h.Store.Register(userID, req.EventID)
	if err != nil {
		if err == store.ErrEventNotFound {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "register failed"})
	}

	line := store.RegistrationLine{Registration: reg}
	if ev, err := h.Store.GetEvent(reg.EventID); err == nil {
		line.Event = &ev
		h.publishConfirmed(c, reg, ev, "direct")
	}
	return c.JSON(http.StatusCreated, line)
}

// Checkout handles POST /checkout. It reads the caller's cart, creates one
// registration per cart line (quantity is ignored: one row per distinct
// line, not per unit), and clears the cart only after every row was
// created.
//
// The sequence is not atomic: a failure partway through the loop leaves
// the earlier registrations in place and the cart untouched, so a retry
// will duplicate those rows. Checkout is retriable but not idempotent.
func (h *RegistrationHandler) Checkout(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	// Snapshot the totals before the cart is emptied so the response can
	// echo what was charged.
	summary := h.Store.Summarize(userID)

	items := h.Store.CartItemsByUser(userID)
	for _, item := range items {
		reg, err := h.Store.Register(userID, item.EventID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "checkout failed"})
		}
		if ev, err := h.Store.GetEvent(item.EventID); err == nil {
			h.publishConfirmed(c, reg, ev, "checkout")
		}
	}

	h.Store.ClearCart(userID)

	return c.JSON(http.StatusOK, echo.Map{
		"message":       "checkout successful",
		"registrations": len(items),
		"subtotal":      summary.Subtotal,
		"serviceFee":    summary.ServiceFee,
		"total":         summary.Total,
	})
}

// ListRegistrations handles GET /registrations.
func (h *RegistrationHandler) ListRegistrations(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	return c.JSON(http.StatusOK, h.Store.RegistrationsByUser(userID))
}

func (h *RegistrationHandler) publishConfirmed(c echo.Context, reg store.Registration, ev store.Event, source string) {
	_ = queue_publisher.PublishRegistrationConfirmed(c.Request().Context(), queue.RegistrationConfirmedEvent{
		RegistrationID: reg.ID,
		UserID:         reg.UserID,
		EventID:        reg.EventID,
		EventTitle:     ev.Title,
		Price:          ev.Price,
		Source:         source,
		RegisteredAt:   reg.RegistrationDate.Format(time.RFC3339),
	})
}
