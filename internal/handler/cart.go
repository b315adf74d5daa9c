package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/utsavhq/utsav/internal/store"
)

// CartHandler serves the per-user cart endpoints. Every route requires a
// session; the cart is always the caller's own.
type CartHandler struct {
	Store *store.Store
}

func NewCartHandler(s *store.Store) *CartHandler {
	return &CartHandler{Store: s}
}

type addToCartReq struct {
	EventID  uint64 `json:"eventId" validate:"required"`
	Quantity int64  `json:"quantity" validate:"omitempty,gte=1"`
}

// GetCart handles GET /cart. The response is a bare array of cart items,
// each enriched with its event; totals live on the summary endpoint.
func (h *CartHandler) GetCart(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	return c.JSON(http.StatusOK, h.Store.Summarize(userID).Items)
}

// GetCartSummary handles GET /cart/summary. The response carries the items
// plus the computed subtotal, service fee, total and item count, recomputed
// from the cart snapshot on every call.
func (h *CartHandler) GetCartSummary(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	return c.JSON(http.StatusOK, h.Store.Summarize(userID))
}

// AddToCart handles POST /cart. Adding an event already in the cart
// increments the line's quantity instead of creating a second line.
func (h *CartHandler) AddToCart(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req addToCartReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	item, err := h.Store.AddToCart(userID, req.EventID, req.Quantity)
	if err != nil {
		if err == store.ErrEventNotFound {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "add to cart failed"})
	}

	line := store.CartLine{CartItem: item}
	if ev, err := h.Store.GetEvent(item.EventID); err == nil {
		line.Event = &ev
	}
	return c.JSON(http.StatusCreated, line)
}

// RemoveFromCart handles DELETE /cart/:id. Items belonging to other users
// answer 404, same as absent ids.
func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Store.RemoveFromCart(id, userID); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "cart item not found"})
	}
	return c.NoContent(http.StatusNoContent)
}

// ClearCart handles DELETE /cart, removing every item in the caller's cart
// and nobody else's.
func (h *CartHandler) ClearCart(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	h.Store.ClearCart(userID)
	return c.NoContent(http.StatusNoContent)
}
