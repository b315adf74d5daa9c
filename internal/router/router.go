// Package router defines how HTTP routes are registered for the API. All
// API endpoints live under the /api/v1 prefix; the health probe sits at the
// root.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/utsavhq/utsav/internal/handler"
	"github.com/utsavhq/utsav/internal/middleware"
	"github.com/utsavhq/utsav/internal/utils"
)

// RegisterRoutes registers routes that require no authentication or
// handlers: currently only the health check used by load balancers.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the auth endpoints under /api/v1/auth plus the
// protected /api/v1/me. Register, login, refresh and logout operate outside
// the JWT middleware; they establish or end sessions rather than use them.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/api/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/refresh-access", a.RefreshAccess)
	g.POST("/logout", a.Logout)

	auth := e.Group("/api/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
}

// RegisterPublic registers the unauthenticated browse endpoints. The
// optional cacheMW (Redis response cache) applies only to this group so
// authenticated, per-user responses are never cached.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, cacheMW echo.MiddlewareFunc) {
	g := e.Group("/api/v1")
	if cacheMW != nil {
		g.Use(cacheMW)
	}
	g.GET("/event-types", p.GetEventTypes)
	g.GET("/event-types/:id", p.GetEventType)
	g.GET("/events", p.GetEvents)
	// Literal segments before the :id route so /events/type/3 never parses
	// as an event id.
	g.GET("/events/type/:eventTypeId", p.GetEventsByType)
	g.GET("/events/organizer/:organizerId", p.GetEventsByOrganizer)
	g.GET("/events/:id", p.GetEvent)
}

// RegisterOrganizer registers event management endpoints. Creation requires
// the organizer role; update and delete additionally verify ownership in
// the store.
func RegisterOrganizer(e *echo.Echo, o *handler.OrganizerHandler, jwtSecret string) {
	g := e.Group("/api/v1")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(utils.RoleOrganizer))
	g.POST("/events", o.CreateEvent)
	g.PUT("/events/:id", o.UpdateEvent)
	g.DELETE("/events/:id", o.DeleteEvent)
}

// RegisterSession registers the cart and registration endpoints available
// to any authenticated user.
func RegisterSession(e *echo.Echo, cart *handler.CartHandler, reg *handler.RegistrationHandler, jwtSecret string) {
	g := e.Group("/api/v1")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(utils.RoleOrganizer, utils.RoleAttendee))

	g.GET("/cart", cart.GetCart)
	g.GET("/cart/summary", cart.GetCartSummary)
	g.POST("/cart", cart.AddToCart)
	g.DELETE("/cart/:id", cart.RemoveFromCart)
	g.DELETE("/cart", cart.ClearCart)

	g.POST("/register-event", reg.RegisterEvent)
	g.POST("/checkout", reg.Checkout)
	g.GET("/registrations", reg.ListRegistrations)
}
