package router

import (
	"eljardin/internal/handlers/audit"
	"eljardin/internal/handlers/auth"
	"eljardin/internal/handlers/booking"
	"eljardin/internal/handlers/order"
	"eljardin/internal/handlers/status"
	"eljardin/internal/handlers/user"
	"eljardin/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth    auth.Handler
	Booking booking.Handler
	Order   order.Handler
	User    user.Handler
	Audit   audit.Handler
	Status  status.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthMiddleware middleware.Auth
}

// SetupRoutes mounts the API under /api. The user listing and the audit trail
// expose personal data and sit behind bearer auth; the rest matches the public
// surface the web client expects.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Get("/health", r.DomainHandlers.Status.Health)

	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Order.Router(routerGroup)
		r.DomainHandlers.Status.Router(routerGroup)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(r.AuthMiddleware.Auth)
			r.DomainHandlers.User.Router(protected)
			r.DomainHandlers.Audit.Router(protected)
		})
	})
}

func New(domainHandlers DomainHandlers, authMiddleware middleware.Auth) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthMiddleware: authMiddleware,
	}
}
