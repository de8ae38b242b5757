package router

import (
	"marketplace/internal/handlers/account"
	"marketplace/internal/handlers/auth"
	"marketplace/internal/handlers/booking"
	"marketplace/internal/handlers/reconciliation"
	"marketplace/internal/handlers/setting"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth           auth.Handler
	Account        account.Handler
	Booking        booking.Handler
	Setting        setting.Handler
	Reconciliation reconciliation.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Account.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Setting.Router(routerGroup)
		r.DomainHandlers.Reconciliation.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
