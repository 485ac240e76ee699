package router

import (
	"resort/internal/handlers/amenity"
	"resort/internal/handlers/auth"
	"resort/internal/handlers/billing"
	"resort/internal/handlers/dashboard"
	"resort/internal/handlers/guest"
	"resort/internal/handlers/inventory"
	"resort/internal/handlers/rental"
	"resort/internal/handlers/report"
	"resort/internal/handlers/reservation"
	"resort/internal/handlers/room"
	"resort/internal/handlers/staff"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth        auth.Handler
	Staff       staff.Handler
	Guest       guest.Handler
	Room        room.Handler
	Amenity     amenity.Handler
	Inventory   inventory.Handler
	Reservation reservation.Handler
	Billing     billing.Handler
	Rental      rental.Handler
	Report      report.Handler
	Dashboard   dashboard.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Staff.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Amenity.Router(routerGroup)
		r.DomainHandlers.Inventory.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.Billing.Router(routerGroup)
		r.DomainHandlers.Rental.Router(routerGroup)
		r.DomainHandlers.Report.Router(routerGroup)
		r.DomainHandlers.Dashboard.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
