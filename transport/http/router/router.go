package router

import (
	"inn/internal/handlers/auth"
	"inn/internal/handlers/booking"
	"inn/internal/handlers/coupon"
	"inn/internal/handlers/guest"
	"inn/internal/handlers/hall"
	"inn/internal/handlers/paidservice"
	"inn/internal/handlers/room"
	"inn/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth        auth.Handler
	User        user.Handler
	Guest       guest.Handler
	Room        room.Handler
	Hall        hall.Handler
	PaidService paidservice.Handler
	Coupon      coupon.Handler
	Booking     booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Hall.Router(routerGroup)
		r.DomainHandlers.PaidService.Router(routerGroup)
		r.DomainHandlers.Coupon.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
