package router

import (
	"tzdate/internal/handlers/conversion"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Conversion conversion.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Conversion.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
