package routes

import (
	"charter-ops/hangar/internal/api"
	"charter-ops/hangar/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
func RegisterAPIRoutes(r chi.Router, handlers *api.Handlers, deps *api.Dependencies, limiter *middleware.IPRateLimiter) {
	r.Route("/api/v1", func(v1 chi.Router) {
		// Public
		v1.Group(func(public chi.Router) {
			public.Use(limiter.Middleware)
			public.Post("/auth/register", handlers.Register())
			public.Post("/auth/login", handlers.Login())
		})

		// Authenticated: every record below is scoped to the token's account
		v1.Group(func(authed chi.Router) {
			authed.Use(middleware.AuthMiddleware(deps.Services.Tokens))

			authed.Post("/auth/logout", handlers.Logout())
			authed.Get("/account", handlers.GetAccount())
			authed.Get("/dashboard/summary", handlers.DashboardSummary())

			authed.Get("/airports/search", handlers.SearchAirports())
			authed.Get("/airports/{icao}", handlers.GetAirport())

			authed.Route("/planes", func(planes chi.Router) {
				planes.Get("/", handlers.ListPlanes())
				planes.Post("/", handlers.CreatePlane())
				planes.Get("/{planeID}", handlers.GetPlane())
				planes.Put("/{planeID}", handlers.UpdatePlane())
				planes.Delete("/{planeID}", handlers.DeletePlane())
			})

			authed.Route("/pilots", func(pilots chi.Router) {
				pilots.Get("/", handlers.ListPilots())
				pilots.Post("/", handlers.CreatePilot())
				pilots.Get("/{pilotID}", handlers.GetPilot())
				pilots.Put("/{pilotID}", handlers.UpdatePilot())
				pilots.Delete("/{pilotID}", handlers.DeletePilot())
			})

			authed.Route("/trips", func(trips chi.Router) {
				trips.Get("/", handlers.ListTrips())
				trips.Post("/", handlers.CreateTrip())
				trips.Get("/{tripID}", handlers.GetTrip())
				trips.Put("/{tripID}", handlers.UpdateTrip())
				trips.Delete("/{tripID}", handlers.DeleteTrip())
				trips.Get("/{tripID}/route", handlers.GetTripRoute())
			})
		})
	})
}
