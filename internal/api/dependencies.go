package api

import (
	"charter-ops/hangar/internal/common"
	"charter-ops/hangar/internal/config"
	"charter-ops/hangar/internal/db"
	"charter-ops/hangar/internal/db/repositories"
	"charter-ops/hangar/internal/metrics"
	"charter-ops/hangar/internal/services"
)

type Repositories struct {
	Accounts  *repositories.AccountRepository
	Planes    *repositories.PlaneRepository
	Pilots    *repositories.PilotRepository
	Trips     *repositories.TripRepository
	TripStats *repositories.TripStatsRepository
}

type Services struct {
	Cache     common.CacheInterface
	Tokens    *common.TokenService
	Accounts  *services.AccountService
	Airports  *services.AirportService
	Planes    *services.PlaneService
	Pilots    *services.PilotService
	Trips     *services.TripService
	Dashboard *services.DashboardService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Metrics  *metrics.MetricsRegistry
}

// Infrastructure is everything built by main before the dependency graph
type Infrastructure struct {
	DB      *db.Database
	Catalog *common.AirportCatalog
	Cache   common.CacheInterface
	Revoked common.RevokedTokenStore
	Metrics *metrics.MetricsRegistry
}

func InitDependencies(cfg *config.Config, infra Infrastructure) (*Dependencies, error) {
	repos := &Repositories{
		Accounts:  repositories.NewAccountRepository(infra.DB.ORM),
		Planes:    repositories.NewPlaneRepository(infra.DB.ORM),
		Pilots:    repositories.NewPilotRepository(infra.DB.ORM),
		Trips:     repositories.NewTripRepository(infra.DB.ORM),
		TripStats: repositories.NewTripStatsRepository(infra.DB.SQL),
	}

	tokens := common.NewTokenService([]byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL, infra.Revoked)
	airports := services.NewAirportService(infra.Catalog, infra.Cache, cfg.Cache.SearchTTL, infra.Metrics)

	trips := services.NewTripService(repos.Trips, repos.Planes, repos.Pilots, airports).WithMetrics(infra.Metrics)

	if infra.Metrics != nil {
		infra.Metrics.AirportCatalogSize.Set(float64(infra.Catalog.Len()))
	}

	svcs := &Services{
		Cache:     infra.Cache,
		Tokens:    tokens,
		Accounts:  services.NewAccountService(repos.Accounts, tokens),
		Airports:  airports,
		Planes:    services.NewPlaneService(repos.Planes),
		Pilots:    services.NewPilotService(repos.Pilots),
		Trips:     trips,
		Dashboard: services.NewDashboardService(repos.Planes, repos.Pilots, repos.TripStats),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Metrics:  infra.Metrics,
	}, nil
}
