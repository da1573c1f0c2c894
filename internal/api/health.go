package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"charter-ops/hangar/internal/models/entities"
)

// Pinger is a dependency the health check can probe
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheckHandler handles GET /healthCheck
//
// @Summary Health check
// @Description Verifies the server is running, the database answers and reports the airport catalog size.
// @Tags Misc
// @Success 200 {object} entities.HealthCheckResponse
// @Failure 503 {object} entities.HealthCheckResponse
// @Router /healthCheck [get]
func HealthCheckHandler(db Pinger, catalogSize func() int, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services := make(map[string]entities.ServiceStatus)

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		dbStatus := "ok"
		dbDetails := "Database Connected"
		if err := db.Ping(ctx); err != nil {
			dbStatus = "down"
			dbDetails = err.Error()
		}
		services["database"] = entities.ServiceStatus{
			Status:  dbStatus,
			Details: dbDetails,
		}

		// an empty catalog is degraded, not down: trips simply cannot be estimated
		size := catalogSize()
		catalogStatus := "ok"
		if size == 0 {
			catalogStatus = "degraded"
		}
		services["airport_catalog"] = entities.ServiceStatus{
			Status:  catalogStatus,
			Details: fmt.Sprintf("%d airports loaded", size),
		}

		overallStatus := "ok"
		code := http.StatusOK
		if dbStatus != "ok" {
			overallStatus = "down"
			code = http.StatusServiceUnavailable
		}

		resp := entities.HealthCheckResponse{
			Services: services,
			Status:   overallStatus,
			UpSince:  upSince,
			Uptime:   time.Since(upSince).Round(time.Second).String(),
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(resp)
	}
}
