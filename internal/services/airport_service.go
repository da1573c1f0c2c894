package services

import (
	"fmt"
	"strings"
	"time"

	"charter-ops/hangar/internal/common"
	"charter-ops/hangar/internal/constants"
	"charter-ops/hangar/internal/metrics"
)

const airportSearchCache = "airport_search"

// MaxSearchLimit bounds client-requested search page sizes
const MaxSearchLimit = 50

// AirportService fronts the airport catalog with a short-lived search cache
type AirportService struct {
	catalog  *common.AirportCatalog
	cache    common.CacheInterface
	cacheTTL time.Duration
	metrics  *metrics.MetricsRegistry
}

func NewAirportService(
	catalog *common.AirportCatalog,
	cache common.CacheInterface,
	cacheTTL time.Duration,
	metricsReg *metrics.MetricsRegistry,
) *AirportService {
	return &AirportService{
		catalog:  catalog,
		cache:    cache,
		cacheTTL: cacheTTL,
		metrics:  metricsReg,
	}
}

// Search returns up to limit airports matching query. Short queries return an empty list.
func (s *AirportService) Search(query string, limit int) []common.Airport {
	if limit <= 0 {
		limit = common.DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if len([]rune(q)) < common.MinSearchQueryLength {
		return []common.Airport{}
	}

	if s.metrics != nil {
		s.metrics.AirportSearchesTotal.Inc()
	}

	key := fmt.Sprintf("%s%s_%d", constants.CachePrefixAirportSearch, q, limit)
	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			if results, ok := cached.([]common.Airport); ok {
				s.recordCache(true)
				return results
			}
		}
		s.recordCache(false)
	}

	results := s.catalog.Search(q, limit)
	if s.cache != nil {
		s.cache.Set(key, results, s.cacheTTL)
	}
	return results
}

// Lookup resolves one ICAO code
func (s *AirportService) Lookup(icao string) (common.Airport, error) {
	code := common.NormalizeICAO(icao)
	if code == "" {
		return common.Airport{}, newError(ErrValidation, "icao code is required")
	}
	airport, ok := s.catalog.LookupByCode(code)
	if !ok {
		return common.Airport{}, wrapError(ErrNotFound, "unknown ICAO code", fmt.Errorf("%w: %s", ErrAirportNotFound, code))
	}
	return airport, nil
}

// LookupByCode satisfies AirportLookup
func (s *AirportService) LookupByCode(icao string) (common.Airport, bool) {
	return s.catalog.LookupByCode(icao)
}

func (s *AirportService) CatalogSize() int {
	return s.catalog.Len()
}

func (s *AirportService) recordCache(hit bool) {
	if s.metrics == nil {
		return
	}
	if hit {
		s.metrics.CacheHitsTotal.WithLabelValues(airportSearchCache).Inc()
	} else {
		s.metrics.CacheMissesTotal.WithLabelValues(airportSearchCache).Inc()
	}
}
