package common

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"charter-ops/hangar/internal/logging"
)

// DefaultSearchLimit caps airport search results when no limit is given
const DefaultSearchLimit = 10

// MinSearchQueryLength is the shortest query that is matched against the catalog
const MinSearchQueryLength = 2

// Airport is a single reference airport. Values are never mutated after loading.
type Airport struct {
	ICAO          string  `json:"icao"`
	IATA          string  `json:"iata,omitempty"`
	Name          string  `json:"name"`
	City          string  `json:"city"`
	Country       string  `json:"country"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	ElevationFeet int     `json:"elevation_feet"`
}

// Coordinates returns the airport position as [longitude, latitude] for map rendering
func (a Airport) Coordinates() [2]float64 {
	return [2]float64{a.Longitude, a.Latitude}
}

// AirportCatalog is the in-memory airport table. It is built once and only read afterwards.
type AirportCatalog struct {
	airports []Airport
	byICAO   map[string]int
}

// NewAirportCatalog builds a catalog from the given airports.
// Entries without an ICAO code are dropped and duplicate codes keep the first entry.
func NewAirportCatalog(airports []Airport) *AirportCatalog {
	c := &AirportCatalog{
		airports: make([]Airport, 0, len(airports)),
		byICAO:   make(map[string]int, len(airports)),
	}

	for _, a := range airports {
		a.ICAO = strings.ToUpper(strings.TrimSpace(a.ICAO))
		a.IATA = strings.ToUpper(strings.TrimSpace(a.IATA))
		if a.ICAO == "" {
			continue
		}
		if _, exists := c.byICAO[a.ICAO]; exists {
			continue
		}
		c.byICAO[a.ICAO] = len(c.airports)
		c.airports = append(c.airports, a)
	}

	return c
}

// LoadAirportCatalog parses the airport reference CSV at path.
// A missing file yields an empty catalog; it is logged and not treated as an error.
func LoadAirportCatalog(path string) (*AirportCatalog, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logging.Warn("Airport reference file not found, starting with empty catalog", "path", path)
			return NewAirportCatalog(nil), nil
		}
		return nil, fmt.Errorf("failed to open airport file: %w", err)
	}
	defer f.Close()

	airports, err := ParseAirportsCSV(f)
	if err != nil {
		return nil, err
	}

	catalog := NewAirportCatalog(airports)
	logging.Info("Airport catalog loaded", "path", path, "airports", catalog.Len())
	return catalog, nil
}

var airportColumnAliases = map[string][]string{
	"icao":      {"icao", "icao_code", "ident"},
	"iata":      {"iata", "iata_code"},
	"name":      {"name"},
	"city":      {"city", "municipality"},
	"country":   {"country", "iso_country"},
	"latitude":  {"latitude", "latitude_deg", "lat"},
	"longitude": {"longitude", "longitude_deg", "lon"},
	"elevation": {"elevation", "elevation_ft"},
}

// ParseAirportsCSV reads airports from a CSV stream with a header row.
// Rows without an ICAO code or with unparsable coordinates are skipped.
func ParseAirportsCSV(r io.Reader) ([]Airport, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read airport header: %w", err)
	}

	idx := make(map[string]int, len(airportColumnAliases))
	for field, aliases := range airportColumnAliases {
		idx[field] = -1
		for _, alias := range aliases {
			if i := headerIndex(headers, alias); i >= 0 {
				idx[field] = i
				break
			}
		}
	}

	if idx["icao"] < 0 || idx["latitude"] < 0 || idx["longitude"] < 0 {
		return nil, fmt.Errorf("airport file is missing icao, latitude or longitude columns")
	}

	col := func(rec []string, field string) string {
		i := idx[field]
		if i < 0 || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var airports []Airport
	skipped := 0
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}

		icao := col(rec, "icao")
		lat, latErr := strconv.ParseFloat(col(rec, "latitude"), 64)
		lon, lonErr := strconv.ParseFloat(col(rec, "longitude"), 64)
		if icao == "" || latErr != nil || lonErr != nil {
			skipped++
			continue
		}

		elevation, _ := strconv.Atoi(col(rec, "elevation"))

		airports = append(airports, Airport{
			ICAO:          strings.ToUpper(icao),
			IATA:          strings.ToUpper(col(rec, "iata")),
			Name:          col(rec, "name"),
			City:          col(rec, "city"),
			Country:       col(rec, "country"),
			Latitude:      lat,
			Longitude:     lon,
			ElevationFeet: elevation,
		})
	}

	if skipped > 0 {
		logging.Debug("Skipped invalid airport rows", "count", skipped)
	}

	return airports, nil
}

func headerIndex(headers []string, name string) int {
	for i, h := range headers {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

// Len returns the number of airports in the catalog
func (c *AirportCatalog) Len() int {
	return len(c.airports)
}

// LookupByCode finds an airport by exact ICAO code (case-insensitive)
func (c *AirportCatalog) LookupByCode(icao string) (Airport, bool) {
	i, ok := c.byICAO[strings.ToUpper(strings.TrimSpace(icao))]
	if !ok {
		return Airport{}, false
	}
	return c.airports[i], true
}

// Search matches query case-insensitively against ICAO, IATA, name and city.
// Queries shorter than MinSearchQueryLength return an empty slice.
func (c *AirportCatalog) Search(query string, limit int) []Airport {
	q := strings.ToLower(strings.TrimSpace(query))
	if len([]rune(q)) < MinSearchQueryLength {
		return []Airport{}
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	results := make([]Airport, 0, limit)
	for _, a := range c.airports {
		if matchesAirport(a, q) {
			results = append(results, a)
			if len(results) == limit {
				break
			}
		}
	}
	return results
}

func matchesAirport(a Airport, q string) bool {
	return strings.Contains(strings.ToLower(a.ICAO), q) ||
		(a.IATA != "" && strings.Contains(strings.ToLower(a.IATA), q)) ||
		strings.Contains(strings.ToLower(a.Name), q) ||
		strings.Contains(strings.ToLower(a.City), q)
}
