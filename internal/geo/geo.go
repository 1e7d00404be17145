package geo

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/theUtkarshRaj/SupplyGuard/internal/domain"
	"github.com/theUtkarshRaj/SupplyGuard/internal/ports"
)

// defaultRegionMap buckets well-known place names into coarse regions.
// Anything else resolves to the "Global" sentinel.
var defaultRegionMap = map[string]string{
	"Taiwan":    "Asia-Pacific",
	"China":     "Asia-Pacific",
	"USA":       "North America",
	"India":     "Asia-Pacific",
	"Germany":   "Europe",
	"UK":        "Europe",
	"Australia": "Asia-Pacific",
}

// RegionMap is the static location→region lookup. Zero value is unusable;
// construct via DefaultRegionMap or LoadRegionMap.
type RegionMap struct {
	regions map[string]string
}

// DefaultRegionMap returns the embedded mapping.
func DefaultRegionMap() RegionMap {
	return RegionMap{regions: defaultRegionMap}
}

// LoadRegionMap reads a YAML override file of location: region pairs.
func LoadRegionMap(path string) (RegionMap, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return RegionMap{}, fmt.Errorf("region map: read %s: %w", path, err)
	}

	var m map[string]string
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return RegionMap{}, fmt.Errorf("region map: parse %s: %w", path, err)
	}
	if len(m) == 0 {
		return RegionMap{}, fmt.Errorf("region map: %s defines no entries", path)
	}
	return RegionMap{regions: m}, nil
}

// RegionFor is total and deterministic: every input maps to some region,
// unmapped inputs map to the "Global" sentinel.
func (r RegionMap) RegionFor(location string) string {
	if region, ok := r.regions[location]; ok {
		return region
	}
	return domain.RegionGlobal
}

// Resolver combines the pure region lookup with cached external geocoding.
type Resolver struct {
	regions  RegionMap
	geocoder ports.Geocoder
	logger   *slog.Logger

	mu    sync.Mutex
	cache map[string]*domain.Coordinates
}

// NewResolver wires the geocoder behind a per-run coordinate cache.
func NewResolver(regions RegionMap, geocoder ports.Geocoder, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		regions:  regions,
		geocoder: geocoder,
		logger:   logger,
		cache:    map[string]*domain.Coordinates{},
	}
}

// Resolve maps a location string to optional coordinates and a region.
// Geocoding failures degrade to nil coordinates and never fail the record;
// the region resolves independently of the external call.
func (r *Resolver) Resolve(ctx context.Context, location string) (*domain.Coordinates, string) {
	region := r.regions.RegionFor(location)

	if r.geocoder == nil || location == domain.UnknownLocation {
		return nil, region
	}

	key := strings.ToLower(strings.TrimSpace(location))

	r.mu.Lock()
	coords, hit := r.cache[key]
	r.mu.Unlock()
	if hit {
		return coords, region
	}

	// External call happens outside the lock; a concurrent duplicate lookup
	// for the same key is tolerable and both writes store the same value.
	resolved, err := r.geocoder.Geocode(ctx, location)
	if err != nil {
		r.logger.Warn("geocode failed", "location", location, "error", err)
		resolved = nil
	}

	r.mu.Lock()
	if cached, ok := r.cache[key]; ok {
		resolved = cached
	} else {
		r.cache[key] = resolved
	}
	r.mu.Unlock()

	return resolved, region
}
