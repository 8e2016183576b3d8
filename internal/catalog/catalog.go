// Package catalog provides the read-only points of interest shown on the
// itinerary screen.
package catalog

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/mark3labs/tripwise/internal/trip"
	"gopkg.in/yaml.v3"
)

// POI is a single point of interest.
type POI struct {
	ID          int     `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Type        string  `json:"type" yaml:"type"`
	Lat         float64 `json:"lat" yaml:"lat"`
	Lng         float64 `json:"lng" yaml:"lng"`
	Image       string  `json:"image" yaml:"image"`
}

// Coordinates renders lat/lng to four decimals.
func (p POI) Coordinates() string {
	return fmt.Sprintf("%.4f, %.4f", p.Lat, p.Lng)
}

// Center is the map position used when nothing is selected.
type Center struct {
	Lat  float64 `json:"lat" yaml:"lat"`
	Lng  float64 `json:"lng" yaml:"lng"`
	Zoom int     `json:"zoom" yaml:"zoom"`
}

// Catalog is a fixed, ordered list of POIs for one city.
type Catalog struct {
	City   trip.City `json:"city" yaml:"city"`
	Center Center    `json:"center" yaml:"center"`
	POIs   []POI     `json:"pois" yaml:"pois"`
}

// Lookup finds a POI by id.
func (c Catalog) Lookup(id int) (POI, bool) {
	for _, p := range c.POIs {
		if p.ID == id {
			return p, true
		}
	}
	return POI{}, false
}

// Index returns the position of id in catalog order, or -1.
func (c Catalog) Index(id int) int {
	for i, p := range c.POIs {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Len returns the number of POIs.
func (c Catalog) Len() int {
	return len(c.POIs)
}

// Validate checks ids are unique and every entry is usable on a map.
func (c Catalog) Validate() error {
	seen := make(map[int]bool, len(c.POIs))
	for i, p := range c.POIs {
		if seen[p.ID] {
			return fmt.Errorf("poi %d: duplicate id %d", i, p.ID)
		}
		seen[p.ID] = true

		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("poi %d: name is required", p.ID)
		}
		if !inRange(p.Lat, 90) {
			return fmt.Errorf("poi %d: latitude %.6f out of range", p.ID, p.Lat)
		}
		if !inRange(p.Lng, 180) {
			return fmt.Errorf("poi %d: longitude %.6f out of range", p.ID, p.Lng)
		}
	}
	if !inRange(c.Center.Lat, 90) || !inRange(c.Center.Lng, 180) {
		return fmt.Errorf("center out of range")
	}
	return nil
}

// inRange reports whether v is a real number within [-limit, limit].
func inRange(v, limit float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	return v >= -limit && v <= limit
}

// Load reads a YAML catalog file. Missing city and center fall back to the
// built-in Istanbul values.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("reading catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parsing catalog: %w", err)
	}

	if c.City == "" {
		c.City = trip.DefaultCity
	} else {
		city, err := trip.ParseCity(string(c.City))
		if err != nil {
			return Catalog{}, fmt.Errorf("parsing catalog: %w", err)
		}
		c.City = city
	}
	if c.Center == (Center{}) {
		c.Center = DefaultCenter
	}
	if c.Center.Zoom == 0 {
		c.Center.Zoom = DefaultCenter.Zoom
	}

	if err := c.Validate(); err != nil {
		return Catalog{}, fmt.Errorf("invalid catalog: %w", err)
	}
	return c, nil
}
