// Package model holds the core data types shared across the film-map service.
package model

import (
	"github.com/twpayne/go-geom"
)

// NotAvailable is the sentinel stored for free-text fields absent in the source.
const NotAvailable = "N/A"

// Location is one validated film-location record. The set of records is built
// once at load time and never mutated afterwards; every record carries a
// non-empty Film and finite coordinates.
type Location struct {
	Film         string  `json:"film"`
	DisplayText  string  `json:"display_text"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Borough      string  `json:"borough"`
	Neighborhood string  `json:"neighborhood"`
}

// Viewport is a map center plus zoom level, used by the presentation shell to
// pick its initial view.
type Viewport struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Zoom      int     `json:"zoom"`
}

// SearchZoom is the zoom level used after a successful location search.
const SearchZoom = 14

// DefaultViewport centers on New York City, the home region of the dataset.
var DefaultViewport = Viewport{Latitude: 40.7128, Longitude: -74.0060, Zoom: 11}

// Bounds returns the geographic extent of the record set in lon/lat (XY)
// order, or nil for an empty set.
func Bounds(locations []Location) *geom.Bounds {
	if len(locations) == 0 {
		return nil
	}
	b := geom.NewBounds(geom.XY)
	for _, loc := range locations {
		b = b.Extend(geom.NewPointFlat(geom.XY, []float64{loc.Longitude, loc.Latitude}))
	}
	return b
}
