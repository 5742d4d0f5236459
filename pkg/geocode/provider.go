package geocode

import "context"

// Result is the outcome of resolving a free-text query. Found distinguishes a
// definitive "no match" from a resolved coordinate pair; a transport failure
// is reported through the error return instead.
type Result struct {
	Latitude    float64
	Longitude   float64
	Found       bool
	DisplayName string
}

// Provider is a single geocoding backend.
type Provider interface {
	Name() string
	Resolve(ctx context.Context, query string) (*Result, error)
}
