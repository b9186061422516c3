// Package geocoding resolves free-text place names to coordinates.
package geocoding

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Geocoding errors.
var (
	ErrEmptyInput          = errors.New("location is empty")
	ErrLocationNotFound    = errors.New("location not found")
	ErrProviderUnavailable = errors.New("geocoding provider unavailable")
)

// GeoPoint is a resolved place.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`

	// Provider naming for the matched place, when reported.
	Name    string `json:"name,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
}

// String formats the coordinates as shown on the dashboard.
func (p GeoPoint) String() string {
	return fmt.Sprintf("Lat: %v, Lon: %v", p.Lat, p.Lon)
}

// Provider looks up the single best match for a place name.
type Provider interface {
	// Lookup returns ErrLocationNotFound when the provider has no candidate.
	Lookup(ctx context.Context, place string) (GeoPoint, error)

	// Name returns the provider name for logging.
	Name() string
}

// NormalizePlace trims place and rejects blank input.
func NormalizePlace(place string) (string, error) {
	trimmed := strings.TrimSpace(place)
	if trimmed == "" {
		return "", ErrEmptyInput
	}
	return trimmed, nil
}

// Resolver validates input before delegating to a Provider.
type Resolver struct {
	provider Provider
}

// NewResolver creates a resolver backed by provider.
func NewResolver(provider Provider) *Resolver {
	return &Resolver{provider: provider}
}

// Resolve returns the coordinates of place. Blank input fails with
// ErrEmptyInput without calling the provider.
func (r *Resolver) Resolve(ctx context.Context, place string) (GeoPoint, error) {
	normalized, err := NormalizePlace(place)
	if err != nil {
		return GeoPoint{}, err
	}
	return r.provider.Lookup(ctx, normalized)
}
