// Package geo provides a best-effort location lookup used to enrich
// air-quality requests.
package geo

import (
	"context"
	"errors"
	"os"
	"strconv"
)

var errNoLocation = errors.New("no location configured")

// Coordinates is a geographic position.
type Coordinates struct {
	Lat float64
	Lon float64
}

// StaticProvider serves a fixed position, typically read from the
// environment. It stands in for a device GPS in this simulated deployment.
type StaticProvider struct {
	coords Coordinates
	ok     bool
}

// NewStaticProvider builds a provider from WARDWATCH_LAT / WARDWATCH_LON.
// When either is unset or malformed the provider reports no location.
func NewStaticProvider() *StaticProvider {
	lat, errLat := strconv.ParseFloat(os.Getenv("WARDWATCH_LAT"), 64)
	lon, errLon := strconv.ParseFloat(os.Getenv("WARDWATCH_LON"), 64)

	if errLat != nil || errLon != nil {
		return &StaticProvider{}
	}

	return &StaticProvider{coords: Coordinates{Lat: lat, Lon: lon}, ok: true}
}

// Fixed returns a provider that always serves the given coordinates.
func Fixed(lat, lon float64) *StaticProvider {
	return &StaticProvider{coords: Coordinates{Lat: lat, Lon: lon}, ok: true}
}

// Locate implements Provider.
func (p *StaticProvider) Locate(ctx context.Context) (Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return Coordinates{}, err
	}

	if !p.ok {
		return Coordinates{}, errNoLocation
	}

	return p.coords, nil
}
