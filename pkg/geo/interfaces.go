package geo

import "context"

//go:generate mockgen -destination=mock_geo.go -package=geo github.com/mfreeman451/wardwatch/pkg/geo Provider

// Provider resolves the caller's current coordinates. Implementations must
// honor ctx cancellation; lookups are best-effort and callers treat any
// failure as "no coordinates".
type Provider interface {
	Locate(ctx context.Context) (Coordinates, error)
}
