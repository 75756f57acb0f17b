package ports

import (
	"context"

	"github.com/aretw0/wayfarer/pkg/domain"
)

// TravelQuery identifies the candidate sets for one trip.
type TravelQuery struct {
	Destination string `json:"destination"`
	Origin      string `json:"origin,omitempty"`
	Duration    int    `json:"duration"`
}

// Catalog supplies candidate options for a query. Implementations must
// return slices the caller may keep: the planning core treats them as
// immutable. An unknown destination yields empty slices, not an error;
// errors are reserved for backend faults.
type Catalog interface {
	Flights(ctx context.Context, q TravelQuery) ([]domain.Flight, error)
	Hotels(ctx context.Context, q TravelQuery) ([]domain.Hotel, error)
	Activities(ctx context.Context, q TravelQuery) ([]domain.Activity, error)
}
