// Package catalog provides candidate-catalog adapters: a Loam-backed
// loader over a directory of destination documents, and an in-memory
// implementation for tests and embedding.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/loam"

	"github.com/aretw0/wayfarer/pkg/domain"
	"github.com/aretw0/wayfarer/pkg/ports"
)

// DestinationMetadata is the frontmatter of a destination document. Each
// document describes one destination's candidate options; the body is
// free-form notes and is ignored by the planner.
type DestinationMetadata struct {
	Destination string        `json:"destination" mapstructure:"destination"`
	Aliases     []string      `json:"aliases" mapstructure:"aliases"`
	Flights     []FlightDoc   `json:"flights" mapstructure:"flights"`
	Hotels      []HotelDoc    `json:"hotels" mapstructure:"hotels"`
	Activities  []ActivityDoc `json:"activities" mapstructure:"activities"`
}

// FlightDoc is a flight candidate as written in frontmatter.
type FlightDoc struct {
	Airline string  `json:"airline" mapstructure:"airline"`
	Price   float64 `json:"price" mapstructure:"price"`
	Stops   int     `json:"stops" mapstructure:"stops"`
}

// HotelDoc is a hotel candidate as written in frontmatter.
type HotelDoc struct {
	Name          string  `json:"name" mapstructure:"name"`
	Rating        float64 `json:"rating" mapstructure:"rating"`
	PricePerNight float64 `json:"price_per_night" mapstructure:"price_per_night"`
	Type          string  `json:"type" mapstructure:"type"`
}

// ActivityDoc is an activity candidate as written in frontmatter.
type ActivityDoc struct {
	Name  string  `json:"name" mapstructure:"name"`
	Style string  `json:"style" mapstructure:"style"`
	Price float64 `json:"price" mapstructure:"price"`
}

// Loam adapts a Loam repository of destination documents to the Catalog
// port. Destination matching is a case-insensitive substring check against
// the document's destination name and aliases, so "Paris, France" finds a
// document declaring "paris".
type Loam struct {
	repo *loam.TypedRepository[DestinationMetadata]
}

// NewLoam initializes a Loam catalog over a directory.
func NewLoam(path string) (*Loam, error) {
	// Strict mode keeps numeric frontmatter stable across adapters;
	// the planner never writes, so the repository is opened read-only.
	repo, err := loam.Init(path,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}

	return &Loam{repo: loam.NewTypedRepository[DestinationMetadata](repo)}, nil
}

// NewLoamFromRepo wraps an existing typed repository.
func NewLoamFromRepo(repo *loam.TypedRepository[DestinationMetadata]) *Loam {
	return &Loam{repo: repo}
}

// Flights implements ports.Catalog.
func (c *Loam) Flights(ctx context.Context, q ports.TravelQuery) ([]domain.Flight, error) {
	meta, err := c.lookup(ctx, q.Destination)
	if err != nil || meta == nil {
		return nil, err
	}

	flights := make([]domain.Flight, 0, len(meta.Flights))
	for _, f := range meta.Flights {
		flights = append(flights, domain.Flight{
			Airline: f.Airline,
			Price:   f.Price,
			Stops:   f.Stops,
		})
	}
	return flights, nil
}

// Hotels implements ports.Catalog.
func (c *Loam) Hotels(ctx context.Context, q ports.TravelQuery) ([]domain.Hotel, error) {
	meta, err := c.lookup(ctx, q.Destination)
	if err != nil || meta == nil {
		return nil, err
	}

	hotels := make([]domain.Hotel, 0, len(meta.Hotels))
	for _, h := range meta.Hotels {
		hotels = append(hotels, domain.Hotel{
			Name:          h.Name,
			Rating:        h.Rating,
			PricePerNight: h.PricePerNight,
			Type:          domain.AccommodationType(h.Type),
		})
	}
	return hotels, nil
}

// Activities implements ports.Catalog.
func (c *Loam) Activities(ctx context.Context, q ports.TravelQuery) ([]domain.Activity, error) {
	meta, err := c.lookup(ctx, q.Destination)
	if err != nil || meta == nil {
		return nil, err
	}

	activities := make([]domain.Activity, 0, len(meta.Activities))
	for _, a := range meta.Activities {
		activities = append(activities, domain.Activity{
			Name:  a.Name,
			Style: domain.ActivityStyle(a.Style),
			Price: a.Price,
		})
	}
	return activities, nil
}

// Destinations lists the destination names declared in the repository,
// for introspection tools (e.g., 'wayfarer catalog list').
func (c *Loam) Destinations(ctx context.Context) ([]string, error) {
	docs, err := c.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	names := make([]string, 0, len(docs))
	for _, doc := range docs {
		name := doc.Data.Destination
		if name == "" {
			name = doc.ID
		}
		names = append(names, name)
	}
	return names, nil
}

// lookup finds the document matching a free-text destination. A miss is
// not an error: the planner reports missing candidates as "no selection".
func (c *Loam) lookup(ctx context.Context, destination string) (*DestinationMetadata, error) {
	docs, err := c.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	needle := strings.ToLower(strings.TrimSpace(destination))
	for _, doc := range docs {
		for _, candidate := range append([]string{doc.Data.Destination}, doc.Data.Aliases...) {
			token := strings.ToLower(strings.TrimSpace(candidate))
			if token == "" {
				continue
			}
			if strings.Contains(needle, token) || strings.Contains(token, needle) {
				meta := doc.Data
				return &meta, nil
			}
		}
	}
	return nil, nil
}
