// Package memory provides an in-memory candidate catalog, improving DX
// for tests, examples and embedded fixture data.
package memory

import (
	"context"
	"strings"

	"github.com/aretw0/wayfarer/pkg/domain"
	"github.com/aretw0/wayfarer/pkg/ports"
)

// Destination groups the candidate options of one destination.
type Destination struct {
	Name       string
	Aliases    []string
	Flights    []domain.Flight
	Hotels     []domain.Hotel
	Activities []domain.Activity
}

// Catalog implements ports.Catalog over a fixed set of destinations.
type Catalog struct {
	destinations []Destination
}

// New creates an in-memory catalog from destination entries.
func New(destinations ...Destination) *Catalog {
	return &Catalog{destinations: destinations}
}

// Flights implements ports.Catalog.
func (m *Catalog) Flights(_ context.Context, q ports.TravelQuery) ([]domain.Flight, error) {
	if d := m.match(q.Destination); d != nil {
		return d.Flights, nil
	}
	return nil, nil
}

// Hotels implements ports.Catalog.
func (m *Catalog) Hotels(_ context.Context, q ports.TravelQuery) ([]domain.Hotel, error) {
	if d := m.match(q.Destination); d != nil {
		return d.Hotels, nil
	}
	return nil, nil
}

// Activities implements ports.Catalog.
func (m *Catalog) Activities(_ context.Context, q ports.TravelQuery) ([]domain.Activity, error) {
	if d := m.match(q.Destination); d != nil {
		return d.Activities, nil
	}
	return nil, nil
}

// Destinations lists the catalog's destination names.
func (m *Catalog) Destinations(_ context.Context) ([]string, error) {
	names := make([]string, 0, len(m.destinations))
	for _, d := range m.destinations {
		names = append(names, d.Name)
	}
	return names, nil
}

func (m *Catalog) match(destination string) *Destination {
	needle := strings.ToLower(strings.TrimSpace(destination))
	for i := range m.destinations {
		d := &m.destinations[i]
		for _, candidate := range append([]string{d.Name}, d.Aliases...) {
			token := strings.ToLower(strings.TrimSpace(candidate))
			if token == "" {
				continue
			}
			if strings.Contains(needle, token) || strings.Contains(token, needle) {
				return d
			}
		}
	}
	return nil
}
