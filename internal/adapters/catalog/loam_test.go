package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/wayfarer/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalogFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	paris := []byte(`---
destination: Paris
aliases:
  - france
flights:
  - airline: Direct Air
    price: 450
    stops: 0
  - airline: Hop Air
    price: 380
    stops: 2
hotels:
  - name: Grand
    rating: 4.5
    price_per_night: 180
  - name: Corner Inn
    rating: 4.0
    price_per_night: 120
activities:
  - name: Museum walk
    style: cultural
    price: 30
---
Notes about Paris fixtures.`)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "paris.md"), paris, 0644))
	return dir
}

func TestLoam_LoadsDestinationDocument(t *testing.T) {
	cat, err := NewLoam(writeCatalogFixture(t))
	require.NoError(t, err)

	ctx := context.Background()
	q := ports.TravelQuery{Destination: "Paris, France", Duration: 5}

	flights, err := cat.Flights(ctx, q)
	require.NoError(t, err)
	require.Len(t, flights, 2)
	assert.Equal(t, "Direct Air", flights[0].Airline)
	assert.Equal(t, 450.0, flights[0].Price)
	assert.Equal(t, 2, flights[1].Stops)

	hotels, err := cat.Hotels(ctx, q)
	require.NoError(t, err)
	require.Len(t, hotels, 2)
	assert.Equal(t, 4.5, hotels[0].Rating)

	activities, err := cat.Activities(ctx, q)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, "Museum walk", activities[0].Name)
}

func TestLoam_UnknownDestinationIsEmptyNotError(t *testing.T) {
	cat, err := NewLoam(writeCatalogFixture(t))
	require.NoError(t, err)

	flights, err := cat.Flights(context.Background(), ports.TravelQuery{Destination: "Atlantis"})
	assert.NoError(t, err)
	assert.Empty(t, flights)
}

func TestLoam_Destinations(t *testing.T) {
	cat, err := NewLoam(writeCatalogFixture(t))
	require.NoError(t, err)

	names, err := cat.Destinations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Paris"}, names)
}
