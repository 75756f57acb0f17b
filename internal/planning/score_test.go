package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOption struct {
	name  string
	price float64
	score float64
}

func pickFake(options []fakeOption, cap float64) PickResult[fakeOption] {
	return Pick(options,
		func(o fakeOption) float64 { return o.price },
		cap,
		func(o fakeOption) float64 { return o.score },
	)
}

func TestPick_SelectsLowestScore(t *testing.T) {
	res := pickFake([]fakeOption{
		{"a", 100, 30},
		{"b", 120, 10},
		{"c", 90, 20},
	}, 200)

	require.NotNil(t, res.Option)
	assert.Equal(t, "b", res.Option.name)
	assert.Len(t, res.InBudget, 3)
}

func TestPick_FiltersByCap(t *testing.T) {
	res := pickFake([]fakeOption{
		{"cheap", 50, 99},
		{"pricey", 500, 1},
	}, 100)

	require.NotNil(t, res.Option)
	assert.Equal(t, "cheap", res.Option.name)
	assert.Len(t, res.InBudget, 1)
}

func TestPick_EmptyAfterFilterReportsCheapestUnfiltered(t *testing.T) {
	res := pickFake([]fakeOption{
		{"a", 300, 1},
		{"b", 250, 2},
	}, 100)

	assert.Nil(t, res.Option)
	assert.Empty(t, res.InBudget)
	assert.Equal(t, 250.0, res.CheapestPrice)
}

func TestPick_TieKeepsFirst(t *testing.T) {
	res := pickFake([]fakeOption{
		{"first", 100, 5},
		{"second", 100, 5},
	}, 200)

	require.NotNil(t, res.Option)
	assert.Equal(t, "first", res.Option.name)
}

func TestPick_Deterministic(t *testing.T) {
	options := []fakeOption{
		{"a", 80, 12},
		{"b", 90, 12},
		{"c", 70, 15},
	}

	first := pickFake(options, 100)
	second := pickFake(options, 100)

	require.NotNil(t, first.Option)
	require.NotNil(t, second.Option)
	assert.Equal(t, first.Option.name, second.Option.name)
	assert.Equal(t, first.InBudget, second.InBudget)
}

func TestPick_NoOptions(t *testing.T) {
	res := pickFake(nil, 100)
	assert.Nil(t, res.Option)
	assert.Equal(t, 0.0, res.CheapestPrice)
}
