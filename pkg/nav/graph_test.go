package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prabhsharan1/Cosmic-explorer/pkg/content"
)

func defaultGraph(t *testing.T) *Graph {
	t.Helper()
	c, err := content.LoadDefault()
	require.NoError(t, err)
	return New(c.Bodies)
}

func TestFuelCost(t *testing.T) {
	g := defaultGraph(t)

	tests := []struct {
		from, to string
		want     int
	}{
		{"earth", "mars", 10},
		{"mars", "jupiter", 20},
		{"earth", "venus", 10}, // 7.5 is below the minimum
		{"earth", "moon", 10},
		{"earth", "sun", 30},
		{"neptune", "pluto", 20},
		{"moon", "jupiter", 30}, // 29.5 rounds up
		{"earth", "earth", 10},
		{"earth", "vulcan", 30}, // unknown ids sit at distance 0
		{"vulcan", "krypton", 10},
	}
	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			assert.Equal(t, tt.want, g.FuelCost(tt.from, tt.to))
		})
	}
}

func TestFuelCostSymmetric(t *testing.T) {
	g := defaultGraph(t)
	for _, a := range g.IDs() {
		for _, b := range g.IDs() {
			assert.Equal(t, g.FuelCost(a, b), g.FuelCost(b, a), "%s <-> %s", a, b)
			assert.GreaterOrEqual(t, g.FuelCost(a, b), MinFuelCost)
		}
	}
}

func TestIsTravelLegal(t *testing.T) {
	g := defaultGraph(t)

	assert.True(t, g.IsTravelLegal("earth", "mars"))
	assert.True(t, g.IsTravelLegal("mars", "earth"))
	assert.False(t, g.IsTravelLegal("earth", "jupiter"))

	// Legality is directed.
	assert.True(t, g.IsTravelLegal("mercury", "sun"))
	assert.False(t, g.IsTravelLegal("sun", "mercury"))
	assert.True(t, g.IsTravelLegal("neptune", "pluto"))
	assert.False(t, g.IsTravelLegal("pluto", "neptune"))

	// The Moon is one short hop from anywhere.
	for _, from := range []string{"earth", "jupiter", "pluto", "sun"} {
		assert.True(t, g.IsTravelLegal(from, "moon"), from)
	}
	assert.True(t, g.IsTravelLegal("moon", "earth"))
	assert.False(t, g.IsTravelLegal("moon", "mars"))

	assert.False(t, g.IsTravelLegal("vulcan", "earth"))
	assert.False(t, g.IsTravelLegal("earth", "vulcan"))
}

func TestNeighbors(t *testing.T) {
	g := defaultGraph(t)

	assert.Equal(t, []string{"venus", "moon", "mars"}, g.Neighbors("earth"))
	assert.Equal(t, []string{"earth"}, g.Neighbors("moon"))
	assert.Equal(t, []string{"moon"}, g.Neighbors("pluto"))
}

func TestBodyLookup(t *testing.T) {
	g := defaultGraph(t)

	b, ok := g.Body("saturn")
	require.True(t, ok)
	assert.Equal(t, 16.0, b.Distance)
	assert.True(t, g.Has("saturn"))
	assert.False(t, g.Has("vulcan"))

	_, ok = g.Body("vulcan")
	assert.False(t, ok)
}

func TestRoute(t *testing.T) {
	g := defaultGraph(t)

	assert.Equal(t, RouteInfo{From: "earth", To: "mars", Cost: 10, Legal: true}, g.Route("earth", "mars"))
	assert.Equal(t, RouteInfo{From: "earth", To: "saturn", Cost: 50, Legal: false}, g.Route("earth", "saturn"))
	assert.False(t, g.Route("earth", "earth").Legal)
}

func TestNewCopiesBodies(t *testing.T) {
	bodies := []content.Body{
		{ID: "a", Distance: 1, CanTravelTo: []string{"b"}},
		{ID: "b", Distance: 5},
	}
	g := New(bodies)
	bodies[1].Distance = 100

	assert.Equal(t, 20, g.FuelCost("a", "b"))
	assert.True(t, g.IsTravelLegal("a", "b"))
	assert.False(t, g.IsTravelLegal("b", "a"))
}
