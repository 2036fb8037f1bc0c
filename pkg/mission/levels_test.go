package mission

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prabhsharan1/Cosmic-explorer/pkg/content"
	"github.com/prabhsharan1/Cosmic-explorer/pkg/nav"
)

// replayLevel plays a travel itinerary on a fresh level mission with no
// hazard damage, and returns the final snapshot.
func replayLevel(cat *content.Catalog, level string, hops []string) (Snapshot, error) {
	sched := NewManualScheduler()
	m, err := New(cat, DefaultConfig(), WithLevel(level), WithScheduler(sched), WithRand(fixedRand{f: 0.99}))
	if err != nil {
		return Snapshot{}, err
	}
	defer m.Close()
	for _, hop := range hops {
		if _, err := m.RequestTravel(hop); err != nil {
			return Snapshot{}, err
		}
		sched.FireAll()
	}
	return m.Snapshot(), nil
}

// stateKey identifies everything that decides how a level can continue.
func stateKey(s Snapshot) string {
	visited := slices.Clone(s.VisitedPlanets)
	slices.Sort(visited)
	done := slices.Clone(s.CompletedTasks)
	slices.Sort(done)
	return fmt.Sprint(s.CurrentLocation, s.Fuel, s.Health, slices.Compact(visited), done)
}

// findWinningRoute searches travel itineraries up to maxHops long for one
// that completes the level.
func findWinningRoute(t *testing.T, cat *content.Catalog, level string, maxHops int) ([]string, bool) {
	t.Helper()
	graph := nav.New(cat.Bodies)
	seen := make(map[string]bool)

	var search func(hops []string) ([]string, bool)
	search = func(hops []string) ([]string, bool) {
		s, err := replayLevel(cat, level, hops)
		if err != nil {
			return nil, false
		}
		if s.Status == StatusComplete {
			return hops, true
		}
		if s.Over() || len(hops) == maxHops {
			return nil, false
		}
		key := stateKey(s)
		if seen[key] {
			return nil, false
		}
		seen[key] = true

		for _, next := range graph.Neighbors(s.CurrentLocation) {
			if route, ok := search(append(slices.Clone(hops), next)); ok {
				return route, true
			}
		}
		return nil, false
	}
	return search(nil)
}

func TestEveryDefaultLevelCanBeCompleted(t *testing.T) {
	cat := loadCatalog(t)
	require.NotEmpty(t, cat.Levels)

	for _, l := range cat.Levels {
		t.Run(l.ID, func(t *testing.T) {
			route, ok := findWinningRoute(t, cat, l.ID, 12)
			require.True(t, ok, "no itinerary completes %s", l.ID)

			s, err := replayLevel(cat, l.ID, route)
			require.NoError(t, err)
			assert.Equal(t, StatusComplete, s.Status, "route %v", route)
			assert.ElementsMatch(t, l.Tasks, s.CompletedTasks)
		})
	}
}

func TestOuterFrontierGrandTourFromMercury(t *testing.T) {
	cat := loadCatalog(t)

	s, err := replayLevel(cat, "outer-frontier", nil)
	require.NoError(t, err)
	assert.Equal(t, "mercury", s.CurrentLocation)
	assert.Equal(t, []string{"mercury"}, s.VisitedPlanets)
	assert.Equal(t, 100, s.Fuel)

	s, err = replayLevel(cat, "outer-frontier",
		[]string{"venus", "earth", "mars", "jupiter", "saturn", "uranus", "neptune"})
	require.NoError(t, err)
	assert.Equal(t, StatusComplete, s.Status)
	assert.Equal(t, []string{"uranus-magnetic-field", "neptune-storms", "grand-tour"}, s.CompletedTasks)
	assert.Equal(t, 10, s.Fuel)
}

func TestLevelStartOverridesConfig(t *testing.T) {
	cat := loadCatalog(t)
	custom := *cat
	custom.Levels = append(slices.Clone(cat.Levels), content.Level{
		ID:        "red-planet",
		Name:      "Red Planet",
		Tasks:     []string{"mars-minerals"},
		Start:     "jupiter",
		StartFuel: 40,
	})

	m, _, _ := newMissionWithCatalog(t, &custom, DefaultConfig(), WithLevel("red-planet"))
	s := m.Snapshot()
	assert.Equal(t, "jupiter", s.CurrentLocation)
	assert.Equal(t, 40, s.Fuel)
	assert.Equal(t, 100, s.Health)

	m, _, _ = newMissionWithCatalog(t, &custom, DefaultConfig())
	s = m.Snapshot()
	assert.Equal(t, "earth", s.CurrentLocation, "free play ignores level starts")
	assert.Equal(t, 100, s.Fuel)
}
