package tui

import (
	"testing"

	"github.com/prabhsharan1/Cosmic-explorer/pkg/content"
	"github.com/prabhsharan1/Cosmic-explorer/pkg/mission"
	"github.com/prabhsharan1/Cosmic-explorer/pkg/nav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadCatalog(t *testing.T) *content.Catalog {
	t.Helper()
	cat, err := content.LoadDefault()
	require.NoError(t, err)
	return cat
}

func itemByID(t *testing.T, items []BodyItem, id string) BodyItem {
	t.Helper()
	for _, it := range items {
		if it.Body.ID == id {
			return it
		}
	}
	t.Fatalf("no item %s", id)
	return BodyItem{}
}

func TestBuildBodyItems(t *testing.T) {
	cat := loadCatalog(t)
	g := nav.New(cat.Bodies)
	snap := mission.Snapshot{
		CurrentLocation: "earth",
		VisitedPlanets:  []string{"earth", "venus", "earth"},
		TravelingTo:     "mars",
		Scanning:        []string{"moon"},
	}

	items := BuildBodyItems(g, snap)
	require.Len(t, items, len(cat.Bodies))
	assert.Equal(t, "sun", items[0].Body.ID)

	earth := itemByID(t, items, "earth")
	assert.True(t, earth.Current)
	assert.False(t, earth.Reachable)
	assert.Equal(t, IconCurrent, earth.Marker())

	mars := itemByID(t, items, "mars")
	assert.True(t, mars.Target)
	assert.True(t, mars.Reachable)
	assert.Equal(t, 10, mars.Cost)
	assert.Equal(t, IconTraveling, mars.Marker())

	moon := itemByID(t, items, "moon")
	assert.True(t, moon.Scanning)
	assert.Equal(t, IconReachable, moon.Marker())

	jupiter := itemByID(t, items, "jupiter")
	assert.False(t, jupiter.Reachable)
	assert.Equal(t, " ", jupiter.Marker())
}

func TestBodyItemMarkerVisited(t *testing.T) {
	cat := loadCatalog(t)
	g := nav.New(cat.Bodies)
	items := BuildBodyItems(g, mission.Snapshot{
		CurrentLocation: "jupiter",
		VisitedPlanets:  []string{"earth", "mars", "jupiter"},
	})

	// Earth is visited but not one hop from Jupiter.
	earth := itemByID(t, items, "earth")
	assert.True(t, earth.Visited)
	assert.False(t, earth.Reachable)
	assert.Equal(t, IconVisited, earth.Marker())
}

func TestBuildToolItems(t *testing.T) {
	cat := loadCatalog(t)

	items := BuildToolItems(cat, "venus", 2)
	require.Len(t, items, len(cat.Tools))

	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.Tool.ID)
	}
	assert.Equal(t, []string{
		"spectrometer", "radiation",
		"telescope", "radar", "camera", "signal", "gravitational", "surface-sampler", "life-detector",
	}, ids)

	assert.True(t, items[0].Recommended)
	assert.False(t, items[0].Affordable, "spectrometer costs 3")
	assert.True(t, items[1].Affordable)
	assert.False(t, items[2].Recommended)
}

func TestBuildToolItemsHasData(t *testing.T) {
	cat := loadCatalog(t)
	for _, it := range BuildToolItems(cat, "earth", 100) {
		if it.Tool.ID == "telescope" {
			assert.True(t, it.HasData)
			assert.True(t, it.Recommended)
		}
	}
}

func TestBuildLevelItems(t *testing.T) {
	cat := loadCatalog(t)
	c := mission.NewCampaign(cat.Levels)

	items := BuildLevelItems(cat, c)
	require.Len(t, items, len(cat.Levels))
	assert.Equal(t, "earth-orbit", items[0].Level.ID)
	assert.True(t, items[0].Unlocked)
	assert.False(t, items[0].Completed)
	assert.False(t, items[1].Unlocked)

	c.Record(mission.Snapshot{Level: "earth-orbit", Status: mission.StatusComplete})
	items = BuildLevelItems(cat, c)
	assert.True(t, items[0].Completed)
	assert.True(t, items[1].Unlocked)
	assert.False(t, items[2].Unlocked)
}

func TestTaskNames(t *testing.T) {
	cat := loadCatalog(t)
	assert.Equal(t, []string{"Study Earth", "no-such-task"}, taskNames(cat, []string{"study-earth", "no-such-task"}))
	assert.Equal(t, "Mars", bodyName(cat, "mars"))
	assert.Equal(t, "vulcan", bodyName(cat, "vulcan"))
}
