package main

import (
	"strings"
	"testing"

	"github.com/prabhsharan1/Cosmic-explorer/pkg/content"
	"github.com/prabhsharan1/Cosmic-explorer/pkg/mission"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadCatalog(t *testing.T) *content.Catalog {
	t.Helper()
	cat, err := content.LoadDefault()
	require.NoError(t, err)
	return cat
}

func TestFlagValue(t *testing.T) {
	args, v := flagValue([]string{"play", "--seed", "42", "mars"}, "--seed")
	assert.Equal(t, []string{"play", "mars"}, args)
	assert.Equal(t, "42", v)

	args, v = flagValue([]string{"play", "--seed"}, "--seed")
	assert.Equal(t, []string{"play", "--seed"}, args)
	assert.Equal(t, "", v)
}

func TestRemoveFlag(t *testing.T) {
	args := []string{"bodies", "--json"}
	assert.True(t, hasFlag(args, "--json"))
	assert.Equal(t, []string{"bodies"}, removeFlag(args, "--json"))
}

func TestPlayItineraryLevel(t *testing.T) {
	cat := loadCatalog(t)

	var seen []mission.EventKind
	report, err := playItinerary(cat, mission.DefaultConfig(),
		[]string{"telescope@earth", "Moon"},
		func(e mission.Event) { seen = append(seen, e.Kind) },
		mission.WithLevel("earth-orbit"), mission.WithSeed(1))
	require.NoError(t, err)

	assert.Empty(t, report.Rejected)
	assert.Equal(t, mission.StatusComplete, report.Final.Status)
	assert.Equal(t, "moon", report.Final.CurrentLocation)
	assert.ElementsMatch(t, []string{"study-earth", "lunar-reconnaissance"}, report.Final.CompletedTasks)
	assert.Contains(t, report.Final.Achievements, "first-steps")

	require.Len(t, seen, len(report.Events))
	assert.Equal(t, mission.EventScanStarted, seen[0])
	var kinds []mission.EventKind
	for _, e := range report.Events {
		kinds = append(kinds, e.Kind)
	}
	assert.Contains(t, kinds, mission.EventMissionComplete)
}

func TestPlayItineraryRecordsRejections(t *testing.T) {
	cat := loadCatalog(t)

	report, err := playItinerary(cat, mission.DefaultConfig(), []string{"jupiter", "earth", "mars"}, nil, mission.WithSeed(1))
	require.NoError(t, err)

	require.Len(t, report.Rejected, 2)
	assert.True(t, strings.HasPrefix(report.Rejected[0], "jupiter: illegal-route"))
	assert.True(t, strings.HasPrefix(report.Rejected[1], "earth: same-location"))
	assert.Equal(t, "mars", report.Final.CurrentLocation)
}

func TestPlayItineraryUnknownNames(t *testing.T) {
	cat := loadCatalog(t)

	_, err := playItinerary(cat, mission.DefaultConfig(), []string{"vulcan"}, nil)
	assert.ErrorContains(t, err, "unknown body vulcan")

	_, err = playItinerary(cat, mission.DefaultConfig(), []string{"tricorder@earth"}, nil)
	assert.ErrorContains(t, err, "unknown tool tricorder")

	_, err = playItinerary(cat, mission.DefaultConfig(), []string{"mars"}, nil, mission.WithLevel("no-such-level"))
	assert.ErrorIs(t, err, mission.ErrUnknownLevel)
}

func TestDescribeEvent(t *testing.T) {
	got := describeEvent(mission.Event{Kind: mission.EventTravelStarted, Body: "mars", Amount: 10})
	assert.Equal(t, "travel-started         mars (10 fuel)", got)

	got = describeEvent(mission.Event{Kind: mission.EventShipDamaged, Cause: "jupiter", Amount: 15})
	assert.Contains(t, got, "jupiter -15 health")
}
