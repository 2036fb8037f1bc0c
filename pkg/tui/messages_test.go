package tui

import (
	"testing"

	"github.com/prabhsharan1/Cosmic-explorer/pkg/content"
	"github.com/prabhsharan1/Cosmic-explorer/pkg/mission"
	"github.com/stretchr/testify/assert"
)

func TestEventLines(t *testing.T) {
	cat := loadCatalog(t)

	tests := []struct {
		name  string
		event mission.Event
		want  []string
	}{
		{
			"travel started",
			mission.Event{Kind: mission.EventTravelStarted, Body: "mars", Amount: 10},
			[]string{"🚀 Course set for Mars (10 fuel)"},
		},
		{
			"arrived",
			mission.Event{Kind: mission.EventArrived, Body: "moon"},
			[]string{"🛬 Arrived at Moon"},
		},
		{
			"task completed",
			mission.Event{
				Kind:   mission.EventTaskCompleted,
				TaskID: "study-earth",
				Reward: &content.Reward{Fuel: 10, Health: 5, Points: 50},
			},
			[]string{"✅ Task complete: Study Earth (+10 fuel, +5 health, +50 pts)"},
		},
		{
			"damage",
			mission.Event{Kind: mission.EventShipDamaged, Cause: "jupiter", Amount: 15},
			[]string{"⚠️  Ship damaged near Jupiter (-15 health)"},
		},
		{
			"observation",
			mission.Event{
				Kind: mission.EventObservationCompleted,
				Tool: "telescope",
				Body: "earth",
				Observation: &mission.ObservationResult{
					Data: []string{"a", "b"},
				},
			},
			[]string{"📡 Telescope scan of Earth:", "   a", "   b"},
		},
		{
			"knowledge",
			mission.Event{Kind: mission.EventKnowledgeUnlocked, Knowledge: "Earth Atmosphere"},
			[]string{"📚 Knowledge unlocked: Earth Atmosphere"},
		},
		{
			"failed",
			mission.Event{Kind: mission.EventMissionFailed, Reason: mission.FailStranded},
			[]string{"🧊 Stranded at Pluto without enough fuel. Mission failed."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, eventLines(cat, tt.event))
		})
	}
}

func TestEventLinesAchievementUsesCatalogName(t *testing.T) {
	cat := loadCatalog(t)
	a := cat.Achievements[0]

	lines := eventLines(cat, mission.Event{Kind: mission.EventAchievementUnlocked, Achievement: a.ID, Amount: a.Points})
	assert.Len(t, lines, 1)
	assert.Contains(t, lines[0], a.Name)
}

func TestRejectionText(t *testing.T) {
	cat := loadCatalog(t)
	m, err := mission.New(cat, mission.DefaultConfig(), mission.WithScheduler(mission.NewManualScheduler()))
	assert.NoError(t, err)
	defer m.Close()

	_, err = m.RequestTravel("earth")
	assert.Equal(t, "You are already at Earth", rejectionText(err))

	_, err = m.RequestTravel("jupiter")
	assert.Contains(t, rejectionText(err), "Can't go there directly")

	assert.Equal(t, "Mission over. Press r for a new mission", rejectionText(mission.ErrMissionOver))
	assert.Equal(t, "Error: unknown body", rejectionText(mission.ErrUnknownBody))
}

func TestRewardText(t *testing.T) {
	assert.Equal(t, "", rewardText(content.Reward{}))
	assert.Equal(t, "(+50 pts)", rewardText(content.Reward{Points: 50}))
}
