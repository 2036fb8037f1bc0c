package mission

import (
	"slices"

	"github.com/prabhsharan1/Cosmic-explorer/pkg/content"
)

// Progress is the subset of mission state achievements are judged on.
type Progress struct {
	Status    Status
	Visited   []string
	Planets   []string
	Completed int
	Knowledge int
	Fuel      int
	Health    int
}

// ConditionMet reports whether progress satisfies an achievement
// condition. Nothing is earned by a failed mission.
func ConditionMet(c content.Condition, p Progress) bool {
	if p.Status == StatusFailed {
		return false
	}
	switch c.Kind {
	case content.CondTasksCompleted:
		return p.Completed >= c.Count
	case content.CondVisitedDistinct:
		return len(distinctPlanets(p.Visited, p.Planets)) >= c.Count
	case content.CondKnowledge:
		return p.Knowledge >= c.Count
	case content.CondSurviveVisit:
		return slices.Contains(p.Visited, c.Body) && p.Health > 0
	case content.CondVisitAll:
		return visitedAll(p.Visited, p.Planets)
	case content.CondFuelAbove:
		return p.Status == StatusComplete && p.Fuel > c.Count
	}
	return false
}

func (m *Mission) progressLocked() Progress {
	return Progress{
		Status:    m.status,
		Visited:   m.visited,
		Planets:   m.planets,
		Completed: len(m.completed),
		Knowledge: len(m.knowledge),
		Fuel:      m.ledger.Fuel,
		Health:    m.ledger.Health,
	}
}

// checkAchievementsLocked unlocks every achievement whose condition now
// holds. Each unlocks at most once and adds its points to the score.
func (m *Mission) checkAchievementsLocked() {
	p := m.progressLocked()
	for _, a := range m.cat.Achievements {
		if slices.Contains(m.achieved, a.ID) || !ConditionMet(a.Condition, p) {
			continue
		}
		m.achieved = append(m.achieved, a.ID)
		m.score += a.Points
		m.logger.Printf("mission %s: achievement %s", m.id, a.ID)
		m.emit(Event{Kind: EventAchievementUnlocked, Achievement: a.ID, Amount: a.Points})
	}
}
