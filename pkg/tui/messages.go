package tui

import (
	"fmt"
	"strings"

	"github.com/prabhsharan1/Cosmic-explorer/pkg/content"
	"github.com/prabhsharan1/Cosmic-explorer/pkg/mission"
)

// eventLines renders an event as mission-control log lines.
func eventLines(cat *content.Catalog, e mission.Event) []string {
	switch e.Kind {
	case mission.EventTravelStarted:
		return []string{fmt.Sprintf("🚀 Course set for %s (%d fuel)", bodyName(cat, e.Body), e.Amount)}
	case mission.EventArrived:
		return []string{fmt.Sprintf("🛬 Arrived at %s", bodyName(cat, e.Body))}
	case mission.EventTaskCompleted:
		line := "✅ Task complete: " + taskName(cat, e.TaskID)
		if e.Reward != nil {
			line += " " + rewardText(*e.Reward)
		}
		return []string{line}
	case mission.EventNewTaskOffered:
		return []string{"📋 New task: " + taskName(cat, e.TaskID)}
	case mission.EventShipDamaged:
		return []string{fmt.Sprintf("⚠️  Ship damaged near %s (-%d health)", bodyName(cat, e.Cause), e.Amount)}
	case mission.EventMissionFailed:
		return []string{failureText(e.Reason)}
	case mission.EventMissionComplete:
		return []string{"🏆 Mission complete!"}
	case mission.EventScanStarted:
		return []string{fmt.Sprintf("🔭 %s scanning %s...", toolName(cat, e.Tool), bodyName(cat, e.Body))}
	case mission.EventObservationCompleted:
		lines := []string{fmt.Sprintf("📡 %s scan of %s:", toolName(cat, e.Tool), bodyName(cat, e.Body))}
		if e.Observation != nil {
			for _, d := range e.Observation.Data {
				lines = append(lines, "   "+d)
			}
		}
		return lines
	case mission.EventKnowledgeUnlocked:
		return []string{"📚 Knowledge unlocked: " + e.Knowledge}
	case mission.EventAchievementUnlocked:
		name := e.Achievement
		for _, a := range cat.Achievements {
			if a.ID == e.Achievement {
				name = strings.TrimSpace(a.Icon + " " + a.Name)
			}
		}
		return []string{fmt.Sprintf("🏅 Achievement: %s (+%d)", name, e.Amount)}
	}
	return []string{string(e.Kind)}
}

// failureText explains why a mission ended.
func failureText(reason string) string {
	switch reason {
	case mission.FailMelted:
		return "☀️  The ship melted in the Sun's heat. Mission failed."
	case mission.FailStranded:
		return "🧊 Stranded at Pluto without enough fuel. Mission failed."
	case mission.FailDestroyed:
		return "💥 The ship was destroyed. Mission failed."
	}
	return "Mission failed: " + reason
}

// rejectionText turns an intent error into a status line.
func rejectionText(err error) string {
	r, ok := mission.IsRejection(err)
	if !ok {
		return "Error: " + err.Error()
	}
	switch r.Reason {
	case mission.ReasonAlreadyTraveling:
		return "Already traveling, " + r.Detail
	case mission.ReasonSameLocation:
		return "You are " + r.Detail
	case mission.ReasonInsufficientFuel:
		return "Not enough fuel: " + r.Detail
	case mission.ReasonIllegalRoute:
		return "Can't go there directly: " + r.Detail
	case mission.ReasonAlreadyScanning:
		return "Busy: " + r.Detail
	case mission.ReasonMissionOver:
		return "Mission over. Press r for a new mission"
	}
	return r.Error()
}

func rewardText(r content.Reward) string {
	var parts []string
	if r.Fuel != 0 {
		parts = append(parts, fmt.Sprintf("%+d fuel", r.Fuel))
	}
	if r.Health != 0 {
		parts = append(parts, fmt.Sprintf("%+d health", r.Health))
	}
	if r.Points != 0 {
		parts = append(parts, fmt.Sprintf("%+d pts", r.Points))
	}
	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func taskName(cat *content.Catalog, id string) string {
	if t, ok := cat.Task(id); ok {
		return t.Name
	}
	return id
}

func toolName(cat *content.Catalog, id string) string {
	if t, ok := cat.Tool(id); ok {
		return t.Name
	}
	return id
}
