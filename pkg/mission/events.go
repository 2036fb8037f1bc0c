package mission

import "github.com/prabhsharan1/Cosmic-explorer/pkg/content"

// EventKind names a mission notification.
type EventKind string

const (
	EventTravelStarted        EventKind = "travel-started"
	EventArrived              EventKind = "arrived"
	EventTaskCompleted        EventKind = "task-completed"
	EventNewTaskOffered       EventKind = "new-task-offered"
	EventShipDamaged          EventKind = "ship-damaged"
	EventMissionFailed        EventKind = "mission-failed"
	EventMissionComplete      EventKind = "mission-complete"
	EventScanStarted          EventKind = "scan-started"
	EventObservationCompleted EventKind = "observation-completed"
	EventKnowledgeUnlocked    EventKind = "knowledge-unlocked"
	EventAchievementUnlocked  EventKind = "achievement-unlocked"
)

// Failure reasons carried by EventMissionFailed.
const (
	FailMelted    = "melted"
	FailStranded  = "stranded"
	FailDestroyed = "ship destroyed"
)

// Event is a state change notification. Only the fields relevant to Kind
// are set; Snapshot is the state right after the change.
type Event struct {
	MissionID   string             `json:"missionId"`
	Kind        EventKind          `json:"kind"`
	Body        string             `json:"body,omitempty"`
	Tool        string             `json:"tool,omitempty"`
	TaskID      string             `json:"taskId,omitempty"`
	Reward      *content.Reward    `json:"reward,omitempty"`
	Amount      int                `json:"amount,omitempty"`
	Cause       string             `json:"cause,omitempty"`
	Reason      string             `json:"reason,omitempty"`
	Knowledge   string             `json:"knowledge,omitempty"`
	Achievement string             `json:"achievement,omitempty"`
	Observation *ObservationResult `json:"observation,omitempty"`
	Snapshot    Snapshot           `json:"snapshot"`
}

// Notifier receives events. It is called outside the mission lock, so it
// may read or drive the mission; events raised while it runs are queued
// and delivered after it returns.
type Notifier func(Event)
