package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prabhsharan1/Cosmic-explorer/pkg/content"
	"github.com/prabhsharan1/Cosmic-explorer/pkg/mission"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	t     *testing.T
	m     Model
	sched *mission.ManualScheduler
	store *content.Store
}

func setupModel(t *testing.T) *harness {
	t.Helper()
	s, err := content.NewStore(t.TempDir())
	require.NoError(t, err)
	cat, err := s.Load()
	require.NoError(t, err)

	sched := mission.NewManualScheduler()
	m, err := NewModel(s, cat, Options{
		Config:    mission.DefaultConfig(),
		Seed:      1,
		Scheduler: sched,
	})
	require.NoError(t, err)

	h := &harness{t: t, m: m, sched: sched, store: s}
	t.Cleanup(func() { h.m.Mission().Close() })
	h.send(tea.WindowSizeMsg{Width: 120, Height: 40})
	return h
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	h.t.Helper()
	updated, cmd := h.m.Update(msg)
	h.m = updated.(Model)
	return cmd
}

func (h *harness) press(keys ...string) {
	h.t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		h.send(msg)
	}
}

// settle fires all pending mission timers and feeds queued events back
// through Update, the way the pump would.
func (h *harness) settle() {
	h.t.Helper()
	h.sched.FireAll()
	for _, msg := range h.m.Pump().Drain() {
		h.send(msg)
	}
}

func (h *harness) selectBody(id string) {
	h.t.Helper()
	for i, it := range h.m.items {
		if it.Body.ID == id {
			h.m.cursor = i
			h.m.refreshDetail()
			return
		}
	}
	h.t.Fatalf("no body %s", id)
}

func (h *harness) commsContain(s string) bool {
	for _, line := range h.m.comms {
		if strings.Contains(line, s) {
			return true
		}
	}
	return false
}

func TestNewModelStartsAtEarth(t *testing.T) {
	h := setupModel(t)

	sel, ok := h.m.selected()
	require.True(t, ok)
	assert.Equal(t, "earth", sel.Body.ID)
	assert.Equal(t, "earth", h.m.snap.CurrentLocation)
	assert.Equal(t, 100, h.m.snap.Fuel)
	assert.True(t, h.commsContain("Free play from Earth"))
}

func TestTravelThroughKeys(t *testing.T) {
	h := setupModel(t)

	h.press("down", "down")
	sel, _ := h.m.selected()
	require.Equal(t, "mars", sel.Body.ID)

	h.press("enter")
	assert.Equal(t, "mars", h.m.snap.TravelingTo)
	assert.True(t, h.m.spinning)
	assert.Contains(t, h.m.statusMsg, "Traveling to Mars")

	h.settle()
	assert.Equal(t, "mars", h.m.snap.CurrentLocation)
	assert.False(t, h.m.snap.Traveling())
	assert.True(t, h.commsContain("Course set for Mars"))
	assert.True(t, h.commsContain("Arrived at Mars"))
	assert.True(t, h.commsContain("Task complete: Mars Geological Survey"))
}

func TestTravelRejectionShowsStatus(t *testing.T) {
	h := setupModel(t)

	h.press("enter")
	assert.Equal(t, "You are already at Earth", h.m.statusMsg)
	assert.Equal(t, "earth", h.m.snap.CurrentLocation)
	assert.Equal(t, 100, h.m.snap.Fuel)
}

func TestObserveThroughToolPicker(t *testing.T) {
	h := setupModel(t)

	h.press("o")
	require.True(t, h.m.showTools)
	require.Equal(t, "telescope", h.m.tools[0].Tool.ID)
	assert.Contains(t, h.m.View(), "Observe Earth")

	h.press("enter")
	assert.False(t, h.m.showTools)
	assert.Equal(t, []string{"earth"}, h.m.snap.Scanning)

	h.settle()
	assert.Empty(t, h.m.snap.Scanning)
	assert.True(t, h.commsContain("Telescope scan of Earth:"))
	assert.Contains(t, h.m.snap.CompletedTasks, "study-earth")
	assert.Contains(t, h.m.snap.Knowledge, "Earth Atmosphere")
}

func TestToolPickerEscCancels(t *testing.T) {
	h := setupModel(t)

	h.press("o", "down", "esc")
	assert.False(t, h.m.showTools)
	assert.Empty(t, h.m.snap.Scanning)
}

func TestStaleEventsIgnored(t *testing.T) {
	h := setupModel(t)

	h.selectBody("mars")
	h.press("enter")
	old := h.m.Mission().ID()

	h.press("r")
	require.NotEqual(t, old, h.m.Mission().ID())
	require.Len(t, h.m.comms, 1)

	// The old mission was closed; a late event from it must not land.
	h.send(EventMsg{Event: mission.Event{MissionID: old, Kind: mission.EventArrived, Body: "mars"}})
	assert.Len(t, h.m.comms, 1)
	assert.Equal(t, "earth", h.m.snap.CurrentLocation)

	h.settle()
	assert.Equal(t, "earth", h.m.snap.CurrentLocation)
}

func TestLevelPicker(t *testing.T) {
	h := setupModel(t)

	h.press("L")
	require.True(t, h.m.showLevels)
	assert.Contains(t, h.m.View(), "Earth Orbit Mission")

	// Second level is locked until the first is complete.
	h.press("down", "enter")
	assert.True(t, h.m.showLevels)
	assert.Contains(t, h.m.statusMsg, "Complete Earth Orbit Mission first")

	h.press("up", "enter")
	assert.False(t, h.m.showLevels)
	assert.Equal(t, "earth-orbit", h.m.snap.Level)
	assert.ElementsMatch(t, []string{"study-earth", "lunar-reconnaissance"}, h.m.snap.AvailableTasks)
}

func TestLevelCompletionUnlocksNext(t *testing.T) {
	h := setupModel(t)
	h.press("L", "enter")
	require.Equal(t, "earth-orbit", h.m.snap.Level)

	// Observe Earth with the telescope, then fly to the Moon.
	h.press("o", "enter")
	h.settle()
	h.selectBody("moon")
	h.press("enter")
	h.settle()

	require.Equal(t, mission.StatusComplete, h.m.snap.Status)
	assert.True(t, h.commsContain("Mission complete!"))
	assert.True(t, h.commsContain("Level unlocked: Inner Solar System Explorer"))
	assert.Contains(t, h.m.View(), "MISSION COMPLETE")

	h.press("L")
	assert.True(t, h.m.levels[0].Completed)
	assert.True(t, h.m.levels[1].Unlocked)
}

func TestContentReloadAppliesToNextMission(t *testing.T) {
	h := setupModel(t)

	lesson := "---\ntitle: Earth, Reloaded\n---\n\nHome sweet home.\n"
	require.NoError(t, os.WriteFile(filepath.Join(h.store.LessonsDir(), "earth.md"), []byte(lesson), 0644))

	h.send(FileChangedMsg{})
	require.NotNil(t, h.m.next)
	assert.Contains(t, h.m.View(), "content changed")
	assert.NotContains(t, detailMarkdown(h.m.cat, h.m.items[h.m.cursor], h.m.snap), "Earth, Reloaded")

	h.press("r")
	assert.Nil(t, h.m.next)
	l, ok := h.m.cat.Lesson("earth")
	require.True(t, ok)
	assert.Equal(t, "Earth, Reloaded", l.Title)
}

func TestContentReloadRefreshesLevels(t *testing.T) {
	h := setupModel(t)
	h.press("L", "enter")
	h.press("o", "enter")
	h.settle()
	h.selectBody("moon")
	h.press("enter")
	h.settle()
	require.Equal(t, mission.StatusComplete, h.m.snap.Status)

	levels := `- id: earth-orbit
  name: Earth Orbit Mission
  description: Warm up in orbit.
  tasks: [study-earth, lunar-reconnaissance]
- id: moon-sprint
  name: Moon Sprint
  description: Straight to the Moon.
  tasks: [lunar-reconnaissance]
  unlock: earth-orbit
`
	require.NoError(t, os.WriteFile(filepath.Join(h.store.Root, content.LevelsFile), []byte(levels), 0644))
	h.send(FileChangedMsg{})
	require.NotNil(t, h.m.next)
	h.press("r")

	h.press("L")
	require.Len(t, h.m.levels, 2)
	assert.True(t, h.m.levels[0].Completed, "completions survive a reload")
	assert.Equal(t, "moon-sprint", h.m.levels[1].Level.ID)
	assert.True(t, h.m.levels[1].Unlocked)

	h.press("down", "enter")
	assert.Equal(t, "moon-sprint", h.m.snap.Level)
}

func TestContentReloadErrorKeepsCatalog(t *testing.T) {
	h := setupModel(t)

	require.NoError(t, os.WriteFile(filepath.Join(h.store.Root, content.BodiesFile), []byte("{{not yaml"), 0644))
	h.send(FileChangedMsg{})
	assert.Nil(t, h.m.next)
	assert.Contains(t, h.m.statusMsg, "Content error")
}

func TestModalsToggle(t *testing.T) {
	h := setupModel(t)

	h.press("?")
	assert.True(t, h.m.showHelpModal)
	assert.Contains(t, h.m.View(), "Keyboard Shortcuts")
	h.press("?")
	assert.False(t, h.m.showHelpModal)

	h.press("a")
	assert.True(t, h.m.showAchievements)
	assert.Contains(t, h.m.View(), "Knowledge")
	h.press("esc")
	assert.False(t, h.m.showAchievements)
}

func TestSyncWithoutRepo(t *testing.T) {
	h := setupModel(t)

	cmd := h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	assert.Nil(t, cmd)
	assert.Contains(t, h.m.statusMsg, "not a git repository")
}

func TestDetailPaneScroll(t *testing.T) {
	h := setupModel(t)

	h.press("tab")
	assert.Equal(t, 1, h.m.focusedPane)
	h.press("down")
	sel, _ := h.m.selected()
	assert.Equal(t, "earth", sel.Body.ID, "down scrolls details, not the list")
	h.press("tab")
	assert.Equal(t, 0, h.m.focusedPane)
}

func TestDetailMarkdown(t *testing.T) {
	cat := loadCatalog(t)
	sun, _ := cat.Body("sun")
	earth, _ := cat.Body("earth")
	snap := mission.Snapshot{CurrentLocation: "earth", AvailableTasks: []string{"study-earth"}}

	md := detailMarkdown(cat, BodyItem{Body: *sun}, snap)
	assert.Contains(t, md, "No direct route")
	assert.Contains(t, md, "Extremely dangerous")

	md = detailMarkdown(cat, BodyItem{Body: *earth, Current: true}, snap)
	assert.Contains(t, md, "You are here")
	assert.Contains(t, md, "## Tasks here")
	assert.Contains(t, md, "Study Earth")
}

func TestQuitClosesMission(t *testing.T) {
	h := setupModel(t)
	h.selectBody("mars")
	h.press("enter")
	require.Equal(t, 1, h.sched.Pending())

	cmd := h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, 0, h.sched.Pending())

	_, err := h.m.Mission().RequestTravel("venus")
	assert.ErrorIs(t, err, mission.ErrClosed)
}
