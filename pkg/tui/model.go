package tui

import (
	"io"
	"log"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/prabhsharan1/Cosmic-explorer/pkg/content"
	"github.com/prabhsharan1/Cosmic-explorer/pkg/mission"
	gsync "github.com/prabhsharan1/Cosmic-explorer/pkg/sync"
)

// EventMsg carries a mission event into the update loop.
type EventMsg struct {
	Event mission.Event
}

// FileChangedMsg is sent when the file watcher detects changes.
type FileChangedMsg struct{}

// SyncDoneMsg is sent when git sync completes.
type SyncDoneMsg struct {
	Err error
}

// Options configures the missions the TUI starts.
type Options struct {
	Config    mission.Config
	Seed      uint64            // 0 picks a fresh seed per mission
	Level     string            // level for the first mission, "" for free play
	Scheduler mission.Scheduler // nil uses the wall clock
	Logger    *log.Logger
}

const commsLimit = 200

// Model is the Bubble Tea model for the mission shell.
type Model struct {
	store    *content.Store
	cat      *content.Catalog
	next     *content.Catalog // reloaded content, used from the next mission on
	campaign *mission.Campaign
	pump     *Pump
	opts     Options

	mission *mission.Mission
	snap    mission.Snapshot
	items   []BodyItem

	keys        KeyMap
	width       int
	height      int
	cursor      int
	focusedPane int // 0 = bodies, 1 = details

	detail    viewport.Model
	fuelBar   progress.Model
	healthBar progress.Model
	spinner   spinner.Model
	spinning  bool

	comms []string

	// Modal state
	showHelpModal    bool
	showTools        bool
	showLevels       bool
	showAchievements bool
	tools            []ToolItem
	toolCursor       int
	levels           []LevelItem
	levelCursor      int

	// Status message
	statusMsg     string
	statusTimeout time.Time

	// Cached glamour renderer (expensive to create)
	glamourRenderer *glamour.TermRenderer
	glamourWidth    int
}

// NewModel creates the TUI model and starts its first mission.
func NewModel(s *content.Store, cat *content.Catalog, opts Options) (Model, error) {
	m := Model{
		store:    s,
		cat:      cat,
		campaign: mission.NewCampaign(cat.Levels),
		pump:     NewPump(),
		opts:     opts,
		keys:     DefaultKeyMap(),
		detail:   viewport.New(40, 10),
		fuelBar: progress.New(
			progress.WithSolidFill(string(ColorCyan)),
			progress.WithWidth(20),
			progress.WithoutPercentage(),
		),
		healthBar: progress.New(
			progress.WithSolidFill(string(ColorGreen)),
			progress.WithWidth(20),
			progress.WithoutPercentage(),
		),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(StatusStyle),
		),
	}
	if err := m.startMission(opts.Level); err != nil {
		return Model{}, err
	}
	return m, nil
}

// Pump returns the queue mission events travel through. The caller starts
// it against the running program.
func (m Model) Pump() *Pump {
	return m.pump
}

// Mission returns the mission currently being played.
func (m Model) Mission() *mission.Mission {
	return m.mission
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.detail.Width = m.rightWidth()
		m.detail.Height = m.contentHeight()
		m.getGlamourRenderer(m.rightWidth() - 2)
		m.refreshDetail()
		return m, tea.ClearScreen

	case EventMsg:
		// Events from a mission that was replaced are dropped.
		if m.mission == nil || msg.Event.MissionID != m.mission.ID() {
			return m, nil
		}
		m.handleEvent(msg.Event)
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case FileChangedMsg:
		cat, err := m.store.Load()
		if err != nil {
			m.setStatus("Content error: " + err.Error())
			return m, nil
		}
		m.next = cat
		m.setStatus("Content reloaded, press r to play with it")
		return m, nil

	case SyncDoneMsg:
		if msg.Err != nil {
			m.setStatus("Sync failed: " + msg.Err.Error())
		} else {
			m.setStatus("Content synced")
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m *Model) handleEvent(e mission.Event) {
	m.snap = m.mission.Snapshot()
	m.log(eventLines(m.cat, e)...)

	switch e.Kind {
	case mission.EventArrived:
		m.setStatus("Arrived at " + bodyName(m.cat, e.Body))
	case mission.EventMissionFailed:
		m.setStatus(failureText(e.Reason))
	case mission.EventMissionComplete:
		m.setStatus("Mission complete! Score " + strconv.Itoa(m.snap.Score))
		if m.campaign.Record(m.snap) {
			for _, l := range m.cat.Levels {
				if l.Unlock == m.snap.Level {
					m.log("🔓 Level unlocked: " + l.Name)
				}
			}
		}
	}
	m.rebuild()
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelpModal {
		if key.Matches(msg, m.keys.Help, m.keys.Close, m.keys.Quit) {
			m.showHelpModal = false
		}
		return m, nil
	}
	if m.showTools {
		return m.handleToolPicker(msg)
	}
	if m.showLevels {
		return m.handleLevelPicker(msg)
	}
	if m.showAchievements {
		if key.Matches(msg, m.keys.Achievements, m.keys.Close, m.keys.Quit) {
			m.showAchievements = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.mission.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelpModal = true

	case key.Matches(msg, m.keys.Tab):
		m.focusedPane = 1 - m.focusedPane

	case key.Matches(msg, m.keys.Up):
		if m.focusedPane == 1 {
			m.detail.SetYOffset(m.detail.YOffset - 1)
		} else if m.cursor > 0 {
			m.cursor--
			m.refreshDetail()
			m.detail.GotoTop()
		}

	case key.Matches(msg, m.keys.Down):
		if m.focusedPane == 1 {
			m.detail.SetYOffset(m.detail.YOffset + 1)
		} else if m.cursor < len(m.items)-1 {
			m.cursor++
			m.refreshDetail()
			m.detail.GotoTop()
		}

	case key.Matches(msg, m.keys.Travel):
		return m.travel()

	case key.Matches(msg, m.keys.Observe):
		target, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.tools = BuildToolItems(m.cat, target.Body.ID, m.snap.Fuel)
		m.toolCursor = 0
		m.showTools = true

	case key.Matches(msg, m.keys.Levels):
		m.levels = BuildLevelItems(m.cat, m.campaign)
		m.levelCursor = 0
		m.showLevels = true

	case key.Matches(msg, m.keys.Achievements):
		m.showAchievements = true

	case key.Matches(msg, m.keys.NewMission):
		if err := m.startMission(""); err != nil {
			m.setStatus("Error: " + err.Error())
		} else {
			m.setStatus("New mission started")
		}

	case key.Matches(msg, m.keys.Sync):
		if !gsync.IsRepo(m.store.Root) {
			m.setStatus(gsync.ErrNotRepo.Error())
			return m, nil
		}
		m.setStatus("Syncing content...")
		return m, m.doSync()
	}

	return m, nil
}

func (m Model) handleToolPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close, m.keys.Quit, m.keys.Observe):
		m.showTools = false
	case key.Matches(msg, m.keys.Up):
		if m.toolCursor > 0 {
			m.toolCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.toolCursor < len(m.tools)-1 {
			m.toolCursor++
		}
	case key.Matches(msg, m.keys.Travel):
		m.showTools = false
		target, ok := m.selected()
		if !ok || m.toolCursor >= len(m.tools) {
			return m, nil
		}
		return m.observe(m.tools[m.toolCursor].Tool.ID, target.Body.ID)
	}
	return m, nil
}

func (m Model) handleLevelPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close, m.keys.Quit, m.keys.Levels):
		m.showLevels = false
	case key.Matches(msg, m.keys.Up):
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.levelCursor < len(m.levels)-1 {
			m.levelCursor++
		}
	case key.Matches(msg, m.keys.Travel):
		if m.levelCursor >= len(m.levels) {
			return m, nil
		}
		item := m.levels[m.levelCursor]
		if !item.Unlocked {
			m.setStatus(IconLocked + " Complete " + levelName(m.cat, item.Level.Unlock) + " first")
			return m, nil
		}
		m.showLevels = false
		if err := m.startMission(item.Level.ID); err != nil {
			m.setStatus("Error: " + err.Error())
			return m, nil
		}
		m.setStatus("Level: " + item.Level.Name)
	}
	return m, nil
}

func (m Model) travel() (tea.Model, tea.Cmd) {
	target, ok := m.selected()
	if !ok {
		return m, nil
	}
	snap, err := m.mission.RequestTravel(target.Body.ID)
	if err != nil {
		m.setStatus(rejectionText(err))
		return m, nil
	}
	m.snap = snap
	m.rebuild()
	m.setStatus("Traveling to " + target.Body.Name)
	return m, m.startSpinner()
}

func (m Model) observe(tool, target string) (tea.Model, tea.Cmd) {
	snap, err := m.mission.RequestObservation(tool, target)
	if err != nil {
		m.setStatus(rejectionText(err))
		return m, nil
	}
	m.snap = snap
	m.rebuild()
	m.setStatus(toolName(m.cat, tool) + " scanning " + bodyName(m.cat, target))
	return m, m.startSpinner()
}

// startMission replaces the current mission. Reloaded content takes
// effect here. On error the current mission keeps running.
func (m *Model) startMission(level string) error {
	cat := m.cat
	if m.next != nil {
		cat = m.next
	}

	pump := m.pump
	opts := []mission.Option{
		mission.WithNotifier(func(e mission.Event) {
			pump.Push(EventMsg{Event: e})
		}),
	}
	if level != "" {
		opts = append(opts, mission.WithLevel(level))
	}
	if m.opts.Seed != 0 {
		opts = append(opts, mission.WithSeed(m.opts.Seed))
	}
	if m.opts.Scheduler != nil {
		opts = append(opts, mission.WithScheduler(m.opts.Scheduler))
	}
	if m.opts.Logger != nil {
		opts = append(opts, mission.WithLogger(m.opts.Logger))
	}

	ms, err := mission.New(cat, m.opts.Config, opts...)
	if err != nil {
		return err
	}
	if m.mission != nil {
		m.mission.Close()
	}
	if m.next != nil {
		m.campaign.SetLevels(cat.Levels)
	}
	m.cat = cat
	m.next = nil
	m.mission = ms
	m.snap = ms.Snapshot()
	m.comms = nil

	if l, ok := cat.Level(level); ok {
		m.log("🛰  Level: " + l.Name)
		for _, o := range l.Objectives {
			m.log("   " + o)
		}
	} else {
		m.log("🛰  Free play from " + bodyName(cat, m.snap.CurrentLocation))
	}

	m.rebuild()
	for i, it := range m.items {
		if it.Current {
			m.cursor = i
		}
	}
	m.refreshDetail()
	m.detail.GotoTop()
	return nil
}

func (m *Model) rebuild() {
	m.items = BuildBodyItems(m.mission.Graph(), m.snap)
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.refreshDetail()
}

func (m *Model) refreshDetail() {
	it, ok := m.selected()
	if !ok {
		m.detail.SetContent("")
		return
	}
	md := detailMarkdown(m.cat, it, m.snap)
	if r := m.getGlamourRenderer(m.rightWidth() - 2); r != nil {
		if out, err := r.Render(md); err == nil {
			md = out
		}
	}
	m.detail.SetContent(md)
}

func (m Model) selected() (BodyItem, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return BodyItem{}, false
	}
	return m.items[m.cursor], true
}

func (m Model) busy() bool {
	return m.snap.Traveling() || len(m.snap.Scanning) > 0
}

func (m *Model) startSpinner() tea.Cmd {
	if m.spinning {
		return nil
	}
	m.spinning = true
	return m.spinner.Tick
}

func (m *Model) log(lines ...string) {
	m.comms = append(m.comms, lines...)
	if len(m.comms) > commsLimit {
		m.comms = m.comms[len(m.comms)-commsLimit:]
	}
}

func (m Model) leftWidth() int {
	w := m.width / 3
	if w < 24 {
		w = 24
	}
	return w
}

func (m Model) rightWidth() int {
	w := m.width - m.leftWidth() - 1
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) contentHeight() int {
	h := m.height
	if h < minHeight {
		h = minHeight
	}
	h -= headerLines + footerLines + commsLines
	if h < 3 {
		h = 3
	}
	return h
}

// getGlamourRenderer returns a cached glamour renderer, creating one if needed
// or if the width changed.
func (m *Model) getGlamourRenderer(width int) *glamour.TermRenderer {
	if width < 20 {
		width = 20
	}
	if m.glamourRenderer != nil && m.glamourWidth == width {
		return m.glamourRenderer
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	m.glamourRenderer = r
	m.glamourWidth = width
	return r
}

func (m *Model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusTimeout = time.Now().Add(3 * time.Second)
}

func (m Model) doSync() tea.Cmd {
	dir := m.store.Root
	return func() tea.Msg {
		return SyncDoneMsg{Err: gsync.SyncRepo(dir, io.Discard)}
	}
}

func levelName(cat *content.Catalog, id string) string {
	if l, ok := cat.Level(id); ok {
		return l.Name
	}
	return id
}
