// Package mission runs a single exploration mission: travel between
// bodies, timed observations, the task board, hazards and the ship's
// fuel and health.
package mission

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"slices"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/prabhsharan1/Cosmic-explorer/pkg/content"
	"github.com/prabhsharan1/Cosmic-explorer/pkg/nav"
)

// Status is the overall state of a mission.
type Status string

const (
	StatusActive   Status = "active"
	StatusFailed   Status = "failed"
	StatusComplete Status = "complete"
)

// Snapshot is a read-only copy of mission state. It shares no memory with
// the mission.
type Snapshot struct {
	MissionID       string   `json:"missionId"`
	Level           string   `json:"level,omitempty"`
	Status          Status   `json:"status"`
	FailReason      string   `json:"failReason,omitempty"`
	CurrentLocation string   `json:"currentLocation"`
	VisitedPlanets  []string `json:"visitedPlanets"`
	TravelingTo     string   `json:"travelingTo,omitempty"`
	Fuel            int      `json:"fuel"`
	Health          int      `json:"health"`
	AvailableTasks  []string `json:"availableTasks"`
	CompletedTasks  []string `json:"completedTasks"`
	Score           int      `json:"score"`
	Knowledge       []string `json:"knowledge"`
	Achievements    []string `json:"achievements"`
	Scanning        []string `json:"scanning"` // target bodies with a scan in flight
}

// Over reports whether the mission reached a terminal state.
func (s Snapshot) Over() bool {
	return s.Status != StatusActive
}

// Traveling reports whether a travel is in flight.
func (s Snapshot) Traveling() bool {
	return s.TravelingTo != ""
}

// HasVisited reports whether the ship has completed a travel to id, or
// started there.
func (s Snapshot) HasVisited(id string) bool {
	return slices.Contains(s.VisitedPlanets, id)
}

// Mission owns all mutable state for one playthrough. All methods are
// safe for concurrent use; timer commits serialize with intents on one
// lock.
type Mission struct {
	mu sync.Mutex

	id      string
	cat     *content.Catalog
	graph   *nav.Graph
	cfg     Config
	rng     Rand
	sched   Scheduler
	logger  *log.Logger
	notify  Notifier
	level   string
	pool    []string // tasks that may be offered
	planets []string

	status     Status
	failReason string
	location   string
	visited    []string
	ledger     Ledger
	available  []string
	completed  []string
	score      int
	knowledge  []string
	achieved   []string

	travel   *flight
	scans    map[string]*scan // keyed by target body
	reserved int              // fuel promised to in-flight travel and scans
	closed   bool

	queue      []Event
	delivering bool
}

type flight struct {
	target string
	cost   int
	timer  Timer
	done   chan struct{}
	landed bool
}

// New starts a mission at cfg.StartBody, or at the level's own start
// body and fuel when it sets them. The catalog must already be
// validated; it is not modified.
func New(cat *content.Catalog, cfg Config, opts ...Option) (*Mission, error) {
	m := &Mission{
		cat:     cat,
		graph:   nav.New(cat.Bodies),
		cfg:     cfg,
		sched:   RealScheduler{},
		logger:  discardLogger(),
		planets: cat.PlanetIDs(),
		status:  StatusActive,
		scans:   make(map[string]*scan),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.id == "" {
		m.id = uuid.NewString()
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	start, fuel := cfg.StartBody, cfg.StartFuel
	initial := cfg.InitialTasks
	m.pool = cat.FreePlayTasks()
	if m.level != "" {
		lvl, ok := cat.Level(m.level)
		if !ok {
			return nil, fmt.Errorf("level %q: %w", m.level, ErrUnknownLevel)
		}
		m.pool = slices.Clone(lvl.Tasks)
		initial = lvl.Tasks
		if lvl.Start != "" {
			start = lvl.Start
		}
		if lvl.StartFuel > 0 {
			fuel = lvl.StartFuel
		}
	}

	if !m.graph.Has(start) {
		return nil, fmt.Errorf("start body %q: %w", start, ErrUnknownBody)
	}
	m.location = start
	m.visited = []string{start}
	m.ledger = NewLedger(fuel, cfg.StartHealth)

	for _, id := range initial {
		if _, ok := cat.Task(id); !ok {
			return nil, fmt.Errorf("initial task %q is not in the catalog", id)
		}
		if len(m.available) < cfg.AvailableCap && !slices.Contains(m.available, id) {
			m.available = append(m.available, id)
		}
	}

	m.logger.Printf("mission %s: started at %s (level %q)", m.id, m.location, m.level)
	return m, nil
}

// ID returns the mission's unique id.
func (m *Mission) ID() string {
	return m.id
}

// Catalog returns the content the mission plays against.
func (m *Mission) Catalog() *content.Catalog {
	return m.cat
}

// Graph returns the travel graph built from the catalog.
func (m *Mission) Graph() *nav.Graph {
	return m.graph
}

// Snapshot returns a copy of the current state.
func (m *Mission) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *Mission) snapshotLocked() Snapshot {
	s := Snapshot{
		MissionID:       m.id,
		Level:           m.level,
		Status:          m.status,
		FailReason:      m.failReason,
		CurrentLocation: m.location,
		VisitedPlanets:  slices.Clone(m.visited),
		Fuel:            m.ledger.Fuel,
		Health:          m.ledger.Health,
		AvailableTasks:  cloneOrEmpty(m.available),
		CompletedTasks:  cloneOrEmpty(m.completed),
		Score:           m.score,
		Knowledge:       cloneOrEmpty(m.knowledge),
		Achievements:    cloneOrEmpty(m.achieved),
		Scanning:        []string{},
	}
	if m.travel != nil {
		s.TravelingTo = m.travel.target
	}
	for target := range m.scans {
		s.Scanning = append(s.Scanning, target)
	}
	sort.Strings(s.Scanning)
	return s
}

func cloneOrEmpty(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return slices.Clone(ids)
}

// RequestTravel validates a travel intent and, if accepted, starts the
// timed transit. The returned snapshot shows the travel in flight.
func (m *Mission) RequestTravel(target string) (Snapshot, error) {
	m.mu.Lock()
	_, err := m.requestTravelLocked(target)
	if err != nil {
		m.logger.Printf("mission %s: travel to %s rejected: %v", m.id, target, err)
		s := m.snapshotLocked()
		m.mu.Unlock()
		return s, err
	}
	s := m.snapshotLocked()
	m.unlockAndFlush()
	return s, nil
}

// Travel requests travel to target and waits for arrival. Cancelling ctx
// stops the wait, not the travel.
func (m *Mission) Travel(ctx context.Context, target string) (Snapshot, error) {
	m.mu.Lock()
	f, err := m.requestTravelLocked(target)
	if err != nil {
		s := m.snapshotLocked()
		m.mu.Unlock()
		return s, err
	}
	m.unlockAndFlush()

	select {
	case <-f.done:
	case <-ctx.Done():
		return m.Snapshot(), ctx.Err()
	}
	if !f.landed {
		return m.Snapshot(), ErrClosed
	}
	return m.Snapshot(), nil
}

func (m *Mission) requestTravelLocked(target string) (*flight, error) {
	if m.closed {
		return nil, ErrClosed
	}
	dest, ok := m.cat.Body(target)
	if !ok {
		return nil, fmt.Errorf("travel to %q: %w", target, ErrUnknownBody)
	}
	if m.status != StatusActive {
		return nil, reject(ReasonMissionOver, "mission %s", m.status)
	}
	if m.travel != nil {
		return nil, reject(ReasonAlreadyTraveling, "en route to %s", m.travel.target)
	}
	if target == m.location {
		return nil, reject(ReasonSameLocation, "already at %s", dest.Name)
	}
	cost := m.graph.FuelCost(m.location, target)
	if !m.ledger.CanAfford(m.reserved + cost) {
		return nil, reject(ReasonInsufficientFuel, "need %d fuel, have %d", cost, m.ledger.Fuel-m.reserved)
	}
	if !m.graph.IsTravelLegal(m.location, target) {
		return nil, reject(ReasonIllegalRoute, "no route from %s to %s", m.location, target)
	}

	f := &flight{target: target, cost: cost, done: make(chan struct{})}
	m.travel = f
	m.reserved += cost
	f.timer = m.sched.AfterFunc(m.cfg.TravelDelay, func() { m.arrive(f) })

	m.logger.Printf("mission %s: travel %s -> %s accepted (cost %d)", m.id, m.location, target, cost)
	m.emit(Event{Kind: EventTravelStarted, Body: target, Amount: cost})
	return f, nil
}

// arrive commits a travel once its timer fires.
func (m *Mission) arrive(f *flight) {
	m.mu.Lock()
	if m.closed || m.travel != f {
		m.mu.Unlock()
		return
	}
	m.travel = nil
	m.reserved -= f.cost
	dest, _ := m.cat.Body(f.target)

	m.ledger = m.ledger.Apply(-f.cost, 0)
	m.visited = append(m.visited, f.target)
	m.location = f.target
	m.logger.Printf("mission %s: arrived at %s (fuel %d)", m.id, f.target, m.ledger.Fuel)
	m.emit(Event{Kind: EventArrived, Body: f.target, Amount: f.cost})

	if m.status == StatusActive {
		if id, ok := CompletableTask(dest, m.available); ok {
			m.completeTaskLocked(id)
		}
		m.completeRequirementsLocked()
	}

	m.refillLocked(m.cfg.TravelCompletedCap)
	m.hazardsLocked(dest)
	m.checkTerminalLocked()
	m.checkAchievementsLocked()

	f.landed = true
	close(f.done)
	m.unlockAndFlush()
}

// hazardsLocked applies arrival hazards. A body may carry several rules;
// they are evaluated lethal, damage, fuel trap.
func (m *Mission) hazardsLocked(dest *content.Body) {
	if m.status != StatusActive {
		return
	}
	if dest.Hazard == content.HazardLethal {
		m.ledger = m.ledger.Apply(0, -m.ledger.Health)
		m.logger.Printf("mission %s: %s is lethal", m.id, dest.ID)
		m.failLocked(FailMelted)
	}
	if dest.Hazard == content.HazardDamage && m.rng.Float64() < m.cfg.DamageChance {
		before := m.ledger.Health
		m.ledger = m.ledger.Apply(0, -m.cfg.DamageAmount)
		m.logger.Printf("mission %s: damaged at %s (health %d)", m.id, dest.ID, m.ledger.Health)
		m.emit(Event{Kind: EventShipDamaged, Body: dest.ID, Amount: before - m.ledger.Health, Cause: dest.ID})
	}
	if dest.Hazard == content.HazardFuelTrap && m.ledger.Fuel < m.cfg.FuelTrapThreshold {
		m.ledger = m.ledger.Apply(-m.ledger.Fuel, 0)
		m.logger.Printf("mission %s: stranded at %s", m.id, dest.ID)
		m.failLocked(FailStranded)
	}
}

func (m *Mission) completeTaskLocked(id string) {
	t, ok := m.cat.Task(id)
	if !ok || !slices.Contains(m.available, id) {
		return
	}
	m.available = remove(m.available, id)
	m.completed = append(m.completed, id)
	m.ledger = m.ledger.Apply(t.Reward.Fuel, t.Reward.Health)
	m.score += t.Reward.Points

	reward := t.Reward
	m.logger.Printf("mission %s: completed %s", m.id, id)
	m.emit(Event{Kind: EventTaskCompleted, TaskID: id, Reward: &reward})

	if k := t.Reward.Knowledge; k != "" && !slices.Contains(m.knowledge, k) {
		m.knowledge = append(m.knowledge, k)
		m.emit(Event{Kind: EventKnowledgeUnlocked, TaskID: id, Knowledge: k})
	}
	m.checkTerminalLocked()
}

// completeRequirementsLocked completes offered tasks whose visit
// requirement is now met.
func (m *Mission) completeRequirementsLocked() {
	for _, id := range slices.Clone(m.available) {
		t, ok := m.cat.Task(id)
		if ok && RequirementMet(t, m.visited, m.planets) {
			m.completeTaskLocked(id)
		}
	}
}

func (m *Mission) refillLocked(completedCap int) {
	if m.status != StatusActive {
		return
	}
	if !CanRefill(m.available, m.completed, m.cfg.AvailableCap, completedCap) {
		return
	}
	id, ok := RefillTask(m.rng, m.pool, m.available, m.completed)
	if !ok {
		return
	}
	m.available = append(m.available, id)
	m.emit(Event{Kind: EventNewTaskOffered, TaskID: id})
}

// checkTerminalLocked moves the mission to a terminal state when health
// is gone or every task in the pool is done.
func (m *Mission) checkTerminalLocked() {
	if m.status != StatusActive {
		return
	}
	if m.ledger.Health == 0 {
		m.failLocked(FailDestroyed)
		return
	}
	if len(m.pool) == 0 {
		return
	}
	for _, id := range m.pool {
		if !slices.Contains(m.completed, id) {
			return
		}
	}
	m.status = StatusComplete
	m.logger.Printf("mission %s: complete (score %d)", m.id, m.score)
	m.emit(Event{Kind: EventMissionComplete})
}

func (m *Mission) failLocked(reason string) {
	if m.status != StatusActive {
		return
	}
	m.status = StatusFailed
	m.failReason = reason
	m.logger.Printf("mission %s: failed: %s", m.id, reason)
	m.emit(Event{Kind: EventMissionFailed, Reason: reason})
}

// Close cancels pending travel and scans. Timers that fire afterwards
// commit nothing, and further intents return ErrClosed.
func (m *Mission) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.closed = true
	if f := m.travel; f != nil {
		f.timer.Stop()
		close(f.done)
		m.travel = nil
	}
	for target, sc := range m.scans {
		sc.timer.Stop()
		close(sc.done)
		delete(m.scans, target)
	}
	m.reserved = 0
	m.queue = nil
	m.logger.Printf("mission %s: closed", m.id)
}

// emit queues an event stamped with the current state.
func (m *Mission) emit(e Event) {
	if m.notify == nil {
		return
	}
	e.MissionID = m.id
	e.Snapshot = m.snapshotLocked()
	m.queue = append(m.queue, e)
}

// unlockAndFlush releases the lock and delivers queued events. Only one
// goroutine delivers at a time, so events arrive in the order they were
// raised.
func (m *Mission) unlockAndFlush() {
	if m.delivering || len(m.queue) == 0 {
		m.mu.Unlock()
		return
	}
	m.delivering = true
	for len(m.queue) > 0 {
		batch := m.queue
		m.queue = nil
		m.mu.Unlock()
		for _, e := range batch {
			m.notify(e)
		}
		m.mu.Lock()
	}
	m.delivering = false
	m.mu.Unlock()
}
