package mission

import (
	"context"
	"fmt"
	"slices"
)

// ObservationResult is what a finished scan reports.
type ObservationResult struct {
	Tool          string   `json:"tool"`
	Body          string   `json:"body"`
	Data          []string `json:"data"`
	CompletedTask string   `json:"completedTask,omitempty"`
	Generic       bool     `json:"generic,omitempty"` // no table entry for this pair
}

type scan struct {
	tool   string
	target string
	cost   int
	timer  Timer
	done   chan struct{}
	result *ObservationResult
}

// RequestObservation validates a scan of target with tool and, if
// accepted, starts it. Only one scan per target may be in flight; scans of
// different targets overlap freely, and scanning works while traveling.
func (m *Mission) RequestObservation(tool, target string) (Snapshot, error) {
	m.mu.Lock()
	_, err := m.requestObservationLocked(tool, target)
	if err != nil {
		m.logger.Printf("mission %s: %s scan of %s rejected: %v", m.id, tool, target, err)
		s := m.snapshotLocked()
		m.mu.Unlock()
		return s, err
	}
	s := m.snapshotLocked()
	m.unlockAndFlush()
	return s, nil
}

// Observe requests a scan and waits for its result. Cancelling ctx stops
// the wait, not the scan.
func (m *Mission) Observe(ctx context.Context, tool, target string) (ObservationResult, error) {
	m.mu.Lock()
	sc, err := m.requestObservationLocked(tool, target)
	if err != nil {
		m.mu.Unlock()
		return ObservationResult{}, err
	}
	m.unlockAndFlush()

	select {
	case <-sc.done:
	case <-ctx.Done():
		return ObservationResult{}, ctx.Err()
	}
	if sc.result == nil {
		return ObservationResult{}, ErrClosed
	}
	return *sc.result, nil
}

func (m *Mission) requestObservationLocked(toolID, target string) (*scan, error) {
	if m.closed {
		return nil, ErrClosed
	}
	tool, ok := m.cat.Tool(toolID)
	if !ok {
		return nil, fmt.Errorf("observe with %q: %w", toolID, ErrUnknownTool)
	}
	if _, ok := m.cat.Body(target); !ok {
		return nil, fmt.Errorf("observe %q: %w", target, ErrUnknownBody)
	}
	if m.status != StatusActive {
		return nil, reject(ReasonMissionOver, "mission %s", m.status)
	}
	if busy, ok := m.scans[target]; ok {
		return nil, reject(ReasonAlreadyScanning, "%s scan of %s in progress", busy.tool, target)
	}
	if !m.ledger.CanAfford(m.reserved + tool.FuelCost) {
		return nil, reject(ReasonInsufficientFuel, "%s needs %d fuel, have %d", tool.Name, tool.FuelCost, m.ledger.Fuel-m.reserved)
	}

	sc := &scan{tool: toolID, target: target, cost: tool.FuelCost, done: make(chan struct{})}
	m.scans[target] = sc
	m.reserved += sc.cost
	sc.timer = m.sched.AfterFunc(m.cfg.ScanDelay, func() { m.finishScan(sc) })

	m.logger.Printf("mission %s: %s scan of %s started", m.id, toolID, target)
	m.emit(Event{Kind: EventScanStarted, Tool: toolID, Body: target, Amount: sc.cost})
	return sc, nil
}

// finishScan commits a scan once its timer fires. Scans never trigger
// arrival hazards.
func (m *Mission) finishScan(sc *scan) {
	m.mu.Lock()
	if m.closed || m.scans[sc.target] != sc {
		m.mu.Unlock()
		return
	}
	delete(m.scans, sc.target)
	m.reserved -= sc.cost
	m.ledger = m.ledger.Apply(-sc.cost, 0)

	res := m.lookupObservation(sc.tool, sc.target)
	// A finished mission still records the data but completes nothing.
	if m.status == StatusActive && res.CompletedTask != "" && slices.Contains(m.available, res.CompletedTask) {
		m.completeTaskLocked(res.CompletedTask)
	} else {
		res.CompletedTask = ""
	}
	sc.result = &res
	m.logger.Printf("mission %s: %s scan of %s finished", m.id, sc.tool, sc.target)
	m.emit(Event{Kind: EventObservationCompleted, Tool: sc.tool, Body: sc.target, Observation: &res, TaskID: res.CompletedTask})

	m.refillLocked(m.cfg.ObserveCompletedCap)
	m.checkTerminalLocked()
	m.checkAchievementsLocked()

	close(sc.done)
	m.unlockAndFlush()
}

func (m *Mission) lookupObservation(toolID, target string) ObservationResult {
	if o, ok := m.cat.Observation(toolID, target); ok {
		return ObservationResult{
			Tool:          toolID,
			Body:          target,
			Data:          slices.Clone(o.Data),
			CompletedTask: o.CompletesTask,
		}
	}
	toolName, bodyName := toolID, target
	if t, ok := m.cat.Tool(toolID); ok {
		toolName = t.Name
	}
	if b, ok := m.cat.Body(target); ok {
		bodyName = b.Name
	}
	return ObservationResult{
		Tool: toolID,
		Body: target,
		Data: []string{
			fmt.Sprintf("%s scan of %s completed", toolName, bodyName),
			"Data recorded for further analysis",
			"Mission objectives updated",
		},
		Generic: true,
	}
}
