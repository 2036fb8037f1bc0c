package mission

import (
	"sync"

	"github.com/prabhsharan1/Cosmic-explorer/pkg/content"
)

// Campaign tracks which levels are unlocked for the life of the process.
// Nothing is persisted.
type Campaign struct {
	mu     sync.Mutex
	levels []content.Level
	done   map[string]bool
}

// NewCampaign starts a campaign over the given levels.
func NewCampaign(levels []content.Level) *Campaign {
	return &Campaign{levels: levels, done: make(map[string]bool)}
}

// SetLevels swaps in a reloaded level list. Completions are kept by id,
// so a level that survives the reload stays finished.
func (c *Campaign) SetLevels(levels []content.Level) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.levels = levels
}

// Unlocked reports whether a level may be played. A level with no
// prerequisite is always unlocked.
func (c *Campaign) Unlocked(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, l := range c.levels {
		if l.ID == id {
			return l.Unlock == "" || c.done[l.Unlock]
		}
	}
	return false
}

// Completed reports whether a level has been finished.
func (c *Campaign) Completed(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.done[id]
}

// Record notes a finished level mission. It reports whether this was the
// first completion.
func (c *Campaign) Record(s Snapshot) bool {
	if s.Level == "" || s.Status != StatusComplete {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.done[s.Level] {
		return false
	}
	c.done[s.Level] = true
	return true
}
