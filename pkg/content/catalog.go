package content

import (
	"errors"
	"fmt"
	"strings"
)

// Catalog is the immutable static data a mission is played against.
type Catalog struct {
	Bodies       []Body
	Tasks        []Task
	Tools        []Tool
	Observations []Observation
	Levels       []Level
	Achievements []Achievement
	Lessons      map[string]*Lesson // keyed by body id
}

// Body returns the body with the given id.
func (c *Catalog) Body(id string) (*Body, bool) {
	for i := range c.Bodies {
		if c.Bodies[i].ID == id {
			return &c.Bodies[i], true
		}
	}
	return nil, false
}

// ResolveBody finds a body by id or display name, case-insensitively.
// It is meant for user input; the engine works with exact ids.
func (c *Catalog) ResolveBody(name string) (*Body, bool) {
	name = strings.TrimSpace(name)
	for i := range c.Bodies {
		b := &c.Bodies[i]
		if strings.EqualFold(b.ID, name) || strings.EqualFold(b.Name, name) {
			return b, true
		}
	}
	return nil, false
}

// Task returns the task with the given id.
func (c *Catalog) Task(id string) (*Task, bool) {
	for i := range c.Tasks {
		if c.Tasks[i].ID == id {
			return &c.Tasks[i], true
		}
	}
	return nil, false
}

// Tool returns the tool with the given id.
func (c *Catalog) Tool(id string) (*Tool, bool) {
	for i := range c.Tools {
		if c.Tools[i].ID == id {
			return &c.Tools[i], true
		}
	}
	return nil, false
}

// Observation returns the canned result for a (tool, body) pair.
func (c *Catalog) Observation(tool, body string) (*Observation, bool) {
	for i := range c.Observations {
		o := &c.Observations[i]
		if o.Tool == tool && o.Body == body {
			return o, true
		}
	}
	return nil, false
}

// Level returns the level with the given id.
func (c *Catalog) Level(id string) (*Level, bool) {
	for i := range c.Levels {
		if c.Levels[i].ID == id {
			return &c.Levels[i], true
		}
	}
	return nil, false
}

// Lesson returns the lesson for a body, if one was loaded.
func (c *Catalog) Lesson(body string) (*Lesson, bool) {
	l, ok := c.Lessons[body]
	return l, ok
}

// FreePlayTasks returns the ids of tasks offered outside of levels,
// in catalog order.
func (c *Catalog) FreePlayTasks() []string {
	var ids []string
	for _, t := range c.Tasks {
		if !t.LevelOnly {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

// PlanetIDs returns the ids of bodies that count as planets.
func (c *Catalog) PlanetIDs() []string {
	var ids []string
	for i := range c.Bodies {
		if c.Bodies[i].IsPlanet() {
			ids = append(ids, c.Bodies[i].ID)
		}
	}
	return ids
}

// Validate checks that every cross-reference in the catalog resolves.
// All problems are reported together.
func (c *Catalog) Validate() error {
	var errs []error
	bad := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if len(c.Bodies) == 0 {
		bad("catalog has no bodies")
	}

	seen := make(map[string]bool)
	for _, b := range c.Bodies {
		if b.ID == "" {
			bad("body %q has no id", b.Name)
			continue
		}
		if seen[b.ID] {
			bad("duplicate body %s", b.ID)
		}
		seen[b.ID] = true
	}

	tasks := make(map[string]bool)
	for _, t := range c.Tasks {
		if t.ID == "" {
			bad("task %q has no id", t.Name)
			continue
		}
		if tasks[t.ID] {
			bad("duplicate task %s", t.ID)
		}
		tasks[t.ID] = true
		if t.Target != "" && !seen[t.Target] {
			bad("task %s targets unknown body %s", t.ID, t.Target)
		}
	}

	for _, b := range c.Bodies {
		for _, to := range b.CanTravelTo {
			if !seen[to] {
				bad("body %s routes to unknown body %s", b.ID, to)
			}
		}
		for _, id := range b.Completes {
			if !tasks[id] {
				bad("body %s completes unknown task %s", b.ID, id)
			}
		}
	}

	tools := make(map[string]bool)
	for _, t := range c.Tools {
		tools[t.ID] = true
		if t.FuelCost < 0 {
			bad("tool %s has negative fuel cost", t.ID)
		}
	}

	for _, o := range c.Observations {
		if !tools[o.Tool] {
			bad("observation references unknown tool %s", o.Tool)
		}
		if !seen[o.Body] {
			bad("observation references unknown body %s", o.Body)
		}
		if o.CompletesTask != "" && !tasks[o.CompletesTask] {
			bad("observation %s/%s completes unknown task %s", o.Tool, o.Body, o.CompletesTask)
		}
	}

	levels := make(map[string]bool)
	for _, l := range c.Levels {
		levels[l.ID] = true
	}
	for _, l := range c.Levels {
		if len(l.Tasks) == 0 {
			bad("level %s has no tasks", l.ID)
		}
		for _, id := range l.Tasks {
			if !tasks[id] {
				bad("level %s uses unknown task %s", l.ID, id)
			}
		}
		if l.Unlock != "" && !levels[l.Unlock] {
			bad("level %s unlocks after unknown level %s", l.ID, l.Unlock)
		}
		if l.Start != "" && !seen[l.Start] {
			bad("level %s starts at unknown body %s", l.ID, l.Start)
		}
		if l.StartFuel < 0 {
			bad("level %s has negative start fuel", l.ID)
		}
	}

	for _, a := range c.Achievements {
		if a.Condition.Body != "" && !seen[a.Condition.Body] {
			bad("achievement %s references unknown body %s", a.ID, a.Condition.Body)
		}
	}

	return errors.Join(errs...)
}
