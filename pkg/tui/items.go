package tui

import (
	"slices"
	"sort"

	"github.com/prabhsharan1/Cosmic-explorer/pkg/content"
	"github.com/prabhsharan1/Cosmic-explorer/pkg/mission"
	"github.com/prabhsharan1/Cosmic-explorer/pkg/nav"
)

// BodyItem represents one row in the body list.
type BodyItem struct {
	Body      content.Body
	Current   bool
	Visited   bool
	Reachable bool // a legal route exists from the current location
	Target    bool // travel in flight to this body
	Scanning  bool
	Cost      int
}

// BuildBodyItems lists every body in catalog order, annotated with its
// state relative to the snapshot.
func BuildBodyItems(g *nav.Graph, s mission.Snapshot) []BodyItem {
	loc := s.CurrentLocation
	reachable := g.Neighbors(loc)
	ids := g.IDs()
	items := make([]BodyItem, 0, len(ids))
	for _, id := range ids {
		b, _ := g.Body(id)
		items = append(items, BodyItem{
			Body:      b,
			Current:   id == loc,
			Visited:   s.HasVisited(id),
			Reachable: slices.Contains(reachable, id),
			Target:    id == s.TravelingTo,
			Scanning:  slices.Contains(s.Scanning, id),
			Cost:      g.FuelCost(loc, id),
		})
	}
	return items
}

// Marker returns the status icon for the row.
func (it BodyItem) Marker() string {
	switch {
	case it.Current:
		return IconCurrent
	case it.Target:
		return IconTraveling
	case it.Reachable:
		return IconReachable
	case it.Visited:
		return IconVisited
	}
	return " "
}

// ToolItem represents one row in the tool picker.
type ToolItem struct {
	Tool        content.Tool
	Recommended bool
	HasData     bool // a catalog observation exists for the target
	Affordable  bool
}

// BuildToolItems lists the tools for observing body. Recommended tools
// come first; catalog order is kept otherwise.
func BuildToolItems(cat *content.Catalog, body string, fuel int) []ToolItem {
	items := make([]ToolItem, 0, len(cat.Tools))
	for i := range cat.Tools {
		t := cat.Tools[i]
		_, hasData := cat.Observation(t.ID, body)
		items = append(items, ToolItem{
			Tool:        t,
			Recommended: t.IsRecommendedFor(body),
			HasData:     hasData,
			Affordable:  fuel >= t.FuelCost,
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Recommended && !items[j].Recommended
	})
	return items
}

// LevelItem represents one row in the level picker.
type LevelItem struct {
	Level     content.Level
	Unlocked  bool
	Completed bool
}

// BuildLevelItems lists the catalog levels with their campaign state.
func BuildLevelItems(cat *content.Catalog, c *mission.Campaign) []LevelItem {
	items := make([]LevelItem, 0, len(cat.Levels))
	for _, l := range cat.Levels {
		items = append(items, LevelItem{
			Level:     l,
			Unlocked:  c.Unlocked(l.ID),
			Completed: c.Completed(l.ID),
		})
	}
	return items
}

// taskNames resolves task ids to display names, keeping unknown ids as-is.
func taskNames(cat *content.Catalog, ids []string) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, taskName(cat, id))
	}
	return names
}

// bodyName returns the display name for a body id.
func bodyName(cat *content.Catalog, id string) string {
	if b, ok := cat.Body(id); ok {
		return b.Name
	}
	return id
}
