// Package nav answers route questions over the static body catalog.
package nav

import (
	"math"

	"github.com/prabhsharan1/Cosmic-explorer/pkg/content"
)

// MinFuelCost is charged for any hop, however short.
const MinFuelCost = 10

// costPerDistance converts one unit of distance into fuel.
const costPerDistance = 5

// Graph is the directed travel graph. It is immutable after New and safe
// for concurrent use.
type Graph struct {
	bodies []content.Body
	index  map[string]int
	edges  map[string]map[string]bool
}

// New builds a graph from the catalog's bodies. Routes to ids that are not
// in bodies are kept; callers validate the catalog first.
func New(bodies []content.Body) *Graph {
	g := &Graph{
		bodies: make([]content.Body, len(bodies)),
		index:  make(map[string]int, len(bodies)),
		edges:  make(map[string]map[string]bool, len(bodies)),
	}
	copy(g.bodies, bodies)
	for i, b := range g.bodies {
		g.index[b.ID] = i
		out := make(map[string]bool, len(b.CanTravelTo))
		for _, to := range b.CanTravelTo {
			out[to] = true
		}
		g.edges[b.ID] = out
	}
	return g
}

// Body returns a copy of the body with the given id.
func (g *Graph) Body(id string) (content.Body, bool) {
	i, ok := g.index[id]
	if !ok {
		return content.Body{}, false
	}
	return g.bodies[i], true
}

// Has reports whether id names a body in the graph.
func (g *Graph) Has(id string) bool {
	_, ok := g.index[id]
	return ok
}

// IDs returns every body id in catalog order.
func (g *Graph) IDs() []string {
	ids := make([]string, len(g.bodies))
	for i, b := range g.bodies {
		ids[i] = b.ID
	}
	return ids
}

// IsTravelLegal reports whether a ship at from may set course for to.
// Satellites are reachable from anywhere.
func (g *Graph) IsTravelLegal(from, to string) bool {
	if b, ok := g.Body(to); ok && b.Satellite {
		return true
	}
	return g.edges[from][to]
}

// FuelCost is max(MinFuelCost, |distance(to)-distance(from)| * 5),
// rounded to the nearest unit. Unknown ids sit at distance 0.
func (g *Graph) FuelCost(from, to string) int {
	d := math.Abs(g.distance(to) - g.distance(from))
	cost := int(math.Round(d * costPerDistance))
	if cost < MinFuelCost {
		return MinFuelCost
	}
	return cost
}

func (g *Graph) distance(id string) float64 {
	if b, ok := g.Body(id); ok {
		return b.Distance
	}
	return 0
}

// Neighbors returns every legal destination from a body, satellites
// included, in catalog order.
func (g *Graph) Neighbors(from string) []string {
	var out []string
	for _, b := range g.bodies {
		if b.ID != from && g.IsTravelLegal(from, b.ID) {
			out = append(out, b.ID)
		}
	}
	return out
}

// RouteInfo describes a single hop.
type RouteInfo struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Cost  int    `json:"cost"`
	Legal bool   `json:"legal"`
}

// Route summarizes the hop from one body to another.
func (g *Graph) Route(from, to string) RouteInfo {
	return RouteInfo{
		From:  from,
		To:    to,
		Cost:  g.FuelCost(from, to),
		Legal: from != to && g.IsTravelLegal(from, to),
	}
}
