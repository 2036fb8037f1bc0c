package mission

import (
	"slices"

	"github.com/prabhsharan1/Cosmic-explorer/pkg/content"
)

// Rand is the randomness a mission draws on. *rand.Rand from math/rand/v2
// satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// CompletableTask returns the first task completed by arriving at dest.
// Order follows the body's Completes list, not the available list.
func CompletableTask(dest *content.Body, available []string) (string, bool) {
	if dest == nil {
		return "", false
	}
	for _, id := range dest.Completes {
		if slices.Contains(available, id) {
			return id, true
		}
	}
	return "", false
}

// CanRefill reports whether another task may be offered.
func CanRefill(available, completed []string, availableCap, completedCap int) bool {
	return len(available) < availableCap && len(completed) < completedCap
}

// RefillTask draws uniformly from the pool, skipping tasks that are
// already completed or on offer. It reports false when nothing is left.
func RefillTask(rng Rand, pool, available, completed []string) (string, bool) {
	var candidates []string
	for _, id := range pool {
		if slices.Contains(completed, id) || slices.Contains(available, id) {
			continue
		}
		candidates = append(candidates, id)
	}
	if len(candidates) == 0 {
		return "", false
	}
	return candidates[rng.IntN(len(candidates))], true
}

// RequirementMet reports whether visit progress satisfies a task's
// free-form requirement. Tasks without one never match.
func RequirementMet(t *content.Task, visited, planets []string) bool {
	if t == nil || t.Requirement == nil {
		return false
	}
	switch t.Requirement.Kind {
	case content.RequireVisitDistinct:
		return len(distinctPlanets(visited, planets)) >= t.Requirement.Count
	case content.RequireVisitAll:
		return visitedAll(visited, planets)
	}
	return false
}

// distinctPlanets returns the planets in visited, first-visit order.
func distinctPlanets(visited, planets []string) []string {
	var out []string
	for _, id := range visited {
		if slices.Contains(planets, id) && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

func visitedAll(visited, planets []string) bool {
	if len(planets) == 0 {
		return false
	}
	for _, p := range planets {
		if !slices.Contains(visited, p) {
			return false
		}
	}
	return true
}

func remove(ids []string, id string) []string {
	i := slices.Index(ids, id)
	if i < 0 {
		return ids
	}
	return slices.Delete(ids, i, i+1)
}
