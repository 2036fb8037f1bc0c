package main

import (
	"fmt"
	"strings"

	"github.com/prabhsharan1/Cosmic-explorer/pkg/content"
	"github.com/prabhsharan1/Cosmic-explorer/pkg/mission"
)

// PlayReport is the outcome of a headless itinerary.
type PlayReport struct {
	Events   []mission.Event  `json:"events"`
	Rejected []string         `json:"rejected,omitempty"`
	Final    mission.Snapshot `json:"final"`
}

// playItinerary runs steps against a fresh mission on a manual clock,
// letting each step finish before the next. A step is a body ("mars") or
// an observation ("telescope@earth"). Rejected steps are recorded and
// skipped; unknown names are an error.
func playItinerary(cat *content.Catalog, cfg mission.Config, steps []string, notify mission.Notifier, opts ...mission.Option) (PlayReport, error) {
	var report PlayReport
	sched := mission.NewManualScheduler()
	opts = append(opts,
		mission.WithScheduler(sched),
		mission.WithNotifier(func(e mission.Event) {
			report.Events = append(report.Events, e)
			if notify != nil {
				notify(e)
			}
		}),
	)

	m, err := mission.New(cat, cfg, opts...)
	if err != nil {
		return report, err
	}
	defer m.Close()

	for _, step := range steps {
		toolName, bodyName, observe := strings.Cut(step, "@")
		if !observe {
			bodyName = step
		}
		body, ok := cat.ResolveBody(bodyName)
		if !ok {
			return report, fmt.Errorf("step %q: unknown body %s", step, bodyName)
		}

		if observe {
			tool, ok := cat.Tool(toolName)
			if !ok {
				return report, fmt.Errorf("step %q: unknown tool %s", step, toolName)
			}
			_, err = m.RequestObservation(tool.ID, body.ID)
		} else {
			_, err = m.RequestTravel(body.ID)
		}
		if err != nil {
			if _, ok := mission.IsRejection(err); ok {
				report.Rejected = append(report.Rejected, step+": "+err.Error())
				continue
			}
			return report, err
		}
		sched.FireAll()
	}

	report.Final = m.Snapshot()
	return report, nil
}
