package filtering

import (
	"context"
	"fmt"

	"github.com/spigell/careerfit/internal/career"
	"go.uber.org/zap"
)

// Filter represents a single filtering step applied to candidate profiles.
type Filter interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Validate() error
	Apply(ctx context.Context, deps Deps, p *career.Profiles) (*career.Profiles, Step, error)
}

// Deps aggregates inputs shared across all filtering steps.
type Deps struct {
	Logger *zap.Logger
	// Traits holds the accumulated trait scores of the current answer set.
	Traits map[career.Trait]int
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial  int
	Dropped  int
	Left     int
	Excluded []string
}

// Result pairs a step outcome with the filter that produced it.
type Result struct {
	Name     string   `json:"name"`
	Initial  int      `json:"initial"`
	Dropped  int      `json:"dropped"`
	Left     int      `json:"left"`
	Excluded []string `json:"excluded,omitempty"`
}

// Status represents runtime information about a filter.
type Status struct {
	Name    string            `json:"name"`
	Enabled bool              `json:"enabled"`
	Reason  string            `json:"reason,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// statusProvider is implemented by filters that can supply detailed status information.
type statusProvider interface {
	Status() Status
}

// Run executes the supplied filters sequentially and returns the surviving
// candidates together with a per-step report.
func Run(ctx context.Context, deps Deps, steps []Filter, p *career.Profiles) (*career.Profiles, []Result, error) {
	for _, step := range steps {
		if !step.IsEnabled() {
			continue
		}
		if err := step.Validate(); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", step.Name(), err)
		}
	}

	results := make([]Result, 0, len(steps))
	for _, step := range steps {
		if !step.IsEnabled() {
			if deps.Logger != nil {
				deps.Logger.Debug("filter disabled", zap.String("name", step.Name()))
			}
			continue
		}

		next, info, err := step.Apply(ctx, deps, p)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		if deps.Logger != nil {
			deps.Logger.Debug("filter step",
				zap.String("name", step.Name()),
				zap.Int("initial", info.Initial),
				zap.Int("dropped", info.Dropped),
				zap.Int("left", info.Left),
			)
		}

		results = append(results, Result{
			Name:     step.Name(),
			Initial:  info.Initial,
			Dropped:  info.Dropped,
			Left:     info.Left,
			Excluded: info.Excluded,
		})

		p = next
	}

	return p, results, nil
}

// Describe returns status entries for the provided filters.
func Describe(steps []Filter) []Status {
	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		if reporter, ok := step.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{
			Name:    step.Name(),
			Enabled: step.IsEnabled(),
		})
	}
	return statuses
}
