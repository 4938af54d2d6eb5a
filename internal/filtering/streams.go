package filtering

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/careerfit/internal/career"
)

type streamsFilter struct {
	disabled bool
	reason   string
	streams  []string
}

// NewExcludedStreams creates a filter that removes profiles from the streams
// configured by the user. The filter is disabled when the list is empty.
func NewExcludedStreams(streams []string) Filter {
	f := &streamsFilter{}
	for _, s := range streams {
		if s = strings.TrimSpace(s); s != "" {
			f.streams = append(f.streams, s)
		}
	}
	if len(f.streams) == 0 {
		f.Disable("no streams configured")
	}
	return f
}

func (f *streamsFilter) Name() string { return "excluded_streams" }

func (f *streamsFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *streamsFilter) IsEnabled() bool { return !f.disabled }

func (f *streamsFilter) Validate() error {
	for _, s := range f.streams {
		if _, err := career.ParseStream(s); err != nil {
			return err
		}
	}
	return nil
}

func (f *streamsFilter) Apply(_ context.Context, deps Deps, p *career.Profiles) (*career.Profiles, Step, error) {
	initial := p.Len()

	targets := make([]string, 0, len(f.streams))
	for _, s := range f.streams {
		stream, err := career.ParseStream(s)
		if err != nil {
			return p, Step{}, err
		}
		targets = append(targets, string(stream))
	}

	excluded := p.Exclude(career.ProfileStreamField, targets)
	if deps.Logger != nil && len(excluded) > 0 {
		deps.Logger.Debug("excluding profiles by streams",
			zap.Strings("excluded_streams", targets),
			zap.Strings("excluded_profiles", excluded),
			zap.Int("profiles_left", p.Len()),
		)
	}

	return p, Step{Initial: initial, Dropped: len(excluded), Left: p.Len(), Excluded: excluded}, nil
}

func (f *streamsFilter) Status() Status {
	details := map[string]string{}
	if len(f.streams) > 0 {
		details["streams"] = strings.Join(f.streams, ",")
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
