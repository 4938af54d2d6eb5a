package filtering

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/spigell/careerfit/internal/career"
)

// TraitMargin is how far one trait must lead its opposite before profiles
// are rejected.
const TraitMargin = 5

// traitFilter drops every profile whose field equals target when the
// dominant trait leads the opposite trait by more than TraitMargin.
type traitFilter struct {
	name     string
	dominant career.Trait
	opposite career.Trait
	field    string
	target   string
}

// NewStableOverRisk creates a filter that removes Business stream profiles
// for clearly risk-averse answer sets.
func NewStableOverRisk() Filter {
	return &traitFilter{
		name:     "stable_over_risk",
		dominant: career.TraitStable,
		opposite: career.TraitRiskTaker,
		field:    career.ProfileStreamField,
		target:   string(career.StreamBusiness),
	}
}

// NewSoloOverSocial creates a filter that removes Marketing branch profiles
// for clearly solitary answer sets.
func NewSoloOverSocial() Filter {
	return &traitFilter{
		name:     "solo_over_social",
		dominant: career.TraitSolo,
		opposite: career.TraitSocial,
		field:    career.ProfileBranchField,
		target:   string(career.BranchMarketing),
	}
}

// Rejections returns the fixed rejection filters in the order they run.
func Rejections() []Filter {
	return []Filter{
		NewStableOverRisk(),
		NewSoloOverSocial(),
	}
}

func (f *traitFilter) Name() string { return f.name }

func (f *traitFilter) Disable(string) {}

func (f *traitFilter) IsEnabled() bool { return true }

func (f *traitFilter) Validate() error { return nil }

func (f *traitFilter) Apply(_ context.Context, deps Deps, p *career.Profiles) (*career.Profiles, Step, error) {
	initial := p.Len()
	lead := deps.Traits[f.dominant] - deps.Traits[f.opposite]
	if lead <= TraitMargin {
		return p, Step{Initial: initial, Dropped: 0, Left: p.Len()}, nil
	}

	excluded := p.Exclude(f.field, []string{f.target})
	if deps.Logger != nil && len(excluded) > 0 {
		deps.Logger.Debug("rejecting profiles by trait lead",
			zap.String("filter", f.name),
			zap.String("dominant", string(f.dominant)),
			zap.Int("lead", lead),
			zap.Strings("excluded_profiles", excluded),
			zap.Int("profiles_left", p.Len()),
		)
	}

	return p, Step{Initial: initial, Dropped: len(excluded), Left: p.Len(), Excluded: excluded}, nil
}

func (f *traitFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: true,
		Details: map[string]string{
			"dominant": string(f.dominant),
			"opposite": string(f.opposite),
			"margin":   strconv.Itoa(TraitMargin),
			"excludes": f.field + "=" + f.target,
		},
	}
}
