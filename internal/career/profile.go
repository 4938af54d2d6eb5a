package career

import (
	"errors"
	"fmt"
	"strings"
)

const (
	ProfileStreamField = "Stream"
	ProfileBranchField = "Branch"
	ProfileTitleField  = "Title"
)

type SkillRequirement struct {
	Name                  string     `json:"name" mapstructure:"name"`
	Importance            Importance `json:"importance" mapstructure:"importance"`
	EstimatedWeeksToLearn int        `json:"estimatedWeeksToLearn" mapstructure:"weeks"`
}

// RoadmapStep is a single roadmap phase. A step with only a Title set is a
// bare label.
type RoadmapStep struct {
	Title       string `json:"title" mapstructure:"title"`
	Description string `json:"description,omitempty" mapstructure:"description"`
	Timeframe   string `json:"timeframe,omitempty" mapstructure:"timeframe"`
}

// Structured reports whether the step carries more than a bare label.
func (s RoadmapStep) Structured() bool {
	return s.Description != "" || s.Timeframe != ""
}

// Label creates a bare roadmap step.
func Label(title string) RoadmapStep {
	return RoadmapStep{Title: title}
}

type Profile struct {
	Title          string             `json:"title" mapstructure:"title"`
	Archetype      Archetype          `json:"archetype" mapstructure:"archetype"`
	Stream         Stream             `json:"stream" mapstructure:"stream"`
	Branch         Branch             `json:"branch" mapstructure:"branch"`
	Description    string             `json:"description" mapstructure:"description"`
	Salary         string             `json:"salary" mapstructure:"salary"`
	Timeline       string             `json:"timeline" mapstructure:"timeline"`
	AutomationRisk AutomationRisk     `json:"automationRisk" mapstructure:"automation-risk"`
	MarketDemand   MarketDemand       `json:"marketDemand" mapstructure:"market-demand"`
	Roadmap        []RoadmapStep      `json:"roadmap" mapstructure:"roadmap"`
	RequiredSkills []SkillRequirement `json:"requiredSkills" mapstructure:"skills"`

	// Set on scoring results only.
	MatchScore  int      `json:"matchScore,omitempty" mapstructure:"-"`
	MatchReason []string `json:"matchReason,omitempty" mapstructure:"-"`
}

// Validate checks the profile invariants.
func (p *Profile) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return errors.New("profile title is required")
	}
	if !p.Archetype.Valid() {
		return fmt.Errorf("profile %s: unknown archetype %q", p.Title, p.Archetype)
	}
	if !p.Stream.Valid() {
		return fmt.Errorf("profile %s: unknown stream %q", p.Title, p.Stream)
	}
	if !p.Branch.Valid() {
		return fmt.Errorf("profile %s: unknown branch %q", p.Title, p.Branch)
	}
	if p.AutomationRisk != "" && !p.AutomationRisk.Valid() {
		return fmt.Errorf("profile %s: unknown automation risk %q", p.Title, p.AutomationRisk)
	}
	if p.MarketDemand != "" && !p.MarketDemand.Valid() {
		return fmt.Errorf("profile %s: unknown market demand %q", p.Title, p.MarketDemand)
	}
	for _, skill := range p.RequiredSkills {
		if strings.TrimSpace(skill.Name) == "" {
			return fmt.Errorf("profile %s: skill name is required", p.Title)
		}
		if !skill.Importance.Valid() {
			return fmt.Errorf("profile %s: skill %s: unknown importance %q", p.Title, skill.Name, skill.Importance)
		}
		if skill.EstimatedWeeksToLearn <= 0 {
			return fmt.Errorf("profile %s: skill %s: weeks to learn must be positive", p.Title, skill.Name)
		}
	}
	return nil
}

// Clone returns a deep copy of the profile.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	c := *p
	c.Roadmap = append([]RoadmapStep(nil), p.Roadmap...)
	c.RequiredSkills = append([]SkillRequirement(nil), p.RequiredSkills...)
	c.MatchReason = append([]string(nil), p.MatchReason...)
	return &c
}

// GetStringField returns the value of the named field used by filters.
func (p *Profile) GetStringField(name string) string {
	switch name {
	case ProfileStreamField:
		return string(p.Stream)
	case ProfileBranchField:
		return string(p.Branch)
	case ProfileTitleField:
		return p.Title
	default:
		return ""
	}
}

// Profiles is a mutable working list of candidates. The order of Items is
// always the catalog order.
type Profiles struct {
	Items []*Profile
}

func (p *Profiles) Len() int {
	return len(p.Items)
}

// Titles returns the profile titles in order.
func (p *Profiles) Titles() []string {
	titles := make([]string, 0, len(p.Items))
	for _, profile := range p.Items {
		titles = append(titles, profile.Title)
	}
	return titles
}

// Exclude removes every profile whose named field equals one of the targets
// and returns the titles of the removed profiles. Order is preserved.
func (p *Profiles) Exclude(name string, targets []string) []string {
	if len(targets) == 0 {
		return nil
	}

	drop := make(map[string]struct{}, len(targets))
	for _, target := range targets {
		drop[target] = struct{}{}
	}

	var excluded []string
	kept := p.Items[:0:0]
	for _, profile := range p.Items {
		if _, ok := drop[profile.GetStringField(name)]; ok {
			excluded = append(excluded, profile.Title)
			continue
		}
		kept = append(kept, profile)
	}
	p.Items = kept

	return excluded
}

// Catalog is an ordered, read-only list of career profiles.
type Catalog struct {
	profiles []*Profile
}

// NewCatalog validates the profiles and builds a catalog from them.
func NewCatalog(profiles []Profile) (*Catalog, error) {
	c := &Catalog{profiles: make([]*Profile, 0, len(profiles))}
	seen := make(map[string]struct{}, len(profiles))

	for i := range profiles {
		p := &profiles[i]
		if err := p.Validate(); err != nil {
			return nil, err
		}
		key := NormalizeKey(p.Title)
		if _, ok := seen[key]; ok {
			return nil, fmt.Errorf("duplicate profile title %q", p.Title)
		}
		seen[key] = struct{}{}

		clone := p.Clone()
		clone.MatchScore = 0
		clone.MatchReason = nil
		c.profiles = append(c.profiles, clone)
	}

	if len(c.profiles) == 0 {
		return nil, errors.New("catalog must contain at least one profile")
	}

	return c, nil
}

// Candidates returns a fresh working list with copies of every profile in
// catalog order.
func (c *Catalog) Candidates() *Profiles {
	items := make([]*Profile, len(c.profiles))
	for i, p := range c.profiles {
		items[i] = p.Clone()
	}
	return &Profiles{Items: items}
}

// Find returns a copy of the profile with the given title. Matching ignores
// case and spacing.
func (c *Catalog) Find(title string) (*Profile, bool) {
	key := NormalizeKey(title)
	for _, p := range c.profiles {
		if NormalizeKey(p.Title) == key {
			return p.Clone(), true
		}
	}
	return nil, false
}

func (c *Catalog) Len() int {
	return len(c.profiles)
}
