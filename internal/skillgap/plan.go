package skillgap

import (
	"github.com/spigell/careerfit/internal/career"
)

// Phase is one stage of a learning plan.
type Phase struct {
	Importance career.Importance         `json:"importance"`
	Skills     []career.SkillRequirement `json:"skills"`
	Weeks      int                       `json:"weeks"`
	// EndsAtWeek is the cumulative week count once the phase is done.
	// Optional phases are not counted and keep the previous value.
	EndsAtWeek int `json:"endsAtWeek"`
}

// Plan orders the gaps into phases: critical first, then important, then
// optional. Empty tiers are skipped.
func (r *Report) Plan() []Phase {
	tiers := []struct {
		importance career.Importance
		skills     []career.SkillRequirement
	}{
		{career.ImportanceCritical, r.CriticalGaps},
		{career.ImportanceImportant, r.ImportantGaps},
		{career.ImportanceOptional, r.OptionalGaps},
	}

	var (
		phases  []Phase
		elapsed int
	)
	for _, tier := range tiers {
		if len(tier.skills) == 0 {
			continue
		}

		weeks := 0
		for _, s := range tier.skills {
			weeks += s.EstimatedWeeksToLearn
		}
		if tier.importance != career.ImportanceOptional {
			elapsed += weeks
		}

		phases = append(phases, Phase{
			Importance: tier.importance,
			Skills:     tier.skills,
			Weeks:      weeks,
			EndsAtWeek: elapsed,
		})
	}

	return phases
}
