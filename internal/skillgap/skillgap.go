package skillgap

import (
	"strings"

	"github.com/spigell/careerfit/internal/career"
)

// Report partitions the required skills of a profile against the skills a
// user already has. Optional gaps never count toward TotalWeeksToClose.
type Report struct {
	Career            string                    `json:"careerName"`
	Matched           []career.SkillRequirement `json:"matched"`
	CriticalGaps      []career.SkillRequirement `json:"criticalGaps"`
	ImportantGaps     []career.SkillRequirement `json:"importantGaps"`
	OptionalGaps      []career.SkillRequirement `json:"optionalGaps"`
	TotalWeeksToClose int                       `json:"totalWeeksToClose"`
}

// Normalize folds case and trims surrounding whitespace of a skill name.
func Normalize(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}

// Analyze compares the user's skills with the profile requirements. Partition
// order follows the profile's required skills.
func Analyze(userSkills []string, profile *career.Profile) *Report {
	report := &Report{
		Matched:       []career.SkillRequirement{},
		CriticalGaps:  []career.SkillRequirement{},
		ImportantGaps: []career.SkillRequirement{},
		OptionalGaps:  []career.SkillRequirement{},
	}
	if profile == nil {
		return report
	}
	report.Career = profile.Title

	have := make(map[string]struct{}, len(userSkills))
	for _, skill := range userSkills {
		have[Normalize(skill)] = struct{}{}
	}

	for _, req := range profile.RequiredSkills {
		if _, ok := have[Normalize(req.Name)]; ok {
			report.Matched = append(report.Matched, req)
			continue
		}

		switch req.Importance {
		case career.ImportanceCritical:
			report.CriticalGaps = append(report.CriticalGaps, req)
			report.TotalWeeksToClose += req.EstimatedWeeksToLearn
		case career.ImportanceImportant:
			report.ImportantGaps = append(report.ImportantGaps, req)
			report.TotalWeeksToClose += req.EstimatedWeeksToLearn
		default:
			report.OptionalGaps = append(report.OptionalGaps, req)
		}
	}

	return report
}

// Gaps returns the number of missing skills across all tiers.
func (r *Report) Gaps() int {
	return len(r.CriticalGaps) + len(r.ImportantGaps) + len(r.OptionalGaps)
}

// Coverage is the share of required skills already matched, in percent.
func (r *Report) Coverage() int {
	total := len(r.Matched) + r.Gaps()
	if total == 0 {
		return 100
	}
	return len(r.Matched) * 100 / total
}
