package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/spigell/careerfit/internal/career"
)

const (
	minConfidence = 40
	maxConfidence = 99
	baseline      = 50
)

// Confidence maps the best profile score onto the 40-99 band shown to users.
// It is a presentation heuristic, not a probability.
func Confidence(maxScore, totalWeight int) int {
	normalized := float64(maxScore) / float64(max(1, totalWeight)) * 10
	score := int(math.Floor(normalized+0.5)) + baseline
	return min(max(score, minConfidence), maxConfidence)
}

// Reasons builds the three explanation sentences for a selected profile.
func Reasons(profile *career.Profile, tally Tally) []string {
	reasons := make([]string, 0, 3)
	reasons = append(reasons, fmt.Sprintf("Your answers align most closely with the %s path.", profile.Title))

	if trait, ok := tally.DominantTrait(); ok {
		reasons = append(reasons, fmt.Sprintf("Your strongest work-style signal is %s.", describeTrait(trait)))
	} else {
		reasons = append(reasons, "Your work-style signals are evenly balanced.")
	}

	if tally.Trait[career.TraitSolo] > tally.Trait[career.TraitSocial] {
		reasons = append(reasons, "You do your best work independently, with room for deep focus.")
	} else {
		reasons = append(reasons, "You thrive in collaborative, people-facing environments.")
	}

	return reasons
}

func describeTrait(t career.Trait) string {
	switch t {
	case career.TraitSolo:
		return "Solo (independent focus)"
	case career.TraitSocial:
		return "Social (working with people)"
	case career.TraitRiskTaker:
		return "RiskTaker (comfortable with uncertainty)"
	case career.TraitStable:
		return "Stable (steady, predictable growth)"
	case career.TraitHandsOn:
		return "HandsOn (learning by doing)"
	case career.TraitEmpathetic:
		return "Empathetic (caring for others)"
	case career.TraitLogical:
		return "Logical (structured problem solving)"
	case career.TraitTheoretical:
		return "Theoretical (ideas and concepts)"
	default:
		return string(t)
	}
}

// NormalizeRoadmap upgrades bare labels to structured steps. Structured
// steps are returned unchanged.
func NormalizeRoadmap(steps []career.RoadmapStep) []career.RoadmapStep {
	out := make([]career.RoadmapStep, len(steps))
	for i, step := range steps {
		if step.Structured() {
			out[i] = step
			continue
		}
		out[i] = career.RoadmapStep{
			Title: step.Title,
			Description: fmt.Sprintf(
				"Dedicate specific focus to mastering the core fundamentals of %s before advancing...",
				strings.ToLower(step.Title),
			),
			Timeframe: fmt.Sprintf("Months %d-%d", 2*i+1, 2*i+2),
		}
	}
	return out
}
