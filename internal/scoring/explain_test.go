package scoring

import (
	"strings"
	"testing"

	"github.com/spigell/careerfit/internal/career"
)

func TestConfidence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		maxScore    int
		totalWeight int
		want        int
	}{
		{name: "zero score is baseline", maxScore: 0, totalWeight: 25, want: 50},
		{name: "rounds half up", maxScore: 1, totalWeight: 4, want: 53},
		{name: "rounds down", maxScore: 1, totalWeight: 3, want: 53},
		{name: "zero total weight treated as one", maxScore: 2, totalWeight: 0, want: 70},
		{name: "clamped to 99", maxScore: 1000, totalWeight: 1, want: 99},
		{name: "negative clamps to 40", maxScore: -100, totalWeight: 1, want: 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Confidence(tt.maxScore, tt.totalWeight); got != tt.want {
				t.Fatalf("Confidence(%d, %d) = %d, want %d", tt.maxScore, tt.totalWeight, got, tt.want)
			}
		})
	}
}

func TestReasons(t *testing.T) {
	p := &career.Profile{Title: "UX Designer"}

	social := NewTally().Add(career.ScoreImpact{Trait: map[career.Trait]int{
		career.TraitSocial:     2,
		career.TraitEmpathetic: 2,
	}}, career.WeightLow)

	reasons := Reasons(p, social)
	if len(reasons) != 3 {
		t.Fatalf("expected 3 reasons, got %d", len(reasons))
	}
	if !strings.Contains(reasons[0], "UX Designer") {
		t.Fatalf("unexpected first reason: %q", reasons[0])
	}
	// Social is listed before Empathetic, so it wins the tie.
	if !strings.Contains(reasons[1], "Social") {
		t.Fatalf("unexpected dominant trait reason: %q", reasons[1])
	}
	if !strings.Contains(reasons[2], "collaborative") {
		t.Fatalf("unexpected work-style reason: %q", reasons[2])
	}

	empty := Reasons(p, NewTally())
	if !strings.Contains(empty[1], "balanced") {
		t.Fatalf("expected balanced reason without traits, got %q", empty[1])
	}
	if !strings.Contains(empty[2], "collaborative") {
		t.Fatalf("equal solo and social must not count as solo: %q", empty[2])
	}
}

func TestNormalizeRoadmap(t *testing.T) {
	steps := []career.RoadmapStep{
		career.Label("Core Sciences"),
		{Title: "Lab Work", Description: "Run experiments.", Timeframe: "Year 2"},
		career.Label("Thesis"),
	}

	got := NormalizeRoadmap(steps)

	want := []career.RoadmapStep{
		{
			Title:       "Core Sciences",
			Description: "Dedicate specific focus to mastering the core fundamentals of core sciences before advancing...",
			Timeframe:   "Months 1-2",
		},
		steps[1],
		{
			Title:       "Thesis",
			Description: "Dedicate specific focus to mastering the core fundamentals of thesis before advancing...",
			Timeframe:   "Months 5-6",
		},
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("step %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}

	if steps[0].Structured() {
		t.Fatal("input roadmap must not be modified")
	}
}

func TestTallyAddIsPure(t *testing.T) {
	first := NewTally().Add(career.ScoreImpact{Stream: map[career.Stream]int{career.StreamMedical: 2}}, career.WeightHigh)
	second := first.Add(career.ScoreImpact{
		Stream:    map[career.Stream]int{career.StreamMedical: 1},
		Archetype: map[career.Archetype]int{career.ArchetypeCaregiver: 1},
	}, career.WeightMedium)

	if first.Stream[career.StreamMedical] != 6 {
		t.Fatalf("earlier tally changed: %d", first.Stream[career.StreamMedical])
	}
	if second.Stream[career.StreamMedical] != 8 {
		t.Fatalf("expected 8, got %d", second.Stream[career.StreamMedical])
	}
	if second.Archetype[career.ArchetypeCaregiver] != 2 {
		t.Fatalf("archetype points must be collected, got %d", second.Archetype[career.ArchetypeCaregiver])
	}
}

func TestDominantTraitPicksHighest(t *testing.T) {
	tally := NewTally().Add(career.ScoreImpact{Trait: map[career.Trait]int{
		career.TraitSolo:        1,
		career.TraitTheoretical: 3,
	}}, career.WeightLow)

	trait, ok := tally.DominantTrait()
	if !ok || trait != career.TraitTheoretical {
		t.Fatalf("expected Theoretical, got %s (%v)", trait, ok)
	}
}
