package career

import (
	"strings"
	"testing"
)

func TestDefaultBank(t *testing.T) {
	bank := DefaultBank()

	if bank.Len() == 0 {
		t.Fatal("expected built-in questions")
	}

	total := 0
	for _, q := range bank.Questions() {
		total += int(q.Weight)
	}
	if bank.TotalWeight() != total {
		t.Fatalf("expected total weight %d, got %d", total, bank.TotalWeight())
	}
}

func TestDefaultCatalogCoversEveryBranchOnce(t *testing.T) {
	catalog := DefaultCatalog()
	seen := make(map[Branch]int)
	for _, p := range catalog.Candidates().Items {
		seen[p.Branch]++
	}

	for _, branch := range Branches {
		if seen[branch] != 1 {
			t.Fatalf("expected exactly one profile for branch %s, got %d", branch, seen[branch])
		}
	}
}

func TestNewBankValidation(t *testing.T) {
	t.Parallel()

	option := []Option{{Label: "a"}}

	tests := []struct {
		name      string
		questions []Question
		wantErr   string
	}{
		{
			name:      "invalid weight",
			questions: []Question{{ID: "a", Type: QuestionDirection, Weight: 4, Options: option}},
			wantErr:   "weight must be 1, 2 or 3",
		},
		{
			name:      "no options",
			questions: []Question{{ID: "a", Type: QuestionDirection, Weight: WeightLow}},
			wantErr:   "at least one option",
		},
		{
			name: "duplicate id",
			questions: []Question{
				{ID: "a", Type: QuestionDirection, Weight: WeightLow, Options: option},
				{ID: "a", Type: QuestionDirection, Weight: WeightLow, Options: option},
			},
			wantErr: "duplicate question id",
		},
		{
			name: "unknown trait",
			questions: []Question{{ID: "a", Type: QuestionPersonality, Weight: WeightLow, Options: []Option{
				{Label: "x", Impact: ScoreImpact{Trait: map[Trait]int{"Lazy": 1}}},
			}}},
			wantErr: "unknown trait",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewBank(tt.questions)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestBankReturnsCopies(t *testing.T) {
	bank, err := NewBank([]Question{{
		ID: "q", Type: QuestionDirection, Weight: WeightHigh,
		Options: []Option{{Label: "a", Impact: ScoreImpact{Stream: map[Stream]int{StreamEngineering: 1}}}},
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q, _ := bank.Question("q")
	q.Options[0].Impact.Stream[StreamEngineering] = 100

	again, _ := bank.Question("q")
	if again.Options[0].Impact.Stream[StreamEngineering] != 1 {
		t.Fatal("bank data was mutated through a returned copy")
	}
}

func TestCatalogFindIgnoresCase(t *testing.T) {
	profile, ok := DefaultCatalog().Find("  software engineer ")
	if !ok {
		t.Fatal("expected to find profile")
	}
	if profile.Title != "Software Engineer" {
		t.Fatalf("unexpected profile: %s", profile.Title)
	}

	if _, ok := DefaultCatalog().Find("Astronaut"); ok {
		t.Fatal("did not expect to find unknown profile")
	}
}

func TestNewCatalogRejectsInvalidSkill(t *testing.T) {
	_, err := NewCatalog([]Profile{{
		Title: "X", Archetype: ArchetypeBuilder, Stream: StreamEngineering, Branch: BranchMechanical,
		RequiredSkills: []SkillRequirement{{Name: "Welding", Importance: ImportanceCritical}},
	}})
	if err == nil || !strings.Contains(err.Error(), "weeks to learn must be positive") {
		t.Fatalf("expected weeks validation error, got %v", err)
	}

	if _, err := NewCatalog(nil); err == nil {
		t.Fatal("expected error for empty catalog")
	}
}

func TestProfilesExcludePreservesOrder(t *testing.T) {
	profiles := &Profiles{Items: []*Profile{
		{Title: "A", Stream: StreamEngineering},
		{Title: "B", Stream: StreamBusiness},
		{Title: "C", Stream: StreamMedical},
		{Title: "D", Stream: StreamBusiness},
		{Title: "E", Stream: StreamCreative},
	}}

	excluded := profiles.Exclude(ProfileStreamField, []string{string(StreamBusiness)})

	if strings.Join(excluded, ",") != "B,D" {
		t.Fatalf("unexpected excluded titles: %v", excluded)
	}
	if strings.Join(profiles.Titles(), ",") != "A,C,E" {
		t.Fatalf("unexpected remaining titles: %v", profiles.Titles())
	}
}

func TestNormalizeKey(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"Computer Science", "computer_science", " COMPUTER-science "} {
		if got := NormalizeKey(in); got != "computerscience" {
			t.Fatalf("NormalizeKey(%q) = %q", in, got)
		}
	}
}
