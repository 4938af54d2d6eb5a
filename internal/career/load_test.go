package career

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadBank(t *testing.T) {
	path := writeFile(t, "questions.yaml", `
questions:
  - id: fav-subject
    text: Pick one
    type: direction
    weight: 2
    options:
      - label: Maths
        impact:
          stream:
            Engineering: 3
          branch:
            Computer Science: 2
          trait:
            riskTaker: 1
      - label: Drawing
        impact:
          archetype:
            creator: 2
`)

	bank, err := LoadBank(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q, ok := bank.Question("fav-subject")
	if !ok {
		t.Fatal("expected question to be loaded")
	}
	if q.Type != QuestionDirection || q.Weight != WeightMedium {
		t.Fatalf("unexpected question header: %+v", q)
	}

	impact := q.Options[0].Impact
	if impact.Stream[StreamEngineering] != 3 {
		t.Fatalf("unexpected stream impact: %v", impact.Stream)
	}
	if impact.Branch[BranchComputerScience] != 2 {
		t.Fatalf("unexpected branch impact: %v", impact.Branch)
	}
	if impact.Trait[TraitRiskTaker] != 1 {
		t.Fatalf("unexpected trait impact: %v", impact.Trait)
	}
	if q.Options[1].Impact.Archetype[ArchetypeCreator] != 2 {
		t.Fatalf("unexpected archetype impact: %v", q.Options[1].Impact.Archetype)
	}
	if bank.TotalWeight() != 2 {
		t.Fatalf("expected total weight 2, got %d", bank.TotalWeight())
	}
}

func TestLoadBankRejectsUnknownStream(t *testing.T) {
	path := writeFile(t, "questions.yaml", `
questions:
  - id: q
    text: Pick one
    type: Direction
    weight: 1
    options:
      - label: Space
        impact:
          stream:
            Astronomy: 3
`)

	_, err := LoadBank(path)
	if err == nil || !strings.Contains(err.Error(), "unknown stream") {
		t.Fatalf("expected unknown stream error, got %v", err)
	}
}

func TestLoadBankRejectsNonPositivePoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		impact string
	}{
		{name: "negative stream", impact: "stream:\n            Engineering: -3\n            Business: -3"},
		{name: "zero branch", impact: "branch:\n            Law: 0"},
		{name: "negative trait", impact: "trait:\n            riskTaker: -1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := writeFile(t, "questions.yaml", `
questions:
  - id: q1
    text: Pick one
    type: Direction
    weight: 3
    options:
      - label: Nothing
        impact:
          `+tt.impact+`
`)

			_, err := LoadBank(path)
			if err == nil || !strings.Contains(err.Error(), "question q1 option 0") || !strings.Contains(err.Error(), "points must be positive") {
				t.Fatalf("expected non-positive points error, got %v", err)
			}
		})
	}
}

func TestLoadCatalog(t *testing.T) {
	path := writeFile(t, "catalog.json", `{
  "profiles": [
    {
      "title": "Welder",
      "archetype": "Builder",
      "stream": "Engineering",
      "branch": "mechanical",
      "automation-risk": "High",
      "market-demand": "future-proof",
      "roadmap": [
        "Safety Basics",
        {"title": "Certification", "description": "Pass the exam.", "timeframe": "Month 6"}
      ],
      "skills": [
        {"name": "Welding", "importance": "critical", "weeks": 10}
      ]
    }
  ]
}`)

	catalog, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p, ok := catalog.Find("welder")
	if !ok {
		t.Fatal("expected profile to be loaded")
	}
	if p.Branch != BranchMechanical || p.MarketDemand != MarketDemandFutureProof {
		t.Fatalf("unexpected enums: %+v", p)
	}
	if len(p.Roadmap) != 2 || p.Roadmap[0].Structured() || !p.Roadmap[1].Structured() {
		t.Fatalf("unexpected roadmap: %+v", p.Roadmap)
	}
	if p.RequiredSkills[0].EstimatedWeeksToLearn != 10 || p.RequiredSkills[0].Importance != ImportanceCritical {
		t.Fatalf("unexpected skills: %+v", p.RequiredSkills)
	}
}

func TestLoadCatalogMissingKey(t *testing.T) {
	path := writeFile(t, "catalog.yaml", "careers: []\n")

	_, err := LoadCatalog(path)
	if err == nil || !strings.Contains(err.Error(), `"profiles" key is missing`) {
		t.Fatalf("expected missing key error, got %v", err)
	}
}
