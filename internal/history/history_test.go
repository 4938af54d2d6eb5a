package history

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spigell/careerfit/internal/career"
	"github.com/spigell/careerfit/internal/skillgap"
)

func TestAppendAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.json")

	h, err := Load(path)
	if err != nil {
		t.Fatalf("loading missing file: %v", err)
	}
	if h.Len() != 0 || h.Latest() != nil {
		t.Fatalf("expected empty history, got %d entries", h.Len())
	}

	profile := &career.Profile{Title: "Doctor", MatchScore: 71, MatchReason: []string{"reason"}}
	answers := map[string]int{"q1": 1, "q2": 0}

	first := NewEntry(answers, profile, []string{"Biology"}, nil)
	answers["q1"] = 4
	if first.Answers["q1"] != 1 {
		t.Fatal("entry must not share the answers map")
	}

	second := NewEntry(map[string]int{"q1": 2}, &career.Profile{Title: "Teacher", MatchScore: 55}, nil,
		skillgap.Analyze([]string{"Communication"}, &career.Profile{
			Title:          "Teacher",
			RequiredSkills: []career.SkillRequirement{{Name: "Pedagogy", Importance: career.ImportanceCritical, EstimatedWeeksToLearn: 8}},
		}))

	for _, e := range []*Entry{first, second} {
		if err := Append(path, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	h, err = Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if h.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", h.Len())
	}

	latest := h.Latest()
	if latest.ID != second.ID || latest.Career != "Teacher" || latest.MatchScore != 55 {
		t.Fatalf("unexpected latest entry: %+v", latest)
	}
	if latest.Gap == nil || latest.Gap.TotalWeeksToClose != 8 {
		t.Fatalf("expected gap report to survive, got %+v", latest.Gap)
	}
	if h.Items[0].Answers["q2"] != 0 || h.Items[0].Skills[0] != "Biology" {
		t.Fatalf("unexpected first entry: %+v", h.Items[0])
	}

	found, ok := h.Find(first.ID.String()[:8])
	if !ok || found.ID != first.ID {
		t.Fatalf("expected to find entry by prefix")
	}
	if _, ok := h.Find("abc"); ok {
		t.Fatal("short prefixes must not match")
	}
}

func TestLoadEmptyAndBrokenFiles(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.json")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if h, err := Load(empty); err != nil || h.Len() != 0 {
		t.Fatalf("expected empty history, got %v, %v", h, err)
	}

	broken := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(broken, []byte("{"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(broken); err == nil {
		t.Fatal("expected decode error")
	}
	if err := Append(broken, NewEntry(nil, nil, nil, nil)); err == nil {
		t.Fatal("append must not overwrite an unreadable history")
	}
}

func TestDumpToTmpFile(t *testing.T) {
	h := &History{Items: []*Entry{NewEntry(map[string]int{"q1": 0}, &career.Profile{Title: "Doctor"}, nil, nil)}}

	name, err := h.DumpToTmpFile()
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	t.Cleanup(func() { os.Remove(name) })

	loaded, err := Load(name)
	if err != nil {
		t.Fatalf("load dump: %v", err)
	}
	if loaded.Len() != 1 || loaded.Items[0].Career != "Doctor" {
		t.Fatalf("unexpected dump contents: %+v", loaded.Items)
	}
}
