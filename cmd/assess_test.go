package cmd

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/spf13/cobra"

	"github.com/spigell/careerfit/internal/scoring"
)

func parseAnswerFlags(t *testing.T, args ...string) *cobra.Command {
	t.Helper()

	cmd := &cobra.Command{Use: "test"}
	addAnswerFlags(cmd)
	if err := cmd.Flags().Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return cmd
}

func TestCollectAnswers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.yaml")
	content := "answers:\n  q1: 1\n  q2: 4\nskills:\n  - Python\n  - Git\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write answers: %v", err)
	}

	tests := []struct {
		name    string
		args    []string
		answers scoring.Answers
		skills  []string
	}{
		{
			name:    "flags only",
			args:    []string{"-a", "q1=0", "-a", "q3=2"},
			answers: scoring.Answers{"q1": 0, "q3": 2},
		},
		{
			name:    "file only",
			args:    []string{"-f", path},
			answers: scoring.Answers{"q1": 1, "q2": 4},
			skills:  []string{"Python", "Git"},
		},
		{
			name:    "flags override file",
			args:    []string{"-f", path, "-a", "q1=3", "--skills", "Go,SQL"},
			answers: scoring.Answers{"q1": 3, "q2": 4},
			skills:  []string{"Go", "SQL"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers, skills, err := collectAnswers(parseAnswerFlags(t, tt.args...))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(answers, tt.answers) {
				t.Fatalf("expected answers %v, got %v", tt.answers, answers)
			}
			if !reflect.DeepEqual(skills, tt.skills) {
				t.Fatalf("expected skills %v, got %v", tt.skills, skills)
			}
		})
	}
}

func TestCollectAnswersErrors(t *testing.T) {
	if _, _, err := collectAnswers(parseAnswerFlags(t)); err == nil {
		t.Fatal("expected error without answers")
	}

	missing := filepath.Join(t.TempDir(), "missing.yaml")
	if _, _, err := collectAnswers(parseAnswerFlags(t, "-f", missing)); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestCollectAnswersKeepsQuestionIDCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "yaml", file: "answers.yaml", content: "answers:\n  Career-Q1: 0\n  deepDive2: 3\n"},
		{name: "json", file: "answers.json", content: `{"answers": {"Career-Q1": 0, "deepDive2": 3}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write answers: %v", err)
			}

			answers, _, err := collectAnswers(parseAnswerFlags(t, "-f", path))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			want := scoring.Answers{"Career-Q1": 0, "deepDive2": 3}
			if !reflect.DeepEqual(answers, want) {
				t.Fatalf("expected answers %v, got %v", want, answers)
			}
		})
	}
}
