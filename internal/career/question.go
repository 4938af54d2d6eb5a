package career

import (
	"errors"
	"fmt"
	"maps"
	"strings"
)

// Weight is the signal strength of a question.
type Weight int

const (
	WeightLow    Weight = 1
	WeightMedium Weight = 2
	WeightHigh   Weight = 3
)

func (w Weight) Valid() bool {
	return w == WeightLow || w == WeightMedium || w == WeightHigh
}

// ScoreImpact holds the points an option contributes to each axis.
// A nil axis contributes nothing.
type ScoreImpact struct {
	Stream    map[Stream]int    `json:"stream,omitempty" mapstructure:"stream"`
	Branch    map[Branch]int    `json:"branch,omitempty" mapstructure:"branch"`
	Trait     map[Trait]int     `json:"trait,omitempty" mapstructure:"trait"`
	Archetype map[Archetype]int `json:"archetype,omitempty" mapstructure:"archetype"`
}

func (s ScoreImpact) validate() error {
	if err := validateAxis("stream", s.Stream); err != nil {
		return err
	}
	if err := validateAxis("branch", s.Branch); err != nil {
		return err
	}
	if err := validateAxis("trait", s.Trait); err != nil {
		return err
	}
	return validateAxis("archetype", s.Archetype)
}

// validateAxis rejects unknown keys and non-positive points.
func validateAxis[K interface {
	~string
	Valid() bool
}](axis string, points map[K]int) error {
	for k, v := range points {
		if !k.Valid() {
			return fmt.Errorf("unknown %s %q", axis, k)
		}
		if v <= 0 {
			return fmt.Errorf("%s %s: points must be positive, got %d", axis, k, v)
		}
	}
	return nil
}

func (s ScoreImpact) clone() ScoreImpact {
	return ScoreImpact{
		Stream:    maps.Clone(s.Stream),
		Branch:    maps.Clone(s.Branch),
		Trait:     maps.Clone(s.Trait),
		Archetype: maps.Clone(s.Archetype),
	}
}

type Option struct {
	Label  string      `json:"label" mapstructure:"label"`
	Impact ScoreImpact `json:"impact" mapstructure:"impact"`
}

type Question struct {
	ID      string       `json:"id" mapstructure:"id"`
	Text    string       `json:"text" mapstructure:"text"`
	Type    QuestionType `json:"type" mapstructure:"type"`
	Weight  Weight       `json:"weight" mapstructure:"weight"`
	Options []Option     `json:"options" mapstructure:"options"`
}

// Validate checks the question invariants.
func (q *Question) Validate() error {
	if strings.TrimSpace(q.ID) == "" {
		return errors.New("question id is required")
	}
	if !q.Type.Valid() {
		return fmt.Errorf("question %s: unknown type %q", q.ID, q.Type)
	}
	if !q.Weight.Valid() {
		return fmt.Errorf("question %s: weight must be 1, 2 or 3, got %d", q.ID, q.Weight)
	}
	if len(q.Options) == 0 {
		return fmt.Errorf("question %s: at least one option is required", q.ID)
	}
	for idx, opt := range q.Options {
		if err := opt.Impact.validate(); err != nil {
			return fmt.Errorf("question %s option %d: %w", q.ID, idx, err)
		}
	}
	return nil
}

func (q Question) clone() Question {
	options := make([]Option, len(q.Options))
	for i, opt := range q.Options {
		options[i] = Option{Label: opt.Label, Impact: opt.Impact.clone()}
	}
	q.Options = options
	return q
}

// Bank is an ordered, read-only set of questions.
type Bank struct {
	questions []Question
	index     map[string]int
	total     int
}

// NewBank validates the questions and builds a bank from them.
func NewBank(questions []Question) (*Bank, error) {
	b := &Bank{
		questions: make([]Question, 0, len(questions)),
		index:     make(map[string]int, len(questions)),
	}

	for _, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, err
		}
		if _, ok := b.index[q.ID]; ok {
			return nil, fmt.Errorf("duplicate question id %q", q.ID)
		}
		b.index[q.ID] = len(b.questions)
		b.questions = append(b.questions, q.clone())
		b.total += int(q.Weight)
	}

	return b, nil
}

// Question returns a copy of the question with the given id.
func (b *Bank) Question(id string) (Question, bool) {
	idx, ok := b.index[id]
	if !ok {
		return Question{}, false
	}
	return b.questions[idx].clone(), true
}

// Questions returns copies of all questions in bank order.
func (b *Bank) Questions() []Question {
	out := make([]Question, len(b.questions))
	for i, q := range b.questions {
		out[i] = q.clone()
	}
	return out
}

// TotalWeight is the sum of every question weight in the bank.
func (b *Bank) TotalWeight() int {
	return b.total
}

func (b *Bank) Len() int {
	return len(b.questions)
}
