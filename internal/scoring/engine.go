package scoring

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/spigell/careerfit/internal/career"
	"github.com/spigell/careerfit/internal/filtering"
	"github.com/spigell/careerfit/internal/logger"
)

// Answers maps a question id to the index of the selected option.
type Answers map[string]int

// CandidateScore is the selection score of a surviving candidate.
type CandidateScore struct {
	Title string `json:"title"`
	Score int    `json:"score"`
}

// Report carries the diagnostics of a single computation.
type Report struct {
	Tally       Tally              `json:"tally"`
	Unknown     []string           `json:"unknown,omitempty"`
	Filters     []filtering.Result `json:"filters"`
	Fallback    bool               `json:"fallback"`
	Candidates  []CandidateScore   `json:"candidates"`
	MaxScore    int                `json:"maxScore"`
	TotalWeight int                `json:"totalWeight"`
}

// Engine scores answer sets against a catalog. It holds no mutable state and
// is safe for concurrent use.
type Engine struct {
	bank    *career.Bank
	catalog *career.Catalog
	filters []filtering.Filter
	logger  *zap.Logger
}

// New creates an engine. The fixed rejection filters always run first;
// extra filters run after them.
func New(bank *career.Bank, catalog *career.Catalog, logger *zap.Logger, extra ...filtering.Filter) (*Engine, error) {
	if bank == nil {
		return nil, errors.New("question bank is required")
	}
	if catalog == nil {
		return nil, errors.New("profile catalog is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Engine{
		bank:    bank,
		catalog: catalog,
		filters: append(filtering.Rejections(), extra...),
		logger:  logger,
	}, nil
}

// Bank returns the question bank the engine scores against.
func (e *Engine) Bank() *career.Bank { return e.bank }

// Catalog returns the profile catalog the engine selects from.
func (e *Engine) Catalog() *career.Catalog { return e.catalog }

// Filters describes the filters the engine runs.
func (e *Engine) Filters() []filtering.Status { return filtering.Describe(e.filters) }

// Tally folds the answers into accumulated points. Unknown question ids are
// skipped and returned in sorted order.
func (e *Engine) Tally(answers Answers) (Tally, []string, error) {
	tally := NewTally()
	var unknown []string

	for _, id := range slices.Sorted(maps.Keys(answers)) {
		question, ok := e.bank.Question(id)
		if !ok {
			unknown = append(unknown, id)
			continue
		}

		idx := answers[id]
		if idx < 0 || idx >= len(question.Options) {
			return Tally{}, nil, &InvalidOptionError{QuestionID: id, Index: idx, Options: len(question.Options)}
		}

		tally = tally.Add(question.Options[idx].Impact, question.Weight)
	}

	return tally, unknown, nil
}

// Compute selects the best matching profile for the answers. The returned
// profile is a copy with a structured roadmap, match score and reasons.
func (e *Engine) Compute(ctx context.Context, answers Answers) (*career.Profile, *Report, error) {
	tally, unknown, err := e.Tally(answers)
	if err != nil {
		return nil, nil, err
	}

	if len(unknown) > 0 {
		e.logger.Debug("skipping unknown questions", zap.Strings("question_ids", unknown))
	}

	deps := filtering.Deps{Logger: e.logger, Traits: tally.Trait}
	candidates, steps, err := filtering.Run(ctx, deps, e.filters, e.catalog.Candidates())
	if err != nil {
		return nil, nil, fmt.Errorf("filter candidates: %w", err)
	}

	report := &Report{
		Tally:       tally,
		Unknown:     unknown,
		Filters:     steps,
		TotalWeight: e.bank.TotalWeight(),
	}

	if candidates.Len() == 0 {
		e.logger.Warn("every profile was rejected; falling back to the full catalog",
			zap.Int("catalog_size", e.catalog.Len()),
		)
		candidates = e.catalog.Candidates()
		report.Fallback = true
	}

	best, maxScore := pick(candidates, tally, report)
	report.MaxScore = maxScore

	result := best.Clone()
	result.Roadmap = NormalizeRoadmap(best.Roadmap)
	result.MatchScore = Confidence(maxScore, report.TotalWeight)
	result.MatchReason = Reasons(best, tally)

	e.logger.Debug("career profile computed",
		logger.ProfileFields(result.Title, result.MatchScore,
			zap.Int("answers", len(answers)),
			zap.Int("max_score", maxScore),
			zap.Bool("fallback", report.Fallback),
		)...,
	)

	return result, report, nil
}

// pick returns the candidate with the strictly greatest score; the first one
// in catalog order wins ties. candidates must not be empty.
func pick(candidates *career.Profiles, tally Tally, report *Report) (*career.Profile, int) {
	var best *career.Profile
	var maxScore int

	for i, p := range candidates.Items {
		score := tally.ProfileScore(p)
		report.Candidates = append(report.Candidates, CandidateScore{Title: p.Title, Score: score})
		if i == 0 || score > maxScore {
			best, maxScore = p, score
		}
	}

	return best, maxScore
}

var defaultEngine = sync.OnceValue(func() *Engine {
	e, _ := New(career.DefaultBank(), career.DefaultCatalog(), nil)
	return e
})

// ComputeCareerProfile scores the answers against the built-in question bank
// and catalog.
func ComputeCareerProfile(answers Answers) (*career.Profile, error) {
	profile, _, err := defaultEngine().Compute(context.Background(), answers)
	return profile, err
}
