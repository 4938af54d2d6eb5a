package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/spigell/careerfit/internal/ai"
	"github.com/spigell/careerfit/internal/career"
	"github.com/spigell/careerfit/internal/logger"
	"github.com/spigell/careerfit/internal/utils"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, system, message string) (string, error)
	Model() string
}

// Analyst asks Gemini for the market outlook of a career profile.
type Analyst struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

var _ ai.TrendAnalyst = (*Analyst)(nil)

func NewAnalyst(generator contentGenerator, maxLogLength int, log *zap.Logger) *Analyst {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Analyst{
		generator: generator,
		logger:    logger.WithCommonFields(log, "gemini", generator.Model()),
		maxLogLen: maxLogLength,
	}
}

type profilePayload struct {
	Title          string   `json:"title"`
	Stream         string   `json:"stream"`
	Branch         string   `json:"branch"`
	Description    string   `json:"description"`
	Salary         string   `json:"salary"`
	MarketDemand   string   `json:"marketDemand"`
	AutomationRisk string   `json:"automationRisk"`
	Skills         []string `json:"skills"`
}

func (a *Analyst) Trends(ctx context.Context, profile *career.Profile) (*ai.MarketTrend, error) {
	if profile == nil {
		return nil, errors.New("career profile is required")
	}

	message, err := buildMessage(profile)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("gemini trends request",
		logger.ProfileFields(profile.Title, profile.MatchScore,
			zap.Int("message_length", utf8.RuneCountInString(message)),
			zap.String("message_preview", utils.TruncateForLog(message, a.maxLogLen)),
		)...,
	)

	raw, err := a.generator.GenerateContent(ctx, systemPrompt(), message)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("gemini trends response",
		logger.ProfileFields(profile.Title, 0,
			zap.Int("response_length", utf8.RuneCountInString(raw)),
			zap.String("response_preview", utils.TruncateForLog(raw, a.maxLogLen)),
		)...,
	)

	trend, err := parseResponse(raw)
	if err != nil {
		return nil, err
	}

	if trend.Career == "" {
		trend.Career = profile.Title
	}
	trend.Raw = raw

	return trend, nil
}

func systemPrompt() string {
	if strings.TrimSpace(promptTemplate) == "" {
		return "Describe the job-market outlook of the career profile as JSON with keys career, demand, growthOutlook, salaryTrend, hotSkills, summary."
	}
	return promptTemplate
}

func buildMessage(p *career.Profile) (string, error) {
	payload := profilePayload{
		Title:          p.Title,
		Stream:         string(p.Stream),
		Branch:         string(p.Branch),
		Description:    p.Description,
		Salary:         p.Salary,
		MarketDemand:   string(p.MarketDemand),
		AutomationRisk: string(p.AutomationRisk),
		Skills:         make([]string, 0, len(p.RequiredSkills)),
	}
	for _, s := range p.RequiredSkills {
		payload.Skills = append(payload.Skills, s.Name)
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal profile payload: %w", err)
	}

	return "Career profile:\n" + string(data), nil
}

func parseResponse(raw string) (*ai.MarketTrend, error) {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	trend := &ai.MarketTrend{
		Career:        coerceString(data["career"]),
		Demand:        coerceString(data["demand"]),
		GrowthOutlook: coerceString(data["growthOutlook"]),
		SalaryTrend:   coerceString(data["salaryTrend"]),
		HotSkills:     coerceStrings(data["hotSkills"]),
		Summary:       coerceString(data["summary"]),
	}

	if trend.Summary == "" && trend.Demand == "" && len(trend.HotSkills) == 0 {
		return nil, errors.New("gemini response has no trend data")
	}

	return trend, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case nil:
		return ""
	case fmt.Stringer:
		return strings.TrimSpace(val.String())
	default:
		bytes, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(bytes)
	}
}

// coerceStrings accepts a JSON array or a comma separated string.
func coerceStrings(v any) []string {
	var items []string
	switch val := v.(type) {
	case []any:
		for _, item := range val {
			items = append(items, coerceString(item))
		}
	case string:
		items = strings.Split(val, ",")
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
