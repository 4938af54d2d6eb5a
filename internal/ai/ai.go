package ai

import (
	"context"

	"github.com/spigell/careerfit/internal/career"
)

// MarketTrend is the outlook a provider returns for a career path.
type MarketTrend struct {
	Career        string   `json:"career"`
	Demand        string   `json:"demand"`
	GrowthOutlook string   `json:"growthOutlook"`
	SalaryTrend   string   `json:"salaryTrend"`
	HotSkills     []string `json:"hotSkills"`
	Summary       string   `json:"summary"`
	Raw           string   `json:"-"`
}

// TrendAnalyst produces market insight for a computed profile.
type TrendAnalyst interface {
	Trends(ctx context.Context, profile *career.Profile) (*MarketTrend, error)
}
