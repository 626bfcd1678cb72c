package optimizer

import (
	"context"

	"github.com/osse101/MixMaster_Go/internal/domain"
)

// Service is the optimizer surface used by the HTTP API, the Discord bot and
// the Lambda entrypoint
type Service interface {
	Optimize(ctx context.Context, inv domain.Inventory, goal string, topN int) ([]domain.Recommendation, error)
	Goals(ctx context.Context) []GoalInfo
	GroupedGoals(ctx context.Context) []GoalGroup
}

type service struct {
	optimizer   *Optimizer
	goals       *GoalCatalog
	defaultTopN int
}

// NewService creates an optimizer service. defaultTopN replaces a
// non-positive topN in Optimize; zero or less selects domain.DefaultOptimizerTopN.
func NewService(optimizer *Optimizer, goals *GoalCatalog, defaultTopN int) Service {
	if defaultTopN <= 0 {
		defaultTopN = domain.DefaultOptimizerTopN
	}
	return &service{optimizer: optimizer, goals: goals, defaultTopN: min(defaultTopN, domain.MaxOptimizerTopN)}
}

// Optimize parses goal and clamps topN before searching.
func (s *service) Optimize(ctx context.Context, inv domain.Inventory, goal string, topN int) ([]domain.Recommendation, error) {
	g, err := ParseGoal(goal)
	if err != nil {
		return nil, err
	}

	switch {
	case topN <= 0:
		topN = s.defaultTopN
	case topN > domain.MaxOptimizerTopN:
		topN = domain.MaxOptimizerTopN
	}

	return s.optimizer.FindOptimalMixes(ctx, inv, g, topN)
}

func (s *service) Goals(_ context.Context) []GoalInfo {
	return s.goals.All()
}

func (s *service) GroupedGoals(_ context.Context) []GoalGroup {
	return s.goals.Grouped()
}
