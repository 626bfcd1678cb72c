package optimizer

import (
	"fmt"
	"strings"

	"github.com/osse101/MixMaster_Go/internal/domain"
)

// Goal names a scoring strategy for the optimizer
type Goal string

// Supported optimization goals
const (
	GoalBestProfit           Goal = "best-profit"
	GoalHighestValue         Goal = "highest-value"
	GoalMaxMultiplierProfit  Goal = "max-multiplier-profit"
	GoalBestROI              Goal = "best-roi"
	GoalCheapestToMake       Goal = "cheapest-to-make"
	GoalMostEffects          Goal = "most-effects"
	GoalLegendaryHunter      Goal = "legendary-hunter"
	GoalRareCollector        Goal = "rare-collector"
	GoalHighestMultiplier    Goal = "highest-multiplier"
	GoalHighestAddiction     Goal = "highest-addiction"
	GoalBalanced             Goal = "balanced"
	GoalBeginnerFriendly     Goal = "beginner-friendly"
	GoalMinIngredients       Goal = "min-ingredients"
	GoalSpeedBuild           Goal = "speed-build"
	GoalTransformationMaster Goal = "transformation-master"
)

// Goals lists every goal in display order
var Goals = []Goal{
	GoalBestProfit,
	GoalHighestValue,
	GoalMaxMultiplierProfit,
	GoalBestROI,
	GoalCheapestToMake,
	GoalMostEffects,
	GoalLegendaryHunter,
	GoalRareCollector,
	GoalHighestMultiplier,
	GoalHighestAddiction,
	GoalBalanced,
	GoalBeginnerFriendly,
	GoalMinIngredients,
	GoalSpeedBuild,
	GoalTransformationMaster,
}

// Valid reports whether g is one of Goals
func (g Goal) Valid() bool {
	for _, known := range Goals {
		if g == known {
			return true
		}
	}
	return false
}

func (g Goal) String() string { return string(g) }

// ParseGoal accepts a goal id in any case, surrounded by optional whitespace
func ParseGoal(s string) (Goal, error) {
	g := Goal(strings.ToLower(strings.TrimSpace(s)))
	if !g.Valid() {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidGoal, s)
	}
	return g, nil
}
