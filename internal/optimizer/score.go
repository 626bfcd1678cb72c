package optimizer

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/osse101/MixMaster_Go/internal/domain"
	"github.com/osse101/MixMaster_Go/internal/utils"
)

// TierLookup resolves an effect name to its tier. An empty tier counts as common.
type TierLookup func(effectName string) domain.EffectTier

// Score rates a mix result for goal. Invalid results score -Inf.
func Score(result domain.MixResult, goal Goal, ingredientCount int, tierOf TierLookup) (float64, string) {
	if !result.IsValid {
		return math.Inf(-1), ReasonInvalidMix
	}

	profit := result.Profit
	switch goal {
	case GoalBestProfit:
		return profit, fmt.Sprintf(ReasonFmtProfit, formatNumber(profit))

	case GoalHighestValue:
		price := float64(result.FinalPrice)
		return price*valueWeight + profit,
			fmt.Sprintf(ReasonFmtValue, formatNumber(price), formatNumber(profit))

	case GoalMaxMultiplierProfit:
		return result.PriceMultiplier*multiplierWeight + profit,
			fmt.Sprintf(ReasonFmtMultiplierBlend, result.PriceMultiplier, formatNumber(profit))

	case GoalBestROI:
		roi := 0.0
		if result.TotalCost > 0 {
			roi = profit / result.TotalCost * 100
		}
		return roi, fmt.Sprintf(ReasonFmtROI, strconv.FormatFloat(utils.RoundHalfUp(roi), 'f', 0, 64))

	case GoalCheapestToMake:
		score := math.Inf(-1)
		if profit > 0 {
			score = cheapestCeiling - result.TotalCost
		}
		return score, fmt.Sprintf(ReasonFmtCheapest, formatNumber(result.TotalCost), formatNumber(profit))

	case GoalMostEffects:
		n := len(result.Effects)
		return float64(n), fmt.Sprintf(ReasonFmtEffects, n)

	case GoalLegendaryHunter:
		n := countTier(result.Effects, domain.TierLegendary, tierOf)
		return float64(n)*tierCountWeight + profit, fmt.Sprintf(ReasonFmtLegendary, n)

	case GoalRareCollector:
		n := countTier(result.Effects, domain.TierRare, tierOf)
		return float64(n)*tierCountWeight + profit, fmt.Sprintf(ReasonFmtRare, n)

	case GoalHighestMultiplier:
		return result.PriceMultiplier, fmt.Sprintf(ReasonFmtMultiplier, formatNumber(result.PriceMultiplier))

	case GoalHighestAddiction:
		return result.AddictionLevel, fmt.Sprintf(ReasonFmtAddiction, formatNumber(result.AddictionLevel))

	case GoalBalanced:
		n := len(result.Effects)
		score := profit*balancedProfitWeight + float64(n)*balancedEffectWeight + result.AddictionLevel*balancedAddictionWeight
		return score, fmt.Sprintf(ReasonFmtBalanced, formatNumber(profit), n, formatNumber(result.AddictionLevel))

	case GoalBeginnerFriendly:
		score := profit - float64(ingredientCount)*beginnerPenalty
		if ingredientCount <= beginnerMaxIngredients {
			score = profit + beginnerBonus
		}
		return score, fmt.Sprintf(ReasonFmtBeginner, ingredientCount, formatNumber(profit))

	case GoalMinIngredients:
		return profit - float64(ingredientCount)*minIngredientsPenalty,
			fmt.Sprintf(ReasonFmtMinIngredients, ingredientCount, formatNumber(profit))

	case GoalSpeedBuild:
		n := countSpeedEffects(result.Effects)
		return float64(n)*speedEffectWeight + profit, fmt.Sprintf(ReasonFmtSpeed, n)

	case GoalTransformationMaster:
		n := 0
		for _, step := range result.Steps {
			if step.Action == domain.StepTransformed {
				n++
			}
		}
		return float64(n)*transformationStepWeight + profit, fmt.Sprintf(ReasonFmtTransformations, n)
	}

	return math.Inf(-1), ReasonInvalidMix
}

func countTier(effectList []string, tier domain.EffectTier, tierOf TierLookup) int {
	n := 0
	for _, e := range effectList {
		t := domain.TierCommon
		if tierOf != nil {
			if found := tierOf(e); found != "" {
				t = found
			}
		}
		if t == tier {
			n++
		}
	}
	return n
}

func countSpeedEffects(effectList []string) int {
	n := 0
	for _, e := range effectList {
		lower := strings.ToLower(e)
		for _, kw := range SpeedEffectKeywords {
			if strings.Contains(lower, kw) {
				n++
				break
			}
		}
	}
	return n
}

// formatNumber renders x with the shortest representation that round-trips,
// so whole amounts print without a fractional part.
func formatNumber(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
