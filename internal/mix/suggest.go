package mix

import (
	"fmt"

	"github.com/osse101/MixMaster_Go/internal/domain"
)

// SuggestIngredients previews every catalog ingredient against the current
// effect set. An ingredient whose rules would fire is reported with the
// first firing rule's first replacement; otherwise with its default effect.
func (e *Engine) SuggestIngredients(current []string) []domain.Suggestion {
	ingredients := e.catalog.AllIngredients()
	suggestions := make([]domain.Suggestion, 0, len(ingredients))

	for _, ing := range ingredients {
		if s, ok := e.transformSuggestion(current, ing); ok {
			suggestions = append(suggestions, s)
			continue
		}
		if ing.DefaultEffect != "" {
			suggestions = append(suggestions, domain.Suggestion{
				IngredientID:   ing.ID,
				IngredientName: ing.Name,
				Kind:           domain.SuggestAdd,
				Result:         fmt.Sprintf(SuggestFmtAdd, ing.DefaultEffect),
			})
		}
	}

	return suggestions
}

func (e *Engine) transformSuggestion(current []string, ing domain.Ingredient) (domain.Suggestion, bool) {
	for _, rule := range e.catalog.RulesFor(ing.Name) {
		if !ruleFires(rule, current) {
			continue
		}
		pairs := rule.Replacements()
		if len(pairs) == 0 {
			continue
		}
		return domain.Suggestion{
			IngredientID:   ing.ID,
			IngredientName: ing.Name,
			Kind:           domain.SuggestTransform,
			Result:         fmt.Sprintf(ExplainFmtTransform, pairs[0].From, pairs[0].To),
		}, true
	}
	return domain.Suggestion{}, false
}

// CanAddIngredient reports whether id may be appended to current.
// Duplicates are allowed.
func (e *Engine) CanAddIngredient(current []string, id string) domain.AddCheck {
	if _, ok := e.catalog.IngredientByID(id); !ok {
		return domain.AddCheck{Valid: false, Reason: ReasonIngredientNotFound}
	}
	if len(current) >= domain.MaxRecipeIngredients {
		return domain.AddCheck{Valid: false, Reason: fmt.Sprintf(ReasonFmtTooMany, domain.MaxRecipeIngredients)}
	}
	return domain.AddCheck{Valid: true}
}

// FindRecipesByEffects is the reverse lookup from an effect combination to
// recipes. There is no solver behind it; it always returns an empty list.
func (e *Engine) FindRecipesByEffects(target []string) []domain.ReverseMatch {
	return []domain.ReverseMatch{}
}
