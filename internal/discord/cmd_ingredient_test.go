package discord

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/MixMaster_Go/internal/domain"
)

func TestIngredientCommand(t *testing.T) {
	_, handler := IngredientCommand()
	cuke := domain.Ingredient{ID: "cuke", Name: "Cuke", DefaultEffect: "Energizing", Cost: 2}

	t.Run("Plain lookup", func(t *testing.T) {
		tc := NewTestContext(t)
		tc.Mix.On("GetIngredient", mock.Anything, "cuke").Return(cuke, nil)

		handler(tc.Session, commandInteraction(CmdIngredient, stringOption(OptName, "cuke")), tc.Deps)

		embed := tc.LastEmbed(t)
		assert.Equal(t, "🌿 Cuke", embed.Title)
		assert.Equal(t, "Adds **Energizing**", embed.Description)
		assert.Len(t, embed.Fields, 2)
		tc.Mix.AssertNotCalled(t, "Suggest", mock.Anything, mock.Anything)
	})

	t.Run("With current effects", func(t *testing.T) {
		tc := NewTestContext(t)
		tc.Mix.On("GetIngredient", mock.Anything, "cuke").Return(cuke, nil)
		tc.Mix.On("Suggest", mock.Anything, []string{"Sneaky"}).Return([]domain.Suggestion{
			{IngredientID: "chili", Kind: domain.SuggestAdd, Result: "Adds Spicy"},
			{IngredientID: "cuke", Kind: domain.SuggestTransform, Result: "Sneaky → Focused"},
		})

		handler(tc.Session, commandInteraction(CmdIngredient,
			stringOption(OptName, "cuke"),
			stringOption(OptEffects, "Sneaky"),
		), tc.Deps)

		embed := tc.LastEmbed(t)
		last := embed.Fields[len(embed.Fields)-1]
		assert.Equal(t, "With your effects", last.Name)
		assert.Equal(t, "Sneaky → Focused", last.Value)
	})

	t.Run("Unknown ingredient", func(t *testing.T) {
		tc := NewTestContext(t)
		tc.Mix.On("GetIngredient", mock.Anything, "kale").
			Return(domain.Ingredient{}, fmt.Errorf("%w: kale", domain.ErrIngredientNotFound))

		handler(tc.Session, commandInteraction(CmdIngredient, stringOption(OptName, "kale")), tc.Deps)

		assert.Equal(t, MsgIngredientNotFound, tc.LastContent(t))
	})
}
