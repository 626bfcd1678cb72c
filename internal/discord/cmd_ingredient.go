package discord

import (
	"context"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/MixMaster_Go/internal/domain"
)

// IngredientCommand shows an ingredient, and optionally what it does to a
// given set of effects: /ingredient name:<id> effects:<Effect,Effect>
func IngredientCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdIngredient,
		Description: "Look up an ingredient",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         OptName,
				Description:  "Ingredient",
				Required:     true,
				Autocomplete: true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptEffects,
				Description: "Current effects, comma separated",
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
		if !deferResponse(s, i) {
			return
		}

		ctx := context.Background()
		opts := optionMap(i)

		ing, err := deps.Mix.GetIngredient(ctx, optionString(opts, OptName))
		if err != nil {
			slog.Warn(LogMsgCommandFailed, "command", CmdIngredient, "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		var match *domain.Suggestion
		if effects := parseIDList(optionString(opts, OptEffects)); len(effects) > 0 {
			for _, sug := range deps.Mix.Suggest(ctx, effects) {
				if sug.IngredientID == ing.ID {
					match = &sug
					break
				}
			}
		}

		sendEmbed(s, i, ingredientEmbed(ing, match))
	}

	return cmd, handler
}
