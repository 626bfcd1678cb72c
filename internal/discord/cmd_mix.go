package discord

import (
	"context"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/MixMaster_Go/internal/mixurl"
)

// MixCommand calculates a recipe: /mix base:<product> ingredients:<id,id,...>
func MixCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdMix,
		Description: "Calculate the effects and price of a mix",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         OptBase,
				Description:  "Base product",
				Required:     true,
				Autocomplete: true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptIngredients,
				Description: "Ingredient ids in order, comma separated",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
		if !deferResponse(s, i) {
			return
		}

		opts := optionMap(i)
		base := optionString(opts, OptBase)
		ids := parseIDList(optionString(opts, OptIngredients))

		result, err := deps.Mix.Calculate(context.Background(), base, ids)
		if err != nil {
			slog.Warn(LogMsgCommandFailed, "command", CmdMix, "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		sendEmbed(s, i, mixEmbed(result, mixurl.Encode(base, ids)))
	}

	return cmd, handler
}
