package discord

import (
	"context"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/MixMaster_Go/internal/domain"
	"github.com/osse101/MixMaster_Go/internal/optimizer"
)

// optimizeTimeout bounds a single /optimize call
const optimizeTimeout = 10 * time.Second

// OptimizeCommand ranks the best mixes for an inventory:
// /optimize goal:<goal> products:<id[:qty],...> ingredients:<id[:qty],...> top:<n>
func OptimizeCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minTop := float64(1)
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdOptimize,
		Description: "Find the best mixes you can make from your inventory",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptGoal,
				Description: "What to optimize for",
				Required:    true,
				Choices:     goalChoices(),
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptProducts,
				Description: "Owned base products, e.g. og-kush:2, meth",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptIngredients,
				Description: "Owned ingredients, e.g. cuke:3, banana",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        OptTop,
				Description: "How many results to show",
				MinValue:    &minTop,
				MaxValue:    maxResultsShown,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
		if !deferResponse(s, i) {
			return
		}

		opts := optionMap(i)
		goal, err := optimizer.ParseGoal(optionString(opts, OptGoal))
		if err != nil {
			respondFriendlyError(s, i, err)
			return
		}

		products, err := parseInventory(optionString(opts, OptProducts))
		if err != nil {
			respondFriendlyError(s, i, err)
			return
		}
		ingredients, err := parseInventory(optionString(opts, OptIngredients))
		if err != nil {
			respondFriendlyError(s, i, err)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), optimizeTimeout)
		defer cancel()

		inv := domain.Inventory{Products: products, Ingredients: ingredients}
		recs, err := deps.Optimizer.Optimize(ctx, inv, string(goal), optionInt(opts, OptTop, 0))
		if err != nil {
			slog.Warn(LogMsgCommandFailed, "command", CmdOptimize, "goal", goal, "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		sendEmbed(s, i, recommendationsEmbed(goal, recs))
	}

	return cmd, handler
}
