package discord

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// HandleAutocomplete answers autocomplete for base products and ingredients
func HandleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
	data := i.ApplicationCommandData()

	var choices []*discordgo.ApplicationCommandOptionChoice
	switch data.Name {
	case CmdMix:
		choices = productChoices(deps, focusedValue(data))
	case CmdIngredient:
		choices = ingredientChoices(deps, focusedValue(data))
	default:
		slog.Warn(LogMsgUnhandledComplete, "command", data.Name)
		return
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: choices},
	}); err != nil {
		slog.Error(LogMsgAutocompleteFailed, "error", err)
	}
}

func focusedValue(data discordgo.ApplicationCommandInteractionData) string {
	for _, opt := range data.Options {
		if opt.Focused {
			return strings.ToLower(opt.StringValue())
		}
	}
	return ""
}

// matches reports whether either the id or the display name contains query
func matches(query, id, name string) bool {
	return query == "" ||
		strings.Contains(strings.ToLower(id), query) ||
		strings.Contains(strings.ToLower(name), query)
}

func productChoices(deps *Deps, query string) []*discordgo.ApplicationCommandOptionChoice {
	choices := []*discordgo.ApplicationCommandOptionChoice{}
	for _, p := range deps.Mix.ListProducts(context.Background()) {
		if !matches(query, p.ID, p.Name) {
			continue
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: p.Name, Value: p.ID})
		if len(choices) == maxChoices {
			break
		}
	}
	return choices
}

func ingredientChoices(deps *Deps, query string) []*discordgo.ApplicationCommandOptionChoice {
	choices := []*discordgo.ApplicationCommandOptionChoice{}
	for _, ing := range deps.Mix.ListIngredients(context.Background()) {
		if !matches(query, ing.ID, ing.Name) {
			continue
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: ing.Name, Value: ing.ID})
		if len(choices) == maxChoices {
			break
		}
	}
	return choices
}
