package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/MixMaster_Go/internal/domain"
)

// optionMap indexes command options by name
func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	opts := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, o := range opts {
		m[o.Name] = o
	}
	return m
}

func optionString(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	if o, ok := opts[name]; ok {
		return strings.TrimSpace(o.StringValue())
	}
	return ""
}

func optionInt(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string, fallback int) int {
	if o, ok := opts[name]; ok {
		return int(o.IntValue())
	}
	return fallback
}

// parseIDList splits "cuke, banana ,chili" into ids, dropping blanks
func parseIDList(raw string) []string {
	ids := []string{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			ids = append(ids, part)
		}
	}
	return ids
}

// parseInventory reads "id" or "id:quantity" entries. A bare id means one.
func parseInventory(raw string) ([]domain.InventoryItem, error) {
	ids := parseIDList(raw)
	if len(ids) > domain.MaxInventoryEntries {
		return nil, fmt.Errorf("%w: at most %d entries", domain.ErrInvalidInput, domain.MaxInventoryEntries)
	}
	items := make([]domain.InventoryItem, 0, len(ids))
	for _, entry := range ids {
		id, qtyStr, hasQty := strings.Cut(entry, ":")
		qty := 1
		if hasQty {
			n, err := strconv.Atoi(strings.TrimSpace(qtyStr))
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: quantity %q for %s", domain.ErrInvalidInput, qtyStr, id)
			}
			qty = n
		}
		items = append(items, domain.InventoryItem{ID: strings.TrimSpace(id), Quantity: qty})
	}
	return items, nil
}

// respondFriendlyError maps a service error to a readable message
func respondFriendlyError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	respondError(s, i, formatFriendlyError(err))
}

func formatFriendlyError(err error) string {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return MsgProductNotFound
	case errors.Is(err, domain.ErrIngredientNotFound):
		return MsgIngredientNotFound
	case errors.Is(err, domain.ErrEffectNotFound):
		return MsgEffectNotFound
	case errors.Is(err, domain.ErrInvalidGoal):
		return MsgInvalidGoal
	case errors.Is(err, domain.ErrTooManyIngreds):
		return MsgTooManyIngredients
	case errors.Is(err, domain.ErrInvalidInput):
		return MsgInvalidInput
	case errors.Is(err, context.DeadlineExceeded):
		return MsgTimedOut
	default:
		return MsgGenericError
	}
}

// sendEmbed replaces the deferred response with embed
func sendEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		slog.Error(LogMsgSendFailed, "error", err)
	}
}

// createEmbed builds an embed; an empty footerText means FooterMixMaster
func createEmbed(title, description string, color int, footerText string) *discordgo.MessageEmbed {
	if footerText == "" {
		footerText = FooterMixMaster
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: footerText,
		},
	}
}
