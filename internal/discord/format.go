package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/MixMaster_Go/internal/domain"
	"github.com/osse101/MixMaster_Go/internal/mixurl"
	"github.com/osse101/MixMaster_Go/internal/optimizer"
)

var titleCaser = cases.Title(language.English)

// goalLabel turns "max-multiplier-profit" into "Max Multiplier Profit"
func goalLabel(g optimizer.Goal) string {
	return titleCaser.String(strings.ReplaceAll(string(g), "-", " "))
}

// goalChoices lists every goal as a command choice. There are fewer goals
// than Discord's 25 choice limit.
func goalChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(optimizer.Goals))
	for _, g := range optimizer.Goals {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  goalLabel(g),
			Value: string(g),
		})
	}
	return choices
}

func effectList(effects []string) string {
	if len(effects) == 0 {
		return "_none_"
	}
	return strings.Join(effects, ", ")
}

// mixEmbed renders a calculated mix
func mixEmbed(result domain.MixResult, shareURL string) *discordgo.MessageEmbed {
	if !result.IsValid {
		return createEmbed("🧪 Invalid Mix", strings.Join(result.Warnings, "\n"), ColorInvalid, "")
	}

	embed := createEmbed("🧪 "+result.ProductName, effectList(result.Effects), ColorValid, "")
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Sell Price", Value: mixurl.FormatPrice(float64(result.FinalPrice)), Inline: true},
		{Name: "Multiplier", Value: fmt.Sprintf("×%.2f", result.PriceMultiplier), Inline: true},
		{Name: "Cost", Value: mixurl.FormatPrice(result.TotalCost), Inline: true},
		{Name: "Profit", Value: mixurl.FormatPrice(result.Profit), Inline: true},
		{Name: "Addiction", Value: mixurl.FormatPercentage(result.AddictionLevel), Inline: true},
	}
	if steps := stepLines(result.Steps); steps != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Steps", Value: steps})
	}
	if len(result.Warnings) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Warnings", Value: strings.Join(result.Warnings, "\n")})
	}
	if shareURL != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Share", Value: "`" + shareURL + "`"})
	}
	return embed
}

func stepLines(steps []domain.MixStep) string {
	var b strings.Builder
	for n, step := range steps {
		if n == maxStepsShown {
			fmt.Fprintf(&b, "…and %d more", len(steps)-maxStepsShown)
			break
		}
		fmt.Fprintf(&b, "%d. **%s**: %s\n", n+1, step.IngredientName, step.Explanation)
	}
	return strings.TrimSpace(b.String())
}

// recommendationsEmbed renders optimizer output best first
func recommendationsEmbed(goal optimizer.Goal, recs []domain.Recommendation) *discordgo.MessageEmbed {
	title := "🎯 " + goalLabel(goal)
	if len(recs) == 0 {
		return createEmbed(title, MsgNoRecommendations, ColorOptimizer, FooterOptimizer)
	}

	embed := createEmbed(title, "", ColorOptimizer, FooterOptimizer)
	for n, rec := range recs {
		if n == maxResultsShown {
			break
		}
		recipe := "_base only_"
		if len(rec.IngredientsUsed) > 0 {
			parts := make([]string, 0, len(rec.IngredientsUsed))
			for _, u := range rec.IngredientsUsed {
				parts = append(parts, fmt.Sprintf("%s ×%d", u.Name, u.Count))
			}
			recipe = strings.Join(parts, ", ")
		}
		value := fmt.Sprintf("%s\n%s → %s",
			recipe, effectList(rec.Result.Effects), mixurl.FormatPrice(float64(rec.Result.FinalPrice)))
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%d. %s (%s)", n+1, rec.Result.ProductName, rec.Reason),
			Value: value,
		})
	}
	return embed
}

// ingredientEmbed renders a catalog ingredient and what it would do on its own
func ingredientEmbed(ing domain.Ingredient, suggestion *domain.Suggestion) *discordgo.MessageEmbed {
	desc := "Adds **" + ing.DefaultEffect + "**"
	if ing.DefaultEffect == "" {
		desc = "No default effect"
	}
	embed := createEmbed("🌿 "+ing.Name, desc, ColorCatalog, "")
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Cost", Value: mixurl.FormatPrice(ing.Cost), Inline: true},
		{Name: "ID", Value: "`" + ing.ID + "`", Inline: true},
	}
	if ing.Confidence != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Data", Value: string(ing.Confidence), Inline: true})
	}
	if suggestion != nil && suggestion.Kind == domain.SuggestTransform {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "With your effects", Value: suggestion.Result})
	}
	return embed
}
