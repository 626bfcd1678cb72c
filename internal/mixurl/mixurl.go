// Package mixurl builds and parses shareable mix-builder links and formats
// amounts for display.
package mixurl

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Query parameter names and the builder path
const (
	BuilderPath      = "/mix-builder"
	ParamBase        = "base"
	ParamIngredients = "ingredients"
	ingredientSep    = ","
	maxPriceDecimals = 3
)

var (
	printer      = message.NewPrinter(language.English)
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
)

// Encode builds a mix-builder link for a base product and ordered ingredients.
// The ingredients parameter is omitted when there are none.
func Encode(baseProductID string, ingredientIDs []string) string {
	params := url.Values{}
	params.Set(ParamBase, baseProductID)
	if len(ingredientIDs) > 0 {
		params.Set(ParamIngredients, strings.Join(ingredientIDs, ingredientSep))
	}
	return BuilderPath + "?" + params.Encode()
}

// Decode reads a mix from link query values. ok is false when no base
// product is present.
func Decode(values url.Values) (baseProductID string, ingredientIDs []string, ok bool) {
	ingredientIDs = []string{}
	if raw := values.Get(ParamIngredients); raw != "" {
		ingredientIDs = strings.Split(raw, ingredientSep)
	}
	if !values.Has(ParamBase) {
		return "", ingredientIDs, false
	}
	return values.Get(ParamBase), ingredientIDs, true
}

// DecodeURL parses a full or relative link and decodes its query
func DecodeURL(link string) (baseProductID string, ingredientIDs []string, ok bool, err error) {
	u, err := url.Parse(link)
	if err != nil {
		return "", nil, false, err
	}
	baseProductID, ingredientIDs, ok = Decode(u.Query())
	return baseProductID, ingredientIDs, ok, nil
}

// FormatPrice renders a dollar amount with thousands separators, e.g. $1,234
func FormatPrice(price float64) string {
	return "$" + printer.Sprint(number.Decimal(price, number.MaxFractionDigits(maxPriceDecimals)))
}

// FormatPercentage renders value followed by a percent sign
func FormatPercentage(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64) + "%"
}

// Slugify lowercases text and collapses every run of other characters into
// a single dash.
func Slugify(text string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(text), "-")
	return strings.Trim(slug, "-")
}
