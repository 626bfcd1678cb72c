package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/osse101/MixMaster_Go/internal/domain"
	"github.com/osse101/MixMaster_Go/internal/logger"
	"github.com/osse101/MixMaster_Go/internal/validation"
)

// Sentinel errors for catalog loading
var (
	ErrInvalidConfig           = errors.New("invalid catalog configuration")
	ErrDuplicateID             = errors.New("duplicate id")
	ErrDuplicateIngredientName = errors.New("duplicate ingredient name")
	ErrUnknownReference        = errors.New("unknown reference")
)

// ProductsDoc is the products.json document
type ProductsDoc struct {
	Version     string           `json:"version"`
	Schema      string           `json:"schema"`
	Description string           `json:"description"`
	Products    []domain.Product `json:"products"`
}

// IngredientsDoc is the ingredients.json document
type IngredientsDoc struct {
	Version     string              `json:"version"`
	Schema      string              `json:"schema"`
	Description string              `json:"description"`
	Ingredients []domain.Ingredient `json:"ingredients"`
}

// EffectsDoc is the effects.json document
type EffectsDoc struct {
	Version     string          `json:"version"`
	Schema      string          `json:"schema"`
	Description string          `json:"description"`
	Effects     []domain.Effect `json:"effects"`
}

// TransformationsMeta carries engine-wide limits
type TransformationsMeta struct {
	MaxEffects int `json:"max_effects"`
}

// TransformationsDoc is the transformations.json document.
// Rules are keyed by ingredient name, not id.
type TransformationsDoc struct {
	Version     string                                 `json:"version"`
	Schema      string                                 `json:"schema"`
	Description string                                 `json:"description"`
	Meta        TransformationsMeta                    `json:"meta"`
	Rules       map[string][]domain.TransformationRule `json:"rules"`
}

// NamingDoc is the naming.json document
type NamingDoc struct {
	Version     string `json:"version"`
	Schema      string `json:"schema"`
	Description string `json:"description"`
	domain.NamingRules
}

// Config bundles every catalog document loaded from one directory
type Config struct {
	Products        ProductsDoc
	Ingredients     IngredientsDoc
	Effects         EffectsDoc
	Transformations TransformationsDoc
	Naming          NamingDoc
}

// Loader handles loading and validating catalog documents
type Loader interface {
	Load(ctx context.Context, dir string) (*Config, error)
	Validate(config *Config) error
}

type catalogLoader struct {
	schemaDir       string
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a Loader that checks documents against schemas in schemaDir
func NewLoader(schemaDir string) Loader {
	return &catalogLoader{
		schemaDir:       schemaDir,
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// Load reads every catalog document from dir
func (l *catalogLoader) Load(ctx context.Context, dir string) (*Config, error) {
	var config Config

	docs := []struct {
		file   string
		schema string
		target interface{}
	}{
		{ProductsFileName, SchemaProducts, &config.Products},
		{IngredientsFileName, SchemaIngredients, &config.Ingredients},
		{EffectsFileName, SchemaEffects, &config.Effects},
		{TransformationsFileName, SchemaTransformations, &config.Transformations},
		{NamingFileName, SchemaNaming, &config.Naming},
	}

	for _, d := range docs {
		if err := l.loadDocument(ctx, filepath.Join(dir, d.file), d.schema, d.target); err != nil {
			return nil, err
		}
	}

	return &config, nil
}

func (l *catalogLoader) loadDocument(ctx context.Context, path, schema string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf(ErrMsgReadFileFailed, path, err)
	}

	header, err := validation.CheckHeader(data, schema)
	if err != nil {
		return fmt.Errorf(ErrMsgHeaderCheckFailed, path, err)
	}

	schemaPath := filepath.Join(l.schemaDir, schema+SchemaFileSuffix)
	if err := l.schemaValidator.ValidateBytes(data, schemaPath); err != nil {
		return fmt.Errorf(ErrMsgSchemaFailed, path, err)
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf(ErrMsgParseFileFailed, path, err)
	}

	logger.FromContext(ctx).Debug(LogMsgDocumentLoaded, "path", path, "schema", schema, "version", header.Version)
	return nil
}

// Validate checks cross-document invariants the schemas cannot express
func (l *catalogLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}
	if len(config.Products.Products) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoProducts)
	}
	if len(config.Ingredients.Ingredients) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoIngredients)
	}
	if len(config.Effects.Effects) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoEffects)
	}
	if config.Transformations.Meta.MaxEffects < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNonPositiveMaxCap)
	}

	if err := validateProducts(config.Products.Products); err != nil {
		return err
	}
	ingredientNames, err := validateIngredients(config.Ingredients.Ingredients)
	if err != nil {
		return err
	}
	if err := validateEffects(config.Effects.Effects); err != nil {
		return err
	}
	return validateRules(config.Transformations.Rules, ingredientNames)
}

func validateProducts(products []domain.Product) error {
	ids := make(map[string]bool, len(products))
	for i := range products {
		p := &products[i]
		if p.ID == "" {
			return fmt.Errorf(ErrFmtEntryAtIndex, ErrInvalidConfig, "product", i, ErrMsgEmptyID)
		}
		if ids[p.ID] {
			return fmt.Errorf("%w: product '%s'", ErrDuplicateID, p.ID)
		}
		ids[p.ID] = true

		if p.Name == "" {
			return fmt.Errorf(ErrFmtEntryNamed, ErrInvalidConfig, "product", p.ID, ErrMsgEmptyName)
		}
		if _, ok := domain.ParseCategory(string(p.Category)); !ok {
			return fmt.Errorf("%w: product '%s' has category '%s'", domain.ErrInvalidCategory, p.ID, p.Category)
		}
		if p.BasePrice < 0 {
			return fmt.Errorf(ErrFmtEntryNamed, ErrInvalidConfig, "product", p.ID, ErrMsgNegativePrice)
		}
	}
	return nil
}

func validateIngredients(ingredients []domain.Ingredient) (map[string]bool, error) {
	ids := make(map[string]bool, len(ingredients))
	names := make(map[string]bool, len(ingredients))
	for i := range ingredients {
		ing := &ingredients[i]
		if ing.ID == "" {
			return nil, fmt.Errorf(ErrFmtEntryAtIndex, ErrInvalidConfig, "ingredient", i, ErrMsgEmptyID)
		}
		if ids[ing.ID] {
			return nil, fmt.Errorf("%w: ingredient '%s'", ErrDuplicateID, ing.ID)
		}
		ids[ing.ID] = true

		if ing.Name == "" {
			return nil, fmt.Errorf(ErrFmtEntryNamed, ErrInvalidConfig, "ingredient", ing.ID, ErrMsgEmptyName)
		}
		// Rules are keyed by name, so names must be unique
		if names[ing.Name] {
			return nil, fmt.Errorf("%w: '%s'", ErrDuplicateIngredientName, ing.Name)
		}
		names[ing.Name] = true

		if ing.Cost < 0 {
			return nil, fmt.Errorf(ErrFmtEntryNamed, ErrInvalidConfig, "ingredient", ing.ID, ErrMsgNegativeCost)
		}
	}
	return names, nil
}

func validateEffects(effects []domain.Effect) error {
	ids := make(map[string]bool, len(effects))
	for i := range effects {
		e := &effects[i]
		if e.ID == "" {
			return fmt.Errorf(ErrFmtEntryAtIndex, ErrInvalidConfig, "effect", i, ErrMsgEmptyID)
		}
		if ids[e.ID] {
			return fmt.Errorf("%w: effect '%s'", ErrDuplicateID, e.ID)
		}
		ids[e.ID] = true

		if e.Name == "" {
			return fmt.Errorf(ErrFmtEntryNamed, ErrInvalidConfig, "effect", e.ID, ErrMsgEmptyName)
		}
		if _, ok := domain.ParseEffectTier(string(e.Tier)); !ok {
			return fmt.Errorf("%w: effect '%s' has tier '%s'", ErrInvalidConfig, e.ID, e.Tier)
		}
	}
	return nil
}

func validateRules(rules map[string][]domain.TransformationRule, ingredientNames map[string]bool) error {
	for name, list := range rules {
		if !ingredientNames[name] {
			return fmt.Errorf("%w: transformation rules for unknown ingredient '%s'", ErrUnknownReference, name)
		}
		for i, rule := range list {
			if len(rule.Replace) == 0 {
				return fmt.Errorf(ErrFmtRuleAtIndex, ErrInvalidConfig, i, name, ErrMsgEmptyReplace)
			}
		}
	}
	return nil
}
