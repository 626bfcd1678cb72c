package mix

import (
	"context"
	"fmt"
	"strconv"

	"github.com/osse101/MixMaster_Go/internal/domain"
	"github.com/osse101/MixMaster_Go/internal/logger"
	"github.com/osse101/MixMaster_Go/internal/metrics"
	"github.com/osse101/MixMaster_Go/internal/naming"
)

// Service is the mix feature surface used by the HTTP API, the Discord bot
// and the Lambda entrypoint
type Service interface {
	Calculate(ctx context.Context, baseProductID string, ingredientIDs []string) (domain.MixResult, error)
	GenerateName(ctx context.Context, effectList []string, category string) (string, error)
	Suggest(ctx context.Context, current []string) []domain.Suggestion
	CanAdd(ctx context.Context, current []string, ingredientID string) domain.AddCheck
	FindRecipesByEffects(ctx context.Context, target []string) []domain.ReverseMatch

	GetProduct(ctx context.Context, id string) (domain.Product, error)
	ListProducts(ctx context.Context) []domain.Product
	GetIngredient(ctx context.Context, id string) (domain.Ingredient, error)
	ListIngredients(ctx context.Context) []domain.Ingredient
	GetEffect(ctx context.Context, name string) (domain.Effect, error)
}

// ServiceCatalog is the catalog surface the service exposes to callers
type ServiceCatalog interface {
	Catalog
	AllProducts() []domain.Product
}

type service struct {
	catalog    ServiceCatalog
	engine     *Engine
	calculator Calculator
	namer      naming.Resolver
}

// NewService creates a mix service. calculator may wrap engine (for example
// a CachedCalculator); when nil the engine is used directly.
func NewService(catalog ServiceCatalog, engine *Engine, namer naming.Resolver, calculator Calculator) Service {
	if calculator == nil {
		calculator = engine
	}
	return &service{
		catalog:    catalog,
		engine:     engine,
		calculator: calculator,
		namer:      namer,
	}
}

func (s *service) Calculate(ctx context.Context, baseProductID string, ingredientIDs []string) (domain.MixResult, error) {
	if len(ingredientIDs) > domain.MaxRecipeIngredients {
		return domain.MixResult{}, fmt.Errorf("%w: %d > %d", domain.ErrTooManyIngreds, len(ingredientIDs), domain.MaxRecipeIngredients)
	}

	result := s.calculator.CalculateMix(baseProductID, ingredientIDs)

	productLabel := result.BaseProduct
	if !result.IsValid {
		productLabel = metrics.UnknownLabel
	}
	metrics.MixesCalculated.WithLabelValues(productLabel, strconv.FormatBool(result.IsValid)).Inc()
	metrics.MixWarnings.Add(float64(len(result.Warnings)))

	log := logger.FromContext(ctx)
	if !result.IsValid {
		log.Debug(LogMsgInvalidMix, "product", baseProductID)
		return result, nil
	}
	log.Debug(LogMsgMixCalculated,
		"product", baseProductID,
		"ingredients", len(ingredientIDs),
		"effects", len(result.Effects),
		"warnings", len(result.Warnings))

	return result, nil
}

func (s *service) GenerateName(_ context.Context, effectList []string, category string) (string, error) {
	c, ok := domain.ParseCategory(category)
	if !ok {
		return "", fmt.Errorf("%w: '%s'", domain.ErrInvalidCategory, category)
	}
	return s.namer.GenerateName(effectList, c), nil
}

func (s *service) Suggest(ctx context.Context, current []string) []domain.Suggestion {
	suggestions := s.engine.SuggestIngredients(current)
	logger.FromContext(ctx).Debug(LogMsgSuggestionsMade, "effects", len(current), "suggestions", len(suggestions))
	return suggestions
}

func (s *service) CanAdd(_ context.Context, current []string, ingredientID string) domain.AddCheck {
	return s.engine.CanAddIngredient(current, ingredientID)
}

func (s *service) FindRecipesByEffects(ctx context.Context, target []string) []domain.ReverseMatch {
	logger.FromContext(ctx).Debug(LogMsgReverseLookup, "effects", target)
	return s.engine.FindRecipesByEffects(target)
}

func (s *service) GetProduct(_ context.Context, id string) (domain.Product, error) {
	p, ok := s.catalog.ProductByID(id)
	if !ok {
		return domain.Product{}, fmt.Errorf("%w: '%s'", domain.ErrProductNotFound, id)
	}
	return p, nil
}

func (s *service) ListProducts(_ context.Context) []domain.Product {
	return s.catalog.AllProducts()
}

func (s *service) GetIngredient(_ context.Context, id string) (domain.Ingredient, error) {
	ing, ok := s.catalog.IngredientByID(id)
	if !ok {
		return domain.Ingredient{}, fmt.Errorf("%w: '%s'", domain.ErrIngredientNotFound, id)
	}
	return ing, nil
}

func (s *service) ListIngredients(_ context.Context) []domain.Ingredient {
	return s.catalog.AllIngredients()
}

func (s *service) GetEffect(_ context.Context, name string) (domain.Effect, error) {
	e, ok := s.catalog.EffectByName(name)
	if !ok {
		return domain.Effect{}, fmt.Errorf("%w: '%s'", domain.ErrEffectNotFound, name)
	}
	return e, nil
}
