package handler

import (
	"net/http"

	"github.com/osse101/MixMaster_Go/internal/domain"
	"github.com/osse101/MixMaster_Go/internal/logger"
	"github.com/osse101/MixMaster_Go/internal/mix"
	"github.com/osse101/MixMaster_Go/internal/mixurl"
)

// CalculateMixRequest is the body of POST /api/v1/mix/calculate
type CalculateMixRequest struct {
	BaseProductID string   `json:"base_product_id" validate:"required,max=64"`
	IngredientIDs []string `json:"ingredient_ids" validate:"max=16,dive,required,max=64"`
}

// CalculateMixResponse carries the result and a shareable builder link
type CalculateMixResponse struct {
	Result   domain.MixResult `json:"result"`
	ShareURL string           `json:"share_url"`
}

// GenerateNameRequest is the body of POST /api/v1/mix/name
type GenerateNameRequest struct {
	Effects  []string `json:"effects" validate:"max=16,dive,required"`
	Category string   `json:"category" validate:"required,category"`
}

// GenerateNameResponse is the resolved product name
type GenerateNameResponse struct {
	Name string `json:"name"`
}

// SuggestionsRequest is the body of POST /api/v1/mix/suggestions
type SuggestionsRequest struct {
	Effects []string `json:"effects" validate:"max=16,dive,required"`
}

// CanAddRequest is the body of POST /api/v1/mix/can-add
type CanAddRequest struct {
	IngredientIDs []string `json:"ingredient_ids" validate:"max=32,dive,required"`
	IngredientID  string   `json:"ingredient_id" validate:"required,max=64"`
}

// ReverseLookupRequest is the body of POST /api/v1/mix/reverse
type ReverseLookupRequest struct {
	Effects []string `json:"effects" validate:"required,min=1,max=16,dive,required"`
}

// HandleCalculateMix runs the mix engine
// @Summary Calculate a mix
// @Description Applies ingredients in order to a base product and returns effects, price and trace
// @Tags mix
// @Accept json
// @Produce json
// @Param request body CalculateMixRequest true "Recipe"
// @Success 200 {object} CalculateMixResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/mix/calculate [post]
func HandleCalculateMix(svc mix.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CalculateMixRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Calculate mix"); err != nil {
			return
		}

		result, err := svc.Calculate(r.Context(), req.BaseProductID, req.IngredientIDs)
		if err != nil {
			respondServiceError(w, r, "calculate mix", err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgMixCalculated,
			"base", req.BaseProductID,
			"ingredients", len(req.IngredientIDs),
			"valid", result.IsValid,
			"final_price", result.FinalPrice)

		respondJSON(w, http.StatusOK, CalculateMixResponse{
			Result:   result,
			ShareURL: mixurl.Encode(req.BaseProductID, req.IngredientIDs),
		})
	}
}

// HandleDecodeMixLink calculates the mix encoded in a shared builder link
// @Summary Calculate a shared mix link
// @Tags mix
// @Produce json
// @Param base query string true "Base product ID"
// @Param ingredients query string false "Comma separated ingredient IDs"
// @Success 200 {object} CalculateMixResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/mix/link [get]
func HandleDecodeMixLink(svc mix.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		base, ids, ok := mixurl.Decode(r.URL.Query())
		if !ok || base == "" {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidMixLink)
			return
		}

		result, err := svc.Calculate(r.Context(), base, ids)
		if err != nil {
			respondServiceError(w, r, "decode mix link", err)
			return
		}
		respondJSON(w, http.StatusOK, CalculateMixResponse{Result: result, ShareURL: mixurl.Encode(base, ids)})
	}
}

// HandleGenerateName resolves a product name for an effect set
// @Summary Name a mix
// @Tags mix
// @Accept json
// @Produce json
// @Param request body GenerateNameRequest true "Effects and category"
// @Success 200 {object} GenerateNameResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/mix/name [post]
func HandleGenerateName(svc mix.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GenerateNameRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Generate name"); err != nil {
			return
		}

		name, err := svc.GenerateName(r.Context(), req.Effects, req.Category)
		if err != nil {
			respondServiceError(w, r, "generate name", err)
			return
		}
		respondJSON(w, http.StatusOK, GenerateNameResponse{Name: name})
	}
}

// HandleSuggestions lists what each ingredient would do to an effect set
// @Summary Suggest ingredients
// @Tags mix
// @Accept json
// @Produce json
// @Param request body SuggestionsRequest true "Current effects"
// @Success 200 {array} domain.Suggestion
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/mix/suggestions [post]
func HandleSuggestions(svc mix.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SuggestionsRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Suggest ingredients"); err != nil {
			return
		}
		respondJSON(w, http.StatusOK, svc.Suggest(r.Context(), req.Effects))
	}
}

// HandleCanAdd reports whether an ingredient can be appended to a recipe
// @Summary Check an ingredient addition
// @Tags mix
// @Accept json
// @Produce json
// @Param request body CanAddRequest true "Recipe and candidate"
// @Success 200 {object} domain.AddCheck
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/mix/can-add [post]
func HandleCanAdd(svc mix.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CanAddRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Check ingredient"); err != nil {
			return
		}
		respondJSON(w, http.StatusOK, svc.CanAdd(r.Context(), req.IngredientIDs, req.IngredientID))
	}
}

// HandleReverseLookup finds recipes producing an effect set
// @Summary Reverse lookup
// @Description Recipes that produce the requested effects. Currently always empty.
// @Tags mix
// @Accept json
// @Produce json
// @Param request body ReverseLookupRequest true "Target effects"
// @Success 200 {array} domain.ReverseMatch
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/mix/reverse [post]
func HandleReverseLookup(svc mix.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ReverseLookupRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Reverse lookup"); err != nil {
			return
		}
		respondJSON(w, http.StatusOK, svc.FindRecipesByEffects(r.Context(), req.Effects))
	}
}
