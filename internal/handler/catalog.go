package handler

import (
	"net/http"

	"github.com/osse101/MixMaster_Go/internal/mix"
)

// HandleListProducts lists every base product
// @Summary List base products
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.Product
// @Router /api/v1/products [get]
func HandleListProducts(svc mix.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.ListProducts(r.Context()))
	}
}

// HandleGetProduct returns one base product
// @Summary Get a base product
// @Tags catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} domain.Product
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/products/{id} [get]
func HandleGetProduct(svc mix.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPathParam(r, w, "id")
		if !ok {
			return
		}
		product, err := svc.GetProduct(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "get product", err)
			return
		}
		respondJSON(w, http.StatusOK, product)
	}
}

// HandleListIngredients lists every mixing ingredient
// @Summary List ingredients
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.Ingredient
// @Router /api/v1/ingredients [get]
func HandleListIngredients(svc mix.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.ListIngredients(r.Context()))
	}
}

// HandleGetIngredient returns one ingredient
// @Summary Get an ingredient
// @Tags catalog
// @Produce json
// @Param id path string true "Ingredient ID"
// @Success 200 {object} domain.Ingredient
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/ingredients/{id} [get]
func HandleGetIngredient(svc mix.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetPathParam(r, w, "id")
		if !ok {
			return
		}
		ing, err := svc.GetIngredient(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "get ingredient", err)
			return
		}
		respondJSON(w, http.StatusOK, ing)
	}
}

// HandleGetEffect looks up an effect by name, ignoring case and punctuation
// @Summary Get an effect
// @Tags catalog
// @Produce json
// @Param name path string true "Effect name"
// @Success 200 {object} domain.Effect
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/effects/{name} [get]
func HandleGetEffect(svc mix.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := GetPathParam(r, w, "name")
		if !ok {
			return
		}
		effect, err := svc.GetEffect(r.Context(), name)
		if err != nil {
			respondServiceError(w, r, "get effect", err)
			return
		}
		respondJSON(w, http.StatusOK, effect)
	}
}
