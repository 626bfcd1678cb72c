package handler

import (
	"net/http"

	"github.com/osse101/MixMaster_Go/internal/domain"
	"github.com/osse101/MixMaster_Go/internal/logger"
	"github.com/osse101/MixMaster_Go/internal/optimizer"
)

// OptimizeRequest is the body of POST /api/v1/optimizer/optimize
type OptimizeRequest struct {
	Inventory domain.Inventory `json:"inventory"`
	Goal      string           `json:"goal" validate:"required,goal"`
	TopN      int              `json:"top_n" validate:"min=0,max=50"`
}

// OptimizeResponse lists recommendations best first
type OptimizeResponse struct {
	Goal            string                  `json:"goal"`
	Recommendations []domain.Recommendation `json:"recommendations"`
}

// HandleOptimize searches an inventory for the best mixes
// @Summary Optimize an inventory
// @Description Evaluates bounded ingredient combinations for every owned base product and ranks them by goal
// @Tags optimizer
// @Accept json
// @Produce json
// @Param request body OptimizeRequest true "Inventory and goal"
// @Success 200 {object} OptimizeResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/optimizer/optimize [post]
func HandleOptimize(svc optimizer.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req OptimizeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Optimize"); err != nil {
			return
		}

		recs, err := svc.Optimize(r.Context(), req.Inventory, req.Goal, req.TopN)
		if err != nil {
			respondServiceError(w, r, "optimize", err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgOptimizationDone,
			"goal", req.Goal,
			"products", len(req.Inventory.Products),
			"ingredients", len(req.Inventory.Ingredients),
			"results", len(recs))

		respondJSON(w, http.StatusOK, OptimizeResponse{Goal: req.Goal, Recommendations: recs})
	}
}

// HandleListGoals lists optimization goals, grouped unless ?flat=true
// @Summary List optimization goals
// @Tags optimizer
// @Produce json
// @Param flat query bool false "Return a flat list"
// @Success 200 {array} optimizer.GoalGroup
// @Router /api/v1/optimizer/goals [get]
func HandleListGoals(svc optimizer.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("flat") == "true" {
			respondJSON(w, http.StatusOK, svc.Goals(r.Context()))
			return
		}
		respondJSON(w, http.StatusOK, svc.GroupedGoals(r.Context()))
	}
}
