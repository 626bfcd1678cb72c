package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/MixMaster_Go/internal/domain"
	"github.com/osse101/MixMaster_Go/internal/logger"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

// bufferPool is a pool of bytes.Buffer to reduce allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode before writing headers so an encoding failure can still be a 500.
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteResponseFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and sends the mapped user-facing error
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceCallFailed, "operation", opName, "error", err)
	} else {
		log.Warn(LogMsgServiceCallFailed, "operation", opName, "error", err)
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError   = "Something went wrong"
	ErrMsgUnknownError         = "Unknown error"
	ErrMsgProductNotFoundErr   = "Product not found"
	ErrMsgIngredientNotFound   = "Ingredient not found"
	ErrMsgEffectNotFoundErr    = "Effect not found"
	ErrMsgInvalidCategoryErr   = "Unknown product category. Use weed, meth or cocaine."
	ErrMsgInvalidGoalErr       = "Unknown optimization goal. See /api/v1/optimizer/goals."
	ErrMsgTooManyIngredsErr    = "Too many ingredients in recipe"
	ErrMsgEmptyRecipeErr       = "Recipe has no base product"
	ErrMsgInvalidInputErr      = "Invalid request. Please check your inputs."
	ErrMsgRequestCancelledErr  = "Request cancelled"
	ErrMsgRequestTimedOutError = "Request timed out. Try a smaller inventory."
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgUnknownError
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, ErrMsgProductNotFoundErr
	case errors.Is(err, domain.ErrIngredientNotFound):
		return http.StatusNotFound, ErrMsgIngredientNotFound
	case errors.Is(err, domain.ErrEffectNotFound):
		return http.StatusNotFound, ErrMsgEffectNotFoundErr
	case errors.Is(err, domain.ErrInvalidCategory):
		return http.StatusBadRequest, ErrMsgInvalidCategoryErr
	case errors.Is(err, domain.ErrInvalidGoal):
		return http.StatusBadRequest, ErrMsgInvalidGoalErr
	case errors.Is(err, domain.ErrTooManyIngreds):
		return http.StatusBadRequest, ErrMsgTooManyIngredsErr
	case errors.Is(err, domain.ErrEmptyRecipe):
		return http.StatusBadRequest, ErrMsgEmptyRecipeErr
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputErr
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, ErrMsgRequestTimedOutError
	case errors.Is(err, context.Canceled):
		return statusClientClosedRequest, ErrMsgRequestCancelledErr
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// statusClientClosedRequest is the de facto status for a client that went away
const statusClientClosedRequest = 499
