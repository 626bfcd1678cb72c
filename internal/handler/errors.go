package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgMissingPathParam      = "Missing %s path parameter"
	ErrMsgInvalidMixLink        = "Mix link has no base product"
)

// Log messages
const (
	LogMsgDecodeFailed        = "Failed to decode request"
	LogMsgRequestDecoded      = "Request decoded"
	LogMsgServiceCallFailed   = "Service call failed"
	LogMsgMixCalculated       = "Mix calculated"
	LogMsgOptimizationDone    = "Optimization completed"
	LogMsgReadinessFailed     = "Readiness check failed"
	LogMsgEncodeFailed        = "Failed to encode JSON response"
	LogMsgWriteResponseFailed = "Failed to write response buffer"
	LogMsgMissingQueryParam   = "Missing query parameter"
)

// Health statuses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgCatalogEmpty   = "catalog not loaded"
)
