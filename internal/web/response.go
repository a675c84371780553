// Package web holds the JSON response helpers shared by the controllers.
package web

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"portfolio/internal/dto"
	apperrors "portfolio/internal/errors"
)

func WriteJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

func WriteValidationError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, message string, details ...apperrors.ValidationDetail) {
	WriteJSON(w, logger, http.StatusBadRequest, dto.ValidationErrorResponse{
		TraceID: TraceID(r.Context()),
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func WriteErrorResponse(w http.ResponseWriter, r *http.Request, logger *zap.Logger, status int, code, message string) {
	WriteJSON(w, logger, status, dto.ErrorResponse{
		TraceID:   TraceID(r.Context()),
		Status:    status,
		Message:   message,
		Code:      code,
		Timestamp: time.Now().UTC(),
	})
}

// HandleError maps application errors to their HTTP envelope. Anything
// unrecognised is logged and reported as an internal error.
func HandleError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		WriteValidationError(w, r, logger, ve.Message, ve.Details...)
		return
	}

	if _, ok := apperrors.IsNotFoundError(err); ok {
		WriteErrorResponse(w, r, logger, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}

	if _, ok := apperrors.IsConflictError(err); ok {
		WriteErrorResponse(w, r, logger, http.StatusConflict, "CONFLICT", err.Error())
		return
	}

	logger.Error("unexpected error", zap.String("traceId", TraceID(r.Context())), zap.Error(err))
	WriteErrorResponse(w, r, logger, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
}

// DecodeJSON decodes the request body, writing a validation error and
// returning false when it is not valid JSON.
func DecodeJSON(w http.ResponseWriter, r *http.Request, logger *zap.Logger, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.Warn("invalid JSON body", zap.String("traceId", TraceID(r.Context())), zap.Error(err))
		WriteValidationError(w, r, logger, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return false
	}
	return true
}
