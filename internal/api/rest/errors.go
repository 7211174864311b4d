package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eventra/eventra/internal/domain"
	"github.com/eventra/eventra/internal/logger"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	errCodeBadRequest       ErrorCode = "bad_request"
	errCodeNotFound         ErrorCode = "not_found"
	errCodeValidationFailed ErrorCode = "validation_failed"
	errCodeUnauthorized     ErrorCode = "unauthorized"
	errCodeForbidden        ErrorCode = "forbidden"
	errCodeConflict         ErrorCode = "conflict"

	// Server errors (5xx)
	errCodeInternalError ErrorCode = "internal_error"
	errCodeServiceError  ErrorCode = "service_error"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// errorDetail contains error information
type errorDetail struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...string) {
	response := errorResponse{
		Error: errorDetail{
			Code:    code,
			Message: message,
		},
	}

	if len(details) > 0 {
		response.Error.Details = details[0]
	}

	c.JSON(statusCode, response)
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusBadRequest, errCodeBadRequest, message, details...)
}

// respondValidationError sends a 400 Bad Request with validation error
func respondValidationError(c *gin.Context, details string) {
	respondWithError(c, http.StatusBadRequest, errCodeValidationFailed, "Validation failed", details)
}

// respondUnauthorized sends a 401 Unauthorized response
func respondUnauthorized(c *gin.Context, message string) {
	respondWithError(c, http.StatusUnauthorized, errCodeUnauthorized, message)
}

// respondInternalError sends a 500 Internal Server Error response and logs the error
func respondInternalError(c *gin.Context, err error, message string, fields ...zap.Field) {
	logger.Error(err, fields...)
	respondWithError(c, http.StatusInternalServerError, errCodeInternalError, message)
}

// respondDomainError maps domain sentinels onto HTTP statuses; anything
// unrecognized is treated as an internal error.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrTierNotFound),
		errors.Is(err, domain.ErrTicketNotFound),
		errors.Is(err, domain.ErrListingNotFound),
		errors.Is(err, domain.ErrCollectionNotFound):
		respondWithError(c, http.StatusNotFound, errCodeNotFound, err.Error())

	case errors.Is(err, domain.ErrSelfPurchase),
		errors.Is(err, domain.ErrNotOrganizer),
		errors.Is(err, domain.ErrNotTicketOwner):
		respondWithError(c, http.StatusForbidden, errCodeForbidden, err.Error())

	case errors.Is(err, domain.ErrSoldOut),
		errors.Is(err, domain.ErrLimitExceeded),
		errors.Is(err, domain.ErrAlreadyListed),
		errors.Is(err, domain.ErrAlreadyProcessed),
		errors.Is(err, domain.ErrCertificateExists),
		errors.Is(err, domain.ErrCollectionExists):
		respondWithError(c, http.StatusConflict, errCodeConflict, err.Error())

	case errors.Is(err, domain.ErrInvalidPrice):
		respondValidationError(c, err.Error())

	case errors.Is(err, domain.ErrInvalidSignature),
		errors.Is(err, domain.ErrNotAuthenticated):
		respondUnauthorized(c, err.Error())

	case errors.Is(err, domain.ErrSettlementFailed):
		respondWithError(c, http.StatusBadGateway, errCodeServiceError, err.Error())

	default:
		respondInternalError(c, err, "Internal server error")
	}
}
