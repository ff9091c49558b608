package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"docforensics/internal/domain"
	"docforensics/internal/logging"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrClassifierNotConfigured):
		return http.StatusServiceUnavailable, "CLASSIFIER_NOT_CONFIGURED",
			"no document classifier is configured; set an API key for the primary provider (for example GEMINI_API_KEY)"
	case errors.Is(err, domain.ErrClassificationFailed):
		return http.StatusBadGateway, "CLASSIFICATION_FAILED", "the document classifier could not analyze the document; try again"
	case errors.Is(err, domain.ErrAnalysisSuperseded):
		return http.StatusConflict, "ANALYSIS_SUPERSEDED", "a newer upload replaced this analysis"
	case errors.Is(err, domain.ErrNoAnalysis):
		return http.StatusNotFound, "NO_ANALYSIS", "no document has been analyzed yet"
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, "SESSION_NOT_FOUND", "viewer session not found"
	case errors.Is(err, domain.ErrSessionLimitReached):
		return http.StatusTooManyRequests, "SESSION_LIMIT_REACHED", "too many open viewer sessions; close one first"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "unsupported file type; allowed: pdf, jpg, png"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrInvalidDocument):
		return http.StatusUnprocessableEntity, "INVALID_DOCUMENT", "document is empty, damaged or has too many pages"
	case errors.Is(err, domain.ErrUnsupportedExportFormat):
		return http.StatusBadRequest, "UNSUPPORTED_EXPORT_FORMAT", "unsupported export format; allowed: json, pdf, xlsx, csv"
	case errors.Is(err, domain.ErrInvalidTool):
		return http.StatusBadRequest, "INVALID_TOOL", "invalid tool; allowed: move, highlight, comment"
	case errors.Is(err, domain.ErrInvalidFraudScore):
		return http.StatusBadRequest, "INVALID_FRAUD_SCORE", "fraud_score must be an integer between 0 and 100"
	case errors.Is(err, domain.ErrInvalidStorageReference):
		return http.StatusBadRequest, "INVALID_STORAGE_REFERENCE", "expected an s3://bucket/key reference"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		logging.New("handler").Error("request failed", "request_id", requestID, "status", status, "error", err)
	}
	RespondError(c, status, code, msg)
}
