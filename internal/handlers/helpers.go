package handlers

import (
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "baletrack/internal/errors"
	"baletrack/internal/logger"
	"baletrack/internal/middleware"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse documents the failure envelope.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Invalid input"`
	Error   string `json:"error" example:"INVALID_INPUT"`
}

// getUserID extracts the authenticated user ID from the Gin context.
// Returns ErrUnauthorized if not present.
func getUserID(c *gin.Context) (string, error) {
	v, exists := c.Get(middleware.UserIDKey)
	if !exists {
		return "", apperrors.ErrUnauthorized
	}
	id, ok := v.(string)
	if !ok || id == "" {
		return "", apperrors.ErrUnauthorized
	}
	return id, nil
}

// respondOK writes a success envelope around data.
func respondOK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Envelope{Success: true, Data: data})
}

// errorBody resolves err to its status and failure envelope. Internal details
// are logged, never returned.
func errorBody(c *gin.Context, err error) (int, gin.H) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		return appErr.StatusCode, gin.H{
			"success": false,
			"message": appErr.Message,
			"error":   appErr.Code,
		}
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	return apperrors.ErrInternalServer.StatusCode, gin.H{
		"success": false,
		"message": apperrors.ErrInternalServer.Message,
		"error":   apperrors.ErrInternalServer.Code,
	}
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	status, body := errorBody(c, err)
	c.JSON(status, body)
}

// invalidInput wraps a binding failure as a 400.
func invalidInput(err error) error {
	return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
}

// invalidPeriodQuery reports a period query whose numeric fields failed to
// parse. The parser error is logged rather than returned.
func invalidPeriodQuery(err error) error {
	logger.Get().Debugw("period query binding failed", "error", err)
	return apperrors.WithMessage(apperrors.ErrInvalidInput, "year, month and quarter must be integers")
}

// changes returns the fields present in a partial update request, for the
// audit trail.
func changes(req interface{}) map[string]interface{} {
	raw, err := json.Marshal(req)
	if err != nil {
		return nil
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil
	}
	for k, v := range fields {
		if v == nil {
			delete(fields, k)
		}
	}
	return fields
}
