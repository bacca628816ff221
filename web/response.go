package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/kbukum/turbokit/errors"
)

// RespondWithError inspects err: if it is an *apperrors.AppError the status
// is derived from its code and the structured body is sent; otherwise a
// generic 500 is sent.
func RespondWithError(c *gin.Context, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		c.JSON(statusForCode(appErr.Code), appErr.ToResponse())
		return
	}
	c.JSON(http.StatusInternalServerError, apperrors.Internal(err).ToResponse())
}

// RespondOK sends a 200 response with data.
func RespondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// RespondCreated sends a 201 response with data.
func RespondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// RespondNoContent sends a 204 with no body.
func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// statusForCode maps application error codes to HTTP statuses. Codes that
// have no HTTP meaning fall through to 500.
func statusForCode(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrCodeComponentNotFound, apperrors.ErrCodeModuleNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeDuplicateComponent:
		return http.StatusConflict
	case apperrors.ErrCodeInvalidInput, apperrors.ErrCodeInvalidConfig:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
