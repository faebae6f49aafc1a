package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/placement/internal/app/models/dto"
	"github.com/yigit/placement/internal/pkg/apperrors"
	"github.com/yigit/placement/internal/pkg/dberrors"
	"github.com/yigit/placement/internal/pkg/logger"
)

// ErrorPage is the template rendered by HandlePageError
const ErrorPage = "error.html"

// classify maps an error onto an HTTP status and a client-safe message
func classify(err error) (int, dto.ErrorCode, string) {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found"
	case IsBodyTooLarge(err), errors.Is(err, apperrors.ErrPayloadTooLarge):
		return http.StatusRequestEntityTooLarge, dto.ErrorCodePayloadTooLarge, "Request body too large"
	case apperrors.Is(err, apperrors.ErrBadRequest, apperrors.ErrUnsupportedExport):
		return http.StatusBadRequest, dto.ErrorCodeInvalidRequest, "Invalid request"
	case errors.Is(err, apperrors.ErrStoreFailure):
		return http.StatusInternalServerError, dto.ErrorCodeDatabaseError, "Internal server error"
	default:
		return http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error"
	}
}

func logFailure(c *gin.Context, status int, err error) {
	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event = event.Err(err).
		Str("requestID", c.GetString(RequestIDKey)).
		Str("path", c.Request.URL.Path).
		Int("status", status)
	if code := dberrors.Code(err); code != "" {
		event = event.Str("sqlstate", code)
		switch {
		case dberrors.IsMissingSchema(err):
			event = event.Str("hint", "schema missing, run the migrate up command")
		case dberrors.IsInputError(err):
			event = event.Str("hint", "store rejected a submitted value")
		}
	}
	event.Msg("Request failed")
}

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	status, code, message := classify(err)
	logFailure(c, status, err)

	detail := dto.NewErrorDetail(code, message)
	if status < http.StatusInternalServerError {
		detail = detail.WithDetails(err.Error())
	}

	c.AbortWithStatusJSON(status, dto.APIResponse{
		Success:   false,
		Error:     detail,
		Timestamp: time.Now(),
	})
}

// HandlePageError renders the error page for browser routes
func HandlePageError(c *gin.Context, err error) {
	status, _, message := classify(err)
	logFailure(c, status, err)

	c.HTML(status, ErrorPage, gin.H{
		"Title":   http.StatusText(status),
		"Status":  status,
		"Message": message,
	})
	c.Abort()
}
