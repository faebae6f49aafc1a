package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/placement/internal/pkg/apperrors"
)

// UploadLimit caps the request body at limit bytes. Requests that declare a larger
// body are rejected up front; others fail with *http.MaxBytesError once reading
// passes the limit.
func UploadLimit(limit int64, onError func(*gin.Context, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			onError(c, apperrors.ErrPayloadTooLarge)
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}

// IsBodyTooLarge reports whether err came from exceeding an UploadLimit
func IsBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
