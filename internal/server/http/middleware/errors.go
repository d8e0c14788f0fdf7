package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/textileoem/platform/internal/domain/errors"
	pkgAuth "github.com/textileoem/platform/internal/pkg/auth"
	"github.com/textileoem/platform/internal/server/http/dto"
)

// ErrorHandler is the single failure translator. Handlers record errors via
// c.Error; after the chain runs, the first recorded error is mapped to a
// status and a client-safe envelope. Internal causes are logged, never sent.
// Stack traces are attached outside production only.
func ErrorHandler(logger *slog.Logger, production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors[0].Err
		status, message := translate(err)

		if status >= 500 {
			logger.Error("request failed",
				slog.String("method", c.Request.Method),
				slog.String("path", c.Request.URL.Path),
				slog.Any("error", err),
			)
		}

		resp := dto.Fail(message)
		if !production && status >= 500 {
			resp.Stack = string(debug.Stack())
		}
		c.JSON(status, resp)
	}
}

func translate(err error) (int, string) {
	var appErr *domainErrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Status, appErr.Message
	}

	switch {
	case errors.Is(err, pkgAuth.ErrTokenExpired):
		return http.StatusUnauthorized, "Token expired"
	case errors.Is(err, pkgAuth.ErrInvalidToken):
		return http.StatusUnauthorized, "Invalid token"
	case errors.Is(err, domainErrors.ErrNotFound):
		return http.StatusNotFound, "Resource not found"
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		return http.StatusConflict, "Duplicate field value entered"
	case errors.Is(err, domainErrors.ErrValidation):
		return http.StatusBadRequest, "Validation failed"
	case errors.Is(err, domainErrors.ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, domainErrors.ErrForbidden):
		return http.StatusForbidden, "Forbidden"
	}
	return http.StatusInternalServerError, "Server Error"
}

// NotFoundHandler serves the uniform 404 envelope for unmatched routes.
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.Fail("Not found - "+c.Request.URL.Path))
	}
}
