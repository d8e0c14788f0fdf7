package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/textileoem/platform/internal/pkg/auth"
	"github.com/textileoem/platform/internal/server/http/middleware"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// CurrentIdentity extracts the authenticated identity from context.
func CurrentIdentity(c *gin.Context) *auth.Identity {
	return middleware.IdentityFrom(c)
}

// CurrentUserID is a convenience over CurrentIdentity for the common case.
func CurrentUserID(c *gin.Context) string {
	identity := CurrentIdentity(c)
	if identity == nil {
		return ""
	}
	return identity.ID
}

// parsePagination reads page/limit query parameters with sane bounds.
func parsePagination(c *gin.Context) (page, limit int) {
	page = defaultPage
	limit = defaultLimit
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		limit = v
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

// setRecordCount annotates the request for the data-access audit trail.
func setRecordCount(c *gin.Context, n int) {
	c.Set(middleware.RecordCountKey, n)
}
