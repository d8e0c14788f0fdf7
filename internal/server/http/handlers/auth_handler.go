package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/textileoem/platform/internal/server/http/dto"
)

// AuthHandler exchanges hosted-provider credentials for self-issued tokens.
type AuthHandler struct {
	issuer TokenIssuer
}

// NewAuthHandler constructs AuthHandler.
func NewAuthHandler(issuer TokenIssuer) *AuthHandler {
	return &AuthHandler{issuer: issuer}
}

// Token handles POST /api/auth/token. The route runs behind SupabaseAuth, so
// the identity here has already been verified against the hosted provider.
func (h *AuthHandler) Token(c *gin.Context) {
	identity := CurrentIdentity(c)
	if identity == nil {
		c.JSON(http.StatusUnauthorized, dto.Fail("Authentication required"))
		return
	}

	token, err := h.issuer.IssueToken(*identity)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.OKMessage("Token issued successfully", gin.H{"token": token}))
}
