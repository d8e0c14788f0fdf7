package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/textileoem/platform/internal/server/http/dto"
)

const validatedBodyKey = "validatedBody"

// ValidateBody binds and validates the JSON body into T before the handler
// runs. Binding failure short-circuits with a 400 naming every violated
// field; on success the value is available through BodyFrom.
func ValidateBody[T any]() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body T
		if err := c.ShouldBindJSON(&body); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.Fail(dto.ValidationMessage(err)))
			return
		}
		c.Set(validatedBodyKey, &body)
		c.Next()
	}
}

// BodyFrom returns the value bound by ValidateBody. The zero value comes
// back only if the middleware did not run, which is a wiring bug.
func BodyFrom[T any](c *gin.Context) *T {
	val, ok := c.Get(validatedBodyKey)
	if !ok {
		return new(T)
	}
	body, ok := val.(*T)
	if !ok {
		return new(T)
	}
	return body
}
