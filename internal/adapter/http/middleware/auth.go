package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"taskapp/internal/core/ports"
	"taskapp/pkg/apierrors"
)

// AuthMiddleware gates a route group behind a Bearer session token.
func AuthMiddleware(verifier ports.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		header := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}

		subject, err := verifier.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}

		c.Set("username", subject)
		c.Next()
	}
}
