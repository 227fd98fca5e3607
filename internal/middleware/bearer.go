package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/college-portal/internal/models"
	"github.com/noah-isme/college-portal/internal/portal"
	appErrors "github.com/noah-isme/college-portal/pkg/errors"
	"github.com/noah-isme/college-portal/pkg/response"
	"github.com/noah-isme/college-portal/pkg/tokenstore"
)

// ContextIdentityKey is the gin context key storing the caller's identity.
const ContextIdentityKey = "currentIdentity"

// IdentityResolver looks the caller up when the token itself does not say who they are.
type IdentityResolver func(ctx context.Context) (models.Identity, error)

// Bearer requires an Authorization bearer token and forwards it to the backend by
// attaching it to the request context.
func Bearer(resolve IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "missing or invalid authorization header"))
			c.Abort()
			return
		}

		ctx := tokenstore.WithToken(c.Request.Context(), token)
		c.Request = c.Request.WithContext(ctx)

		if identity, ok := portal.IdentityFromToken(token); ok {
			c.Set(ContextIdentityKey, identity)
		} else if resolve != nil {
			identity, err := resolve(ctx)
			if err != nil {
				response.Error(c, err)
				c.Abort()
				return
			}
			c.Set(ContextIdentityKey, identity)
		}
		c.Next()
	}
}

// IdentityFromContext returns the identity stored by Bearer.
func IdentityFromContext(c *gin.Context) (models.Identity, bool) {
	value, exists := c.Get(ContextIdentityKey)
	if !exists {
		return models.Identity{}, false
	}
	identity, ok := value.(models.Identity)
	return identity, ok
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
