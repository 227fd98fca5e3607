package portal

import (
	"context"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/noah-isme/college-portal/internal/apiclient"
	"github.com/noah-isme/college-portal/internal/models"
	appErrors "github.com/noah-isme/college-portal/pkg/errors"
	"github.com/noah-isme/college-portal/pkg/tokenstore"
)

var userIDClaims = []string{"id", "_id", "userId", "user_id", "sub"}

// ResolveIdentity reports who is signed in. The token's claims are read without
// verifying the signature, which stays the backend's job; when they do not name
// both a user and a role the profile is fetched from /auth/me.
func ResolveIdentity(ctx context.Context, tokens tokenstore.Provider, auth *apiclient.AuthAPI) (models.Identity, error) {
	if tokens == nil {
		return models.Identity{}, appErrors.ErrUnauthorized
	}
	token, err := tokens.Token(ctx)
	if err != nil {
		return models.Identity{}, fmt.Errorf("read token: %w", err)
	}
	if token == "" {
		return models.Identity{}, appErrors.ErrUnauthorized
	}

	if identity, ok := IdentityFromToken(token); ok {
		return identity, nil
	}

	user, err := auth.Me(ctx)
	if err != nil {
		return models.Identity{}, err
	}
	return models.Identity{UserID: user.ID, Role: user.Role, Name: user.Name}, nil
}

// IdentityFromToken extracts the user id and role from unverified claims.
func IdentityFromToken(token string) (models.Identity, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return models.Identity{}, false
	}

	identity := models.Identity{
		Role: models.Role(strings.ToLower(claimString(claims, "role"))),
		Name: claimString(claims, "name"),
	}
	for _, key := range userIDClaims {
		if id := claimString(claims, key); id != "" {
			identity.UserID = id
			break
		}
	}
	if identity.UserID == "" || identity.Role == "" {
		return models.Identity{}, false
	}
	return identity, true
}

func claimString(claims jwt.MapClaims, key string) string {
	switch v := claims[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return fmt.Sprintf("%.0f", v)
	default:
		return ""
	}
}
