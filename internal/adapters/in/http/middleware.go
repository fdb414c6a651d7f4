package http

import (
	"errors"
	"net/http"
	"strings"

	"logistics/internal/core/domain/model/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const principalContextKey = "principal"

// tokenClaims is the JWT claim set this service issues and accepts.
type tokenClaims struct {
	ActorType string   `json:"actor_type"`
	AgencyID  string   `json:"agency_id,omitempty"`
	Roles     []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// AuthMiddleware verifies the bearer token and resolves it into a
// Principal. Resolution fails closed: any malformed token or claim set
// ends the request with 401 before a handler runs.
//
// For agency employees the tenant is also bound to the request context, so
// downstream tenant checks compare against the token, not request input.
func AuthMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c.Request())
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorBody(err.Error()))
			}

			claims := &tokenClaims{}
			parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return secret, nil
			})
			if err != nil || !parsed.Valid {
				return c.JSON(http.StatusUnauthorized, errorBody("invalid token"))
			}

			principal, err := auth.ResolvePrincipal(auth.Claims{
				Subject:   claims.Subject,
				ActorType: claims.ActorType,
				AgencyID:  claims.AgencyID,
				Roles:     claims.Roles,
			})
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorBody(err.Error()))
			}

			c.Set(principalContextKey, principal)

			if agencyID := principal.AgencyID(); agencyID != nil {
				ctx := auth.WithTenant(c.Request().Context(), *agencyID)
				c.SetRequest(c.Request().WithContext(ctx))
			}

			return next(c)
		}
	}
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", errors.New("missing authorization header")
	}

	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", errors.New("authorization header is not a bearer token")
	}

	return strings.TrimPrefix(header, prefix), nil
}

func principalFrom(c echo.Context) (auth.Principal, bool) {
	principal, ok := c.Get(principalContextKey).(auth.Principal)
	return principal, ok
}
