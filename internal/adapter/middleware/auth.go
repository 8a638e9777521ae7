package middleware

import (
	"net/http"
	"strings"

	"complaintflow-backend/internal/domain/user"
	"complaintflow-backend/internal/usecase/workflow"
	"complaintflow-backend/pkg/token"

	"github.com/labstack/echo/v4"
)

const actorKey = "auth.actor"

// Authenticate is the access-control gate: it rejects requests without a
// valid bearer credential and stores the decoded actor on the request
// context for downstream handlers. A missing or malformed header is 401;
// a credential that fails signature or expiry checks is 400.
func Authenticate(tokens *token.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Access Denied: No token provided"})
			}
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Access Denied: Malformed token"})
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid Token"})
			}
			role := user.Role(claims.Role)
			if !role.Valid() {
				return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid Token"})
			}

			c.Set(actorKey, workflow.Actor{ID: claims.UserID, Role: role, Name: claims.Name})
			return next(c)
		}
	}
}

// RequireRole allows the request through only when the authenticated actor
// holds one of the listed roles. Must run after Authenticate.
func RequireRole(roles ...user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := ActorFromContext(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Access Denied: No token provided"})
			}
			for _, r := range roles {
				if actor.Role == r {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]string{"message": "Forbidden: You do not have the required role."})
		}
	}
}

// ActorFromContext returns the actor stored by Authenticate.
func ActorFromContext(c echo.Context) (workflow.Actor, bool) {
	actor, ok := c.Get(actorKey).(workflow.Actor)
	return actor, ok
}

// SetActor stores an actor the way Authenticate does. Handler tests use it to
// exercise endpoints without minting a real token.
func SetActor(c echo.Context, a workflow.Actor) { c.Set(actorKey, a) }
