package middleware

import (
	"net/http"

	"github.com/crechehub/agendaservice/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

// SessionChecker reports whether a user is currently logged in.
type SessionChecker interface {
	Current() (*domain.User, bool)
}

// RequireSession rejects requests while logged out. Login and health stay
// outside this middleware.
func RequireSession(session SessionChecker) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if _, ok := session.Current(); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": domain.ErrNotAuthenticated.Error()},
			)
			return
		}

		c.Next()
	}
}
