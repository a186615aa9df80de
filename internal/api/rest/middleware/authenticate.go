package middleware

import (
	"net/http"
	"strings"

	"spendtrack/internal/api/rest/response"
	"spendtrack/internal/apperr"
	"spendtrack/internal/logger"
	"spendtrack/internal/model"
)

// TokenParser validates bearer token strings into claims.
type TokenParser interface {
	Parse(token string) (model.TokenClaims, error)
}

// Authenticate validates bearer tokens and injects the claims into the
// request context.
type Authenticate struct {
	tokenParser    TokenParser
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenParser TokenParser, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{
		tokenParser:    tokenParser,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Handle rejects requests without a valid token and otherwise forwards
// them with the decoded claims attached to the context. The token is the
// substring after the first space of the Authorization header; the scheme
// itself is not checked.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			response.Error(w, apperr.NewUnauthenticated("No token provided"))
			return
		}

		_, tokenString, found := strings.Cut(header, " ")
		if !found || tokenString == "" {
			response.Error(w, apperr.NewUnauthenticated("Invalid token"))
			return
		}

		claims, err := m.tokenParser.Parse(tokenString)
		if err != nil {
			m.logger.Debug("authenticate: token rejected",
				"error", err.Error())
			response.Error(w, apperr.NewUnauthenticated("Invalid token"))
			return
		}

		ctx := m.contextManager.SetClaimsToContext(r.Context(), claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
