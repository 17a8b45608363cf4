package middleware

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/buff-dashboard-api/internal/session"
	"github.com/vfg2006/buff-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/buff-dashboard-api/pkg/log"
)

// AuthMiddleware monta a sessão a partir do token Bearer. Requisições sem
// token seguem sem sessão; as rotas que exigem usuário usam RequireSession.
func AuthMiddleware(parser *session.Parser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			sess, err := parser.FromHeader(authHeader)
			if err != nil {
				logrus.WithError(err).Warn("Token de autenticação rejeitado")

				switch {
				case errors.Is(err, session.ErrExpiredToken):
					apiErrors.WriteError(w, apiErrors.ErrExpiredToken, "Token expirado", nil)
				default:
					apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido", nil)
				}
				return
			}

			ctx := log.WithUserID(session.WithSession(r.Context(), sess), sess.UserID)
			log.ForContext(ctx).Debug("Sessão autenticada")

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
