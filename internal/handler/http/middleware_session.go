package http

import (
	"net/http"

	"github.com/MKhiriev/lexsight/internal/logger"
	"github.com/MKhiriev/lexsight/internal/utils"
	"github.com/rs/zerolog"
)

// withSession resolves the session cookie and stores the session user in
// the request context. Requests without a live session continue
// anonymously.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := sessionToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.GetSession(ctx, token)
		if err != nil {
			logger.FromRequest(r).Err(err).Msg("error resolving session")
		}
		if user == nil {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r).GetChildLogger()
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("user_id", user.ID)
		})
		ctx = utils.WithSessionUser(log.WithContext(ctx), *user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireSession answers 401 for requests that carry no session user.
func requireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.SessionUserFromContext(r.Context()); !ok {
			writeError(w, r, ErrUnauthorized)
			return
		}
		next(w, r)
	}
}
