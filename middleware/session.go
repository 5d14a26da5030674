package middleware

import (
	"context"
	"net/http"
	"strings"

	"dira-storefront/i18n"
	"dira-storefront/session"
	"dira-storefront/utils"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Key type for context
type contextKey string

const SessionContextKey = contextKey("session")

const (
	// SessionCookieName carries the signed session token
	SessionCookieName = "dira_session"
	// SessionTokenHeader returns a freshly issued token to non-browser clients
	SessionTokenHeader = "X-Session-Token"
)

// SessionFromContext returns the session attached by SessionMiddleware
func SessionFromContext(ctx context.Context) (*session.Session, bool) {
	s, ok := ctx.Value(SessionContextKey).(*session.Session)
	return s, ok
}

// WithSession attaches s to ctx
func WithSession(ctx context.Context, s *session.Session) context.Context {
	return context.WithValue(ctx, SessionContextKey, s)
}

// SessionMiddleware resolves the shopper's session from the session token in
// the cookie or Authorization header, starting a new one when the token is
// missing or invalid. The session is attached to the request context.
func SessionMiddleware(manager *session.Manager, logger *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var claims *utils.Claims
			if tokenStr := sessionToken(r); tokenStr != "" {
				c, err := utils.ParseSessionToken(tokenStr)
				if err != nil {
					logger.Debug("discarding session token", zap.Error(err))
				} else {
					claims = c
				}
			}

			id := session.NewID()
			lang := i18n.Negotiate(r.Header.Get("Accept-Language"))
			if claims != nil {
				id = claims.SessionID
				if l, ok := i18n.Parse(claims.Language); ok {
					lang = l
				}
			}

			s, created := manager.Get(id, lang)
			if created {
				logger.Debug("session started", zap.String("session_id", id), zap.Bool("new_token", claims == nil))
			}

			q, hasQuery := i18n.Parse(r.URL.Query().Get("lang"))
			_ = s.Do(func(s *session.Session) error {
				if hasQuery {
					s.Language = q
				}
				lang = s.Language
				return nil
			})

			// the lang claim rebuilds the session after a sweep, so it follows the session
			if claims == nil || claims.Language != string(lang) {
				if err := IssueSessionToken(w, id, lang); err != nil {
					logger.Error("failed to issue session token", zap.Error(err))
					http.Error(w, "could not start session", http.StatusInternalServerError)
					return
				}
			}

			setRequestSession(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s)))
		})
	}
}

// IssueSessionToken signs a token for the session and hands it back as both
// the session cookie and the token header.
func IssueSessionToken(w http.ResponseWriter, id string, lang i18n.Language) error {
	token, err := utils.GenerateSessionToken(id, string(lang))
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(utils.SessionTokenTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	w.Header().Set(SessionTokenHeader, token)
	return nil
}

func sessionToken(r *http.Request) string {
	if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	parts := strings.Split(r.Header.Get("Authorization"), " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}
