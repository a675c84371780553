package session

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

// HeaderName lets non-browser clients carry the session without cookies.
const HeaderName = "X-Session-ID"

type contextKey struct{}

// Middleware attaches the caller's session to the request context,
// issuing a new one when the presented id is missing or unknown.
func Middleware(store *Store, cookieName string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(HeaderName)
			if id == "" {
				if c, err := r.Cookie(cookieName); err == nil {
					id = c.Value
				}
			}

			sess, created := store.GetOrCreate(id)
			if created {
				logger.Debug("session created", zap.String("sessionId", sess.ID))
				http.SetCookie(w, &http.Cookie{
					Name:     cookieName,
					Value:    sess.ID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			w.Header().Set(HeaderName, sess.ID)

			next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), sess)))
		})
	}
}

func NewContext(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, sess)
}

func FromContext(ctx context.Context) (*Session, bool) {
	sess, ok := ctx.Value(contextKey{}).(*Session)
	return sess, ok
}
