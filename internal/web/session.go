package web

import (
	"net/http"

	"go.uber.org/zap"

	apperrors "portfolio/internal/errors"
	"portfolio/internal/session"
)

// RequireSession returns the request's session, writing an internal error
// when the session middleware did not run.
func RequireSession(w http.ResponseWriter, r *http.Request, logger *zap.Logger) (*session.Session, bool) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		HandleError(w, r, logger, apperrors.NewInternalError("no session on request", nil))
		return nil, false
	}
	return sess, true
}
