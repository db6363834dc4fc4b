package ui

import (
	"net/http"

	"watermetal/domain/core"
	"watermetal/internal/session"
)

const sessionCookie = "watermetal_session"

// sessionID returns the browser's session ID, minting one and setting the
// cookie when absent.
func (a *App) sessionID(w http.ResponseWriter, r *http.Request) core.SessionID {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return core.SessionID(c.Value)
	}

	sid := core.SessionID(core.NewID())
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sid.String(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sid
}

// currentSession looks up the dashboard state for the request's cookie.
// A missing cookie or an expired session both come back as nil.
func (a *App) currentSession(r *http.Request) *session.Session {
	c, err := r.Cookie(sessionCookie)
	if err != nil || c.Value == "" {
		return nil
	}
	sess, ok := a.store.Get(core.SessionID(c.Value))
	if !ok {
		return nil
	}
	return sess
}
