package ui

import (
	"net/http"
	"strings"

	"watermetal/internal/session"
)

// handleAsk sends the user's question about the current dataset to the
// assistant and stores the outcome on the session for the next render.
func (a *App) handleAsk(w http.ResponseWriter, r *http.Request) {
	sess := a.currentSession(r)
	if sess == nil || sess.Bundle == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	question := strings.TrimSpace(r.FormValue("question"))
	if question == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	outcome := a.assistant.Ask(r.Context(), sess.Bundle, question)
	a.store.Update(sess.ID, func(s *session.Session) {
		s.LastAsk = &outcome
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
