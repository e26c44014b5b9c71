package handler

import (
	"net/http"

	"github.com/go-faster/jx"
)

// getNotification returns the session's visible feedback message, or 204 when
// none is showing.
func (h *Handler) getNotification(w http.ResponseWriter, r *http.Request) {
	s := h.resolveSession(w, r)

	n, ok := s.Notification()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	e := &jx.Encoder{}
	e.ObjStart()
	e.FieldStart("message")
	e.Str(n.Message)
	e.FieldStart("severity")
	e.Str(string(n.Severity))
	e.ObjEnd()
	writeJSON(w, http.StatusOK, e)
}
