package handler

import (
	"net/http"

	"github.com/go-faster/jx"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	h.count(r.Context(), "profile.get")

	e := &jx.Encoder{}
	e.ObjStart()
	e.FieldStart("name")
	e.Str(h.profile.Name)
	e.FieldStart("title")
	e.Str(h.profile.Title)
	e.FieldStart("division")
	e.Str(h.profile.Division)
	e.FieldStart("email")
	e.Str(h.profile.Email)
	e.FieldStart("phone")
	e.Str(h.profile.Phone)
	e.FieldStart("location")
	e.Str(h.profile.Location)
	e.FieldStart("joined")
	e.Str(h.profile.Joined)
	e.FieldStart("avatar")
	e.Str(h.profile.Avatar)
	e.ObjEnd()
	writeJSON(w, http.StatusOK, e)
}
