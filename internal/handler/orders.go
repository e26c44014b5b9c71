package handler

import (
	"net/http"

	"github.com/go-faster/jx"

	"github.com/Karan1317/nexchain/internal/orders"
	"github.com/Karan1317/nexchain/internal/view"
)

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	rq := r.URL.Query()
	q := orders.Query{Search: rq.Get("search"), Direction: view.Ascending}

	if raw := rq.Get("status"); raw != "" {
		status, ok := orders.ParseStatus(raw)
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown status: "+raw)
			return
		}
		q.Status = status
	}
	if raw := rq.Get("sort"); raw != "" {
		key, ok := orders.ParseSortKey(raw)
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown sort key: "+raw)
			return
		}
		q.SortKey = key
	}
	if raw := rq.Get("direction"); raw != "" {
		switch view.Direction(raw) {
		case view.Ascending, view.Descending:
			q.Direction = view.Direction(raw)
		default:
			writeError(w, http.StatusBadRequest, "unknown direction: "+raw)
			return
		}
	}

	list := h.orders.List(q)
	h.count(r.Context(), "orders.list")

	e := &jx.Encoder{}
	e.ObjStart()
	e.FieldStart("orders")
	e.ArrStart()
	for _, o := range list {
		e.ObjStart()
		e.FieldStart("id")
		e.Str(o.ID)
		e.FieldStart("customer")
		e.Str(o.Customer)
		e.FieldStart("status")
		e.Str(string(o.Status))
		e.FieldStart("date")
		e.Str(o.Date.Format("2006-01-02"))
		e.FieldStart("total")
		e.Float64(money(o.Total))
		e.ObjEnd()
	}
	e.ArrEnd()
	e.ObjEnd()
	writeJSON(w, http.StatusOK, e)
}
