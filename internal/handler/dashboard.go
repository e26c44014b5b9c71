package handler

import (
	"net/http"

	"github.com/go-faster/jx"

	"github.com/Karan1317/nexchain/internal/dashboard"
)

func (h *Handler) getDashboard(w http.ResponseWriter, r *http.Request) {
	tr := dashboard.Range7Days
	if raw := r.URL.Query().Get("range"); raw != "" {
		parsed, ok := dashboard.ParseTimeRange(raw)
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown time range: "+raw)
			return
		}
		tr = parsed
	}

	stats := h.dashboard.Stats(tr)
	h.count(r.Context(), "dashboard.get")

	e := &jx.Encoder{}
	e.ObjStart()
	e.FieldStart("range")
	e.Str(string(stats.Range))

	e.FieldStart("summary")
	e.ObjStart()
	e.FieldStart("totalInventory")
	e.Int(stats.Summary.TotalInventory)
	e.FieldStart("pendingOrders")
	e.Int(stats.Summary.PendingOrders)
	e.FieldStart("inTransit")
	e.Int(stats.Summary.InTransit)
	e.FieldStart("lowStockAlerts")
	e.Int(stats.Summary.LowStockAlerts)
	e.FieldStart("revenue")
	e.Float64(money(stats.Summary.Revenue))
	e.ObjEnd()

	e.FieldStart("inventory")
	encodePoints(e, stats.Inventory)
	e.FieldStart("orders")
	encodePoints(e, stats.Orders)

	e.FieldStart("topSelling")
	e.ArrStart()
	for _, p := range stats.TopSelling {
		e.ObjStart()
		e.FieldStart("name")
		e.Str(p.Name)
		e.FieldStart("units")
		e.Int(p.Units)
		e.ObjEnd()
	}
	e.ArrEnd()

	e.FieldStart("activities")
	e.ArrStart()
	for _, a := range stats.Activities {
		e.ObjStart()
		e.FieldStart("kind")
		e.Str(string(a.Kind))
		e.FieldStart("text")
		e.Str(a.Text)
		e.ObjEnd()
	}
	e.ArrEnd()

	e.ObjEnd()
	writeJSON(w, http.StatusOK, e)
}

func encodePoints(e *jx.Encoder, points []dashboard.Point) {
	e.ArrStart()
	for _, p := range points {
		e.ObjStart()
		e.FieldStart("label")
		e.Str(p.Label)
		e.FieldStart("total")
		e.Int(p.Total)
		e.ObjEnd()
	}
	e.ArrEnd()
}
