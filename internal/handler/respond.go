package handler

import (
	"io"
	"net/http"

	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"

	"github.com/Karan1317/nexchain/internal/cart"
	"github.com/Karan1317/nexchain/internal/catalog"
)

const maxBodySize = 1 << 20

// writeJSON flushes the encoder's buffer as an application/json response.
func writeJSON(w http.ResponseWriter, status int, e *jx.Encoder) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

// writeError responds with the uniform error body {"code": ..., "message": ...}.
func writeError(w http.ResponseWriter, status int, message string) {
	e := &jx.Encoder{}
	e.ObjStart()
	e.FieldStart("code")
	e.Int(status)
	e.FieldStart("message")
	e.Str(message)
	e.ObjEnd()
	writeJSON(w, status, e)
}

// readBody drains the request body, bounded by maxBodySize.
func readBody(r *http.Request) ([]byte, error) {
	defer func() { _ = r.Body.Close() }()
	return io.ReadAll(io.LimitReader(r.Body, maxBodySize))
}

// money renders a decimal amount for the JSON boundary. Amounts are two
// decimal places, so the float64 round trip is exact in practice.
func money(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

func encodeProduct(e *jx.Encoder, p catalog.Product) {
	e.ObjStart()
	e.FieldStart("id")
	e.Int(p.ID)
	e.FieldStart("name")
	e.Str(p.Name)
	e.FieldStart("image")
	e.Str(p.Image)
	e.FieldStart("price")
	e.Float64(money(p.Price))
	e.FieldStart("stock")
	e.Int(p.Stock)
	e.FieldStart("category")
	e.Str(string(p.Category))
	e.FieldStart("description")
	e.Str(p.Description)
	e.ObjEnd()
}

func encodeCart(e *jx.Encoder, lines []cart.Line, total decimal.Decimal) {
	e.ObjStart()
	e.FieldStart("items")
	e.ArrStart()
	for _, l := range lines {
		e.ObjStart()
		e.FieldStart("productId")
		e.Int(l.ProductID)
		e.FieldStart("name")
		e.Str(l.Name)
		e.FieldStart("image")
		e.Str(l.Image)
		e.FieldStart("price")
		e.Float64(money(l.Price))
		e.FieldStart("quantity")
		e.Int(l.Quantity)
		e.ObjEnd()
	}
	e.ArrEnd()
	e.FieldStart("total")
	e.Float64(money(total))
	e.ObjEnd()
}
