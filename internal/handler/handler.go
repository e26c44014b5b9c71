// Package handler exposes the inventory state core over HTTP. Each client is
// identified by an opaque session id carried in the X-Session-ID header; a
// request without a known session transparently gets a fresh one, and the id
// is echoed on every response.
package handler

import (
	"context"
	"net/http"

	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/Karan1317/nexchain/internal/dashboard"
	"github.com/Karan1317/nexchain/internal/orders"
	"github.com/Karan1317/nexchain/internal/profile"
	"github.com/Karan1317/nexchain/internal/session"
)

// SessionHeader carries the session id on requests and responses.
const SessionHeader = "X-Session-ID"

// Config holds handler-level settings.
type Config struct {
	// APIKeyPepper is mixed into api key hashes. See Handler.requireAPIKey.
	APIKeyPepper string
	// APIKeyHashes lists hex-encoded HMAC-SHA256 digests of accepted api
	// keys. Empty disables the guard.
	APIKeyHashes []string
}

// Handler serves the API routes.
type Handler struct {
	cfg       Config
	sessions  *session.Store
	orders    *orders.Service
	dashboard *dashboard.Service
	profile   profile.Profile
	ops       metric.Int64Counter
}

// New creates a Handler over the given services.
func New(
	cfg Config,
	sessions *session.Store,
	orderSvc *orders.Service,
	dash *dashboard.Service,
	prof profile.Profile,
	meter metric.Meter,
) (*Handler, error) {
	ops, err := meter.Int64Counter("nexchain.session.operations",
		metric.WithDescription("Session state operations served"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create operations counter")
	}
	return &Handler{
		cfg:       cfg,
		sessions:  sessions,
		orders:    orderSvc,
		dashboard: dash,
		profile:   prof,
		ops:       ops,
	}, nil
}

// Routes registers all API routes on mux. Mutating routes go through the api
// key guard.
func (h *Handler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/products", h.listProducts)
	mux.Handle("POST /api/products", h.requireAPIKey(http.HandlerFunc(h.createProduct)))
	mux.HandleFunc("GET /api/products/{id}", h.getProduct)
	mux.Handle("PATCH /api/products/{id}", h.requireAPIKey(http.HandlerFunc(h.updateProduct)))

	mux.HandleFunc("GET /api/cart", h.getCart)
	mux.Handle("POST /api/cart/items", h.requireAPIKey(http.HandlerFunc(h.addCartItem)))
	mux.Handle("PATCH /api/cart/items/{id}", h.requireAPIKey(http.HandlerFunc(h.updateCartItem)))
	mux.Handle("DELETE /api/cart/items/{id}", h.requireAPIKey(http.HandlerFunc(h.removeCartItem)))

	mux.HandleFunc("GET /api/notification", h.getNotification)
	mux.HandleFunc("GET /api/orders", h.listOrders)
	mux.HandleFunc("GET /api/dashboard", h.getDashboard)
	mux.HandleFunc("GET /api/profile", h.getProfile)
}

// resolveSession returns the session identified by the request header,
// creating one when the header is missing or stale. The id is always echoed
// back so clients can adopt it.
func (h *Handler) resolveSession(w http.ResponseWriter, r *http.Request) *session.Session {
	id := r.Header.Get(SessionHeader)
	if id != "" {
		if s, ok := h.sessions.Get(id); ok {
			w.Header().Set(SessionHeader, id)
			return s
		}
	}
	id, s := h.sessions.Create()
	w.Header().Set(SessionHeader, id)
	return s
}

func (h *Handler) count(ctx context.Context, op string) {
	h.ops.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", op)))
}
