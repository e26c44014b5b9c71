// Package session ties the catalog, cart, view filter, and notifier together
// into the state core behind one interactive user. It is the contract the
// presentation layer talks to: mutations go in, projections and transient
// feedback come out.
package session

import (
	"sync"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/Karan1317/nexchain/internal/cart"
	"github.com/Karan1317/nexchain/internal/catalog"
	"github.com/Karan1317/nexchain/internal/notify"
	"github.com/Karan1317/nexchain/internal/view"
)

// Notification texts match the reference UI wording.
const (
	msgItemAdded      = "New item added successfully"
	msgProductUpdated = "Product updated successfully"
	msgCartRemoved    = "Item removed from cart"
	msgStockExceeded  = "Cannot add more items than available in stock"
)

// Config holds per-session construction parameters.
type Config struct {
	// Seed is the initial catalog content.
	Seed []catalog.Product
	// NotificationTTL overrides how long feedback messages stay visible.
	// Zero means notify.DefaultTTL.
	NotificationTTL time.Duration
}

// Session owns one user's interactive state. Compound operations are
// serialized by an RWMutex so an HTTP host can share a session between
// requests; the inner components themselves stay single-actor.
//
// Every failing operation leaves prior state intact. NotFound conditions are
// reported to the caller and deliberately not announced through the
// notifier; whether to display them is the presentation layer's call.
type Session struct {
	mu       sync.RWMutex
	catalog  *catalog.Catalog
	cart     *cart.Manager
	filter   *view.Filter
	notifier *notify.Notifier
}

// New creates a session seeded with cfg.Seed.
func New(cfg Config) *Session {
	c := catalog.New(cfg.Seed...)
	return &Session{
		catalog:  c,
		cart:     cart.NewManager(c),
		filter:   view.New(),
		notifier: notify.New(cfg.NotificationTTL),
	}
}

// AddProduct creates a catalog product and announces it.
func (s *Session) AddProduct(in catalog.Input) catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.catalog.Add(in)
	s.notifier.Post(msgItemAdded, notify.SeveritySuccess)
	return p
}

// UpdateProduct edits a product in place. Unknown ids fail with
// catalog.ErrNotFound instead of being silently ignored.
func (s *Session) UpdateProduct(id int, patch catalog.Patch) (catalog.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.catalog.Update(id, patch)
	if err != nil {
		return catalog.Product{}, err
	}
	s.notifier.Post(msgProductUpdated, notify.SeveritySuccess)
	return p, nil
}

// Product looks up a single product by id.
func (s *Session) Product(id int) (catalog.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.catalog.Get(id)
}

// SetSearch updates the projection's search term.
func (s *Session) SetSearch(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filter.SetSearch(term)
}

// SetCategory updates the projection's category filter.
func (s *Session) SetCategory(c catalog.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filter.SetCategory(c)
}

// ToggleSort advances the projection's sort toggle for key.
func (s *Session) ToggleSort(key view.SortKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filter.ToggleSort(key)
}

// Sort returns the projection's active sort state.
func (s *Session) Sort() (view.SortKey, view.Direction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filter.Sort()
}

// Products returns the current projection of the catalog: filtered by the
// session's search term and category, ordered by its sort toggle.
func (s *Session) Products() []catalog.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filter.Apply(s.catalog.List())
}

// AddToCart puts one unit of the identified product in the cart. A stock
// ceiling hit is announced as an error notification and reported as
// cart.ErrStockExceeded; the cart is left unchanged.
func (s *Session) AddToCart(productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.catalog.Get(productID)
	if err != nil {
		return err
	}

	if err := s.cart.Add(p); err != nil {
		if errors.Is(err, cart.ErrStockExceeded) {
			s.notifier.Post(msgStockExceeded, notify.SeverityError)
		}
		return err
	}
	s.notifier.Post("Added "+p.Name+" to cart", notify.SeveritySuccess)
	return nil
}

// UpdateCartQuantity applies delta to the identified cart line, bounded by
// the product's current stock. Decrements below one unit are silent no-ops.
func (s *Session) UpdateCartQuantity(productID, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cart.UpdateQuantity(productID, delta); err != nil {
		if errors.Is(err, cart.ErrStockExceeded) {
			s.notifier.Post(msgStockExceeded, notify.SeverityError)
		}
		return err
	}
	return nil
}

// RemoveFromCart deletes the identified cart line and announces the removal.
func (s *Session) RemoveFromCart(productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cart.Remove(productID); err != nil {
		return err
	}
	s.notifier.Post(msgCartRemoved, notify.SeveritySuccess)
	return nil
}

// Cart returns the current cart lines and their total.
func (s *Session) Cart() ([]cart.Line, decimal.Decimal) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cart.Lines(), s.cart.Total()
}

// Notification returns the currently visible feedback message, if any.
func (s *Session) Notification() (notify.Notification, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.notifier.Current()
}
