package handler

import (
	"net/http"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/Karan1317/nexchain/internal/cart"
	"github.com/Karan1317/nexchain/internal/catalog"
)

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	s := h.resolveSession(w, r)

	lines, total := s.Cart()
	h.count(r.Context(), "cart.get")

	e := &jx.Encoder{}
	encodeCart(e, lines, total)
	writeJSON(w, http.StatusOK, e)
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	s := h.resolveSession(w, r)

	productID, err := decodeCartAdd(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	switch err := s.AddToCart(productID); {
	case errors.Is(err, catalog.ErrNotFound):
		writeError(w, http.StatusNotFound, "product not found")
		return
	case errors.Is(err, cart.ErrStockExceeded):
		writeError(w, http.StatusConflict, "not enough stock")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.count(r.Context(), "cart.add")

	lines, total := s.Cart()
	e := &jx.Encoder{}
	encodeCart(e, lines, total)
	writeJSON(w, http.StatusOK, e)
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	s := h.resolveSession(w, r)

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	delta, err := decodeCartDelta(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	switch err := s.UpdateCartQuantity(id, delta); {
	case errors.Is(err, cart.ErrNotFound), errors.Is(err, catalog.ErrNotFound):
		writeError(w, http.StatusNotFound, "cart line not found")
		return
	case errors.Is(err, cart.ErrStockExceeded):
		writeError(w, http.StatusConflict, "not enough stock")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.count(r.Context(), "cart.update")

	lines, total := s.Cart()
	e := &jx.Encoder{}
	encodeCart(e, lines, total)
	writeJSON(w, http.StatusOK, e)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	s := h.resolveSession(w, r)

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := s.RemoveFromCart(id); err != nil {
		writeError(w, http.StatusNotFound, "cart line not found")
		return
	}
	h.count(r.Context(), "cart.remove")

	lines, total := s.Cart()
	e := &jx.Encoder{}
	encodeCart(e, lines, total)
	writeJSON(w, http.StatusOK, e)
}

func decodeCartAdd(r *http.Request) (int, error) {
	data, err := readBody(r)
	if err != nil {
		return 0, errors.Wrap(err, "read body")
	}

	productID := 0
	seen := false
	d := jx.DecodeBytes(data)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		if key != "productId" {
			return d.Skip()
		}
		v, err := d.Int()
		productID = v
		seen = true
		return err
	}); err != nil {
		return 0, errors.Wrap(err, "decode body")
	}
	if !seen {
		return 0, errors.New("productId is required")
	}
	return productID, nil
}

func decodeCartDelta(r *http.Request) (int, error) {
	data, err := readBody(r)
	if err != nil {
		return 0, errors.Wrap(err, "read body")
	}

	delta := 0
	seen := false
	d := jx.DecodeBytes(data)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		if key != "delta" {
			return d.Skip()
		}
		v, err := d.Int()
		delta = v
		seen = true
		return err
	}); err != nil {
		return 0, errors.Wrap(err, "decode body")
	}
	if !seen {
		return 0, errors.New("delta is required")
	}
	return delta, nil
}
