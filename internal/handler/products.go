package handler

import (
	"net/http"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"

	"github.com/Karan1317/nexchain/internal/catalog"
	"github.com/Karan1317/nexchain/internal/view"
)

// listProducts returns the session's catalog projection. The search and
// category query parameters describe the filter state and are applied as
// given; the sort parameter is a toggle and only advances the sort state when
// present, mirroring a column header click.
func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	s := h.resolveSession(w, r)
	q := r.URL.Query()

	s.SetSearch(q.Get("search"))
	s.SetCategory(catalog.Category(q.Get("category")))

	if raw := q.Get("sort"); raw != "" {
		key, ok := view.ParseSortKey(raw)
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown sort key: "+raw)
			return
		}
		s.ToggleSort(key)
	}

	products := s.Products()
	h.count(r.Context(), "products.list")

	e := &jx.Encoder{}
	e.ObjStart()
	e.FieldStart("products")
	e.ArrStart()
	for _, p := range products {
		encodeProduct(e, p)
	}
	e.ArrEnd()
	if key, dir, ok := s.Sort(); ok {
		e.FieldStart("sort")
		e.ObjStart()
		e.FieldStart("key")
		e.Str(string(key))
		e.FieldStart("direction")
		e.Str(string(dir))
		e.ObjEnd()
	}
	e.ObjEnd()
	writeJSON(w, http.StatusOK, e)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	s := h.resolveSession(w, r)

	in, err := decodeProductInput(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p := s.AddProduct(in)
	h.count(r.Context(), "products.create")

	e := &jx.Encoder{}
	encodeProduct(e, p)
	writeJSON(w, http.StatusCreated, e)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	s := h.resolveSession(w, r)

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	p, err := s.Product(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	h.count(r.Context(), "products.get")

	e := &jx.Encoder{}
	encodeProduct(e, p)
	writeJSON(w, http.StatusOK, e)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	s := h.resolveSession(w, r)

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	patch, err := decodeProductPatch(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := s.UpdateProduct(id, patch)
	if errors.Is(err, catalog.ErrNotFound) {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	h.count(r.Context(), "products.update")

	e := &jx.Encoder{}
	encodeProduct(e, p)
	writeJSON(w, http.StatusOK, e)
}

func decodeProductInput(r *http.Request) (catalog.Input, error) {
	data, err := readBody(r)
	if err != nil {
		return catalog.Input{}, errors.Wrap(err, "read body")
	}

	var in catalog.Input
	d := jx.DecodeBytes(data)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "name":
			v, err := d.Str()
			in.Name = v
			return err
		case "image":
			v, err := d.Str()
			in.Image = v
			return err
		case "price":
			v, err := d.Float64()
			in.Price = decimal.NewFromFloat(v)
			return err
		case "stock":
			v, err := d.Int()
			in.Stock = v
			return err
		case "category":
			v, err := d.Str()
			in.Category = catalog.Category(v)
			return err
		case "description":
			v, err := d.Str()
			in.Description = v
			return err
		default:
			return d.Skip()
		}
	}); err != nil {
		return catalog.Input{}, errors.Wrap(err, "decode product")
	}

	if in.Name == "" {
		return catalog.Input{}, errors.New("name is required")
	}
	if in.Price.IsNegative() {
		return catalog.Input{}, errors.New("price must not be negative")
	}
	if in.Stock < 0 {
		return catalog.Input{}, errors.New("stock must not be negative")
	}
	return in, nil
}

func decodeProductPatch(r *http.Request) (catalog.Patch, error) {
	data, err := readBody(r)
	if err != nil {
		return catalog.Patch{}, errors.Wrap(err, "read body")
	}

	var patch catalog.Patch
	d := jx.DecodeBytes(data)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "name":
			v, err := d.Str()
			patch.Name = &v
			return err
		case "image":
			v, err := d.Str()
			patch.Image = &v
			return err
		case "price":
			v, err := d.Float64()
			dec := decimal.NewFromFloat(v)
			patch.Price = &dec
			return err
		case "stock":
			v, err := d.Int()
			patch.Stock = &v
			return err
		case "category":
			v, err := d.Str()
			c := catalog.Category(v)
			patch.Category = &c
			return err
		case "description":
			v, err := d.Str()
			patch.Description = &v
			return err
		default:
			return d.Skip()
		}
	}); err != nil {
		return catalog.Patch{}, errors.Wrap(err, "decode patch")
	}

	if patch.Name != nil && *patch.Name == "" {
		return catalog.Patch{}, errors.New("name must not be empty")
	}
	if patch.Price != nil && patch.Price.IsNegative() {
		return catalog.Patch{}, errors.New("price must not be negative")
	}
	if patch.Stock != nil && *patch.Stock < 0 {
		return catalog.Patch{}, errors.New("stock must not be negative")
	}
	return patch, nil
}
