package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/timekeepers/storefront/internal/core/domain"
	"github.com/timekeepers/storefront/internal/core/service"
)

// GET    v1/products            visible slice of the derived view
// POST   v1/products/more       advance the reveal cursor
// PUT    v1/filters             replace filter state
// POST   v1/filters/reset       restore defaults
// PUT    v1/sort                set sort key
// PUT    v1/reveal/mode         manual vs continuous reveal
// POST   v1/reveal/scroll       continuous-mode scroll notification
// GET    v1/cart                cart lines + subtotal
// POST   v1/cart/items          add to cart (quantity merge)
// PATCH  v1/cart/items/{id}     set quantity, <1 removes
// DELETE v1/cart/items/{id}     remove line
// DELETE v1/cart                clear
// POST   v1/checkout            validate form, return handoff URL
// POST   v1/products/{id}/quickbuy

type ShopHandler struct {
	shop *service.Shop
}

func RegisterShop(mux *http.ServeMux, shop *service.Shop) {
	h := ShopHandler{shop}
	mux.HandleFunc("GET /v1/products", h.GetProducts)
	mux.HandleFunc("POST /v1/products/more", h.PostLoadMore)
	mux.HandleFunc("POST /v1/products/{id}/quickbuy", h.PostQuickBuy)
	mux.HandleFunc("PUT /v1/filters", h.PutFilters)
	mux.HandleFunc("POST /v1/filters/reset", h.PostResetFilters)
	mux.HandleFunc("PUT /v1/sort", h.PutSort)
	mux.HandleFunc("PUT /v1/reveal/mode", h.PutRevealMode)
	mux.HandleFunc("POST /v1/reveal/scroll", h.PostScroll)
	mux.HandleFunc("GET /v1/cart", h.GetCart)
	mux.HandleFunc("POST /v1/cart/items", h.PostCartItem)
	mux.HandleFunc("PATCH /v1/cart/items/{id}", h.PatchCartItem)
	mux.HandleFunc("DELETE /v1/cart/items/{id}", h.DeleteCartItem)
	mux.HandleFunc("DELETE /v1/cart", h.DeleteCart)
	mux.HandleFunc("POST /v1/checkout", h.PostCheckout)
}

func (h ShopHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	h.writeProductsPage(w)
}

func (h ShopHandler) PostLoadMore(w http.ResponseWriter, r *http.Request) {
	h.shop.LoadMore(r.Context())
	h.writeProductsPage(w)
}

func (h ShopHandler) PostQuickBuy(w http.ResponseWriter, r *http.Request) {
	const op = "ShopHandler.PostQuickBuy"
	log := slog.With("op", op)

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	link, err := h.shop.QuickBuy(id)
	if err != nil {
		http.Error(w, "product not found", http.StatusNotFound)
		log.Warn("quick buy rejected", "id", id, "err", err)
		return
	}
	writeJSON(w, Handoff{URL: link})
}

func (h ShopHandler) PutFilters(w http.ResponseWriter, r *http.Request) {
	const op = "ShopHandler.PutFilters"
	log := slog.With("op", op)

	var fs FilterState
	if err := json.NewDecoder(r.Body).Decode(&fs); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	err := h.shop.SetFilter(domain.FilterState{
		Search:     fs.Search,
		Categories: fs.Categories,
		Brands:     fs.Brands,
		PriceRange: domain.PriceRange{Min: fs.PriceMin, Max: fs.PriceMax},
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	h.writeProductsPage(w)
}

func (h ShopHandler) PostResetFilters(w http.ResponseWriter, r *http.Request) {
	h.shop.ResetFilters()
	h.writeProductsPage(w)
}

func (h ShopHandler) PutSort(w http.ResponseWriter, r *http.Request) {
	var s Sort
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		return
	}
	h.shop.SetSortBy(domain.SortKey(s.SortBy))
	h.writeProductsPage(w)
}

func (h ShopHandler) PutRevealMode(w http.ResponseWriter, r *http.Request) {
	var m RevealMode
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		return
	}
	h.shop.SetContinuous(m.Continuous)
	w.WriteHeader(http.StatusNoContent)
}

func (h ShopHandler) PostScroll(w http.ResponseWriter, r *http.Request) {
	var s Scroll
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		return
	}
	h.shop.Scrolled(r.Context(), s.DistanceFromEnd)
	h.writeProductsPage(w)
}

func (h ShopHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	h.writeCart(w)
}

func (h ShopHandler) PostCartItem(w http.ResponseWriter, r *http.Request) {
	const op = "ShopHandler.PostCartItem"
	log := slog.With("op", op)

	var item AddItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	h.shop.AddToCart(toDomainProduct(item.Product), item.Quantity)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	h.writeCart(w)
}

func (h ShopHandler) PatchCartItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	var q Quantity
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		return
	}

	h.shop.UpdateCartQuantity(id, q.Quantity)
	h.writeCart(w)
}

func (h ShopHandler) DeleteCartItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	h.shop.RemoveFromCart(id)
	h.writeCart(w)
}

func (h ShopHandler) DeleteCart(w http.ResponseWriter, r *http.Request) {
	h.shop.ClearCart()
	w.WriteHeader(http.StatusNoContent)
}

func (h ShopHandler) PostCheckout(w http.ResponseWriter, r *http.Request) {
	const op = "ShopHandler.PostCheckout"
	log := slog.With("op", op)

	var form CheckoutForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	link, err := h.shop.Checkout(domain.OrderForm{
		Name:    form.Name,
		Phone:   form.Phone,
		Address: form.Address,
		Email:   form.Email,
	})
	if err != nil {
		// Validation failures are user-visible messages, recoverable
		// by re-entry.
		switch {
		case errors.Is(err, domain.ErrMissingFields),
			errors.Is(err, domain.ErrInvalidPhone),
			errors.Is(err, domain.ErrEmptyCart):
			http.Error(w, errors.Unwrap(err).Error(), http.StatusUnprocessableEntity)
		default:
			http.Error(w, "checkout failed", http.StatusInternalServerError)
			log.Error("checkout failed", "err", err)
		}
		return
	}

	writeJSON(w, Handoff{URL: link})
	log.Info("order handed off", "nLines", len(h.shop.CartLines()))
}

func (h ShopHandler) writeProductsPage(w http.ResponseWriter) {
	derived := h.shop.Derived()
	visible := h.shop.Visible()

	page := ProductsPage{
		Products: make([]Product, 0, len(visible)),
		Total:    len(derived),
		HasMore:  h.shop.HasMore(),
	}
	for _, p := range visible {
		page.Products = append(page.Products, toWireProduct(p))
	}
	writeJSON(w, page)
}

func (h ShopHandler) writeCart(w http.ResponseWriter) {
	lines := h.shop.CartLines()
	c := Cart{
		Lines:    make([]CartLine, 0, len(lines)),
		Subtotal: h.shop.Subtotal(),
	}
	for _, l := range lines {
		c.Lines = append(c.Lines, toWireLine(l))
	}
	writeJSON(w, c)
}

func writeJSON(w http.ResponseWriter, v any) {
	const op = "httphandler.writeJSON"

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.With("op", op).Error("failed to write response body", "err", err)
	}
}
