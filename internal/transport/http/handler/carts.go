package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Bhuvan-2005/exomart-ecommerce/internal/application/cart"
	"github.com/Bhuvan-2005/exomart-ecommerce/internal/domain"
)

// CartHandler handles cart endpoints.
type CartHandler struct {
	svc cart.Service
}

func NewCartHandler(svc cart.Service) *CartHandler { return &CartHandler{svc: svc} }

func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req domain.AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	item, err := h.svc.Add(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, CartItemEnvelope{Success: true, Message: "Item added to cart", Item: item})
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Get(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if items == nil {
		items = []domain.CartItem{}
	}
	writeJSON(w, http.StatusOK, CartEnvelope{Success: true, Count: len(items), Items: items})
}

func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Remove(r.Context(), chi.URLParam(r, "userId"), chi.URLParam(r, "productId")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Success: true, Message: "Item removed from cart"})
}
