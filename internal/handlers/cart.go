package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tdhoang/marketgraph/internal/metrics"
	"github.com/tdhoang/marketgraph/internal/middleware"
	"github.com/tdhoang/marketgraph/internal/repo"
)

// ==========================
// Cart Handler
// ==========================
type CartHandler struct {
	Cart CartStore
}

// ==========================
// Add (idempotent merge)
// ==========================
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		JSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		ProductID string `json:"product_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, "invalid json", http.StatusUnprocessableEntity)
		return
	}
	if input.ProductID == "" {
		JSONError(w, "product_id is required", http.StatusUnprocessableEntity)
		return
	}

	if err := h.Cart.Add(r.Context(), userID, input.ProductID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			JSONError(w, "user or product not found", http.StatusNotFound)
			return
		}
		slog.Error("cart add failed", "error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"msg": "Product added to cart"})
}

// ==========================
// List
// ==========================
func (h *CartHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		JSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	products, err := h.Cart.List(r.Context(), userID)
	if err != nil {
		slog.Error("cart list failed", "error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// ==========================
// Checkout (clear the cart; no order entity is kept)
// ==========================
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		JSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.Cart.Clear(r.Context(), userID); err != nil {
		slog.Error("checkout failed", "error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	metrics.CartCheckoutsTotal.Inc()
	writeJSON(w, http.StatusOK, map[string]string{"msg": "Checkout successful"})
}
