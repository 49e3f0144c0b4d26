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
// Product Handler
// ==========================
type ProductHandler struct {
	Products ProductStore
}

// ==========================
// Create Product (authenticated; creates POSTED edge)
// ==========================
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		JSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		Location    string  `json:"location"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, "invalid json", http.StatusUnprocessableEntity)
		return
	}
	if input.Name == "" {
		JSONError(w, "name is required", http.StatusUnprocessableEntity)
		return
	}

	product, err := h.Products.Create(r.Context(), userID, input.Name, input.Description, input.Price, input.Location)
	if err != nil {
		// Token subjects always reference a User node, but a stale token
		// against a rebuilt database would land here.
		if errors.Is(err, repo.ErrNotFound) {
			JSONError(w, "user not found", http.StatusNotFound)
			return
		}
		slog.Error("create product failed", "error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	metrics.ProductsCreatedTotal.Inc()
	writeJSON(w, http.StatusOK, map[string]string{
		"msg": "Product created",
		"id":  product.ID,
	})
}

// ==========================
// Search (public; substring on name, exact location)
// ==========================
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	location := r.URL.Query().Get("location")

	products, err := h.Products.Search(r.Context(), q, location)
	if err != nil {
		slog.Error("product search failed", "error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, products)
}
