package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tdhoang/marketgraph/internal/models"
	"github.com/tdhoang/marketgraph/internal/repo"
)

func TestCartHandler_Add(t *testing.T) {
	var gotUser, gotProduct string
	cart := &stubCart{
		addFn: func(_ context.Context, userID, productID string) error {
			gotUser, gotProduct = userID, productID
			return nil
		},
	}
	h := &CartHandler{Cart: cart}

	body := []byte(`{"product_id":"p-1"}`)
	rr := httptest.NewRecorder()
	h.Add(rr, authedRequest("POST", "/cart/add", body, "u-1"))

	if rr.Code != http.StatusOK {
		t.Fatalf("Add status: got %d, want 200: %s", rr.Code, rr.Body.String())
	}
	if gotUser != "u-1" || gotProduct != "p-1" {
		t.Errorf("unexpected call: user=%q product=%q", gotUser, gotProduct)
	}
	var out map[string]string
	json.NewDecoder(rr.Body).Decode(&out)
	if out["msg"] != "Product added to cart" {
		t.Errorf("unexpected msg: %q", out["msg"])
	}
}

func TestCartHandler_Add_Missing(t *testing.T) {
	cart := &stubCart{
		addFn: func(_ context.Context, _, _ string) error {
			return repo.ErrNotFound
		},
	}
	h := &CartHandler{Cart: cart}

	rr := httptest.NewRecorder()
	h.Add(rr, authedRequest("POST", "/cart/add", []byte(`{"product_id":"ghost"}`), "u-1"))

	if rr.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rr.Code)
	}
}

func TestCartHandler_Add_BadInput(t *testing.T) {
	h := &CartHandler{Cart: &stubCart{}}

	for _, body := range []string{"{", `{}`, `{"product_id":""}`} {
		rr := httptest.NewRecorder()
		h.Add(rr, authedRequest("POST", "/cart/add", []byte(body), "u-1"))
		if rr.Code != http.StatusUnprocessableEntity {
			t.Errorf("body %q: status got %d, want 422", body, rr.Code)
		}
	}
}

func TestCartHandler_List(t *testing.T) {
	cart := &stubCart{
		listFn: func(_ context.Context, userID string) ([]models.Product, error) {
			if userID != "u-1" {
				t.Errorf("userID: got %q, want u-1", userID)
			}
			return []models.Product{{ID: "p-1", Name: "Bike"}}, nil
		},
	}
	h := &CartHandler{Cart: cart}

	rr := httptest.NewRecorder()
	h.List(rr, authedRequest("GET", "/cart", nil, "u-1"))

	if rr.Code != http.StatusOK {
		t.Fatalf("List status: got %d, want 200", rr.Code)
	}
	var out []models.Product
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(out) != 1 || out[0].ID != "p-1" {
		t.Errorf("unexpected products: %+v", out)
	}
}

func TestCartHandler_Checkout(t *testing.T) {
	cleared := false
	cart := &stubCart{
		clearFn: func(_ context.Context, userID string) error {
			cleared = true
			return nil
		},
	}
	h := &CartHandler{Cart: cart}

	rr := httptest.NewRecorder()
	h.Checkout(rr, authedRequest("POST", "/cart/checkout", nil, "u-1"))

	if rr.Code != http.StatusOK {
		t.Fatalf("Checkout status: got %d, want 200", rr.Code)
	}
	if !cleared {
		t.Error("expected Clear to be called")
	}
	var out map[string]string
	json.NewDecoder(rr.Body).Decode(&out)
	if out["msg"] != "Checkout successful" {
		t.Errorf("unexpected msg: %q", out["msg"])
	}
}
