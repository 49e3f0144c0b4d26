package handlers

import (
	"context"

	"github.com/tdhoang/marketgraph/internal/models"
)

// Store interfaces the handlers depend on. The graph-backed repos in
// internal/repo satisfy them; tests use in-memory stand-ins.

type UserStore interface {
	Create(ctx context.Context, username, passwordHash string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type ProductStore interface {
	Create(ctx context.Context, userID, name, description string, price float64, location string) (*models.Product, error)
	Search(ctx context.Context, q, location string) ([]models.Product, error)
}

type CartStore interface {
	Add(ctx context.Context, userID, productID string) error
	List(ctx context.Context, userID string) ([]models.Product, error)
	Clear(ctx context.Context, userID string) error
}
