package handlers

import (
	"context"

	"github.com/tdhoang/marketgraph/internal/models"
)

// Function-field stubs for the store interfaces.

type stubUsers struct {
	createFn func(ctx context.Context, username, passwordHash string) (*models.User, error)
	getFn    func(ctx context.Context, username string) (*models.User, error)
}

func (s *stubUsers) Create(ctx context.Context, username, passwordHash string) (*models.User, error) {
	return s.createFn(ctx, username, passwordHash)
}

func (s *stubUsers) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getFn(ctx, username)
}

type stubProducts struct {
	createFn func(ctx context.Context, userID, name, description string, price float64, location string) (*models.Product, error)
	searchFn func(ctx context.Context, q, location string) ([]models.Product, error)
}

func (s *stubProducts) Create(ctx context.Context, userID, name, description string, price float64, location string) (*models.Product, error) {
	return s.createFn(ctx, userID, name, description, price, location)
}

func (s *stubProducts) Search(ctx context.Context, q, location string) ([]models.Product, error) {
	return s.searchFn(ctx, q, location)
}

type stubCart struct {
	addFn   func(ctx context.Context, userID, productID string) error
	listFn  func(ctx context.Context, userID string) ([]models.Product, error)
	clearFn func(ctx context.Context, userID string) error
}

func (s *stubCart) Add(ctx context.Context, userID, productID string) error {
	return s.addFn(ctx, userID, productID)
}

func (s *stubCart) List(ctx context.Context, userID string) ([]models.Product, error) {
	return s.listFn(ctx, userID)
}

func (s *stubCart) Clear(ctx context.Context, userID string) error {
	return s.clearFn(ctx, userID)
}
