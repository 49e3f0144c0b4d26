package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/tdhoang/marketgraph/internal/graph"
	"github.com/tdhoang/marketgraph/internal/models"
)

// ==========================
// ProductRepo
// ==========================
type ProductRepo struct {
	G graph.Querier
}

func NewProductRepo(g graph.Querier) *ProductRepo {
	return &ProductRepo{G: g}
}

// ==========================
// Create Product
// ==========================
// Create matches the posting user, creates the Product node and the POSTED
// edge in one statement. Zero records back means the user node is gone
// (e.g. a token outliving its user), surfaced as ErrNotFound.
func (r *ProductRepo) Create(ctx context.Context, userID, name, description string, price float64, location string) (*models.Product, error) {
	query := `
		MATCH (u:User {id: $user_id})
		CREATE (p:Product {id: $id, name: $name, description: $description, price: $price, location: $location})
		CREATE (u)-[:POSTED]->(p)
		RETURN p.id AS id
	`

	id := uuid.NewString()
	records, err := r.G.Run(ctx, query, map[string]any{
		"user_id":     userID,
		"id":          id,
		"name":        name,
		"description": description,
		"price":       price,
		"location":    location,
	})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNotFound
	}

	return &models.Product{
		ID:          recString(records[0], "id"),
		Name:        name,
		Description: description,
		Price:       price,
		Location:    location,
	}, nil
}

// ==========================
// Search
// ==========================
// Search does a case-sensitive substring match on name (empty q matches
// everything) and an exact location filter only when location is non-empty.
// Results come back in database order.
func (r *ProductRepo) Search(ctx context.Context, q, location string) ([]models.Product, error) {
	query := `MATCH (p:Product) WHERE p.name CONTAINS $q `
	params := map[string]any{"q": q}

	if location != "" {
		query += `AND p.location = $location `
		params["location"] = location
	}
	query += `RETURN p.id AS id, p.name AS name, p.description AS description, p.price AS price, p.location AS location`

	records, err := r.G.Run(ctx, query, params)
	if err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(records))
	for _, rec := range records {
		products = append(products, recordToProduct(rec))
	}

	return products, nil
}
